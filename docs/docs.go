// Package docs provides Swagger documentation for the Risk Engine API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Risk Engine API",
        "description": "Insurance Risk Assessment and Policy Recommendation API.\n\nThe engine scores patient profiles, selects a plan tier, projects multi-year costs, derives policy customizations and aggregates cohort analytics:\n1. **Recommendations** - Full pipeline for an inline or stored profile\n2. **Patients** - Browse the stored population\n3. **Plans** - Browse the plan catalog\n4. **Cohort** - Population-level risk analytics",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/veridianhealth/riskengine"
        },
        "license": {
            "name": "MIT"
        },
        "version": "1.0.0"
    },
    "host": "localhost:8080",
    "basePath": "/api/v1",
    "schemes": ["http", "https"],
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/recommendations": {
            "post": {
                "tags": ["Recommendations"],
                "summary": "Generate a recommendation",
                "description": "Scores the supplied profile and returns the risk assessment, recommended plan, customizations and cost projections",
                "operationId": "createRecommendation",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/PatientProfile"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"$ref": "#/definitions/Recommendation"}
                    },
                    "400": {
                        "description": "Invalid profile",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/patients": {
            "get": {
                "tags": ["Patients"],
                "summary": "List stored patients",
                "description": "Returns stored patients, optionally filtered by risk level",
                "operationId": "listPatients",
                "parameters": [
                    {
                        "name": "riskLevel",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "enum": ["Low", "Moderate", "High", "Critical"]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/PatientProfile"}
                        }
                    },
                    "400": {
                        "description": "Unknown risk level",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/patients/{patient_id}": {
            "get": {
                "tags": ["Patients"],
                "summary": "Get a patient by ID",
                "operationId": "getPatient",
                "parameters": [
                    {
                        "name": "patient_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"$ref": "#/definitions/PatientProfile"}
                    },
                    "404": {
                        "description": "Patient not found",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/patients/{patient_id}/recommendation": {
            "get": {
                "tags": ["Recommendations"],
                "summary": "Recommend for a stored patient",
                "description": "Loads the stored profile and runs the full recommendation pipeline",
                "operationId": "recommendForPatient",
                "parameters": [
                    {
                        "name": "patient_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"$ref": "#/definitions/Recommendation"}
                    },
                    "404": {
                        "description": "Patient not found",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/plans": {
            "get": {
                "tags": ["Plans"],
                "summary": "List the plan catalog",
                "description": "Returns catalog plans ordered by ascending risk-range floor",
                "operationId": "listPlans",
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/InsurancePlan"}
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/cohort/analysis": {
            "post": {
                "tags": ["Cohort"],
                "summary": "Analyze a cohort",
                "description": "Aggregates risk distribution, common conditions and profitability over a named subset or the whole population",
                "operationId": "analyzeCohort",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "schema": {"$ref": "#/definitions/CohortRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"$ref": "#/definitions/CohortSummary"}
                    },
                    "400": {
                        "description": "Invalid request or empty cohort",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    },
                    "404": {
                        "description": "Unknown patient ID",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        }
    },
    "definitions": {
        "PatientProfile": {
            "type": "object",
            "required": ["patientId", "name", "age"],
            "properties": {
                "patientId": {"type": "string"},
                "name": {"type": "string"},
                "age": {"type": "integer", "minimum": 0},
                "gender": {"type": "string"},
                "chronicConditions": {"type": "array", "items": {"type": "string"}},
                "allergies": {"type": "array", "items": {"type": "string"}},
                "familyHistory": {"type": "array", "items": {"type": "string"}},
                "lifestyle": {"$ref": "#/definitions/Lifestyle"},
                "claimsHistory": {"$ref": "#/definitions/ClaimsHistory"},
                "riskScore": {"type": "integer", "minimum": 0, "maximum": 100},
                "riskLevel": {"type": "string", "enum": ["Low", "Moderate", "High", "Critical"]},
                "recentHospitalizations": {"type": "integer"},
                "medicationCompliance": {"type": "integer"}
            }
        },
        "Lifestyle": {
            "type": "object",
            "properties": {
                "smoking": {"type": "boolean"},
                "alcohol": {"type": "boolean"},
                "exercise": {"type": "string", "enum": ["low", "moderate", "high"]},
                "diet": {"type": "string", "enum": ["poor", "average", "good"]}
            }
        },
        "ClaimsHistory": {
            "type": "object",
            "properties": {
                "totalClaims": {"type": "integer"},
                "totalAmount": {"type": "number"},
                "frequentConditions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "RiskAssessment": {
            "type": "object",
            "properties": {
                "overallScore": {"type": "integer", "minimum": 0, "maximum": 100},
                "riskLevel": {"type": "string", "enum": ["Low", "Moderate", "High", "Critical"]},
                "factors": {"$ref": "#/definitions/RiskFactorBreakdown"}
            }
        },
        "RiskFactorBreakdown": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "chronicConditions": {"type": "integer"},
                "lifestyle": {"type": "integer"},
                "familyHistory": {"type": "integer"},
                "claimsHistory": {"type": "integer"}
            }
        },
        "InsurancePlan": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["Basic", "Standard", "Premium", "Comprehensive"]},
                "basePremium": {"type": "number"},
                "coverage": {"$ref": "#/definitions/Coverage"},
                "maxCoverage": {"type": "integer"},
                "deductible": {"type": "integer"},
                "riskRange": {
                    "type": "object",
                    "properties": {
                        "min": {"type": "integer"},
                        "max": {"type": "integer"}
                    }
                }
            }
        },
        "Coverage": {
            "type": "object",
            "properties": {
                "medical": {"type": "integer"},
                "hospital": {"type": "integer"},
                "prescription": {"type": "integer"},
                "preventive": {"type": "integer"},
                "mentalHealth": {"type": "integer"},
                "dental": {"type": "integer"},
                "vision": {"type": "integer"}
            }
        },
        "Recommendation": {
            "type": "object",
            "properties": {
                "patientId": {"type": "string"},
                "riskAssessment": {"$ref": "#/definitions/RiskAssessment"},
                "recommendedPlan": {"type": "object"},
                "customizations": {"type": "object"},
                "aiInsights": {
                    "type": "object",
                    "properties": {
                        "summary": {"type": "string"},
                        "costPredictions": {
                            "type": "object",
                            "properties": {
                                "year1": {"type": "integer"},
                                "year3": {"type": "integer"},
                                "year5": {"type": "integer"}
                            }
                        },
                        "generatedBy": {"type": "string", "enum": ["ai", "deterministic"]}
                    }
                },
                "generatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "CohortRequest": {
            "type": "object",
            "properties": {
                "patientIds": {"type": "array", "items": {"type": "string"}},
                "topConditions": {"type": "integer"}
            }
        },
        "CohortSummary": {
            "type": "object",
            "properties": {
                "patients": {"type": "integer"},
                "riskDistribution": {"type": "object", "additionalProperties": {"type": "integer"}},
                "commonConditions": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "condition": {"type": "string"},
                            "count": {"type": "integer"}
                        }
                    }
                },
                "averageRiskScore": {"type": "number"},
                "totalClaimsAmount": {"type": "number"},
                "profitability": {"type": "string"},
                "recommendedPolicies": {"type": "array", "items": {"type": "string"}}
            }
        },
        "ProblemDetails": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "title": {"type": "string"},
                "status": {"type": "integer"},
                "detail": {"type": "string"},
                "instance": {"type": "string"}
            }
        }
    },
    "tags": [
        {"name": "Recommendations", "description": "Risk scoring and plan recommendation"},
        {"name": "Patients", "description": "Stored patient population"},
        {"name": "Plans", "description": "Insurance plan catalog"},
        {"name": "Cohort", "description": "Population-level analytics"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Risk Engine API",
	Description:      "Insurance Risk Assessment and Policy Recommendation API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
