package core

import "time"

// AIInsights carries the narrative decoration over the deterministic result.
// CostPredictions are always the deterministic projection regardless of
// whether the summary came from a generator.
type AIInsights struct {
	Summary         string         `json:"summary"`
	CostPredictions CostProjection `json:"costPredictions"`
	GeneratedBy     string         `json:"generatedBy"`
}

// Recommendation is the complete engine output for one patient. Built fresh
// per request and never persisted by this core.
type Recommendation struct {
	PatientID      string          `json:"patientId,omitempty"`
	RiskAssessment RiskAssessment  `json:"riskAssessment"`
	Plan           RecommendedPlan `json:"recommendedPlan"`
	Customizations Customizations  `json:"customizations"`
	AIInsights     AIInsights      `json:"aiInsights"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}
