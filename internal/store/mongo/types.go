package mongo

import "github.com/veridianhealth/riskengine/internal/core"

// Collection names.
const (
	ColPatients = "patients"
	ColPlans    = "plans"
)

// PatientDoc is the storage shape of a patient profile. Kept separate from the
// core type so wire names can evolve without touching the domain.
type PatientDoc struct {
	ID                     string        `bson:"_id"`
	Name                   string        `bson:"name"`
	Age                    int           `bson:"age"`
	Gender                 string        `bson:"gender,omitempty"`
	ChronicConditions      []string      `bson:"chronic_conditions,omitempty"`
	Allergies              []string      `bson:"allergies,omitempty"`
	FamilyHistory          []string      `bson:"family_history,omitempty"`
	Lifestyle              LifestyleDoc  `bson:"lifestyle"`
	Claims                 ClaimsDoc     `bson:"claims_history"`
	RiskScore              *int          `bson:"risk_score,omitempty"`
	RiskLevel              string        `bson:"risk_level,omitempty"`
	RecentHospitalizations int           `bson:"recent_hospitalizations,omitempty"`
	MedicationCompliance   int           `bson:"medication_compliance,omitempty"`
}

type LifestyleDoc struct {
	Smoking  bool   `bson:"smoking"`
	Alcohol  bool   `bson:"alcohol"`
	Exercise string `bson:"exercise,omitempty"`
	Diet     string `bson:"diet,omitempty"`
}

type ClaimsDoc struct {
	TotalClaims        int      `bson:"total_claims"`
	TotalAmount        float64  `bson:"total_amount"`
	FrequentConditions []string `bson:"frequent_conditions,omitempty"`
}

type PlanDoc struct {
	ID          string      `bson:"_id"`
	Name        string      `bson:"name"`
	Type        string      `bson:"type"`
	BasePremium float64     `bson:"base_premium"`
	Coverage    CoverageDoc `bson:"coverage"`
	MaxCoverage int64       `bson:"max_coverage"`
	Deductible  int         `bson:"deductible"`
	RiskMin     int         `bson:"risk_min"`
	RiskMax     int         `bson:"risk_max"`
}

type CoverageDoc struct {
	Medical      int `bson:"medical"`
	Hospital     int `bson:"hospital"`
	Prescription int `bson:"prescription"`
	Preventive   int `bson:"preventive"`
	MentalHealth int `bson:"mental_health"`
	Dental       int `bson:"dental"`
	Vision       int `bson:"vision"`
}

func fromPatientDoc(d PatientDoc) core.PatientProfile {
	return core.PatientProfile{
		PatientID:         d.ID,
		Name:              d.Name,
		Age:               d.Age,
		Gender:            d.Gender,
		ChronicConditions: d.ChronicConditions,
		Allergies:         d.Allergies,
		FamilyHistory:     d.FamilyHistory,
		Lifestyle: core.Lifestyle{
			Smoking:  d.Lifestyle.Smoking,
			Alcohol:  d.Lifestyle.Alcohol,
			Exercise: core.ExerciseLevel(d.Lifestyle.Exercise),
			Diet:     core.DietQuality(d.Lifestyle.Diet),
		},
		Claims: core.ClaimsHistory{
			TotalClaims:        d.Claims.TotalClaims,
			TotalAmount:        d.Claims.TotalAmount,
			FrequentConditions: d.Claims.FrequentConditions,
		},
		RiskScore:              d.RiskScore,
		RiskLevel:              core.RiskLevel(d.RiskLevel),
		RecentHospitalizations: d.RecentHospitalizations,
		MedicationCompliance:   d.MedicationCompliance,
	}
}

func toPatientDoc(p core.PatientProfile) PatientDoc {
	return PatientDoc{
		ID:                p.PatientID,
		Name:              p.Name,
		Age:               p.Age,
		Gender:            p.Gender,
		ChronicConditions: p.ChronicConditions,
		Allergies:         p.Allergies,
		FamilyHistory:     p.FamilyHistory,
		Lifestyle: LifestyleDoc{
			Smoking:  p.Lifestyle.Smoking,
			Alcohol:  p.Lifestyle.Alcohol,
			Exercise: string(p.Lifestyle.Exercise),
			Diet:     string(p.Lifestyle.Diet),
		},
		Claims: ClaimsDoc{
			TotalClaims:        p.Claims.TotalClaims,
			TotalAmount:        p.Claims.TotalAmount,
			FrequentConditions: p.Claims.FrequentConditions,
		},
		RiskScore:              p.RiskScore,
		RiskLevel:              string(p.RiskLevel),
		RecentHospitalizations: p.RecentHospitalizations,
		MedicationCompliance:   p.MedicationCompliance,
	}
}

func fromPlanDoc(d PlanDoc) core.InsurancePlan {
	return core.InsurancePlan{
		ID:          d.ID,
		Name:        d.Name,
		Type:        core.PlanTier(d.Type),
		BasePremium: d.BasePremium,
		Coverage: core.Coverage{
			Medical:      d.Coverage.Medical,
			Hospital:     d.Coverage.Hospital,
			Prescription: d.Coverage.Prescription,
			Preventive:   d.Coverage.Preventive,
			MentalHealth: d.Coverage.MentalHealth,
			Dental:       d.Coverage.Dental,
			Vision:       d.Coverage.Vision,
		},
		MaxCoverage: d.MaxCoverage,
		Deductible:  d.Deductible,
		RiskRange:   core.RiskRange{Min: d.RiskMin, Max: d.RiskMax},
	}
}

func toPlanDoc(p core.InsurancePlan) PlanDoc {
	return PlanDoc{
		ID:          p.ID,
		Name:        p.Name,
		Type:        string(p.Type),
		BasePremium: p.BasePremium,
		Coverage: CoverageDoc{
			Medical:      p.Coverage.Medical,
			Hospital:     p.Coverage.Hospital,
			Prescription: p.Coverage.Prescription,
			Preventive:   p.Coverage.Preventive,
			MentalHealth: p.Coverage.MentalHealth,
			Dental:       p.Coverage.Dental,
			Vision:       p.Coverage.Vision,
		},
		MaxCoverage: p.MaxCoverage,
		Deductible:  p.Deductible,
		RiskMin:     p.RiskRange.Min,
		RiskMax:     p.RiskRange.Max,
	}
}
