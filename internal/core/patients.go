package core

import (
	"context"
	"fmt"
	"strings"
)

type ExerciseLevel string
type DietQuality string

const (
	ExerciseLow      ExerciseLevel = "low"
	ExerciseModerate ExerciseLevel = "moderate"
	ExerciseHigh     ExerciseLevel = "high"
)

const (
	DietPoor    DietQuality = "poor"
	DietAverage DietQuality = "average"
	DietGood    DietQuality = "good"
)

// Lifestyle captures the behavioral inputs to risk scoring.
type Lifestyle struct {
	Smoking  bool          `json:"smoking"`
	Alcohol  bool          `json:"alcohol"`
	Exercise ExerciseLevel `json:"exercise"`
	Diet     DietQuality   `json:"diet"`
}

// ClaimsHistory summarizes a patient's prior claims activity.
type ClaimsHistory struct {
	TotalClaims        int      `json:"totalClaims"`
	TotalAmount        float64  `json:"totalAmount"`
	FrequentConditions []string `json:"frequentConditions,omitempty"`
}

// PatientProfile is the read-only input to the engine. Condition, allergy and
// family-history lists behave as sets: ordering is irrelevant and duplicates
// collapse during normalization.
type PatientProfile struct {
	PatientID string `json:"patientId"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender,omitempty"`

	ChronicConditions []string      `json:"chronicConditions,omitempty"`
	Allergies         []string      `json:"allergies,omitempty"`
	FamilyHistory     []string      `json:"familyHistory,omitempty"`
	Lifestyle         Lifestyle     `json:"lifestyle"`
	Claims            ClaimsHistory `json:"claimsHistory"`

	// Set only on profiles that already went through scoring; consumed by
	// cohort analysis. Profiles without a stored score are rescored with the
	// portfolio policy.
	RiskScore              *int      `json:"riskScore,omitempty"`
	RiskLevel              RiskLevel `json:"riskLevel,omitempty"`
	RecentHospitalizations int       `json:"recentHospitalizations,omitempty"`
	MedicationCompliance   int       `json:"medicationCompliance,omitempty"`
}

// PatientRepo is the read side of patient storage. The engine never writes
// patient records; seeding and ingestion live outside this core.
type PatientRepo interface {
	Get(ctx context.Context, id string) (PatientProfile, error)
	List(ctx context.Context) ([]PatientProfile, error)
	ListByRiskLevel(ctx context.Context, level RiskLevel) ([]PatientProfile, error)
}

func (l Lifestyle) Validate() error {
	switch l.Exercise {
	case "", ExerciseLow, ExerciseModerate, ExerciseHigh:
	default:
		return fmt.Errorf("%w: unknown exercise level %q", ErrValidation, l.Exercise)
	}
	switch l.Diet {
	case "", DietPoor, DietAverage, DietGood:
	default:
		return fmt.Errorf("%w: unknown diet quality %q", ErrValidation, l.Diet)
	}
	return nil
}

func (p PatientProfile) Validate() error {
	if p.Age < 0 {
		return fmt.Errorf("%w: age must be >= 0", ErrValidation)
	}
	if p.Claims.TotalClaims < 0 {
		return fmt.Errorf("%w: total claims must be >= 0", ErrValidation)
	}
	if p.Claims.TotalAmount < 0 {
		return fmt.Errorf("%w: total claims amount must be >= 0", ErrValidation)
	}
	if p.RiskScore != nil && (*p.RiskScore < 0 || *p.RiskScore > 100) {
		return fmt.Errorf("%w: risk score must be between 0 and 100", ErrValidation)
	}
	if p.RecentHospitalizations < 0 {
		return fmt.Errorf("%w: recent hospitalizations must be >= 0", ErrValidation)
	}
	if p.MedicationCompliance < 0 || p.MedicationCompliance > 100 {
		return fmt.Errorf("%w: medication compliance must be between 0 and 100", ErrValidation)
	}
	return p.Lifestyle.Validate()
}

// Normalized returns a copy with condition sets deduplicated (case-insensitive,
// first occurrence wins) and lifestyle enums defaulted when absent.
func (p PatientProfile) Normalized() PatientProfile {
	p.ChronicConditions = dedupe(p.ChronicConditions)
	p.Allergies = dedupe(p.Allergies)
	p.FamilyHistory = dedupe(p.FamilyHistory)
	if p.Lifestyle.Exercise == "" {
		p.Lifestyle.Exercise = ExerciseModerate
	}
	if p.Lifestyle.Diet == "" {
		p.Lifestyle.Diet = DietAverage
	}
	return p
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}
