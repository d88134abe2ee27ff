package core

import (
	"context"
	"fmt"
)

// PlanTier is one of the four plan categories.
type PlanTier string

const (
	TierBasic         PlanTier = "Basic"
	TierStandard      PlanTier = "Standard"
	TierPremium       PlanTier = "Premium"
	TierComprehensive PlanTier = "Comprehensive"
)

// Coverage holds percentage coverage per benefit category.
type Coverage struct {
	Medical      int `json:"medical"`
	Hospital     int `json:"hospital"`
	Prescription int `json:"prescription"`
	Preventive   int `json:"preventive"`
	MentalHealth int `json:"mentalHealth"`
	Dental       int `json:"dental"`
	Vision       int `json:"vision"`
}

// RiskRange is the inclusive score band a catalog plan targets.
type RiskRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r RiskRange) Contains(score int) bool {
	return score >= r.Min && score <= r.Max
}

// InsurancePlan is an externally-owned catalog entry. The engine only reads
// these; it never mutates the catalog.
type InsurancePlan struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        PlanTier  `json:"type"`
	BasePremium float64   `json:"basePremium"`
	Coverage    Coverage  `json:"coverage"`
	MaxCoverage int64     `json:"maxCoverage"`
	Deductible  int       `json:"deductible"`
	RiskRange   RiskRange `json:"riskRange"`
}

// PlanRepo provides ordered read access to the plan catalog.
type PlanRepo interface {
	List(ctx context.Context) ([]InsurancePlan, error)
}

func (t PlanTier) Valid() bool {
	switch t {
	case TierBasic, TierStandard, TierPremium, TierComprehensive:
		return true
	}
	return false
}

func (p InsurancePlan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing plan name", ErrValidation)
	}
	if !p.Type.Valid() {
		return fmt.Errorf("%w: unknown plan type %q", ErrValidation, p.Type)
	}
	if p.BasePremium <= 0 {
		return fmt.Errorf("%w: base premium must be > 0", ErrValidation)
	}
	if p.RiskRange.Min < 0 || p.RiskRange.Max > 100 || p.RiskRange.Min > p.RiskRange.Max {
		return fmt.Errorf("%w: invalid risk range [%d,%d]", ErrValidation, p.RiskRange.Min, p.RiskRange.Max)
	}
	return nil
}

// tierTable fixes per-tier plan economics. Coverage percentages increase
// monotonically with tier; preventive care is always covered in full.
type tierTable struct {
	name           string
	basePremium    int64
	coverage       Coverage
	deductible     int
	maxOutOfPocket int
	maxCoverage    int64
}

var tierTables = map[PlanTier]tierTable{
	TierBasic: {
		name:        "Essential Care",
		basePremium: 180,
		coverage: Coverage{
			Medical: 70, Hospital: 75, Prescription: 60,
			Preventive: 100, MentalHealth: 50, Dental: 40, Vision: 30,
		},
		deductible:     3000,
		maxOutOfPocket: 8000,
		maxCoverage:    250000,
	},
	TierStandard: {
		name:        "Balanced Care",
		basePremium: 280,
		coverage: Coverage{
			Medical: 80, Hospital: 85, Prescription: 70,
			Preventive: 100, MentalHealth: 60, Dental: 50, Vision: 40,
		},
		deductible:     2000,
		maxOutOfPocket: 6000,
		maxCoverage:    500000,
	},
	TierPremium: {
		name:        "Advanced Care",
		basePremium: 420,
		coverage: Coverage{
			Medical: 90, Hospital: 90, Prescription: 80,
			Preventive: 100, MentalHealth: 75, Dental: 60, Vision: 50,
		},
		deductible:     1000,
		maxOutOfPocket: 4000,
		maxCoverage:    1000000,
	},
	TierComprehensive: {
		name:        "Total Care",
		basePremium: 650,
		coverage: Coverage{
			Medical: 95, Hospital: 100, Prescription: 90,
			Preventive: 100, MentalHealth: 90, Dental: 80, Vision: 70,
		},
		deductible:     500,
		maxOutOfPocket: 2500,
		maxCoverage:    2000000,
	},
}

// TierForScore maps an overall risk score to its synthesized plan tier.
func TierForScore(score int) PlanTier {
	switch {
	case score < 35:
		return TierBasic
	case score < 55:
		return TierStandard
	case score < 75:
		return TierPremium
	default:
		return TierComprehensive
	}
}
