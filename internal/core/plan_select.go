package core

import (
	"github.com/shopspring/decimal"
)

// RecommendedPlan is a plan with patient-specific premium figures applied.
type RecommendedPlan struct {
	PlanID            string   `json:"planId,omitempty"`
	Name              string   `json:"name"`
	Type              PlanTier `json:"type"`
	MonthlyPremium    int64    `json:"monthlyPremium"`
	AnnualPremium     int64    `json:"annualPremium"`
	PremiumMultiplier float64  `json:"premiumMultiplier"`
	Coverage          Coverage `json:"coverage"`
	Deductible        int      `json:"deductible"`
	MaxOutOfPocket    int      `json:"maxOutOfPocket"`
	MaxCoverage       int64    `json:"maxCoverage"`
}

// SelectPlan synthesizes a plan from the fixed tier tables for the given
// overall score, applying the patient's premium multiplier.
func SelectPlan(score int, p PatientProfile) RecommendedPlan {
	tier := TierForScore(score)
	t := tierTables[tier]

	mult := premiumMultiplier(p)
	monthly := applyMultiplier(decimal.NewFromInt(t.basePremium), mult)

	return RecommendedPlan{
		Name:              t.name,
		Type:              tier,
		MonthlyPremium:    monthly,
		AnnualPremium:     monthly * 12,
		PremiumMultiplier: mult.InexactFloat64(),
		Coverage:          t.coverage,
		Deductible:        t.deductible,
		MaxOutOfPocket:    t.maxOutOfPocket,
		MaxCoverage:       t.maxCoverage,
	}
}

// SelectPlanFromCatalog picks the first catalog entry whose risk range contains
// the score. When no range matches, the last entry is assumed to be the
// highest tier and wins. An empty catalog is rejected.
func SelectPlanFromCatalog(score int, p PatientProfile, catalog []InsurancePlan) (RecommendedPlan, error) {
	if len(catalog) == 0 {
		return RecommendedPlan{}, ErrCatalogEmpty
	}

	selected := catalog[len(catalog)-1]
	for _, plan := range catalog {
		if plan.RiskRange.Contains(score) {
			selected = plan
			break
		}
	}

	mult := premiumMultiplier(p)
	monthly := applyMultiplier(decimal.NewFromFloat(selected.BasePremium), mult)

	rec := RecommendedPlan{
		PlanID:            selected.ID,
		Name:              selected.Name,
		Type:              selected.Type,
		MonthlyPremium:    monthly,
		AnnualPremium:     monthly * 12,
		PremiumMultiplier: mult.InexactFloat64(),
		Coverage:          selected.Coverage,
		Deductible:        selected.Deductible,
		MaxCoverage:       selected.MaxCoverage,
	}
	// The catalog does not carry out-of-pocket maxima; take the figure from
	// the entry's tier.
	if t, ok := tierTables[selected.Type]; ok {
		rec.MaxOutOfPocket = t.maxOutOfPocket
	}
	return rec, nil
}

// premiumMultiplier composes the patient's surcharges additively on top of a
// base of 1. The flags are independent: a 62-year-old smoker with three
// chronic conditions carries all three loadings.
func premiumMultiplier(p PatientProfile) decimal.Decimal {
	mult := decimal.NewFromInt(1)
	if p.Lifestyle.Smoking {
		mult = mult.Add(decimal.NewFromFloat(0.30))
	}
	if len(p.ChronicConditions) > 2 {
		mult = mult.Add(decimal.NewFromFloat(0.20))
	}
	if p.Age > 60 {
		mult = mult.Add(decimal.NewFromFloat(0.15))
	}
	return mult
}

// applyMultiplier rounds half away from zero, matching the portal's rounding.
func applyMultiplier(base, mult decimal.Decimal) int64 {
	return base.Mul(mult).Round(0).IntPart()
}
