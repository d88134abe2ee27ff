package core

import "sort"

// ConditionCount pairs a chronic condition with its cohort-wide frequency.
type ConditionCount struct {
	Condition string `json:"condition"`
	Count     int    `json:"count"`
}

// CohortSummary is the portfolio-level view over a patient population.
type CohortSummary struct {
	Patients            int               `json:"patients"`
	RiskDistribution    map[RiskLevel]int `json:"riskDistribution"`
	CommonConditions    []ConditionCount  `json:"commonConditions"`
	AverageRiskScore    float64           `json:"averageRiskScore"`
	TotalClaimsAmount   float64           `json:"totalClaimsAmount"`
	Profitability       string            `json:"profitability"`
	RecommendedPolicies []string          `json:"recommendedPolicies"`
}

const (
	ProfitabilityHigh     = "High profitability"
	ProfitabilityModerate = "Moderate profitability"
	ProfitabilityLow      = "Low profitability"
)

// DefaultTopConditions is the condition count reported by the API surface;
// the portfolio snapshot worker asks for TopConditionsSnapshot.
const (
	DefaultTopConditions  = 5
	TopConditionsSnapshot = 8
)

// AnalyzeCohort aggregates a population in a single pass. Profiles carrying a
// stored risk score are trusted; the rest are rescored under the portfolio
// policy. Inputs are never mutated.
func AnalyzeCohort(profiles []PatientProfile, topN int) (CohortSummary, error) {
	if len(profiles) == 0 {
		return CohortSummary{}, ErrEmptyCohort
	}
	if topN <= 0 {
		topN = DefaultTopConditions
	}

	distribution := make(map[RiskLevel]int, len(RiskLevels))
	for _, level := range RiskLevels {
		distribution[level] = 0
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	var scoreSum int
	var claimsTotal float64

	for _, p := range profiles {
		p = p.Normalized()

		score, level := cohortScore(p)
		distribution[level]++
		scoreSum += score
		claimsTotal += p.Claims.TotalAmount

		for _, cond := range p.ChronicConditions {
			if _, ok := counts[cond]; !ok {
				firstSeen[cond] = len(order)
				order = append(order, cond)
			}
			counts[cond]++
		}
	}

	common := make([]ConditionCount, 0, len(order))
	for _, cond := range order {
		common = append(common, ConditionCount{Condition: cond, Count: counts[cond]})
	}
	// Descending by count; ties keep first-seen order.
	sort.SliceStable(common, func(i, j int) bool {
		if common[i].Count != common[j].Count {
			return common[i].Count > common[j].Count
		}
		return firstSeen[common[i].Condition] < firstSeen[common[j].Condition]
	})
	if len(common) > topN {
		common = common[:topN]
	}

	avgRisk := float64(scoreSum) / float64(len(profiles))

	return CohortSummary{
		Patients:            len(profiles),
		RiskDistribution:    distribution,
		CommonConditions:    common,
		AverageRiskScore:    avgRisk,
		TotalClaimsAmount:   claimsTotal,
		Profitability:       classifyProfitability(avgRisk, claimsTotal),
		RecommendedPolicies: recommendedPolicies(avgRisk, claimsTotal),
	}, nil
}

func cohortScore(p PatientProfile) (int, RiskLevel) {
	if p.RiskScore != nil {
		score := *p.RiskScore
		level := p.RiskLevel
		if level == "" {
			level = ClassifyPortfolio(score)
		}
		return score, level
	}
	score := ComputeFactors(p, ScoringPortfolio).OverallScore()
	return score, ClassifyPortfolio(score)
}

func classifyProfitability(avgRisk, totalClaims float64) string {
	switch {
	case avgRisk < 50 && totalClaims < 100000:
		return ProfitabilityHigh
	case avgRisk < 70:
		return ProfitabilityModerate
	default:
		return ProfitabilityLow
	}
}

// recommendedPolicies returns a fixed three-item playbook per profitability
// tier; the tiers follow the same thresholds as the classification.
func recommendedPolicies(avgRisk, totalClaims float64) []string {
	switch {
	case avgRisk < 50 && totalClaims < 100000:
		return []string{
			"Offer preferred rates to retain low-risk members",
			"Expand wellness incentive programs",
			"Introduce deductible buy-down options",
		}
	case avgRisk < 70:
		return []string{
			"Maintain standard rates with annual review",
			"Target preventive care engagement for chronic members",
			"Adjust deductibles on high-utilization segments",
		}
	default:
		return []string{
			"Apply premium loadings to highest-risk segments",
			"Require disease management program enrollment",
			"Tighten pre-authorization on high-cost procedures",
		}
	}
}
