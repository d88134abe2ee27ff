package core

// ScoringPolicy selects which of the two scoring variants applies. The portal
// historically used one formula when quoting an individual policy and another
// when analyzing a portfolio; both are kept as distinct, selectable policies
// rather than being merged into one.
type ScoringPolicy string

const (
	// ScoringUnderwriting is the policy-recommendation variant.
	ScoringUnderwriting ScoringPolicy = "underwriting"
	// ScoringPortfolio is the risk-analyzer variant used by cohort analytics.
	ScoringPortfolio ScoringPolicy = "portfolio"
)

// RiskFactorBreakdown holds the five sub-scores that make up an overall risk
// score. Each is individually capped; the overall score caps at 100.
type RiskFactorBreakdown struct {
	Age               int `json:"age"`
	ChronicConditions int `json:"chronicConditions"`
	Lifestyle         int `json:"lifestyle"`
	FamilyHistory     int `json:"familyHistory"`
	ClaimsHistory     int `json:"claimsHistory"`
}

// RiskAssessment is the scored view of a profile. Pure function of its input:
// the same profile always produces the same assessment.
type RiskAssessment struct {
	OverallScore int                 `json:"overallScore"`
	Level        RiskLevel           `json:"riskLevel"`
	Factors      RiskFactorBreakdown `json:"factors"`
}

const (
	maxChronicScore = 40
	maxFamilyScore  = 15
	maxOverallScore = 100
)

// ComputeFactors derives the factor breakdown for a profile under the given
// scoring policy. The profile is expected to be validated and normalized.
func ComputeFactors(p PatientProfile, policy ScoringPolicy) RiskFactorBreakdown {
	f := RiskFactorBreakdown{
		ChronicConditions: min(len(p.ChronicConditions)*15, maxChronicScore),
		Lifestyle:         lifestyleScore(p.Lifestyle),
		FamilyHistory:     min(len(p.FamilyHistory)*3, maxFamilyScore),
		ClaimsHistory:     claimsScore(p.Claims),
	}
	if policy == ScoringPortfolio {
		f.Age = ageScorePortfolio(p.Age)
	} else {
		f.Age = ageScoreUnderwriting(p.Age)
	}
	return f
}

// OverallScore sums the breakdown and caps the result at 100.
func (f RiskFactorBreakdown) OverallScore() int {
	sum := f.Age + f.ChronicConditions + f.Lifestyle + f.FamilyHistory + f.ClaimsHistory
	return min(sum, maxOverallScore)
}

// AssessRisk scores and classifies a profile under one policy.
func AssessRisk(p PatientProfile, policy ScoringPolicy) RiskAssessment {
	factors := ComputeFactors(p, policy)
	score := factors.OverallScore()
	return RiskAssessment{
		OverallScore: score,
		Level:        Classify(score, policy),
		Factors:      factors,
	}
}

func ageScoreUnderwriting(age int) int {
	switch {
	case age < 25:
		return 10
	case age < 40:
		return 15
	case age < 55:
		return 25
	case age < 65:
		return 35
	default:
		return 45
	}
}

// ageScorePortfolio starts from a base of 20 and adds a single bucket
// adjustment. The buckets are exclusive; an age over 60 takes only the
// senior adjustment.
func ageScorePortfolio(age int) int {
	score := 20
	switch {
	case age > 60:
		score += 25
	case age > 40:
		score += 15
	case age < 25:
		score += 5
	}
	return score
}

// lifestyleScore is an uncapped sum: each flag contributes independently.
func lifestyleScore(l Lifestyle) int {
	score := 0
	if l.Smoking {
		score += 25
	}
	if l.Alcohol {
		score += 5
	}
	if l.Exercise == ExerciseLow {
		score += 10
	}
	if l.Diet == DietPoor {
		score += 10
	}
	return score
}

// claimsScore: the three conditions are independent and additive. A history
// over 100000 earns both amount surcharges.
func claimsScore(c ClaimsHistory) int {
	score := 0
	if c.TotalClaims > 5 {
		score += 15
	}
	if c.TotalAmount > 50000 {
		score += 20
	}
	if c.TotalAmount > 100000 {
		score += 15
	}
	return score
}
