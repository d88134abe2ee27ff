package core

// RiskLevel is the ordinal classification of a risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// RiskLevels lists all levels in ascending severity. Used to zero-fill
// distributions.
var RiskLevels = []RiskLevel{RiskLow, RiskModerate, RiskHigh, RiskCritical}

// ClassifyUnderwriting maps a score to a level using the policy-recommendation
// cut lines.
func ClassifyUnderwriting(score int) RiskLevel {
	switch {
	case score < 35:
		return RiskLow
	case score < 55:
		return RiskModerate
	case score < 75:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// ClassifyPortfolio maps a score to a level using the risk-analyzer cut lines.
// Deliberately different from ClassifyUnderwriting; the two tables must not be
// unified.
func ClassifyPortfolio(score int) RiskLevel {
	switch {
	case score < 40:
		return RiskLow
	case score < 65:
		return RiskModerate
	case score < 80:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// Classify dispatches on scoring policy.
func Classify(score int, policy ScoringPolicy) RiskLevel {
	if policy == ScoringPortfolio {
		return ClassifyPortfolio(score)
	}
	return ClassifyUnderwriting(score)
}
