package core

import "github.com/shopspring/decimal"

// CostProjection estimates annual medical spend at 1, 3 and 5 year horizons.
type CostProjection struct {
	Year1 int64 `json:"year1"`
	Year3 int64 `json:"year3"`
	Year5 int64 `json:"year5"`
}

const projectionBase = 3000

// ProjectCosts derives forward cost estimates from the overall risk score.
// The multiplier scales linearly with risk: a score of 100 doubles the base.
func ProjectCosts(overallScore int) CostProjection {
	base := decimal.NewFromInt(projectionBase)
	riskMultiplier := decimal.NewFromInt(int64(100 + overallScore)).Div(decimal.NewFromInt(100))

	year1 := base.Mul(riskMultiplier)
	return CostProjection{
		Year1: year1.Round(0).IntPart(),
		Year3: year1.Mul(decimal.NewFromFloat(1.15)).Round(0).IntPart(),
		Year5: year1.Mul(decimal.NewFromFloat(1.35)).Round(0).IntPart(),
	}
}
