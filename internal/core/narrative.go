package core

import (
	"context"
	"fmt"
	"strings"
)

// NarrativeGenerator produces free-form narrative text for a prompt. It is an
// external, best-effort collaborator: it may time out, fail or return empty
// text, and callers must be prepared to continue without it.
type NarrativeGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FallbackNarrative is the fixed summary substituted whenever no generator
// produces usable text. The numbers are the contract; the narrative is
// decoration.
const FallbackNarrative = "Risk assessment completed using standard underwriting guidelines."

// Narrative source labels carried on AIInsights.GeneratedBy.
const (
	NarrativeSourceAI            = "ai"
	NarrativeSourceDeterministic = "deterministic"
)

// BuildNarrativePrompt renders the deterministic result into a prompt for the
// generator. Only already-computed figures go in; the generator never
// influences them.
func BuildNarrativePrompt(p PatientProfile, a RiskAssessment, plan RecommendedPlan) string {
	var b strings.Builder
	b.WriteString("Write a short insurance risk summary for the following member.\n")
	fmt.Fprintf(&b, "Age: %d\n", p.Age)
	if len(p.ChronicConditions) > 0 {
		fmt.Fprintf(&b, "Chronic conditions: %s\n", strings.Join(p.ChronicConditions, ", "))
	}
	fmt.Fprintf(&b, "Smoker: %t\n", p.Lifestyle.Smoking)
	fmt.Fprintf(&b, "Overall risk score: %d (%s)\n", a.OverallScore, a.Level)
	fmt.Fprintf(&b, "Recommended plan: %s (%s tier), monthly premium %d\n",
		plan.Name, plan.Type, plan.MonthlyPremium)
	b.WriteString("Do not change any figures; explain the assessment in plain language.")
	return b.String()
}
