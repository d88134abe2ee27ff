package core

import (
	"fmt"
	"strings"
)

// WaitingPeriod delays coverage of a benefit category for a number of months.
type WaitingPeriod struct {
	Coverage string `json:"coverage"`
	Months   int    `json:"months"`
}

// Discount is an independent eligibility flag, not part of a single combined
// rate.
type Discount struct {
	Reason  string `json:"reason"`
	Percent int    `json:"percent"`
}

// Customizations are the policy adjustments derived from a patient profile.
type Customizations struct {
	Exclusions        []string        `json:"exclusions"`
	WaitingPeriods    []WaitingPeriod `json:"waitingPeriods"`
	SpecialConditions []string        `json:"specialConditions"`
	Discounts         []Discount      `json:"discounts"`
	PreventiveCare    []string        `json:"preventiveCare"`
	RiskMitigation    []string        `json:"riskMitigation"`
}

// Customize derives exclusions, waiting periods, special conditions, discount
// eligibility and care recommendations from a normalized profile.
func Customize(p PatientProfile) Customizations {
	return Customizations{
		Exclusions:        exclusions(p),
		WaitingPeriods:    waitingPeriods(p),
		SpecialConditions: specialConditions(p),
		Discounts:         discounts(p),
		PreventiveCare:    preventiveCare(p),
		RiskMitigation:    riskMitigation(p),
	}
}

func exclusions(p PatientProfile) []string {
	var out []string
	for _, cond := range p.ChronicConditions {
		out = append(out, fmt.Sprintf("Pre-existing %s complications (first 12 months)", cond))
	}
	if p.Lifestyle.Smoking {
		out = append(out, "Smoking-related illnesses (first 24 months)")
	}
	return out
}

func waitingPeriods(p PatientProfile) []WaitingPeriod {
	var out []WaitingPeriod
	if len(p.ChronicConditions) > 0 {
		out = append(out, WaitingPeriod{Coverage: "Pre-existing conditions", Months: 12})
	}
	if containsCondition(p.FamilyHistory, "cancer") {
		out = append(out, WaitingPeriod{Coverage: "Cancer coverage", Months: 24})
	}
	return out
}

func specialConditions(p PatientProfile) []string {
	var out []string
	if len(p.ChronicConditions) > 2 {
		out = append(out, "Requires medical examination and physician report")
	}
	if p.Claims.TotalAmount > 100000 {
		out = append(out, "Subject to claims review and medical underwriting")
	}
	return out
}

func discounts(p PatientProfile) []Discount {
	var out []Discount
	if !p.Lifestyle.Smoking {
		out = append(out, Discount{Reason: "Non-smoker", Percent: 10})
	}
	if p.Lifestyle.Exercise == ExerciseHigh {
		out = append(out, Discount{Reason: "Active lifestyle", Percent: 5})
	}
	if p.Age < 30 {
		out = append(out, Discount{Reason: "Under 30", Percent: 15})
	}
	return out
}

func preventiveCare(p PatientProfile) []string {
	out := []string{"Annual comprehensive health screening"}

	if containsCondition(p.ChronicConditions, "diabet") {
		out = append(out, "Quarterly diabetes monitoring and A1C testing")
	}
	if containsCondition(p.ChronicConditions, "hypertension") {
		out = append(out, "Monthly blood pressure monitoring")
	}
	if containsCondition(p.ChronicConditions, "heart") {
		out = append(out, "Annual cardiac evaluation and stress testing")
	}
	if containsCondition(p.ChronicConditions, "asthma") || containsCondition(p.ChronicConditions, "copd") {
		out = append(out, "Annual pulmonary function testing")
	}
	if p.Lifestyle.Smoking {
		out = append(out, "Smoking cessation program enrollment")
	}
	if p.Lifestyle.Exercise == ExerciseLow {
		out = append(out, "Structured exercise program with progress tracking")
	}
	if p.Lifestyle.Diet == DietPoor {
		out = append(out, "Nutritionist consultation and dietary plan")
	}
	return out
}

func riskMitigation(p PatientProfile) []string {
	// Two baseline strategies apply to every member.
	out := []string{
		"Regular care coordination with primary care physician",
		"Personalized health coaching program",
	}

	if p.Lifestyle.Smoking {
		out = append(out, "Nicotine replacement therapy and cessation counseling")
	}
	if len(p.ChronicConditions) > 2 {
		out = append(out, "Dedicated case manager for chronic disease management")
	}
	if p.Lifestyle.Exercise == ExerciseLow {
		out = append(out, "Gradual physical activity plan with periodic reassessment")
	}
	if p.Claims.TotalClaims > 5 {
		out = append(out, "Claims utilization review and proactive care planning")
	}
	return out
}

// containsCondition does a case-insensitive substring match so that entries
// like "type 2 diabetes" trigger the diabetes rules.
func containsCondition(conditions []string, needle string) bool {
	for _, c := range conditions {
		if strings.Contains(strings.ToLower(c), needle) {
			return true
		}
	}
	return false
}
