package core

import (
	"errors"
	"testing"
)

func TestPatientProfileValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*PatientProfile)
		wantErr bool
	}{
		{"valid", func(p *PatientProfile) {}, false},
		{"negative age", func(p *PatientProfile) { p.Age = -5 }, true},
		{"negative claims count", func(p *PatientProfile) { p.Claims.TotalClaims = -1 }, true},
		{"negative claims amount", func(p *PatientProfile) { p.Claims.TotalAmount = -0.5 }, true},
		{"risk score above range", func(p *PatientProfile) { s := 101; p.RiskScore = &s }, true},
		{"risk score below range", func(p *PatientProfile) { s := -1; p.RiskScore = &s }, true},
		{"risk score in range", func(p *PatientProfile) { s := 55; p.RiskScore = &s }, false},
		{"unknown exercise level", func(p *PatientProfile) { p.Lifestyle.Exercise = "extreme" }, true},
		{"unknown diet", func(p *PatientProfile) { p.Lifestyle.Diet = "keto" }, true},
		{"empty lifestyle enums allowed", func(p *PatientProfile) { p.Lifestyle = Lifestyle{} }, false},
		{"negative hospitalizations", func(p *PatientProfile) { p.RecentHospitalizations = -1 }, true},
		{"compliance above 100", func(p *PatientProfile) { p.MedicationCompliance = 120 }, true},
	}
	for _, tc := range cases {
		p := baselineProfile()
		tc.mutate(&p)
		err := p.Validate()
		if tc.wantErr && !errors.Is(err, ErrValidation) {
			t.Errorf("%s: err = %v, want validation error", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestNormalized_DefaultsAndDedupe(t *testing.T) {
	p := PatientProfile{
		Age:               30,
		ChronicConditions: []string{"Diabetes", "  diabetes", "COPD", ""},
		Allergies:         []string{"Penicillin", "penicillin"},
		FamilyHistory:     []string{"Cancer"},
	}

	n := p.Normalized()
	if len(n.ChronicConditions) != 2 {
		t.Errorf("conditions = %v, want 2 distinct entries", n.ChronicConditions)
	}
	if n.ChronicConditions[0] != "diabetes" || n.ChronicConditions[1] != "copd" {
		t.Errorf("conditions = %v, want lowercased first-seen order", n.ChronicConditions)
	}
	if len(n.Allergies) != 1 {
		t.Errorf("allergies = %v, want deduplicated", n.Allergies)
	}
	if n.Lifestyle.Exercise != ExerciseModerate || n.Lifestyle.Diet != DietAverage {
		t.Errorf("lifestyle defaults not applied: %+v", n.Lifestyle)
	}

	// The receiver is untouched.
	if p.ChronicConditions[0] != "Diabetes" {
		t.Errorf("original profile mutated: %v", p.ChronicConditions)
	}
}
