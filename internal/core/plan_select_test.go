package core

import "testing"

func TestTierForScore_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  PlanTier
	}{
		{0, TierBasic}, {34, TierBasic},
		{35, TierStandard}, {54, TierStandard},
		{55, TierPremium}, {74, TierPremium},
		{75, TierComprehensive}, {100, TierComprehensive},
	}
	for _, tc := range cases {
		if got := TierForScore(tc.score); got != tc.want {
			t.Errorf("TierForScore(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestSelectPlan_BasePremiumsRiseWithTier(t *testing.T) {
	p := baselineProfile() // no surcharges: multiplier 1.0
	var prev int64
	for _, score := range []int{10, 40, 60, 90} {
		plan := SelectPlan(score, p)
		if plan.MonthlyPremium <= prev {
			t.Errorf("score %d: premium %d did not increase past %d", score, plan.MonthlyPremium, prev)
		}
		prev = plan.MonthlyPremium
	}
}

func TestSelectPlan_TierTables(t *testing.T) {
	p := baselineProfile()

	plan := SelectPlan(10, p)
	if plan.Type != TierBasic || plan.MonthlyPremium != 180 {
		t.Errorf("basic plan = %s/%d, want Basic/180", plan.Type, plan.MonthlyPremium)
	}
	if plan.Deductible != 3000 || plan.MaxOutOfPocket != 8000 || plan.MaxCoverage != 250000 {
		t.Errorf("basic economics = %d/%d/%d", plan.Deductible, plan.MaxOutOfPocket, plan.MaxCoverage)
	}

	plan = SelectPlan(90, p)
	if plan.Type != TierComprehensive || plan.MonthlyPremium != 650 {
		t.Errorf("comprehensive plan = %s/%d, want Comprehensive/650", plan.Type, plan.MonthlyPremium)
	}
	if plan.Deductible != 500 || plan.MaxOutOfPocket != 2500 || plan.MaxCoverage != 2000000 {
		t.Errorf("comprehensive economics = %d/%d/%d", plan.Deductible, plan.MaxOutOfPocket, plan.MaxCoverage)
	}
	if plan.AnnualPremium != plan.MonthlyPremium*12 {
		t.Errorf("annual premium %d != monthly %d x 12", plan.AnnualPremium, plan.MonthlyPremium)
	}
}

func TestSelectPlan_PreventiveAlwaysFull(t *testing.T) {
	p := baselineProfile()
	for _, score := range []int{10, 40, 60, 90} {
		if plan := SelectPlan(score, p); plan.Coverage.Preventive != 100 {
			t.Errorf("score %d: preventive coverage = %d, want 100", score, plan.Coverage.Preventive)
		}
	}
}

func TestSelectPlan_CoverageMonotoneAcrossTiers(t *testing.T) {
	p := baselineProfile()
	var prev Coverage
	for i, score := range []int{10, 40, 60, 90} {
		c := SelectPlan(score, p).Coverage
		if i > 0 {
			if c.Medical < prev.Medical || c.Hospital < prev.Hospital ||
				c.Prescription < prev.Prescription || c.MentalHealth < prev.MentalHealth ||
				c.Dental < prev.Dental || c.Vision < prev.Vision {
				t.Errorf("coverage regressed between tiers: %+v -> %+v", prev, c)
			}
		}
		prev = c
	}
}

// Worked example: Comprehensive base 650, multiplier 1 + 0.30 + 0.20 + 0.15.
func TestSelectPlan_MultiplierWorkedExample(t *testing.T) {
	p := PatientProfile{
		Age:               65,
		ChronicConditions: []string{"diabetes", "hypertension", "copd"},
		Lifestyle:         Lifestyle{Smoking: true, Exercise: ExerciseModerate, Diet: DietAverage},
	}.Normalized()

	plan := SelectPlan(100, p)
	if plan.MonthlyPremium != 1073 {
		t.Errorf("monthly premium = %d, want round(650 x 1.65) = 1073", plan.MonthlyPremium)
	}
	if plan.AnnualPremium != 12876 {
		t.Errorf("annual premium = %d, want 12876", plan.AnnualPremium)
	}
	if plan.PremiumMultiplier != 1.65 {
		t.Errorf("multiplier = %v, want 1.65", plan.PremiumMultiplier)
	}
}

func TestPremiumMultiplier_IndependentSurcharges(t *testing.T) {
	cases := []struct {
		name string
		p    PatientProfile
		want float64
	}{
		{"clean", baselineProfile(), 1.0},
		{"smoker", PatientProfile{Age: 30, Lifestyle: Lifestyle{Smoking: true}}, 1.30},
		{"chronic x3", PatientProfile{Age: 30, ChronicConditions: []string{"a", "b", "c"}}, 1.20},
		{"chronic x2 no surcharge", PatientProfile{Age: 30, ChronicConditions: []string{"a", "b"}}, 1.0},
		{"senior", PatientProfile{Age: 61}, 1.15},
		{"age 60 exactly no surcharge", PatientProfile{Age: 60}, 1.0},
	}
	for _, tc := range cases {
		if got := premiumMultiplier(tc.p.Normalized()).InexactFloat64(); got != tc.want {
			t.Errorf("%s: multiplier = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func testCatalog() []InsurancePlan {
	return []InsurancePlan{
		{
			ID: "pl-basic", Name: "Starter Shield", Type: TierBasic, BasePremium: 200,
			Coverage:    Coverage{Medical: 70, Preventive: 100},
			MaxCoverage: 250000, Deductible: 3000,
			RiskRange: RiskRange{Min: 0, Max: 34},
		},
		{
			ID: "pl-standard", Name: "Core Shield", Type: TierStandard, BasePremium: 300,
			Coverage:    Coverage{Medical: 80, Preventive: 100},
			MaxCoverage: 500000, Deductible: 2000,
			RiskRange: RiskRange{Min: 35, Max: 54},
		},
		{
			ID: "pl-comp", Name: "Max Shield", Type: TierComprehensive, BasePremium: 700,
			Coverage:    Coverage{Medical: 95, Preventive: 100},
			MaxCoverage: 2000000, Deductible: 500,
			RiskRange: RiskRange{Min: 55, Max: 74},
		},
	}
}

func TestSelectPlanFromCatalog_FirstMatchWins(t *testing.T) {
	plan, err := SelectPlanFromCatalog(40, baselineProfile(), testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.PlanID != "pl-standard" {
		t.Errorf("selected %s, want pl-standard", plan.PlanID)
	}
	if plan.MonthlyPremium != 300 {
		t.Errorf("monthly premium = %d, want 300", plan.MonthlyPremium)
	}
	if plan.MaxOutOfPocket != 6000 {
		t.Errorf("max out-of-pocket = %d, want tier-table 6000", plan.MaxOutOfPocket)
	}
}

func TestSelectPlanFromCatalog_NoMatchFallsBackToLast(t *testing.T) {
	// Score 90 is outside every range; the last (highest-tier) entry wins.
	plan, err := SelectPlanFromCatalog(90, baselineProfile(), testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.PlanID != "pl-comp" {
		t.Errorf("selected %s, want fallback pl-comp", plan.PlanID)
	}
}

func TestSelectPlanFromCatalog_EmptyCatalog(t *testing.T) {
	_, err := SelectPlanFromCatalog(40, baselineProfile(), nil)
	if err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestSelectPlanFromCatalog_AppliesMultiplier(t *testing.T) {
	smoker := PatientProfile{Age: 30, Lifestyle: Lifestyle{Smoking: true}}.Normalized()
	plan, err := SelectPlanFromCatalog(10, smoker, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.MonthlyPremium != 260 { // 200 x 1.30
		t.Errorf("monthly premium = %d, want 260", plan.MonthlyPremium)
	}
}
