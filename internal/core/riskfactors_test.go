package core

import "testing"

func baselineProfile() PatientProfile {
	return PatientProfile{
		PatientID: "p-1",
		Name:      "Test Member",
		Age:       30,
		Lifestyle: Lifestyle{Exercise: ExerciseModerate, Diet: DietAverage},
	}
}

func TestComputeFactors_BaselineThirtyYearOld(t *testing.T) {
	p := baselineProfile().Normalized()

	f := ComputeFactors(p, ScoringUnderwriting)

	if f.Age != 15 {
		t.Errorf("age score = %d, want 15", f.Age)
	}
	if f.ChronicConditions != 0 || f.Lifestyle != 0 || f.FamilyHistory != 0 || f.ClaimsHistory != 0 {
		t.Errorf("expected zero non-age factors, got %+v", f)
	}
	if got := f.OverallScore(); got != 15 {
		t.Errorf("overall score = %d, want 15", got)
	}
	if level := ClassifyUnderwriting(f.OverallScore()); level != RiskLow {
		t.Errorf("level = %s, want Low", level)
	}
}

func TestAgeScoreUnderwriting_Buckets(t *testing.T) {
	cases := []struct {
		age  int
		want int
	}{
		{0, 10}, {24, 10}, {25, 15}, {39, 15},
		{40, 25}, {54, 25}, {55, 35}, {64, 35},
		{65, 45}, {90, 45},
	}
	for _, tc := range cases {
		if got := ageScoreUnderwriting(tc.age); got != tc.want {
			t.Errorf("ageScoreUnderwriting(%d) = %d, want %d", tc.age, got, tc.want)
		}
	}
}

func TestAgeScorePortfolio_Buckets(t *testing.T) {
	cases := []struct {
		age  int
		want int
	}{
		{20, 25}, // base 20 + young 5
		{24, 25},
		{25, 20}, // base only
		{40, 20},
		{41, 35}, // base 20 + 15
		{60, 35},
		{61, 45}, // base 20 + 25, senior bucket is exclusive
		{85, 45},
	}
	for _, tc := range cases {
		if got := ageScorePortfolio(tc.age); got != tc.want {
			t.Errorf("ageScorePortfolio(%d) = %d, want %d", tc.age, got, tc.want)
		}
	}
}

func TestComputeFactors_ChronicConditionsCap(t *testing.T) {
	p := baselineProfile()
	p.ChronicConditions = []string{"a", "b", "c", "d", "e"}
	f := ComputeFactors(p.Normalized(), ScoringUnderwriting)
	if f.ChronicConditions != 40 {
		t.Errorf("chronic score = %d, want capped 40", f.ChronicConditions)
	}

	p.ChronicConditions = []string{"diabetes", "hypertension"}
	f = ComputeFactors(p.Normalized(), ScoringUnderwriting)
	if f.ChronicConditions != 30 {
		t.Errorf("chronic score = %d, want 30", f.ChronicConditions)
	}
}

func TestComputeFactors_DuplicateConditionsCollapse(t *testing.T) {
	p := baselineProfile()
	p.ChronicConditions = []string{"Diabetes", "diabetes", " DIABETES "}
	f := ComputeFactors(p.Normalized(), ScoringUnderwriting)
	if f.ChronicConditions != 15 {
		t.Errorf("chronic score = %d, want 15 for a single distinct condition", f.ChronicConditions)
	}
}

func TestLifestyleScore_UncappedSum(t *testing.T) {
	l := Lifestyle{Smoking: true, Alcohol: true, Exercise: ExerciseLow, Diet: DietPoor}
	if got := lifestyleScore(l); got != 50 {
		t.Errorf("lifestyle score = %d, want 50", got)
	}
	if got := lifestyleScore(Lifestyle{Exercise: ExerciseHigh, Diet: DietGood}); got != 0 {
		t.Errorf("lifestyle score = %d, want 0", got)
	}
}

func TestFamilyHistoryScore_Cap(t *testing.T) {
	p := baselineProfile()
	p.FamilyHistory = []string{"a", "b", "c", "d", "e", "f"}
	f := ComputeFactors(p.Normalized(), ScoringUnderwriting)
	if f.FamilyHistory != 15 {
		t.Errorf("family score = %d, want capped 15", f.FamilyHistory)
	}
}

func TestClaimsScore_ThresholdsAreAdditive(t *testing.T) {
	cases := []struct {
		name   string
		claims ClaimsHistory
		want   int
	}{
		{"no history", ClaimsHistory{}, 0},
		{"frequent only", ClaimsHistory{TotalClaims: 6}, 15},
		{"mid amount", ClaimsHistory{TotalAmount: 60000}, 20},
		{"high amount earns both surcharges", ClaimsHistory{TotalAmount: 120000}, 35},
		{"all three", ClaimsHistory{TotalClaims: 6, TotalAmount: 120000}, 50},
	}
	for _, tc := range cases {
		if got := claimsScore(tc.claims); got != tc.want {
			t.Errorf("%s: claims score = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestClaimsScore_CrossingFiftyThousand(t *testing.T) {
	before := claimsScore(ClaimsHistory{TotalAmount: 40000})
	after := claimsScore(ClaimsHistory{TotalAmount: 60000})
	if after-before != 20 {
		t.Errorf("crossing 50000 changed score by %d, want exactly 20", after-before)
	}
}

func TestOverallScore_CapInvariant(t *testing.T) {
	extreme := PatientProfile{
		Age: 70,
		ChronicConditions: []string{
			"diabetes", "hypertension", "copd", "heart disease", "arthritis",
		},
		FamilyHistory: []string{"cancer", "diabetes", "heart disease", "stroke", "alzheimers", "copd"},
		Lifestyle:     Lifestyle{Smoking: true, Alcohol: true, Exercise: ExerciseLow, Diet: DietPoor},
		Claims:        ClaimsHistory{TotalClaims: 12, TotalAmount: 250000},
	}.Normalized()

	for _, policy := range []ScoringPolicy{ScoringUnderwriting, ScoringPortfolio} {
		score := ComputeFactors(extreme, policy).OverallScore()
		if score < 0 || score > 100 {
			t.Errorf("policy %s: overall score %d outside [0,100]", policy, score)
		}
		if score != 100 {
			t.Errorf("policy %s: extreme profile should cap at 100, got %d", policy, score)
		}
	}
}

// The worked example from the portal: 65-year-old smoker, three chronic
// conditions, heavy claims history.
func TestAssessRisk_WorkedExample(t *testing.T) {
	p := PatientProfile{
		Age:               65,
		ChronicConditions: []string{"diabetes", "hypertension", "copd"},
		Lifestyle:         Lifestyle{Smoking: true, Exercise: ExerciseModerate, Diet: DietAverage},
		Claims:            ClaimsHistory{TotalClaims: 6, TotalAmount: 120000},
	}.Normalized()

	f := ComputeFactors(p, ScoringUnderwriting)
	if f.Age != 45 {
		t.Errorf("age score = %d, want 45", f.Age)
	}
	if f.ChronicConditions != 40 {
		t.Errorf("chronic score = %d, want 40", f.ChronicConditions)
	}
	if f.Lifestyle != 25 {
		t.Errorf("lifestyle score = %d, want 25", f.Lifestyle)
	}
	if f.FamilyHistory != 0 {
		t.Errorf("family score = %d, want 0", f.FamilyHistory)
	}
	if f.ClaimsHistory != 50 {
		t.Errorf("claims score = %d, want 50", f.ClaimsHistory)
	}

	a := AssessRisk(p, ScoringUnderwriting)
	if a.OverallScore != 100 {
		t.Errorf("overall score = %d, want 100 (raw 160 capped)", a.OverallScore)
	}
	if a.Level != RiskCritical {
		t.Errorf("level = %s, want Critical", a.Level)
	}
	if got := AssessRisk(p, ScoringPortfolio); got.Level != RiskCritical {
		t.Errorf("portfolio level = %s, want Critical", got.Level)
	}
}

func TestAssessRisk_Deterministic(t *testing.T) {
	p := PatientProfile{
		Age:               48,
		ChronicConditions: []string{"asthma"},
		Lifestyle:         Lifestyle{Alcohol: true, Exercise: ExerciseLow, Diet: DietAverage},
		Claims:            ClaimsHistory{TotalClaims: 2, TotalAmount: 12000},
	}.Normalized()

	first := AssessRisk(p, ScoringUnderwriting)
	for i := 0; i < 5; i++ {
		if got := AssessRisk(p, ScoringUnderwriting); got != first {
			t.Fatalf("assessment not deterministic: %+v vs %+v", got, first)
		}
	}
}
