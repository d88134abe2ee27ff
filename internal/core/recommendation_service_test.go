package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	g.calls++
	return g.text, g.err
}

type stubPatientRepo struct {
	profiles map[string]PatientProfile
}

func (r *stubPatientRepo) Get(_ context.Context, id string) (PatientProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return PatientProfile{}, ErrPatientNotFound
	}
	return p, nil
}

func (r *stubPatientRepo) List(_ context.Context) ([]PatientProfile, error) {
	var out []PatientProfile
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPatientRepo) ListByRiskLevel(_ context.Context, level RiskLevel) ([]PatientProfile, error) {
	var out []PatientProfile
	for _, p := range r.profiles {
		if p.RiskLevel == level {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubPlanRepo struct {
	plans []InsurancePlan
	err   error
}

func (r *stubPlanRepo) List(_ context.Context) ([]InsurancePlan, error) {
	return r.plans, r.err
}

func riskyProfile() PatientProfile {
	return PatientProfile{
		PatientID:         "p-risky",
		Name:              "High Risk Member",
		Age:               65,
		ChronicConditions: []string{"diabetes", "hypertension", "copd"},
		Lifestyle:         Lifestyle{Smoking: true, Exercise: ExerciseModerate, Diet: DietAverage},
		Claims:            ClaimsHistory{TotalClaims: 6, TotalAmount: 120000},
	}
}

func TestRecommend_DeterministicFields(t *testing.T) {
	svc := NewRecommendationService(nil, nil, nil, nil, nil)

	rec, err := svc.Recommend(context.Background(), riskyProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.RiskAssessment.OverallScore != 100 {
		t.Errorf("overall score = %d, want 100", rec.RiskAssessment.OverallScore)
	}
	if rec.RiskAssessment.Level != RiskCritical {
		t.Errorf("level = %s, want Critical", rec.RiskAssessment.Level)
	}
	if rec.Plan.Type != TierComprehensive || rec.Plan.MonthlyPremium != 1073 {
		t.Errorf("plan = %s/%d, want Comprehensive/1073", rec.Plan.Type, rec.Plan.MonthlyPremium)
	}
	if rec.AIInsights.CostPredictions != (CostProjection{Year1: 6000, Year3: 6900, Year5: 8100}) {
		t.Errorf("cost predictions = %+v", rec.AIInsights.CostPredictions)
	}
	if len(rec.Customizations.Exclusions) == 0 {
		t.Error("expected exclusions for chronic conditions")
	}
	if rec.GeneratedAt.IsZero() {
		t.Error("generatedAt not set")
	}
}

func TestRecommend_FallbackWhenGeneratorFails(t *testing.T) {
	primary := &stubGenerator{err: errors.New("model unavailable")}
	fallback := &stubGenerator{err: errors.New("fallback also down")}
	svc := NewRecommendationService(nil, nil, primary, fallback, nil)

	rec, err := svc.Recommend(context.Background(), riskyProfile())
	if err != nil {
		t.Fatalf("narrative failure must not fail the recommendation: %v", err)
	}

	if primary.calls != 1 || fallback.calls != 1 {
		t.Errorf("generator calls = %d/%d, want exactly one attempt each", primary.calls, fallback.calls)
	}
	if rec.AIInsights.Summary != FallbackNarrative {
		t.Errorf("summary = %q, want fixed fallback", rec.AIInsights.Summary)
	}
	if rec.AIInsights.GeneratedBy != NarrativeSourceDeterministic {
		t.Errorf("generatedBy = %q, want deterministic", rec.AIInsights.GeneratedBy)
	}

	// Deterministic fields must be identical to the non-failing case.
	okGen := &stubGenerator{text: "All good."}
	okSvc := NewRecommendationService(nil, nil, okGen, nil, nil)
	okRec, err := okSvc.Recommend(context.Background(), riskyProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if okRec.RiskAssessment != rec.RiskAssessment {
		t.Errorf("risk assessment differs between narrative outcomes")
	}
	if okRec.Plan != rec.Plan {
		t.Errorf("plan differs between narrative outcomes")
	}
	if okRec.AIInsights.CostPredictions != rec.AIInsights.CostPredictions {
		t.Errorf("cost predictions differ between narrative outcomes")
	}
}

func TestRecommend_FallbackModelUsedWhenPrimaryFails(t *testing.T) {
	primary := &stubGenerator{err: errors.New("timeout")}
	fallback := &stubGenerator{text: "Secondary model summary."}
	svc := NewRecommendationService(nil, nil, primary, fallback, nil)

	rec, err := svc.Recommend(context.Background(), riskyProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.AIInsights.Summary != "Secondary model summary." {
		t.Errorf("summary = %q, want the fallback model's text", rec.AIInsights.Summary)
	}
	if rec.AIInsights.GeneratedBy != NarrativeSourceAI {
		t.Errorf("generatedBy = %q, want ai", rec.AIInsights.GeneratedBy)
	}
}

func TestRecommend_EmptyNarrativeTreatedAsFailure(t *testing.T) {
	primary := &stubGenerator{text: "   "}
	svc := NewRecommendationService(nil, nil, primary, nil, nil)

	rec, err := svc.Recommend(context.Background(), riskyProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.AIInsights.Summary != FallbackNarrative {
		t.Errorf("summary = %q, want fallback for blank generator output", rec.AIInsights.Summary)
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	svc := NewRecommendationService(nil, nil, nil, nil, nil).(*recommendationService)
	svc.clock = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	first, err := svc.Recommend(context.Background(), riskyProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Recommend(context.Background(), riskyProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.RiskAssessment != second.RiskAssessment || first.Plan != second.Plan {
		t.Error("repeated calls produced different deterministic fields")
	}
	if first.AIInsights != second.AIInsights {
		t.Error("repeated calls produced different insights with no generator configured")
	}
}

func TestRecommend_RejectsInvalidProfile(t *testing.T) {
	svc := NewRecommendationService(nil, nil, nil, nil, nil)

	bad := riskyProfile()
	bad.Age = -1
	if _, err := svc.Recommend(context.Background(), bad); !errors.Is(err, ErrValidation) {
		t.Errorf("negative age: err = %v, want validation error", err)
	}

	bad = riskyProfile()
	bad.Claims.TotalAmount = -500
	if _, err := svc.Recommend(context.Background(), bad); !errors.Is(err, ErrValidation) {
		t.Errorf("negative claims amount: err = %v, want validation error", err)
	}
}

func TestRecommend_CatalogDriven(t *testing.T) {
	catalog := &stubPlanRepo{plans: testCatalog()}
	svc := NewRecommendationService(nil, catalog, nil, nil, nil)

	rec, err := svc.Recommend(context.Background(), baselineProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Baseline scores 15 → first catalog entry.
	if rec.Plan.PlanID != "pl-basic" {
		t.Errorf("plan = %s, want pl-basic", rec.Plan.PlanID)
	}
}

func TestRecommend_CatalogErrorPropagates(t *testing.T) {
	catalog := &stubPlanRepo{err: errors.New("store down")}
	svc := NewRecommendationService(nil, catalog, nil, nil, nil)

	if _, err := svc.Recommend(context.Background(), baselineProfile()); err == nil {
		t.Fatal("expected catalog error to propagate")
	}
}

func TestRecommendForPatient(t *testing.T) {
	repo := &stubPatientRepo{profiles: map[string]PatientProfile{
		"p-1": baselineProfile(),
	}}
	svc := NewRecommendationService(repo, nil, nil, nil, nil)

	rec, err := svc.RecommendForPatient(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.PatientID != "p-1" {
		t.Errorf("patientId = %q, want p-1", rec.PatientID)
	}

	if _, err := svc.RecommendForPatient(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing patient: err = %v, want not found", err)
	}
	if _, err := svc.RecommendForPatient(context.Background(), ""); !errors.Is(err, ErrValidation) {
		t.Errorf("blank ID: err = %v, want validation error", err)
	}
}

func TestCohortService_AnalyzePatients(t *testing.T) {
	repo := &stubPatientRepo{profiles: map[string]PatientProfile{
		"a": scoredProfile("a", 20, RiskLow, []string{"asthma"}, 1000),
		"b": scoredProfile("b", 85, RiskCritical, []string{"copd"}, 90000),
	}}
	svc := NewCohortService(repo, nil)

	sum, err := svc.AnalyzePatients(context.Background(), []string{"a", "b"}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Patients != 2 {
		t.Errorf("patients = %d, want 2", sum.Patients)
	}
	if sum.RiskDistribution[RiskLow] != 1 || sum.RiskDistribution[RiskCritical] != 1 {
		t.Errorf("distribution = %v", sum.RiskDistribution)
	}

	if _, err := svc.AnalyzePatients(context.Background(), []string{"a", "missing"}, 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown ID: err = %v, want not found", err)
	}
}
