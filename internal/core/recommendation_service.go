package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// RecommendationService is the engine façade. Every deterministic field of the
// result is a pure function of the profile (and catalog); only the narrative
// text may vary between calls.
type RecommendationService interface {
	// Recommend scores an inline profile and assembles the full recommendation.
	Recommend(ctx context.Context, profile PatientProfile) (Recommendation, error)

	// RecommendForPatient loads the profile from the repository first.
	RecommendForPatient(ctx context.Context, patientID string) (Recommendation, error)
}

type recommendationService struct {
	patients PatientRepo
	catalog  PlanRepo // nil: synthesize plans from the tier tables
	primary  NarrativeGenerator
	fallback NarrativeGenerator
	log      *slog.Logger
	clock    func() time.Time
}

// NewRecommendationService wires the engine. Both generators may be nil; the
// deterministic fallback narrative then applies unconditionally. A nil catalog
// selects tier-table synthesis.
func NewRecommendationService(
	patients PatientRepo,
	catalog PlanRepo,
	primary, fallback NarrativeGenerator,
	log *slog.Logger,
) RecommendationService {
	return &recommendationService{
		patients: patients,
		catalog:  catalog,
		primary:  primary,
		fallback: fallback,
		log:      log,
		clock:    time.Now,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, profile PatientProfile) (Recommendation, error) {
	// 1) Validate and normalize
	if err := profile.Validate(); err != nil {
		return Recommendation{}, err
	}
	p := profile.Normalized()

	// 2) Score under the underwriting policy
	assessment := AssessRisk(p, ScoringUnderwriting)

	// 3) Select a plan: catalog-driven when a catalog is configured
	var plan RecommendedPlan
	if s.catalog != nil {
		plans, err := s.catalog.List(ctx)
		if err != nil {
			return Recommendation{}, fmt.Errorf("load plan catalog: %w", err)
		}
		plan, err = SelectPlanFromCatalog(assessment.OverallScore, p, plans)
		if err != nil {
			return Recommendation{}, err
		}
	} else {
		plan = SelectPlan(assessment.OverallScore, p)
	}

	// 4) Deterministic projections and customizations
	costs := ProjectCosts(assessment.OverallScore)
	customizations := Customize(p)

	// 5) Best-effort narrative; never fails the recommendation
	summary, source := s.narrate(ctx, p, assessment, plan)

	return Recommendation{
		PatientID:      p.PatientID,
		RiskAssessment: assessment,
		Plan:           plan,
		Customizations: customizations,
		AIInsights: AIInsights{
			Summary:         summary,
			CostPredictions: costs,
			GeneratedBy:     source,
		},
		GeneratedAt: s.clock(),
	}, nil
}

func (s *recommendationService) RecommendForPatient(ctx context.Context, patientID string) (Recommendation, error) {
	if patientID == "" {
		return Recommendation{}, fmt.Errorf("%w: missing patient ID", ErrValidation)
	}
	if s.patients == nil {
		return Recommendation{}, fmt.Errorf("%w: no patient repository configured", ErrInvalidState)
	}
	profile, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return Recommendation{}, err
	}
	return s.Recommend(ctx, profile)
}

// narrate attempts the primary generator, then the fallback generator, then
// substitutes the fixed deterministic summary. Each attempt is made exactly
// once; failures are logged and swallowed.
func (s *recommendationService) narrate(ctx context.Context, p PatientProfile, a RiskAssessment, plan RecommendedPlan) (string, string) {
	prompt := BuildNarrativePrompt(p, a, plan)

	for _, gen := range []NarrativeGenerator{s.primary, s.fallback} {
		if gen == nil {
			continue
		}
		text, err := gen.Generate(ctx, prompt)
		if err != nil {
			if s.log != nil {
				s.log.WarnContext(ctx, "narrative generation failed", "err", err)
			}
			continue
		}
		if strings.TrimSpace(text) == "" {
			if s.log != nil {
				s.log.WarnContext(ctx, "narrative generator returned empty text")
			}
			continue
		}
		return text, NarrativeSourceAI
	}

	return FallbackNarrative, NarrativeSourceDeterministic
}
