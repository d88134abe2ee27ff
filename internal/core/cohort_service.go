package core

import (
	"context"
	"fmt"
	"log/slog"
)

// CohortService runs portfolio analytics over the stored patient population.
type CohortService interface {
	// AnalyzePopulation aggregates every stored patient.
	AnalyzePopulation(ctx context.Context, topN int) (CohortSummary, error)

	// AnalyzePatients aggregates a named subset. Unknown IDs propagate as
	// not-found errors rather than being skipped silently.
	AnalyzePatients(ctx context.Context, patientIDs []string, topN int) (CohortSummary, error)
}

type cohortService struct {
	patients PatientRepo
	log      *slog.Logger
}

func NewCohortService(patients PatientRepo, log *slog.Logger) CohortService {
	return &cohortService{patients: patients, log: log}
}

func (s *cohortService) AnalyzePopulation(ctx context.Context, topN int) (CohortSummary, error) {
	profiles, err := s.patients.List(ctx)
	if err != nil {
		return CohortSummary{}, fmt.Errorf("load population: %w", err)
	}
	return AnalyzeCohort(profiles, topN)
}

func (s *cohortService) AnalyzePatients(ctx context.Context, patientIDs []string, topN int) (CohortSummary, error) {
	if len(patientIDs) == 0 {
		return s.AnalyzePopulation(ctx, topN)
	}

	profiles := make([]PatientProfile, 0, len(patientIDs))
	for _, id := range patientIDs {
		p, err := s.patients.Get(ctx, id)
		if err != nil {
			return CohortSummary{}, fmt.Errorf("load patient %s: %w", id, err)
		}
		profiles = append(profiles, p)
	}
	return AnalyzeCohort(profiles, topN)
}
