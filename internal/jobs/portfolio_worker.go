package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/veridianhealth/riskengine/internal/core"
	"github.com/veridianhealth/riskengine/internal/platform/metrics"
)

// PortfolioWorker periodically snapshots the stored population's risk profile
// and publishes it to the metrics endpoint.
type PortfolioWorker struct {
	BaseWorker
	cohorts core.CohortService
}

func NewPortfolioWorker(cohorts core.CohortService, interval time.Duration, log *slog.Logger) *PortfolioWorker {
	return &PortfolioWorker{
		BaseWorker: NewBaseWorker("portfolio", interval, log),
		cohorts:    cohorts,
	}
}

// Start begins the worker polling loop.
func (w *PortfolioWorker) Start(ctx context.Context) {
	w.Poll(ctx, w.snapshot)
}

// Name returns the worker name.
func (w *PortfolioWorker) Name() string {
	return w.name
}

func (w *PortfolioWorker) snapshot(ctx context.Context) error {
	summary, err := w.cohorts.AnalyzePopulation(ctx, core.TopConditionsSnapshot)
	if err != nil {
		return err
	}

	metrics.PortfolioPatients.Set(float64(summary.Patients))
	metrics.PortfolioAverageRisk.Set(summary.AverageRiskScore)
	for level, count := range summary.RiskDistribution {
		metrics.PortfolioRiskLevel.WithLabelValues(string(level)).Set(float64(count))
	}

	w.log.Info("portfolio snapshot",
		"patients", summary.Patients,
		"average_risk", summary.AverageRiskScore,
		"profitability", summary.Profitability,
	)
	return nil
}
