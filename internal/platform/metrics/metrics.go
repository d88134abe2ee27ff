// Package metrics exposes the engine's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RecommendationsTotal counts recommendations by narrative source
	// ("ai" or "deterministic"). The deterministic label doubles as the
	// fallback-rate signal.
	RecommendationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskengine_recommendations_total",
		Help: "Recommendations served, labeled by narrative source.",
	}, []string{"narrative"})

	// NarrativeFailures counts failed generator calls per model.
	NarrativeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskengine_narrative_failures_total",
		Help: "Failed narrative generator calls, labeled by model.",
	}, []string{"model"})

	// PortfolioPatients is the population size from the last snapshot.
	PortfolioPatients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "riskengine_portfolio_patients",
		Help: "Patients in the last portfolio snapshot.",
	})

	// PortfolioAverageRisk is the mean risk score from the last snapshot.
	PortfolioAverageRisk = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "riskengine_portfolio_average_risk",
		Help: "Average risk score in the last portfolio snapshot.",
	})

	// PortfolioRiskLevel is the per-level patient count from the last snapshot.
	PortfolioRiskLevel = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "riskengine_portfolio_risk_level",
		Help: "Patients per risk level in the last portfolio snapshot.",
	}, []string{"level"})
)

// Handler serves the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
