package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veridianhealth/riskengine/internal/core"
	"github.com/veridianhealth/riskengine/internal/platform/metrics"
	"github.com/veridianhealth/riskengine/pkg/problem"
)

type RecommendationHandler struct {
	Svc core.RecommendationService
	Log *slog.Logger
}

func NewRecommendationHandler(svc core.RecommendationService, log *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{Svc: svc, Log: log}
}

func (h *RecommendationHandler) Mount(r chi.Router) {
	r.Post("/recommendations", h.Create)
}

// Create runs the full pipeline for a profile supplied in the body.
// 200: JSON recommendation; 400: bad JSON/validation; 500: internal error.
func (h *RecommendationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var profile core.PatientProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Body could not be decoded.")
		return
	}

	rec, err := h.Svc.Recommend(r.Context(), profile)
	if err != nil {
		writeError(h.Log, w, r, err, err.Error())
		return
	}
	metrics.RecommendationsTotal.WithLabelValues(rec.AIInsights.GeneratedBy).Inc()

	if err := json.NewEncoder(w).Encode(rec); err != nil {
		h.Log.Error("failed to encode recommendation", "patient_id", rec.PatientID, "err", err)
	}
}
