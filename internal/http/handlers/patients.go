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

type PatientHandler struct {
	Repo core.PatientRepo
	Svc  core.RecommendationService
	Log  *slog.Logger
}

func NewPatientHandler(repo core.PatientRepo, svc core.RecommendationService, log *slog.Logger) *PatientHandler {
	return &PatientHandler{Repo: repo, Svc: svc, Log: log}
}

func (h *PatientHandler) Mount(r chi.Router) {
	r.Route("/patients", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{patient_id}", h.Get)
		r.Get("/{patient_id}/recommendation", h.Recommend)
	})
}

// List returns stored patients, optionally filtered by risk level.
// 200: JSON array; 400: unknown riskLevel; 500: internal error.
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("riskLevel")

	var (
		patients []core.PatientProfile
		err      error
	)
	if level == "" {
		patients, err = h.Repo.List(r.Context())
	} else {
		if !validRiskLevel(level) {
			problem.Write(w, http.StatusBadRequest, "Invalid Risk Level", "Query parameter riskLevel must be Low, Moderate, High or Critical.")
			return
		}
		patients, err = h.Repo.ListByRiskLevel(r.Context(), core.RiskLevel(level))
	}
	if err != nil {
		writeError(h.Log, w, r, err, "Failed to list patients")
		return
	}

	if patients == nil {
		patients = []core.PatientProfile{}
	}
	if err := json.NewEncoder(w).Encode(patients); err != nil {
		h.Log.Error("failed to encode patients", "err", err)
	}
}

// Get retrieves a patient by ID.
// 200: JSON; 400: missing ID; 404: not found; 500: internal error.
func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "patient_id")
	if id == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Patient ID", "Path parameter patient_id is required.")
		return
	}

	p, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		writeError(h.Log, w, r, err, "Failed to get patient")
		return
	}

	if err := json.NewEncoder(w).Encode(p); err != nil {
		h.Log.Error("failed to encode patient", "patient_id", id, "err", err)
	}
}

// Recommend runs the pipeline against a stored patient.
// 200: JSON recommendation; 400: missing ID; 404: not found; 500: internal error.
func (h *PatientHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "patient_id")
	if id == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Patient ID", "Path parameter patient_id is required.")
		return
	}

	rec, err := h.Svc.RecommendForPatient(r.Context(), id)
	if err != nil {
		writeError(h.Log, w, r, err, err.Error())
		return
	}
	metrics.RecommendationsTotal.WithLabelValues(rec.AIInsights.GeneratedBy).Inc()

	if err := json.NewEncoder(w).Encode(rec); err != nil {
		h.Log.Error("failed to encode recommendation", "patient_id", id, "err", err)
	}
}

func validRiskLevel(s string) bool {
	for _, l := range core.RiskLevels {
		if string(l) == s {
			return true
		}
	}
	return false
}
