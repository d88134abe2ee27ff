package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veridianhealth/riskengine/internal/core"
	"github.com/veridianhealth/riskengine/pkg/problem"
)

type CohortHandler struct {
	Svc core.CohortService
	Log *slog.Logger
}

func NewCohortHandler(svc core.CohortService, log *slog.Logger) *CohortHandler {
	return &CohortHandler{Svc: svc, Log: log}
}

func (h *CohortHandler) Mount(r chi.Router) {
	r.Post("/cohort/analysis", h.Analyze)
}

type cohortRequest struct {
	PatientIDs    []string `json:"patientIds"`
	TopConditions int      `json:"topConditions"`
}

// Analyze aggregates a cohort. An empty body or empty patientIds analyzes the
// whole stored population.
// 200: JSON summary; 400: bad JSON or empty cohort; 404: unknown patient ID; 500: internal error.
func (h *CohortHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req cohortRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Body could not be decoded.")
			return
		}
	}
	if req.TopConditions <= 0 {
		req.TopConditions = core.DefaultTopConditions
	}

	summary, err := h.Svc.AnalyzePatients(r.Context(), req.PatientIDs, req.TopConditions)
	if err != nil {
		writeError(h.Log, w, r, err, err.Error())
		return
	}

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		h.Log.Error("failed to encode cohort summary", "err", err)
	}
}
