package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veridianhealth/riskengine/internal/core"
)

type PlanHandler struct {
	Repo core.PlanRepo
	Log  *slog.Logger
}

func NewPlanHandler(repo core.PlanRepo, log *slog.Logger) *PlanHandler {
	return &PlanHandler{Repo: repo, Log: log}
}

func (h *PlanHandler) Mount(r chi.Router) {
	r.Get("/plans", h.List)
}

// List returns the plan catalog ordered by risk-range floor.
// 200: JSON array; 500: internal error.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Repo.List(r.Context())
	if err != nil {
		writeError(h.Log, w, r, err, "Failed to list plans")
		return
	}

	if plans == nil {
		plans = []core.InsurancePlan{}
	}
	if err := json.NewEncoder(w).Encode(plans); err != nil {
		h.Log.Error("failed to encode plans", "err", err)
	}
}
