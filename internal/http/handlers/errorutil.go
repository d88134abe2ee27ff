package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/veridianhealth/riskengine/internal/core"
	"github.com/veridianhealth/riskengine/pkg/problem"
)

func writeError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, detail string) {
	ctx := r.Context()
	instance := r.URL.Path

	switch {
	case errors.Is(err, core.ErrNotFound):
		log.WarnContext(ctx, "resource not found", "err", err)
		problem.WriteInstance(w, http.StatusNotFound, "Not Found", detail, instance)

	case errors.Is(err, core.ErrValidation):
		log.WarnContext(ctx, "validation failed", "err", err)
		problem.WriteInstance(w, http.StatusBadRequest, "Validation Error", detail, instance)

	case errors.Is(err, core.ErrConflict):
		log.WarnContext(ctx, "resource conflict", "err", err)
		problem.WriteInstance(w, http.StatusConflict, "Conflict", detail, instance)

	case errors.Is(err, core.ErrUnauthorized):
		log.WarnContext(ctx, "unauthorized request", "err", err)
		problem.WriteInstance(w, http.StatusUnauthorized, "Unauthorized", detail, instance)

	case errors.Is(err, core.ErrForbidden):
		log.WarnContext(ctx, "forbidden operation", "err", err)
		problem.WriteInstance(w, http.StatusForbidden, "Forbidden", detail, instance)

	case errors.Is(err, context.DeadlineExceeded):
		log.ErrorContext(ctx, "operation timeout", "err", err)
		problem.WriteInstance(w, http.StatusGatewayTimeout, "Timeout", "Operation took too long.", instance)

	default:
		log.ErrorContext(ctx, "internal server error", "err", err)
		problem.WriteInstance(w, http.StatusInternalServerError, "Internal Server Error", detail, instance)
	}
}
