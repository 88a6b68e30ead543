package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"robofund/internal/core/port"
)

// handleDashboard returns the creator dashboard payload for one campaign:
// the record itself, a fresh AI performance analysis and the funding time
// series for the chart. AI failures degrade to fallback analysis content
// inside the gateway, so this endpoint only fails on store errors.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Dashboard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, "campaign not found", http.StatusNotFound)
			return
		}
		h.logger.Error("dashboard error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
