package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"robofund/internal/core/port"
)

// contributionRequest is the body of a backing request. Amount is in the
// same integer units campaigns are stored in.
type contributionRequest struct {
	Amount int64 `json:"amount"`
}

// handleContribute records a contribution to a campaign. Non-positive
// amounts produce HTTP 400. A missing campaign id is a silent no-op and
// still answers HTTP 204, preserving the non-fatal contract call sites
// rely on.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	var req contributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.svc.Contribute(r.Context(), chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		if errors.Is(err, port.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("contribute error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
