package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"robofund/internal/core/domain"
	"robofund/internal/core/port"
)

// handleListCampaigns returns the campaign collection in stored order. An
// optional `q` query parameter filters over title, description and
// category. The first call on an empty store persists and returns the seed
// set.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleGetCampaign returns a single campaign by id, or HTTP 404 when the
// id is unknown.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("get campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if campaign == nil {
		http.Error(w, "campaign not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, campaign)
}

// handleLaunchCampaign commits the creation wizard: it decodes the launch
// payload, builds the new campaign and returns it with HTTP 201. Validation
// failures produce HTTP 400.
func (h *Handler) handleLaunchCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.LaunchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	campaign, err := h.svc.LaunchCampaign(r.Context(), req)
	if err != nil {
		if errors.Is(err, port.ErrInvalidCampaign) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("launch campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusCreated, campaign)
}

// handleEditCampaign merges a partial update into an existing campaign. The
// id path parameter addresses the record; the body carries only the fields
// to change. Unknown ids produce HTTP 404, invalid values HTTP 400.
func (h *Handler) handleEditCampaign(w http.ResponseWriter, r *http.Request) {
	var patch domain.CampaignPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	campaign, err := h.svc.EditCampaign(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, port.ErrNotFound):
			http.Error(w, "campaign not found", http.StatusNotFound)
		case errors.Is(err, port.ErrInvalidCampaign):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("edit campaign error", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}
	h.writeJSON(w, http.StatusOK, campaign)
}

// handleCategories returns the closed category set, verbatim, as selectable
// option values.
func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, domain.Categories())
}
