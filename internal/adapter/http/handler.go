package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"robofund/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it holds the campaign usecase and the AI gateway for the generation
// endpoints, plus a logger for structured logging. Routes are registered on
// a chi.Router.
type Handler struct {
	svc     port.CampaignUseCase
	gateway port.AIGateway
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, gateway port.AIGateway, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, gateway: gateway, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns", h.handleLaunchCampaign)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Patch("/campaigns/{id}", h.handleEditCampaign)
		r.Post("/campaigns/{id}/contributions", h.handleContribute)
		r.Get("/campaigns/{id}/dashboard", h.handleDashboard)
		r.Post("/generate/narrative", h.handleGenerateNarrative)
		r.Post("/generate/visual", h.handleGenerateVisual)
		r.Get("/categories", h.handleCategories)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v as the response body. Encoding failures are logged;
// headers have already been written at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
