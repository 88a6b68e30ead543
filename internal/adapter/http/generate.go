package httpadapter

import (
	"encoding/json"
	"net/http"

	"robofund/internal/core/domain"
	"robofund/internal/core/port"
)

// narrativeRequest is the wizard's concept-capture payload.
type narrativeRequest struct {
	Idea     string          `json:"idea"`
	Goal     string          `json:"goal"`
	Category domain.Category `json:"category"`
}

// visualRequest carries the description excerpt used as the image prompt.
type visualRequest struct {
	Description string `json:"description"`
}

type visualResponse struct {
	ImageURL string `json:"imageUrl"`
}

// handleGenerateNarrative produces AI campaign copy for the wizard's review
// stage. The gateway absorbs generation failures into a deterministic
// fallback, so this endpoint never reports an AI error; it only rejects
// payloads it cannot work with.
func (h *Handler) handleGenerateNarrative(w http.ResponseWriter, r *http.Request) {
	var req narrativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Idea == "" || req.Goal == "" {
		http.Error(w, "idea and goal are required", http.StatusBadRequest)
		return
	}
	if !req.Category.Valid() {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}
	narrative := h.gateway.GenerateNarrative(r.Context(), port.NarrativeReq{
		Idea:     req.Idea,
		Goal:     req.Goal,
		Category: req.Category,
	})
	h.writeJSON(w, http.StatusOK, narrative)
}

// handleGenerateVisual produces a campaign image reference from a
// description excerpt. Failures resolve to a placeholder reference.
func (h *Handler) handleGenerateVisual(w http.ResponseWriter, r *http.Request) {
	var req visualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Description == "" {
		http.Error(w, "description is required", http.StatusBadRequest)
		return
	}
	excerpt := req.Description
	// truncate on a rune boundary so the prompt never carries a split
	// multi-byte sequence
	if r := []rune(excerpt); len(r) > 100 {
		excerpt = string(r[:100])
	}
	h.writeJSON(w, http.StatusOK, visualResponse{
		ImageURL: h.gateway.GenerateVisual(r.Context(), excerpt),
	})
}
