package httpadapter

import (
	"encoding/json"
	"net/http"

	"campus-ads/internal/core/domain"
)

// selectRequest declares the slot shape and audience signals for one render.
// Page, itemSlug and city are optional; city is expected to be resolved by
// the caller's geo signal, not by this service.
type selectRequest struct {
	Variant  string `json:"variant"`
	Position string `json:"position"`
	Page     string `json:"page,omitempty"`
	ItemSlug string `json:"itemSlug,omitempty"`
	City     string `json:"city,omitempty"`
}

// handleSelect resolves one placement to at most one campaign. It returns
// the winning campaign as JSON, or HTTP 204 No Content when nothing matches
// so the caller renders an empty slot. Unknown variants or positions are
// rejected with HTTP 400 since such a slot could never match any campaign.
func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{Message: "invalid JSON"}})
		return
	}

	variant := domain.Variant(req.Variant)
	if !variant.Valid() {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{Field: "variant", Message: "unknown variant"}})
		return
	}
	position := domain.Position(req.Position)
	if !position.Valid() {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{Field: "position", Message: "unknown position"}})
		return
	}

	pc := domain.NewPlacementContext(variant, position, domain.PageID(req.Page), req.ItemSlug, req.City)
	win, err := h.svc.SelectCampaign(r.Context(), pc)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if win == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*win))
}
