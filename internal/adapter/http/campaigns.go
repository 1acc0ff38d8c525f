package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// campaignRequest is the admin write payload. Targeting fields are flat and
// nullable, mirroring the stored representation; which of page, itemSlug and
// city must be present depends on targetType and is checked by the usecase.
type campaignRequest struct {
	Title           string     `json:"title"`
	Subtitle        string     `json:"subtitle"`
	CTAText         string     `json:"ctaText"`
	LinkURL         string     `json:"linkUrl"`
	ImageURL        string     `json:"imageUrl"`
	BackgroundStyle string     `json:"backgroundStyle"`
	Variant         string     `json:"variant"`
	Position        string     `json:"position"`
	TargetType      string     `json:"targetType"`
	Page            string     `json:"page"`
	ItemSlug        string     `json:"itemSlug"`
	City            string     `json:"city"`
	Priority        int        `json:"priority"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	IsActive        bool       `json:"isActive"`
}

func (req campaignRequest) toInput() port.CampaignInput {
	return port.CampaignInput{
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		CTAText:         req.CTAText,
		LinkURL:         req.LinkURL,
		ImageURL:        req.ImageURL,
		BackgroundStyle: req.BackgroundStyle,
		Variant:         domain.Variant(req.Variant),
		Position:        domain.Position(req.Position),
		Target: domain.Target{
			Type:     domain.TargetType(req.TargetType),
			Page:     domain.PageID(req.Page),
			ItemSlug: req.ItemSlug,
			City:     req.City,
		},
		Priority: req.Priority,
		StartAt:  req.StartDate,
		EndAt:    req.EndDate,
		IsActive: req.IsActive,
	}
}

type campaignResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Subtitle        string     `json:"subtitle,omitempty"`
	CTAText         string     `json:"ctaText"`
	LinkURL         string     `json:"linkUrl"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	BackgroundStyle string     `json:"backgroundStyle,omitempty"`
	Variant         string     `json:"variant"`
	Position        string     `json:"position"`
	TargetType      string     `json:"targetType"`
	Page            string     `json:"page,omitempty"`
	ItemSlug        string     `json:"itemSlug,omitempty"`
	City            string     `json:"city,omitempty"`
	Priority        int        `json:"priority"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	IsActive        bool       `json:"isActive"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:              c.ID,
		Title:           c.Title,
		Subtitle:        c.Subtitle,
		CTAText:         c.CTAText,
		LinkURL:         c.LinkURL,
		ImageURL:        c.ImageURL,
		BackgroundStyle: c.BackgroundStyle,
		Variant:         string(c.Variant),
		Position:        string(c.Position),
		TargetType:      string(c.Target.Type),
		Page:            string(c.Target.Page),
		ItemSlug:        c.Target.ItemSlug,
		City:            c.Target.City,
		Priority:        c.Priority,
		StartDate:       c.StartAt,
		EndDate:         c.EndAt,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// handleCreateCampaign persists a new campaign. Validation failures come
// back as 400 with the offending field name.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{Message: "invalid JSON"}})
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), req.toInput())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

// handleListCampaigns returns stored campaigns for the admin UI. The page
// and active query parameters narrow the result when present.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter := port.ListFilter{Page: domain.PageID(r.URL.Query().Get("page"))}
	if raw := r.URL.Query().Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{Field: "active", Message: "must be true or false"}})
			return
		}
		filter.Active = &active
	}
	campaigns, err := h.svc.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleGetCampaign returns one campaign by id.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleUpdateCampaign replaces a campaign in full.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{Message: "invalid JSON"}})
		return
	}
	c, err := h.svc.UpdateCampaign(r.Context(), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleDeleteCampaign removes a campaign.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCampaign(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type setActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// handleSetActive flips the activation kill switch.
func (h *Handler) handleSetActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{Message: "invalid JSON"}})
		return
	}
	if err := h.svc.SetActive(r.Context(), chi.URLParam(r, "id"), req.IsActive); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
