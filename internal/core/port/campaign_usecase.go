package port

import (
	"context"
	"fmt"
	"time"

	"campus-ads/internal/core/domain"
)

// ValidationError reports an admin write rejected before persistence. Field
// names the offending input field so the admin UI can attach the message to
// the right form control.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CampaignInput carries the admin-supplied fields for create and update
// operations. The server mints IDs and timestamps itself.
type CampaignInput struct {
	Title           string
	Subtitle        string
	CTAText         string
	LinkURL         string
	ImageURL        string
	BackgroundStyle string
	Variant         domain.Variant
	Position        domain.Position
	Target          domain.Target
	Priority        int
	StartAt         *time.Time
	EndAt           *time.Time
	IsActive        bool
}

// ListFilter narrows the admin campaign listing. A zero Page matches every
// page scope; a nil Active matches both active and paused campaigns.
type ListFilter struct {
	Page   domain.PageID
	Active *bool
}

// CampaignUseCase is the inbound port exposing the engine and its admin
// boundary. SelectCampaign is the engine's single public operation; the rest
// form the write path whose invariants selection trusts.
type CampaignUseCase interface {
	// SelectCampaign picks at most one campaign for the placement. A nil
	// campaign with a nil error is the legitimate no-fill outcome; the
	// caller renders nothing. Snapshot-fetch failures are absorbed into
	// no-fill so a store outage never blocks page rendering.
	SelectCampaign(ctx context.Context, pc domain.PlacementContext) (*domain.Campaign, error)

	CreateCampaign(ctx context.Context, in CampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, in CampaignInput) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter ListFilter) ([]domain.Campaign, error)
}
