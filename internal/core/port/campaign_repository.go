package port

import (
	"context"
	"errors"

	"campus-ads/internal/core/domain"
)

// ErrCampaignNotFound is returned when an id does not resolve to a stored
// campaign.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository is the outbound persistence port for campaigns. It is
// the only component that touches storage; the selection engine itself never
// performs I/O. Implementations must be safe for concurrent use. Writes are
// serialized at this boundary; in-flight selections hold their own snapshot
// and never observe a write mid-computation.
type CampaignRepository interface {
	// List returns every stored campaign. Filtering for eligibility and
	// targeting happens in the selection engine, not here.
	List(ctx context.Context) ([]domain.Campaign, error)
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	Create(ctx context.Context, c domain.Campaign) error
	Update(ctx context.Context, c domain.Campaign) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

// CampaignSource yields the read-only campaign snapshot selection runs over.
// The snapshot may be shared between concurrent callers and must be treated
// as immutable. Invalidate drops any cached state after an admin write so the
// next selection sees fresh data.
type CampaignSource interface {
	Campaigns(ctx context.Context) ([]domain.Campaign, error)
	Invalidate()
}
