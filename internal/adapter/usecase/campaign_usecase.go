package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
	"campus-ads/internal/core/selection"
	"campus-ads/internal/metrics"
)

// linkURLRe accepts absolute http(s) URLs. The only other accepted value is
// the "#" placeholder for non-clickable creatives.
var linkURLRe = regexp.MustCompile(`^https?://`)

// CampaignUseCase implements port.CampaignUseCase. It guards the admin write
// path with the validation contract the selection engine trusts, and runs
// selection over the snapshot source so the engine never touches storage.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	source port.CampaignSource
	logger *slog.Logger
}

// NewCampaignUseCase wires the usecase with its repository and snapshot
// source.
func NewCampaignUseCase(repo port.CampaignRepository, source port.CampaignSource, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, source: source, logger: logger}
}

// SelectCampaign picks at most one campaign for the placement. Snapshot
// fetch failures are logged and absorbed into the no-fill outcome: a content
// outage must never block page rendering.
func (u *CampaignUseCase) SelectCampaign(ctx context.Context, pc domain.PlacementContext) (*domain.Campaign, error) {
	campaigns, err := u.source.Campaigns(ctx)
	if err != nil {
		u.logger.Warn("campaign snapshot unavailable, serving no-fill", slog.Any("error", err))
		metrics.Selections.WithLabelValues("no_fill").Inc()
		return nil, nil
	}

	win := selection.Select(campaigns, pc)
	if win == nil {
		metrics.Selections.WithLabelValues("no_fill").Inc()
		return nil, nil
	}
	if tier, ok := selection.Match(*win, pc); ok {
		metrics.Selections.WithLabelValues(tier.String()).Inc()
	}
	return win, nil
}

// CreateCampaign validates the input, mints an id and persists the campaign.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, in port.CampaignInput) (*domain.Campaign, error) {
	c, err := buildCampaign(in)
	if err != nil {
		return nil, err
	}
	c.ID = uuid.NewString()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := u.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	u.source.Invalidate()
	metrics.AdminWrites.WithLabelValues("create").Inc()
	return &c, nil
}

// UpdateCampaign validates the input and replaces the stored campaign,
// bumping UpdatedAt.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id string, in port.CampaignInput) (*domain.Campaign, error) {
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := buildCampaign(in)
	if err != nil {
		return nil, err
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	if err := u.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	u.source.Invalidate()
	metrics.AdminWrites.WithLabelValues("update").Inc()
	return &c, nil
}

// DeleteCampaign removes a campaign from the store.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.source.Invalidate()
	metrics.AdminWrites.WithLabelValues("delete").Inc()
	return nil
}

// SetActive flips the kill switch without touching the rest of the record.
func (u *CampaignUseCase) SetActive(ctx context.Context, id string, active bool) error {
	if err := u.repo.SetActive(ctx, id, active); err != nil {
		return err
	}
	u.source.Invalidate()
	metrics.AdminWrites.WithLabelValues("set_active").Inc()
	return nil
}

// GetCampaign returns a stored campaign by id.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.repo.GetByID(ctx, id)
}

// ListCampaigns returns stored campaigns for the admin UI, narrowed by the
// optional page and active filters.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, filter port.ListFilter) ([]domain.Campaign, error) {
	campaigns, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Page == "" && filter.Active == nil {
		return campaigns, nil
	}

	filtered := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if filter.Page != "" && c.Target.Page != filter.Page {
			continue
		}
		if filter.Active != nil && c.IsActive != *filter.Active {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered, nil
}

// buildCampaign validates admin input and assembles a campaign value. The
// target is rebuilt through its constructor so fields outside the declared
// variant can never be stored. Priority is clamped, not rejected.
func buildCampaign(in port.CampaignInput) (domain.Campaign, error) {
	var zero domain.Campaign

	if in.Title == "" {
		return zero, &port.ValidationError{Field: "title", Message: "must not be empty"}
	}
	if in.LinkURL == "" {
		return zero, &port.ValidationError{Field: "linkUrl", Message: "must not be empty"}
	}
	if in.LinkURL != "#" && !linkURLRe.MatchString(in.LinkURL) {
		return zero, &port.ValidationError{Field: "linkUrl", Message: `must be "#" or an absolute http(s) URL`}
	}
	if !in.Variant.Valid() {
		return zero, &port.ValidationError{Field: "variant", Message: fmt.Sprintf("unknown variant %q", in.Variant)}
	}
	if !in.Position.Valid() {
		return zero, &port.ValidationError{Field: "position", Message: fmt.Sprintf("unknown position %q", in.Position)}
	}
	if in.StartAt != nil && in.EndAt != nil && in.EndAt.Before(*in.StartAt) {
		return zero, &port.ValidationError{Field: "endDate", Message: "must not be before startDate"}
	}

	target, err := buildTarget(in.Target)
	if err != nil {
		return zero, err
	}

	return domain.Campaign{
		Title:           in.Title,
		Subtitle:        in.Subtitle,
		CTAText:         in.CTAText,
		LinkURL:         in.LinkURL,
		ImageURL:        in.ImageURL,
		BackgroundStyle: in.BackgroundStyle,
		Variant:         in.Variant,
		Position:        in.Position,
		Target:          target,
		Priority:        domain.ClampPriority(in.Priority),
		StartAt:         in.StartAt,
		EndAt:           in.EndAt,
		IsActive:        in.IsActive,
	}, nil
}

// buildTarget checks the per-variant required fields and reconstructs the
// target so only those fields survive.
func buildTarget(t domain.Target) (domain.Target, error) {
	switch t.Type {
	case domain.TargetUniversal:
		return domain.UniversalTarget(), nil
	case domain.TargetPage:
		if !t.Page.Known() {
			return domain.Target{}, &port.ValidationError{Field: "page", Message: fmt.Sprintf("unknown page %q", t.Page)}
		}
		return domain.PageTarget(t.Page), nil
	case domain.TargetPageCity:
		if !t.Page.Known() {
			return domain.Target{}, &port.ValidationError{Field: "page", Message: fmt.Sprintf("unknown page %q", t.Page)}
		}
		if t.City == "" {
			return domain.Target{}, &port.ValidationError{Field: "city", Message: "must not be empty"}
		}
		return domain.PageCityTarget(t.Page, t.City), nil
	case domain.TargetItem:
		if !t.Page.Known() {
			return domain.Target{}, &port.ValidationError{Field: "page", Message: fmt.Sprintf("unknown page %q", t.Page)}
		}
		if t.ItemSlug == "" {
			return domain.Target{}, &port.ValidationError{Field: "itemSlug", Message: "must not be empty"}
		}
		return domain.ItemTarget(t.Page, t.ItemSlug), nil
	case domain.TargetCity:
		if t.City == "" {
			return domain.Target{}, &port.ValidationError{Field: "city", Message: "must not be empty"}
		}
		return domain.CityTarget(t.City), nil
	default:
		return domain.Target{}, &port.ValidationError{Field: "targetType", Message: fmt.Sprintf("unknown target type %q", t.Type)}
	}
}
