package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// DB is the subset of pgxpool.Pool the repository uses. pgxmock's pool
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CampaignRepository implements port.CampaignRepository on PostgreSQL. The
// targeting columns (page, item_slug, city) are nullable; the tagged-variant
// discipline is enforced at the write boundary, not by the schema.
type CampaignRepository struct {
	db DB
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(db DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

const campaignColumns = `id, title, subtitle, cta_text, link_url, image_url, background_style,
	variant, position, target_type, page, item_slug, city,
	priority, start_at, end_at, is_active, created_at, updated_at`

// List returns every stored campaign.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

// GetByID returns a single campaign or port.ErrCampaignNotFound.
func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	rows, err := r.db.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// Create inserts a new campaign.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) error {
	_, err := r.db.Exec(ctx, `INSERT INTO campaigns
		(id, title, subtitle, cta_text, link_url, image_url, background_style,
		 variant, position, target_type, page, item_slug, city,
		 priority, start_at, end_at, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		c.ID, c.Title, c.Subtitle, c.CTAText, c.LinkURL, c.ImageURL, c.BackgroundStyle,
		string(c.Variant), string(c.Position), string(c.Target.Type),
		nullString(string(c.Target.Page)), nullString(c.Target.ItemSlug), nullString(c.Target.City),
		c.Priority, c.StartAt, c.EndAt, c.IsActive, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// Update replaces a stored campaign in full.
func (r *CampaignRepository) Update(ctx context.Context, c domain.Campaign) error {
	tag, err := r.db.Exec(ctx, `UPDATE campaigns SET
		title = $2, subtitle = $3, cta_text = $4, link_url = $5, image_url = $6,
		background_style = $7, variant = $8, position = $9, target_type = $10,
		page = $11, item_slug = $12, city = $13, priority = $14,
		start_at = $15, end_at = $16, is_active = $17, updated_at = $18
		WHERE id = $1`,
		c.ID, c.Title, c.Subtitle, c.CTAText, c.LinkURL, c.ImageURL,
		c.BackgroundStyle, string(c.Variant), string(c.Position), string(c.Target.Type),
		nullString(string(c.Target.Page)), nullString(c.Target.ItemSlug), nullString(c.Target.City),
		c.Priority, c.StartAt, c.EndAt, c.IsActive, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// Delete removes a campaign by id.
func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// SetActive flips the activation kill switch and bumps updated_at.
func (r *CampaignRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE campaigns SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set campaign active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// scanCampaign maps one row onto a domain.Campaign, folding NULL targeting
// columns into empty strings.
func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c                    domain.Campaign
		variant, position    string
		targetType           string
		page, itemSlug, city *string
	)
	err := row.Scan(
		&c.ID, &c.Title, &c.Subtitle, &c.CTAText, &c.LinkURL, &c.ImageURL, &c.BackgroundStyle,
		&variant, &position, &targetType, &page, &itemSlug, &city,
		&c.Priority, &c.StartAt, &c.EndAt, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.Variant = domain.Variant(variant)
	c.Position = domain.Position(position)
	c.Target.Type = domain.TargetType(targetType)
	if page != nil {
		c.Target.Page = domain.PageID(*page)
	}
	if itemSlug != nil {
		c.Target.ItemSlug = *itemSlug
	}
	if city != nil {
		c.Target.City = *city
	}
	return c, nil
}

// nullString maps "" to a NULL column value.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
