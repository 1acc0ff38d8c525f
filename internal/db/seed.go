package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"campus-ads/internal/core/domain"
)

// Seed inserts demo campaigns covering every target type, so a fresh local
// database immediately exercises the whole specificity ladder.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	start := time.Now().AddDate(0, 0, -1).UTC()
	end := time.Now().AddDate(0, 3, 0).UTC()

	demo := []domain.Campaign{
		{
			ID:       "seed-item-iit-delhi",
			Title:    "IIT Delhi Open House",
			Subtitle: "Meet the faculty this month",
			CTAText:  "Register",
			LinkURL:  "https://example.com/iit-delhi-open-house",
			Variant:  domain.VariantHorizontal,
			Position: domain.PositionTop,
			Target:   domain.ItemTarget(domain.PageColleges, "iit-delhi"),
			Priority: 40,
			StartAt:  &start,
			EndAt:    &end,
			IsActive: true,
		},
		{
			ID:       "seed-pagecity-exams-mumbai",
			Title:    "Mumbai Exam Prep Week",
			CTAText:  "Book a seat",
			LinkURL:  "https://example.com/mumbai-exam-prep",
			Variant:  domain.VariantHorizontal,
			Position: domain.PositionTop,
			Target:   domain.PageCityTarget(domain.PageExams, "Mumbai"),
			Priority: 60,
			IsActive: true,
		},
		{
			ID:       "seed-page-courses",
			Title:    "Compare Courses Side by Side",
			CTAText:  "Try it",
			LinkURL:  "https://example.com/course-compare",
			Variant:  domain.VariantLeaderboard,
			Position: domain.PositionLeaderboard,
			Target:   domain.PageTarget(domain.PageCourses),
			Priority: 50,
			IsActive: true,
		},
		{
			ID:       "seed-city-delhi",
			Title:    "Delhi Career Fair",
			CTAText:  "Get a pass",
			LinkURL:  "https://example.com/delhi-career-fair",
			Variant:  domain.VariantVertical,
			Position: domain.PositionSidebar,
			Target:   domain.CityTarget("Delhi"),
			Priority: 30,
			StartAt:  &start,
			IsActive: true,
		},
		{
			ID:              "seed-universal-app",
			Title:           "Download the App",
			CTAText:         "Install",
			LinkURL:         "#",
			BackgroundStyle: "gradient-blue",
			Variant:         domain.VariantSquare,
			Position:        domain.PositionBottom,
			Target:          domain.UniversalTarget(),
			Priority:        10,
			IsActive:        true,
		},
		{
			ID:       "seed-page-homepage-paused",
			Title:    "Paused Homepage Banner",
			CTAText:  "Learn more",
			LinkURL:  "https://example.com/paused",
			Variant:  domain.VariantLeaderboard,
			Position: domain.PositionLeaderboard,
			Target:   domain.PageTarget(domain.PageHomepage),
			Priority: 90,
			IsActive: false,
		},
	}

	for _, c := range demo {
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
			(id, title, subtitle, cta_text, link_url, image_url, background_style,
			 variant, position, target_type, page, item_slug, city,
			 priority, start_at, end_at, is_active, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,now(),now())
			ON CONFLICT DO NOTHING`,
			c.ID, c.Title, c.Subtitle, c.CTAText, c.LinkURL, c.ImageURL, c.BackgroundStyle,
			string(c.Variant), string(c.Position), string(c.Target.Type),
			seedNull(string(c.Target.Page)), seedNull(c.Target.ItemSlug), seedNull(c.Target.City),
			c.Priority, c.StartAt, c.EndAt, c.IsActive)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
