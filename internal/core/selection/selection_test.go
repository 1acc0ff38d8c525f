package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-ads/internal/core/domain"
)

var baseTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func ts(t time.Time) *time.Time { return &t }

// campaign returns an active horizontal/top campaign with the given id,
// target and priority, updated at baseTime.
func campaign(id string, target domain.Target, priority int) domain.Campaign {
	return domain.Campaign{
		ID:        id,
		Title:     "title " + id,
		CTAText:   "go",
		LinkURL:   "https://example.com/" + id,
		Variant:   domain.VariantHorizontal,
		Position:  domain.PositionTop,
		Target:    target,
		Priority:  priority,
		IsActive:  true,
		UpdatedAt: baseTime,
	}
}

// collegeContext is a detail-page render on colleges/iit-delhi from Delhi.
func collegeContext() domain.PlacementContext {
	return domain.PlacementContext{
		Variant:  domain.VariantHorizontal,
		Position: domain.PositionTop,
		Page:     domain.PageColleges,
		ItemSlug: "iit-delhi",
		City:     "Delhi",
		Now:      baseTime,
	}
}

func TestEligible(t *testing.T) {
	pc := collegeContext()

	tests := []struct {
		name   string
		mutate func(*domain.Campaign)
		want   bool
	}{
		{"active no window", func(c *domain.Campaign) {}, true},
		{"kill switch off", func(c *domain.Campaign) { c.IsActive = false }, false},
		{"variant mismatch", func(c *domain.Campaign) { c.Variant = domain.VariantVertical }, false},
		{"position mismatch", func(c *domain.Campaign) { c.Position = domain.PositionSidebar }, false},
		{"window open", func(c *domain.Campaign) {
			c.StartAt = ts(baseTime.AddDate(0, 0, -1))
			c.EndAt = ts(baseTime.AddDate(0, 0, 1))
		}, true},
		{"start boundary inclusive", func(c *domain.Campaign) { c.StartAt = ts(baseTime) }, true},
		{"end boundary inclusive", func(c *domain.Campaign) { c.EndAt = ts(baseTime) }, true},
		{"not yet started", func(c *domain.Campaign) { c.StartAt = ts(baseTime.AddDate(0, 0, 1)) }, false},
		{"already ended", func(c *domain.Campaign) { c.EndAt = ts(baseTime.AddDate(0, 0, -1)) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := campaign("c1", domain.UniversalTarget(), 50)
			tt.mutate(&c)
			assert.Equal(t, tt.want, Eligible(c, pc))
		})
	}
}

func TestEligibleEndBoundaryDayAfter(t *testing.T) {
	c := campaign("c1", domain.UniversalTarget(), 50)
	c.EndAt = ts(baseTime)

	pc := collegeContext()
	assert.True(t, Eligible(c, pc))

	pc.Now = baseTime.Add(24 * time.Hour)
	assert.False(t, Eligible(c, pc))
}

func TestMatch(t *testing.T) {
	pc := collegeContext()

	tests := []struct {
		name     string
		target   domain.Target
		wantTier Tier
		wantOK   bool
	}{
		{"item match", domain.ItemTarget(domain.PageColleges, "iit-delhi"), TierItem, true},
		{"item wrong slug", domain.ItemTarget(domain.PageColleges, "iit-bombay"), 0, false},
		{"item wrong page", domain.ItemTarget(domain.PageExams, "iit-delhi"), 0, false},
		{"page city match", domain.PageCityTarget(domain.PageColleges, "Delhi"), TierPageCity, true},
		{"page city wrong city", domain.PageCityTarget(domain.PageColleges, "Mumbai"), 0, false},
		{"page match", domain.PageTarget(domain.PageColleges), TierPage, true},
		{"page mismatch", domain.PageTarget(domain.PageArticles), 0, false},
		{"city match", domain.CityTarget("Delhi"), TierCity, true},
		{"city mismatch", domain.CityTarget("Mumbai"), 0, false},
		{"universal always", domain.UniversalTarget(), TierUniversal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := campaign("c1", tt.target, 50)
			tier, ok := Match(c, pc)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTier, tier)
		})
	}
}

// A rule that does not satisfy its own tier's condition is discarded, never
// downgraded: colleges+Mumbai on a Delhi render must not fall back to plain
// page matching.
func TestMatchNoDowngrade(t *testing.T) {
	c := campaign("c1", domain.PageCityTarget(domain.PageColleges, "Mumbai"), 50)
	_, ok := Match(c, collegeContext())
	assert.False(t, ok)
}

// Contexts missing a signal can never satisfy tiers that need it.
func TestMatchAbsencePropagation(t *testing.T) {
	pc := collegeContext()
	pc.City = ""

	for _, target := range []domain.Target{
		domain.CityTarget("Delhi"),
		domain.PageCityTarget(domain.PageColleges, "Delhi"),
	} {
		_, ok := Match(campaign("c1", target, 50), pc)
		assert.False(t, ok, "target %v must not match without a city", target.Type)
	}

	pc = collegeContext()
	pc.ItemSlug = ""
	_, ok := Match(campaign("c1", domain.ItemTarget(domain.PageColleges, "iit-delhi"), 50), pc)
	assert.False(t, ok)

	pc = collegeContext()
	pc.Page = ""
	for _, target := range []domain.Target{
		domain.PageTarget(domain.PageColleges),
		domain.PageCityTarget(domain.PageColleges, "Delhi"),
		domain.ItemTarget(domain.PageColleges, "iit-delhi"),
	} {
		_, ok := Match(campaign("c1", target, 50), pc)
		assert.False(t, ok, "target %v must not match without a page", target.Type)
	}
}

// Records that bypassed write validation (declared type with a missing
// required field, or an unknown type) match no tier instead of breaking a
// render.
func TestMatchFailsClosedOnMalformedRecords(t *testing.T) {
	pc := collegeContext()

	malformed := []domain.Target{
		{Type: domain.TargetItem, Page: domain.PageColleges},               // no slug
		{Type: domain.TargetItem, ItemSlug: "iit-delhi"},                   // no page
		{Type: domain.TargetPageCity, Page: domain.PageColleges},           // no city
		{Type: domain.TargetPageCity, City: "Delhi"},                       // no page
		{Type: domain.TargetPage},                                          // no page
		{Type: domain.TargetCity},                                          // no city
		{Type: domain.TargetType("vip")},                                   // unknown type
		{Type: domain.TargetType(""), Page: domain.PageColleges},           // empty type
	}
	for _, target := range malformed {
		_, ok := Match(campaign("c1", target, 50), pc)
		assert.False(t, ok, "malformed target %+v must match no tier", target)
	}
}

// Scenario: an item campaign with priority 10 beats a universal one with
// priority 100 because specificity dominates priority.
func TestSelectSpecificityDominatesPriority(t *testing.T) {
	campaigns := []domain.Campaign{
		campaign("a", domain.ItemTarget(domain.PageColleges, "iit-delhi"), 10),
		campaign("b", domain.UniversalTarget(), 100),
	}

	win := Select(campaigns, collegeContext())
	require.NotNil(t, win)
	assert.Equal(t, "a", win.ID)
}

func TestSelectPriorityWithinTier(t *testing.T) {
	pc := collegeContext()
	pc.Page = domain.PageExams
	pc.ItemSlug = ""

	campaigns := []domain.Campaign{
		campaign("c", domain.PageTarget(domain.PageExams), 50),
		campaign("d", domain.PageTarget(domain.PageExams), 70),
	}

	win := Select(campaigns, pc)
	require.NotNil(t, win)
	assert.Equal(t, "d", win.ID)
}

func TestSelectNoMatchReturnsNil(t *testing.T) {
	pc := collegeContext()
	pc.City = "Delhi"

	// only a Mumbai city campaign exists
	campaigns := []domain.Campaign{
		campaign("e", domain.CityTarget("Mumbai"), 20),
	}
	assert.Nil(t, Select(campaigns, pc))
}

func TestSelectInactiveNeverWins(t *testing.T) {
	c := campaign("f", domain.UniversalTarget(), 100)
	c.IsActive = false
	c.StartAt = ts(baseTime.AddDate(0, 0, -10))
	c.EndAt = ts(baseTime.AddDate(0, 0, 10))

	assert.Nil(t, Select([]domain.Campaign{c}, collegeContext()))
}

func TestSelectWindowNotYetOpen(t *testing.T) {
	c := campaign("g", domain.PageTarget(domain.PageCourses), 50)
	c.StartAt = ts(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

	pc := collegeContext()
	pc.Page = domain.PageCourses
	pc.ItemSlug = ""

	assert.Nil(t, Select([]domain.Campaign{c}, pc))
}

func TestSelectShapeIsolation(t *testing.T) {
	c := campaign("h", domain.ItemTarget(domain.PageColleges, "iit-delhi"), 100)
	c.Variant = domain.VariantVertical

	// all targeting fields line up, only the variant differs
	assert.Nil(t, Select([]domain.Campaign{c}, collegeContext()))
}

// With every tier present, winners peel off in tier order as each is removed.
func TestSelectTierLadder(t *testing.T) {
	all := []domain.Campaign{
		campaign("t5", domain.UniversalTarget(), 100),
		campaign("t4", domain.CityTarget("Delhi"), 90),
		campaign("t3", domain.PageTarget(domain.PageColleges), 80),
		campaign("t2", domain.PageCityTarget(domain.PageColleges, "Delhi"), 70),
		campaign("t1", domain.ItemTarget(domain.PageColleges, "iit-delhi"), 60),
	}
	pc := collegeContext()

	want := []string{"t1", "t2", "t3", "t4", "t5"}
	remaining := all
	for _, id := range want {
		win := Select(remaining, pc)
		require.NotNil(t, win)
		assert.Equal(t, id, win.ID)

		next := remaining[:0:0]
		for _, c := range remaining {
			if c.ID != win.ID {
				next = append(next, c)
			}
		}
		remaining = next
	}
	assert.Nil(t, Select(remaining, pc))
}

func TestSelectTieBreakUpdatedAt(t *testing.T) {
	older := campaign("older", domain.UniversalTarget(), 50)
	newer := campaign("newer", domain.UniversalTarget(), 50)
	newer.UpdatedAt = baseTime.Add(time.Hour)

	win := Select([]domain.Campaign{older, newer}, collegeContext())
	require.NotNil(t, win)
	assert.Equal(t, "newer", win.ID)
}

func TestSelectTieBreakID(t *testing.T) {
	a := campaign("aaa", domain.UniversalTarget(), 50)
	z := campaign("zzz", domain.UniversalTarget(), 50)

	win := Select([]domain.Campaign{z, a}, collegeContext())
	require.NotNil(t, win)
	assert.Equal(t, "aaa", win.ID)
}

// Identical inputs always produce the identical winner, independent of
// snapshot order.
func TestSelectDeterminism(t *testing.T) {
	campaigns := []domain.Campaign{
		campaign("p1", domain.PageTarget(domain.PageColleges), 40),
		campaign("p2", domain.PageTarget(domain.PageColleges), 40),
		campaign("p3", domain.CityTarget("Delhi"), 90),
		campaign("u", domain.UniversalTarget(), 100),
	}
	pc := collegeContext()

	first := Select(campaigns, pc)
	require.NotNil(t, first)

	for i := 0; i < 10; i++ {
		again := Select(campaigns, pc)
		require.NotNil(t, again)
		assert.Equal(t, first.ID, again.ID)
	}

	reversed := make([]domain.Campaign, 0, len(campaigns))
	for i := len(campaigns) - 1; i >= 0; i-- {
		reversed = append(reversed, campaigns[i])
	}
	win := Select(reversed, pc)
	require.NotNil(t, win)
	assert.Equal(t, first.ID, win.ID)
}

func TestSelectEmptySnapshot(t *testing.T) {
	assert.Nil(t, Select(nil, collegeContext()))
	assert.Nil(t, Select([]domain.Campaign{}, collegeContext()))
}

// The winner is a copy; mutating it must not leak into the shared snapshot.
func TestSelectReturnsCopy(t *testing.T) {
	campaigns := []domain.Campaign{campaign("u", domain.UniversalTarget(), 10)}

	win := Select(campaigns, collegeContext())
	require.NotNil(t, win)
	win.Title = "mutated"

	assert.Equal(t, "title u", campaigns[0].Title)
}
