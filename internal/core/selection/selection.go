// Package selection implements the pure campaign selection engine: the
// eligibility filter, the specificity-tier matcher and the winner selector.
// Everything here is a side-effect-free computation over an immutable
// campaign snapshot and a single PlacementContext, safe to run from any
// number of concurrent page renders without locking.
package selection

import (
	"campus-ads/internal/core/domain"
)

// Tier ranks how specifically a campaign targets a placement. Lower values
// are more specific and always beat higher ones, regardless of priority.
type Tier int

const (
	TierItem Tier = iota + 1
	TierPageCity
	TierPage
	TierCity
	TierUniversal
)

// String returns the tier's target-type name, useful for metrics labels.
func (t Tier) String() string {
	switch t {
	case TierItem:
		return "item"
	case TierPageCity:
		return "page_city"
	case TierPage:
		return "page"
	case TierCity:
		return "city"
	case TierUniversal:
		return "universal"
	}
	return "unknown"
}

// Eligible reports whether c could ever serve the slot described by pc,
// ignoring targeting: the campaign must be switched on, match the requested
// variant and position exactly, and contain pc.Now within its schedule.
// Window bounds are inclusive; a nil bound is unbounded on that side.
func Eligible(c domain.Campaign, pc domain.PlacementContext) bool {
	if !c.IsActive {
		return false
	}
	if c.Variant != pc.Variant || c.Position != pc.Position {
		return false
	}
	if c.StartAt != nil && pc.Now.Before(*c.StartAt) {
		return false
	}
	if c.EndAt != nil && pc.Now.After(*c.EndAt) {
		return false
	}
	return true
}

// Match classifies c into exactly one specificity tier against pc. A campaign
// whose declared target cannot be satisfied matches no tier at all; it is
// never downgraded to a less specific one. This covers three cases uniformly:
// the context lacks the needed signal, the stored record is missing a field
// its type requires (a bypassed write path fails closed instead of crashing a
// render), or the values simply differ.
func Match(c domain.Campaign, pc domain.PlacementContext) (Tier, bool) {
	t := c.Target
	switch t.Type {
	case domain.TargetItem:
		if t.Page == "" || t.ItemSlug == "" || pc.Page == "" || pc.ItemSlug == "" {
			return 0, false
		}
		if t.Page == pc.Page && t.ItemSlug == pc.ItemSlug {
			return TierItem, true
		}
	case domain.TargetPageCity:
		if t.Page == "" || t.City == "" || pc.Page == "" || pc.City == "" {
			return 0, false
		}
		if t.Page == pc.Page && t.City == pc.City {
			return TierPageCity, true
		}
	case domain.TargetPage:
		if t.Page == "" || pc.Page == "" {
			return 0, false
		}
		if t.Page == pc.Page {
			return TierPage, true
		}
	case domain.TargetCity:
		if t.City == "" || pc.City == "" {
			return 0, false
		}
		if t.City == pc.City {
			return TierCity, true
		}
	case domain.TargetUniversal:
		return TierUniversal, true
	}
	return 0, false
}

// Select picks the single winning campaign for pc, or nil when nothing is
// eligible and matching. The winner is the matching candidate with the lowest
// tier, then the highest priority, then the latest UpdatedAt, then the
// lexicographically smallest ID. Identical inputs always yield the identical
// result. The returned campaign is a copy; the input slice is never mutated.
func Select(campaigns []domain.Campaign, pc domain.PlacementContext) *domain.Campaign {
	var (
		best     *domain.Campaign
		bestTier Tier
	)
	for i := range campaigns {
		c := &campaigns[i]
		if !Eligible(*c, pc) {
			continue
		}
		tier, ok := Match(*c, pc)
		if !ok {
			continue
		}
		if best == nil || beats(c, tier, best, bestTier) {
			best, bestTier = c, tier
		}
	}
	if best == nil {
		return nil
	}
	win := *best
	return &win
}

// beats reports whether candidate c at tier ct wins over the incumbent b at
// tier bt under the deterministic ordering.
func beats(c *domain.Campaign, ct Tier, b *domain.Campaign, bt Tier) bool {
	if ct != bt {
		return ct < bt
	}
	if c.Priority != b.Priority {
		return c.Priority > b.Priority
	}
	if !c.UpdatedAt.Equal(b.UpdatedAt) {
		return c.UpdatedAt.After(b.UpdatedAt)
	}
	return c.ID < b.ID
}
