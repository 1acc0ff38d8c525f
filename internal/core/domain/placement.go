package domain

import "time"

// PlacementContext carries the slot shape and audience signals for a single
// render request. Page, ItemSlug and City are optional; an empty value means
// the signal is absent and any targeting rule that needs it cannot match.
// Now is injected rather than read from the system clock so selection stays
// pure and testable. A context is built fresh per render call and has no
// identity beyond that call.
type PlacementContext struct {
	Variant  Variant
	Position Position
	Page     PageID
	ItemSlug string
	City     string
	Now      time.Time
}

// NewPlacementContext assembles a context for one render request, stamped
// with the current instant. City comes from an external geo signal and may be
// empty. Page identifiers are passed through opaquely; no validation happens
// here beyond type shape.
func NewPlacementContext(variant Variant, position Position, page PageID, itemSlug, city string) PlacementContext {
	return PlacementContext{
		Variant:  variant,
		Position: position,
		Page:     page,
		ItemSlug: itemSlug,
		City:     city,
		Now:      time.Now().UTC(),
	}
}
