package domain

import "time"

// Variant is the visual shape class of a creative.
type Variant string

const (
	VariantLeaderboard Variant = "leaderboard"
	VariantHorizontal  Variant = "horizontal"
	VariantVertical    Variant = "vertical"
	VariantSquare      Variant = "square"
)

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	switch v {
	case VariantLeaderboard, VariantHorizontal, VariantVertical, VariantSquare:
		return true
	}
	return false
}

// Position is the layout location within a page a campaign may occupy.
type Position string

const (
	PositionLeaderboard Position = "leaderboard"
	PositionTop         Position = "top"
	PositionMid         Position = "mid"
	PositionBottom      Position = "bottom"
	PositionSidebar     Position = "sidebar"
)

// Valid reports whether p is a known position.
func (p Position) Valid() bool {
	switch p {
	case PositionLeaderboard, PositionTop, PositionMid, PositionBottom, PositionSidebar:
		return true
	}
	return false
}

// PageID identifies a portal page type campaigns can be scoped to. Placement
// contexts may carry page identifiers outside this set; only the admin write
// boundary restricts campaigns to known pages.
type PageID string

const (
	PageColleges PageID = "colleges"
	PageCourses  PageID = "courses"
	PageExams    PageID = "exams"
	PageArticles PageID = "articles"
	PageHomepage PageID = "homepage"
)

// Known reports whether p is one of the pages the admin boundary accepts.
func (p PageID) Known() bool {
	switch p {
	case PageColleges, PageCourses, PageExams, PageArticles, PageHomepage:
		return true
	}
	return false
}

// Priority bounds. Values outside the range are clamped at write time.
const (
	MinPriority = 0
	MaxPriority = 100
)

// ClampPriority forces p into the [MinPriority, MaxPriority] range.
func ClampPriority(p int) int {
	if p < MinPriority {
		return MinPriority
	}
	if p > MaxPriority {
		return MaxPriority
	}
	return p
}

// Campaign is one configured advertisement: creative payload, slot shape,
// targeting, priority, schedule and activation state. The creative fields
// (title, CTA, URLs, background) are opaque to the selection engine.
//
// StartAt and EndAt bound the active window inclusively; a nil bound means
// unbounded on that side. IsActive is a kill switch independent of the window.
type Campaign struct {
	ID              string
	Title           string
	Subtitle        string
	CTAText         string
	LinkURL         string
	ImageURL        string
	BackgroundStyle string
	Variant         Variant
	Position        Position
	Target          Target
	Priority        int
	StartAt         *time.Time
	EndAt           *time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
