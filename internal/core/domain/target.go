package domain

// TargetType is the closed set of targeting variants a campaign can declare.
// The variant determines which of Page, ItemSlug and City must be populated;
// use the constructors below so malformed combinations cannot be built.
type TargetType string

const (
	TargetUniversal TargetType = "universal"
	TargetPage      TargetType = "page"
	TargetPageCity  TargetType = "page_city"
	TargetItem      TargetType = "item"
	TargetCity      TargetType = "city"
)

// Valid reports whether t is a known target type.
func (t TargetType) Valid() bool {
	switch t {
	case TargetUniversal, TargetPage, TargetPageCity, TargetItem, TargetCity:
		return true
	}
	return false
}

// Target is a campaign's targeting rule. Fields outside the declared Type are
// empty. The write boundary rejects malformed targets; the selection engine
// additionally fails closed when a stored record bypassed that boundary.
type Target struct {
	Type     TargetType
	Page     PageID
	ItemSlug string
	City     string
}

// UniversalTarget matches every placement.
func UniversalTarget() Target {
	return Target{Type: TargetUniversal}
}

// PageTarget matches placements on the given page.
func PageTarget(page PageID) Target {
	return Target{Type: TargetPage, Page: page}
}

// PageCityTarget matches placements on the given page for visitors resolved
// to the given city.
func PageCityTarget(page PageID, city string) Target {
	return Target{Type: TargetPageCity, Page: page, City: city}
}

// ItemTarget matches detail-page placements for one item on the given page.
func ItemTarget(page PageID, itemSlug string) Target {
	return Target{Type: TargetItem, Page: page, ItemSlug: itemSlug}
}

// CityTarget matches placements for visitors resolved to the given city,
// regardless of page.
func CityTarget(city string) Target {
	return Target{Type: TargetCity, City: city}
}
