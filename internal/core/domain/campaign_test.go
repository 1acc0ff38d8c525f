package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPriority(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{250, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPriority(tt.in))
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, VariantSquare.Valid())
	assert.False(t, Variant("banner").Valid())

	assert.True(t, PositionMid.Valid())
	assert.False(t, Position("footer").Valid())

	assert.True(t, PageExams.Known())
	assert.False(t, PageID("forums").Known())

	assert.True(t, TargetPageCity.Valid())
	assert.False(t, TargetType("segment").Valid())
}

// Constructors must never populate fields outside their variant.
func TestTargetConstructors(t *testing.T) {
	assert.Equal(t, Target{Type: TargetUniversal}, UniversalTarget())
	assert.Equal(t, Target{Type: TargetPage, Page: PageCourses}, PageTarget(PageCourses))
	assert.Equal(t, Target{Type: TargetPageCity, Page: PageExams, City: "Pune"}, PageCityTarget(PageExams, "Pune"))
	assert.Equal(t, Target{Type: TargetItem, Page: PageColleges, ItemSlug: "iit-delhi"}, ItemTarget(PageColleges, "iit-delhi"))
	assert.Equal(t, Target{Type: TargetCity, City: "Chennai"}, CityTarget("Chennai"))
}
