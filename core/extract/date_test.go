package extract_test

import (
	"testing"
	"time"

	"qldf/core/extract"

	"github.com/stretchr/testify/assert"
)

func TestParseWorkshopDateDayFirstWithoutYear(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	parsed, ok := extract.ParseWorkshopDate("20 Nov @ 3:45pm", now)
	assert.True(t, ok)
	// Steam renders in UTC-8, so 3:45pm becomes 23:45 UTC; the missing year
	// is taken from now.
	assert.Equal(t, time.Date(2026, 11, 20, 23, 45, 0, 0, time.UTC), parsed)
}

func TestParseWorkshopDateMonthFirstWithYear(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	parsed, ok := extract.ParseWorkshopDate("Nov 20, 2019 @ 3:45pm", now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2019, 11, 20, 23, 45, 0, 0, time.UTC), parsed)
}

func TestParseWorkshopDateDayFirstWithYear(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	parsed, ok := extract.ParseWorkshopDate("20 Nov, 2019 @ 3:45pm", now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2019, 11, 20, 23, 45, 0, 0, time.UTC), parsed)
}

func TestParseWorkshopDateMorning(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	parsed, ok := extract.ParseWorkshopDate("2 Jan, 2020 @ 9:05am", now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2020, 1, 2, 17, 5, 0, 0, time.UTC), parsed)
}

func TestParseWorkshopDateUnparseable(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	_, ok := extract.ParseWorkshopDate("posted yesterday", now)
	assert.False(t, ok)
}
