package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsInRange(t *testing.T) {
	start := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	months := MonthsInRange(start, end)

	if assert.Len(t, months, 3) {
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), months[0])
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), months[1])
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), months[2])
	}
}

func TestMonthsInRange_SingleMonth(t *testing.T) {
	start := time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 28, 0, 0, 0, 0, time.UTC)

	months := MonthsInRange(start, end)

	if assert.Len(t, months, 1) {
		assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), months[0])
	}
}

func TestMonthsInRange_YearBoundary(t *testing.T) {
	start := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	months := MonthsInRange(start, end)

	assert.Len(t, months, 4)
}

func TestFormatUnixRFC3339(t *testing.T) {
	assert.Nil(t, FormatUnixRFC3339(nil))

	sec := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC).Unix()
	got := FormatUnixRFC3339(&sec)
	if assert.NotNil(t, got) {
		assert.Equal(t, "2026-05-01T12:00:00Z", *got)
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), StartOfDay(in))
}
