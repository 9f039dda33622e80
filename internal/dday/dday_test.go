package dday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFormat(t *testing.T) {
	ref := date("2025-01-05")

	tests := []struct {
		name  string
		event string
		want  string
	}{
		{"Future", "2025-01-10", "D-5"},
		{"SameDay", "2025-01-05", "D-Day"},
		{"Past", "2025-01-01", "D+4"},
		{"AcrossYear", "2024-12-31", "D+5"},
		{"LeapDay", "2028-03-01", "D-1151"},
		{"FarFuture", "9999-12-31", "D-2912803"},
		{"FarPast", "0001-01-01", "D+739255"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(date(tt.event), ref))
		})
	}
}

func TestDays(t *testing.T) {
	t.Run("IgnoresTimeOfDay", func(t *testing.T) {
		event := date("2025-01-06")
		ref := time.Date(2025, 1, 5, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, 1, Days(event, ref))
	})

	t.Run("UsesCalendarDateOfEachZone", func(t *testing.T) {
		kst := time.FixedZone("KST", 9*60*60)
		// 2025-01-05 20:00 UTC is already 2025-01-06 in Seoul
		ref := time.Date(2025, 1, 5, 20, 0, 0, 0, time.UTC).In(kst)
		assert.Equal(t, "D-Day", Format(date("2025-01-06"), ref))
	})

	t.Run("NegativeOffsetZone", func(t *testing.T) {
		loc := time.FixedZone("X", -7*60*60)
		ref := time.Date(2025, 3, 9, 1, 0, 0, 0, loc)
		assert.Equal(t, 30, Days(date("2025-04-08"), ref))
	})
}

func TestFormatISO(t *testing.T) {
	ref := date("2025-01-05")

	assert.Equal(t, "D-5", FormatISO("2025-01-10", ref))
	assert.Equal(t, "D-Day", FormatISO("2025-01-05", ref))
	assert.Empty(t, FormatISO("2025-13-40", ref))
	assert.Empty(t, FormatISO("", ref))
}
