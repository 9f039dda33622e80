// Package dday renders countdown labels between two calendar dates.
package dday

import (
	"fmt"
	"time"
)

const (
	secondsPerDay = 24 * 60 * 60
	isoLayout     = "2006-01-02"
)

// Days returns event minus ref in whole calendar days. Clock and zone are ignored;
// only the year, month and day of each argument count. Unix seconds are used
// because time.Duration cannot span more than about 292 years.
func Days(event, ref time.Time) int {
	e := civil(event).Unix()
	r := civil(ref).Unix()
	return int((e - r) / secondsPerDay)
}

// Format returns "D-n" before the event, "D-Day" on it and "D+n" after it.
func Format(event, ref time.Time) string {
	return Label(Days(event, ref))
}

// FormatISO is Format for a YYYY-MM-DD event date. Unparsable dates yield "".
func FormatISO(eventDate string, ref time.Time) string {
	event, err := time.Parse(isoLayout, eventDate)
	if err != nil {
		return ""
	}
	return Format(event, ref)
}

// Label formats an already computed day delta.
func Label(delta int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("D-%d", delta)
	case delta == 0:
		return "D-Day"
	default:
		return fmt.Sprintf("D+%d", -delta)
	}
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
