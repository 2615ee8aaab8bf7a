package utils

import (
	"fmt"
	"legalhub-service/internal/pkg/constvars"
	"time"
)

// ParseAppointmentDate accepts a calendar date ("2006-01-02") or a full
// RFC3339 timestamp and normalizes it to midnight UTC. The time of day is
// carried by the slot label, never by the date.
func ParseAppointmentDate(value string) (time.Time, error) {
	if t, err := time.Parse(constvars.AppointmentDateLayout, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", value, err)
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatCompactNumber renders counts for homepage display, e.g. 50000 -> "50K+".
func FormatCompactNumber(n int) string {
	switch {
	case n >= 1000000:
		return trimTrailingZero(float64(n)/1000000) + "M+"
	case n >= 1000:
		return trimTrailingZero(float64(n)/1000) + "K+"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimTrailingZero(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
