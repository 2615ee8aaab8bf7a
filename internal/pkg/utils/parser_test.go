package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppointmentDate(t *testing.T) {
	t.Run("plain calendar date", func(t *testing.T) {
		parsed, err := ParseAppointmentDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("RFC3339 timestamp is truncated to midnight UTC", func(t *testing.T) {
		parsed, err := ParseAppointmentDate("2026-09-15T18:45:00+05:30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("same day in different encodings collapses to one key", func(t *testing.T) {
		fromDate, err := ParseAppointmentDate("2026-09-15")
		require.NoError(t, err)
		fromTimestamp, err := ParseAppointmentDate("2026-09-15T09:00:00Z")
		require.NoError(t, err)
		assert.True(t, fromDate.Equal(fromTimestamp))
	})

	t.Run("rejects other formats", func(t *testing.T) {
		_, err := ParseAppointmentDate("15/09/2026")
		assert.Error(t, err)
		_, err = ParseAppointmentDate("")
		assert.Error(t, err)
	})
}

func TestFormatCompactNumber(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{42, "42"},
		{999, "999"},
		{1000, "1K+"},
		{1500, "1.5K+"},
		{12300, "12.3K+"},
		{50000, "50K+"},
		{1000000, "1M+"},
		{2500000, "2.5M+"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatCompactNumber(tc.input), "input %d", tc.input)
	}
}
