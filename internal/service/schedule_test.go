package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		date, timeOfDay, err := parseSchedule("2024-06-15", "09:30")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), date)
		assert.Equal(t, "09:30", timeOfDay)
	})

	t.Run("rejects wrong date format", func(t *testing.T) {
		_, _, err := parseSchedule("15.06.2024", "09:30")
		assert.Error(t, err)
	})

	t.Run("rejects impossible date", func(t *testing.T) {
		_, _, err := parseSchedule("2024-02-30", "09:30")
		assert.Error(t, err)
	})

	t.Run("rejects wrong time format", func(t *testing.T) {
		_, _, err := parseSchedule("2024-06-15", "9:30 AM")
		assert.Error(t, err)
	})
}

func TestCombineSchedule(t *testing.T) {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	instant := combineSchedule(date, "18:45")
	assert.Equal(t, time.Date(2024, 6, 15, 18, 45, 0, 0, time.UTC), instant)
}

func TestDateAndTimeOf(t *testing.T) {
	// A zoned instant maps to the UTC calendar day and clock.
	zone := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2024, 6, 16, 3, 15, 0, 0, zone)

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), dateOf(now))
	assert.Equal(t, "22:15", timeOf(now))
}
