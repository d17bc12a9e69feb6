package service

import (
	"fmt"
	"time"
)

// Wire formats for schedule fields, matching the HTML form inputs the API
// replaced: dates arrive as "2006-01-02", times as "15:04".
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// parseSchedule validates a (date, time) pair of strings. The returned date
// is midnight UTC of the calendar day; the time stays an "HH:MM" string so
// that lexicographic order in the store matches clock order.
func parseSchedule(dateStr, timeStr string) (time.Time, string, error) {
	date, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("time.ParseInLocation(%q) -> %w", dateStr, err)
	}

	clock, err := time.Parse(TimeLayout, timeStr)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("time.Parse(%q) -> %w", timeStr, err)
	}

	return date, clock.Format(TimeLayout), nil
}

// combineSchedule builds the instant a (date, "HH:MM") pair refers to.
func combineSchedule(date time.Time, timeOfDay string) time.Time {
	clock, err := time.Parse(TimeLayout, timeOfDay)
	if err != nil {
		return date
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}

// dateOf truncates an instant to midnight UTC of its calendar day.
func dateOf(now time.Time) time.Time {
	now = now.UTC()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// timeOf renders the clock part of an instant in the "HH:MM" wire format.
func timeOf(now time.Time) string {
	return now.UTC().Format(TimeLayout)
}
