// Package schedule buckets game start times into calendar days evaluated
// in US Eastern time, independent of the server's local zone. NBA slates
// are published in Eastern: a 10:30 PM PT tip-off and a 12:05 AM ET
// tip-off the next morning belong to different slates.
package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates throughout the API
const DateLayout = "2006-01-02"

var eastern *time.Location

func init() {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(fmt.Sprintf("schedule: load America/New_York: %v", err))
	}
	eastern = loc
}

// ParseInstant parses an event start time (RFC3339, as The Odds API sends
// it). ok is false for empty or malformed values; such games belong to no
// date bucket.
func ParseInstant(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// DayOf returns the Eastern calendar date of an instant
func DayOf(t time.Time) string {
	return t.In(eastern).Format(DateLayout)
}

// SameDay reports whether an instant falls on the given Eastern calendar
// date. Comparison is wall-clock Y-M-D in Eastern, not instant equality.
// The zero instant matches no date.
func SameDay(t time.Time, date string) bool {
	if t.IsZero() {
		return false
	}

	return DayOf(t) == date
}

// Today returns the current Eastern calendar date
func Today() string {
	return DayOf(time.Now())
}

// NextDay shifts a calendar date forward one day, handling month and year
// rollover in Eastern time
func NextDay(date string) (string, error) {
	return shiftDay(date, 1)
}

// PrevDay shifts a calendar date back one day
func PrevDay(date string) (string, error) {
	return shiftDay(date, -1)
}

func shiftDay(date string, days int) (string, error) {
	t, err := time.ParseInLocation(DateLayout, date, eastern)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}

	return t.AddDate(0, 0, days).Format(DateLayout), nil
}

// ValidDate reports whether a string is a well-formed calendar date
func ValidDate(date string) bool {
	_, err := time.ParseInLocation(DateLayout, date, eastern)
	return err == nil
}
