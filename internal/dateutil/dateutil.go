// Package dateutil provides date parsing, validation, and day-index math
// for the timeline range.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// DateRange represents a validated date range. End is always on or after
// Start and both are truncated to midnight.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a DateRange from YYYY-MM-DD strings.
// startDate can be empty (defaults to today); endDate can be empty
// (defaults to startDate). Returns ErrEndDateBeforeStart if the end
// precedes the start.
func NewDateRange(startDate, endDate string) (*DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	var end time.Time
	if endDate == "" {
		end = start
	} else {
		end, err = ParseDate(endDate)
		if err != nil {
			return nil, err
		}
	}

	return Range(start, end)
}

// Range builds a DateRange from two times, truncating both to midnight.
func Range(start, end time.Time) (*DateRange, error) {
	start = TruncateToDay(start)
	end = TruncateToDay(end)
	if end.Before(start) {
		return nil, ErrEndDateBeforeStart
	}
	return &DateRange{Start: start, End: end}, nil
}

// Days returns the number of calendar days covered by the range,
// inclusive of both endpoints.
func (r *DateRange) Days() int {
	return DaysBetween(r.Start, r.End) + 1
}

// Contains returns true if t (truncated to day) falls inside the range.
func (r *DateRange) Contains(t time.Time) bool {
	t = TruncateToDay(t)
	return !t.Before(r.Start) && !t.After(r.End)
}

// DayIndex returns the zero-based offset of t from the range start.
// The result is negative or >= Days() for dates outside the range.
func (r *DateRange) DayIndex(t time.Time) int {
	return DaysBetween(r.Start, t)
}

// DayAt returns the calendar day at the given zero-based index.
func (r *DateRange) DayAt(index int) time.Time {
	return r.Start.AddDate(0, 0, index)
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// DaysBetween returns the whole number of days from a to b.
// Negative when b is before a. Both are truncated to midnight first so
// the result is stable across times of day.
func DaysBetween(a, b time.Time) int {
	a = TruncateToDay(a)
	b = TruncateToDay(b)
	return int(b.Sub(a).Hours() / 24)
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseJumpDate parses a navigation target that can be:
//   - Empty string or "today": returns relativeTo date
//   - Keywords: "tomorrow", "next-week"
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//
// All inputs are case-insensitive. Returns ErrInvalidDateFormat for
// unrecognized input.
func ParseJumpDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "next-week":
		return today.AddDate(0, 0, 7), nil
	}

	result, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}
