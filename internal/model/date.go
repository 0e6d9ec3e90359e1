package model

import "time"

// DateLayout is how DATE columns are written in seed data and CLI input.
const DateLayout = "2006-01-02"

// Day truncates t to its calendar date at midnight UTC, the value a DATE
// column keeps.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a DateLayout string.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
