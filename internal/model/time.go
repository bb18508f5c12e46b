package model

import "time"

// TimeLayout is the fixed-width ISO-8601 layout used for every created_at
// field in the system. Timestamps are persisted as strings in this format so
// that inclusive date-range filters reduce to plain string comparison: the
// layout is zero-padded, so lexicographic order equals chronological order.
// A bare date prefix ("2006-01-02") also compares correctly against it.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// NowISO returns the current UTC time formatted with TimeLayout.
func NowISO() string {
	return time.Now().UTC().Format(TimeLayout)
}
