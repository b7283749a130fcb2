package utils

import (
	"errors"
	"time"
)

// DebutLayout is the wire format used when returning reservation start
// times to clients ("YYYY-MM-DD HH:MM:SS"), matching how the rows are
// stored in the DATETIME column.
const DebutLayout = "2006-01-02 15:04:05"

// debutInputLayouts lists the accepted request formats for a reservation
// start time, tried in order.  Clients typically send an ISO-like
// date-time without offset ("2024-01-01T10:00:00"); full RFC3339 and the
// storage layout itself are accepted as well.
var debutInputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	DebutLayout,
}

// ErrBadDebut is returned when a debut string matches none of the
// accepted layouts.
var ErrBadDebut = errors.New("unrecognized date-time format")

// ParseDebut parses an ISO-like date-time string into a UTC time.
func ParseDebut(s string) (time.Time, error) {
	for _, layout := range debutInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrBadDebut
}

// FormatDebut renders a reservation start time in the wire format.
func FormatDebut(t time.Time) string {
	return t.UTC().Format(DebutLayout)
}
