// Package clock provides the small timestamp collaborator the CLI demo
// drivers use to express time windows in wall-clock hours/minutes rather
// than raw seconds, grounded on original_source's tstamp.hpp/tstamp.cpp
// (a struct of hour/minute fields convertible to a single seconds-since-
// midnight scalar for use as a TSPTW duration/window unit).
package clock

import "errors"

// ErrInvalidTimestamp is returned when hours or minutes fall outside their
// valid ranges.
var ErrInvalidTimestamp = errors.New("clock: hours must be in [0,23] and minutes in [0,59]")

// Timestamp is a wall-clock time of day, stored as seconds since midnight.
type Timestamp struct {
	seconds float64
}

// NewTimestamp builds a Timestamp from hours and minutes, validating both
// are in range the way tstamp.cpp's constructor does.
func NewTimestamp(hours, minutes int) (Timestamp, error) {
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return Timestamp{}, ErrInvalidTimestamp
	}
	return Timestamp{seconds: float64(hours*3600 + minutes*60)}, nil
}

// Seconds returns the timestamp as seconds since midnight, the scalar form
// the tsptw package's duration/timeWindow functions operate on.
func (t Timestamp) Seconds() float64 { return t.seconds }

// Before reports whether t is strictly earlier than other.
func (t Timestamp) Before(other Timestamp) bool { return t.seconds < other.seconds }
