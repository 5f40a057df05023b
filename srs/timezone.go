package srs

import (
	"fmt"
	"time"
)

// MidnightNormalizer renormalizes a review instant to local midnight of
// the same calendar day in a learner's timezone. It is an interface so
// tests can inject a fake and keep the scheduler independent of the host
// timezone database.
type MidnightNormalizer interface {
	// NormalizeToLocalMidnight computes the calendar date of t in the
	// named IANA zone and returns the instant of 00:00:00 on that date
	// in that zone. It returns an error for unresolvable zone names.
	NormalizeToLocalMidnight(t time.Time, tzName string) (time.Time, error)
}

// locationNormalizer is the standard MidnightNormalizer backed by the
// time package's IANA timezone database.
type locationNormalizer struct{}

// NewLocationNormalizer returns a MidnightNormalizer that resolves zone
// names with time.LoadLocation.
func NewLocationNormalizer() MidnightNormalizer {
	return locationNormalizer{}
}

func (locationNormalizer) NormalizeToLocalMidnight(t time.Time, tzName string) (time.Time, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load timezone %q: %w", tzName, err)
	}

	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
}
