package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It is used to resolve "today" as the default target date.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the local calendar date of c.
// The user's wall-clock date is what matters here, not the UTC one.
func Today(c Clock) CalendarDate {
	return DateOf(c.Now())
}
