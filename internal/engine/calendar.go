package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-age/internal/config"
)

// CalendarDate is a Gregorian year/month/day triple without a time of day.
// Month is 1-based (time.January == 1), matching the time package.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate is a shorthand constructor. It does not validate.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Time returns the instant of the date: midnight UTC.
// Anchoring every date to UTC midnight makes each day exactly 24 hours long,
// so interval totals are never shifted by daylight saving transitions.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// UnixMilli returns the epoch-millisecond instant of the date.
func (d CalendarDate) UnixMilli() int64 {
	return d.Time().UnixMilli()
}

// Before reports whether d falls strictly before other.
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.UnixMilli() < other.UnixMilli()
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf(config.FormatCalendarDate, d.Year, int(d.Month), d.Day)
}

// Validate checks that the date exists in the Gregorian calendar.
// It must be called before a date reaches Compute: an impossible date such as
// Feb 30 would otherwise be silently normalized by the time package.
func (d CalendarDate) Validate() error {
	switch {
	case d.Year < config.MinYear || d.Year > config.MaxYear:
		return fmt.Errorf("%w: %s: %d", ErrInvalidDate, config.ErrYearRange, d.Year)
	case d.Month < time.January || d.Month > time.December:
		return fmt.Errorf("%w: %s: %d", ErrInvalidDate, config.ErrMonthRange, int(d.Month))
	case d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month):
		return fmt.Errorf("%w: %s: %s", ErrInvalidDate, config.ErrDayRange, d)
	}
	return nil
}

// IsLeapYear reports whether year has a Feb 29 under the Gregorian rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days of month in year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// dateFieldWidths is the zero-padded YYYY-MM-DD shape.
var dateFieldWidths = [3]int{4, 2, 2}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// ParseCalendarDate reads a YYYY-MM-DD string and validates the result.
// Fields are parsed individually so that "2023-02-30" reports ErrInvalidDate
// rather than a generic layout mismatch.
func ParseCalendarDate(value string) (CalendarDate, error) {
	parts := strings.Split(strings.TrimSpace(value), config.DateSeparator)
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("%w: %s: %q", ErrInvalidDate, config.ErrDateSyntax, value)
	}

	var fields [3]int
	for i, p := range parts {
		if len(p) != dateFieldWidths[i] || !isDigits(p) {
			return CalendarDate{}, fmt.Errorf("%w: %s: %q", ErrInvalidDate, config.ErrDateSyntax, value)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return CalendarDate{}, fmt.Errorf("%w: %s: %q", ErrInvalidDate, config.ErrDateSyntax, value)
		}
		fields[i] = n
	}

	d := CalendarDate{Year: fields[0], Month: time.Month(fields[1]), Day: fields[2]}
	if err := d.Validate(); err != nil {
		return CalendarDate{}, err
	}
	return d, nil
}
