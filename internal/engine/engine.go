package engine

import (
	"time"

	"github.com/tartampluch/go-age/internal/config"
)

// Interval lengths in milliseconds.
const (
	msPerSecond = int64(time.Second / time.Millisecond)
	msPerMinute = int64(time.Minute / time.Millisecond)
	msPerHour   = int64(time.Hour / time.Millisecond)
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
)

// AgeBreakdown is the elapsed time between two dates expressed in several units.
type AgeBreakdown struct {
	// Calendar-aware decomposition: 0 <= Months <= 11, 0 <= Days <= 31.
	Years  int
	Months int
	Days   int

	// TotalMonths is Years*12 + Months. The other totals are each an
	// independent floor of the raw millisecond interval.
	TotalMonths  int64
	TotalWeeks   int64
	TotalDays    int64
	TotalHours   int64
	TotalMinutes int64
	TotalSeconds int64
}

// Calculate validates both dates and returns the breakdown of the interval
// between them. It fails with ErrInvalidDate for an impossible date and with
// ErrInvalidOrdering unless birth is strictly before target; both are wrapped
// in a *DateError naming the offending input.
func Calculate(birth, target CalendarDate) (AgeBreakdown, error) {
	if err := birth.Validate(); err != nil {
		return AgeBreakdown{}, &DateError{Field: config.FieldBirth, Date: birth, Err: err}
	}
	if err := target.Validate(); err != nil {
		return AgeBreakdown{}, &DateError{Field: config.FieldTarget, Date: target, Err: err}
	}
	if !birth.Before(target) {
		return AgeBreakdown{}, &DateError{Field: config.FieldTarget, Date: target, Err: ErrInvalidOrdering}
	}
	return Compute(birth, target), nil
}

// Compute decomposes the interval [birth, target) without validating it.
// Callers must pass two valid dates with birth strictly before target;
// Calculate is the checked entry point.
//
// When target's day-of-month is smaller than birth's, a month is borrowed and
// the days are counted from birth's day-of-month in the month preceding target
// (origin-anchored): Feb 28 to Mar 31 is one month and three days. If birth's
// day does not exist in that preceding month, the borrowed month contributes
// no extra days, so Jan 31 to Mar 1 is one month and one day.
func Compute(birth, target CalendarDate) AgeBreakdown {
	years := target.Year - birth.Year
	months := int(target.Month) - int(birth.Month)
	days := target.Day - birth.Day

	if days < 0 {
		prevYear, prevMonth := target.Year, target.Month-1
		if prevMonth < time.January {
			prevMonth = time.December
			prevYear--
		}
		days = target.Day + max(DaysInMonth(prevYear, prevMonth)-birth.Day, 0)
		months--
	}

	if months < 0 {
		months += 12
		years--
	}

	elapsed := target.UnixMilli() - birth.UnixMilli()

	return AgeBreakdown{
		Years:        years,
		Months:       months,
		Days:         days,
		TotalMonths:  int64(years)*12 + int64(months),
		TotalWeeks:   floorDiv(elapsed, msPerWeek),
		TotalDays:    floorDiv(elapsed, msPerDay),
		TotalHours:   floorDiv(elapsed, msPerHour),
		TotalMinutes: floorDiv(elapsed, msPerMinute),
		TotalSeconds: floorDiv(elapsed, msPerSecond),
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
