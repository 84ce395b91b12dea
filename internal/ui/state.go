package ui

import (
	"time"

	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// FormState is everything the main window displays. Event handlers mutate it
// through the methods below and then re-render; the view never reads widgets
// back to decide what to show.
type FormState struct {
	Birth  engine.CalendarDate
	Target engine.CalendarDate

	Result      *engine.AgeBreakdown
	Err         error
	ShowResults bool
}

// NewFormState returns the initial form: birth on May 9, DefaultBirthYearsAgo
// years before today, and today as the target.
func NewFormState(today engine.CalendarDate) *FormState {
	return &FormState{
		Birth:  engine.NewCalendarDate(today.Year-config.DefaultBirthYearsAgo, time.May, config.DefaultBirthDay),
		Target: today,
	}
}

// dateField selects which of the two inputs a transition applies to.
type dateField int

const (
	fieldBirth dateField = iota
	fieldTarget
)

func (s *FormState) date(f dateField) *engine.CalendarDate {
	if f == fieldTarget {
		return &s.Target
	}
	return &s.Birth
}

// SetMonth changes the month, pulling the day back to the last day of the new
// month when it would overflow. The caller re-renders so the clamp is visible.
func (s *FormState) SetMonth(f dateField, month time.Month) {
	if month < time.January || month > time.December {
		return
	}
	d := s.date(f)
	d.Month = month
	if maxDays := engine.DaysInMonth(d.Year, d.Month); d.Day > maxDays {
		d.Day = maxDays
	}
}

// SetDay stores the day as typed. An unparsable entry is stored as 0, so an
// out-of-range day surfaces as ErrInvalidDate from Calculate instead of being
// clamped out of sight.
func (s *FormState) SetDay(f dateField, day int) {
	s.date(f).Day = day
}

// SetYear stores the year as typed, with no clamping: intermediate keystrokes
// such as "2" on the way to "2020" must not alter a Feb 29.
func (s *FormState) SetYear(f dateField, year int) {
	s.date(f).Year = year
}

// Calculate runs the calculator on the current inputs. On failure the
// previous result is hidden and Err holds the typed engine error.
func (s *FormState) Calculate() error {
	res, err := engine.Calculate(s.Birth, s.Target)
	if err != nil {
		s.Err = err
		s.ShowResults = false
		return err
	}
	s.Err = nil
	s.Result = &res
	s.ShowResults = true
	return nil
}

// Reset moves the target back to today and clears the outcome. The birth date is kept.
func (s *FormState) Reset(today engine.CalendarDate) {
	s.Target = today
	s.Result = nil
	s.Err = nil
	s.ShowResults = false
}
