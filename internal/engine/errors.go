package engine

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-age/internal/config"
)

var (
	// ErrInvalidDate signals a day/month/year combination that does not exist.
	ErrInvalidDate = errors.New(config.ErrInvalidDate)

	// ErrInvalidOrdering signals that the birth date is not strictly before the target date.
	ErrInvalidOrdering = errors.New(config.ErrInvalidOrdering)
)

// DateError attributes a validation failure to one of the two inputs.
// It unwraps to ErrInvalidDate or ErrInvalidOrdering.
type DateError struct {
	Field string // config.FieldBirth or config.FieldTarget
	Date  CalendarDate
	Err   error
}

func (e *DateError) Error() string {
	// Input that never parsed has no date to show.
	if e.Date == (CalendarDate{}) {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Field, e.Date, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}
