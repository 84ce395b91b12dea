package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tartampluch/go-age/internal/catalog"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// headlessArgs are the raw flag values of a run without a window.
type headlessArgs struct {
	Birth     string
	Target    string
	VCardPath string
}

// runHeadless prints the age breakdown for -birth and/or every contact of -vcard.
func runHeadless(ctx context.Context, w io.Writer, clock engine.Clock, args headlessArgs) error {
	if args.Birth == "" && args.VCardPath == "" {
		return errors.New(config.ErrBirthRequired)
	}

	target := engine.Today(clock)
	if args.Target != "" {
		d, err := engine.ParseCalendarDate(args.Target)
		if err != nil {
			return &engine.DateError{Field: config.FieldTarget, Err: err}
		}
		target = d
	}

	cat := catalog.New()

	if args.Birth != "" {
		birth, err := engine.ParseCalendarDate(args.Birth)
		if err != nil {
			return &engine.DateError{Field: config.FieldBirth, Err: err}
		}
		res, err := engine.Calculate(birth, target)
		if err != nil {
			return err
		}
		slog.Debug(config.MsgCalculated,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyBirth, birth.String(),
			config.LogKeyTarget, target.String(),
			config.LogKeyYears, res.Years)
		printBreakdown(w, cat, birth, target, res)
	}

	if args.VCardPath != "" {
		contacts, err := engine.OpenBirthdays(ctx, args.VCardPath)
		if err != nil {
			return err
		}
		printContacts(w, cat, contacts, target)
	}
	return nil
}

func printBreakdown(w io.Writer, cat *catalog.Catalog, birth, target engine.CalendarDate, r engine.AgeBreakdown) {
	p := cat.Printer()
	fmt.Fprintf(w, config.FormatCLIHeader, birth, target)
	p.Fprintf(w, config.FormatCLIPrecise,
		r.Years, cat.Plural(config.TKeyUnitYear, r.Years),
		r.Months, cat.Plural(config.TKeyUnitMonth, r.Months),
		r.Days, cat.Plural(config.TKeyUnitDay, r.Days),
	)
	p.Fprintf(w, config.FormatCLIPrimary, r.TotalMonths, r.TotalWeeks, r.TotalDays)
	p.Fprintf(w, config.FormatCLITimeUnits, r.TotalHours, r.TotalMinutes, r.TotalSeconds)
}

// printContacts prints one line per contact. Contacts without a birth year or
// born after the target date are reported rather than aborting the listing.
func printContacts(w io.Writer, cat *catalog.Catalog, contacts []engine.Contact, target engine.CalendarDate) {
	for _, c := range contacts {
		if !c.YearKnown {
			fmt.Fprintf(w, config.FormatCLINoYear, c.Name, int(c.Birth.Month), c.Birth.Day)
			continue
		}

		r, err := engine.Calculate(c.Birth, target)
		if err != nil {
			slog.Debug(config.MsgCalcRejected,
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyName, c.Name,
				config.LogKeyError, err)
			fmt.Fprintf(w, config.FormatCLISkipped, c.Name, c.Birth, err)
			continue
		}

		cat.Printer().Fprintf(w, config.FormatCLIContact, c.Name, c.Birth.String(),
			r.Years, cat.Plural(config.TKeyUnitYear, r.Years),
			r.Months, cat.Plural(config.TKeyUnitMonth, r.Months),
			r.Days, cat.Plural(config.TKeyUnitDay, r.Days),
		)
	}
}
