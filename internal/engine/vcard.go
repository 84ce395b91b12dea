package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-age/internal/config"
)

// OpenBirthdays reads every contact with a birthday from the vCard file at path.
func OpenBirthdays(ctx context.Context, path string) ([]Contact, error) {
	if path == "" {
		return nil, errors.New(config.ErrLocalPathEmpty)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardOpen, err)
	}
	// Best effort close. Errors in Close() for read-only files are rarely actionable here.
	defer func() { _ = f.Close() }()

	return ReadBirthdays(ctx, f)
}

// ReadBirthdays decodes a vCard stream and returns the contacts carrying a BDAY.
// Malformed cards and unparseable dates are logged and skipped so that one bad
// entry does not hide the rest of the address book.
func ReadBirthdays(ctx context.Context, r io.Reader) ([]Contact, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompVCard)

	decoder := vcard.NewDecoder(r)
	stats := struct{ processed, withBday, noYear int }{}
	var contacts []Contact

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Log error but continue to next card to maximize data recovery
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			continue
		}

		stats.processed++
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birth, yearKnown, err := parseBirthday(bday.Value)
		if err != nil {
			log.Debug(config.MsgSkippedDate, config.LogKeyValue, bday.Value)
			continue
		}
		stats.withBday++
		if !yearKnown {
			stats.noYear++
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}

		contacts = append(contacts, Contact{Name: name, Birth: birth, YearKnown: yearKnown})
	}

	log.Info(config.MsgImportSuccess,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeyNoYear, stats.noYear),
		),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return contacts, nil
}

// parseBirthday handles the vCard BDAY formats seen in the wild.
func parseBirthday(value string) (CalendarDate, bool, error) {
	// Full dates (Year known)
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return DateOf(t), true, nil
		}
	}

	// Truncated dates (Year unknown). The leap year placeholder keeps --02-29 valid.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return CalendarDate{Year: config.DefaultLeapYear, Month: t.Month(), Day: t.Day()}, false, nil
		}
	}

	return CalendarDate{}, false, fmt.Errorf("%s: %q", config.ErrDateParse, value)
}
