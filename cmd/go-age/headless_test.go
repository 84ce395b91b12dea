package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

var fixedClock = MockClock{CurrentTime: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}

func TestRunHeadless_Birth(t *testing.T) {
	var out bytes.Buffer
	err := runHeadless(context.Background(), &out, fixedClock, headlessArgs{
		Birth:  "2000-05-09",
		Target: "2023-05-09",
	})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "2000-05-09 -> 2023-05-09")
	assert.Contains(t, got, "23 years, 0 months, 0 days")
	assert.Contains(t, got, "Months:  276")
	assert.Contains(t, got, "Weeks:   1,200")
	assert.Contains(t, got, "Days:    8,400")
	assert.Contains(t, got, "Seconds: 725,760,000")
}

func TestRunHeadless_DefaultTargetIsToday(t *testing.T) {
	var out bytes.Buffer
	err := runHeadless(context.Background(), &out, fixedClock, headlessArgs{Birth: "2025-05-14"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "-> 2025-06-15")
	assert.Contains(t, out.String(), "0 years, 1 month, 1 day")
}

func TestRunHeadless_SingularUnits(t *testing.T) {
	var out bytes.Buffer
	err := runHeadless(context.Background(), &out, fixedClock, headlessArgs{
		Birth:  "2024-05-14",
		Target: "2025-06-15",
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "1 year, 1 month, 1 day\n")
}

func TestRunHeadless_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    headlessArgs
		wantErr error
		field   string
	}{
		{"Invalid birth", headlessArgs{Birth: "2023-02-30"}, engine.ErrInvalidDate, config.FieldBirth},
		{"Invalid target", headlessArgs{Birth: "2000-01-01", Target: "2023-13-01"}, engine.ErrInvalidDate, config.FieldTarget},
		{"Signed unpadded birth", headlessArgs{Birth: "+2023-5-9"}, engine.ErrInvalidDate, config.FieldBirth},
		{"Equal dates", headlessArgs{Birth: "2023-05-09", Target: "2023-05-09"}, engine.ErrInvalidOrdering, config.FieldTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runHeadless(context.Background(), &out, fixedClock, tt.args)

			require.ErrorIs(t, err, tt.wantErr)
			var dateErr *engine.DateError
			require.True(t, errors.As(err, &dateErr))
			assert.Equal(t, tt.field, dateErr.Field)
			assert.Empty(t, out.String(), "no partial output")
		})
	}

	t.Run("Nothing to do", func(t *testing.T) {
		err := runHeadless(context.Background(), &bytes.Buffer{}, fixedClock, headlessArgs{})
		assert.EqualError(t, err, config.ErrBirthRequired)
	})
}

func TestRunHeadless_VCard(t *testing.T) {
	book := `BEGIN:VCARD
VERSION:4.0
FN:Ada
BDAY:1990-06-14
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:Mystery
BDAY:--03-21
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:Future
BDAY:2030-01-01
END:VCARD
`
	path := filepath.Join(t.TempDir(), "book.vcf")
	require.NoError(t, os.WriteFile(path, []byte(book), config.FilePermUserRW))

	var out bytes.Buffer
	err := runHeadless(context.Background(), &out, fixedClock, headlessArgs{VCardPath: path})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Ada (1990-06-14): 35 years, 0 months, 1 day")
	assert.Contains(t, got, "Mystery (--03-21): birth year unknown")
	assert.Contains(t, got, "Future (2030-01-01):")
	assert.Contains(t, got, config.ErrInvalidOrdering)
}

func TestRunHeadless_VCardMissing(t *testing.T) {
	err := runHeadless(context.Background(), &bytes.Buffer{}, fixedClock, headlessArgs{
		VCardPath: filepath.Join(t.TempDir(), "missing.vcf"),
	})
	assert.ErrorContains(t, err, config.ErrVCardOpen)
}
