package engine_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func date(y int, m time.Month, d int) engine.CalendarDate {
	return engine.NewCalendarDate(y, m, d)
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestCalculate_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		birth      engine.CalendarDate
		target     engine.CalendarDate
		wantYears  int
		wantMonths int
		wantDays   int
		wantTotalD int64
	}{
		{
			name:  "Exact anniversary",
			birth: date(2000, time.May, 9), target: date(2023, time.May, 9),
			wantYears: 23, wantMonths: 0, wantDays: 0, wantTotalD: 8400,
		},
		{
			name:  "Month-end origin missing from prior month",
			birth: date(2023, time.January, 31), target: date(2023, time.March, 1),
			wantYears: 0, wantMonths: 1, wantDays: 1, wantTotalD: 29,
		},
		{
			name:  "Leap day anchor into common year",
			birth: date(2020, time.February, 29), target: date(2021, time.February, 28),
			wantYears: 0, wantMonths: 11, wantDays: 30, wantTotalD: 365,
		},
		{
			name:  "Feb 28 to Mar 31 counts from the origin day",
			birth: date(2022, time.February, 28), target: date(2022, time.March, 31),
			wantYears: 0, wantMonths: 1, wantDays: 3, wantTotalD: 31,
		},
		{
			name:  "Borrow across January rolls back to December",
			birth: date(2022, time.November, 20), target: date(2023, time.January, 5),
			wantYears: 0, wantMonths: 1, wantDays: 16, wantTotalD: 46,
		},
		{
			name:  "New year's eve to mid January",
			birth: date(2022, time.December, 31), target: date(2023, time.January, 15),
			wantYears: 0, wantMonths: 0, wantDays: 15, wantTotalD: 15,
		},
		{
			name:  "Single day",
			birth: date(2023, time.June, 1), target: date(2023, time.June, 2),
			wantYears: 0, wantMonths: 0, wantDays: 1, wantTotalD: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Calculate(tt.birth, tt.target)
			require.NoError(t, err)

			assert.Equal(t, tt.wantYears, got.Years, "years")
			assert.Equal(t, tt.wantMonths, got.Months, "months")
			assert.Equal(t, tt.wantDays, got.Days, "days")
			assert.Equal(t, int64(tt.wantYears*12+tt.wantMonths), got.TotalMonths, "total months")
			assert.Equal(t, tt.wantTotalD, got.TotalDays, "total days")
		})
	}
}

func TestCalculate_Totals(t *testing.T) {
	got, err := engine.Calculate(date(2000, time.May, 9), date(2023, time.May, 9))
	require.NoError(t, err)

	assert.Equal(t, int64(276), got.TotalMonths)
	assert.Equal(t, int64(1200), got.TotalWeeks)
	assert.Equal(t, int64(8400), got.TotalDays)
	assert.Equal(t, int64(201600), got.TotalHours)
	assert.Equal(t, int64(12096000), got.TotalMinutes)
	assert.Equal(t, int64(725760000), got.TotalSeconds)
}

func TestCalculate_WeeksAreFloored(t *testing.T) {
	got, err := engine.Calculate(date(2023, time.January, 1), date(2023, time.January, 14))
	require.NoError(t, err)

	assert.Equal(t, int64(13), got.TotalDays)
	assert.Equal(t, int64(1), got.TotalWeeks, "13 days is one full week")
}

func TestCalculate_InvalidOrdering(t *testing.T) {
	tests := []struct {
		name   string
		birth  engine.CalendarDate
		target engine.CalendarDate
	}{
		{"Equal dates", date(2023, time.May, 9), date(2023, time.May, 9)},
		{"Birth after target", date(2024, time.January, 1), date(2023, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Calculate(tt.birth, tt.target)

			assert.ErrorIs(t, err, engine.ErrInvalidOrdering)
			assert.NotErrorIs(t, err, engine.ErrInvalidDate)
			assert.Equal(t, engine.AgeBreakdown{}, got, "no partial result")
		})
	}
}

func TestCalculate_InvalidDate(t *testing.T) {
	t.Run("Birth", func(t *testing.T) {
		_, err := engine.Calculate(date(2023, time.February, 30), date(2024, time.January, 1))
		require.ErrorIs(t, err, engine.ErrInvalidDate)

		var dateErr *engine.DateError
		require.True(t, errors.As(err, &dateErr))
		assert.Equal(t, config.FieldBirth, dateErr.Field)
	})

	t.Run("Target", func(t *testing.T) {
		_, err := engine.Calculate(date(2020, time.January, 1), date(2023, time.April, 31))
		require.ErrorIs(t, err, engine.ErrInvalidDate)

		var dateErr *engine.DateError
		require.True(t, errors.As(err, &dateErr))
		assert.Equal(t, config.FieldTarget, dateErr.Field)
	})

	t.Run("Reported before ordering", func(t *testing.T) {
		// Feb 30 would normalize to Mar 2, after the target. Validation must win.
		_, err := engine.Calculate(date(2023, time.February, 30), date(2023, time.March, 1))
		assert.ErrorIs(t, err, engine.ErrInvalidDate)
		assert.NotErrorIs(t, err, engine.ErrInvalidOrdering)
	})
}

func TestCompute_Idempotent(t *testing.T) {
	birth, target := date(1987, time.August, 31), date(2024, time.February, 29)

	first := engine.Compute(birth, target)
	second := engine.Compute(birth, target)
	assert.Equal(t, first, second)
}

func TestCompute_Monotonic(t *testing.T) {
	birth := date(2019, time.January, 31)
	prev := engine.Compute(birth, date(2019, time.February, 1))

	start := time.Date(2019, time.February, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3*366; i++ {
		target := engine.DateOf(start.AddDate(0, 0, i))
		cur := engine.Compute(birth, target)

		require.Greaterf(t, cur.TotalDays, prev.TotalDays, "total days at %s", target)
		require.Greaterf(t, cur.TotalHours, prev.TotalHours, "total hours at %s", target)
		require.Greaterf(t, cur.TotalMinutes, prev.TotalMinutes, "total minutes at %s", target)
		require.Greaterf(t, cur.TotalSeconds, prev.TotalSeconds, "total seconds at %s", target)
		require.GreaterOrEqual(t, cur.TotalWeeks, prev.TotalWeeks)
		prev = cur
	}
}

func TestCompute_DecompositionBounds(t *testing.T) {
	birth := date(2020, time.February, 29)
	start := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 4*366; i++ {
		target := engine.DateOf(start.AddDate(0, 0, i))
		got := engine.Compute(birth, target)

		require.GreaterOrEqualf(t, got.Years, 0, "years at %s", target)
		require.GreaterOrEqualf(t, got.Months, 0, "months at %s", target)
		require.LessOrEqualf(t, got.Months, 11, "months at %s", target)
		require.GreaterOrEqualf(t, got.Days, 0, "days at %s", target)
		require.LessOrEqualf(t, got.Days, 31, "days at %s", target)
	}
}
