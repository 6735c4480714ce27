package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 10, 20, 17, 45, 12, 99, time.Local)
	got := StartOfDay(in)

	assert.Equal(t, Date(2024, 10, 20), got)
	assert.Equal(t, 0, got.Hour())
	assert.True(t, IsSameDay(in, got))
}

func TestAddDaysAndDaysBetween(t *testing.T) {
	start := Date(2024, 10, 1)

	end := AddDays(start, 180)
	assert.Equal(t, "2025-03-30", FormatDate(end))
	assert.Equal(t, 180, DaysBetween(start, end))
	assert.Equal(t, -180, DaysBetween(end, start))
	assert.Equal(t, 0, DaysBetween(start, start.Add(5*time.Hour)))

	// Crosses the end of February in a leap year.
	assert.Equal(t, "2024-03-01", FormatDate(AddDays(Date(2024, 2, 28), 2)))
}

func TestWithin(t *testing.T) {
	start := Date(2024, 10, 1)
	end := Date(2025, 3, 31)

	assert.True(t, Within(start, start, end))
	assert.True(t, Within(end.Add(23*time.Hour), start, end))
	assert.False(t, Within(AddDays(start, -1), start, end))
	assert.False(t, Within(AddDays(end, 1), start, end))
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2024-11-15")
	require.NoError(t, err)
	assert.Equal(t, Date(2024, 11, 15), d)
	assert.Equal(t, "2024-11-15", FormatDate(d))

	_, err = ParseDate("15.11.2024")
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	assert.True(t, IsSameDay(Now(), Today()))
	assert.Equal(t, 0, Today().Hour())
}
