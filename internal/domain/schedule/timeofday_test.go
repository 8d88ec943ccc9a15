package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestParseTimeOfDay accepts both schedule-file layouts and rejects garbage.
func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	parsed, err := ParseTimeOfDay("12:30")
	require.NoError(t, err)
	require.Equal(t, "12:30:00", parsed.String())

	parsed, err = ParseTimeOfDay("23:59:59")
	require.NoError(t, err)
	require.Equal(t, "23:59:59", parsed.String())

	_, err = ParseTimeOfDay("not a time")
	require.Error(t, err)

	_, err = ParseTimeOfDay("25:00")
	require.Error(t, err)
}

// TestAddSeconds covers positive, negative and midnight-wrapping offsets.
func TestAddSeconds(t *testing.T) {
	t.Parallel()

	noon := NewTimeOfDay(12, 0, 0)

	require.Equal(t, "12:10:00", noon.AddSeconds(600).String())
	require.Equal(t, "11:50:00", noon.AddSeconds(-600).String())

	// Wraps through the reference date.
	lateNight := NewTimeOfDay(23, 50, 0)
	require.Equal(t, "00:05:00", lateNight.AddSeconds(15*60).String())

	earlyMorning := NewTimeOfDay(0, 5, 0)
	require.Equal(t, "23:50:00", earlyMorning.AddSeconds(-15*60).String())
}

// TestDiffSeconds verifies signed differences in both directions.
func TestDiffSeconds(t *testing.T) {
	t.Parallel()

	a := NewTimeOfDay(13, 0, 0)
	b := NewTimeOfDay(12, 30, 0)

	require.Equal(t, 1800, DiffSeconds(a, b))
	require.Equal(t, -1800, DiffSeconds(b, a))
	require.Equal(t, 0, DiffSeconds(a, a))
}

// TestFromTime strips the date and keeps the clock.
func TestFromTime(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2026, time.August, 31, 18, 45, 12, 500, time.UTC)
	d := FromTime(stamp)

	hour, minute, second := d.Clock()
	require.Equal(t, 18, hour)
	require.Equal(t, 45, minute)
	require.Equal(t, 12, second)

	// Two values from different dates with the same clock are equal.
	require.True(t, d.Equal(NewTimeOfDay(18, 45, 12)))
}
