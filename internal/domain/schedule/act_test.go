package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// timePtr is a test helper for optional time-of-day fields.
func timePtr(hour, minute, second int) *TimeOfDay {
	t := NewTimeOfDay(hour, minute, second)

	return &t
}

// TestActDerivedValues checks durations, variances and status derivation.
func TestActDerivedValues(t *testing.T) {
	t.Parallel()

	act := &Act{
		Name:           "Desert Echoes",
		ScheduledStart: NewTimeOfDay(12, 0, 0),
		ScheduledEnd:   NewTimeOfDay(13, 45, 0),
	}

	require.Equal(t, 105*60, act.ScheduledDuration())
	require.Equal(t, StatusPending, act.Status())

	_, known := act.ActualDuration()
	require.False(t, known)

	_, known = act.StartVariance()
	require.False(t, known)

	// Started 5 minutes late.
	act.ActualStart = timePtr(12, 5, 0)
	require.Equal(t, StatusInProgress, act.Status())

	variance, known := act.StartVariance()
	require.True(t, known)
	require.Equal(t, 300, variance)

	// Ended 10 minutes late.
	act.ActualEnd = timePtr(13, 55, 0)
	require.Equal(t, StatusComplete, act.Status())

	variance, known = act.EndVariance()
	require.True(t, known)
	require.Equal(t, 600, variance)

	duration, known := act.ActualDuration()
	require.True(t, known)
	require.Equal(t, 110*60, duration)
}

// TestActClone verifies deep copies so stored acts cannot be mutated through results.
func TestActClone(t *testing.T) {
	t.Parallel()

	require.Nil(t, (*Act)(nil).Clone())

	act := &Act{
		Name:           "Neon Mirage",
		ScheduledStart: NewTimeOfDay(14, 0, 0),
		ScheduledEnd:   NewTimeOfDay(15, 0, 0),
		ActualStart:    timePtr(14, 2, 0),
		Notes:          "pyro cue at the drop",
	}

	cloned := act.Clone()
	require.Equal(t, act, cloned)
	require.NotSame(t, act, cloned)
	require.NotSame(t, act.ActualStart, cloned.ActualStart)
}

// TestScheduleLookupAndClone verifies name lookup and deep schedule copies.
func TestScheduleLookupAndClone(t *testing.T) {
	t.Parallel()

	sched := DemoSchedule("Main Stage")

	require.NotNil(t, sched.Act("Valley Vibes"))
	require.Nil(t, sched.Act("No Such Act"))

	cloned := sched.Clone()
	require.Equal(t, sched, cloned)
	require.NotSame(t, sched.Acts[0], cloned.Acts[0])
}
