package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBuildSnapshot_AllPending produces a quiet board with no break row.
func TestBuildSnapshot_AllPending(t *testing.T) {
	t.Parallel()

	sched := DemoSchedule("Main Stage")
	snapshot := BuildSnapshot(sched, NewTimeOfDay(10, 0, 0))

	require.Equal(t, "Main Stage", snapshot.StageName)
	require.Equal(t, 0, snapshot.Slip)
	require.Len(t, snapshot.Projections, len(sched.Acts))
	require.False(t, snapshot.HasBreak)

	// The snapshot owns its act list.
	snapshot.Acts[0].Name = "mutated"
	require.Equal(t, "Sunrise Collective", sched.Acts[0].Name)
}

// TestBuildSnapshot_Changeover verifies break detection against the latest
// ended act and its pending successor.
func TestBuildSnapshot_Changeover(t *testing.T) {
	t.Parallel()

	sched := DemoSchedule("Main Stage")

	// First act ran 10 minutes late end to end.
	sched.Acts[0].ActualStart = timePtr(11, 40, 0)
	sched.Acts[0].ActualEnd = timePtr(12, 10, 0)

	snapshot := BuildSnapshot(sched, NewTimeOfDay(12, 10, 0))

	require.Equal(t, 600, snapshot.Slip)
	require.True(t, snapshot.HasBreak)
	// Next act slides from 12:00 to 12:10, so the break is exactly zero.
	require.Equal(t, 0, snapshot.BreakRemaining)

	// Once the next act starts, the break row disappears.
	sched.Acts[1].ActualStart = timePtr(12, 12, 0)
	snapshot = BuildSnapshot(sched, NewTimeOfDay(12, 15, 0))
	require.False(t, snapshot.HasBreak)
}

// TestBuildSnapshot_LatestEndWins ignores earlier ended acts when a later one
// has also ended.
func TestBuildSnapshot_LatestEndWins(t *testing.T) {
	t.Parallel()

	sched := DemoSchedule("Main Stage")
	sched.Acts[0].ActualStart = timePtr(11, 30, 0)
	sched.Acts[0].ActualEnd = timePtr(12, 0, 0)
	sched.Acts[1].ActualStart = timePtr(12, 0, 0)
	sched.Acts[1].ActualEnd = timePtr(13, 45, 0)

	snapshot := BuildSnapshot(sched, NewTimeOfDay(13, 45, 0))

	require.True(t, snapshot.HasBreak)
	// Break until Neon Mirage at 14:00, no slip.
	require.Equal(t, 15*60, snapshot.BreakRemaining)
}
