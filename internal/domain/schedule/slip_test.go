package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// pendingAct builds an act without actual times.
func pendingAct(name string, start, end TimeOfDay) *Act {
	return &Act{
		Name:           name,
		ScheduledStart: start,
		ScheduledEnd:   end,
	}
}

// TestCalculateSlip_EmptyAndPending asserts the zero-signal cases.
func TestCalculateSlip_EmptyAndPending(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, CalculateSlip(nil))
	require.Equal(t, 0, CalculateSlip([]*Act{}))

	allPending := DemoSchedule("Main Stage").Acts
	require.Equal(t, 0, CalculateSlip(allPending))
}

// TestCalculateSlip_CompletedActs covers on-time, early and late finishes.
func TestCalculateSlip_CompletedActs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		end      TimeOfDay
		expected int
	}{
		{"on schedule", NewTimeOfDay(13, 0, 0), 0},
		{"finished early", NewTimeOfDay(12, 50, 0), 0},
		{"ten minutes late", NewTimeOfDay(13, 10, 0), 600},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			act := pendingAct("Headliner", NewTimeOfDay(12, 0, 0), NewTimeOfDay(13, 0, 0))
			act.ActualStart = timePtr(12, 0, 0)
			end := tc.end
			act.ActualEnd = &end

			require.Equal(t, tc.expected, CalculateSlip([]*Act{act}))
		})
	}
}

// TestCalculateSlip_InProgress projects the end from the scheduled duration.
func TestCalculateSlip_InProgress(t *testing.T) {
	t.Parallel()

	// Scheduled 12:00 to 13:00, started 12:10: projected end 13:10, slip 600.
	act := pendingAct("Desert Echoes", NewTimeOfDay(12, 0, 0), NewTimeOfDay(13, 0, 0))
	act.ActualStart = timePtr(12, 10, 0)

	require.Equal(t, 600, CalculateSlip([]*Act{act}))

	// Started early: projected end beats the schedule, floored at zero.
	act.ActualStart = timePtr(11, 50, 0)
	require.Equal(t, 0, CalculateSlip([]*Act{act}))
}

// TestCalculateSlip_LastMatchingActWins pins the documented override behavior:
// a later act's signal replaces earlier lateness outright instead of being
// combined with it.
func TestCalculateSlip_LastMatchingActWins(t *testing.T) {
	t.Parallel()

	first := pendingAct("Opener", NewTimeOfDay(11, 30, 0), NewTimeOfDay(12, 0, 0))
	first.ActualStart = timePtr(11, 30, 0)
	first.ActualEnd = timePtr(12, 20, 0) // 20 minutes late

	second := pendingAct("Middle", NewTimeOfDay(12, 0, 0), NewTimeOfDay(13, 0, 0))
	second.ActualStart = timePtr(12, 20, 0)
	second.ActualEnd = timePtr(12, 55, 0) // recovered, 5 minutes early

	third := pendingAct("Closer", NewTimeOfDay(13, 0, 0), NewTimeOfDay(14, 0, 0))

	// The early finish overrides the earlier 20-minute slip entirely.
	require.Equal(t, 0, CalculateSlip([]*Act{first, second, third}))

	// With the order flipped, the late act is the last signal and wins.
	require.Equal(t, 1200, CalculateSlip([]*Act{second, first, third}))
}

// TestProjectTimes exercises all three statuses including the slip shift.
func TestProjectTimes(t *testing.T) {
	t.Parallel()

	complete := pendingAct("Opener", NewTimeOfDay(11, 30, 0), NewTimeOfDay(12, 0, 0))
	complete.ActualStart = timePtr(11, 35, 0)
	complete.ActualEnd = timePtr(12, 10, 0)

	inProgress := pendingAct("Middle", NewTimeOfDay(12, 0, 0), NewTimeOfDay(13, 0, 0))
	inProgress.ActualStart = timePtr(12, 10, 0)

	pending := pendingAct("Closer", NewTimeOfDay(14, 0, 0), NewTimeOfDay(15, 0, 0))

	projections := ProjectTimes([]*Act{complete, inProgress, pending}, 600)
	require.Len(t, projections, 3)

	// Completed acts report actual times verbatim.
	require.Equal(t, StatusComplete, projections[0].Status)
	require.Equal(t, "11:35:00", projections[0].Start.String())
	require.Equal(t, "12:10:00", projections[0].End.String())

	// In-progress acts keep the actual start and project the scheduled duration.
	require.Equal(t, StatusInProgress, projections[1].Status)
	require.Equal(t, "12:10:00", projections[1].Start.String())
	require.Equal(t, "13:10:00", projections[1].End.String())

	// Pending acts shift later by the slip.
	require.Equal(t, StatusPending, projections[2].Status)
	require.Equal(t, "14:10:00", projections[2].Start.String())
	require.Equal(t, "15:10:00", projections[2].End.String())
}

// TestBreakRemaining covers the unknown, positive and negative cases.
func TestBreakRemaining(t *testing.T) {
	t.Parallel()

	current := pendingAct("Opener", NewTimeOfDay(11, 30, 0), NewTimeOfDay(12, 0, 0))
	next := pendingAct("Closer", NewTimeOfDay(12, 30, 0), NewTimeOfDay(13, 30, 0))

	// Unknown until the current act has ended.
	_, ok := BreakRemaining(current, next, 0, NewTimeOfDay(12, 0, 0))
	require.False(t, ok)

	current.ActualStart = timePtr(11, 30, 0)
	current.ActualEnd = timePtr(12, 0, 0)

	// 30 minutes of break left, plus 10 minutes of slip on the next start.
	remaining, ok := BreakRemaining(current, next, 600, NewTimeOfDay(12, 0, 0))
	require.True(t, ok)
	require.Equal(t, 2400, remaining)

	// Past the projected start: the break is being consumed.
	remaining, ok = BreakRemaining(current, next, 0, NewTimeOfDay(12, 35, 0))
	require.True(t, ok)
	require.Equal(t, -300, remaining)

	_, ok = BreakRemaining(nil, next, 0, NewTimeOfDay(12, 0, 0))
	require.False(t, ok)
}

// TestScheduledDurationMatchesDiff pins the duration identity from the model.
func TestScheduledDurationMatchesDiff(t *testing.T) {
	t.Parallel()

	for _, act := range DemoSchedule("Main Stage").Acts {
		require.Equal(t, DiffSeconds(act.ScheduledEnd, act.ScheduledStart), act.ScheduledDuration())
		require.GreaterOrEqual(t, act.ScheduledDuration(), 0)
	}
}
