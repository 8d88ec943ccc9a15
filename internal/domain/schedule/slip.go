package schedule

// CalculateSlip derives the current schedule slip in seconds, never negative.
//
// The act list is scanned in running order. A completed act contributes its
// end variance; an in-progress act contributes the lateness of its projected
// end, assuming it runs exactly its scheduled duration. Pending acts are
// skipped. The last act that contributes wins outright; slip is not a sum or
// a maximum over the list, so an early finish late in the show resets slip to
// zero no matter how late earlier acts ran. Downstream projections rely on
// this exact behavior.
//
// Early starts and early finishes never drive slip negative.
func CalculateSlip(acts []*Act) int {
	slip := 0

	for _, act := range acts {
		switch act.Status() {
		case StatusComplete:
			variance, _ := act.EndVariance()
			slip = max(0, variance)
		case StatusInProgress:
			projectedEnd := act.ActualStart.AddSeconds(act.ScheduledDuration())
			slip = max(0, DiffSeconds(projectedEnd, act.ScheduledEnd))
		case StatusPending:
			// No signal yet.
		}
	}

	return slip
}

// Projection is the projected timing of one act given the current slip.
type Projection struct {
	// ActName identifies the projected act.
	ActName string
	// Start and End are the projected set times.
	Start TimeOfDay
	End   TimeOfDay
	// Status is the act's lifecycle state at projection time.
	Status Status
}

// ProjectTimes projects start/end times for every act given the current slip.
//
// Completed acts report their actual times verbatim. In-progress acts keep
// their actual start and project the end from the scheduled duration. Pending
// acts are shifted later by the slip; slip is non-negative by construction,
// so pending acts never move earlier than scheduled. Output order matches
// input order.
func ProjectTimes(acts []*Act, slip int) []Projection {
	projections := make([]Projection, 0, len(acts))

	for _, act := range acts {
		switch act.Status() {
		case StatusComplete:
			projections = append(projections, Projection{
				ActName: act.Name,
				Start:   *act.ActualStart,
				End:     *act.ActualEnd,
				Status:  StatusComplete,
			})
		case StatusInProgress:
			projections = append(projections, Projection{
				ActName: act.Name,
				Start:   *act.ActualStart,
				End:     act.ActualStart.AddSeconds(act.ScheduledDuration()),
				Status:  StatusInProgress,
			})
		case StatusPending:
			projections = append(projections, Projection{
				ActName: act.Name,
				Start:   act.ScheduledStart.AddSeconds(slip),
				End:     act.ScheduledEnd.AddSeconds(slip),
				Status:  StatusPending,
			})
		}
	}

	return projections
}

// BreakRemaining computes the remaining changeover time before the next act
// in signed seconds. The result is unknown (false) until the current act has
// an actual end; a negative result means the break is already being eaten
// into because the show is running behind.
func BreakRemaining(current, next *Act, slip int, now TimeOfDay) (int, bool) {
	if current == nil || next == nil || current.ActualEnd == nil {
		return 0, false
	}

	nextProjectedStart := next.ScheduledStart.AddSeconds(slip)

	return DiffSeconds(nextProjectedStart, now), true
}
