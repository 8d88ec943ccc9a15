package schedule

// Snapshot is a derived, self-contained view of the board: the act list with
// the slip, projections and remaining break computed from it. It is what the
// server hands to renderers and broadcasts to subscribers.
type Snapshot struct {
	// StageName is the display name of the stage.
	StageName string
	// Acts is a deep copy of the running order at snapshot time.
	Acts []*Act
	// Slip is the current schedule slip in seconds, never negative.
	Slip int
	// Projections holds per-act projected times, in running order.
	Projections []Projection
	// BreakRemaining is the signed remaining changeover time in seconds;
	// only meaningful when HasBreak is true.
	BreakRemaining int
	// HasBreak reports whether a changeover is currently in effect.
	HasBreak bool
}

// BuildSnapshot derives a snapshot from a schedule at the given wall-clock
// time. The changeover shown is the one after the latest act with a recorded
// end, and only while the following act is still pending.
func BuildSnapshot(sched *Schedule, now TimeOfDay) *Snapshot {
	cloned := sched.Clone()
	slip := CalculateSlip(cloned.Acts)

	snapshot := &Snapshot{
		StageName:   cloned.StageName,
		Acts:        cloned.Acts,
		Slip:        slip,
		Projections: ProjectTimes(cloned.Acts, slip),
	}

	current, next := currentBreakPair(cloned.Acts)
	if remaining, ok := BreakRemaining(current, next, slip, now); ok {
		snapshot.BreakRemaining = remaining
		snapshot.HasBreak = true
	}

	return snapshot
}

// currentBreakPair finds the latest act with an actual end and its successor,
// provided the successor has not started yet.
func currentBreakPair(acts []*Act) (current, next *Act) {
	for i := len(acts) - 1; i >= 0; i-- {
		if acts[i].ActualEnd == nil {
			continue
		}

		if i+1 < len(acts) && acts[i+1].Status() == StatusPending {
			return acts[i], acts[i+1]
		}

		return nil, nil
	}

	return nil, nil
}
