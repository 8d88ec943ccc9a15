package schedule

// Status is the lifecycle state of an act, derived from its actual times.
// Transitions only move forward from pending to in_progress to complete; clearing
// the actual times resets an act to pending.
type Status string

const (
	// StatusPending means the act has not started yet.
	StatusPending Status = "pending"
	// StatusInProgress means the act has started but not ended.
	StatusInProgress Status = "in_progress"
	// StatusComplete means the act has both start and end recorded.
	StatusComplete Status = "complete"
)

// Act represents a single act in the festival running order.
// Records are treated as immutable: updates replace the act with a clone.
type Act struct {
	// Name identifies the act, unique within a schedule.
	Name string
	// ScheduledStart and ScheduledEnd are the published set times.
	// ScheduledEnd is assumed to fall later the same day.
	ScheduledStart TimeOfDay
	ScheduledEnd   TimeOfDay
	// ActualStart is recorded when an operator marks the act as started.
	ActualStart *TimeOfDay
	// ActualEnd is recorded when an operator marks the act as ended.
	ActualEnd *TimeOfDay
	// Notes is free-form stage-crew commentary.
	Notes string
}

// ScheduledDuration is the planned length of the act in seconds.
func (a *Act) ScheduledDuration() int {
	return DiffSeconds(a.ScheduledEnd, a.ScheduledStart)
}

// ActualDuration is the recorded length of the act in seconds.
// It is only known once both actual times are set.
func (a *Act) ActualDuration() (int, bool) {
	if a.ActualStart == nil || a.ActualEnd == nil {
		return 0, false
	}

	return DiffSeconds(*a.ActualEnd, *a.ActualStart), true
}

// StartVariance is actual start minus scheduled start in signed seconds;
// positive means the act started late.
func (a *Act) StartVariance() (int, bool) {
	if a.ActualStart == nil {
		return 0, false
	}

	return DiffSeconds(*a.ActualStart, a.ScheduledStart), true
}

// EndVariance is actual end minus scheduled end in signed seconds;
// positive means the act ended late.
func (a *Act) EndVariance() (int, bool) {
	if a.ActualEnd == nil {
		return 0, false
	}

	return DiffSeconds(*a.ActualEnd, a.ScheduledEnd), true
}

// Status derives the lifecycle state from the presence of actual times.
func (a *Act) Status() Status {
	switch {
	case a.ActualStart == nil:
		return StatusPending
	case a.ActualEnd == nil:
		return StatusInProgress
	default:
		return StatusComplete
	}
}

// Clone returns a deep copy of the act.
func (a *Act) Clone() *Act {
	if a == nil {
		return nil
	}

	cloned := *a
	cloned.ActualStart = cloneTime(a.ActualStart)
	cloned.ActualEnd = cloneTime(a.ActualEnd)

	return &cloned
}

// cloneTime copies an optional time-of-day value.
func cloneTime(t *TimeOfDay) *TimeOfDay {
	if t == nil {
		return nil
	}

	copied := *t

	return &copied
}

// Schedule is the full running order for one stage.
type Schedule struct {
	// StageName is the display name of the stage.
	StageName string
	// Acts is the ordered running order; order is assumed consistent
	// with scheduled start times but never verified.
	Acts []*Act
}

// Clone returns a deep copy of the schedule to avoid leaking internal references.
func (s *Schedule) Clone() *Schedule {
	if s == nil {
		return nil
	}

	acts := make([]*Act, len(s.Acts))
	for i, act := range s.Acts {
		acts[i] = act.Clone()
	}

	return &Schedule{
		StageName: s.StageName,
		Acts:      acts,
	}
}

// Act returns the act with the given name, or nil when no act matches.
func (s *Schedule) Act(name string) *Act {
	for _, act := range s.Acts {
		if act.Name == name {
			return act
		}
	}

	return nil
}
