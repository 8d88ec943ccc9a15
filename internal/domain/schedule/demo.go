package schedule

// DemoSchedule returns the built-in development running order used when no
// schedule file exists yet. Operators replace it by saving a real schedule.
func DemoSchedule(stageName string) *Schedule {
	demo := []struct {
		name       string
		start, end TimeOfDay
	}{
		{"Sunrise Collective", NewTimeOfDay(11, 30, 0), NewTimeOfDay(12, 0, 0)},
		{"Desert Echoes", NewTimeOfDay(12, 0, 0), NewTimeOfDay(13, 45, 0)},
		{"Neon Mirage", NewTimeOfDay(14, 0, 0), NewTimeOfDay(15, 0, 0)},
		{"Cosmic Wanderers", NewTimeOfDay(15, 15, 0), NewTimeOfDay(16, 15, 0)},
		{"Valley Vibes", NewTimeOfDay(16, 30, 0), NewTimeOfDay(17, 30, 0)},
		{"Mojave Dreams", NewTimeOfDay(18, 0, 0), NewTimeOfDay(19, 15, 0)},
		{"Indio Nights", NewTimeOfDay(19, 45, 0), NewTimeOfDay(21, 0, 0)},
		{"The Headliners", NewTimeOfDay(21, 30, 0), NewTimeOfDay(23, 30, 0)},
	}

	acts := make([]*Act, 0, len(demo))
	for _, entry := range demo {
		acts = append(acts, &Act{
			Name:           entry.name,
			ScheduledStart: entry.start,
			ScheduledEnd:   entry.end,
		})
	}

	return &Schedule{
		StageName: stageName,
		Acts:      acts,
	}
}
