package schedule

import (
	"fmt"
	"time"
)

// Festival schedules are same-day by definition; all time-of-day values are
// pinned to a single arbitrary reference date so offset and difference math
// never crosses a date boundary in surprising ways.
func referenceDate() time.Time {
	return time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay is a wall-clock time without a date. The zero value is midnight.
type TimeOfDay struct {
	t time.Time
}

// NewTimeOfDay builds a time-of-day from clock components.
// Out-of-range components wrap via date arithmetic, like time.Date.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return pin(time.Date(2000, time.January, 1, hour, minute, second, 0, time.UTC))
}

// FromTime extracts the time-of-day from a full timestamp, e.g. time.Now().
func FromTime(t time.Time) TimeOfDay {
	return pin(t)
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" strings as used in schedule
// files and on the wire.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return pin(t), nil
		}
	}

	return TimeOfDay{}, fmt.Errorf("invalid time of day %q: want HH:MM or HH:MM:SS", s)
}

// pin normalizes any timestamp onto the reference date, keeping the clock.
func pin(t time.Time) TimeOfDay {
	hour, minute, second := t.Clock()

	return TimeOfDay{referenceDate().Add(
		time.Duration(hour)*time.Hour +
			time.Duration(minute)*time.Minute +
			time.Duration(second)*time.Second,
	)}
}

// AddSeconds returns the time-of-day shifted by the given signed offset.
// The shift wraps through the reference date, so callers get same-day
// arithmetic regardless of sign or magnitude.
func (d TimeOfDay) AddSeconds(seconds int) TimeOfDay {
	return pin(d.t.Add(time.Duration(seconds) * time.Second))
}

// DiffSeconds returns a minus b in signed seconds.
func DiffSeconds(a, b TimeOfDay) int {
	return int(a.t.Sub(b.t) / time.Second)
}

// Clock returns the hour, minute and second components.
func (d TimeOfDay) Clock() (hour, minute, second int) {
	return d.t.Clock()
}

// Equal reports whether two time-of-day values name the same clock time.
func (d TimeOfDay) Equal(other TimeOfDay) bool {
	return d.t.Equal(other.t)
}

// String renders the value as "HH:MM:SS".
func (d TimeOfDay) String() string {
	return d.t.Format("15:04:05")
}
