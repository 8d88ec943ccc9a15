package schedule

import "time"

// Update is one board change fanned out to watchers. Exactly one of Snapshot
// or BrightnessKnown is set: a schedule mutation carries the full snapshot, a
// lighting change carries the new brightness.
type Update struct {
	// Timestamp records when the change happened.
	Timestamp time.Time
	// Snapshot is the full board state after a schedule mutation, nil for
	// brightness-only updates.
	Snapshot *Snapshot
	// Brightness is the display brightness in nits; only meaningful when
	// BrightnessKnown is true.
	Brightness int
	// BrightnessKnown reports whether this update carries a brightness change.
	BrightnessKnown bool
}
