package artnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNits(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, Nits(0))
	require.Equal(t, MaxNits, Nits(65535))

	// Midpoint rounds to exactly half the range.
	require.Equal(t, 5500, Nits(32768))

	// Monotone non-decreasing over a coarse sweep.
	previous := -1
	for value := 0; value <= 65535; value += 257 {
		nits := Nits(uint16(value))
		require.GreaterOrEqual(t, nits, previous)
		require.LessOrEqual(t, nits, MaxNits)
		previous = nits
	}
}

func TestMonitor_ReportsChangesOnly(t *testing.T) {
	t.Parallel()

	var monitor Monitor

	require.Equal(t, 0, monitor.Current())

	// First observation always counts, even at zero brightness.
	nits, changed := monitor.Observe(0)
	require.True(t, changed)
	require.Equal(t, 0, nits)

	// Repeated frames at the same level are suppressed.
	_, changed = monitor.Observe(0)
	require.False(t, changed)

	nits, changed = monitor.Observe(65535)
	require.True(t, changed)
	require.Equal(t, MaxNits, nits)
	require.Equal(t, MaxNits, monitor.Current())

	// Values mapping to the same nits bucket do not count as changes.
	_, changed = monitor.Observe(65535)
	require.False(t, changed)
}
