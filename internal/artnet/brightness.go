package artnet

import (
	"math"
	"sync"
)

// MaxNits is the brightness the display reaches at full channel value.
const MaxNits = 11000

// maxChannelValue is the largest combined 16-bit channel value.
const maxChannelValue = 65535

// Nits maps a combined 16-bit channel value onto the display's brightness
// range, rounding half away from zero.
func Nits(value uint16) int {
	return int(math.Round(float64(value) / maxChannelValue * MaxNits))
}

// Monitor tracks the last brightness seen and reports only changes, so a
// console refreshing the same level at 44 Hz does not flood subscribers.
type Monitor struct {
	mu      sync.Mutex
	last    int
	hasLast bool
}

// Observe converts a channel value to nits and reports whether it differs
// from the previous observation. The first observation always reports true.
func (m *Monitor) Observe(value uint16) (int, bool) {
	nits := Nits(value)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasLast && m.last == nits {
		return nits, false
	}

	m.last = nits
	m.hasLast = true

	return nits, true
}

// Current returns the last observed brightness, zero before any observation.
func (m *Monitor) Current() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.last
}
