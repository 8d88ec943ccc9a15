package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0s"},
		{30, "30s"},
		{60, "1m"},
		{720, "12m"},
		{3900, "1h 5m"},
		{7200, "2h 0m"},
		{-300, "-5m"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.expected, FormatDuration(tc.seconds), "seconds=%d", tc.seconds)
	}
}

func TestFormatVariance(t *testing.T) {
	t.Parallel()

	require.Empty(t, FormatVariance(0, false))
	require.Equal(t, "on time", FormatVariance(0, true))
	require.Equal(t, "+5m", FormatVariance(300, true))
	require.Equal(t, "-2m", FormatVariance(-120, true))
}
