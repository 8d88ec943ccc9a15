package schedule

import "fmt"

// FormatDuration renders a second count as a compact human-readable string,
// e.g. "1h 5m", "12m", "30s". Negative durations get a leading minus.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		return "-" + FormatDuration(-seconds)
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// FormatVariance renders a signed variance with a +/- prefix, "on time" for
// zero, and an empty string when the variance is not known yet.
func FormatVariance(seconds int, known bool) string {
	switch {
	case !known:
		return ""
	case seconds == 0:
		return "on time"
	case seconds > 0:
		return "+" + FormatDuration(seconds)
	default:
		return FormatDuration(seconds)
	}
}
