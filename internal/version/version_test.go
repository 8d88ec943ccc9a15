package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestShortAndFull verifies version strings contain the expected build metadata.
func TestShortAndFull(t *testing.T) {
	t.Parallel()

	require.Equal(t, Version, Short())

	full := Full()
	require.Contains(t, full, "version: "+Version)
	require.Contains(t, full, "commit: "+Commit)
	require.Contains(t, full, "built at: "+BuildTime)
}
