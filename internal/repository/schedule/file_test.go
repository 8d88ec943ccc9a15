package schedule

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/stagecrew/showboard/internal/domain/schedule"
)

func TestFileRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schedule.yaml")
	repo := NewFileRepository(path)
	ctx := context.Background()

	// Missing file reports the sentinel, not a raw filesystem error.
	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	sched := domain.DemoSchedule("Main Stage")
	sched.Acts[0].ActualStart = timePtr(t, 11, 35, 0)
	sched.Acts[0].ActualEnd = timePtr(t, 12, 5, 0)
	sched.Acts[0].Notes = "late soundcheck"

	require.NoError(t, repo.Save(ctx, sched))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sched, loaded)
}

func TestFileRepository_AcceptsShortTimeLayout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schedule.yaml")

	contents := `stage_name: Side Stage
acts:
  - name: Opener
    scheduled_start: "18:00"
    scheduled_end: "18:45"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	loaded, err := NewFileRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Side Stage", loaded.StageName)
	require.Len(t, loaded.Acts, 1)
	require.Equal(t, "18:00:00", loaded.Acts[0].ScheduledStart.String())
}

func TestFileRepository_RejectsBadTimes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schedule.yaml")

	contents := `stage_name: Side Stage
acts:
  - name: Opener
    scheduled_start: "whenever"
    scheduled_end: "18:45"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	_, err := NewFileRepository(path).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "scheduled_start")
}

func timePtr(t *testing.T, hour, minute, second int) *domain.TimeOfDay {
	t.Helper()

	value := domain.NewTimeOfDay(hour, minute, second)

	return &value
}
