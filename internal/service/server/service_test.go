package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/stagecrew/showboard/internal/domain/schedule"
	repo "github.com/stagecrew/showboard/internal/repository/schedule"
)

// fixedClock pins the service clock so snapshots are deterministic.
func fixedClock(hour, minute, second int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.August, 31, hour, minute, second, 0, time.UTC)
	}
}

func testActor() *domain.Actor {
	return &domain.Actor{Hostname: "foh", Username: "stage-manager"}
}

// TestService_FallsBackToDemoSchedule starts from the built-in running order
// when no schedule file exists.
func TestService_FallsBackToDemoSchedule(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schedule.yaml")

	svc, err := newService(context.Background(), repo.NewFileRepository(path), "Main Stage")
	require.NoError(t, err)

	snapshot := svc.Snapshot(context.Background())
	require.Equal(t, "Main Stage", snapshot.StageName)
	require.Len(t, snapshot.Acts, 8)
	require.Equal(t, 0, snapshot.Slip)
}

// TestService_RecordActTimes stamps start and end and persists the change.
func TestService_RecordActTimes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schedule.yaml")
	repository := repo.NewFileRepository(path)
	ctx := context.Background()

	svc, err := newService(ctx, repository, "Main Stage")
	require.NoError(t, err)

	svc.now = fixedClock(12, 10, 0)

	// Desert Echoes is scheduled 12:00, so a 12:10 start is 10 minutes late.
	snapshot, err := svc.RecordActStart(ctx, testActor(), "Desert Echoes")
	require.NoError(t, err)
	require.Equal(t, 600, snapshot.Slip)

	act := snapshot.Acts[1]
	require.Equal(t, "Desert Echoes", act.Name)
	require.NotNil(t, act.ActualStart)
	require.Equal(t, "12:10:00", act.ActualStart.String())
	require.Equal(t, domain.StatusInProgress, act.Status())

	// The mutation survives a reload from disk.
	persisted, err := repository.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted.Act("Desert Echoes").ActualStart)

	svc.now = fixedClock(13, 45, 0)

	snapshot, err = svc.RecordActEnd(ctx, testActor(), "Desert Echoes")
	require.NoError(t, err)
	require.Equal(t, domain.StatusComplete, snapshot.Acts[1].Status())
	require.Equal(t, 0, snapshot.Slip)
}

// TestService_UnknownAct surfaces the domain sentinel.
func TestService_UnknownAct(t *testing.T) {
	t.Parallel()

	svc, err := newService(context.Background(), nil, "Main Stage")
	require.NoError(t, err)

	_, err = svc.RecordActStart(context.Background(), testActor(), "No Such Act")
	require.ErrorIs(t, err, domain.ErrActNotFound)
}

// TestService_ClearActTimes removes recorded times.
func TestService_ClearActTimes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	svc, err := newService(ctx, nil, "Main Stage")
	require.NoError(t, err)

	svc.now = fixedClock(12, 10, 0)

	_, err = svc.RecordActStart(ctx, testActor(), "Desert Echoes")
	require.NoError(t, err)

	snapshot, err := svc.ClearActTimes(ctx, testActor(), "Desert Echoes")
	require.NoError(t, err)
	require.Nil(t, snapshot.Acts[1].ActualStart)
	require.Nil(t, snapshot.Acts[1].ActualEnd)
	require.Equal(t, 0, snapshot.Slip)
}

// TestService_BroadcastsUpdates fans schedule and brightness changes out to
// subscribers and stops after cancel.
func TestService_BroadcastsUpdates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	svc, err := newService(ctx, nil, "Main Stage")
	require.NoError(t, err)

	svc.now = fixedClock(12, 10, 0)

	updates, cancel := svc.Subscribe(ctx)

	_, err = svc.RecordActStart(ctx, testActor(), "Desert Echoes")
	require.NoError(t, err)

	update := <-updates
	require.NotNil(t, update.Snapshot)
	require.False(t, update.BrightnessKnown)
	require.Equal(t, 600, update.Snapshot.Slip)

	svc.SetBrightness(ctx, 5500)
	require.Equal(t, 5500, svc.Brightness(ctx))

	update = <-updates
	require.Nil(t, update.Snapshot)
	require.True(t, update.BrightnessKnown)
	require.Equal(t, 5500, update.Brightness)

	cancel()

	_, open := <-updates
	require.False(t, open)

	// Broadcasting after cancel must not block or panic.
	svc.SetBrightness(ctx, 0)
}

// TestService_SlowSubscriberDropsUpdates keeps the board responsive when a
// watcher stops draining its channel.
func TestService_SlowSubscriberDropsUpdates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	svc, err := newService(ctx, nil, "Main Stage")
	require.NoError(t, err)

	_, cancel := svc.Subscribe(ctx)
	defer cancel()

	// Overrun the buffered channel; extra updates are dropped silently.
	for i := 0; i < 3*subscriberBuffer; i++ {
		svc.SetBrightness(ctx, i)
	}

	require.Equal(t, 3*subscriberBuffer-1, svc.Brightness(ctx))
}

// TestResolveListenAddress mirrors the config-vs-override precedence.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	address, err := resolveListenAddress("board.example.com:8080", "")
	require.NoError(t, err)
	require.Equal(t, ":8080", address)

	address, err = resolveListenAddress("board.example.com:8080", ":9090")
	require.NoError(t, err)
	require.Equal(t, ":9090", address)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port", "")
	require.Error(t, err)
}
