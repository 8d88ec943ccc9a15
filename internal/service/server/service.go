package server

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "github.com/stagecrew/showboard/internal/domain/schedule"
	"github.com/stagecrew/showboard/internal/logger"
	repo "github.com/stagecrew/showboard/internal/repository/schedule"
)

// subscriberBuffer is the per-watcher channel depth. Slow watchers lose
// intermediate updates; every schedule update carries the full snapshot, so
// the next one makes them whole.
const subscriberBuffer = 8

// service encapsulates the board business logic: the running order, the
// display brightness, persistence and fan-out to watchers. It is unexported
// to keep the transport decoupled from the implementation.
type service struct {
	// repo handles persistent storage of the schedule.
	repo repo.Repository
	// sched is the current in-memory running order.
	sched *domain.Schedule
	// brightness is the latest display brightness in nits.
	brightness int
	// mu protects sched and brightness.
	mu sync.RWMutex

	// subscribers holds the fan-out channels of active watchers.
	subscribers map[int]chan *domain.Update
	// nextSubID issues subscriber keys.
	nextSubID int
	// subMu protects the subscriber map.
	subMu sync.Mutex

	// now is the wall clock, replaceable in tests.
	now func() time.Time
}

// newService creates a service backed by the provided repository. A missing
// schedule file falls back to the built-in demo running order.
func newService(ctx context.Context, repository repo.Repository, stageName string) (*service, error) {
	s := &service{
		repo:        repository,
		sched:       domain.DemoSchedule(stageName),
		subscribers: make(map[int]chan *domain.Update),
		now:         time.Now,
	}

	if repository == nil {
		return s, nil
	}

	sched, err := repository.Load(ctx)
	switch {
	case err == nil:
		if sched != nil {
			s.sched = sched
		}
	case errors.Is(err, repo.ErrNotFound):
		logger.InfoKV(ctx, "No schedule file yet, starting with demo running order", "stage_name", stageName)
	default:
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	return s, nil
}

// Snapshot returns the current derived board state.
func (s *service) Snapshot(_ context.Context) *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.BuildSnapshot(s.sched, domain.FromTime(s.now()))
}

// RecordActStart stamps the named act with the current wall-clock start time.
func (s *service) RecordActStart(ctx context.Context, actor *domain.Actor, actName string) (*domain.Snapshot, error) {
	return s.mutateAct(ctx, actor, actName, "act started", func(act *domain.Act, now domain.TimeOfDay) {
		act.ActualStart = &now
	})
}

// RecordActEnd stamps the named act with the current wall-clock end time.
func (s *service) RecordActEnd(ctx context.Context, actor *domain.Actor, actName string) (*domain.Snapshot, error) {
	return s.mutateAct(ctx, actor, actName, "act ended", func(act *domain.Act, now domain.TimeOfDay) {
		act.ActualEnd = &now
	})
}

// ClearActTimes removes any recorded actual times from the named act.
func (s *service) ClearActTimes(ctx context.Context, actor *domain.Actor, actName string) (*domain.Snapshot, error) {
	return s.mutateAct(ctx, actor, actName, "act times cleared", func(act *domain.Act, _ domain.TimeOfDay) {
		act.ActualStart = nil
		act.ActualEnd = nil
	})
}

// mutateAct applies a change to the named act under the write lock, persists
// the schedule and broadcasts the new snapshot.
func (s *service) mutateAct(
	ctx context.Context,
	actor *domain.Actor,
	actName string,
	event string,
	apply func(act *domain.Act, now domain.TimeOfDay),
) (*domain.Snapshot, error) {
	timestamp := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	act := s.sched.Act(actName)
	if act == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrActNotFound, actName)
	}

	apply(act, domain.FromTime(timestamp))

	if s.repo != nil {
		if err := s.repo.Save(ctx, s.sched); err != nil {
			logger.Errorf(ctx, "Failed to persist schedule: %v", err)

			return nil, fmt.Errorf("persist schedule: %w", err)
		}
	}

	snapshot := domain.BuildSnapshot(s.sched, domain.FromTime(timestamp))

	logger.InfoKV(ctx, "Schedule updated",
		"event", event,
		"act", actName,
		"slip_seconds", snapshot.Slip,
		"actor", actor)

	s.broadcast(&domain.Update{
		Timestamp: timestamp,
		Snapshot:  snapshot,
	})

	return snapshot, nil
}

// Brightness returns the latest display brightness in nits.
func (s *service) Brightness(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.brightness
}

// SetBrightness stores a new brightness and broadcasts it to watchers. The
// lighting listener only calls this on actual changes.
func (s *service) SetBrightness(ctx context.Context, nits int) {
	s.mu.Lock()
	s.brightness = nits
	s.mu.Unlock()

	logger.DebugKV(ctx, "Brightness updated", "nits", nits)

	s.broadcast(&domain.Update{
		Timestamp:       s.now(),
		Brightness:      nits,
		BrightnessKnown: true,
	})
}

// Subscribe registers a watcher. The returned cancel function must be called
// when the watcher goes away.
func (s *service) Subscribe(_ context.Context) (<-chan *domain.Update, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++

	ch := make(chan *domain.Update, subscriberBuffer)
	s.subscribers[id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()

		if _, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(ch)
		}
	}

	return ch, cancel
}

// broadcast fans an update out to all subscribers without blocking. A full
// watcher channel drops the update rather than stalling the board.
func (s *service) broadcast(update *domain.Update) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- update:
		default:
		}
	}
}
