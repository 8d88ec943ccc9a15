package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/stagecrew/showboard/internal/domain/schedule"
	pb "github.com/stagecrew/showboard/internal/pb/v1"
)

// fakeService implements the board Service interface for unit testing the transport.
type fakeService struct {
	// sched backs the mutation and snapshot calls.
	sched *domain.Schedule
	// brightness is returned verbatim.
	brightness int
	// lastActor records the actor passed into the most recent mutation.
	lastActor *domain.Actor
}

func newFakeService() *fakeService {
	return &fakeService{
		sched: domain.DemoSchedule("Main Stage"),
	}
}

func (f *fakeService) Snapshot(context.Context) *domain.Snapshot {
	return domain.BuildSnapshot(f.sched, domain.NewTimeOfDay(12, 0, 0))
}

func (f *fakeService) RecordActStart(_ context.Context, actor *domain.Actor, actName string) (*domain.Snapshot, error) {
	return f.mutate(actor, actName, func(act *domain.Act) {
		start := domain.NewTimeOfDay(12, 0, 0)
		act.ActualStart = &start
	})
}

func (f *fakeService) RecordActEnd(_ context.Context, actor *domain.Actor, actName string) (*domain.Snapshot, error) {
	return f.mutate(actor, actName, func(act *domain.Act) {
		end := domain.NewTimeOfDay(13, 0, 0)
		act.ActualEnd = &end
	})
}

func (f *fakeService) ClearActTimes(_ context.Context, actor *domain.Actor, actName string) (*domain.Snapshot, error) {
	return f.mutate(actor, actName, func(act *domain.Act) {
		act.ActualStart = nil
		act.ActualEnd = nil
	})
}

func (f *fakeService) mutate(actor *domain.Actor, actName string, apply func(*domain.Act)) (*domain.Snapshot, error) {
	f.lastActor = actor

	act := f.sched.Act(actName)
	if act == nil {
		return nil, domain.ErrActNotFound
	}

	apply(act)

	return domain.BuildSnapshot(f.sched, domain.NewTimeOfDay(12, 0, 0)), nil
}

func (f *fakeService) Brightness(context.Context) int { return f.brightness }

func (f *fakeService) Subscribe(context.Context) (<-chan *domain.Update, func()) {
	ch := make(chan *domain.Update)
	close(ch)

	return ch, func() {}
}

// TestServer_RecordActStart_Validation ensures invalid requests return InvalidArgument errors.
func TestServer_RecordActStart_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(newFakeService())

	_, err := s.RecordActStart(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.RecordActStart(context.Background(), &pb.ActRequest{ActName: "Desert Echoes"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.RecordActStart(context.Background(), &pb.ActRequest{
		Actor: &pb.SystemActor{Hostname: "foh", Username: "stage-manager"},
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_RecordActStart_UnknownAct maps the domain sentinel onto NotFound.
func TestServer_RecordActStart_UnknownAct(t *testing.T) {
	t.Parallel()

	s := NewServer(newFakeService())

	_, err := s.RecordActStart(context.Background(), &pb.ActRequest{
		Actor:   &pb.SystemActor{Hostname: "foh", Username: "stage-manager"},
		ActName: "No Such Act",
	})
	require.Equal(t, codes.NotFound, status.Code(err))
}

// TestServer_Roundtrip exercises a mutation and a read end-to-end on the server implementation.
func TestServer_Roundtrip(t *testing.T) {
	t.Parallel()

	fake := newFakeService()
	s := NewServer(fake)

	response, err := s.RecordActStart(context.Background(), &pb.ActRequest{
		Actor:   &pb.SystemActor{Hostname: "foh", Username: "stage-manager"},
		ActName: "Desert Echoes",
	})
	require.NoError(t, err)
	require.NotNil(t, response.GetTimestamp())
	require.Equal(t, "Main Stage", response.GetSnapshot().GetStageName())

	require.NotNil(t, fake.lastActor)
	require.Equal(t, "foh", fake.lastActor.Hostname)
	require.Equal(t, "stage-manager", fake.lastActor.Username)

	snapshot, err := s.GetSchedule(context.Background(), new(pb.GetScheduleRequest))
	require.NoError(t, err)
	require.Len(t, snapshot.GetActs(), 8)

	var started *pb.Act
	for _, act := range snapshot.GetActs() {
		if act.GetName() == "Desert Echoes" {
			started = act
		}
	}

	require.NotNil(t, started)
	require.Equal(t, "12:00:00", started.GetActualStart())
	require.Equal(t, string(domain.StatusInProgress), started.GetStatus())
}

// TestServer_GetBrightness returns the service value verbatim.
func TestServer_GetBrightness(t *testing.T) {
	t.Parallel()

	fake := newFakeService()
	fake.brightness = 5500

	s := NewServer(fake)

	update, err := s.GetBrightness(context.Background(), new(pb.GetBrightnessRequest))
	require.NoError(t, err)
	require.Equal(t, int64(5500), update.GetNits())
}
