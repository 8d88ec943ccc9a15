package board

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/stagecrew/showboard/internal/domain/schedule"
	pb "github.com/stagecrew/showboard/internal/pb/v1"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	Snapshot(ctx context.Context) *domain.Snapshot
	RecordActStart(ctx context.Context, actor *domain.Actor, actName string) (*domain.Snapshot, error)
	RecordActEnd(ctx context.Context, actor *domain.Actor, actName string) (*domain.Snapshot, error)
	ClearActTimes(ctx context.Context, actor *domain.Actor, actName string) (*domain.Snapshot, error)
	Brightness(ctx context.Context) int
	Subscribe(ctx context.Context) (<-chan *domain.Update, func())
}

// Server implements the BoardService gRPC API.
type Server struct {
	pb.UnimplementedBoardServiceServer

	// service provides the business logic for board operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// GetSchedule returns the current schedule snapshot.
func (s *Server) GetSchedule(ctx context.Context, _ *pb.GetScheduleRequest) (*pb.ScheduleSnapshot, error) {
	return toProtoSnapshot(s.service.Snapshot(ctx)), nil
}

// RecordActStart stamps the named act with the current wall-clock start time.
func (s *Server) RecordActStart(ctx context.Context, req *pb.ActRequest) (*pb.ActResponse, error) {
	return s.mutateAct(ctx, req, s.service.RecordActStart)
}

// RecordActEnd stamps the named act with the current wall-clock end time.
func (s *Server) RecordActEnd(ctx context.Context, req *pb.ActRequest) (*pb.ActResponse, error) {
	return s.mutateAct(ctx, req, s.service.RecordActEnd)
}

// ClearActTimes removes any recorded actual times from the named act.
func (s *Server) ClearActTimes(ctx context.Context, req *pb.ActRequest) (*pb.ActResponse, error) {
	return s.mutateAct(ctx, req, s.service.ClearActTimes)
}

// mutateAct validates the request and maps service errors onto gRPC codes.
func (s *Server) mutateAct(
	ctx context.Context,
	req *pb.ActRequest,
	op func(ctx context.Context, actor *domain.Actor, actName string) (*domain.Snapshot, error),
) (*pb.ActResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	if req.GetActName() == "" {
		return nil, status.Error(codes.InvalidArgument, "act name is required")
	}

	snapshot, err := op(ctx, toDomainActor(req.GetActor()), req.GetActName())
	if err != nil {
		if errors.Is(err, domain.ErrActNotFound) {
			return nil, status.Errorf(codes.NotFound, "act %q not found", req.GetActName())
		}

		return nil, status.Error(codes.Internal, "unable to update schedule")
	}

	return &pb.ActResponse{
		Timestamp: timestamppb.Now(),
		Snapshot:  toProtoSnapshot(snapshot),
	}, nil
}

// GetBrightness returns the current display brightness in nits.
func (s *Server) GetBrightness(ctx context.Context, _ *pb.GetBrightnessRequest) (*pb.BrightnessUpdate, error) {
	return &pb.BrightnessUpdate{
		Nits: int64(s.service.Brightness(ctx)),
	}, nil
}

// WatchBoard streams board updates until the client goes away. The first two
// elements are the current snapshot and brightness so a fresh watcher renders
// immediately.
func (s *Server) WatchBoard(req *pb.WatchRequest, stream pb.BoardService_WatchBoardServer) error {
	if req == nil {
		return status.Error(codes.InvalidArgument, "request is required")
	}

	ctx := stream.Context()

	updates, cancel := s.service.Subscribe(ctx)
	defer cancel()

	initial := []*pb.BoardUpdate{
		{
			Timestamp: timestamppb.Now(),
			Schedule:  toProtoSnapshot(s.service.Snapshot(ctx)),
		},
		{
			Timestamp:  timestamppb.Now(),
			Brightness: &pb.BrightnessUpdate{Nits: int64(s.service.Brightness(ctx))},
		},
	}

	for _, update := range initial {
		if err := stream.Send(update); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			if err := stream.Send(toProtoUpdate(update)); err != nil {
				return err
			}
		}
	}
}

// toDomainActor converts a protobuf SystemActor to a domain Actor.
func toDomainActor(actor *pb.SystemActor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

// toProtoSnapshot converts a domain snapshot into its wire representation.
func toProtoSnapshot(snapshot *domain.Snapshot) *pb.ScheduleSnapshot {
	if snapshot == nil {
		return &pb.ScheduleSnapshot{}
	}

	acts := make([]*pb.Act, 0, len(snapshot.Acts))
	for _, act := range snapshot.Acts {
		acts = append(acts, toProtoAct(act))
	}

	projections := make([]*pb.ActProjection, 0, len(snapshot.Projections))
	for _, projection := range snapshot.Projections {
		projections = append(projections, &pb.ActProjection{
			ActName:        projection.ActName,
			ProjectedStart: projection.Start.String(),
			ProjectedEnd:   projection.End.String(),
			Status:         string(projection.Status),
		})
	}

	return &pb.ScheduleSnapshot{
		StageName:             snapshot.StageName,
		SlipSeconds:           int64(snapshot.Slip),
		Acts:                  acts,
		Projections:           projections,
		HasBreak:              snapshot.HasBreak,
		BreakRemainingSeconds: int64(snapshot.BreakRemaining),
	}
}

// toProtoAct converts a domain act into its wire representation. Absent
// actual times become empty strings.
func toProtoAct(act *domain.Act) *pb.Act {
	result := &pb.Act{
		Name:           act.Name,
		ScheduledStart: act.ScheduledStart.String(),
		ScheduledEnd:   act.ScheduledEnd.String(),
		Notes:          act.Notes,
		Status:         string(act.Status()),
	}

	if act.ActualStart != nil {
		result.ActualStart = act.ActualStart.String()
	}

	if act.ActualEnd != nil {
		result.ActualEnd = act.ActualEnd.String()
	}

	return result
}

// toProtoUpdate converts a fan-out update into a stream element.
func toProtoUpdate(update *domain.Update) *pb.BoardUpdate {
	result := &pb.BoardUpdate{
		Timestamp: timestamppb.New(update.Timestamp),
	}

	if update.Snapshot != nil {
		result.Schedule = toProtoSnapshot(update.Snapshot)
	}

	if update.BrightnessKnown {
		result.Brightness = &pb.BrightnessUpdate{Nits: int64(update.Brightness)}
	}

	return result
}
