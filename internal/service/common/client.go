//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/stagecrew/showboard/internal/config"
	pb "github.com/stagecrew/showboard/internal/pb/v1"
)

// Client wraps the gRPC BoardService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the board server.
	conn *grpc.ClientConn
	// api is the generated BoardService client interface.
	api pb.BoardServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
	// errActNameRequired is returned when a mutation does not name an act.
	errActNameRequired = errors.New("act name must be provided")
)

// Dial establishes a gRPC connection to the board server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial board server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewBoardServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// GetSchedule retrieves the current schedule snapshot.
func (c *Client) GetSchedule(ctx context.Context, actor *pb.SystemActor) (*pb.ScheduleSnapshot, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetSchedule(callCtx, &pb.GetScheduleRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	return resp, nil
}

// RecordActStart stamps the named act with the server's current start time.
func (c *Client) RecordActStart(ctx context.Context, actor *pb.SystemActor, actName string) (*pb.ActResponse, error) {
	if err := validateActArgs(actor, actName); err != nil {
		return nil, err
	}

	return c.mutateAct(ctx, actor, actName, "record act start", c.api.RecordActStart)
}

// RecordActEnd stamps the named act with the server's current end time.
func (c *Client) RecordActEnd(ctx context.Context, actor *pb.SystemActor, actName string) (*pb.ActResponse, error) {
	if err := validateActArgs(actor, actName); err != nil {
		return nil, err
	}

	return c.mutateAct(ctx, actor, actName, "record act end", c.api.RecordActEnd)
}

// ClearActTimes removes any recorded actual times from the named act.
func (c *Client) ClearActTimes(ctx context.Context, actor *pb.SystemActor, actName string) (*pb.ActResponse, error) {
	if err := validateActArgs(actor, actName); err != nil {
		return nil, err
	}

	return c.mutateAct(ctx, actor, actName, "clear act times", c.api.ClearActTimes)
}

// validateActArgs rejects incomplete mutation arguments before touching the wire.
func validateActArgs(actor *pb.SystemActor, actName string) error {
	if actor == nil {
		return errActorRequired
	}

	if actName == "" {
		return errActNameRequired
	}

	return nil
}

// mutateAct issues one of the act mutation RPCs.
func (c *Client) mutateAct(
	ctx context.Context,
	actor *pb.SystemActor,
	actName string,
	operation string,
	call func(ctx context.Context, in *pb.ActRequest, opts ...grpc.CallOption) (*pb.ActResponse, error),
) (*pb.ActResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := call(callCtx, &pb.ActRequest{
		Actor:   actor,
		ActName: actName,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return response, nil
}

// GetBrightness retrieves the current display brightness in nits.
func (c *Client) GetBrightness(ctx context.Context, actor *pb.SystemActor) (*pb.BrightnessUpdate, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetBrightness(callCtx, &pb.GetBrightnessRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("get brightness: %w", err)
	}

	return resp, nil
}

// WatchBoard opens the server-streaming update feed. The stream lives until
// the provided context is canceled; the per-call timeout does not apply.
func (c *Client) WatchBoard(ctx context.Context, actor *pb.SystemActor) (pb.BoardService_WatchBoardClient, error) {
	stream, err := c.api.WatchBoard(ctx, &pb.WatchRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("watch board: %w", err)
	}

	return stream, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
