// Package operator implements the showboard-ctl commands: reading the board
// and recording act starts, ends and corrections.
package operator

import (
	"context"
	"errors"
	"fmt"

	"github.com/stagecrew/showboard/internal/config"
	"github.com/stagecrew/showboard/internal/logger"
	pb "github.com/stagecrew/showboard/internal/pb/v1"
	"github.com/stagecrew/showboard/internal/render"
	"github.com/stagecrew/showboard/internal/service/common"
)

// Operation selects what the operator command does.
type Operation string

const (
	// OperationShow prints the current board without mutating it.
	OperationShow Operation = "show"
	// OperationStart records the actual start time of an act.
	OperationStart Operation = "start"
	// OperationEnd records the actual end time of an act.
	OperationEnd Operation = "end"
	// OperationClear removes recorded times from an act.
	OperationClear Operation = "clear"
)

// Options configures one operator invocation.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// Operation is the action to perform.
	Operation Operation
	// ActName names the act for mutating operations.
	ActName string
}

// errUnknownOperation is returned for operations this binary does not know.
var errUnknownOperation = errors.New("unknown operation")

// Run executes one operator action against the board server and prints the
// resulting board state.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "showboard-ctl")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Identify current user and hostname for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	// Connect to the board server with timeout from config.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	switch opts.Operation {
	case OperationShow:
		return show(ctx, client, actor)
	case OperationStart:
		return mutate(ctx, actor, opts.ActName, client.RecordActStart)
	case OperationEnd:
		return mutate(ctx, actor, opts.ActName, client.RecordActEnd)
	case OperationClear:
		return mutate(ctx, actor, opts.ActName, client.ClearActTimes)
	default:
		return fmt.Errorf("%w: %q", errUnknownOperation, opts.Operation)
	}
}

// show prints the current schedule and brightness.
func show(ctx context.Context, client *common.Client, actor *pb.SystemActor) error {
	snapshot, err := client.GetSchedule(ctx, actor)
	if err != nil {
		return err
	}

	brightness, err := client.GetBrightness(ctx, actor)
	if err != nil {
		return err
	}

	fmt.Println(render.Snapshot(snapshot))
	fmt.Println(render.Brightness(brightness.GetNits()))

	return nil
}

// mutate runs one act mutation and prints the board it returned.
func mutate(
	ctx context.Context,
	actor *pb.SystemActor,
	actName string,
	call func(ctx context.Context, actor *pb.SystemActor, actName string) (*pb.ActResponse, error),
) error {
	response, err := call(ctx, actor, actName)
	if err != nil {
		return err
	}

	fmt.Println(render.Snapshot(response.GetSnapshot()))

	return nil
}
