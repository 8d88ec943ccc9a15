// Package watch implements the showboard-watch binary: a long-running
// terminal view that follows the board over the WatchBoard stream.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/stagecrew/showboard/internal/config"
	"github.com/stagecrew/showboard/internal/logger"
	pb "github.com/stagecrew/showboard/internal/pb/v1"
	"github.com/stagecrew/showboard/internal/render"
	"github.com/stagecrew/showboard/internal/service/common"
)

// Options controls the watch client behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// RetryInterval defines the delay before reopening a broken stream.
	RetryInterval time.Duration
}

// DefaultRetryInterval is the delay before reconnecting a broken stream.
const DefaultRetryInterval = 5 * time.Second

// Run follows the board update stream until the context is canceled,
// reconnecting when the server goes away.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "showboard-watch")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if opts.RetryInterval <= 0 {
		opts.RetryInterval = DefaultRetryInterval
	}

	// Determine server address: command line argument overrides config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Detect current system actor for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return fmt.Errorf("detect actor: %w", err)
	}

	// Establish gRPC connection with timeout from configuration.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	// Ensure connection cleanup on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Watching board", "server_address", serverAddress)

	// Stream loop: each broken stream is reopened after the retry interval.
	for {
		if err := followStream(ctx, client, actor); err != nil {
			logger.ErrorKV(ctx, "Board stream interrupted", "error", err)
		}

		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-time.After(opts.RetryInterval):
		}
	}
}

// followStream opens one WatchBoard stream and renders updates until it breaks.
func followStream(ctx context.Context, client *common.Client, actor *pb.SystemActor) error {
	stream, err := client.WatchBoard(ctx, actor)
	if err != nil {
		return err
	}

	for {
		update, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}

		printUpdate(update)
	}
}

// printUpdate renders one stream element.
func printUpdate(update *pb.BoardUpdate) {
	if update == nil {
		return
	}

	if stamp := update.GetTimestamp(); stamp != nil {
		fmt.Printf("--- %s ---\n", stamp.AsTime().Local().Format(time.TimeOnly))
	}

	if schedule := update.GetSchedule(); schedule != nil {
		fmt.Println(render.Snapshot(schedule))
	}

	if brightness := update.GetBrightness(); brightness != nil {
		fmt.Println(render.Brightness(brightness.GetNits()))
	}
}
