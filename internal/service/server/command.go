package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	api "github.com/stagecrew/showboard/internal/api/grpc/board"
	"github.com/stagecrew/showboard/internal/artnet"
	"github.com/stagecrew/showboard/internal/config"
	"github.com/stagecrew/showboard/internal/logger"
	pb "github.com/stagecrew/showboard/internal/pb/v1"
	repository "github.com/stagecrew/showboard/internal/repository/schedule"
)

// Options controls the showboard-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// ScheduleFile specifies the path to the schedule YAML file.
	ScheduleFile string
	// NoArtNet disables the lighting listener regardless of configuration.
	NoArtNet bool
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the gRPC server and the optional Art-Net listener and blocks
// until the context is canceled or the server stops.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "showboard-server")

	// Load configuration first to get server settings.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Use ScheduleFile from config unless overridden by command line option.
	scheduleFile := settings.ScheduleFile
	if opts.ScheduleFile != "" {
		scheduleFile = opts.ScheduleFile
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	// Initialize the schedule repository for persistence.
	repo := repository.NewFileRepository(scheduleFile)

	// Create the board service with schedule management.
	svc, err := newService(ctx, repo, settings.StageName)
	if err != nil {
		return fmt.Errorf("initialise service: %w", err)
	}

	// Start the lighting listener feeding brightness into the board.
	if settings.ArtNet.Enabled && !opts.NoArtNet {
		decoder := artnet.Decoder{
			Universe:    uint16(settings.ArtNet.Universe), //nolint:gosec // Validated against maxUniverse in config.
			ChannelHigh: settings.ArtNet.ChannelHigh,
			ChannelLow:  settings.ArtNet.ChannelLow,
		}

		listener := artnet.NewListener(settings.ArtNet.Port, decoder, func(nits int) {
			svc.SetBrightness(ctx, nits)
		})

		go func() {
			if err := listener.Run(ctx); err != nil {
				logger.ErrorKV(ctx, "Art-Net listener failed", "error", err)
			}
		}()
	}

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	// Create and configure gRPC server with the board service.
	grpcServer := grpc.NewServer()
	pb.RegisterBoardServiceServer(grpcServer, api.NewServer(svc))

	logger.InfoKV(ctx, "Board server listening",
		"listen_address", listenAddress,
		"schedule_file", scheduleFile,
		"stage_name", settings.StageName,
		"artnet_enabled", settings.ArtNet.Enabled && !opts.NoArtNet)

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		return override, nil
	}

	// Extract port from config address (e.g., "board.example.com:8080" -> ":8080").
	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Bind on all interfaces with the configured port.
	return ":" + port, nil
}
