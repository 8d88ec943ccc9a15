package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stagecrew/showboard/internal/config"
	"github.com/stagecrew/showboard/internal/service/server"
	"github.com/stagecrew/showboard/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// scheduleFile path where the act schedule is persisted.
	scheduleFile string
	// noArtNet disables the lighting listener.
	noArtNet bool

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "showboard-server [listen-address]",
		Short: "Run the stage board gRPC server.",
		Long: `Starts the gRPC board server that tracks the running order and streams updates.

The server listens on the specified address or uses settings from configuration file.
Only the port from ServerAddress config is used for listening (e.g., :8080).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:8080).
The schedule is persisted to a YAML file for recovery across restarts.

When Art-Net is enabled in the configuration, the server also listens for ArtDMX
frames from the lighting console and derives the board brightness from them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				ScheduleFile:  scheduleFile,
				NoArtNet:      noArtNet,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the showboard-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&scheduleFile, "schedule-file", "s", config.DefaultScheduleFilename, "path to persist the act schedule")
	rootCmd.Flags().BoolVar(&noArtNet, "no-artnet", false, "disable the Art-Net brightness listener")
}
