package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stagecrew/showboard/internal/config"
	"github.com/stagecrew/showboard/internal/service/watch"
	"github.com/stagecrew/showboard/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string

	// rootCmd represents the base command for following the board.
	rootCmd = &cobra.Command{
		Use:   "showboard-watch [server-address]",
		Short: "Follow the board and render every update.",
		Long: `Long-running terminal view of the stage board.

Opens a streaming connection to the board server and re-renders the schedule
whenever an act is started, ended or corrected, and prints brightness changes
coming from the lighting console. Reconnects automatically when the server
goes away.
Server address can be provided as argument or loaded from configuration file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use server address argument if provided, otherwise rely on config.
			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			return watch.Run(ctx, &watch.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
			})
		},
	}
)

// Execute runs the showboard-watch CLI and exits with non-zero status on error.
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
}
