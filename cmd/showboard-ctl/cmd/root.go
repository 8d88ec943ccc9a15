package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stagecrew/showboard/internal/config"
	"github.com/stagecrew/showboard/internal/service/operator"
	"github.com/stagecrew/showboard/internal/version"
)

var (
	// configPath stores the configuration file path.
	configPath string
	// serverAddress overrides the server address from config.
	serverAddress string

	// rootCmd represents the base command for operating the board.
	rootCmd = &cobra.Command{
		Use:   "showboard-ctl",
		Short: "Operate the stage schedule board.",
		Long: `Command line tool for stage managers to operate the board.

Shows the current running order with slip and projections, and records the
actual start and end times of acts as the show unfolds. Mutations are audited
with the hostname and username of the operator.`,
	}

	// showCmd prints the board without mutating it.
	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the current schedule, slip and brightness.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(operator.OperationShow, "")
		},
	}

	// startCmd records the actual start of an act.
	startCmd = &cobra.Command{
		Use:   "start <act-name>",
		Short: "Record that an act has started now.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(operator.OperationStart, args[0])
		},
	}

	// endCmd records the actual end of an act.
	endCmd = &cobra.Command{
		Use:   "end <act-name>",
		Short: "Record that an act has ended now.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(operator.OperationEnd, args[0])
		},
	}

	// clearCmd removes recorded times from an act.
	clearCmd = &cobra.Command{
		Use:   "clear <act-name>",
		Short: "Remove recorded start and end times from an act.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(operator.OperationClear, args[0])
		},
	}
)

// run executes one operator action with graceful shutdown handling.
func run(operation operator.Operation, actName string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return operator.Run(ctx, &operator.Options{
		ConfigPath:    configPath,
		ServerAddress: serverAddress,
		Operation:     operation,
		ActName:       actName,
	})
}

// Execute runs the showboard-ctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&serverAddress, "server", "a", "", "board server address override")

	rootCmd.AddCommand(showCmd, startCmd, endCmd, clearCmd)
}
