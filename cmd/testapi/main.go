// If you are AI: This is the main entrypoint for the testapi binary.
// It wires the cobra command tree, configuration loading, and logger setup.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"testapi/internal/config"
	"testapi/internal/logging"
)

// Build information, set with -ldflags "-X main.version=...".
var (
	version   = "1.0.0"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Populated by PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command. Without a subcommand it serves.
var rootCmd = &cobra.Command{
	Use:   "testapi",
	Short: "Fixed-response HTTP service for reachability checks",
	Long: `testapi answers a fixed set of routes (/, /health, /status, /api/v1/health,
/metrics) with HTTP 200, so deployments and monitors can verify that a server is
reachable. The probe subcommand checks those routes on running instances.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

// init registers flags and subcommands.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd, probeCmd, versionCmd)
}

// setup loads and validates configuration, then builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	config.DefaultVersion = version

	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	l, err := logging.New(loaded.Log, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg = loaded
	logger = l
	return nil
}

// main executes the command tree and maps any error to exit code 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
