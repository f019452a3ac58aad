// If you are AI: This file implements the probe command, which checks endpoints on running instances.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"testapi/internal/config"
	"testapi/internal/logging"
	"testapi/internal/probe"
)

// errRequiredFailed reports a failed required endpoint. The report already
// names the failures, so the command silences cobra's error line for it.
var errRequiredFailed = errors.New("one or more required endpoints failed")

var (
	probeTargets     string
	probePort        int
	probeConcurrency int
)

// probeCmd runs the endpoint prober.
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check that endpoints on running instances return their expected status",
	Long: `Loads an endpoint list, resolves target addresses (configured ip_addresses or
auto-detected private IPv4 addresses), and GETs every endpoint on every address.
Exits non-zero when a required endpoint does not return its expected status.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setupProbeLogger,
	RunE:              runProbe,
}

// init registers probe flags.
func init() {
	probeCmd.Flags().StringVarP(&probeTargets, "targets", "t", "configs/endpoints.example.yaml", "Path to endpoint list YAML")
	probeCmd.Flags().IntVarP(&probePort, "port", "p", 0, "Override default_port from the endpoint list")
	probeCmd.Flags().IntVar(&probeConcurrency, "concurrency", probe.DefaultConcurrency, "Maximum probes in flight")
}

// setupProbeLogger builds the logger from defaults only. Probing a remote
// instance does not depend on this process's server configuration or env.
func setupProbeLogger(cmd *cobra.Command, args []string) error {
	l, err := logging.New(config.Default().Log, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

// runProbe loads targets, runs the prober, and prints the report.
func runProbe(cmd *cobra.Command, args []string) error {
	targets, err := probe.LoadTargets(probeTargets)
	if err != nil {
		return err
	}

	addresses := probe.Addresses(targets)
	logger.Info("Probing endpoints",
		zap.Strings("addresses", addresses),
		zap.Int("endpoints", len(targets.Endpoints)),
	)

	prober := probe.New(targets, logger, probe.WithPort(probePort), probe.WithConcurrency(probeConcurrency))
	report, err := prober.Run(cmd.Context(), addresses)
	if err != nil {
		return err
	}

	if err := report.Write(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if report.Failed() {
		cmd.SilenceErrors = true
		return errRequiredFailed
	}
	return nil
}
