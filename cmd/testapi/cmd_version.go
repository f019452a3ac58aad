// If you are AI: This file implements the version command.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints build information. It needs no configuration.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Args:  cobra.NoArgs,
	// Overrides the root hook so a broken config does not block version output.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionString())
	},
}

// versionString formats the build information on one line.
func versionString() string {
	return fmt.Sprintf("testapi %s (commit %s, built %s)", version, commit, buildDate)
}
