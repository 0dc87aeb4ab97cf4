// Package cli assembles the root command for the gwosc CLI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/gwopen/gwosc/internal/commands/shared"
)

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	shared.SetVersion(v, c, b)
}

// NewRootCommand creates the root Cobra command for the gwosc CLI
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gwosc",
		Short: "gwosc - query the gravitational-wave open data archive",
		Long: `gwosc queries the Gravitational Wave Open Science Center archive
for datasets, event metadata, strain-file URLs, and data-quality
segments.

Run 'gwosc datasets list' to see the available datasets.
Run 'gwosc urls H1 <start> <end>' to locate strain files.`,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
	}

	// Get flag pointers from shared package
	host, json, config := shared.RegisterFlagPointers()

	// Add global flags
	cmd.PersistentFlags().StringVar(host, "host", "", "Archive host URL (default: https://www.gw-openscience.org)")
	cmd.PersistentFlags().BoolVar(json, "json", false, "Output in JSON format")
	cmd.PersistentFlags().StringVar(config, "config", "", "Path to config file (default: ~/.config/gwosc/settings.yaml)")

	return cmd
}

// HandleExitError handles exit errors with proper exit codes
func HandleExitError(err error) {
	shared.HandleExitError(err)
}
