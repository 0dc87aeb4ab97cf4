package main

import (
	"github.com/gwopen/gwosc/internal/cli"
	"github.com/gwopen/gwosc/internal/commands/cachecmd"
	catalogcmd "github.com/gwopen/gwosc/internal/commands/catalog"
	datasetscmd "github.com/gwopen/gwosc/internal/commands/datasets"
	eventcmd "github.com/gwopen/gwosc/internal/commands/event"
	runcmd "github.com/gwopen/gwosc/internal/commands/run"
	timelinecmd "github.com/gwopen/gwosc/internal/commands/timeline"
	urlscmd "github.com/gwopen/gwosc/internal/commands/urls"
	versioncmd "github.com/gwopen/gwosc/internal/commands/version"
)

// Version information (injected via ldflags at build time)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// Set version information from build-time ldflags
	cli.SetVersion(version, commit, buildDate)

	// Create root command and add subcommands
	rootCmd := cli.NewRootCommand()

	// Query commands
	rootCmd.AddCommand(datasetscmd.NewCommand())
	rootCmd.AddCommand(eventcmd.NewCommand())
	rootCmd.AddCommand(runcmd.NewCommand())
	rootCmd.AddCommand(urlscmd.NewCommand())
	rootCmd.AddCommand(timelinecmd.NewCommand())
	rootCmd.AddCommand(catalogcmd.NewCommand())

	// Maintenance commands
	rootCmd.AddCommand(cachecmd.NewCommand())
	rootCmd.AddCommand(versioncmd.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		cli.HandleExitError(err)
	}
}
