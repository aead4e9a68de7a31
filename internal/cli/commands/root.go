package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tether",
		Short: "Tether binding generator for game-engine extensions",
		Long: color.CyanString(`Tether - Native Class Binding Generator

Tether compiles annotated class declarations (.tet files) into Go
bindings that register native classes with a game-engine host across
its extension boundary.

Features:
  • Exported properties with editor hints and usage flags
  • Methods, signals and lifecycle overrides
  • Scene node references with optional/required resolution
  • Staged registration across host initialization levels
  • Picker enumerations`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewNewCommand())
	rootCmd.AddCommand(NewGenerateCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewInspectCommand())
	rootCmd.AddCommand(NewWatchCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the Tether version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			goVersion := GoVersion
			if goVersion == "unknown" {
				goVersion = runtime.Version()
			}

			cmd.Printf("tether %s\n", Version)
			cmd.Printf("  commit:     %s\n", GitCommit)
			cmd.Printf("  built:      %s\n", BuildDate)
			cmd.Printf("  go version: %s\n", goVersion)
		},
	}
}
