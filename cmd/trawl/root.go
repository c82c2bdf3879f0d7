package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/qforic/trawl/internal/logging"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

var (
	verbosity int
	quiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "trawl",
	Short: "Find files under directory trees with composable ignore rules",
	Long: `trawl walks directory trees and reports the files that survive a set of
ignore rules: exact paths, directory prefixes, globs, and regexes.

Results stream to stdout or a file (trawl scan), or are recorded in an
inventory database (trawl index) that later substring queries read
(trawl lookup) without re-walking the tree.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(effectiveVerbosity())
	},
}

func effectiveVerbosity() int {
	if quiet {
		return -1
	}
	return verbosity
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "log errors only")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(scansCmd)
}

// Execute runs the root command with styled help, version, and interrupt
// handling.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
