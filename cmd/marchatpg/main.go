// Command marchatpg is the CLI entry point exposing the module's four
// roles: simulate, synth-greedy, synth-lookahead, and template-sweep.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "marchatpg",
	Short: "ATPG and fault-coverage simulator for memory March tests",
	Long: `marchatpg normalises memory fault catalogues into Test Primitives,
simulates March test patterns against them, and synthesises new March
tests by greedy search, k-step look-ahead, or template enumeration.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(level).With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(simulateCmd, synthGreedyCmd, synthLookaheadCmd, templateSweepCmd)
}

func main() {
	os.Exit(run())
}

// run executes the root command and maps the returned error to one of the
// four exit codes.
func run() int {
	err := rootCmd.Execute()
	return exitCodeFor(err)
}
