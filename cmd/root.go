package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// This is set by Execute from the version baked into main
var version string

var verbose bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tinytest",
	Short: "Runs fail-fast unit test suites",
	Long: `tinytest runs named suites of test functions in order, stops a suite at
its first failing assertion and reports where that assertion is.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr(), verbose)
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute(v string) {
	version = v
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log each test invocation to stderr")
}
