package main

import (
	"github.com/entropyio/evm-notes/logger"
	"github.com/entropyio/evm-notes/runtime"
	"github.com/spf13/cobra"
)

var log = logger.NewLogger("[evmnotes]")

// rootCmd prints the notes. It takes no flags; anything on the command
// line is ignored.
var rootCmd = &cobra.Command{
	Use:                "evmnotes",
	Short:              "Print notes on blockchain and Ethereum Virtual Machine concepts",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A printing fault has already been written to stdout; the run
		// still counts as finished.
		if err := runtime.Execute(&runtime.Config{Stdout: cmd.OutOrStdout()}); err != nil {
			log.Debugf("run ended early: %v", err)
		}
		return nil
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%v", err)
	}
}
