package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "imagine-sim",
		Short: "Drive the behavior analyzer without a browser",
		Long: `imagine-sim replays scripted hover sessions through the behavior analyzer
and prints the insight feed, or tails the analytics stream of a running server.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newTailCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
