// Package main implements notesctl, a command-line front end to the meeting
// notes pipeline. It runs the analyzer locally and needs no server.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notesctl",
		Short: "Analyze meeting notes from the command line",
		Long: `notesctl extracts decisions, action items, clarification points and
upcoming points from meeting notes without running the API server.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newFingerprintCmd())
	root.AddCommand(newTokenCmd())
	return root
}
