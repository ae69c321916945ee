package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/notes"
)

func newFingerprintCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "fingerprint [file]",
		Short: "Print the fingerprint of normalized notes",
		Long: `Print the fingerprint the analyzer uses to detect unchanged notes.
Two inputs share a fingerprint exactly when they normalize to the same text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			text := analysis.PlainText(raw, entities.NotesFormat(format))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), notes.Fingerprint(notes.Normalize(text)))
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", string(entities.NotesFormatPlain), "input format: plain, markdown or html")
	return cmd
}
