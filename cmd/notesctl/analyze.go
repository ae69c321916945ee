package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/notes"
)

// Report is what analyze prints. It is also accepted back through
// --previous so an unchanged note is reported as cached.
type Report struct {
	Fingerprint string                   `json:"fingerprint"`
	Cached      bool                     `json:"cached"`
	Degraded    bool                     `json:"degraded,omitempty"`
	Fault       string                   `json:"fault,omitempty"`
	Result      *entities.AnalysisResult `json:"result"`
}

type analyzeOptions struct {
	format     string
	vocabulary string
	previous   string
	radius     int
	compact    bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a notes file or stdin",
		Long: `Analyze meeting notes and print the structured result as JSON.

Examples:
  # Analyze a file
  notesctl analyze reunion.md --format markdown

  # Analyze from stdin
  cat notes.txt | notesctl analyze -

  # Skip the work when the notes did not change since the last report
  notesctl analyze notes.txt --previous last.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", string(entities.NotesFormatPlain), "input format: plain, markdown or html")
	cmd.Flags().StringVar(&opts.vocabulary, "vocabulary", "", "YAML vocabulary file extending the built-in lexicon")
	cmd.Flags().StringVar(&opts.previous, "previous", "", "report from an earlier run")
	cmd.Flags().IntVar(&opts.radius, "context-radius", notes.DefaultContextRadius, "lines around an item searched for metadata")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "print JSON on a single line")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *analyzeOptions) error {
	format := entities.NotesFormat(opts.format)
	switch format {
	case entities.NotesFormatPlain, entities.NotesFormatMarkdown, entities.NotesFormatHTML:
	default:
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	vocab, err := notes.LoadVocabulary(opts.vocabulary)
	if err != nil {
		return err
	}
	analyzer, err := notes.New(notes.Config{Vocabulary: &vocab, ContextRadius: opts.radius})
	if err != nil {
		return err
	}

	var previous *notes.Snapshot
	if opts.previous != "" {
		if previous, err = loadSnapshot(opts.previous); err != nil {
			return err
		}
	}

	text := analysis.PlainText(raw, format)
	outcome, err := analyzer.Analyze(notes.Request{RawText: &text, Previous: previous})
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), Report{
		Fingerprint: outcome.Fingerprint,
		Cached:      outcome.Cached,
		Degraded:    outcome.Degraded,
		Fault:       outcome.Fault,
		Result:      &outcome.Result,
	}, opts.compact)
}

func loadSnapshot(path string) (*notes.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read previous report: %w", err)
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse previous report %s: %w", path, err)
	}
	return &notes.Snapshot{Fingerprint: report.Fingerprint, Result: report.Result}, nil
}

// readInput reads the named file, or stdin when no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
