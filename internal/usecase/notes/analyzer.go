package notes

import (
	"fmt"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

// DefaultContextRadius is how many document lines around an item its
// context window may reach.
const DefaultContextRadius = 2

// Config configures an Analyzer
type Config struct {
	// Vocabulary defaults to DefaultVocabulary() when nil.
	Vocabulary *Vocabulary
	// ContextRadius defaults to DefaultContextRadius when zero or negative.
	ContextRadius int
}

// Analyzer runs the notes pipeline. It holds only the compiled vocabulary,
// never per-run state, so one Analyzer may serve concurrent calls.
type Analyzer struct {
	lex    *lexicon
	radius int
}

// New compiles the vocabulary and returns a ready Analyzer
func New(cfg Config) (*Analyzer, error) {
	vocab := DefaultVocabulary()
	if cfg.Vocabulary != nil {
		vocab = *cfg.Vocabulary
	}
	lex, err := compileLexicon(vocab)
	if err != nil {
		return nil, err
	}
	radius := cfg.ContextRadius
	if radius <= 0 {
		radius = DefaultContextRadius
	}
	return &Analyzer{lex: lex, radius: radius}, nil
}

// MustNew is New that panics on error
func MustNew(cfg Config) *Analyzer {
	a, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return a
}

// Default returns an Analyzer using the built-in vocabulary
func Default() *Analyzer {
	return MustNew(Config{})
}

// Analyze runs one analysis. A nil RawText is rejected with
// ErrMissingRawText before anything else happens. When the fingerprint of
// the normalized text equals Previous.Fingerprint and a previous result
// exists, that result is returned unchanged with Cached set and no
// extraction runs. A fault inside the pipeline is recovered: the previous
// result, or an empty one, is returned with Degraded set.
func (a *Analyzer) Analyze(req Request) (out Outcome, err error) {
	if req.RawText == nil {
		return Outcome{}, ErrMissingRawText
	}

	normalized := Normalize(*req.RawText)
	fingerprint := Fingerprint(normalized)

	if prev := req.Previous; prev != nil && prev.Result != nil && prev.Fingerprint == fingerprint {
		result := prev.Result.Clone()
		return Outcome{Result: result, Fingerprint: fingerprint, Cached: true}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			out = Outcome{
				Result:      fallbackResult(req.Previous),
				Fingerprint: fingerprint,
				Degraded:    true,
				Fault:       fmt.Sprint(r),
			}
			err = nil
		}
	}()

	return Outcome{Result: a.Run(normalized), Fingerprint: fingerprint}, nil
}

// Run executes stages 2 to 7 on already normalized text.
func (a *Analyzer) Run(normalized string) entities.AnalysisResult {
	seg := a.Segment(normalized)

	var items []ParsedItem
	for _, zone := range zoneOrder {
		items = append(items, a.ParseZone(zone, seg.Zones[zone])...)
	}
	items = a.resolveGeneral(items, seg.HeadingsFound)
	sortByLine(items)

	items = a.Enrich(items)
	items = a.Classify(items)
	items = Dedupe(items)
	return Assemble(items)
}

func fallbackResult(prev *Snapshot) entities.AnalysisResult {
	if prev != nil && prev.Result != nil {
		return prev.Result.Clone()
	}
	return entities.NewAnalysisResult()
}
