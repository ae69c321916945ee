// Package notes extracts decisions, action items, open questions and upcoming
// topics from free-form meeting notes.
//
// The analysis is a fixed, left-to-right pipeline of pure stages:
//
//	Normalize -> Segment -> ParseZone -> Enrich -> Classify -> Dedupe/Limit -> Assemble
//
// Every stage is total and deterministic: identical input always yields an
// identical AnalysisResult, and no stage performs I/O or touches shared state.
// Locale-specific words (headings, verbs, date tokens, connectives) come from a
// Vocabulary, never from code.
package notes

import (
	"errors"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

// ErrMissingRawText is returned when a request carries no notes text at all.
var ErrMissingRawText = errors.New("raw text is required")

// Zone is a labeled region of the notes delimited by heading lines
type Zone string

const (
	ZoneDecisions Zone = "decisions" // "Décisions", "Décisions prises", "Decisions"
	ZoneActions   Zone = "actions"   // "Actions", "Action items", "Actions à réaliser"
	ZoneUpcoming  Zone = "upcoming"  // "À venir", "Prochaines étapes", "Prochaine réunion"
	ZoneQuestions Zone = "questions" // "Questions ouvertes", "Points à clarifier"
	ZoneGeneral   Zone = "general"   // Everything outside a recognized zone
)

// zoneOrder fixes iteration order over Zones so results never depend on map order.
var zoneOrder = []Zone{ZoneDecisions, ZoneActions, ZoneUpcoming, ZoneQuestions, ZoneGeneral}

// Line is one non-empty, trimmed line of normalized text with its position
// in the document's line list.
type Line struct {
	Index int
	Text  string
}

// Zones maps each zone to its lines in document order
type Zones map[Zone][]Line

// Segments is the output of the section segmenter
type Segments struct {
	Zones Zones
	// HeadingsFound is true when at least one decision, action, upcoming or
	// question heading was recognized. When false, General is the fallback
	// bucket and its lines are analysed as decision/action candidates.
	HeadingsFound bool
}

// ContextWindow is the ordered list of neighboring lines that belong to an
// item without being items themselves (continuations, short fragments).
type ContextWindow []string

// ParsedItem is one candidate statement with whatever metadata has been
// recovered so far. Empty metadata means "not found yet"; after enrichment
// every field holds a value or entities.Unspecified.
type ParsedItem struct {
	Text        string
	Raw         string
	Responsible string
	DueDate     string
	Context     string
	Impact      string

	// Zone is where the item currently sits; the classifier may move a
	// decision to ZoneActions.
	Zone   Zone
	Line   int
	Window ContextWindow
}

// Snapshot is the previous successful analysis of the same note, supplied by
// the caller.
type Snapshot struct {
	Fingerprint string
	Result      *entities.AnalysisResult
}

// Request is the input of one analysis run
type Request struct {
	// RawText is required; nil is a validation error, empty string is valid.
	RawText  *string
	Previous *Snapshot
}

// Outcome is the product of one analysis run
type Outcome struct {
	Result      entities.AnalysisResult
	Fingerprint string
	// Cached is true when the previous result was returned unchanged
	// because the normalized text did not change.
	Cached bool
	// Degraded is true when an internal fault was recovered; Result is then
	// the previous result (or an empty one) and must not be persisted.
	Degraded bool
	Fault    string
}

func resolved(v string) bool {
	return v != "" && v != entities.Unspecified
}

func orUnspecified(v string) string {
	if resolved(v) {
		return v
	}
	return entities.Unspecified
}
