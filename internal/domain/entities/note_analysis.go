package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotesFormat describes how the raw notes were authored
type NotesFormat string

const (
	NotesFormatPlain    NotesFormat = "plain"    // Plain text, analysed as-is
	NotesFormatMarkdown NotesFormat = "markdown" // Markdown, bullets and headings kept as text
	NotesFormatHTML     NotesFormat = "html"     // Rich-text editor output, converted to plain text first
)

// NoteAnalysis is the last successful analysis of a note together with the
// fingerprint of the normalized text it was computed from.
type NoteAnalysis struct {
	ID          uuid.UUID                         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	NoteID      uuid.UUID                         `json:"note_id" gorm:"type:uuid;not null;uniqueIndex"`
	Fingerprint string                            `json:"fingerprint" gorm:"type:varchar(80);not null"`
	Format      NotesFormat                       `json:"format" gorm:"type:varchar(20);not null;default:'plain'"`
	Result      datatypes.JSONType[AnalysisResult] `json:"result" gorm:"type:jsonb;not null"`

	// Denormalized counts for listing without decoding the result
	DecisionCount      int `json:"decision_count" gorm:"type:integer;default:0"`
	ActionCount        int `json:"action_count" gorm:"type:integer;default:0"`
	ClarificationCount int `json:"clarification_count" gorm:"type:integer;default:0"`
	UpcomingCount      int `json:"upcoming_count" gorm:"type:integer;default:0"`

	AnalyzedAt time.Time `json:"analyzed_at" gorm:"type:timestamp;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for NoteAnalysis
func (NoteAnalysis) TableName() string {
	return "note_analyses"
}

// NewNoteAnalysis creates a NoteAnalysis for a freshly computed result
func NewNoteAnalysis(noteID uuid.UUID, fingerprint string, format NotesFormat, result AnalysisResult) *NoteAnalysis {
	result.Normalize()
	return &NoteAnalysis{
		ID:                 uuid.New(),
		NoteID:             noteID,
		Fingerprint:        fingerprint,
		Format:             format,
		Result:             datatypes.NewJSONType(result),
		DecisionCount:      len(result.Decisions),
		ActionCount:        len(result.Actions),
		ClarificationCount: len(result.ClarificationPoints),
		UpcomingCount:      len(result.UpcomingPoints),
		AnalyzedAt:         time.Now().UTC(),
	}
}

// AnalysisResult returns the decoded result with non-nil categories
func (a *NoteAnalysis) AnalysisResult() AnalysisResult {
	result := a.Result.Data()
	result.Normalize()
	return result
}
