package notes

import (
	"time"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

// AnalysisResponse is the analysis of one note
type AnalysisResponse struct {
	NoteID      string    `json:"note_id"`
	Fingerprint string    `json:"fingerprint" example:"sha256:9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	Format      string    `json:"format" example:"markdown"`
	Cached      bool      `json:"cached"`
	Degraded    bool      `json:"degraded,omitempty"`
	AnalyzedAt  time.Time `json:"analyzed_at"`
	// Result keeps the camelCase field names of the analysis record
	Result entities.AnalysisResult `json:"result"`
}

// DeletedResponse confirms a deleted analysis
type DeletedResponse struct {
	NoteID  string `json:"note_id"`
	Deleted bool   `json:"deleted"`
}
