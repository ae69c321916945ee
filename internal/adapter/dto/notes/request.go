package notes

// AnalyzeNoteRequest is the body of POST /v1/notes/:id/analysis.
// raw_text is required but may be empty.
type AnalyzeNoteRequest struct {
	RawText *string `json:"raw_text" validate:"required"`
	Format  string  `json:"format,omitempty" validate:"omitempty,oneof=plain markdown html" example:"markdown"`
}

// AnalyzeStoredNoteRequest is the body of POST /v1/notes/:id/analysis/object
type AnalyzeStoredNoteRequest struct {
	ObjectKey string `json:"object_key" validate:"required" example:"notes/2025-03-01-weekly.md"`
	Format    string `json:"format,omitempty" validate:"omitempty,oneof=plain markdown html" example:"markdown"`
}
