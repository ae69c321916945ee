package presenter

import (
	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/dto/notes"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/analysis"
)

// ToAnalysisResponse converts an analysis view to its response DTO
func ToAnalysisResponse(v *analysis.View) *notes.AnalysisResponse {
	if v == nil {
		return nil
	}

	result := v.Result.Clone()
	result.Normalize()

	return &notes.AnalysisResponse{
		NoteID:      v.NoteID.String(),
		Fingerprint: v.Fingerprint,
		Format:      string(v.Format),
		Cached:      v.Cached,
		Degraded:    v.Degraded,
		AnalyzedAt:  v.AnalyzedAt,
		Result:      result,
	}
}
