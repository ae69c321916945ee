package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/repositories"
)

// AnalysisRepository stores note analyses in Postgres
type AnalysisRepository struct {
	db *gorm.DB
}

var _ repositories.AnalysisRepository = (*AnalysisRepository)(nil)

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// GetByNoteID retrieves the stored analysis of a note
func (r *AnalysisRepository) GetByNoteID(ctx context.Context, noteID uuid.UUID) (*entities.NoteAnalysis, error) {
	var analysis entities.NoteAnalysis
	if err := r.db.WithContext(ctx).Where("note_id = ?", noteID).First(&analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &analysis, nil
}

// Upsert inserts the analysis or overwrites the row of the same note
func (r *AnalysisRepository) Upsert(ctx context.Context, analysis *entities.NoteAnalysis) error {
	if analysis == nil {
		return errors.New("analysis cannot be nil")
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "note_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"fingerprint",
			"format",
			"result",
			"decision_count",
			"action_count",
			"clarification_count",
			"upcoming_count",
			"analyzed_at",
			"updated_at",
		}),
	}).Create(analysis).Error
}

// Delete removes the stored analysis of a note
func (r *AnalysisRepository) Delete(ctx context.Context, noteID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteID).Delete(&entities.NoteAnalysis{}).Error
}
