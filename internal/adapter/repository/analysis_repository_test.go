package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

// dryRunDB builds statements without ever dialing Postgres and records the
// last generated SQL.
func dryRunDB(t *testing.T) (*gorm.DB, *string) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	var captured string
	capture := func(tx *gorm.DB) { captured = tx.Statement.SQL.String() }
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	return db, &captured
}

func TestAnalysisRepositoryUpsertTargetsNoteID(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewAnalysisRepository(db)

	analysis := entities.NewNoteAnalysis(uuid.New(), "sha256:abc", entities.NotesFormatPlain, entities.NewAnalysisResult())
	require.NoError(t, repo.Upsert(context.Background(), analysis))

	assert.Contains(t, *captured, `INSERT INTO "note_analyses"`)
	assert.Contains(t, *captured, `ON CONFLICT ("note_id") DO UPDATE SET`)
	assert.Contains(t, *captured, `"fingerprint"="excluded"."fingerprint"`)
	assert.Contains(t, *captured, `"result"="excluded"."result"`)
}

func TestAnalysisRepositoryUpsertRejectsNil(t *testing.T) {
	db, _ := dryRunDB(t)
	assert.Error(t, NewAnalysisRepository(db).Upsert(context.Background(), nil))
}

func TestAnalysisRepositoryGetByNoteIDQuery(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewAnalysisRepository(db)

	_, _ = repo.GetByNoteID(context.Background(), uuid.New())

	assert.Contains(t, *captured, `SELECT * FROM "note_analyses" WHERE note_id = $1`)
}
