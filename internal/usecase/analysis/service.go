package analysis

import (
	"context"
	stdErrors "errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/johnquangdev/meeting-notes-analyzer/errors"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/notes"
	applog "github.com/johnquangdev/meeting-notes-analyzer/pkg/logger"
)

// Service analyses meeting notes and keeps the last result of each note
type Service interface {
	AnalyzeNote(ctx context.Context, noteID uuid.UUID, in AnalyzeInput) (*View, error)
	AnalyzeStoredNote(ctx context.Context, noteID uuid.UUID, objectKey string, format entities.NotesFormat) (*View, error)
	GetAnalysis(ctx context.Context, noteID uuid.UUID) (*View, error)
	DeleteAnalysis(ctx context.Context, noteID uuid.UUID) error
}

// AnalyzeInput is the text of a note as the editor produced it
type AnalyzeInput struct {
	RawText *string
	Format  entities.NotesFormat
}

// View is what callers get back from an analysis
type View struct {
	NoteID      uuid.UUID
	Fingerprint string
	Format      entities.NotesFormat
	// Cached is true when the stored result was reused because the text
	// did not change.
	Cached bool
	// Degraded is true when the pipeline faulted; Result is then the last
	// stored result (or empty) and nothing was persisted.
	Degraded   bool
	AnalyzedAt time.Time
	Result     entities.AnalysisResult
}

// Options tunes persistence and input limits
type Options struct {
	CacheTTL      time.Duration
	MaxInputBytes int
}

type analysisService struct {
	analyzer *notes.Analyzer
	repo     repositories.AnalysisRepository
	cache    repositories.AnalysisCache
	source   repositories.NoteSource
	metrics  *metrics.Metrics
	logger   *zap.Logger
	opts     Options
	group    singleflight.Group
	now      func() time.Time
}

// NewService constructs the analysis service. cache and source may be nil:
// without a cache every lookup goes to the repository, without a source
// AnalyzeStoredNote is unsupported.
func NewService(
	analyzer *notes.Analyzer,
	repo repositories.AnalysisRepository,
	cache repositories.AnalysisCache,
	source repositories.NoteSource,
	m *metrics.Metrics,
	logger *zap.Logger,
	opts Options,
) Service {
	return &analysisService{
		analyzer: analyzer,
		repo:     repo,
		cache:    cache,
		source:   source,
		metrics:  m,
		logger:   applog.OrNop(logger),
		opts:     opts,
		now:      time.Now,
	}
}

// AnalyzeNote runs the pipeline on a note. Identical concurrent requests for
// the same note share one run.
func (s *analysisService) AnalyzeNote(ctx context.Context, noteID uuid.UUID, in AnalyzeInput) (*View, error) {
	if in.RawText == nil {
		s.metrics.ObserveRun(metrics.OutcomeRejected, 0)
		return nil, errors.ErrMissingRawText()
	}
	format := in.Format
	if format == "" {
		format = entities.NotesFormatPlain
	}
	if err := validateFormat(format); err != nil {
		s.metrics.ObserveRun(metrics.OutcomeRejected, 0)
		return nil, err
	}
	if s.opts.MaxInputBytes > 0 && len(*in.RawText) > s.opts.MaxInputBytes {
		s.metrics.ObserveRun(metrics.OutcomeRejected, 0)
		return nil, errors.ErrInvalidArgument("raw_text is too large").
			WithDetail("max_bytes", strconv.Itoa(s.opts.MaxInputBytes))
	}

	text := PlainText(*in.RawText, format)

	key := noteID.String() + "|" + string(format) + "|" + notes.Fingerprint(notes.Normalize(text))
	// The shared run outlives the request that started it: other callers
	// may be waiting on it after that client has gone away.
	runCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		return s.analyze(runCtx, noteID, text, format)
	})
	if err != nil {
		return nil, err
	}
	view := v.(*View)
	if shared {
		view = view.clone()
	}
	return view, nil
}

func (s *analysisService) analyze(ctx context.Context, noteID uuid.UUID, text string, format entities.NotesFormat) (*View, error) {
	prev, fromCache, err := s.previous(ctx, noteID)
	if err != nil {
		s.metrics.ObserveRun(metrics.OutcomeFailed, 0)
		return nil, err
	}

	var snapshot *notes.Snapshot
	if prev != nil {
		result := prev.AnalysisResult()
		snapshot = &notes.Snapshot{Fingerprint: prev.Fingerprint, Result: &result}
	}

	start := s.now()
	outcome, err := s.analyzer.Analyze(notes.Request{RawText: &text, Previous: snapshot})
	elapsed := s.now().Sub(start)
	if err != nil {
		s.metrics.ObserveRun(metrics.OutcomeFailed, elapsed)
		if stdErrors.Is(err, notes.ErrMissingRawText) {
			return nil, errors.ErrMissingRawText()
		}
		return nil, errors.ErrAnalysisFailed(err)
	}

	switch {
	case outcome.Cached:
		s.metrics.ObserveRun(metrics.OutcomeCached, elapsed)
		s.logger.Debug("♻️ analysis reused",
			zap.String("note_id", noteID.String()),
			zap.String("fingerprint", outcome.Fingerprint),
		)
		if !fromCache {
			s.storeInCache(ctx, prev)
		}
		return &View{
			NoteID:      noteID,
			Fingerprint: outcome.Fingerprint,
			Format:      prev.Format,
			Cached:      true,
			AnalyzedAt:  prev.AnalyzedAt,
			Result:      outcome.Result,
		}, nil

	case outcome.Degraded:
		s.metrics.ObserveRun(metrics.OutcomeDegraded, elapsed)
		s.logger.Error("⚠️ analysis degraded, keeping previous result",
			zap.String("note_id", noteID.String()),
			zap.String("fault", outcome.Fault),
		)
		view := &View{
			NoteID:      noteID,
			Fingerprint: outcome.Fingerprint,
			Format:      format,
			Degraded:    true,
			AnalyzedAt:  s.now().UTC(),
			Result:      outcome.Result,
		}
		if prev != nil {
			view.AnalyzedAt = prev.AnalyzedAt
		}
		return view, nil
	}

	record := entities.NewNoteAnalysis(noteID, outcome.Fingerprint, format, outcome.Result)
	record.AnalyzedAt = s.now().UTC()
	if prev != nil {
		record.ID = prev.ID
		record.CreatedAt = prev.CreatedAt
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		s.metrics.ObserveRun(metrics.OutcomeFailed, elapsed)
		return nil, errors.ErrDBQueryFailed("upsert note_analyses", err)
	}
	s.storeInCache(ctx, record)

	s.metrics.ObserveRun(metrics.OutcomeFresh, elapsed)
	s.metrics.ObserveItems(record.DecisionCount, record.ActionCount, record.ClarificationCount, record.UpcomingCount)
	s.logger.Info("📝 notes analysed",
		zap.String("note_id", noteID.String()),
		zap.String("fingerprint", record.Fingerprint),
		zap.Int("decisions", record.DecisionCount),
		zap.Int("actions", record.ActionCount),
		zap.Int("clarification_points", record.ClarificationCount),
		zap.Int("upcoming_points", record.UpcomingCount),
		zap.Duration("elapsed", elapsed),
	)
	return viewOf(record, false), nil
}

// AnalyzeStoredNote reads the note from object storage, then analyses it
func (s *analysisService) AnalyzeStoredNote(ctx context.Context, noteID uuid.UUID, objectKey string, format entities.NotesFormat) (*View, error) {
	if s.source == nil {
		return nil, errors.ErrUnsupported("object storage")
	}
	if objectKey == "" {
		return nil, errors.ErrInvalidArgument("object_key is required")
	}

	text, err := s.source.GetText(ctx, objectKey)
	if err != nil {
		switch {
		case stdErrors.Is(err, repositories.ErrNoteNotFound):
			return nil, errors.ErrNotFound("notes object").WithDetail("object_key", objectKey)
		case stdErrors.Is(err, repositories.ErrNoteTooLarge):
			return nil, errors.ErrInvalidArgument("notes object is too large").WithDetail("object_key", objectKey)
		}
		return nil, errors.ErrStorageFailed("get notes object", err).WithDetail("object_key", objectKey)
	}

	return s.AnalyzeNote(ctx, noteID, AnalyzeInput{RawText: &text, Format: format})
}

// GetAnalysis returns the stored analysis of a note
func (s *analysisService) GetAnalysis(ctx context.Context, noteID uuid.UUID) (*View, error) {
	analysis, _, err := s.previous(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, errors.ErrAnalysisNotFound(noteID.String())
	}
	return viewOf(analysis, false), nil
}

// DeleteAnalysis forgets a note's analysis so the next run starts fresh
func (s *analysisService) DeleteAnalysis(ctx context.Context, noteID uuid.UUID) error {
	if err := s.repo.Delete(ctx, noteID); err != nil {
		return errors.ErrDBQueryFailed("delete note_analyses", err)
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, noteID); err != nil {
			s.metrics.CacheError("delete")
			s.logger.Warn("cache delete failed", zap.String("note_id", noteID.String()), zap.Error(err))
		}
	}
	return nil
}

// previous loads the stored analysis, fast cache first. Cache failures are
// logged and fall through to the repository.
func (s *analysisService) previous(ctx context.Context, noteID uuid.UUID) (*entities.NoteAnalysis, bool, error) {
	if s.cache != nil {
		analysis, ok, err := s.cache.Get(ctx, noteID)
		switch {
		case err != nil:
			s.metrics.CacheError("get")
			s.logger.Warn("cache lookup failed", zap.String("note_id", noteID.String()), zap.Error(err))
		case ok && analysis != nil:
			return analysis, true, nil
		}
	}

	analysis, err := s.repo.GetByNoteID(ctx, noteID)
	if err != nil {
		return nil, false, errors.ErrDBQueryFailed("select note_analyses", err)
	}
	return analysis, false, nil
}

func (s *analysisService) storeInCache(ctx context.Context, analysis *entities.NoteAnalysis) {
	if s.cache == nil || analysis == nil {
		return
	}
	if err := s.cache.Set(ctx, analysis, s.opts.CacheTTL); err != nil {
		s.metrics.CacheError("set")
		s.logger.Warn("cache store failed", zap.String("note_id", analysis.NoteID.String()), zap.Error(err))
	}
}

func validateFormat(format entities.NotesFormat) error {
	switch format {
	case entities.NotesFormatPlain, entities.NotesFormatMarkdown, entities.NotesFormatHTML:
		return nil
	}
	return errors.ErrInvalidArgument("format must be one of plain, markdown, html").
		WithDetail("format", string(format))
}

func viewOf(a *entities.NoteAnalysis, cached bool) *View {
	return &View{
		NoteID:      a.NoteID,
		Fingerprint: a.Fingerprint,
		Format:      a.Format,
		Cached:      cached,
		AnalyzedAt:  a.AnalyzedAt,
		Result:      a.AnalysisResult(),
	}
}

func (v *View) clone() *View {
	c := *v
	c.Result = v.Result.Clone()
	return &c
}
