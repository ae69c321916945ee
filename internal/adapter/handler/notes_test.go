package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes-analyzer/errors"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/notes"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-notes-analyzer/pkg/validator"
)

// memoryRepo backs the handler tests with the in-memory cache, which already
// satisfies the lookup semantics of the repository port.
type memoryRepo struct{ store *cache.MemoryStore }

func (r memoryRepo) GetByNoteID(ctx context.Context, id uuid.UUID) (*entities.NoteAnalysis, error) {
	a, _, err := r.store.Get(ctx, id)
	return a, err
}

func (r memoryRepo) Upsert(ctx context.Context, a *entities.NoteAnalysis) error {
	return r.store.Set(ctx, a, 0)
}

func (r memoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}

var _ repositories.AnalysisRepository = memoryRepo{}

type envelope struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
	Data    struct {
		NoteID      string                  `json:"note_id"`
		Fingerprint string                  `json:"fingerprint"`
		Cached      bool                    `json:"cached"`
		Result      entities.AnalysisResult `json:"result"`
	} `json:"data"`
	Details map[string]string `json:"details"`
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	store := cache.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	svc := analysis.NewService(notes.Default(), memoryRepo{store: store}, nil, nil, nil, nil, analysis.Options{MaxInputBytes: 1 << 16})

	e := echo.New()
	e.Validator = pkgvalidator.New()
	cfg := &config.Config{Server: config.ServerConfig{Environment: "test"}}
	NewRouter(cfg, NewNotesHandler(svc, nil), nil).Setup(e)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func TestAnalyzeEndpoint(t *testing.T) {
	e := newTestServer(t)
	noteID := uuid.New().String()
	path := "/v1/notes/" + noteID + "/analysis"
	body := `{"raw_text":"Décisions prises\nValider le budget Q3\nActions\n- Jean doit envoyer le devis avant vendredi","format":"markdown"}`

	rec, env := do(t, e, http.MethodPost, path, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "success", env.Message)
	assert.Equal(t, noteID, env.Data.NoteID)
	assert.False(t, env.Data.Cached)
	require.Len(t, env.Data.Result.Actions, 2)
	assert.Equal(t, "Valider le budget Q3", env.Data.Result.Actions[0].Action)
	assert.Equal(t, "Jean", env.Data.Result.Actions[1].Responsible)
	assert.NotNil(t, env.Data.Result.Decisions)

	rec, env = do(t, e, http.MethodPost, path, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Data.Cached)

	rec, env = do(t, e, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env.Data.Result.Actions, 2)

	rec, _ = do(t, e, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, e, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `"ANALYSIS_NOT_FOUND"`, string(env.Code))
	assert.Equal(t, noteID, env.Details["note_id"])
}

func TestAnalyzeEndpointEmptyText(t *testing.T) {
	e := newTestServer(t)

	rec, env := do(t, e, http.MethodPost, "/v1/notes/"+uuid.NewString()+"/analysis", `{"raw_text":""}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, env.Data.Result.IsEmpty())
	assert.Contains(t, rec.Body.String(), `"decisions":[]`)
}

func TestAnalyzeEndpointErrors(t *testing.T) {
	e := newTestServer(t)
	valid := "/v1/notes/" + uuid.NewString() + "/analysis"

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   errors.ErrorCode
	}{
		{"missing raw_text", http.MethodPost, valid, `{"format":"plain"}`, http.StatusBadRequest, errors.ErrorCode_ANALYSIS_MISSING_TEXT},
		{"null raw_text", http.MethodPost, valid, `{"raw_text":null}`, http.StatusBadRequest, errors.ErrorCode_ANALYSIS_MISSING_TEXT},
		{"bad format", http.MethodPost, valid, `{"raw_text":"x","format":"pdf"}`, http.StatusBadRequest, errors.ErrorCode_INVALID_ARGUMENT},
		{"malformed json", http.MethodPost, valid, `{"raw_text":`, http.StatusBadRequest, errors.ErrorCode_INVALID_PAYLOAD},
		{"invalid note id", http.MethodPost, "/v1/notes/abc/analysis", `{"raw_text":"x"}`, http.StatusBadRequest, errors.ErrorCode_INVALID_ARGUMENT},
		{"storage not configured", http.MethodPost, valid + "/object", `{"object_key":"notes/a.md"}`, http.StatusNotImplemented, errors.ErrorCode_ANALYSIS_UNSUPPORTED},
		{"missing object key", http.MethodPost, valid + "/object", `{}`, http.StatusBadRequest, errors.ErrorCode_INVALID_ARGUMENT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, e, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.JSONEq(t, `"`+tt.code.String()+`"`, string(env.Code))
		})
	}
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","environment":"test","version":"1.0.0"}`, rec.Body.String())
}

func TestHandleErrorHidesServerCauses(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HandleError(nil, c, errors.ErrDBQueryFailed("select", assert.AnError))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	require.NoError(t, HandleError(nil, c, assert.AnError))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INTERNAL"`)
}
