package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-analyzer/errors"
	notesdto "github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/dto/notes"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/analysis"
	pkgvalidator "github.com/johnquangdev/meeting-notes-analyzer/pkg/validator"
)

// Notes handles the meeting notes analysis endpoints
type Notes struct {
	svc    analysis.Service
	logger *zap.Logger
}

// NewNotesHandler creates a new notes handler
func NewNotesHandler(svc analysis.Service, logger *zap.Logger) *Notes {
	return &Notes{svc: svc, logger: logger}
}

// Analyze runs the analysis on the text sent in the body
// @Summary      Analyze meeting notes
// @Description  Extracts decisions, action items, clarification points and upcoming points from the notes text. When the normalized text did not change since the last analysis of the note, the stored result is returned with cached=true.
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                        true  "Note ID (UUID)"
// @Param        request  body      notesdto.AnalyzeNoteRequest   true  "Notes text"
// @Success      200      {object}  common.SuccessResponse{data=notesdto.AnalysisResponse}
// @Failure      400      {object}  common.ErrorResponse  "Missing raw_text, bad format or invalid note ID"
// @Failure      401      {object}  common.ErrorResponse  "Missing or invalid token"
// @Failure      500      {object}  common.ErrorResponse  "Persistence failure"
// @Router       /notes/{id}/analysis [post]
func (h *Notes) Analyze(c echo.Context) error {
	noteID, err := parseNoteID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req notesdto.AnalyzeNoteRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	// A missing raw_text has its own code so clients can tell it from a malformed body
	if req.RawText == nil {
		return HandleError(h.logger, c, errors.ErrMissingRawText())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(pkgvalidator.Describe(err)))
	}

	view, err := h.svc.AnalyzeNote(c.Request().Context(), noteID, analysis.AnalyzeInput{
		RawText: req.RawText,
		Format:  entities.NotesFormat(req.Format),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAnalysisResponse(view))
}

// AnalyzeObject runs the analysis on a notes document from object storage
// @Summary      Analyze stored meeting notes
// @Description  Reads the notes document from object storage and analyzes it like POST /notes/{id}/analysis.
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                             true  "Note ID (UUID)"
// @Param        request  body      notesdto.AnalyzeStoredNoteRequest  true  "Object key"
// @Success      200      {object}  common.SuccessResponse{data=notesdto.AnalysisResponse}
// @Failure      400      {object}  common.ErrorResponse  "Missing object_key or bad format"
// @Failure      404      {object}  common.ErrorResponse  "Object not found"
// @Failure      501      {object}  common.ErrorResponse  "Object storage not configured"
// @Failure      502      {object}  common.ErrorResponse  "Object storage failure"
// @Router       /notes/{id}/analysis/object [post]
func (h *Notes) AnalyzeObject(c echo.Context) error {
	noteID, err := parseNoteID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req notesdto.AnalyzeStoredNoteRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(pkgvalidator.Describe(err)))
	}

	view, err := h.svc.AnalyzeStoredNote(c.Request().Context(), noteID, req.ObjectKey, entities.NotesFormat(req.Format))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAnalysisResponse(view))
}

// Get returns the stored analysis of a note
// @Summary      Get note analysis
// @Description  Returns the last successful analysis of the note.
// @Tags         Notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note ID (UUID)"
// @Success      200  {object}  common.SuccessResponse{data=notesdto.AnalysisResponse}
// @Failure      400  {object}  common.ErrorResponse  "Invalid note ID"
// @Failure      404  {object}  common.ErrorResponse  "Note never analyzed"
// @Router       /notes/{id}/analysis [get]
func (h *Notes) Get(c echo.Context) error {
	noteID, err := parseNoteID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	view, err := h.svc.GetAnalysis(c.Request().Context(), noteID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAnalysisResponse(view))
}

// Delete forgets the stored analysis of a note
// @Summary      Delete note analysis
// @Description  Removes the stored analysis so the next request runs a fresh analysis.
// @Tags         Notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note ID (UUID)"
// @Success      200  {object}  common.SuccessResponse{data=notesdto.DeletedResponse}
// @Failure      400  {object}  common.ErrorResponse  "Invalid note ID"
// @Router       /notes/{id}/analysis [delete]
func (h *Notes) Delete(c echo.Context) error {
	noteID, err := parseNoteID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.svc.DeleteAnalysis(c.Request().Context(), noteID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, notesdto.DeletedResponse{NoteID: noteID.String(), Deleted: true})
}

func parseNoteID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("invalid note ID").WithDetail("id", c.Param("id"))
	}
	return id, nil
}
