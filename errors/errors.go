package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the error type returned across layers and rendered by handlers
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

func newAppError(raw error, status int, code ErrorCode, message string) AppError {
	return AppError{
		Raw:       raw,
		HTTPCode:  status,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// General Errors
func ErrInternal(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_INTERNAL, "Internal server error")
}

func ErrInvalidArgument(message string) AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_INVALID_ARGUMENT, message)
}

func ErrNotFound(resource string) AppError {
	return newAppError(nil, http.StatusNotFound, ErrorCode_NOT_FOUND, fmt.Sprintf("%s not found", resource))
}

func ErrInvalidPayload() AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_INVALID_PAYLOAD, "Invalid payload")
}

func ErrUnauthenticated() AppError {
	return newAppError(nil, http.StatusUnauthorized, ErrorCode_UNAUTHENTICATED, "Authentication required")
}

// Authentication Errors
func ErrInvalidToken() AppError {
	return newAppError(nil, http.StatusUnauthorized, ErrorCode_AUTH_INVALID_TOKEN, "Invalid authentication token")
}

func ErrTokenExpired() AppError {
	return newAppError(nil, http.StatusUnauthorized, ErrorCode_AUTH_TOKEN_EXPIRED, "Authentication token has expired")
}

// Analysis Errors
func ErrMissingRawText() AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_ANALYSIS_MISSING_TEXT, "raw_text is required")
}

func ErrAnalysisFailed(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_ANALYSIS_FAILED, "Notes analysis failed")
}

func ErrAnalysisNotFound(noteID string) AppError {
	return newAppError(nil, http.StatusNotFound, ErrorCode_ANALYSIS_NOT_FOUND, "Analysis not found").
		WithDetail("note_id", noteID)
}

func ErrUnsupported(feature string) AppError {
	return newAppError(nil, http.StatusNotImplemented, ErrorCode_ANALYSIS_UNSUPPORTED,
		fmt.Sprintf("%s is not configured", feature))
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return newAppError(err, http.StatusBadGateway, ErrorCode_INTEGRATION_STORAGE_FAILED,
		fmt.Sprintf("Storage operation failed: %s", operation))
}

func ErrCacheFailed(operation string, err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_INTEGRATION_CACHE_FAILED,
		fmt.Sprintf("Cache operation failed: %s", operation))
}

// Database Errors
func ErrDBConnectionFailed(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_DB_CONNECTION_FAILED, "Database connection failed")
}

func ErrDBQueryFailed(query string, err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_DB_QUERY_FAILED, "Database query failed").
		WithDetail("query", query)
}
