package handler

import (
	"net/http"

	"github.com/dailygrid/dailygrid/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest       = apierr.CodeInvalidRequest
	CodePlayerNotFound       = apierr.CodePlayerNotFound
	CodeFutureResult         = apierr.CodeFutureResult
	CodeInvalidScore         = apierr.CodeInvalidScore
	CodeDirectoryUnavailable = apierr.CodeDirectoryUnavailable
	CodeInternalError        = apierr.CodeInternalError
)

// WriteError writes an error response
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
