package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by repositories and services to provide
// fine-grained failure reasons.
var (
	ErrEmailExists = errors.New("email_exists")
	ErrForbidden   = errors.New("forbidden")
)

// AppError for structured error handling from services to controllers.
// Message is the public envelope message; Err is surfaced in the
// envelope's error field.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func NewAppError(status int, message string, err error) *AppError {
	return &AppError{StatusCode: status, Message: message, Err: err}
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondError(w, appErr.StatusCode, appErr.Message, appErr.Err)
	} else {
		RespondError(w, http.StatusInternalServerError, "Internal Server Error", err)
	}
}
