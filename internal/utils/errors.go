package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrNotAManager     = errors.New("not_a_manager")
	ErrNotFound        = errors.New("not_found")
	ErrInvalidEmail    = errors.New("invalid_email")
	ErrEmailExists     = errors.New("email_exists")
	ErrBadCredentials  = errors.New("invalid_credentials")
	ErrLeaseExists     = errors.New("lease_exists")
	ErrTenantNotLinked = errors.New("tenant_not_linked")
)

// AppError is the structured error services hand back to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Details    any
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NotFoundError is the canonical "absent or out of scope" failure. Scope
// violations deliberately look identical to a missing row.
func NotFoundError(msg string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Code: ErrCodeNotFound, Message: msg}
}

func ValidationError(msg string, err error) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Code: ErrCodeValidation, Message: msg, Err: err}
}

func ConflictError(msg string, err error) *AppError {
	return &AppError{StatusCode: http.StatusConflict, Code: ErrCodeConflict, Message: msg, Err: err}
}

func InternalError(msg string, err error) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Code: ErrCodeInternal, Message: msg, Err: err}
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, appErr.Details, appErr.Err)
	} else {
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
