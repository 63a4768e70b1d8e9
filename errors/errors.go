package errors

import (
	"fmt"
	"net/http"
)

// AppError is the custom error type for the application. Every failure that
// reaches the HTTP boundary is either an AppError or gets wrapped into one,
// so the error-kind to status-code mapping stays exhaustive.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error for errors.Is/As chains
func (e AppError) Unwrap() error {
	return e.Raw
}

// ErrInternal wraps an unexpected error
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

// ErrValidation reports bad or missing input
func ErrValidation(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION,
		Message:  message,
	}
}

// ErrMeetingNotFound reports an unknown meeting id
func ErrMeetingNotFound(id int64) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("Meeting %d not found", id),
	}
}

// ErrStorageFailed reports a database operation that could not be committed.
// The repository guarantees rollback before this surfaces.
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_STORAGE,
		Message:  fmt.Sprintf("Error %s meeting: %v", operation, err),
	}
}

// ErrSummarizationFailed reports a failure of the external model call
func ErrSummarizationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_UPSTREAM,
		Message:  fmt.Sprintf("Error: %v", err),
	}
}
