package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound = errors.New("record not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFaculty       = errors.New("only faculty can perform this action")
	ErrNotOwner         = errors.New("only the owner can perform this action")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Store errors: the remote query failed or was denied server-side.
	// Callers must surface these, never treat them as an empty result.
	ErrStoreFailure = errors.New("store operation failed")

	// Profile errors
	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Entity errors
var (
	ErrResourceNotFound       = errors.New("resource not found")
	ErrScholarshipNotFound    = errors.New("scholarship not found")
	ErrTimetableEntryNotFound = errors.New("timetable entry not found")
)

// NewValidationError creates a validation error carrying a field-level message.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewStoreError wraps a remote store failure with a message
func NewStoreError(err error, message string) error {
	return &CustomError{
		Err:     ErrStoreFailure,
		Message: message,
		cause:   err,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
	cause   error
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the sentinel and the underlying cause, so callers can
// match either with errors.Is. A store failure caused by a classified pg
// error (permission denied, missing owner row) keeps its specific mapping.
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// Cause returns the underlying low-level error, if any.
func (e *CustomError) Cause() error {
	return e.cause
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
