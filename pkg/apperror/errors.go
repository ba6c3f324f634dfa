package apperror

import (
	"errors"
	"net/http"
)

// AppError represents a business-rule violation with its HTTP status code.
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound         = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized     = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrPermissionDenied = &AppError{Code: http.StatusForbidden, Message: "Permission denied"}
	ErrInvalidArgument  = &AppError{Code: http.StatusBadRequest, Message: "Invalid argument"}
	ErrConflict         = &AppError{Code: http.StatusConflict, Message: "Conflict"}
	ErrInternalServer   = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
)

// NewAppError creates a new application error.
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying per-field details.
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error for the named resource.
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message.
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewInvalidArgumentError creates a bad request error with a custom message.
func NewInvalidArgumentError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewPermissionDeniedError creates a forbidden error naming the missing
// permission code.
func NewPermissionDeniedError(code string) *AppError {
	return &AppError{
		Code:    http.StatusForbidden,
		Message: "Missing permission: " + code,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
