// Package errors defines the application error taxonomy. Every use case
// failure that reaches a caller is one of these; transient dispatch
// failures (push delivery, secondary record writes) are logged inside the
// use cases and never become AppErrors.
package errors

import (
	"net/http"

	"pawtag/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are in Spanish, the
// product's locale.
var (
	// Validation errors (missing required user input)
	ErrPetValidation = NewBaseError(
		http.StatusBadRequest,
		"PET_VALIDATION",
		"Por favor completa el nombre y el tipo.",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos.",
		"",
	)

	// Permission errors (device capability denied)
	ErrLocationUnavailable = NewBaseError(
		http.StatusFailedDependency,
		"LOCATION_UNAVAILABLE",
		"No se pudo obtener tu ubicación actual.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"No tienes permiso para realizar esta acción.",
		"",
	)

	// Not-found errors (referenced document absent)
	ErrPetNotFound = NewBaseError(
		http.StatusNotFound,
		"PET_NOT_FOUND",
		"No se encontró la mascota.",
		"",
	)

	ErrOwnerNotFound = NewBaseError(
		http.StatusNotFound,
		"OWNER_NOT_FOUND",
		"Dueño no encontrado.",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"No se encontró la notificación.",
		"",
	)

	// Invalid payload errors (malformed QR content)
	ErrInvalidPayload = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_QR_PAYLOAD",
		"Este QR no es válido.",
		"",
	)

	ErrSelfScan = NewBaseError(
		http.StatusConflict,
		"SELF_SCAN",
		"No puedes escanear tu propio QR de rescate.",
		"",
	)

	// Conflict errors
	ErrReportAlreadyActive = NewBaseError(
		http.StatusConflict,
		"REPORT_ALREADY_ACTIVE",
		"Esta mascota ya tiene un reporte activo.",
		"",
	)

	ErrPetAlreadyLost = NewBaseError(
		http.StatusConflict,
		"PET_ALREADY_LOST",
		"Esta mascota ya está reportada como perdida.",
		"",
	)

	// Auth errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Debes iniciar sesión para continuar.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"No se pudo completar la operación.",
		"",
	)
)

// StoreExecuteError represents a remote store execution failure,
// implementing the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "store execution failed").Error()
}

// Unwrap exposes the underlying store error for errors.Is/As.
func (e *StoreExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "No se pudo completar la operación."
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}
