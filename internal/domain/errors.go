package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(field, message string) *AppError {
	return NewAppError(
		"VALIDATION_ERROR",
		fmt.Sprintf("Validation failed for field '%s': %s", field, message),
		http.StatusBadRequest,
		nil,
	)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(
		ErrCodeNotFound,
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
		nil,
	)
}

// NewInvalidRoleAssignmentError creates a role assignment error
func NewInvalidRoleAssignmentError(reason string) *AppError {
	return NewAppError(
		ErrCodeInvalidRoleAssignment,
		fmt.Sprintf("Invalid role assignment: %s", reason),
		http.StatusBadRequest,
		nil,
	)
}

// NewInvalidPointsError creates a point magnitude error
func NewInvalidPointsError(reason string) *AppError {
	return NewAppError(
		ErrCodeInvalidPoints,
		fmt.Sprintf("Invalid points: %s", reason),
		http.StatusBadRequest,
		nil,
	)
}

// NewInvalidLockTargetError creates a first-round-lock target error
func NewInvalidLockTargetError(reason string) *AppError {
	return NewAppError(
		ErrCodeInvalidLockTarget,
		fmt.Sprintf("Invalid lock target: %s", reason),
		http.StatusBadRequest,
		nil,
	)
}

// NewUnbalancedSettlementError creates a settlement consistency error
func NewUnbalancedSettlementError(reason string) *AppError {
	return NewAppError(
		ErrCodeUnbalancedSettlement,
		fmt.Sprintf("Unbalanced settlement: %s", reason),
		http.StatusUnprocessableEntity,
		nil,
	)
}

// NewConcurrentModificationError creates a concurrency conflict error. The
// engine never auto-retries; the caller may.
func NewConcurrentModificationError(resource string) *AppError {
	return NewAppError(
		ErrCodeConcurrentModification,
		fmt.Sprintf("%s was modified by another operation", resource),
		http.StatusConflict,
		nil,
	)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Unauthorized access"
	}
	return NewAppError(
		"UNAUTHORIZED",
		message,
		http.StatusUnauthorized,
		nil,
	)
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return NewAppError(
		"CONFLICT",
		message,
		http.StatusConflict,
		nil,
	)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(
		"INTERNAL_ERROR",
		message,
		http.StatusInternalServerError,
		err,
	)
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodeDatabaseQuery,
		fmt.Sprintf("Database operation failed: %s", operation),
		http.StatusInternalServerError,
		err,
	)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Error codes for different categories of errors
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeTokenInvalid       = "TOKEN_INVALID"
	ErrCodeTokenMissing       = "TOKEN_MISSING"

	ErrCodeInvalidRoleAssignment  = "INVALID_ROLE_ASSIGNMENT"
	ErrCodeInvalidPoints          = "INVALID_POINTS"
	ErrCodeInvalidLockTarget      = "INVALID_LOCK_TARGET"
	ErrCodeUnbalancedSettlement   = "UNBALANCED_SETTLEMENT"
	ErrCodeNotFound               = "NOT_FOUND"
	ErrCodeConcurrentModification = "CONCURRENT_MODIFICATION"

	ErrCodePlayerNotFound    = "PLAYER_NOT_FOUND"
	ErrCodeGameNotFound      = "GAME_NOT_FOUND"
	ErrCodeUsernameTaken     = "USERNAME_TAKEN"
	ErrCodeUnsettledBalance  = "UNSETTLED_BALANCE"
	ErrCodePlayerHasGames    = "PLAYER_HAS_GAMES"
	ErrCodeRequiredField     = "REQUIRED_FIELD"
	ErrCodeInvalidFormat     = "INVALID_FORMAT"
	ErrCodeChartServiceError = "CHART_SERVICE_ERROR"

	ErrCodeDatabaseConnection = "DATABASE_CONNECTION_ERROR"
	ErrCodeDatabaseQuery      = "DATABASE_QUERY_ERROR"
)
