package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Resource errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrBranchAdminNotFound = errors.New("branch admin not found")
	ErrBranchNotFound      = errors.New("branch not found")
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrGuardianNotFound    = errors.New("guardian not found")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError carries the full list of missing or malformed fields so the
// response can name every offending field, not only the first one.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("Missing fields: %s", strings.Join(e.Fields, ", "))
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a ValidationError for the given field names.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Is returns whether target matches err or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
