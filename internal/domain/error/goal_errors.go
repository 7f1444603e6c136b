// Package error defines domain-specific errors for the finance planner.
package error

import "errors"

// Goal domain errors.
var (
	// ErrInvalidGoalStatus is returned for an unknown status filter.
	ErrInvalidGoalStatus = errors.New("status must be: active, paused or achieved")

	// ErrGoalProfileUnavailable is returned when the live income for income
	// goals cannot be derived.
	ErrGoalProfileUnavailable = errors.New("financial profile unavailable")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalMissingUser   GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalStatus GoalErrorCode = "GOL-010002"

	// Internal errors (99XXXX)
	ErrCodeGoalInternalError      GoalErrorCode = "GOL-990001"
	ErrCodeGoalProfileUnavailable GoalErrorCode = "GOL-990002"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
