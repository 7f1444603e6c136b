// Package error defines domain-specific errors for the finance planner.
package error

import "errors"

// Projection domain errors.
var (
	// ErrInvalidScenario is returned for an unknown cash-flow scenario.
	ErrInvalidScenario = errors.New("scenario must be: base, best or worst")

	// ErrInvalidMultiplier is returned when a scenario multiplier is not positive.
	ErrInvalidMultiplier = errors.New("scenario multipliers must be greater than zero")

	// ErrNegativeAmount is returned when an amount that cannot be negative is.
	ErrNegativeAmount = errors.New("amounts must not be negative")

	// ErrInvalidSavingsRate is returned when the invested share is outside [0,1].
	ErrInvalidSavingsRate = errors.New("savings_rate must be between 0 and 1")

	// ErrInvalidExpectedReturn is returned for an implausible annual return.
	ErrInvalidExpectedReturn = errors.New("expected_return must be between -1 and 1")

	// ErrInvalidTimeHorizon is returned when the horizon is out of range.
	ErrInvalidTimeHorizon = errors.New("time_horizon_years must be between 1 and 50")
)

// ProjectionErrorCode defines error codes for projection errors.
// Format: PRJ-XXYYYY where XX is category and YYYY is specific error.
type ProjectionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProjectionMissingUser ProjectionErrorCode = "PRJ-010001"
	ErrCodeInvalidScenario       ProjectionErrorCode = "PRJ-010002"
	ErrCodeInvalidMultiplier     ProjectionErrorCode = "PRJ-010003"
	ErrCodeNegativeAmount        ProjectionErrorCode = "PRJ-010004"
	ErrCodeInvalidSavingsRate    ProjectionErrorCode = "PRJ-010005"
	ErrCodeInvalidExpectedReturn ProjectionErrorCode = "PRJ-010006"
	ErrCodeInvalidTimeHorizon    ProjectionErrorCode = "PRJ-010007"

	// Internal errors (99XXXX)
	ErrCodeProjectionInternalError ProjectionErrorCode = "PRJ-990001"
)

// ProjectionError represents a projection error with code and message.
type ProjectionError struct {
	Code    ProjectionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectionError) Unwrap() error {
	return e.Err
}

// NewProjectionError creates a new ProjectionError with the given code and message.
func NewProjectionError(code ProjectionErrorCode, message string, err error) *ProjectionError {
	return &ProjectionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
