// Package error defines domain-specific errors for the finance planner.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrMissingUserID is returned when a request is not bound to a user.
	ErrMissingUserID = errors.New("user id is required")

	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must be after start_date")

	// ErrInvalidGranularity is returned when granularity is not valid.
	ErrInvalidGranularity = errors.New("granularity must be: weekly or monthly")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidMonth is returned when a month is not in YYYY-MM form.
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

	// ErrInvalidLimit is returned when a list limit is out of range.
	ErrInvalidLimit = errors.New("limit must be between 1 and 50")

	// ErrInvalidTransactionType is returned for an unknown income/expense filter.
	ErrInvalidTransactionType = errors.New("type must be: income or expense")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate       DashboardErrorCode = "DSH-010001"
	ErrCodeMissingEndDate         DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidDateRange       DashboardErrorCode = "DSH-010003"
	ErrCodeInvalidGranularity     DashboardErrorCode = "DSH-010004"
	ErrCodeInvalidDateFormat      DashboardErrorCode = "DSH-010006"
	ErrCodeInvalidMonth           DashboardErrorCode = "DSH-010007"
	ErrCodeInvalidLimit           DashboardErrorCode = "DSH-010008"
	ErrCodeInvalidTransactionType DashboardErrorCode = "DSH-010009"
	ErrCodeDashboardMissingUser   DashboardErrorCode = "DSH-010010"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
