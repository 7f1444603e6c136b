package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidMonthsBack is returned when the trailing window is out of range.
	ErrInvalidMonthsBack = errors.New("months_back must be between 1 and 60")
)

// AnalyticsErrorCode defines error codes for analytics errors.
type AnalyticsErrorCode string

const (
	ErrCodeAnalyticsMissingUser   AnalyticsErrorCode = "ANL-010001"
	ErrCodeInvalidMonthsBack      AnalyticsErrorCode = "ANL-010002"
	ErrCodeAnalyticsInternalError AnalyticsErrorCode = "ANL-990001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{Code: code, Message: message, Err: err}
}
