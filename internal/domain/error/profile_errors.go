package error

// ProfileErrorCode defines error codes for financial profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	ErrCodeProfileMissingUser   ProfileErrorCode = "PRF-010001"
	ErrCodeProfileInternalError ProfileErrorCode = "PRF-990001"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{Code: code, Message: message, Err: err}
}
