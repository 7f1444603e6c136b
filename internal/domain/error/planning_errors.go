package error

// PlanningErrorCode defines error codes for planning errors.
type PlanningErrorCode string

const (
	ErrCodePlanningMissingUser   PlanningErrorCode = "PLN-010001"
	ErrCodePlanningInternalError PlanningErrorCode = "PLN-990001"
)

// PlanningError represents a planning error with code and message.
type PlanningError struct {
	Code    PlanningErrorCode
	Message string
	Err     error
}

func (e *PlanningError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *PlanningError) Unwrap() error {
	return e.Err
}

// NewPlanningError creates a new PlanningError.
func NewPlanningError(code PlanningErrorCode, message string, err error) *PlanningError {
	return &PlanningError{Code: code, Message: message, Err: err}
}
