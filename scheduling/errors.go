package scheduling

import "fmt"

// ValidationError reports malformed generation or scheduling input. No partial
// result is ever produced alongside one.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

// NotFoundError reports an unknown owner or session id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InvalidTransitionError reports a status edit the state machine rejects,
// such as editing a future-dated session or an unsupported status value.
type InvalidTransitionError struct {
	SessionID string
	Message   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition for session %s: %s", e.SessionID, e.Message)
}
