package stepflow

import (
	"errors"
	"fmt"
)

// Sentinel errors for flow definitions and screen lookup.
var (
	// ErrUnknownScreen indicates a screen id with no registered factory.
	ErrUnknownScreen = errors.New("unknown screen")

	// ErrAmbiguousCriterion indicates a state that sets both a step count
	// and a list of named steps. A state completes on exactly one of them.
	ErrAmbiguousCriterion = errors.New("state sets both count and steps")

	// ErrEmptyFlow indicates a flow definition with no states.
	ErrEmptyFlow = errors.New("flow has no states")

	// ErrNilScreen indicates a factory that returned no screen.
	ErrNilScreen = errors.New("screen factory returned nil")
)

// FlowError reports a problem with one state of a flow definition.
// State is the zero-based index of the offending state, or -1 when the
// problem concerns the flow as a whole.
type FlowError struct {
	State int    // Index of the state in the flow
	Op    string // Operation that failed (e.g., "decode", "validate", "build")
	Err   error  // Underlying error
}

func (e *FlowError) Error() string {
	if e.State < 0 {
		return fmt.Sprintf("stepflow: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("stepflow: %s: state %d: %v", e.Op, e.State, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// IsFlowError checks if an error came from loading or building a flow.
func IsFlowError(err error) bool {
	var flowErr *FlowError
	return errors.As(err, &flowErr)
}

// IsUnknownScreen checks if an error indicates a missing screen factory.
func IsUnknownScreen(err error) bool {
	return errors.Is(err, ErrUnknownScreen)
}
