package orchestrator

import (
	"errors"
	"fmt"
)

// Validation errors, reported before any external call is attempted.
var (
	// ErrMissingGoal indicates an empty goal was supplied.
	ErrMissingGoal = errors.New("goal is required")
	// ErrMissingProject indicates no target project key was configured.
	ErrMissingProject = errors.New("project key is required")
)

// OpError wraps an external-call failure with the operation being attempted
// when plan creation aborted. Already-created issues are not rolled back.
type OpError struct {
	Op      string // e.g. "create story"
	Summary string // summary of the node being created, if any
	Err     error
}

// Error returns a human-readable message including the attempted operation.
func (e *OpError) Error() string {
	if e.Summary != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Summary, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *OpError) Unwrap() error {
	return e.Err
}
