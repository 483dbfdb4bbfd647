// Package command holds the validated state transitions of the checklist
// domain. Validation failures are reported at construction; precondition
// failures at execution. Both abort the operation and never touch
// persisted state.
package command

// ValidationError reports an input-contract violation caught when a command
// is constructed (blank name, inverted time range, duplicate item ids).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PreconditionError reports a contract violation caught when a command is
// executed against the wrong target (item id mismatch).
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }
