package crew

import "fmt"

// StageError represents a failure in one crew stage. It is never surfaced to
// the caller of Run; it only explains why generation degraded to fallback.
type StageError struct {
	Stage string
	Cause error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}
