package sim

import "fmt"

// StepError reports a failed tick. A Simulation that returned one must not be
// stepped again.
type StepError struct {
	Tick    uint64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("tick %d: %v", e.Tick, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
