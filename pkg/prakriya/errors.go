package prakriya

import (
	"errors"
	"fmt"
)

// ErrStalled marks a derivation that exceeded its step budget or
// detected a no-progress application. The partial trace travels with it.
var ErrStalled = errors.New("derivation stalled")

// StalledError carries the diagnosis of a stalled derivation.
type StalledError struct {
	Reason string
	Form   string // form at the moment the derivation stopped
	Trace  Trace
}

func (e *StalledError) Error() string {
	return fmt.Sprintf("prakriya: %v after %d steps (%s)", ErrStalled, len(e.Trace), e.Reason)
}

func (e *StalledError) Unwrap() error { return ErrStalled }
