package tether

import (
	"errors"
	"fmt"
)

// ErrPoisoned is returned by [Counter] operations after a function passed
// to [Counter.Update] panicked while holding the counter's lock. The
// counter's value is untrustworthy from that point on.
var ErrPoisoned = errors.New("tether: counter lock poisoned")

// LifecycleError reports a violation of the handle lifecycle contract:
// a second Join or Detach on an already-finalized handle, or a Close on a
// handle that is still joinable. These are programming defects, not
// recoverable runtime conditions; callers typically treat them as fatal
// for the operation that produced them.
type LifecycleError struct {
	// Task is the name the offending handle was spawned with.
	Task string

	// Op is the operation that detected the violation: "Join",
	// "Detach", or "Close".
	Op string

	// State is the handle state at the time of the violation.
	State string
}

func (e *LifecycleError) Error() string {
	if e.Op == "Close" {
		return fmt.Sprintf("tether: handle %q closed while still joinable", e.Task)
	}
	return fmt.Sprintf("tether: %s on handle %q in state %s", e.Op, e.Task, e.State)
}

// IsLifecycleError reports whether err (or any error in its chain) is a
// [*LifecycleError].
func IsLifecycleError(err error) bool {
	if err == nil {
		return false
	}
	var le *LifecycleError
	return errors.As(err, &le)
}
