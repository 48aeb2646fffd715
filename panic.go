package tether

import (
	"fmt"
	"runtime"
)

// PanicError wraps a panic recovered inside a spawned entry function
// together with the goroutine stack trace captured at the point of the
// panic. Panics never cross the goroutine boundary on their own; the
// handle stores the *PanicError and callers inspect it via
// [Handle.Recovered] after joining.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error returns a human-readable representation of the panic,
// including the value and the full stack trace.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns nil. PanicError does not wrap another error.
func (e *PanicError) Unwrap() error { return nil }

// NewPanicError captures the current goroutine's stack and wraps the
// recovered value v in a [*PanicError]. Call it from inside a recover
// block; workers that contain their own panics use it to publish the
// failure through an error slot.
func NewPanicError(v any) *PanicError {
	// 8 KiB is enough for most stack traces. runtime.Stack truncates
	// gracefully if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}
