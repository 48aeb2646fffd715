package tether

import (
	"sync/atomic"
	"time"
)

// handle lifecycle states.
const (
	stateJoinable int32 = iota
	stateJoined
	stateDetached
)

// Handle is an owning handle to one running goroutine. Create one via
// [Spawn]; finalize it exactly once with [Handle.Join] or [Handle.Detach].
//
// The state machine is small:
//
//	joinable --Join()--> joined
//	joinable --Detach()--> detached
//
// Any transition out of joined or detached fails with a [*LifecycleError].
// The state is a single atomic word, so Join and Detach racing from
// different goroutines still finalize exactly once.
type Handle struct {
	name  string
	done  chan struct{}
	state atomic.Int32

	// recovered is written by the spawned goroutine before done is
	// closed, so reading it after Join is race-free.
	recovered *PanicError
}

// Spawn starts entry on a new goroutine and returns the owning [Handle].
// The entry function communicates only through side effects on state it
// owns or that is explicitly synchronized; it must not share mutable data
// with the spawner without a lock such as [Counter]'s, or an exclusive
// hand-off.
//
// A panic inside entry is contained: it is captured as a [*PanicError]
// on the handle rather than crossing the goroutine boundary. Inspect it
// with [Handle.Recovered] after joining.
func Spawn(name string, entry func(), opts ...SpawnOption) *Handle {
	if entry == nil {
		panic("tether: Spawn entry must not be nil")
	}

	cfg := spawnConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Handle{
		name: name,
		done: make(chan struct{}),
	}

	go func() {
		defer close(h.done)

		if cfg.onStart != nil {
			cfg.onStart(name)
		}

		start := time.Now()
		func() {
			defer func() {
				if r := recover(); r != nil {
					h.recovered = NewPanicError(r)
				}
			}()
			entry()
		}()

		if cfg.onDone != nil {
			// Hook panics are deliberately unrecovered: an
			// observability hook must not panic.
			cfg.onDone(name, time.Since(start))
		}
	}()

	return h
}

// Join blocks until the handle's entry function completes, then marks the
// handle finalized. Everything the entry wrote is visible to the caller
// after Join returns.
//
// Join returns a [*LifecycleError] if the handle was already joined or
// detached; the wait does not happen in that case.
func (h *Handle) Join() error {
	if !h.state.CompareAndSwap(stateJoinable, stateJoined) {
		return &LifecycleError{
			Task:  h.name,
			Op:    "Join",
			State: stateName(h.state.Load()),
		}
	}
	<-h.done
	return nil
}

// Detach releases the obligation to wait for the entry function. The
// goroutine keeps running independently and any failure it contains
// becomes unobservable, which the caller accepts by calling Detach.
//
// Detach returns a [*LifecycleError] if the handle was already finalized.
func (h *Handle) Detach() error {
	if !h.state.CompareAndSwap(stateJoinable, stateDetached) {
		return &LifecycleError{
			Task:  h.name,
			Op:    "Detach",
			State: stateName(h.state.Load()),
		}
	}
	return nil
}

// Close ends the handle's lifetime. It must be called only after the
// handle has been finalized by [Handle.Join] or [Handle.Detach]; closing
// a still-joinable handle is the leak this package exists to prevent and
// returns a [*LifecycleError] describing it. Close never finalizes the
// handle itself.
func (h *Handle) Close() error {
	if h.state.Load() == stateJoinable {
		return &LifecycleError{
			Task:  h.name,
			Op:    "Close",
			State: stateName(stateJoinable),
		}
	}
	return nil
}

// Joinable reports whether the handle has not yet been finalized by
// [Handle.Join] or [Handle.Detach].
func (h *Handle) Joinable() bool {
	return h.state.Load() == stateJoinable
}

// Name returns the name the handle was spawned with.
func (h *Handle) Name() string {
	return h.name
}

// Recovered returns the panic captured from the entry function, or nil if
// the entry returned normally. It must be called only after [Handle.Join]
// has returned; before that the value is not synchronized.
func (h *Handle) Recovered() *PanicError {
	return h.recovered
}

func stateName(s int32) string {
	switch s {
	case stateJoinable:
		return "joinable"
	case stateJoined:
		return "joined"
	case stateDetached:
		return "detached"
	default:
		return "unknown"
	}
}
