package tether

import "sync/atomic"

// JoinGuard binds to one [Handle] without owning it and guarantees the
// handle is joined when the guard's scope ends, whatever the exit path.
// Create one with [Guard] and defer [JoinGuard.Finish] immediately:
//
//	h := tether.Spawn("worker", work)
//	defer tether.Guard(h).Finish()
//
// Because Finish runs as a deferred call, a panic raised between the
// spawn and the natural join point still results in the handle being
// joined before the panic reaches any outer caller. Finish never
// manufactures, replaces, or swallows an in-flight panic; it only joins.
type JoinGuard struct {
	h        *Handle
	finished atomic.Bool
}

// Guard binds a new [JoinGuard] to h. It panics on a nil handle, since a
// guard with nothing to join indicates a bug at the spawn site.
func Guard(h *Handle) *JoinGuard {
	if h == nil {
		panic("tether: Guard requires a non-nil handle")
	}
	return &JoinGuard{h: h}
}

// Finish joins the bound handle if and only if it is still joinable.
// A handle already joined or detached by the time the scope ends is left
// untouched. Finish is idempotent; only the first call acts.
func (g *JoinGuard) Finish() {
	if !g.finished.CompareAndSwap(false, true) {
		return
	}
	if g.h.Joinable() {
		// The CAS inside Join makes the race with a concurrent
		// Join/Detach harmless: whoever loses gets a LifecycleError,
		// which a guard deliberately ignores — its only job is to
		// ensure the handle does not outlive the scope unjoined.
		_ = g.h.Join()
	}
}

// Handle returns the guarded handle.
func (g *JoinGuard) Handle() *Handle {
	return g.h
}
