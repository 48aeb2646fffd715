// Package tether provides thread-lifecycle primitives for Go: spawned
// goroutines become owned handles that must be joined or detached exactly
// once, scope guards that guarantee the join happens on every exit path,
// and a mutex-guarded counter for shared mutable state.
//
// The core problem tether addresses is silent goroutine leakage: a
// goroutine that is started and then forgotten keeps running with no one
// responsible for its completion. tether makes the obligation explicit.
// Every [Spawn] returns a [Handle] that is joinable until finalized by
// exactly one of [Handle.Join] or [Handle.Detach]; ending a handle's
// lifetime via [Handle.Close] while it is still joinable reports a
// [*LifecycleError] instead of leaking.
//
// # Handles
//
// [Spawn] starts an entry function on its own goroutine and returns the
// owning [Handle]:
//
//	h := tether.Spawn("loader", func() {
//	    load(dst)
//	})
//	if err := h.Join(); err != nil {
//	    // second finalization, a programming error
//	}
//
// [Handle.Join] blocks until the entry returns; everything the entry wrote
// is visible to the joiner afterwards. [Handle.Detach] releases the wait
// obligation; a detached entry's failures become unobservable.
//
// A panic inside the entry does not cross the goroutine boundary. The
// handle contains it as a [*PanicError] which callers may inspect via
// [Handle.Recovered] after joining. Entries that can fail should publish
// their outcomes through write-once slots they own exclusively.
//
// # Join Guards
//
// [Guard] binds a [JoinGuard] to a handle for the remainder of the current
// scope. Deferring [JoinGuard.Finish] guarantees the join happens on every
// exit path, including panics raised between the spawn and the natural
// join point:
//
//	h := tether.Spawn("worker", work)
//	defer tether.Guard(h).Finish()
//
// Finish joins only if the handle is still joinable and never swallows or
// replaces an in-flight panic.
//
// # Guarded Counter
//
// [Counter] is the one shared-mutable-state component: an integer cell
// whose every access holds an internal mutex, so any interleaving of
// [Counter.Increment] and [Counter.Decrement] calls across goroutines
// yields an exact final value. [Counter.Update] runs caller code under the
// lock; if that code panics the counter is poisoned and all subsequent
// operations return [ErrPoisoned].
//
// # Partitioned Search
//
// The [github.com/baxromumarov/tether/parscan] subpackage builds on
// handles and guards: it splits a slice into contiguous disjoint blocks,
// spawns one guarded worker per block, and aggregates per-block outcomes
// written to disjoint result slots, so the whole search needs no locking.
//
// # Observability
//
// [WithOnStart] and [WithOnDone] register per-handle lifecycle hooks
// invoked inside the spawned goroutine.
package tether
