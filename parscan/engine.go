package parscan

import (
	"errors"
	"fmt"

	"github.com/baxromumarov/tether"
)

// notFound marks a block that holds no match.
const notFound = -1

// Find reports whether target occurs anywhere in seq, searching up to
// blocks partitions in parallel (one goroutine per block). An empty seq
// reports false without spawning anything.
//
// The result is independent of the block count: for a fixed (seq, target)
// every valid blocks value produces the same answer. Find returns a
// [*PartitionError] before spawning if blocks < 1, and a joined
// [*BlockError] for every worker whose scan panicked.
func Find[T comparable](seq []T, target T, blocks int, opts ...Option) (bool, error) {
	return FindFunc(seq, func(v T) bool { return v == target }, blocks, opts...)
}

// FindFunc reports whether any element of seq satisfies match, searching
// up to blocks partitions in parallel. See [Find].
func FindFunc[T any](seq []T, match func(T) bool, blocks int, opts ...Option) (bool, error) {
	idx, err := search(seq, match, blocks, opts...)
	return idx != notFound, err
}

// Index returns the index of the first element of seq equal to target,
// or -1 if there is none, searching up to blocks partitions in parallel.
//
// Each worker records the first match inside its own block; the reduction
// takes the minimum across blocks, which is the global first occurrence,
// so Index is deterministic regardless of worker scheduling.
func Index[T comparable](seq []T, target T, blocks int, opts ...Option) (int, error) {
	return search(seq, func(v T) bool { return v == target }, blocks, opts...)
}

// IndexFunc returns the index of the first element of seq satisfying
// match, or -1 if there is none. See [Index].
func IndexFunc[T any](seq []T, match func(T) bool, blocks int, opts ...Option) (int, error) {
	return search(seq, match, blocks, opts...)
}

// search is the engine shared by Find, FindFunc, Index, and IndexFunc.
func search[T any](seq []T, match func(T) bool, blocks int, opts ...Option) (int, error) {
	if match == nil {
		panic("parscan: match must not be nil")
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	plan, err := Plan(len(seq), blocks)
	if err != nil {
		return notFound, err
	}
	if len(plan) == 0 {
		return notFound, nil
	}

	// One result slot and one error slot per block. Each worker writes
	// only to its own index, so no synchronization is needed beyond the
	// happens-before edge the joins provide.
	found := make([]int, len(plan))
	errSlots := make([]error, len(plan))

	// All guards are deferred inside this closure, so every worker
	// spawned before any failure is joined before the failure escapes.
	func() {
		for i, b := range plan {
			h := tether.Spawn(
				fmt.Sprintf("block[%d]", i),
				func() {
					found[i] = scanBlock(seq, b, match, &errSlots[i])
				},
				cfg.spawnOpts()...,
			)
			defer tether.Guard(h).Finish()
		}
	}()

	if cfg.onBlockDone != nil {
		for i, b := range plan {
			cfg.onBlockDone(BlockResult{
				Block: b,
				Index: found[i],
				Err:   errSlots[i],
			})
		}
	}

	best := notFound
	for _, idx := range found {
		if idx != notFound && (best == notFound || idx < best) {
			best = idx
		}
	}

	var errs []error
	for i, e := range errSlots {
		if e != nil {
			errs = append(errs, &BlockError{Block: plan[i], Err: e})
		}
	}
	return best, errors.Join(errs...)
}

// scanBlock linearly scans one block, short-circuiting on the first match.
// A panic from match is contained here, published through the worker's
// error slot; it never reaches the handle.
func scanBlock[T any](seq []T, b Block, match func(T) bool, errSlot *error) (idx int) {
	idx = notFound
	defer func() {
		if r := recover(); r != nil {
			*errSlot = tether.NewPanicError(r)
		}
	}()

	for i := b.Start; i < b.End; i++ {
		if match(seq[i]) {
			return i
		}
	}
	return notFound
}
