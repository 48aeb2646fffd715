package parscan

import "github.com/baxromumarov/tether"

// BlockResult is the per-block outcome passed to the [WithOnBlockDone]
// hook after all workers have been joined.
type BlockResult struct {
	// Block is the index range the worker scanned.
	Block Block

	// Index is the first matching index inside the block, or -1.
	Index int

	// Err is the contained failure from the worker's scan, or nil.
	Err error
}

// Found reports whether the block held a match.
func (r BlockResult) Found() bool {
	return r.Index != notFound
}

type config struct {
	onBlockDone func(BlockResult)
	onStart     func(name string)
}

// Option configures a search.
type Option func(*config)

// WithOnBlockDone registers a hook receiving every block's outcome once
// all workers have been joined. Blocks are reported in partition order.
func WithOnBlockDone(fn func(BlockResult)) Option {
	return func(c *config) {
		c.onBlockDone = fn
	}
}

// WithOnWorkerStart registers a hook invoked inside each worker goroutine
// before its scan begins, with the worker's name.
func WithOnWorkerStart(fn func(name string)) Option {
	return func(c *config) {
		c.onStart = fn
	}
}

func (c *config) spawnOpts() []tether.SpawnOption {
	if c.onStart == nil {
		return nil
	}
	return []tether.SpawnOption{tether.WithOnStart(c.onStart)}
}
