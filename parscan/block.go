// Package parscan searches a slice in parallel by splitting it into
// contiguous, non-overlapping blocks and scanning each block on its own
// guarded goroutine.
//
// The design needs zero shared mutable state between workers: each worker
// owns a read-only index range and writes its outcome to a result slot no
// other worker references, so aggregation is race-free without locking.
// Worker lifecycles are protected by [tether.JoinGuard]s, so every
// spawned worker is joined before [Find] returns, on every exit path.
//
// [Find] reports whether a target value occurs anywhere in the slice;
// [FindFunc] generalizes to a predicate; [Index] additionally reports the
// position of the first occurrence. [Plan] exposes the block partitioning
// itself.
package parscan

import "fmt"

// Block is a half-open index range [Start, End) over the searched slice,
// assigned to exactly one worker. Blocks produced by [Plan] are
// contiguous, disjoint, and cover the whole slice.
type Block struct {
	Start int
	End   int
}

// Len returns the number of indexes the block covers.
func (b Block) Len() int {
	return b.End - b.Start
}

func (b Block) String() string {
	return fmt.Sprintf("[%d,%d)", b.Start, b.End)
}

// PartitionError reports an invalid sequence-length/block-count
// combination. It is detected before any worker is spawned, so no cleanup
// is needed when it is returned.
type PartitionError struct {
	// N is the sequence length.
	N int

	// Blocks is the requested block count.
	Blocks int

	Reason string
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("parscan: cannot split %d elements into %d blocks: %s",
		e.N, e.Blocks, e.Reason)
}

// Plan splits [0, n) into at most k contiguous, non-overlapping blocks.
//
// Each of the first k-1 blocks covers n/k indexes; the last block absorbs
// the remainder. The result is a pure function of (n, k): blocks union to
// exactly [0, n) with no gaps and no overlaps. When n < k the block count
// degrades to n, one element per block; when n == 0 the plan is empty.
//
// Plan returns a [*PartitionError] if k < 1.
func Plan(n, k int) ([]Block, error) {
	if k < 1 {
		return nil, &PartitionError{N: n, Blocks: k, Reason: "block count must be at least 1"}
	}
	if n < 0 {
		return nil, &PartitionError{N: n, Blocks: k, Reason: "negative length"}
	}
	if n == 0 {
		return nil, nil
	}
	if k > n {
		k = n
	}

	size := n / k
	blocks := make([]Block, k)
	for i := range blocks {
		blocks[i] = Block{Start: i * size, End: (i + 1) * size}
	}
	// The remainder (n mod k elements) goes to the last block.
	blocks[k-1].End = n
	return blocks, nil
}
