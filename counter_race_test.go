//go:build !race

package tether_test

import (
	"sync"
	"testing"
)

// TestUnsyncCounterDrifts is the companion negative demonstration: the
// same increment/decrement workload as TestCounterNoLostUpdates, but on a
// bare shared integer with no lock. The read-modify-write interleavings
// lose updates, so across enough trials at least one run drifts away from
// zero. Excluded under the race detector, which would (correctly) flag
// the intentional races before the drift could be observed.
func TestUnsyncCounterDrifts(t *testing.T) {
	if testing.Short() {
		t.Skip("drift demonstration is slow")
	}

	const (
		trials  = 10
		workers = 4
		iters   = 200_000
	)

	var drifted bool
	for trial := 0; trial < trials && !drifted; trial++ {
		var counter int64 // intentionally unguarded
		var wg sync.WaitGroup

		wg.Add(2 * workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := 0; i < iters; i++ {
					counter++ // data race: unsynchronized RMW
				}
			}()
			go func() {
				defer wg.Done()
				for i := 0; i < iters; i++ {
					counter-- // data race: unsynchronized RMW
				}
			}()
		}
		wg.Wait()

		if counter != 0 {
			t.Logf("trial %d: unsynchronized counter drifted to %d", trial, counter)
			drifted = true
		}
	}

	if !drifted {
		t.Errorf("no drift observed in %d trials; the motivating race did not reproduce", trials)
	}
}
