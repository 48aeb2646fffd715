package tether_test

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/baxromumarov/tether"
)

// TestMain verifies that no test in this package leaks a goroutine: the
// join-exactly-once discipline must leave nothing running behind it.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestJoinLeavesNoGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	for i := 0; i < 50; i++ {
		h := tether.Spawn("short-lived", func() {})
		if err := h.Join(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestGuardedScopeLeavesNoGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	func() {
		for i := 0; i < 10; i++ {
			defer tether.Guard(tether.Spawn("guarded", func() {})).Finish()
		}
	}()
}
