package tether_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baxromumarov/tether"
)

func TestSpawnJoin(t *testing.T) {
	var ran bool
	h := tether.Spawn("worker", func() {
		ran = true
	})

	require.NoError(t, h.Join())
	assert.True(t, ran, "entry's writes must be visible after Join")
	assert.False(t, h.Joinable())
}

func TestJoinTwice(t *testing.T) {
	h := tether.Spawn("worker", func() {})
	require.NoError(t, h.Join())

	err := h.Join()
	require.Error(t, err)
	assert.True(t, tether.IsLifecycleError(err))

	var le *tether.LifecycleError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "Join", le.Op)
	assert.Equal(t, "joined", le.State)
}

func TestDetach(t *testing.T) {
	done := make(chan struct{})
	h := tether.Spawn("detached", func() {
		close(done)
	})

	require.NoError(t, h.Detach())
	assert.False(t, h.Joinable())

	// The detached goroutine keeps running independently.
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("detached entry never ran")
	}
}

func TestJoinAfterDetach(t *testing.T) {
	done := make(chan struct{})
	h := tether.Spawn("worker", func() { close(done) })
	require.NoError(t, h.Detach())

	err := h.Join()
	require.Error(t, err)
	assert.True(t, tether.IsLifecycleError(err))
	<-done
}

func TestDetachAfterJoin(t *testing.T) {
	h := tether.Spawn("worker", func() {})
	require.NoError(t, h.Join())
	assert.Error(t, h.Detach())
}

func TestCloseWhileJoinable(t *testing.T) {
	release := make(chan struct{})
	h := tether.Spawn("leaky", func() { <-release })

	err := h.Close()
	require.Error(t, err, "closing an unfinalized handle must not be silent")
	assert.True(t, tether.IsLifecycleError(err))
	assert.Contains(t, err.Error(), "still joinable")

	close(release)
	require.NoError(t, h.Join())
	assert.NoError(t, h.Close())
}

func TestCloseAfterDetach(t *testing.T) {
	done := make(chan struct{})
	h := tether.Spawn("worker", func() { close(done) })
	require.NoError(t, h.Detach())
	assert.NoError(t, h.Close())
	<-done
}

func TestConcurrentFinalizeExactlyOnce(t *testing.T) {
	// Join and Detach racing from many goroutines must finalize the
	// handle exactly once; all losers get a LifecycleError.
	for trial := 0; trial < 100; trial++ {
		h := tether.Spawn("contended", func() {})

		const callers = 8
		errs := make([]error, callers)
		var wg sync.WaitGroup
		wg.Add(callers)
		for i := 0; i < callers; i++ {
			go func() {
				defer wg.Done()
				if i%2 == 0 {
					errs[i] = h.Join()
				} else {
					errs[i] = h.Detach()
				}
			}()
		}
		wg.Wait()

		var winners int
		for _, err := range errs {
			if err == nil {
				winners++
			} else if !tether.IsLifecycleError(err) {
				t.Fatalf("unexpected error kind: %v", err)
			}
		}
		if winners != 1 {
			t.Fatalf("expected exactly 1 successful finalization, got %d", winners)
		}
		// Whoever lost, the handle must leave the joinable state.
		if h.Joinable() {
			t.Fatal("handle still joinable after concurrent finalization")
		}
	}
}

func TestRecoveredPanic(t *testing.T) {
	h := tether.Spawn("panicky", func() {
		panic("contained boom")
	})

	require.NoError(t, h.Join(), "entry panic must not surface through Join")

	pe := h.Recovered()
	require.NotNil(t, pe)
	assert.Equal(t, "contained boom", pe.Value)
	assert.Contains(t, pe.Stack, "goroutine")
}

func TestRecoveredNilOnSuccess(t *testing.T) {
	h := tether.Spawn("ok", func() {})
	require.NoError(t, h.Join())
	assert.Nil(t, h.Recovered())
}

func TestSpawnNilEntryPanics(t *testing.T) {
	assert.PanicsWithValue(t, "tether: Spawn entry must not be nil", func() {
		tether.Spawn("bad", nil)
	})
}

func TestHandleName(t *testing.T) {
	h := tether.Spawn("named", func() {})
	assert.Equal(t, "named", h.Name())
	require.NoError(t, h.Join())
}

func TestSpawnHooks(t *testing.T) {
	var mu sync.Mutex
	var started string
	var elapsed time.Duration

	h := tether.Spawn("hooked",
		func() { time.Sleep(5 * time.Millisecond) },
		tether.WithOnStart(func(name string) {
			mu.Lock()
			started = name
			mu.Unlock()
		}),
		tether.WithOnDone(func(name string, d time.Duration) {
			mu.Lock()
			elapsed = d
			mu.Unlock()
		}),
	)
	require.NoError(t, h.Join())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "hooked", started)
	assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
}

func TestOnDoneRunsAfterPanic(t *testing.T) {
	var called bool
	var mu sync.Mutex

	h := tether.Spawn("panicky",
		func() { panic("boom") },
		tether.WithOnDone(func(string, time.Duration) {
			mu.Lock()
			called = true
			mu.Unlock()
		}),
	)
	require.NoError(t, h.Join())

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, called, "OnDone must fire even when the entry panicked")
}
