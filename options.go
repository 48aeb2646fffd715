package tether

import "time"

type spawnConfig struct {
	onStart func(name string)
	onDone  func(name string, elapsed time.Duration)
}

// SpawnOption configures a [Spawn] call.
type SpawnOption func(*spawnConfig)

// WithOnStart registers a hook invoked when the entry function begins
// executing. The hook runs inside the spawned goroutine before the entry.
func WithOnStart(fn func(name string)) SpawnOption {
	return func(c *spawnConfig) {
		c.onStart = fn
	}
}

// WithOnDone registers a hook invoked when the entry function finishes,
// with its wall-clock duration. The hook runs inside the spawned
// goroutine after the entry returns, including when the entry panicked.
func WithOnDone(fn func(name string, elapsed time.Duration)) SpawnOption {
	return func(c *spawnConfig) {
		c.onDone = fn
	}
}
