package tether

import "sync"

// Counter is a mutex-guarded integer cell safe for concurrent use. Every
// read and mutation holds the counter's internal lock for the duration of
// the access, so for any interleaving of I increments and D decrements
// issued across any number of goroutines, [Counter.Read] returns exactly
// initial + I - D once all callers have completed. The underlying integer
// is never reachable without the lock.
//
// The zero value is a usable counter starting at zero.
type Counter struct {
	mu       sync.Mutex
	val      int64
	poisoned bool
}

// NewCounter returns a [Counter] starting at initial.
func NewCounter(initial int64) *Counter {
	return &Counter{val: initial}
}

// Increment adds one to the counter.
// It returns [ErrPoisoned] if the counter has been poisoned.
func (c *Counter) Increment() error {
	return c.Add(1)
}

// Decrement subtracts one from the counter.
// It returns [ErrPoisoned] if the counter has been poisoned.
func (c *Counter) Decrement() error {
	return c.Add(-1)
}

// Add adds delta to the counter as one atomic read-modify-write.
// It returns [ErrPoisoned] if the counter has been poisoned.
func (c *Counter) Add(delta int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.poisoned {
		return ErrPoisoned
	}
	c.val += delta
	return nil
}

// Read returns the current value. It acquires the lock, so the value is
// never torn and observes every mutation that completed before the call.
// It returns [ErrPoisoned] if the counter has been poisoned.
func (c *Counter) Read() (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.poisoned {
		return 0, ErrPoisoned
	}
	return c.val, nil
}

// Update replaces the value with fn(value) under the lock, making
// arbitrary read-modify-write sequences atomic with respect to all other
// counter operations.
//
// If fn panics while holding the lock, the counter is marked poisoned and
// the panic is re-raised to the caller. Every subsequent operation on a
// poisoned counter returns [ErrPoisoned]: the value may have been left in
// an inconsistent intermediate state and must not be trusted.
func (c *Counter) Update(fn func(int64) int64) error {
	if fn == nil {
		panic("tether: Counter.Update requires a non-nil fn")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.poisoned {
		return ErrPoisoned
	}

	defer func() {
		if r := recover(); r != nil {
			c.poisoned = true
			panic(r)
		}
	}()
	c.val = fn(c.val)
	return nil
}
