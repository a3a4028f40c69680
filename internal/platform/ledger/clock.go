package ledger

import "sync/atomic"

// Clock is the process-local stand-in for the host chain's block height.
// The engine only ever reads it; advancing it is a host concern. Off-ledger
// runtimes (local API, tests) advance it explicitly.
type Clock struct {
	height atomic.Uint64
}

func NewClock(initial uint64) *Clock {
	c := &Clock{}
	c.height.Store(initial)
	return c
}

// Height returns the current ledger height.
func (c *Clock) Height() uint64 {
	return c.height.Load()
}

// Advance moves the clock forward by delta blocks and returns the new height.
func (c *Clock) Advance(delta uint64) uint64 {
	return c.height.Add(delta)
}

// Set jumps the clock to an absolute height. Intended for host wiring and
// deterministic tests; never call it from engine code.
func (c *Clock) Set(height uint64) {
	c.height.Store(height)
}
