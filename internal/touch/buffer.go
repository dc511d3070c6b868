package touch

import "time"

// Buffer queues actions between input sampling and the simulation tick.
// Actions older than the max age are discarded on Drain.
type Buffer struct {
	maxAge time.Duration
	items  []Action
}

// NewBuffer creates a buffer that keeps actions for maxAge.
func NewBuffer(maxAge time.Duration) *Buffer {
	return &Buffer{maxAge: maxAge}
}

// Push appends actions in order.
func (b *Buffer) Push(actions ...Action) {
	b.items = append(b.items, actions...)
}

// Len returns the number of queued actions.
func (b *Buffer) Len() int { return len(b.items) }

// Drain returns the still-fresh actions in FIFO order and empties the buffer.
func (b *Buffer) Drain(now time.Duration) []Action {
	var out []Action
	for _, a := range b.items {
		if now-a.At <= b.maxAge {
			out = append(out, a)
		}
	}
	b.items = b.items[:0]
	return out
}
