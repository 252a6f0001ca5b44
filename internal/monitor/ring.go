package monitor

import "sync"

// RingBuffer is a fixed-capacity history that overwrites its oldest entry once
// full. It is safe for concurrent use: Snapshot never observes a push in progress.
type RingBuffer[T any] struct {
	mu    sync.RWMutex
	data  []T
	head  int // next write position
	count int
}

// NewRingBuffer creates a ring buffer holding at most capacity values.
// Capacities below 1 are raised to 1.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer[T]{data: make([]T, capacity)}
}

// Push appends v, evicting the oldest value when at capacity.
func (r *RingBuffer[T]) Push(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// Snapshot returns the stored values oldest first. The slice is a copy.
func (r *RingBuffer[T]) Snapshot() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastLocked(r.count)
}

// Last returns up to n of the newest values, oldest first.
func (r *RingBuffer[T]) Last(n int) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastLocked(n)
}

// Len returns the number of stored values.
func (r *RingBuffer[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Cap returns the fixed capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}

// lastLocked copies the newest n values. Must be called with r.mu held.
func (r *RingBuffer[T]) lastLocked(n int) []T {
	if n > r.count {
		n = r.count
	}
	out := make([]T, n)
	if n == 0 {
		return out
	}

	size := len(r.data)
	// head points to the next write position, so the newest value is at head-1
	start := (r.head - n + size) % size
	for i := 0; i < n; i++ {
		out[i] = r.data[(start+i)%size]
	}
	return out
}
