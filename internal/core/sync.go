package core

import (
	"sync"
)

// SyncMultiplier is a multiplier safe for concurrent use: a mutex guards the
// invocation counter so increments are never lost when one instance is shared
// across goroutines. The factor is immutable after creation and needs no
// guarding.
type SyncMultiplier[T Number] struct {
	mu     sync.Mutex // Protects count
	factor T
	count  int
}

// NewSyncMultiplier creates a concurrency-safe multiplier bound to factor,
// starting with a zero invocation count.
func NewSyncMultiplier[T Number](factor T) *SyncMultiplier[T] {
	return &SyncMultiplier[T]{factor: factor}
}

// Count returns a snapshot of how many times Invoke has been called.
func (m *SyncMultiplier[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.count
}

// Factor returns the captured factor.
func (m *SyncMultiplier[T]) Factor() T {
	return m.factor
}

// Func returns m's behavior as a plain function value bound to m's counter.
func (m *SyncMultiplier[T]) Func() func(T) T {
	return m.Invoke
}

// Invoke records the call, then returns x multiplied by the captured factor.
func (m *SyncMultiplier[T]) Invoke(x T) T {
	m.mu.Lock()
	m.count++
	m.mu.Unlock()

	return x * m.factor
}
