// Package core provides the internal implementation of the closures library's
// stateful callable factories.
package core

import (
	"golang.org/x/exp/constraints"
)

// Multiplier is an explicit closure: a callable unit that multiplies its
// input by a factor captured at creation time and counts its own invocations.
// Each instance exclusively owns its factor and counter; two instances never
// share state, even when created with equal factors.
//
// A Multiplier is not safe for concurrent use. Share a SyncMultiplier across
// goroutines instead.
type Multiplier[T Number] struct {
	factor T
	count  int
}

// NewMultiplier creates a multiplier bound to factor. It always succeeds; the
// returned instance starts with a zero invocation count.
func NewMultiplier[T Number](factor T) *Multiplier[T] {
	return &Multiplier[T]{factor: factor}
}

// Count returns how many times Invoke has been called on this instance.
func (m *Multiplier[T]) Count() int {
	return m.count
}

// Factor returns the captured factor.
func (m *Multiplier[T]) Factor() T {
	return m.factor
}

// Func returns m's behavior as a plain function value. The returned closure
// is bound to m: calls through it increment the same counter as direct
// Invoke calls.
func (m *Multiplier[T]) Func() func(T) T {
	return m.Invoke
}

// Invoke records the call, then returns x multiplied by the captured factor.
// Integer instantiations wrap around on overflow per Go's fixed-width
// arithmetic; instantiate with a floating-point type when that matters.
func (m *Multiplier[T]) Invoke(x T) T {
	m.count++

	return x * m.factor
}

// Number constrains the numeric types a multiplier can capture: any integer
// or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}
