// Package closures provides explicit stateful callables for Go: units of
// behavior created by a factory, each pairing a function with private mutable
// state that no other instance can see or share.
//
// The core construct is the multiplier, a callable that multiplies its input
// by a factor captured at creation time and counts its own invocations:
//
//	timesThree := closures.New(3)
//	timesThree.Invoke(10) // 30
//	timesThree.Invoke(20) // 60
//	timesThree.Count()    // 2
//
// This is the public API entry point. Implementation lives in internal/core.
package closures

import (
	"github.com/toejough/closures/internal/core"
)

// Multiplier is a single-threaded multiplier instance. Each one exclusively
// owns its captured factor and its invocation counter.
type Multiplier[T Number] = core.Multiplier[T]

// New creates an independent multiplier bound to factor. It always succeeds,
// and the returned instance starts with a zero invocation count.
func New[T Number](factor T) *Multiplier[T] {
	return core.NewMultiplier(factor)
}

// Number constrains the numeric types a multiplier can capture: any integer
// or floating-point type.
type Number = core.Number

// SyncMultiplier is a multiplier safe for concurrent use from multiple
// goroutines; counter increments are never lost.
type SyncMultiplier[T Number] = core.SyncMultiplier[T]

// NewSync creates an independent concurrency-safe multiplier bound to factor.
func NewSync[T Number](factor T) *SyncMultiplier[T] {
	return core.NewSyncMultiplier(factor)
}
