package closures_test

import (
	"sync"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/closures"
	"pgregory.net/rapid"
)

// TestNew_TimesThree verifies the basic multiply-and-count contract on a
// single instance.
func TestNew_TimesThree(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m := closures.New(3)

	g.Expect(m.Invoke(10)).To(Equal(30))
	g.Expect(m.Invoke(20)).To(Equal(60))
	g.Expect(m.Count()).To(Equal(2), "two invocations should be recorded")
}

// TestNew_IndependentInstances verifies that two instances never share
// counter state, even while both are in use.
func TestNew_IndependentInstances(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m := closures.New(3)
	g.Expect(m.Invoke(10)).To(Equal(30))
	g.Expect(m.Invoke(20)).To(Equal(60))

	m2 := closures.New(5)
	g.Expect(m2.Invoke(10)).To(Equal(50))
	g.Expect(m2.Invoke(7)).To(Equal(35))

	g.Expect(m2.Count()).To(Equal(2))
	g.Expect(m.Count()).To(Equal(2), "m2's invocations must not leak into m's counter")
}

// TestNew_SameFactor_SeparateCounters verifies independence holds even when
// the factors are equal.
func TestNew_SameFactor_SeparateCounters(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	first := closures.New(7)
	second := closures.New(7)

	first.Invoke(1)
	first.Invoke(2)
	first.Invoke(3)

	g.Expect(first.Count()).To(Equal(3))
	g.Expect(second.Count()).To(Equal(0), "untouched instance should still be at zero")
}

// TestNew_FloatFactor verifies a floating-point instantiation produces
// floating-point results.
func TestNew_FloatFactor(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m := closures.New(2.5)

	g.Expect(m.Invoke(2)).To(Equal(5.0))
	g.Expect(m.Count()).To(Equal(1))
}

// TestInvoke_MultipliesByFactor_Property proves Invoke returns x*f for any
// factor and input.
func TestInvoke_MultipliesByFactor_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		// Keep operands small enough that x*f can't overflow int64
		factor := rapid.Int64Range(-1_000_000, 1_000_000).Draw(rt, "factor")
		input := rapid.Int64Range(-1_000_000, 1_000_000).Draw(rt, "input")

		got := closures.New(factor).Invoke(input)
		if got != input*factor {
			rt.Fatalf("New(%d).Invoke(%d) = %d, want %d", factor, input, got, input*factor)
		}
	})
}

// TestInvoke_ZeroFactor_Property proves a zero factor annihilates any input.
func TestInvoke_ZeroFactor_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.Int64().Draw(rt, "input")

		got := closures.New(int64(0)).Invoke(input)
		if got != 0 {
			rt.Fatalf("New(0).Invoke(%d) = %d, want 0", input, got)
		}
	})
}

// TestCount_TracksInvocations_Property proves the counter after n calls is
// exactly n, regardless of the inputs passed.
func TestCount_TracksInvocations_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		factor := rapid.Int64().Draw(rt, "factor")
		inputs := rapid.SliceOfN(rapid.Int64(), 0, 100).Draw(rt, "inputs")

		m := closures.New(factor)
		for _, x := range inputs {
			m.Invoke(x)
		}

		if m.Count() != len(inputs) {
			rt.Fatalf("after %d invocations, Count() = %d", len(inputs), m.Count())
		}
	})
}

// TestFunc_SharesCounterWithInvoke verifies the bound function form routes
// through the same counter as direct Invoke calls.
func TestFunc_SharesCounterWithInvoke(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m := closures.New(4)
	double := m.Func()

	g.Expect(double(5)).To(Equal(20))
	g.Expect(m.Invoke(10)).To(Equal(40))
	g.Expect(double(10)).To(Equal(40))

	g.Expect(m.Count()).To(Equal(3), "bound-function calls and Invoke calls share one counter")
}

// TestNewSync_ConcurrentInvocations verifies a shared SyncMultiplier never
// loses counter increments under concurrent use.
func TestNewSync_ConcurrentInvocations(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	const (
		numGoroutines      = 100
		callsPerGoroutine  = 50
		expectedTotalCalls = numGoroutines * callsPerGoroutine
	)

	m := closures.NewSync(3)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()

			for i := range callsPerGoroutine {
				m.Invoke(i)
			}
		}()
	}

	wg.Wait()

	g.Expect(m.Count()).To(Equal(expectedTotalCalls), "no increments should be lost")
}

// TestNewSync_SameResults verifies the concurrency-safe variant keeps the
// same multiply contract as the plain one.
func TestNewSync_SameResults(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m := closures.NewSync(5)

	g.Expect(m.Invoke(10)).To(Equal(50))
	g.Expect(m.Invoke(7)).To(Equal(35))
	g.Expect(m.Count()).To(Equal(2))
}
