// closures/closuredemo prints a short demonstration of the closures library:
// two independent multiplier instances, their private invocation counters, and
// a floating-point instantiation. To use it, install it with
// `go install github.com/toejough/closures/closuredemo@latest` and run
// `closuredemo`.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/toejough/closures"
)

// main is the entry point of the closuredemo tool.
func main() {
	if _, err := os.Stdout.WriteString(demo()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// demo renders the demonstration transcript. Rendering is separated from
// writing so tests can assert on the transcript without capturing stdout.
func demo() string {
	var out strings.Builder

	timesThree := closures.New(3)
	timesFive := closures.New(5)

	out.WriteString("Using timesThree:\n")
	report(&out, timesThree, 10)
	report(&out, timesThree, 20)

	out.WriteString("\nUsing timesFive:\n")
	report(&out, timesFive, 10)
	report(&out, timesFive, 7)

	out.WriteString("\nUsing a float factor:\n")
	half := closures.New(0.5)
	fmt.Fprintf(&out, "  Result: %v\n", half.Invoke(5))

	fmt.Fprintf(&out, "\ntimesThree was called %d times; timesFive was called %d times\n",
		timesThree.Count(), timesFive.Count())

	return out.String()
}

// report invokes m with x and appends the call count and result to out.
func report(out *strings.Builder, m *closures.Multiplier[int], x int) {
	result := m.Invoke(x)
	fmt.Fprintf(out, "  Multiply called %d times\n", m.Count())
	fmt.Fprintf(out, "  Result: %d\n", result)
}
