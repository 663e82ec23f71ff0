// Package hello is the first program of the week.
package hello

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"
)

func Add(a, b int) int {
	return a + b
}

// SortArray returns a sorted copy of arr.
func SortArray(arr []int) []int {
	out := slices.Clone(arr)
	slices.Sort(out)
	return out
}

// RandomArray returns n values in [1, 100].
func RandomArray(rng *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(100) + 1
	}
	return out
}

func SumAverage(numbers []int) (int, float64) {
	if len(numbers) == 0 {
		return 0, 0
	}
	sum := 0
	for _, n := range numbers {
		sum += n
	}
	return sum, float64(sum) / float64(len(numbers))
}

// Run prints the program. A nil rng is seeded randomly.
func Run(_ context.Context, w io.Writer, rng *rand.Rand) error {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var b strings.Builder
	fmt.Fprintln(&b, "Hello, World!")
	fmt.Fprintln(&b, Add(5, 3))
	fmt.Fprintln(&b, SortArray(RandomArray(rng, 10)))

	for i := range 3 {
		fmt.Fprintf(&b, "Iteration %d\n", i+1)
	}

	person := map[string]any{"name": "Alice", "age": 30}
	fmt.Fprintln(&b, person)

	sum, avg := SumAverage([]int{1, 2, 3, 4, 5})
	fmt.Fprintf(&b, "Sum: %d, Average: %.1f\n", sum, avg)

	_, err := io.WriteString(w, b.String())
	return err
}
