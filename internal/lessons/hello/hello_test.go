package hello

import (
	"bytes"
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomArray_InRangeAndSorted(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	arr := RandomArray(rng, 10)
	require.Len(t, arr, 10)
	for _, v := range arr {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 100)
	}

	sorted := SortArray(arr)
	assert.True(t, slices.IsSorted(sorted))
	assert.ElementsMatch(t, arr, sorted)
}

func TestSumAverage(t *testing.T) {
	sum, avg := SumAverage([]int{1, 2, 3, 4, 5})
	assert.Equal(t, 15, sum)
	assert.InDelta(t, 3.0, avg, 1e-9)

	sum, avg = SumAverage(nil)
	assert.Zero(t, sum)
	assert.Zero(t, avg)
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), &buf, rand.New(rand.NewPCG(7, 7))))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Hello, World!", lines[0])
	assert.Equal(t, "8", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "[") && strings.HasSuffix(lines[2], "]"))
	assert.Equal(t, "Iteration 1", lines[3])
	assert.Equal(t, "Iteration 3", lines[5])
	assert.Equal(t, "map[age:30 name:Alice]", lines[6])
	assert.Equal(t, "Sum: 15, Average: 3.0", lines[7])
}

func TestRun_SameSeedSameOutput(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Run(context.Background(), &a, rand.New(rand.NewPCG(3, 4))))
	require.NoError(t, Run(context.Background(), &b, rand.New(rand.NewPCG(3, 4))))
	assert.Equal(t, a.String(), b.String())
}
