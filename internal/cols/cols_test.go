package cols

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	ok := make([]float64, Rows*3)

	require.NotPanics(t, func() { Check(ok, ok, 3) })
	require.NotPanics(t, func() { Check(ok, ok, 1) })
	require.Panics(t, func() { Check(ok, ok, 0) })
	require.Panics(t, func() { Check(ok, ok, -1) })
	require.Panics(t, func() { Check(ok[:17], ok, 3) })
	require.Panics(t, func() { Check(ok, ok[:17], 3) })
}

func TestCheckVec(t *testing.T) {
	ok := make([]float64, Rows)

	require.NotPanics(t, func() { CheckVec(ok, ok) })
	require.Panics(t, func() { CheckVec(ok[:5], ok) })
	require.Panics(t, func() { CheckVec(ok, ok[:5]) })
}

func TestRangeCoversEveryColumnOnce(t *testing.T) {
	for _, n := range []int{1, 2, ColsPerStrip, MinParallelCols - 1, MinParallelCols, MinParallelCols + ColsPerStrip + 7} {
		seen := make([]int32, n)
		var mu sync.Mutex
		Range(n, func(lo, hi int) {
			require.LessOrEqual(t, 0, lo)
			require.Less(t, lo, hi)
			require.LessOrEqual(t, hi, n)
			mu.Lock()
			for c := lo; c < hi; c++ {
				seen[c]++
			}
			mu.Unlock()
		})
		for c, count := range seen {
			if count != 1 {
				t.Fatalf("n=%d: column %d visited %d times", n, c, count)
			}
		}
	}
}

func TestRangeSerialBelowThreshold(t *testing.T) {
	// A single callback for the whole range means no goroutines were
	// involved and column order is the natural one.
	calls := 0
	Range(MinParallelCols-1, func(lo, hi int) {
		calls++
		require.Equal(t, 0, lo)
		require.Equal(t, MinParallelCols-1, hi)
	})
	require.Equal(t, 1, calls)
}

func TestDenseRoundTrip(t *testing.T) {
	const n = 4
	s := make([]float64, Rows*n)
	for i := range s {
		s[i] = float64(i)
	}

	d := DenseFromSet(s, n)
	require.Equal(t, s[0], d.At(0, 0))
	require.Equal(t, s[Rows], d.At(0, 1))
	require.Equal(t, s[Rows+1], d.At(1, 1))

	out := make([]float64, len(s))
	StoreDense(d, out, n)
	require.Equal(t, s, out)
}
