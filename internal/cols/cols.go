// Package cols holds the shared scaffolding of the force/motion set
// kernels: shape validation for 6xN column-major sets, the column-range
// driver with its strip-parallel path, and gonum interop for the block
// reference implementations.
package cols

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Rows is the number of rows in a spatial column: a linear 3-block
// followed by an angular 3-block.
const Rows = 6

const (
	// MinParallelCols is the smallest column count worth parallelizing.
	// Dynamics-sized sets (Jacobians of trees with tens of joints) must
	// stay on the serial loop; per-column work is ~36 flops, so the strip
	// dispatch only pays off for very wide sets.
	// Tuned empirically - adjust based on benchmarks on target hardware.
	MinParallelCols = 1024

	// ColsPerStrip defines how many columns each worker processes at a
	// time. Large enough that a strip's input stays in cache and the
	// channel receive amortizes.
	ColsPerStrip = 256
)

// Check validates an input/output pair of 6xn column-major sets.
//
// Panics if:
//   - n < 1
//   - len(in) < 6*n
//   - len(out) < 6*n
func Check(in, out []float64, n int) {
	if n < 1 {
		panic(fmt.Sprintf("spatial set: column count %d, need at least 1", n))
	}
	if len(in) < Rows*n {
		panic(fmt.Sprintf("spatial set: input has %d values, need %d for %d columns", len(in), Rows*n, n))
	}
	if len(out) < Rows*n {
		panic(fmt.Sprintf("spatial set: output has %d values, need %d for %d columns", len(out), Rows*n, n))
	}
}

// CheckVec validates an input/output pair of single spatial columns.
//
// Panics if:
//   - len(in) < 6
//   - len(out) < 6
func CheckVec(in, out []float64) {
	if len(in) < Rows {
		panic(fmt.Sprintf("spatial vector: input has %d values, need %d", len(in), Rows))
	}
	if len(out) < Rows {
		panic(fmt.Sprintf("spatial vector: output has %d values, need %d", len(out), Rows))
	}
}

// Range runs fn over the half-open column ranges covering [0, n). Columns
// are independent in every set operation, so no ordering is guaranteed:
// below MinParallelCols the whole range is handed to fn once, above it the
// range is split into ColsPerStrip strips worked by GOMAXPROCS goroutines.
func Range(n int, fn func(lo, hi int)) {
	if n < MinParallelCols {
		fn(0, n)
		return
	}

	numStrips := (n + ColsPerStrip - 1) / ColsPerStrip

	// Work queue of column strips; workers drain it until empty.
	work := make(chan int, numStrips)
	for strip := 0; strip < numStrips; strip++ {
		work <- strip
	}
	close(work)

	workers := runtime.GOMAXPROCS(0)
	if workers > numStrips {
		workers = numStrips
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for strip := range work {
				lo := strip * ColsPerStrip
				hi := min(lo+ColsPerStrip, n)
				fn(lo, hi)
			}
		}()
	}
	wg.Wait()
}

// DenseFromSet copies a 6xn column-major set into a gonum dense matrix.
// Only the block reference implementations go through this; the production
// kernels never leave the flat representation.
func DenseFromSet(s []float64, n int) *mat.Dense {
	d := mat.NewDense(Rows, n, nil)
	for c := 0; c < n; c++ {
		col := s[c*Rows:]
		for r := 0; r < Rows; r++ {
			d.Set(r, c, col[r])
		}
	}
	return d
}

// StoreDense copies a 6xn gonum dense matrix back into a column-major set.
func StoreDense(d *mat.Dense, s []float64, n int) {
	for c := 0; c < n; c++ {
		col := s[c*Rows:]
		for r := 0; r < Rows; r++ {
			col[r] = d.At(r, c)
		}
	}
}
