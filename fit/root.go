package fit

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/langmuir/errs"
)

const (
	maxRootIterations = 200
	rootTolerance     = 1e-12
)

// newtonRoot finds a zero of m near x0 with Newton steps that are halved
// until |f| decreases.
func newtonRoot(m model, x0 float64) (float64, error) {
	p := m.state().params
	x := x0
	f := m.eval(x, p)
	scale := 1 + math.Abs(f)

	for range maxRootIterations {
		if f == 0 {
			return x, nil
		}

		d := m.slope(x, p)
		if d == 0 || !isFinite(d) {
			break
		}

		step := f / d
		next := x - step
		fNext := m.eval(next, p)
		for k := 0; k < 50 && !(math.Abs(fNext) < math.Abs(f)); k++ {
			step /= 2
			next = x - step
			fNext = m.eval(next, p)
		}

		if math.Abs(next-x) <= rootTolerance*(1+math.Abs(x)) {
			if math.Abs(fNext) <= 1e-8*scale {
				return next, nil
			}

			break
		}
		x, f = next, fNext
	}

	return math.NaN(), fmt.Errorf("%w: no convergence from x0=%g", errs.ErrNoRoot, x0)
}

// lowerHalf returns the samples in the lower half of x.
func lowerHalf(x, y []float64) ([]float64, []float64) {
	return lowerFraction(x, y, 2)
}

// lowerFraction returns the samples with the smallest x values, keeping
// 1/parts of them but never fewer than two (or all, if fewer exist).
func lowerFraction(x, y []float64, parts int) ([]float64, []float64) {
	n := len(x)
	keep := (n + parts - 1) / parts
	keep = max(keep, min(n, 2))

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(x[a], x[b])
	})

	lx := make([]float64, keep)
	ly := make([]float64, keep)
	for i, j := range idx[:keep] {
		lx[i] = x[j]
		ly[i] = y[j]
	}

	return lx, ly
}
