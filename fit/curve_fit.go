package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/langmuir/errs"
)

// checkSamples validates the sample slices for a model with nParams parameters.
func checkSamples(x, y []float64, nParams int) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x vs %d y", errs.ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < nParams {
		return fmt.Errorf("%w: %d points for %d parameters", errs.ErrInsufficientPoints, len(x), nParams)
	}
	for i := range x {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return fmt.Errorf("%w: index %d", errs.ErrNonFiniteSample, i)
		}
	}

	return nil
}

// curveFit runs a non-linear least-squares fit of m to (x, y) and stores the
// fitted parameters, their errors and R² in m.
//
// The sum of squared residuals is minimized with BFGS using the analytic
// gradient. If BFGS fails or lands on a non-finite point the fit is retried
// with Nelder-Mead from the same start, and the better of the two is kept.
func curveFit(m model, x, y []float64, opts []CurveFitOption) error {
	s := m.state()
	if err := checkSamples(x, y, len(s.names)); err != nil {
		return err
	}

	cfg, err := newCurveFitConfig(opts)
	if err != nil {
		return err
	}

	start := cfg.initialGuess
	if start == nil {
		start = m.guess(x, y)
	} else if len(start) != len(s.names) {
		return fmt.Errorf("%w: initial guess has %d values, expected %d",
			errs.ErrParamCount, len(start), len(s.names))
	}
	if !allFinite(start) {
		return fmt.Errorf("%w: non-finite starting point %v", errs.ErrFitDidNotConverge, start)
	}

	partials := make([]float64, len(s.names))
	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			return sumSquaredResiduals(m, x, y, p)
		},
		Grad: func(grad, p []float64) {
			clear(grad)
			for i := range x {
				r := y[i] - m.eval(x[i], p)
				m.grad(partials, x[i], p)
				for j, d := range partials {
					grad[j] -= 2 * r * d
				}
			}
		},
	}
	settings := &optimize.Settings{
		MajorIterations: cfg.maxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-15,
			Relative:   1e-12,
			Iterations: 50,
		},
	}

	res, err := optimize.Minimize(problem, start, settings, &optimize.BFGS{})
	best := candidate(res, err)
	if err != nil || best == nil || !isFinite(best.F) {
		fallback := candidate(optimize.Minimize(problem, start, settings, &optimize.NelderMead{}))
		if fallback != nil && (best == nil || !(best.F <= fallback.F)) {
			best = fallback
		}
	}
	if best == nil || !isFinite(best.F) || !allFinite(best.X) {
		return errs.ErrFitDidNotConverge
	}

	store(m, x, y, best.X)

	return nil
}

// candidate returns the optimizer location when it is usable. Gonum reports
// some benign terminations (line search stalls near the optimum) as errors
// while still returning the best location found.
func candidate(res *optimize.Result, err error) *optimize.Location {
	if res == nil {
		return nil
	}
	if err != nil && !allFinite(res.X) {
		return nil
	}

	return &res.Location
}

// store writes params into m along with their standard errors and R².
func store(m model, x, y, params []float64) {
	s := m.state()
	copy(s.params, params)
	copy(s.errs, paramErrors(m, x, y, params))

	predicted := make([]float64, len(x))
	for i := range x {
		predicted[i] = m.eval(x[i], params)
	}
	s.rsq = stat.RSquaredFrom(predicted, y, nil)
}

func sumSquaredResiduals(m model, x, y, p []float64) float64 {
	sum := 0.0
	for i := range x {
		r := y[i] - m.eval(x[i], p)
		sum += r * r
	}

	return sum
}

// paramErrors estimates the parameter standard errors from the Jacobian at
// the optimum: sqrt(diag(s² (JᵀJ)⁻¹)) with s² = SSR / (n - p).
// Errors are +Inf when the covariance cannot be estimated.
func paramErrors(m model, x, y, params []float64) []float64 {
	n, k := len(x), len(params)
	out := make([]float64, k)
	if n <= k {
		fill(out, math.Inf(1))
		return out
	}

	jac := mat.NewDense(n, k, nil)
	row := make([]float64, k)
	for i := range n {
		m.grad(row, x[i], params)
		jac.SetRow(i, row)
	}

	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)

	var cov mat.Dense
	if err := cov.Inverse(&jtj); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			fill(out, math.Inf(1))
			return out
		}
	}

	s2 := sumSquaredResiduals(m, x, y, params) / float64(n-k)
	for i := range k {
		v := cov.At(i, i) * s2
		if v < 0 || !isFinite(v) {
			out[i] = math.Inf(1)
			continue
		}
		out[i] = math.Sqrt(v)
	}

	return out
}

// RMSE returns the root mean square error of f over the samples.
func RMSE(f Func, x, y []float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return math.NaN()
	}

	predicted := make([]float64, len(x))
	for i := range x {
		predicted[i] = f.Eval(x[i])
	}

	return floats.Distance(y, predicted, 2) / math.Sqrt(float64(len(x)))
}

// expGuess estimates a and alpha of a*e^(alpha*x) from the residuals
// r = y - offset(x) by a log-linear regression over samples that share the
// sign of the largest-magnitude residual and are at least 1% of it.
func expGuess(x, y []float64, offset func(float64) float64) (a, alpha float64) {
	r := make([]float64, len(x))
	peak := 0
	for i := range x {
		r[i] = y[i] - offset(x[i])
		if math.Abs(r[i]) > math.Abs(r[peak]) {
			peak = i
		}
	}

	span := floats.Max(x) - floats.Min(x)
	if span == 0 {
		span = 1
	}

	// nothing left for the exponential to explain
	yScale := math.Max(math.Abs(floats.Max(y)), math.Abs(floats.Min(y)))
	if math.Abs(r[peak]) <= 1e-9*(1+yScale) {
		return 0, 1 / span
	}

	sign := 1.0
	if r[peak] < 0 {
		sign = -1
	}

	floor := 0.01 * math.Abs(r[peak])
	var lx, ly []float64
	for i := range r {
		if v := sign * r[i]; v > floor {
			lx = append(lx, x[i])
			ly = append(ly, math.Log(v))
		}
	}

	if len(lx) >= 2 && floats.Max(lx) > floats.Min(lx) {
		lnA, slope := stat.LinearRegression(lx, ly, nil, false)
		if isFinite(lnA) && isFinite(slope) && slope != 0 {
			return sign * math.Exp(lnA), slope
		}
	}

	alpha = 1 / span

	return r[peak] * math.Exp(-alpha*x[peak]), alpha
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func allFinite(vs []float64) bool {
	for _, v := range vs {
		if !isFinite(v) {
			return false
		}
	}

	return len(vs) > 0
}

func fill(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}
