package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ExponentialPlusLinear implements y = a * e^(alpha * x) + m*x + b
//
// This is the usual model of the ion-saturation side of a Langmuir probe
// sweep: the linear term tracks the slowly growing ion current and the
// exponential term the onset of the electron current.
type ExponentialPlusLinear struct {
	paramState
}

var _ Func = (*ExponentialPlusLinear)(nil)

// NewExponentialPlusLinear creates an exponential-plus-linear fit function.
func NewExponentialPlusLinear(a, alpha, m, b float64) *ExponentialPlusLinear {
	return &ExponentialPlusLinear{
		paramState: newParamState([]string{"a", "alpha", "m", "b"}, []float64{a, alpha, m, b}),
	}
}

// Type returns TypeExpPlusLinear.
func (e *ExponentialPlusLinear) Type() Type { return TypeExpPlusLinear }

// Eval calculates a * e^(alpha * x) + m*x + b.
func (e *ExponentialPlusLinear) Eval(x float64) float64 { return e.eval(x, e.params) }

// EvalErr calculates the function value and its propagated error.
func (e *ExponentialPlusLinear) EvalErr(x, xErr float64) (float64, float64) {
	return propagate(e, x, xErr)
}

// CurveFit fits a, alpha, m and b by non-linear least squares.
func (e *ExponentialPlusLinear) CurveFit(x, y []float64, opts ...CurveFitOption) error {
	return curveFit(e, x, y, opts)
}

// RootSolve finds a zero crossing by damped Newton iteration from x0.
// The returned error estimate is NaN.
func (e *ExponentialPlusLinear) RootSolve(x0 float64) (float64, float64, error) {
	root, err := newtonRoot(e, x0)
	return root, math.NaN(), err
}

// String returns the formula with the current parameters.
func (e *ExponentialPlusLinear) String() string {
	return fmt.Sprintf("f(x) = %.4g exp(%.4g x) + %.4g x + %.4g",
		e.params[0], e.params[1], e.params[2], e.params[3])
}

func (e *ExponentialPlusLinear) eval(x float64, p []float64) float64 {
	return p[0]*math.Exp(p[1]*x) + p[2]*x + p[3]
}

func (e *ExponentialPlusLinear) grad(dst []float64, x float64, p []float64) {
	exp := math.Exp(p[1] * x)
	dst[0] = exp
	dst[1] = p[0] * x * exp
	dst[2] = x
	dst[3] = 1
}

func (e *ExponentialPlusLinear) slope(x float64, p []float64) float64 {
	return p[0]*p[1]*math.Exp(p[1]*x) + p[2]
}

// guess fits the line on the lower half of x, where the exponential term is
// smallest, then estimates the exponential from what the line leaves over.
func (e *ExponentialPlusLinear) guess(x, y []float64) []float64 {
	lx, ly := lowerHalf(x, y)
	b, m := stat.LinearRegression(lx, ly, nil, false)
	if !isFinite(m) || !isFinite(b) {
		m, b = 0, stat.Mean(ly, nil)
	}

	a, alpha := expGuess(x, y, func(xi float64) float64 { return m*xi + b })

	return []float64{a, alpha, m, b}
}
