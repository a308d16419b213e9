package fit

import (
	"fmt"
	"math"

	"github.com/arloliu/langmuir/errs"
)

// Exponential implements the exponential model: y = a * e^(alpha * x)
type Exponential struct {
	paramState
}

var _ Func = (*Exponential)(nil)

// NewExponential creates an exponential fit function.
func NewExponential(a, alpha float64) *Exponential {
	return &Exponential{paramState: newParamState([]string{"a", "alpha"}, []float64{a, alpha})}
}

// Type returns TypeExponential.
func (e *Exponential) Type() Type { return TypeExponential }

// Eval calculates a * e^(alpha * x).
func (e *Exponential) Eval(x float64) float64 { return e.eval(x, e.params) }

// EvalErr calculates a * e^(alpha * x) and its propagated error.
func (e *Exponential) EvalErr(x, xErr float64) (float64, float64) { return propagate(e, x, xErr) }

// CurveFit fits a and alpha by non-linear least squares.
func (e *Exponential) CurveFit(x, y []float64, opts ...CurveFitOption) error {
	return curveFit(e, x, y, opts)
}

// RootSolve always fails: a pure exponential never crosses zero.
func (e *Exponential) RootSolve(_ float64) (float64, float64, error) {
	return math.NaN(), math.NaN(), fmt.Errorf("%w: %s", errs.ErrNoRoot, e)
}

// String returns the formula with the current parameters.
func (e *Exponential) String() string {
	return fmt.Sprintf("f(x) = %.4g exp(%.4g x)", e.params[0], e.params[1])
}

func (e *Exponential) eval(x float64, p []float64) float64 {
	return p[0] * math.Exp(p[1]*x)
}

func (e *Exponential) grad(dst []float64, x float64, p []float64) {
	exp := math.Exp(p[1] * x)
	dst[0] = exp
	dst[1] = p[0] * x * exp
}

func (e *Exponential) slope(x float64, p []float64) float64 {
	return p[0] * p[1] * math.Exp(p[1]*x)
}

func (e *Exponential) guess(x, y []float64) []float64 {
	a, alpha := expGuess(x, y, func(float64) float64 { return 0 })
	return []float64{a, alpha}
}
