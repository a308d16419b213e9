package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/langmuir/errs"
)

// ExponentialPlusOffset implements y = a * e^(alpha * x) + b
type ExponentialPlusOffset struct {
	paramState
}

var _ Func = (*ExponentialPlusOffset)(nil)

// NewExponentialPlusOffset creates an exponential-plus-offset fit function.
func NewExponentialPlusOffset(a, alpha, b float64) *ExponentialPlusOffset {
	return &ExponentialPlusOffset{
		paramState: newParamState([]string{"a", "alpha", "b"}, []float64{a, alpha, b}),
	}
}

// Type returns TypeExpPlusOffset.
func (e *ExponentialPlusOffset) Type() Type { return TypeExpPlusOffset }

// Eval calculates a * e^(alpha * x) + b.
func (e *ExponentialPlusOffset) Eval(x float64) float64 { return e.eval(x, e.params) }

// EvalErr calculates the function value and its propagated error.
func (e *ExponentialPlusOffset) EvalErr(x, xErr float64) (float64, float64) {
	return propagate(e, x, xErr)
}

// CurveFit fits a, alpha and b by non-linear least squares.
func (e *ExponentialPlusOffset) CurveFit(x, y []float64, opts ...CurveFitOption) error {
	return curveFit(e, x, y, opts)
}

// RootSolve returns ln(-b/a)/alpha with its propagated error. x0 is unused.
func (e *ExponentialPlusOffset) RootSolve(_ float64) (float64, float64, error) {
	a, alpha, b := e.params[0], e.params[1], e.params[2]
	if a == 0 || alpha == 0 || -b/a <= 0 {
		return math.NaN(), math.NaN(), fmt.Errorf("%w: %s", errs.ErrNoRoot, e)
	}

	root := math.Log(-b/a) / alpha

	da := e.errs[0] / (a * alpha)
	dalpha := root / alpha * e.errs[1]
	db := e.errs[2] / (b * alpha)
	rootErr := math.Sqrt(da*da + dalpha*dalpha + db*db)

	return root, rootErr, nil
}

// String returns the formula with the current parameters.
func (e *ExponentialPlusOffset) String() string {
	return fmt.Sprintf("f(x) = %.4g exp(%.4g x) + %.4g", e.params[0], e.params[1], e.params[2])
}

func (e *ExponentialPlusOffset) eval(x float64, p []float64) float64 {
	return p[0]*math.Exp(p[1]*x) + p[2]
}

func (e *ExponentialPlusOffset) grad(dst []float64, x float64, p []float64) {
	exp := math.Exp(p[1] * x)
	dst[0] = exp
	dst[1] = p[0] * x * exp
	dst[2] = 1
}

func (e *ExponentialPlusOffset) slope(x float64, p []float64) float64 {
	return p[0] * p[1] * math.Exp(p[1]*x)
}

// guess takes the offset from the lowest quarter of x, where the exponential
// term is flattest.
func (e *ExponentialPlusOffset) guess(x, y []float64) []float64 {
	_, ly := lowerFraction(x, y, 4)
	b := stat.Mean(ly, nil)

	a, alpha := expGuess(x, y, func(float64) float64 { return b })

	return []float64{a, alpha, b}
}
