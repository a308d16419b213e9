package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/langmuir/errs"
)

// Linear implements the linear model: y = m*x + b
type Linear struct {
	paramState
}

var _ Func = (*Linear)(nil)

// NewLinear creates a linear fit function with slope m and intercept b.
func NewLinear(m, b float64) *Linear {
	return &Linear{paramState: newParamState([]string{"m", "b"}, []float64{m, b})}
}

// NewLinearWithErrors creates a linear fit function with parameter errors.
func NewLinearWithErrors(m, b, mErr, bErr float64) *Linear {
	l := NewLinear(m, b)
	l.errs[0], l.errs[1] = mErr, bErr

	return l
}

// Type returns TypeLinear.
func (l *Linear) Type() Type { return TypeLinear }

// M returns the slope.
func (l *Linear) M() float64 { return l.params[0] }

// B returns the intercept.
func (l *Linear) B() float64 { return l.params[1] }

// Eval calculates m*x + b.
func (l *Linear) Eval(x float64) float64 { return l.eval(x, l.params) }

// EvalErr calculates m*x + b and its propagated error.
func (l *Linear) EvalErr(x, xErr float64) (float64, float64) { return propagate(l, x, xErr) }

// CurveFit fits the line by ordinary least squares. Options are accepted for
// interface compatibility and ignored.
func (l *Linear) CurveFit(x, y []float64, _ ...CurveFitOption) error {
	if err := checkSamples(x, y, 2); err != nil {
		return err
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	if !isFinite(intercept) || !isFinite(slope) {
		return fmt.Errorf("%w: degenerate x values", errs.ErrFitDidNotConverge)
	}

	store(l, x, y, []float64{slope, intercept})

	return nil
}

// RootSolve returns -b/m with its propagated error. x0 is unused.
func (l *Linear) RootSolve(_ float64) (float64, float64, error) {
	m, b := l.params[0], l.params[1]
	if m == 0 {
		return math.NaN(), math.NaN(), fmt.Errorf("%w: zero slope", errs.ErrNoRoot)
	}

	root := -b / m
	dm := b / (m * m) * l.errs[0]
	db := l.errs[1] / m

	return root, math.Hypot(dm, db), nil
}

// String returns the formula with the current parameters.
func (l *Linear) String() string {
	return fmt.Sprintf("f(x) = %.4g x + %.4g", l.params[0], l.params[1])
}

func (l *Linear) eval(x float64, p []float64) float64 {
	return p[0]*x + p[1]
}

func (l *Linear) grad(dst []float64, x float64, _ []float64) {
	dst[0] = x
	dst[1] = 1
}

func (l *Linear) slope(_ float64, p []float64) float64 {
	return p[0]
}

func (l *Linear) guess(x, y []float64) []float64 {
	intercept, slope := stat.LinearRegression(x, y, nil, false)
	return []float64{slope, intercept}
}
