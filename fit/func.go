package fit

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/arloliu/langmuir/errs"
)

// Func defines the interface shared by every fit function.
//
// A Func carries its current parameters, their standard errors, and the
// coefficient of determination of the last CurveFit. Parameters can also be
// set directly with SetParams to evaluate a known model.
type Func interface {
	// Type returns the fit-function family.
	Type() Type
	// ParamNames returns the parameter names in the order used by Params.
	ParamNames() []string
	// Params returns a copy of the current parameter values.
	Params() []float64
	// ParamErrors returns a copy of the current parameter standard errors.
	ParamErrors() []float64
	// SetParams replaces the parameters. paramErrs may be nil, which zeroes
	// the errors. The number of values must match ParamNames.
	SetParams(params, paramErrs []float64) error
	// RSquared returns the coefficient of determination of the last fit,
	// or NaN if the function has not been fitted.
	RSquared() float64
	// Eval evaluates the function at x.
	Eval(x float64) float64
	// EvalErr evaluates the function at x and propagates the parameter
	// errors and xErr to first order.
	EvalErr(x, xErr float64) (y, yErr float64)
	// CurveFit fits the parameters to the (x, y) samples by least squares.
	CurveFit(x, y []float64, opts ...CurveFitOption) error
	// RootSolve returns the x where the function crosses zero and its
	// uncertainty. The uncertainty is NaN when it cannot be propagated.
	RootSolve(x0 float64) (root, rootErr float64, err error)
	// String returns a human-readable formula with the current parameters.
	String() string
}

// model is implemented by every concrete fit function so the shared fitting
// and error-propagation code can work on raw parameter vectors.
type model interface {
	Func
	eval(x float64, p []float64) float64
	// grad writes the partial derivatives with respect to each parameter.
	grad(dst []float64, x float64, p []float64)
	// slope returns the derivative with respect to x.
	slope(x float64, p []float64) float64
	// guess returns a starting point for iterative fitting.
	guess(x, y []float64) []float64
	state() *paramState
}

// paramState holds the parameters and fit statistics of a fit function.
type paramState struct {
	names  []string
	params []float64
	errs   []float64
	rsq    float64
}

func newParamState(names []string, params []float64) paramState {
	return paramState{
		names:  names,
		params: params,
		errs:   make([]float64, len(params)),
		rsq:    math.NaN(),
	}
}

func (s *paramState) ParamNames() []string { return slices.Clone(s.names) }

func (s *paramState) Params() []float64 { return slices.Clone(s.params) }

func (s *paramState) ParamErrors() []float64 { return slices.Clone(s.errs) }

func (s *paramState) RSquared() float64 { return s.rsq }

func (s *paramState) SetParams(params, paramErrs []float64) error {
	if len(params) != len(s.names) {
		return fmt.Errorf("%w: expected %d (%s), got %d",
			errs.ErrParamCount, len(s.names), strings.Join(s.names, ", "), len(params))
	}
	if paramErrs != nil && len(paramErrs) != len(s.names) {
		return fmt.Errorf("%w: expected %d parameter errors, got %d",
			errs.ErrParamCount, len(s.names), len(paramErrs))
	}

	copy(s.params, params)
	if paramErrs == nil {
		clear(s.errs)
	} else {
		copy(s.errs, paramErrs)
	}
	s.rsq = math.NaN()

	return nil
}

func (s *paramState) state() *paramState { return s }

// propagate evaluates m at x and combines the parameter errors and xErr in
// quadrature using the model's partial derivatives.
func propagate(m model, x, xErr float64) (float64, float64) {
	s := m.state()
	y := m.eval(x, s.params)

	partials := make([]float64, len(s.params))
	m.grad(partials, x, s.params)

	sum := 0.0
	for i, d := range partials {
		term := d * s.errs[i]
		sum += term * term
	}
	dx := m.slope(x, s.params) * xErr
	sum += dx * dx

	return y, math.Sqrt(sum)
}

// New creates a fit function of the given type with zeroed parameters.
func New(t Type) (Func, error) {
	switch t {
	case TypeLinear:
		return NewLinear(0, 0), nil
	case TypeExponential:
		return NewExponential(0, 0), nil
	case TypeExpPlusLinear:
		return NewExponentialPlusLinear(0, 0, 0, 0), nil
	case TypeExpPlusOffset:
		return NewExponentialPlusOffset(0, 0, 0), nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownFitType, int(t))
	}
}

// NewByName creates a fit function by name and parameters.
//
// Supported names (case-insensitive) and their parameter order:
//   - "linear": m, b
//   - "exponential": a, alpha
//   - "exp_plus_linear": a, alpha, m, b
//   - "exp_plus_offset": a, alpha, b
//
// Example:
//
//	f, err := fit.NewByName("linear", []float64{2.0, -1.0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := f.Eval(3.0) // 5.0
func NewByName(name string, params []float64) (Func, error) {
	t := TypeFromString(name)
	if t == TypeUnknown {
		return nil, fmt.Errorf("%w: %q, supported types: %s",
			errs.ErrUnknownFitType, name, strings.Join(TypeNames(), ", "))
	}

	f, err := New(t)
	if err != nil {
		return nil, err
	}

	if err := f.SetParams(params, nil); err != nil {
		return nil, err
	}

	return f, nil
}
