package fit

import (
	"fmt"
	"slices"

	"github.com/arloliu/langmuir/errs"
	"github.com/arloliu/langmuir/internal/options"
)

const defaultMaxIterations = 2000

// curveFitConfig holds the tunables of an iterative curve fit.
type curveFitConfig struct {
	maxIterations int
	initialGuess  []float64
}

// CurveFitOption is a functional option for CurveFit.
type CurveFitOption = options.Option[*curveFitConfig]

func newCurveFitConfig(opts []CurveFitOption) (*curveFitConfig, error) {
	cfg := &curveFitConfig{maxIterations: defaultMaxIterations}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithMaxIterations caps the optimizer's major iterations.
// Ignored by Linear, which is solved in closed form.
func WithMaxIterations(n int) CurveFitOption {
	return options.New(func(cfg *curveFitConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidMaxIterations, n)
		}
		cfg.maxIterations = n

		return nil
	})
}

// WithInitialGuess sets the starting parameters of an iterative fit, in
// ParamNames order. Ignored by Linear.
func WithInitialGuess(params ...float64) CurveFitOption {
	return options.NoError(func(cfg *curveFitConfig) {
		cfg.initialGuess = slices.Clone(params)
	})
}
