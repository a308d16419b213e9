package swept

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/langmuir/errs"
	"github.com/arloliu/langmuir/fit"
	"github.com/arloliu/langmuir/internal/options"
)

// isatSetting describes a fit family usable for the ion saturation current.
type isatSetting struct {
	newFunc func() fit.Func
	// currentBound is the default fractional current bound.
	currentBound float64
}

var isatSettings = map[fit.Type]isatSetting{
	fit.TypeLinear: {
		newFunc:      func() fit.Func { return fit.NewLinear(0, 0) },
		currentBound: 0.4,
	},
	fit.TypeExpPlusLinear: {
		newFunc:      func() fit.Func { return fit.NewExponentialPlusLinear(0, 0, 0, 0) },
		currentBound: 0.6,
	},
	fit.TypeExpPlusOffset: {
		newFunc:      func() fit.Func { return fit.NewExponentialPlusOffset(0, 0, 0) },
		currentBound: 0.6,
	},
}

// ISatFitTypes returns the names of the fit families accepted by
// FindIonSaturationCurrent, sorted.
func ISatFitTypes() []string {
	names := make([]string, 0, len(isatSettings))
	for t := range isatSettings {
		names = append(names, t.String())
	}
	slices.Sort(names)

	return names
}

// FindISat is an alias of FindIonSaturationCurrent.
var FindISat = FindIonSaturationCurrent

// FindIonSaturationCurrent fits the ion-saturation region of a swept
// Langmuir probe trace.
//
// The fit region starts at the first sample and ends at the last sample
// satisfying the bound:
//   - WithVoltageBound(v): voltage <= v
//   - WithCurrentBound(c): current <= (1 - |c|) * min(current)
//   - neither: a current bound of 0.4 for the linear fit, 0.6 otherwise
//
// Parameters:
//   - voltage: probe bias, monotonically non-decreasing
//   - current: probe current, negative at the start and positive at the end
//   - opts: WithFitType (default exp_plus_linear), one bound option, WithLogger
//
// Returns:
//   - *fit.Linear: the linear part (m*V + b) of the fitted model, i.e. the ion
//     saturation current as a function of bias; m is zero for exp_plus_offset
//   - ISatExtras: R², the fitted function and the fitted indices
//   - error: validation error, wrapping errs.ErrValue or errs.ErrType
//
// A fit that cannot be performed is not an error: the result is then a nil
// line together with NullISatExtras().
//
// Example:
//
//	isat, extras, err := swept.FindIonSaturationCurrent(voltage, current,
//	    swept.WithFitType(fit.TypeLinear),
//	    swept.WithVoltageBound(-5),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if isat != nil {
//	    rsq, _ := extras.RSq()
//	    fmt.Printf("Isat(-10 V) = %g (R²=%.3f)\n", isat.Eval(-10), rsq)
//	}
func FindIonSaturationCurrent(voltage, current []float64, opts ...Option) (*fit.Linear, ISatExtras, error) {
	cfg := newISatConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, NullISatExtras(), err
	}

	setting, ok := isatSettings[cfg.fitType]
	if !ok {
		return nil, NullISatExtras(), fmt.Errorf("%w: %q, expected one of %s",
			errs.ErrUnknownFitType, cfg.fitType, strings.Join(ISatFitTypes(), ", "))
	}

	if err := CheckSweep(voltage, current); err != nil {
		return nil, NullISatExtras(), err
	}

	if err := validateBounds(cfg); err != nil {
		return nil, NullISatExtras(), err
	}

	stop, err := selectFitRegion(voltage, current, cfg, setting.currentBound)
	if err != nil {
		return nil, NullISatExtras(), err
	}

	logger := cfg.logger.With("fit_type", cfg.fitType.String(), "points", stop)
	logger.Debug("fitting ion saturation region",
		"v_start", voltage[0], "v_stop", voltage[stop-1])

	fitFunc := setting.newFunc()
	if err := fitFunc.CurveFit(voltage[:stop], current[:stop], cfg.fitOptions...); err != nil {
		logger.Warn("ion saturation fit failed", "error", err)
		return nil, NullISatExtras(), nil
	}

	indices := make([]int, stop)
	for i := range indices {
		indices[i] = i
	}

	var rsq *float64
	if r := fitFunc.RSquared(); isReal(r) {
		rsq = &r
	}

	isat := saturationLine(fitFunc)
	logger.Debug("ion saturation fit done",
		"func", fitFunc.String(), "rsq", fitFunc.RSquared(), "isat", isat.String())

	return isat, NewISatExtras(rsq, fitFunc, indices), nil
}

// validateBounds enforces that at most one bound is set and that it is real.
func validateBounds(cfg *isatConfig) error {
	switch {
	case cfg.currentBound != nil && cfg.voltageBound != nil:
		return fmt.Errorf("%w: current_bound=%g, voltage_bound=%g",
			errs.ErrConflictingBounds, *cfg.currentBound, *cfg.voltageBound)
	case cfg.currentBound != nil && !isReal(*cfg.currentBound):
		return fmt.Errorf("current_bound: %w: %v", errs.ErrBoundNotReal, *cfg.currentBound)
	case cfg.voltageBound != nil && !isReal(*cfg.voltageBound):
		return fmt.Errorf("voltage_bound: %w: %v", errs.ErrBoundNotReal, *cfg.voltageBound)
	}

	return nil
}

// selectFitRegion returns the exclusive end index of the fit region.
func selectFitRegion(voltage, current []float64, cfg *isatConfig, defaultBound float64) (int, error) {
	last := -1

	if cfg.voltageBound != nil {
		bound := *cfg.voltageBound
		for i, v := range voltage {
			if v <= bound {
				last = i
			}
		}
		if last < 0 {
			return 0, fmt.Errorf("%w: no voltage <= %g (min voltage %g)",
				errs.ErrEmptySelection, bound, voltage[0])
		}

		return last + 1, nil
	}

	bound := defaultBound
	if cfg.currentBound != nil {
		bound = math.Abs(*cfg.currentBound)
	}
	threshold := (1 - bound) * floats.Min(current)
	for i, c := range current {
		if c <= threshold {
			last = i
		}
	}
	if last < 0 {
		return 0, fmt.Errorf("%w: no current <= %g (current_bound %g)",
			errs.ErrEmptySelection, threshold, bound)
	}

	return last + 1, nil
}

// saturationLine extracts the linear part m*x + b of f, with m or b taken
// as zero when f has no such parameter.
func saturationLine(f fit.Func) *fit.Linear {
	var m, b, mErr, bErr float64

	params, paramErrs := f.Params(), f.ParamErrors()
	for i, name := range f.ParamNames() {
		switch name {
		case "m":
			m, mErr = params[i], paramErrs[i]
		case "b":
			b, bErr = params[i], paramErrs[i]
		}
	}

	return fit.NewLinearWithErrors(m, b, mErr, bErr)
}
