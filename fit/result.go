package fit

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Result represents the outcome of fitting several fit-function families to
// the same samples.
//
// Fields:
//   - BestFit: The fit with the highest R²
//   - AllFits: All successful fits ranked by R² (best first)
//   - Failed: Fit types that could not be fitted, with the reason
type Result struct {
	// BestFit is the best fit (highest R²).
	BestFit Func
	// AllFits contains every successful fit ranked by R² (best first).
	AllFits []Func
	// Failed maps fit types that could not be fitted to the fit error.
	Failed map[Type]error
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s (%s, R²: %.4f), TotalFits: %d}",
		r.BestFit.Type(), r.BestFit, r.BestFit.RSquared(), len(r.AllFits))
}

// Best fits each requested family to (x, y) and ranks the fits by R².
//
// When no types are given every supported family is tried. A family that
// fails to fit is recorded in Result.Failed; Best only returns an error when
// every family fails or a type is unknown.
//
// Example:
//
//	result, err := fit.Best(voltage, current, fit.TypeLinear, fit.TypeExpPlusLinear)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.BestFit, result.BestFit.RSquared())
func Best(x, y []float64, types ...Type) (*Result, error) {
	if len(types) == 0 {
		types = AllTypes()
	}

	result := &Result{Failed: make(map[Type]error)}
	var failures []error

	for _, t := range types {
		f, err := New(t)
		if err != nil {
			return nil, err
		}

		if err := f.CurveFit(x, y); err != nil {
			result.Failed[t] = err
			failures = append(failures, fmt.Errorf("%s: %w", t, err))

			continue
		}

		result.AllFits = append(result.AllFits, f)
	}

	if len(result.AllFits) == 0 {
		return nil, fmt.Errorf("no fit succeeded: %w", errors.Join(failures...))
	}

	slices.SortStableFunc(result.AllFits, func(a, b Func) int {
		ra, rb := a.RSquared(), b.RSquared()
		if ra > rb {
			return -1
		}
		if ra < rb {
			return 1
		}

		return 0
	})
	result.BestFit = result.AllFits[0]

	return result, nil
}

// Summary returns one line per fit, best first.
func (r *Result) Summary() string {
	var sb strings.Builder
	for i, f := range r.AllFits {
		fmt.Fprintf(&sb, "%d. %-16s R²=%.6f  %s\n", i+1, f.Type(), f.RSquared(), f)
	}
	for _, t := range AllTypes() {
		if err, failed := r.Failed[t]; failed {
			fmt.Fprintf(&sb, "-  %-16s failed: %v\n", t, err)
		}
	}

	return sb.String()
}
