// Package langmuir analyzes swept Langmuir probe traces.
//
// A Langmuir probe is an electrode inserted into a plasma and swept in bias
// voltage while its current is recorded. At sufficiently negative bias the
// probe collects only ions and the current flattens onto the ion saturation
// current, which is used to infer the plasma density.
//
// # Core Features
//
//   - Sweep validation (equal lengths, finite samples, monotonic bias, zero crossing)
//   - Ion saturation current from a linear, exponential-plus-linear or
//     exponential-plus-offset fit of the ion side of the sweep
//   - Fit functions with parameter errors, R², error propagation and root solving
//   - Sentinel errors classified as value or type errors
//
// # Basic Usage
//
//	isat, extras, err := langmuir.FindIonSaturationCurrent(voltage, current,
//	    swept.WithFitType(fit.TypeLinear),
//	    swept.WithCurrentBound(0.4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rsq, _ := extras.RSq()
//	fmt.Printf("Isat(V) = %s, R² = %.4f\n", isat, rsq)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the swept and
// fit packages. For fine-grained control use those packages directly.
package langmuir

import (
	"github.com/arloliu/langmuir/fit"
	"github.com/arloliu/langmuir/swept"
)

// FindIonSaturationCurrent fits the ion-saturation region of a sweep.
// See swept.FindIonSaturationCurrent.
func FindIonSaturationCurrent(voltage, current []float64, opts ...swept.Option) (*fit.Linear, swept.ISatExtras, error) {
	return swept.FindIonSaturationCurrent(voltage, current, opts...)
}

// FindIonSaturationCurrentFromMap is FindIonSaturationCurrent with its
// options given as a loosely typed map ("fit_type", "current_bound",
// "voltage_bound"). See swept.OptionsFromMap.
func FindIonSaturationCurrentFromMap(voltage, current []float64, kv map[string]any) (*fit.Linear, swept.ISatExtras, error) {
	opts, err := swept.OptionsFromMap(kv)
	if err != nil {
		return nil, swept.NullISatExtras(), err
	}

	return swept.FindIonSaturationCurrent(voltage, current, opts...)
}

// CheckSweep validates a voltage/current sweep. See swept.CheckSweep.
func CheckSweep(voltage, current []float64) error {
	return swept.CheckSweep(voltage, current)
}

// NewFitFunc creates a fit function by name and parameters.
// See fit.NewByName.
func NewFitFunc(name string, params []float64) (fit.Func, error) {
	return fit.NewByName(name, params)
}
