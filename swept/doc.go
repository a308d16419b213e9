// Package swept provides analysis routines for swept Langmuir probe traces.
//
// A sweep is a pair of equal-length voltage and current slices, ordered by
// increasing probe bias. CheckSweep validates one;
// FindIonSaturationCurrent fits its ion-saturation region.
//
// # Ion Saturation Current
//
//	isat, extras, err := swept.FindIonSaturationCurrent(voltage, current,
//	    swept.WithFitType(fit.TypeExpPlusLinear),
//	    swept.WithCurrentBound(0.6),
//	)
//	if err != nil {
//	    // errors.Is(err, errs.ErrValue) or errors.Is(err, errs.ErrType)
//	    log.Fatal(err)
//	}
//	if isat == nil {
//	    // the fit could not be performed; extras.IsNull() is true
//	}
//
// Settings decoded from JSON or another dynamic source can be converted with
// OptionsFromMap, which reports non-numeric bounds as type errors:
//
//	opts, err := swept.OptionsFromMap(map[string]any{
//	    "fit_type":      "linear",
//	    "voltage_bound": -5,
//	})
package swept
