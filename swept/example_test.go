package swept_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/arloliu/langmuir/errs"
	"github.com/arloliu/langmuir/fit"
	"github.com/arloliu/langmuir/swept"
)

func ExampleFindIonSaturationCurrent() {
	voltage := []float64{-10, -8, -6, -4, -2, 0, 2, 4}
	current := []float64{-3.0, -2.8, -2.6, -2.4, -1.0, 0.5, 2.0, 4.0}

	isat, extras, err := swept.FindIonSaturationCurrent(voltage, current,
		swept.WithFitType(fit.TypeLinear),
		swept.WithVoltageBound(-4),
	)
	if err != nil {
		log.Fatal(err)
	}

	rsq, _ := extras.RSq()
	indices, _ := extras.FittedIndices()
	fmt.Printf("Isat(V) = %.2f V + %.2f\n", isat.M(), isat.B())
	fmt.Printf("R² = %.3f over indices %v\n", rsq, indices)

	// Output:
	// Isat(V) = 0.10 V + -2.00
	// R² = 1.000 over indices [0 1 2 3]
}

func ExampleOptionsFromMap() {
	voltage := []float64{1, 2, 3, 4}
	current := []float64{-1, 0, 1, 2}

	opts, err := swept.OptionsFromMap(map[string]any{"current_bound": "not a number"})
	fmt.Println(opts == nil, errors.Is(err, errs.ErrType))

	opts, _ = swept.OptionsFromMap(map[string]any{"voltage_bound": 0.0})
	_, _, err = swept.FindIonSaturationCurrent(voltage, current, opts...)
	fmt.Println(errors.Is(err, errs.ErrEmptySelection), errors.Is(err, errs.ErrValue))

	// Output:
	// true true
	// true true
}
