package swept

import (
	"fmt"
	"math"

	"github.com/arloliu/langmuir/errs"
)

// CheckSweep validates a voltage/current sweep.
//
// A valid sweep has equal, non-zero lengths, only finite samples, a
// monotonically non-decreasing voltage, and a current that starts negative
// (ion side) and ends positive (electron side).
//
// Returns an error wrapping errs.ErrValue describing the first violation.
func CheckSweep(voltage, current []float64) error {
	if len(voltage) == 0 || len(current) == 0 {
		return errs.ErrEmptySweep
	}
	if len(voltage) != len(current) {
		return fmt.Errorf("%w: %d voltage samples vs %d current samples",
			errs.ErrSweepLengthMismatch, len(voltage), len(current))
	}

	for i := range voltage {
		if !isReal(voltage[i]) {
			return fmt.Errorf("%w: voltage[%d] = %v", errs.ErrNonFiniteSample, i, voltage[i])
		}
		if !isReal(current[i]) {
			return fmt.Errorf("%w: current[%d] = %v", errs.ErrNonFiniteSample, i, current[i])
		}
		if i > 0 && voltage[i] < voltage[i-1] {
			return fmt.Errorf("%w: voltage[%d] = %g < voltage[%d] = %g",
				errs.ErrVoltageNotMonotonic, i, voltage[i], i-1, voltage[i-1])
		}
	}

	first, last := current[0], current[len(current)-1]
	if !(first < 0 && last > 0) {
		return fmt.Errorf("%w: current[0] = %g, current[%d] = %g",
			errs.ErrCurrentNotCrossing, first, len(current)-1, last)
	}

	return nil
}

// isReal reports whether v is a finite real number.
func isReal(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
