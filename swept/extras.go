package swept

import (
	"slices"

	"github.com/arloliu/langmuir/fit"
)

// ISatExtras holds the supplementary results of FindIonSaturationCurrent.
//
// The record is immutable and has exactly three fields, each of which may be
// absent:
//   - rsq: coefficient of determination of the fit
//   - fitted_func: the fitted function
//   - fitted_indices: the sweep indices used in the fit
//
// It has no defaulted fields: NewISatExtras takes all three explicitly.
type ISatExtras struct {
	rsq           *float64
	fittedFunc    fit.Func
	fittedIndices []int
}

// ISatExtrasFields returns the field names of ISatExtras in order.
func ISatExtrasFields() []string {
	return []string{"rsq", "fitted_func", "fitted_indices"}
}

// NewISatExtras builds an ISatExtras. A nil argument marks the field absent.
// rsq and fittedIndices are copied.
func NewISatExtras(rsq *float64, fittedFunc fit.Func, fittedIndices []int) ISatExtras {
	var r *float64
	if rsq != nil {
		v := *rsq
		r = &v
	}

	return ISatExtras{
		rsq:           r,
		fittedFunc:    fittedFunc,
		fittedIndices: slices.Clone(fittedIndices),
	}
}

// NullISatExtras returns the record with every field absent.
func NullISatExtras() ISatExtras {
	return NewISatExtras(nil, nil, nil)
}

// RSq returns the coefficient of determination and whether it is present.
func (e ISatExtras) RSq() (float64, bool) {
	if e.rsq == nil {
		return 0, false
	}

	return *e.rsq, true
}

// FittedFunc returns the fitted function and whether it is present.
func (e ISatExtras) FittedFunc() (fit.Func, bool) {
	return e.fittedFunc, e.fittedFunc != nil
}

// FittedIndices returns a copy of the fitted sweep indices and whether they
// are present.
func (e ISatExtras) FittedIndices() ([]int, bool) {
	if e.fittedIndices == nil {
		return nil, false
	}

	return slices.Clone(e.fittedIndices), true
}

// IsNull reports whether every field is absent.
func (e ISatExtras) IsNull() bool {
	return e.rsq == nil && e.fittedFunc == nil && e.fittedIndices == nil
}

// AsMap returns the record keyed by field name. Absent fields map to nil.
func (e ISatExtras) AsMap() map[string]any {
	m := make(map[string]any, 3)
	m["rsq"] = nil
	m["fitted_func"] = nil
	m["fitted_indices"] = nil

	if v, ok := e.RSq(); ok {
		m["rsq"] = v
	}
	if f, ok := e.FittedFunc(); ok {
		m["fitted_func"] = f
	}
	if idx, ok := e.FittedIndices(); ok {
		m["fitted_indices"] = idx
	}

	return m
}
