package langmuir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/langmuir/errs"
	"github.com/arloliu/langmuir/fit"
	"github.com/arloliu/langmuir/swept"
)

func TestFindIonSaturationCurrent(t *testing.T) {
	voltage := []float64{-10, -8, -6, -4, -2, 0, 2, 4}
	current := []float64{-3.0, -2.8, -2.6, -2.4, -1.0, 0.5, 2.0, 4.0}

	isat, extras, err := FindIonSaturationCurrent(voltage, current,
		swept.WithFitType(fit.TypeLinear), swept.WithVoltageBound(-4))
	require.NoError(t, err)
	require.NotNil(t, isat)
	require.InDelta(t, 0.1, isat.M(), 1e-12)
	require.InDelta(t, -2.0, isat.B(), 1e-12)

	indices, ok := extras.FittedIndices()
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2, 3}, indices)
}

func TestFindIonSaturationCurrentFromMap(t *testing.T) {
	voltage := []float64{1, 2, 3, 4}
	current := []float64{-1, 0, 1, 2}

	tests := []struct {
		name string
		kv   map[string]any
		want error
	}{
		{"wrong fit type", map[string]any{"fit_type": "wrong"}, errs.ErrValue},
		{"both bounds", map[string]any{"current_bound": 0.5, "voltage_bound": 0.0}, errs.ErrValue},
		{"string current bound", map[string]any{"current_bound": "not a number"}, errs.ErrType},
		{"string voltage bound", map[string]any{"voltage_bound": "not a number"}, errs.ErrType},
		{"empty selection", map[string]any{"voltage_bound": 0.0}, errs.ErrValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isat, extras, err := FindIonSaturationCurrentFromMap(voltage, current, tt.kv)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, isat)
			require.True(t, extras.IsNull())
		})
	}
}

func TestCheckSweep(t *testing.T) {
	require.NoError(t, CheckSweep([]float64{1, 2}, []float64{-1, 1}))
	require.ErrorIs(t, CheckSweep([]float64{1, math.NaN()}, []float64{-1, 1}), errs.ErrNonFiniteSample)
}

func TestNewFitFunc(t *testing.T) {
	f, err := NewFitFunc("exp_plus_offset", []float64{1, 1, -2})
	require.NoError(t, err)

	root, _, err := f.RootSolve(0)
	require.NoError(t, err)
	require.InDelta(t, math.Ln2, root, 1e-12)
}
