package swept

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/langmuir/errs"
	"github.com/arloliu/langmuir/fit"
	"github.com/arloliu/langmuir/internal/options"
)

func configFrom(t *testing.T, kv map[string]any) *isatConfig {
	t.Helper()

	opts, err := OptionsFromMap(kv)
	require.NoError(t, err)

	cfg := newISatConfig()
	require.NoError(t, options.Apply(cfg, opts...))

	return cfg
}

func TestOptionsFromMap(t *testing.T) {
	t.Run("empty map keeps defaults", func(t *testing.T) {
		cfg := configFrom(t, nil)
		require.Equal(t, DefaultFitType, cfg.fitType)
		require.Nil(t, cfg.currentBound)
		require.Nil(t, cfg.voltageBound)
	})

	t.Run("nil values are unspecified", func(t *testing.T) {
		cfg := configFrom(t, map[string]any{"fit_type": nil, "current_bound": nil, "voltage_bound": nil})
		require.Equal(t, DefaultFitType, cfg.fitType)
		require.Nil(t, cfg.currentBound)
		require.Nil(t, cfg.voltageBound)
	})

	t.Run("fit type", func(t *testing.T) {
		cfg := configFrom(t, map[string]any{"fit_type": "exp_plus_offset"})
		require.Equal(t, fit.TypeExpPlusOffset, cfg.fitType)
	})

	numeric := []struct {
		name  string
		value any
		want  float64
	}{
		{"float64", 0.5, 0.5},
		{"float32", float32(0.25), 0.25},
		{"int", -3, -3},
		{"int64", int64(7), 7},
		{"uint8", uint8(2), 2},
		{"json number", json.Number("1.5"), 1.5},
	}
	for _, tt := range numeric {
		t.Run("bound "+tt.name, func(t *testing.T) {
			cfg := configFrom(t, map[string]any{"current_bound": tt.value})
			require.NotNil(t, cfg.currentBound)
			require.InDelta(t, tt.want, *cfg.currentBound, 1e-12)

			cfg = configFrom(t, map[string]any{"voltage_bound": tt.value})
			require.NotNil(t, cfg.voltageBound)
			require.InDelta(t, tt.want, *cfg.voltageBound, 1e-12)
		})
	}
}

func TestOptionsFromMapErrors(t *testing.T) {
	tests := []struct {
		name string
		kv   map[string]any
		want error
		kind error
	}{
		{
			name: "string bound",
			kv:   map[string]any{"current_bound": "not a number"},
			want: errs.ErrBoundNotReal,
			kind: errs.ErrType,
		},
		{
			name: "bool bound",
			kv:   map[string]any{"voltage_bound": true},
			want: errs.ErrBoundNotReal,
			kind: errs.ErrType,
		},
		{
			name: "malformed json number",
			kv:   map[string]any{"voltage_bound": json.Number("abc")},
			want: errs.ErrBoundNotReal,
			kind: errs.ErrType,
		},
		{
			name: "non-string fit type",
			kv:   map[string]any{"fit_type": 3},
			want: errs.ErrFitTypeNotString,
			kind: errs.ErrType,
		},
		{
			name: "unknown fit type",
			kv:   map[string]any{"fit_type": "wrong"},
			want: errs.ErrUnknownFitType,
			kind: errs.ErrValue,
		},
		{
			name: "unknown key",
			kv:   map[string]any{"bound": 1.0},
			want: errs.ErrUnknownOption,
			kind: errs.ErrValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := OptionsFromMap(tt.kv)
			require.Nil(t, opts)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestWithLoggerIgnoresNil(t *testing.T) {
	cfg := newISatConfig()
	before := cfg.logger
	require.NoError(t, options.Apply(cfg, WithLogger(nil)))
	require.Same(t, before, cfg.logger)
}

func TestWithCurveFitOptions(t *testing.T) {
	cfg := newISatConfig()
	require.NoError(t, options.Apply(cfg,
		WithCurveFitOptions(fit.WithMaxIterations(10)),
		WithCurveFitOptions(fit.WithInitialGuess(1, 2, 3, 4)),
	))
	require.Len(t, cfg.fitOptions, 2)
}
