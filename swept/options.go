package swept

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/arloliu/langmuir/errs"
	"github.com/arloliu/langmuir/fit"
	"github.com/arloliu/langmuir/internal/options"
)

// Option names accepted by OptionsFromMap.
const (
	KeyFitType      = "fit_type"
	KeyCurrentBound = "current_bound"
	KeyVoltageBound = "voltage_bound"
)

// DefaultFitType is the fit family used when WithFitType is not given.
const DefaultFitType = fit.TypeExpPlusLinear

// isatConfig holds the settings of one FindIonSaturationCurrent call.
type isatConfig struct {
	fitType      fit.Type
	currentBound *float64
	voltageBound *float64
	fitOptions   []fit.CurveFitOption
	logger       *slog.Logger
}

func newISatConfig() *isatConfig {
	return &isatConfig{
		fitType: DefaultFitType,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// Option is a functional option for FindIonSaturationCurrent.
type Option = options.Option[*isatConfig]

// WithFitType selects the fit family. Only fit.TypeLinear,
// fit.TypeExpPlusLinear and fit.TypeExpPlusOffset are accepted by
// FindIonSaturationCurrent; anything else makes it fail with
// errs.ErrUnknownFitType.
func WithFitType(t fit.Type) Option {
	return options.NoError(func(cfg *isatConfig) {
		cfg.fitType = t
	})
}

// WithCurrentBound bounds the fit region by current: samples up to the last
// one whose current is at or below (1 - |bound|) * min(current) are fitted.
// Mutually exclusive with WithVoltageBound.
func WithCurrentBound(bound float64) Option {
	return options.NoError(func(cfg *isatConfig) {
		cfg.currentBound = &bound
	})
}

// WithVoltageBound bounds the fit region by voltage: samples up to the last
// one whose voltage is at or below bound are fitted.
// Mutually exclusive with WithCurrentBound.
func WithVoltageBound(bound float64) Option {
	return options.NoError(func(cfg *isatConfig) {
		cfg.voltageBound = &bound
	})
}

// WithCurveFitOptions forwards options to the underlying curve fit.
func WithCurveFitOptions(opts ...fit.CurveFitOption) Option {
	return options.NoError(func(cfg *isatConfig) {
		cfg.fitOptions = append(cfg.fitOptions, opts...)
	})
}

// WithLogger sets the logger for debug and warning output.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(cfg *isatConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	})
}

// OptionsFromMap converts loosely typed settings, as decoded from JSON or
// another dynamic source, into options.
//
// Recognized keys are "fit_type" (string), "current_bound" and
// "voltage_bound" (any Go integer or float type, or json.Number). A nil value
// leaves the setting unspecified.
//
// Errors:
//   - errs.ErrFitTypeNotString (type kind) if fit_type is not a string
//   - errs.ErrBoundNotReal (type kind) if a bound is not a real number
//   - errs.ErrUnknownFitType (value kind) if fit_type names no fit family
//   - errs.ErrUnknownOption (value kind) for any other key
func OptionsFromMap(kv map[string]any) ([]Option, error) {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	opts := make([]Option, 0, len(kv))
	for _, key := range keys {
		value := kv[key]
		if value == nil {
			continue
		}

		switch key {
		case KeyFitType:
			name, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: got %T", errs.ErrFitTypeNotString, value)
			}
			t := fit.TypeFromString(name)
			if t == fit.TypeUnknown {
				return nil, fmt.Errorf("%w: %q", errs.ErrUnknownFitType, name)
			}
			opts = append(opts, WithFitType(t))

		case KeyCurrentBound, KeyVoltageBound:
			bound, err := toReal(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			if key == KeyCurrentBound {
				opts = append(opts, WithCurrentBound(bound))
			} else {
				opts = append(opts, WithVoltageBound(bound))
			}

		default:
			return nil, fmt.Errorf("%w: %q (expected one of %s)", errs.ErrUnknownOption, key,
				strings.Join([]string{KeyFitType, KeyCurrentBound, KeyVoltageBound}, ", "))
		}
	}

	return opts, nil
}

// toReal converts a numeric value of any Go numeric kind to float64.
func toReal(value any) (float64, error) {
	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errs.ErrBoundNotReal, n.String())
		}

		return f, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	default:
		return 0, fmt.Errorf("%w: got %T (%v)", errs.ErrBoundNotReal, value, value)
	}
}
