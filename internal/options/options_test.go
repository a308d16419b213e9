package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type boundConfig struct {
	FitType  string
	Bound    float64
	HasBound bool
	Calls    []string
}

func withBound(v float64) Option[*boundConfig] {
	return New(func(c *boundConfig) error {
		if v < 0 {
			return errors.New("bound cannot be negative")
		}
		c.Bound = v
		c.HasBound = true
		c.Calls = append(c.Calls, "bound")

		return nil
	})
}

func withFitType(name string) Option[*boundConfig] {
	return NoError(func(c *boundConfig) {
		c.FitType = name
		c.Calls = append(c.Calls, "fitType")
	})
}

func TestNew(t *testing.T) {
	t.Run("applies value", func(t *testing.T) {
		cfg := &boundConfig{}
		require.NoError(t, withBound(0.4)(cfg))
		require.True(t, cfg.HasBound)
		require.InDelta(t, 0.4, cfg.Bound, 0)
	})

	t.Run("propagates error", func(t *testing.T) {
		cfg := &boundConfig{}
		err := withBound(-1)(cfg)
		require.EqualError(t, err, "bound cannot be negative")
		require.False(t, cfg.HasBound)
	})
}

func TestNoError(t *testing.T) {
	cfg := &boundConfig{}
	require.NoError(t, withFitType("linear")(cfg))
	require.Equal(t, "linear", cfg.FitType)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &boundConfig{}
		err := Apply(cfg, withFitType("exp_plus_linear"), withBound(0.6))
		require.NoError(t, err)
		require.Equal(t, []string{"fitType", "bound"}, cfg.Calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &boundConfig{}
		err := Apply(cfg, withBound(-2), withFitType("linear"))
		require.Error(t, err)
		require.Empty(t, cfg.FitType)
		require.Empty(t, cfg.Calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &boundConfig{}
		require.NoError(t, Apply(cfg, nil, withFitType("linear"), nil))
		require.Equal(t, []string{"fitType"}, cfg.Calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &boundConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, boundConfig{}, *cfg)
	})
}
