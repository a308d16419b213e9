package fit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/langmuir/errs"
)

func TestBest(t *testing.T) {
	x := linspace(1, 10, 30)
	y := apply(x, func(v float64) float64 { return 2*v + 1 })

	result, err := Best(x, y, TypeLinear, TypeExponential)
	require.NoError(t, err)
	require.NotNil(t, result.BestFit)
	require.Equal(t, TypeLinear, result.BestFit.Type())
	require.Same(t, result.BestFit, result.AllFits[0])
	require.Equal(t, len(result.AllFits)+len(result.Failed), 2)

	for i := 1; i < len(result.AllFits); i++ {
		require.GreaterOrEqual(t, result.AllFits[i-1].RSquared(), result.AllFits[i].RSquared())
	}

	require.Contains(t, result.String(), "linear")
	require.Contains(t, result.Summary(), "1. linear")
}

func TestBestErrors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		_, err := Best([]float64{1, 2, 3}, []float64{1, 2, 3}, TypeUnknown)
		require.ErrorIs(t, err, errs.ErrUnknownFitType)
	})

	t.Run("every fit fails", func(t *testing.T) {
		_, err := Best([]float64{1}, []float64{1})
		require.ErrorIs(t, err, errs.ErrInsufficientPoints)
	})
}

func TestResultStringNil(t *testing.T) {
	require.Equal(t, "Result{BestFit: nil}", (&Result{}).String())
}
