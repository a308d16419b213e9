package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	valueErrs := []error{
		ErrEmptySweep, ErrSweepLengthMismatch, ErrNonFiniteSample, ErrVoltageNotMonotonic,
		ErrCurrentNotCrossing, ErrUnknownFitType, ErrConflictingBounds, ErrEmptySelection,
		ErrUnknownOption, ErrParamCount, ErrLengthMismatch, ErrInsufficientPoints, ErrFitDidNotConverge,
		ErrNoRoot, ErrInvalidMaxIterations,
	}
	for _, err := range valueErrs {
		require.ErrorIs(t, err, ErrValue, err.Error())
		require.NotErrorIs(t, err, ErrType, err.Error())
	}

	typeErrs := []error{ErrBoundNotReal, ErrFitTypeNotString}
	for _, err := range typeErrs {
		require.ErrorIs(t, err, ErrType, err.Error())
		require.NotErrorIs(t, err, ErrValue, err.Error())
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrUnknownFitType, "got %q", "wrong")

	require.ErrorIs(t, err, ErrUnknownFitType)
	require.ErrorIs(t, err, ErrValue)
	require.Equal(t, `unknown fit type: got "wrong"`, err.Error())
	require.False(t, errors.Is(err, ErrConflictingBounds))
}
