// Package errs defines the sentinel errors returned by the langmuir packages.
//
// Every specific error wraps one of two kind sentinels so callers can classify
// a failure without matching each case:
//
//	if errors.Is(err, errs.ErrValue) { ... } // bad value (unknown fit type, empty selection, ...)
//	if errors.Is(err, errs.ErrType) { ... }  // argument of the wrong kind (non-real bound, ...)
package errs

import (
	"errors"
	"fmt"
)

// Kind sentinels.
var (
	// ErrValue marks an argument that has the right type but an unacceptable value.
	ErrValue = errors.New("invalid value")

	// ErrType marks an argument that is not of an acceptable type.
	ErrType = errors.New("invalid type")
)

// Sweep validation errors.
var (
	ErrEmptySweep          = kind(ErrValue, "sweep contains no samples")
	ErrSweepLengthMismatch = kind(ErrValue, "voltage and current lengths differ")
	ErrNonFiniteSample     = kind(ErrValue, "sweep contains a non-finite sample")
	ErrVoltageNotMonotonic = kind(ErrValue, "voltage is not monotonically increasing")
	ErrCurrentNotCrossing  = kind(ErrValue, "current must start negative and end positive")
)

// Ion saturation current errors.
var (
	ErrUnknownFitType    = kind(ErrValue, "unknown fit type")
	ErrConflictingBounds = kind(ErrValue, "current bound and voltage bound are mutually exclusive")
	ErrEmptySelection    = kind(ErrValue, "bounds select no samples to fit")
	ErrUnknownOption     = kind(ErrValue, "unknown option")
	ErrBoundNotReal      = kind(ErrType, "bound is not a real number")
	ErrFitTypeNotString  = kind(ErrType, "fit type is not a string")
)

// Fit function errors.
var (
	ErrParamCount           = kind(ErrValue, "wrong number of parameters")
	ErrLengthMismatch       = kind(ErrValue, "x and y lengths differ")
	ErrInsufficientPoints   = kind(ErrValue, "not enough points to fit")
	ErrFitDidNotConverge    = kind(ErrValue, "fit did not converge")
	ErrNoRoot               = kind(ErrValue, "function has no root")
	ErrInvalidMaxIterations = kind(ErrValue, "max iterations must be positive")
)

// kindError is a sentinel that reports itself as belonging to a kind.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

// Unwrap lets errors.Is match the kind sentinel.
func (e *kindError) Unwrap() error { return e.kind }

func kind(k error, msg string) error {
	return &kindError{kind: k, msg: msg}
}

// Wrapf attaches formatted context to a sentinel while keeping it matchable
// with errors.Is.
func Wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
