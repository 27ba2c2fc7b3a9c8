package wellog

import "errors"

// Structural error taxonomy. Per-sample implausibility is never an error;
// it is written into the output curve as the sentinel value.
var (
	// ErrMalformedInput indicates a curve whose length does not match the
	// depth axis, or a depth axis that is not non-decreasing.
	ErrMalformedInput = errors.New("malformed input")

	// ErrCurveNotFound indicates that no alias resolved to a stored curve.
	ErrCurveNotFound = errors.New("curve not found")

	// ErrInsufficientData indicates a valid-sample count below the minimum
	// required by a computation.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidParameter indicates a physical constant outside its
	// declared valid range.
	ErrInvalidParameter = errors.New("invalid parameter")
)
