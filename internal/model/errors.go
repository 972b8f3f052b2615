package model

import "errors"

// Error classes for everything that can be rejected before a simulation runs.
// The hourly loop itself is pure arithmetic and never fails; callers check these
// with errors.Is to decide whether a bad scenario or bad input data is to blame.
var (
	// ErrConfiguration marks invalid scenario parameters (out-of-range fractions,
	// negative capacities or prices).
	ErrConfiguration = errors.New("invalid configuration")

	// ErrData marks malformed pattern inputs (length mismatch, NaN, negative
	// normalized values). Validated at ingestion, never mid-loop.
	ErrData = errors.New("invalid pattern data")
)
