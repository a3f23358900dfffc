package pong

import "errors"

var (
	// ErrInvariantViolation reports a geometry inconsistency detected during a
	// tick. The tick is aborted; callers should treat it as fatal.
	ErrInvariantViolation = errors.New("pong: invariant violation")

	// ErrInvalidDigit is returned when a score digit has no segment pattern.
	ErrInvalidDigit = errors.New("pong: invalid digit")

	// ErrInvalidSegment is returned for an unknown seven-segment identifier.
	ErrInvalidSegment = errors.New("pong: invalid segment")
)
