package wfc

import "errors"

// Sentinel errors returned by the core solver. Callers should use
// errors.Is against these, since GroundFailure wraps Contradiction.
var (
	// ErrConfiguration indicates the supplied Options are invalid: a
	// non-positive pattern size, an output smaller than the pattern,
	// or a fingerprint width that would overflow for the given palette
	// size and pattern size.
	ErrConfiguration = errors.New("wfc: invalid configuration")

	// ErrContradiction indicates propagation removed every possibility
	// from some cell during the run. The caller may retry with a fresh
	// RandSource seed; the core itself never backtracks.
	ErrContradiction = errors.New("wfc: contradiction")

	// ErrGroundFailure indicates the ground preconstraint itself
	// propagated to a contradiction, before the first observation.
	ErrGroundFailure = errors.New("wfc: ground propagation failed")

	// ErrCancelled indicates the caller-supplied context was done
	// before the run finished.
	ErrCancelled = errors.New("wfc: cancelled")
)
