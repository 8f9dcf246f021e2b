package exact

import "errors"

// Sentinel errors for the exact solver (spec §7).
var (
	// ErrSolverTimeout indicates the wall-clock budget expired with no
	// incumbent present. The dispatcher (C5) recovers by falling back to the
	// greedy packer (C3); this error is never surfaced past it.
	ErrSolverTimeout = errors.New("exact: wall-clock budget expired with no incumbent")

	// ErrSolverFailure indicates the solver terminated abnormally: the root
	// LP relaxation was reported infeasible or singular, which spec §4.4
	// treats as a logic bug (the self-edge identity point is always
	// LP-feasible) but which we still surface as a typed, recoverable error
	// rather than a panic.
	ErrSolverFailure = errors.New("exact: solver terminated abnormally")
)
