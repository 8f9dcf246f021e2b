// Package progress exposes a mutex-protected progress surface for a
// consolidation run (spec §6.5): per-subproblem start/end events the driver
// can poll to render a progress bar. It is the only cross-goroutine state in
// the engine (spec §5) — the solver components themselves never read it.
//
// Guarded by a single sync.RWMutex, the way core.Graph guards its vertex and
// edge maps; grounded on the polled TASK_STATUS dict in the original
// implementation's src/web/server.py, re-expressed as a typed Go value
// instead of an untyped dict.
package progress
