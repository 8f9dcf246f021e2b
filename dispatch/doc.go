// Package dispatch implements the size-threshold dispatcher (spec §4.5, C5):
// it chooses between the exact solver (exact.Solve) and the heuristic packer
// (packer.PackBest) by subproblem size, and recovers from any exact-solver
// failure by falling back to the heuristic, annotating the result's status
// accordingly.
package dispatch
