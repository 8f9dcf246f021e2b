// Package packer implements the multi-strategy greedy bin-packer (spec §4.3,
// C3): five deterministic best/first/worst-fit passes over the same
// feasibility index, the best-by-objective result winning ties by strategy
// index (earlier wins).
//
// Design mirrors the teacher's tsp package: a small dedicated engine struct
// per strategy run (rather than closures) keeps state explicit and hot loops
// allocation-free, the way tsp/bb.go's bbEngine does for branch-and-bound.
package packer
