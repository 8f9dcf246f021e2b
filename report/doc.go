// Package report builds the consolidation report (spec §4.6, C6) from a
// Subproblem and its solved Assignment: per-kept-room Groups, per-moved-room
// Merges, and a RoomChangeSummary. It is pure and ordering-deterministic,
// grounded on build_outputs_for_group in the original implementation's
// src/core/merging.py, re-expressed against this package's Room/Assignment
// types instead of parallel Python lists.
package report
