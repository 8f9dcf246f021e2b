// Package examconsolidate consolidates examination-room assignments: given
// per-room records (id, subject, student count, capacity) partitioned into
// independent subproblems by (shift, campus), it packs rooms into the
// smallest number of kept destinations such that every student has a seat,
// no room holds two exams of the same subject, and no room exceeds
// capacity.
//
// Under the hood, the work is organized across subpackages:
//
//	model/       — Room, Subproblem and their construction invariants
//	feasibility/ — the directed feasible-edge index built per subproblem
//	packer/      — the multi-strategy greedy heuristic (best-of-five)
//	exact/       — the branch-and-bound MILP solver
//	assignment/  — the shared result type and its validation invariants
//	dispatch/    — the size-threshold dispatcher choosing exact vs. heuristic
//	report/      — group/merge/summary report construction and export
//	reportviz/   — HTML chart rendering of a run's room-count reduction
//	config/      — tunable options (size threshold, time limit, mode)
//	ingest/      — CSV intake, column discovery, and subproblem grouping
//	progress/    — a mutex-protected progress surface for a running driver
//	cmd/examconsolidate/ — the command-line driver wiring it all together
package examconsolidate
