// Package exact implements the branch-and-bound integer-program solver (spec
// §4.4, C4): assignment/open-room/capacity/subject-disjointness constraints
// plus the two valid cuts, solved by LP-relaxed branch-and-bound with a
// wall-clock budget.
//
// The LP relaxation at every search node is solved with
// gonum.org/v1/gonum/optimize/convex/lp.Simplex, and inequalities are
// converted to equalities via slack variables the same way
// jjhbw/GoMILP's subproblem.go:convertToEqualities does. Branch-and-bound
// constraints tightening a variable's bound are carried as extra inequality
// rows appended per node (GoMILP's bnbConstraint), rather than GoMILP's
// worker-pool enumeration tree, since spec §5 requires C4 to run
// single-threaded per subproblem.
package exact
