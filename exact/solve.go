package exact

import (
	"context"

	"go.uber.org/zap"

	"github.com/examconsolidate/examconsolidate/assignment"
	"github.com/examconsolidate/examconsolidate/feasibility"
	"github.com/examconsolidate/examconsolidate/model"
)

// Solve runs the branch-and-bound MILP solver (spec §4.4, C4) against sp,
// honoring ctx's deadline if one is set. Unless the root LP relaxation
// cannot be solved (ErrSolverFailure), it returns a valid Assignment: the
// incumbent is seeded with the identity ("everyone stays") point before any
// LP solve, so a timeout or cancellation before the first node completes
// still yields assignment.Feasible rather than an error.
//
// log may be nil; when non-nil it receives a warning whenever an
// integer-feasible LP solution leaves some room without a destination and
// the incumbent is repaired by keeping that room in place.
func Solve(ctx context.Context, sp *model.Subproblem, idx *feasibility.Index, log *zap.Logger) (assignment.Assignment, error) {
	n := sp.N()
	if n == 0 {
		return assignment.FromAssign(nil, assignment.Optimal), nil
	}

	m := buildMILP(sp, idx)

	e := &bbEngine{m: m, log: log, ctx: ctx}

	// Seed the incumbent with the trivial point before any LP is solved:
	// spec §4.2 guarantees every self-edge is feasible, so this is always a
	// legal fallback regardless of how quickly the deadline expires.
	e.bestObjective = n
	e.bestAssign = identityAssign(n)
	e.haveIncumbent = true

	if e.cancelled() {
		return assignment.FromAssign(e.bestAssign, assignment.Feasible), nil
	}

	// The identity point is always LP-feasible, so a root relaxation the LP
	// engine cannot solve is an abnormal termination, not a proof that the
	// seeded incumbent is optimal.
	if _, _, err := e.solveRelaxation(nil); err != nil {
		return assignment.Assignment{}, ErrSolverFailure
	}

	e.dfs(nil)

	if !e.haveIncumbent {
		return assignment.Assignment{}, ErrSolverFailure
	}

	status := assignment.Optimal
	if e.incompleteIncumbent || e.cancelled() {
		status = assignment.Feasible
	}

	return assignment.FromAssign(e.bestAssign, status), nil
}
