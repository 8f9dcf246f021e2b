package dispatch

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/examconsolidate/examconsolidate/assignment"
	"github.com/examconsolidate/examconsolidate/config"
	"github.com/examconsolidate/examconsolidate/exact"
	"github.com/examconsolidate/examconsolidate/feasibility"
	"github.com/examconsolidate/examconsolidate/model"
	"github.com/examconsolidate/examconsolidate/packer"
)

// Resolve runs C5: if sp is larger than opts.SizeThreshold, it calls the
// heuristic packer directly; otherwise it tries the exact solver first and
// falls back to the heuristic on any error (SolverTimeout, SolverFailure, or
// anything else exact.Solve might return). log may be nil.
func Resolve(ctx context.Context, sp *model.Subproblem, idx *feasibility.Index, opts config.Options, log *zap.Logger) assignment.Assignment {
	if sp.N() > opts.SizeThreshold {
		a := packer.PackBest(sp, idx)
		a.Status = assignment.Heuristic

		return a
	}

	solveCtx := ctx
	var cancel context.CancelFunc
	if _, ok := ctx.Deadline(); !ok && opts.TimeLimit > 0 {
		solveCtx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	a, err := exact.Solve(solveCtx, sp, idx, log)
	if err == nil {
		return a
	}

	if log != nil {
		if errors.Is(err, exact.ErrSolverTimeout) {
			log.Info("dispatch: exact solver timed out, falling back to heuristic",
				zap.String("group_shift", sp.Key().Shift), zap.String("group_campus", sp.Key().Campus))
		} else {
			log.Warn("dispatch: exact solver failed, falling back to heuristic",
				zap.Error(err), zap.String("group_shift", sp.Key().Shift), zap.String("group_campus", sp.Key().Campus))
		}
	}

	fallback := packer.PackBest(sp, idx)
	fallback.Status = assignment.HeuristicFallback

	return fallback
}
