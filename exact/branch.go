package exact

import (
	"context"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	// intTol is how close an LP value must be to 0 or 1 to count as integral.
	intTol = 1e-6

	// boundEps guards the bound-pruning comparison against floating noise.
	boundEps = 1e-7

	// deadlineCheckEvery mirrors tsp/bb.go's sparse deadline-check cadence:
	// cheap enough to be effectively free against simplex solves.
	deadlineCheckEvery = 32
)

// bnbRow is one branch-and-bound tightening: varIdx fixed to 0 (le) or to 1
// (ge, encoded as -x <= -1), appended to the root's G/h as an extra row.
// Mirrors GoMILP's subproblem.go:bnbConstraint.
type bnbRow struct {
	coeffs []float64
	rhs    float64
}

// bbEngine carries the search state for one branch-and-bound run: the fixed
// root formulation, the current path of bnbRows, and the best incumbent
// found so far.
type bbEngine struct {
	m   *milp
	log *zap.Logger
	ctx context.Context

	nodes int

	bestObjective int
	bestAssign    []int
	haveIncumbent bool

	incompleteIncumbent bool
}

// cancelled reports whether ctx has been cancelled or its deadline has
// elapsed. Mirrors tsp/bb.go's deadlineCheck: dfs polls it on node entry
// only every deadlineCheckEvery nodes, and once more before descending into
// a branched node's second child.
func (e *bbEngine) cancelled() bool {
	select {
	case <-e.ctx.Done():
		return true
	default:
		return false
	}
}

// combineInequalities concatenates the root G/h with the current path's
// bnbRows, mirroring GoMILP's subProblem.combineInequalities.
func (e *bbEngine) combineInequalities(path []bnbRow) (*mat.Dense, []float64) {
	if len(path) == 0 {
		return e.m.G, e.m.h
	}

	origRows, cols := e.m.G.Dims()
	total := origRows + len(path)
	g := mat.NewDense(total, cols, nil)
	g.Slice(0, origRows, 0, cols).(*mat.Dense).Copy(e.m.G)

	h := make([]float64, total)
	copy(h, e.m.h)
	for k, row := range path {
		g.SetRow(origRows+k, row.coeffs)
		h[origRows+k] = row.rhs
	}

	return g, h
}

// convertToEqualities converts G*x<=h into A*x=b with slack variables,
// mirroring GoMILP's subproblem.go:convertToEqualities.
func convertToEqualities(c *mat.VecDense, A *mat.Dense, b []float64, G *mat.Dense, h []float64) ([]float64, *mat.Dense, []float64) {
	nVar := c.Len()
	nCons := len(b)
	nIneq := len(h)
	nNewVar := nVar + nIneq
	nNewCons := nCons + nIneq

	cNew := make([]float64, nNewVar)
	for i := 0; i < nVar; i++ {
		cNew[i] = c.AtVec(i)
	}

	bNew := make([]float64, nNewCons)
	copy(bNew, b)
	copy(bNew[nCons:], h)

	aNew := mat.NewDense(nNewCons, nNewVar, nil)
	if A != nil && nCons > 0 {
		aNew.Slice(0, nCons, 0, nVar).(*mat.Dense).Copy(A)
	}
	if nIneq > 0 {
		aNew.Slice(nCons, nNewCons, 0, nVar).(*mat.Dense).Copy(G)
		bottomRight := aNew.Slice(nCons, nNewCons, nVar, nNewVar).(*mat.Dense)
		for i := 0; i < nIneq; i++ {
			bottomRight.Set(i, i, 1)
		}
	}

	return cNew, aNew, bNew
}

// solveRelaxation solves the LP relaxation at a search node (root G/h plus
// the current branch path), returning the objective value and the x-portion
// (original variables only, slacks stripped) of the solution.
func (e *bbEngine) solveRelaxation(path []bnbRow) (float64, []float64, error) {
	g, h := e.combineInequalities(path)
	c, a, b := convertToEqualities(e.m.c, e.m.A, e.m.b, g, h)

	z, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return 0, nil, err
	}

	return z, x[:e.m.numVars], nil
}

// mostFractional returns the variable index whose LP value is closest to
// 0.5 (GoMILP's branching.go:mostInfeasibleBranchPoint), or -1 if every
// value is within intTol of 0 or 1 (i.e. the node is integer-feasible).
func mostFractional(x []float64) int {
	best := -1
	bestDist := 0.5 + 1 // worse than any real distance to 0.5

	for k, v := range x {
		frac := v - math.Floor(v)
		if frac < intTol || frac > 1-intTol {
			continue // effectively integral
		}
		dist := math.Abs(0.5 - frac)
		if dist < bestDist {
			best = k
			bestDist = dist
		}
	}

	return best
}

// recordIncumbent stores x (already verified integer-feasible) as the new
// best, extracting Assign from the edge variables.
func (e *bbEngine) recordIncumbent(z float64, x []float64) {
	objective := int(math.Round(z))
	if e.haveIncumbent && objective >= e.bestObjective {
		return
	}

	assign := identityAssign(e.m.n)
	resolved := make([]bool, e.m.n)
	for _, ed := range e.m.edges {
		v := x[e.m.edgeVar[ed.i][ed.j]]
		if v > 0.5 {
			assign[ed.i] = ed.j
			resolved[ed.i] = true
		}
	}
	incomplete := false
	for i, ok := range resolved {
		if !ok {
			assign[i] = i // repair: force self-kept (spec §4.4, §7)
			incomplete = true
		}
	}

	e.bestObjective = objective
	e.bestAssign = assign
	e.haveIncumbent = true
	e.incompleteIncumbent = incomplete
	if incomplete && e.log != nil {
		e.log.Warn("exact: incomplete incumbent repaired by forcing self-assignment")
	}
}

// dfs explores the branch-and-bound tree depth-first from the current path.
func (e *bbEngine) dfs(path []bnbRow) {
	e.nodes++
	if e.nodes%deadlineCheckEvery == 0 && e.cancelled() {
		return
	}

	z, x, err := e.solveRelaxation(path)
	if err != nil {
		return // infeasible/singular subtree: prune
	}

	bound := int(math.Ceil(z - boundEps))
	if e.haveIncumbent && bound >= e.bestObjective {
		return // cannot improve on the incumbent
	}

	branchVar := mostFractional(x)
	if branchVar == -1 {
		// Integer-feasible leaf.
		e.recordIncumbent(z, x)
		return
	}

	floorRow := bnbRow{coeffs: unitRow(e.m.numVars, branchVar, 1), rhs: 0}
	ceilCoeffs := unitRow(e.m.numVars, branchVar, -1)
	ceilRow := bnbRow{coeffs: ceilCoeffs, rhs: -1}

	e.dfs(append(path, floorRow))
	if e.cancelled() {
		return
	}
	e.dfs(append(path, ceilRow))
}

func unitRow(n, k int, coeff float64) []float64 {
	r := make([]float64, n)
	r[k] = coeff

	return r
}
