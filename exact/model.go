package exact

import (
	"gonum.org/v1/gonum/mat"

	"github.com/examconsolidate/examconsolidate/feasibility"
	"github.com/examconsolidate/examconsolidate/model"
)

// edge is one feasible (source, destination) pair; the index of its x[i,j]
// decision variable is held in milp.edgeVar[i][j].
type edge struct {
	i, j int
}

// milp is the 0/1 integer-program formulation of spec §4.4: variables
// x[i,j] for every feasible edge plus y[j] for every room, assembled into
// dense equality (A, b) and inequality (G, h) systems ready for
// convertToEqualities + lp.Simplex at the root node.
type milp struct {
	n     int
	edges []edge

	// edgeVar[i][j] is the x[i,j] variable index, -1 if edge i->j is not
	// feasible. yVar[j] is the y[j] variable index.
	edgeVar [][]int
	yVar    []int

	numVars int

	c *mat.VecDense // length numVars, objective coefficients (cost minimized)
	A *mat.Dense    // equality constraints
	b []float64
	G *mat.Dense // inequality constraints: G*x <= h
	h []float64
}

// buildMILP assembles the formulation of spec §4.4 constraints 1-7 from a
// Subproblem and its feasibility Index.
func buildMILP(sp *model.Subproblem, idx *feasibility.Index) *milp {
	n := sp.N()
	rooms := sp.Rooms()

	m := &milp{n: n, edgeVar: make([][]int, n), yVar: make([]int, n)}
	for i := 0; i < n; i++ {
		m.edgeVar[i] = make([]int, n)
		for j := 0; j < n; j++ {
			m.edgeVar[i][j] = -1
		}
	}

	// Variable layout: edges first (in idx.Out iteration order), then y[j].
	varIdx := 0
	for i := 0; i < n; i++ {
		for _, j := range idx.Out[i] {
			m.edges = append(m.edges, edge{i: i, j: j})
			m.edgeVar[i][j] = varIdx
			varIdx++
		}
	}
	yBase := varIdx
	for j := 0; j < n; j++ {
		m.yVar[j] = yBase + j
	}
	m.numVars = yBase + n

	// Objective: minimize sum_j y[j].
	cData := make([]float64, m.numVars)
	for j := 0; j < n; j++ {
		cData[m.yVar[j]] = 1
	}
	m.c = mat.NewVecDense(m.numVars, cData)

	// --- Equalities ---
	// (1) assignment: sum_{j in out[i]} x[i,j] = 1
	// (3) self-kept equivalence: y[j] - x[j,j] = 0
	eqRows := n + n
	aData := make([]float64, eqRows*m.numVars)
	bData := make([]float64, eqRows)
	a := mat.NewDense(eqRows, m.numVars, aData)
	row := 0
	for i := 0; i < n; i++ {
		for _, j := range idx.Out[i] {
			a.Set(row, m.edgeVar[i][j], 1)
		}
		bData[row] = 1
		row++
	}
	for j := 0; j < n; j++ {
		a.Set(row, m.yVar[j], 1)
		a.Set(row, m.edgeVar[j][j], -1)
		bData[row] = 0
		row++
	}
	m.A = a
	m.b = bData

	// --- Inequalities ---
	var gRows [][]float64
	var hVals []float64

	// (2) open-room linkage: x[i,j] - y[j] <= 0, for i != j.
	for i := 0; i < n; i++ {
		for _, j := range idx.Out[i] {
			if i == j {
				continue
			}
			r := make([]float64, m.numVars)
			r[m.edgeVar[i][j]] = 1
			r[m.yVar[j]] = -1
			gRows = append(gRows, r)
			hVals = append(hVals, 0)
		}
	}

	// (4) capacity: sum_{i in in[j]} students[i]*x[i,j] - capacity[j]*y[j] <= 0.
	for j := 0; j < n; j++ {
		r := make([]float64, m.numVars)
		for _, i := range idx.In[j] {
			r[m.edgeVar[i][j]] += float64(rooms[i].Students)
		}
		r[m.yVar[j]] = -float64(rooms[j].Capacity)
		gRows = append(gRows, r)
		hVals = append(hVals, 0)
	}

	// (5) subject disjointness: for each destination j and subject s with
	// more than one candidate source, sum x[i,j] <= 1.
	for j := 0; j < n; j++ {
		bySubject := make(map[string][]int)
		for _, i := range idx.In[j] {
			bySubject[rooms[i].Subject] = append(bySubject[rooms[i].Subject], i)
		}
		for _, sources := range bySubject {
			if len(sources) < 2 {
				continue
			}
			r := make([]float64, m.numVars)
			for _, i := range sources {
				r[m.edgeVar[i][j]] = 1
			}
			gRows = append(gRows, r)
			hVals = append(hVals, 1)
		}
	}

	// (6) total-capacity cut: -sum_j capacity[j]*y[j] <= -totalStudents.
	{
		r := make([]float64, m.numVars)
		for j := 0; j < n; j++ {
			r[m.yVar[j]] = -float64(rooms[j].Capacity)
		}
		gRows = append(gRows, r)
		hVals = append(hVals, -float64(sp.TotalStudents()))
	}

	// (7) subject-diversity cut: -sum_j y[j] <= -max_bucket_size.
	{
		r := make([]float64, m.numVars)
		for j := 0; j < n; j++ {
			r[m.yVar[j]] = -1
		}
		gRows = append(gRows, r)
		hVals = append(hVals, -float64(idx.MaxBucketSize))
	}

	gData := make([]float64, len(gRows)*m.numVars)
	g := mat.NewDense(len(gRows), m.numVars, gData)
	for i, r := range gRows {
		g.SetRow(i, r)
	}
	m.G = g
	m.h = hVals

	return m
}

// identityAssign is the trivial "everyone stays" assignment: always feasible
// (spec §4.2 guarantees self-edges), used to seed the branch-and-bound
// incumbent before any LP is solved.
func identityAssign(n int) []int {
	assign := make([]int, n)
	for i := range assign {
		assign[i] = i
	}

	return assign
}
