package packer

import (
	"github.com/examconsolidate/examconsolidate/assignment"
	"github.com/examconsolidate/examconsolidate/feasibility"
	"github.com/examconsolidate/examconsolidate/model"
)

// engine holds the running state of a single strategy pass: which rooms are
// still self-kept, their accumulated load, and their accumulated subject
// set. A fresh engine is built per strategy so passes never share state.
type engine struct {
	n        int
	students []int
	capacity []int
	subjects []string
	out      [][]int

	assign     []int
	load       []int
	subjectsAt []map[string]struct{}

	// received[j] marks that some source has already merged into j. A room
	// that has received a merge must stay a root for the rest of the pass:
	// its members point directly at it, and letting it become a source
	// itself would orphan them (their destination would no longer be open).
	received []bool
}

func newEngine(sp *model.Subproblem, idx *feasibility.Index) *engine {
	n := sp.N()
	e := &engine{
		n:          n,
		students:   make([]int, n),
		capacity:   make([]int, n),
		subjects:   make([]string, n),
		out:        idx.Out,
		assign:     make([]int, n),
		load:       make([]int, n),
		subjectsAt: make([]map[string]struct{}, n),
		received:   make([]bool, n),
	}
	for i, r := range sp.Rooms() {
		e.students[i] = r.Students
		e.capacity[i] = r.Capacity
		e.subjects[i] = r.Subject
		e.assign[i] = i
		e.load[i] = r.Students
		e.subjectsAt[i] = map[string]struct{}{r.Subject: {}}
	}

	return e
}

// disjoint reports whether i's accumulated subject set and j's accumulated
// subject set share no subject (spec §4.3: subjects_at[j] ∩ subjects_at[i]
// = ∅), mirroring the original implementation's
// current_subjects[i].isdisjoint(current_subjects[j]).
func (e *engine) disjoint(i, j int) bool {
	for subj := range e.subjectsAt[i] {
		if _, clash := e.subjectsAt[j][subj]; clash {
			return false
		}
	}

	return true
}

// merge folds source i into destination j: spec §4.3's three update rules.
func (e *engine) merge(i, j int) {
	e.assign[i] = j
	e.load[j] += e.load[i]
	for subj := range e.subjectsAt[i] {
		e.subjectsAt[j][subj] = struct{}{}
	}
	e.received[j] = true
}

// run executes one strategy pass and returns the resulting Assign slice.
func (e *engine) run(st strategy) []int {
	seq := sourceSequence(e.n, e.students, e.capacity, st.order)

	for _, i := range seq {
		if e.assign[i] != i {
			continue // already merged by an earlier source in this pass
		}
		if e.received[i] {
			continue // already a destination: must stay a root for its members
		}

		bestJ := -1
		bestScore := 0

		for _, j := range e.out[i] {
			if j == i || e.assign[j] != j {
				continue // destinations must still be self-kept roots
			}
			if e.load[j]+e.load[i] > e.capacity[j] {
				continue
			}
			if !e.disjoint(i, j) {
				continue
			}

			remaining := e.capacity[j] - (e.load[j] + e.load[i])
			switch st.rule {
			case firstFit:
				bestJ = j
			case bestFit:
				if bestJ == -1 || remaining < bestScore {
					bestJ, bestScore = j, remaining
				}
			case worstFit:
				if bestJ == -1 || remaining > bestScore {
					bestJ, bestScore = j, remaining
				}
			}
			if st.rule == firstFit {
				break
			}
		}

		if bestJ != -1 {
			e.merge(i, bestJ)
		}
	}

	out := make([]int, e.n)
	copy(out, e.assign)

	return out
}

// PackBest runs all five strategies of spec §4.3 and returns the assignment
// with the smallest objective, breaking ties by strategy index (earlier
// wins). Non-blocking, O(k*n^2) with k=5 (spec §4.3, §5). Cannot fail on
// valid input: in the worst case every room stays with itself.
func PackBest(sp *model.Subproblem, idx *feasibility.Index) assignment.Assignment {
	if sp.N() == 0 {
		return assignment.FromAssign(nil, assignment.Heuristic)
	}

	var best assignment.Assignment
	haveBest := false

	for _, st := range strategies() {
		e := newEngine(sp, idx)
		assign := e.run(st)
		candidate := assignment.FromAssign(assign, assignment.Heuristic)

		if !haveBest || candidate.Objective < best.Objective {
			best = candidate
			haveBest = true
		}
	}

	return best
}
