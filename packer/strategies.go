package packer

import "sort"

// selectionRule picks which eligible destination j a source i merges into.
type selectionRule int

const (
	bestFit selectionRule = iota
	firstFit
	worstFit
)

// sourceOrder decides the total order sources are processed in.
type sourceOrder int

const (
	byStudentsAsc sourceOrder = iota
	byStudentsDesc
	byCapacityDesc
)

// strategy is one of the five fixed passes spec §4.3 enumerates. Index is
// the strategy's position in strategies(), used as the tie-break: earlier
// wins when two strategies reach the same objective.
type strategy struct {
	name     string
	order    sourceOrder
	rule     selectionRule
}

// strategies returns the five passes in the exact order spec §4.3 lists
// them, so index-based tie-breaking matches the spec.
func strategies() []strategy {
	return []strategy{
		{name: "best-fit/students-asc", order: byStudentsAsc, rule: bestFit},
		{name: "best-fit/students-desc", order: byStudentsDesc, rule: bestFit},
		{name: "first-fit/students-desc", order: byStudentsDesc, rule: firstFit},
		{name: "worst-fit/students-desc", order: byStudentsDesc, rule: worstFit},
		{name: "best-fit/capacity-desc", order: byCapacityDesc, rule: bestFit},
	}
}

// sourceSequence returns source indices 0..n-1 sorted according to ord. Ties
// within equal keys fall back to ascending index, keeping every strategy
// deterministic.
func sourceSequence(n int, students, capacity []int, ord sourceOrder) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}

	switch ord {
	case byStudentsAsc:
		sort.SliceStable(seq, func(a, b int) bool {
			if students[seq[a]] != students[seq[b]] {
				return students[seq[a]] < students[seq[b]]
			}
			return seq[a] < seq[b]
		})
	case byStudentsDesc:
		sort.SliceStable(seq, func(a, b int) bool {
			if students[seq[a]] != students[seq[b]] {
				return students[seq[a]] > students[seq[b]]
			}
			return seq[a] < seq[b]
		})
	case byCapacityDesc:
		sort.SliceStable(seq, func(a, b int) bool {
			if capacity[seq[a]] != capacity[seq[b]] {
				return capacity[seq[a]] > capacity[seq[b]]
			}
			return seq[a] < seq[b]
		})
	}

	return seq
}
