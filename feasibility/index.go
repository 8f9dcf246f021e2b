// Package feasibility builds the directed feasibility graph over a
// Subproblem's rooms (spec §3 Feasibility graph, §4.2 C2).
//
// An edge i→j exists iff i==j (self-edge, always present) or rooms i and j
// examine different subjects and j has enough free seats for i's students.
// The graph is derived once per solve and discarded afterward — it holds no
// state beyond the Subproblem it was built from (spec §3 Lifecycle, §5).
package feasibility

import "github.com/examconsolidate/examconsolidate/model"

// Index is the precomputed, read-only feasibility graph plus subject
// bucketing for one Subproblem.
type Index struct {
	// Out[i] lists every j (including i) such that edge i→j is feasible.
	Out [][]int

	// In[j] lists every i such that edge i→j is feasible.
	In [][]int

	// SubjectBuckets maps each subject code to the indices sharing it.
	SubjectBuckets map[string][]int

	// MaxBucketSize is the size of the largest subject bucket; used by the
	// exact solver's subject-diversity cut (spec §4.4, constraint 7).
	MaxBucketSize int
}

// Build constructs the feasibility Index for sp. Cost is O(n²) time,
// O(|E|) space (spec §4.2).
func Build(sp *model.Subproblem) *Index {
	n := sp.N()
	idx := &Index{
		Out:            make([][]int, n),
		In:             make([][]int, n),
		SubjectBuckets: make(map[string][]int),
	}

	rooms := sp.Rooms()
	for i := 0; i < n; i++ {
		idx.SubjectBuckets[rooms[i].Subject] = append(idx.SubjectBuckets[rooms[i].Subject], i)
	}
	for _, bucket := range idx.SubjectBuckets {
		if len(bucket) > idx.MaxBucketSize {
			idx.MaxBucketSize = len(bucket)
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || feasibleEdge(rooms[i], rooms[j]) {
				idx.Out[i] = append(idx.Out[i], j)
				idx.In[j] = append(idx.In[j], i)
			}
		}
	}

	return idx
}

// feasibleEdge reports whether room i can merge into room j (i != j): they
// must examine different subjects, and j must have enough free seats for
// i's students after accounting for j's own students.
func feasibleEdge(ri, rj model.Room) bool {
	if ri.Subject == rj.Subject {
		return false
	}

	return ri.Students <= rj.Capacity-rj.Students
}
