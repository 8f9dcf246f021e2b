package assignment

import (
	"errors"
	"fmt"

	"github.com/examconsolidate/examconsolidate/model"
)

// Sentinel errors for invariant violations (spec §8). These are only ever
// surfaced by Validate, a test/debug aid — no production solver path returns
// them, since every solver is expected to already satisfy the invariants.
var (
	ErrWrongLength       = errors.New("assignment: len(Assign) != subproblem size")
	ErrDestinationOOR    = errors.New("assignment: destination index out of range")
	ErrDestinationNotSelf = errors.New("assignment: open destination does not assign to itself")
	ErrAssignNotOpen     = errors.New("assignment: a source's destination is not in Open")
	ErrCapacityExceeded  = errors.New("assignment: destination capacity exceeded")
	ErrSubjectCollision  = errors.New("assignment: two rooms of the same subject share a destination")
	ErrObjectiveMismatch = errors.New("assignment: Objective != len(Open)")
)

// Validate checks every invariant spec §3/§8 requires of a returned result,
// against the Subproblem it was computed for. It is used by tests across
// packer, exact, and dispatch to hold every solver path to the same bar.
func Validate(sp *model.Subproblem, a Assignment) error {
	n := sp.N()
	if len(a.Assign) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongLength, len(a.Assign), n)
	}

	openSet := make(map[int]struct{}, len(a.Open))
	for _, j := range a.Open {
		openSet[j] = struct{}{}
	}

	for i, dest := range a.Assign {
		if dest < 0 || dest >= n {
			return fmt.Errorf("%w: Assign[%d]=%d", ErrDestinationOOR, i, dest)
		}
		if _, ok := openSet[dest]; !ok {
			return fmt.Errorf("%w: Assign[%d]=%d not in Open", ErrAssignNotOpen, i, dest)
		}
	}
	for _, j := range a.Open {
		if a.Assign[j] != j {
			return fmt.Errorf("%w: room %d", ErrDestinationNotSelf, j)
		}
	}

	rooms := sp.Rooms()
	load := make(map[int]int, len(a.Open))
	subjectsAt := make(map[int]map[string]int, len(a.Open))
	for i, dest := range a.Assign {
		load[dest] += rooms[i].Students
		if subjectsAt[dest] == nil {
			subjectsAt[dest] = make(map[string]int)
		}
		subjectsAt[dest][rooms[i].Subject]++
	}
	for _, j := range a.Open {
		if load[j] > rooms[j].Capacity {
			return fmt.Errorf("%w: room %d has %d students, capacity %d", ErrCapacityExceeded, j, load[j], rooms[j].Capacity)
		}
		for subj, count := range subjectsAt[j] {
			if count > 1 {
				return fmt.Errorf("%w: room %d subject %q appears %d times", ErrSubjectCollision, j, subj, count)
			}
		}
	}

	if a.Objective != len(a.Open) {
		return fmt.Errorf("%w: Objective=%d len(Open)=%d", ErrObjectiveMismatch, a.Objective, len(a.Open))
	}

	return nil
}
