package model

import "fmt"

// Subproblem is an immutable value type holding every room belonging to one
// (shift, campus) group. Indices 0..N()-1 are the stable algorithmic
// identity used throughout feasibility/packer/exact/dispatch/report; Room.ID
// is purely for display (spec §3).
//
// A Subproblem lives until its Assignment result is produced, then is
// discarded (spec §3 Lifecycle) — it carries no mutable state and performs
// no synchronization (spec §5).
type Subproblem struct {
	key   GroupKey
	rooms []Room
}

// NewSubproblem validates rooms and constructs a Subproblem.
//
// Validation (spec §4.1):
//   - every room has a non-empty, unique id
//   - capacity is a positive integer
//   - students is non-negative
//   - students <= capacity, else *InvalidInput is returned
//
// The returned Subproblem owns a copy of rooms; later mutation of the input
// slice does not affect it.
func NewSubproblem(key GroupKey, rooms []Room) (*Subproblem, error) {
	owned := make([]Room, len(rooms))
	copy(owned, rooms)

	seen := make(map[string]struct{}, len(owned))
	for i := range owned {
		r := owned[i]
		if r.ID == "" {
			return nil, ErrEmptyRoomID
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoomID, r.ID)
		}
		seen[r.ID] = struct{}{}

		if r.Capacity <= 0 {
			return nil, &InvalidInput{Room: r.ID, Reason: "capacity must be positive"}
		}
		if r.Students < 0 {
			return nil, &InvalidInput{Room: r.ID, Reason: "students must be non-negative"}
		}
		if r.Students > r.Capacity {
			return nil, &InvalidInput{Room: r.ID, Reason: "students exceed capacity"}
		}
	}

	return &Subproblem{key: key, rooms: owned}, nil
}

// Key returns the (shift, campus) group this subproblem was built for.
func (s *Subproblem) Key() GroupKey { return s.key }

// N returns the number of rooms (equivalently, vertices in the feasibility
// graph) in this subproblem.
func (s *Subproblem) N() int { return len(s.rooms) }

// Room returns the room at index i. Panics if i is out of range; callers in
// this module always derive i from 0..N()-1.
func (s *Subproblem) Room(i int) Room { return s.rooms[i] }

// Rooms returns a read-only view of every room, in index order. Callers must
// not mutate the returned slice.
func (s *Subproblem) Rooms() []Room { return s.rooms }

// TotalStudents sums Students across every room; used by the exact solver's
// total-capacity cut (spec §4.4, constraint 6).
func (s *Subproblem) TotalStudents() int {
	total := 0
	for _, r := range s.rooms {
		total += r.Students
	}

	return total
}
