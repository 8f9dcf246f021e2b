// Package model defines the Subproblem value type: the immutable input unit
// the rest of the engine (feasibility, packer, exact, dispatch, report) is
// built against.
package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed subproblem construction.
var (
	// ErrEmptyRoomID indicates a room was supplied with an empty identifier.
	ErrEmptyRoomID = errors.New("model: room id is empty")

	// ErrDuplicateRoomID indicates two rooms in the same subproblem share an id.
	ErrDuplicateRoomID = errors.New("model: duplicate room id")

	// ErrNonPositiveCapacity indicates a room's capacity is not a positive integer.
	ErrNonPositiveCapacity = errors.New("model: capacity must be positive")

	// ErrNegativeStudents indicates a room's student count is negative.
	ErrNegativeStudents = errors.New("model: students must be non-negative")
)

// InvalidInput is returned when a room record fails the students<=capacity
// invariant on construction (spec §3, §4.1, §7). It carries the offending
// room id so the driver can report precisely which input row is at fault.
type InvalidInput struct {
	Room   string
	Reason string
}

func (e *InvalidInput) Error() string {
	return fmt.Sprintf("model: invalid input for room %q: %s", e.Room, e.Reason)
}
