package exact_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/examconsolidate/examconsolidate/assignment"
	"github.com/examconsolidate/examconsolidate/exact"
	"github.com/examconsolidate/examconsolidate/feasibility"
	"github.com/examconsolidate/examconsolidate/model"
)

func solveExact(t *testing.T, ctx context.Context, rooms []model.Room) assignment.Assignment {
	t.Helper()
	sp, err := model.NewSubproblem(model.GroupKey{}, rooms)
	require.NoError(t, err)
	idx := feasibility.Build(sp)
	a, err := exact.Solve(ctx, sp, idx, nil)
	require.NoError(t, err)
	require.NoError(t, assignment.Validate(sp, a))

	return a
}

func TestSolveEmptySubproblem(t *testing.T) {
	a := solveExact(t, context.Background(), nil)
	require.Equal(t, assignment.Optimal, a.Status)
	require.Equal(t, 0, a.Objective)
}

func TestSolveAllDistinctSubjectsConsolidatesToOne(t *testing.T) {
	a := solveExact(t, context.Background(), []model.Room{
		{ID: "R1", Subject: "A", Students: 5, Capacity: 50},
		{ID: "R2", Subject: "B", Students: 5, Capacity: 50},
		{ID: "R3", Subject: "C", Students: 5, Capacity: 50},
		{ID: "R4", Subject: "D", Students: 5, Capacity: 50},
	})
	require.Equal(t, assignment.Optimal, a.Status)
	require.Equal(t, 1, a.Objective)
}

func TestSolveNoFreeCapacityKeepsEveryRoom(t *testing.T) {
	a := solveExact(t, context.Background(), []model.Room{
		{ID: "R1", Subject: "A", Students: 20, Capacity: 20},
		{ID: "R2", Subject: "B", Students: 20, Capacity: 20},
		{ID: "R3", Subject: "C", Students: 20, Capacity: 20},
	})
	require.Equal(t, assignment.Optimal, a.Status)
	require.Equal(t, 3, a.Objective)
}

// S4 from spec §8: two same-subject rooms cannot share a destination, so
// three rooms collapse to two, never one.
func TestSolveSameSubjectRoomsCannotShareDestination(t *testing.T) {
	a := solveExact(t, context.Background(), []model.Room{
		{ID: "R1", Subject: "A", Students: 30, Capacity: 30},
		{ID: "R2", Subject: "A", Students: 10, Capacity: 40},
		{ID: "R3", Subject: "B", Students: 10, Capacity: 40},
	})
	require.Equal(t, assignment.Optimal, a.Status)
	require.Equal(t, 2, a.Objective)
}

func TestSolveAlreadyExpiredDeadlineReturnsIdentityFeasible(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	time.Sleep(time.Millisecond)

	rooms := []model.Room{
		{ID: "R1", Subject: "A", Students: 5, Capacity: 50},
		{ID: "R2", Subject: "B", Students: 5, Capacity: 50},
	}
	a := solveExact(t, ctx, rooms)
	require.Equal(t, assignment.Feasible, a.Status)
	require.Equal(t, 2, a.Objective)
	require.Equal(t, []int{0, 1}, a.Assign)
}

func TestSolveMatchesGreedyOptimalOnSmallInstance(t *testing.T) {
	rooms := []model.Room{
		{ID: "R1", Subject: "A", Students: 10, Capacity: 30},
		{ID: "R2", Subject: "B", Students: 15, Capacity: 30},
		{ID: "R3", Subject: "A", Students: 5, Capacity: 30},
	}
	a := solveExact(t, context.Background(), rooms)
	require.Equal(t, assignment.Optimal, a.Status)
	require.Equal(t, 2, a.Objective)
}
