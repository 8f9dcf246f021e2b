package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/examconsolidate/examconsolidate/assignment"
	"github.com/examconsolidate/examconsolidate/feasibility"
	"github.com/examconsolidate/examconsolidate/model"
	"github.com/examconsolidate/examconsolidate/packer"
	"github.com/examconsolidate/examconsolidate/report"
)

func TestBuildReportForScenarioS1(t *testing.T) {
	rooms := []model.Room{
		{ID: "R1", Subject: "A", Students: 10, Capacity: 30},
		{ID: "R2", Subject: "B", Students: 15, Capacity: 30},
		{ID: "R3", Subject: "A", Students: 5, Capacity: 30},
	}
	sp, err := model.NewSubproblem(model.GroupKey{Shift: "AM", Campus: "Main"}, rooms)
	require.NoError(t, err)
	idx := feasibility.Build(sp)
	a := packer.PackBest(sp, idx)

	r := report.Build(sp, a)
	require.Equal(t, 2, r.Summary.FinalRoomsCount)
	require.Equal(t, 3, r.Summary.InitialRoomsCount)
	require.Equal(t, 1, r.Summary.RoomsRemovedCount)
	require.Len(t, r.Groups, 2)
	require.Len(t, r.Merges, 1)

	merge := r.Merges[0]
	require.Equal(t, "R3", merge.FromRoom)
	require.Equal(t, "R2", merge.ToRoom)
}

func TestBuildReportNoMergesKeepsEveryRoom(t *testing.T) {
	rooms := []model.Room{
		{ID: "R1", Subject: "A", Students: 20, Capacity: 20},
		{ID: "R2", Subject: "B", Students: 20, Capacity: 20},
	}
	sp, err := model.NewSubproblem(model.GroupKey{Shift: "PM", Campus: "North"}, rooms)
	require.NoError(t, err)
	idx := feasibility.Build(sp)
	a := packer.PackBest(sp, idx)

	r := report.Build(sp, a)
	require.Empty(t, r.Merges)
	require.Len(t, r.Groups, 2)
	require.Empty(t, r.Summary.RemovedRoomIDs)
}

func TestWriteGroupsCSVAndJSONRoundTrip(t *testing.T) {
	rooms := []model.Room{
		{ID: "R1", Subject: "A", Students: 5, Capacity: 50},
		{ID: "R2", Subject: "B", Students: 5, Capacity: 50},
	}
	sp, err := model.NewSubproblem(model.GroupKey{Shift: "AM", Campus: "Main"}, rooms)
	require.NoError(t, err)
	idx := feasibility.Build(sp)
	a := packer.PackBest(sp, idx)
	require.NoError(t, assignment.Validate(sp, a))

	r := report.Build(sp, a)

	var csvBuf bytes.Buffer
	require.NoError(t, report.WriteGroupsCSV(&csvBuf, r.Groups))
	require.Contains(t, csvBuf.String(), "Kept Room")

	var jsonBuf bytes.Buffer
	require.NoError(t, report.WriteJSON(&jsonBuf, []report.RoomChangeSummary{r.Summary}))
	require.Contains(t, jsonBuf.String(), "efficiency_percent")
}

func TestSummarizeComputesEfficiency(t *testing.T) {
	s := report.Summarize([]report.RoomChangeSummary{
		{InitialRoomsCount: 10, FinalRoomsCount: 6},
		{InitialRoomsCount: 5, FinalRoomsCount: 5},
	})
	require.Equal(t, 15, s.InitialRooms)
	require.Equal(t, 11, s.FinalRooms)
	require.Equal(t, 4, s.RoomsSaved)
	require.InDelta(t, 26.7, s.EfficiencyPercent, 0.1)
}
