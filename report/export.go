package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// RunSummary aggregates RoomChangeSummary across every subproblem of a run,
// mirroring export_to_json.py's "overall" block.
type RunSummary struct {
	InitialRooms      int     `json:"initial_rooms"`
	FinalRooms        int     `json:"final_rooms"`
	RoomsSaved        int     `json:"rooms_saved"`
	EfficiencyPercent float64 `json:"efficiency_percent"`
}

// Summarize folds a run's per-subproblem summaries into one RunSummary.
func Summarize(summaries []RoomChangeSummary) RunSummary {
	var initial, final int
	for _, s := range summaries {
		initial += s.InitialRoomsCount
		final += s.FinalRoomsCount
	}
	saved := initial - final

	var efficiency float64
	if initial > 0 {
		efficiency = roundTo1(float64(saved) / float64(initial) * 100)
	}

	return RunSummary{
		InitialRooms:      initial,
		FinalRooms:        final,
		RoomsSaved:        saved,
		EfficiencyPercent: efficiency,
	}
}

func roundTo1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

// jsonDetail is the per-subproblem row of WriteJSON's "details" array.
type jsonDetail struct {
	Shift        string   `json:"shift"`
	Campus       string   `json:"campus"`
	Initial      int      `json:"initial"`
	Final        int      `json:"final"`
	Saved        int      `json:"saved"`
	KeptRooms    []string `json:"kept_rooms"`
	RemovedRooms []string `json:"removed_rooms"`
}

type jsonDocument struct {
	Overall RunSummary   `json:"overall"`
	Details []jsonDetail `json:"details"`
}

// WriteJSON writes the run's overall summary plus one detail row per
// subproblem, the same shape export_to_json.py produces for the web viewer.
func WriteJSON(w io.Writer, summaries []RoomChangeSummary) error {
	doc := jsonDocument{Overall: Summarize(summaries)}
	for _, s := range summaries {
		doc.Details = append(doc.Details, jsonDetail{
			Shift:        s.Shift,
			Campus:       s.Campus,
			Initial:      s.InitialRoomsCount,
			Final:        s.FinalRoomsCount,
			Saved:        s.RoomsRemovedCount,
			KeptRooms:    s.KeptRoomIDs,
			RemovedRooms: s.RemovedRoomIDs,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// WriteGroupsCSV writes one row per Group, column order matching
// build_outputs_for_group's "groups" record.
func WriteGroupsCSV(w io.Writer, groups []Group) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"Shift", "Campus", "Group ID", "Kept Room", "Kept Subject",
		"Members Count", "Member Rooms", "Member Subjects", "Merged Subjects",
		"Total Students", "Remaining Capacity"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, g := range groups {
		row := []string{
			g.Shift, g.Campus, strconv.Itoa(g.GroupID), g.KeptRoom, g.KeptSubject,
			strconv.Itoa(len(g.MemberRooms)), strings.Join(g.MemberRooms, ", "), strings.Join(g.MemberSubjects, ", "),
			g.MergedSubjects, strconv.Itoa(g.TotalStudents), strconv.Itoa(g.RemainingCapacity),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// WriteMergesCSV writes one row per Merge, column order matching
// build_outputs_for_group's "merges" record.
func WriteMergesCSV(w io.Writer, merges []Merge) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"Shift", "Campus", "From Room", "From Subject", "From Students",
		"From Capacity", "To Room", "To Subject"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, m := range merges {
		row := []string{
			m.Shift, m.Campus, m.FromRoom, m.FromSubject, strconv.Itoa(m.FromStudents),
			strconv.Itoa(m.FromCapacity), m.ToRoom, m.ToSubject,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
