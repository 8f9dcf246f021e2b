package report

import (
	"sort"
	"strings"

	"github.com/examconsolidate/examconsolidate/assignment"
	"github.com/examconsolidate/examconsolidate/model"
)

// Group is one kept room and everything merged into it.
type Group struct {
	GroupID           int
	Shift, Campus     string
	KeptRoom          string
	KeptSubject       string
	MemberRooms       []string
	MemberSubjects    []string
	MergedSubjects    string // slash-joined member subjects, in member order
	TotalStudents     int
	RemainingCapacity int
}

// Merge is one non-self assignment: a room whose students moved elsewhere.
type Merge struct {
	Shift, Campus string
	FromRoom      string
	FromSubject   string
	FromStudents  int
	FromCapacity  int
	ToRoom        string
	ToSubject     string
}

// RoomChangeSummary tallies the before/after room counts for one subproblem.
type RoomChangeSummary struct {
	Shift, Campus     string
	InitialRoomsCount int
	FinalRoomsCount   int
	RoomsRemovedCount int
	KeptRoomIDs       []string
	RemovedRoomIDs    []string
}

// Report is the full output of C6 for one subproblem.
type Report struct {
	Groups  []Group
	Merges  []Merge
	Summary RoomChangeSummary
}

// Build consumes a Subproblem and its solved Assignment and produces the
// spec §4.6 report. a is assumed to already satisfy assignment.Validate.
func Build(sp *model.Subproblem, a assignment.Assignment) Report {
	rooms := sp.Rooms()
	key := sp.Key()

	members := make(map[int][]int, len(a.Open))
	for i, j := range a.Assign {
		members[j] = append(members[j], i)
	}

	openSorted := append([]int(nil), a.Open...)
	sort.Slice(openSorted, func(p, q int) bool { return rooms[openSorted[p]].ID < rooms[openSorted[q]].ID })

	groups := make([]Group, 0, len(openSorted))
	var merges []Merge

	for gid, j := range openSorted {
		mem := append([]int(nil), members[j]...)
		sort.Slice(mem, func(p, q int) bool {
			ia, ib := mem[p], mem[q]
			selfA, selfB := ia == j, ib == j
			if selfA != selfB {
				return selfA // j itself sorts first
			}

			return rooms[ia].ID < rooms[ib].ID
		})

		memberRooms := make([]string, len(mem))
		memberSubjects := make([]string, len(mem))
		total := 0
		for k, i := range mem {
			memberRooms[k] = rooms[i].ID
			memberSubjects[k] = rooms[i].Subject
			total += rooms[i].Students
		}

		groups = append(groups, Group{
			GroupID:           gid + 1,
			Shift:             key.Shift,
			Campus:            key.Campus,
			KeptRoom:          rooms[j].ID,
			KeptSubject:       rooms[j].Subject,
			MemberRooms:       memberRooms,
			MemberSubjects:    memberSubjects,
			MergedSubjects:    strings.Join(memberSubjects, "/"),
			TotalStudents:     total,
			RemainingCapacity: rooms[j].Capacity - total,
		})

		for _, i := range mem {
			if i == j {
				continue
			}
			merges = append(merges, Merge{
				Shift:        key.Shift,
				Campus:       key.Campus,
				FromRoom:     rooms[i].ID,
				FromSubject:  rooms[i].Subject,
				FromStudents: rooms[i].Students,
				FromCapacity: rooms[i].Capacity,
				ToRoom:       rooms[j].ID,
				ToSubject:    rooms[j].Subject,
			})
		}
	}

	keptIDs := make([]string, len(openSorted))
	for k, j := range openSorted {
		keptIDs[k] = rooms[j].ID
	}

	openSet := make(map[int]struct{}, len(a.Open))
	for _, j := range a.Open {
		openSet[j] = struct{}{}
	}
	var removedIDs []string
	for i, r := range rooms {
		if _, ok := openSet[i]; !ok {
			removedIDs = append(removedIDs, r.ID)
		}
	}
	sort.Strings(removedIDs)

	summary := RoomChangeSummary{
		Shift:             key.Shift,
		Campus:            key.Campus,
		InitialRoomsCount: sp.N(),
		FinalRoomsCount:   len(a.Open),
		RoomsRemovedCount: len(removedIDs),
		KeptRoomIDs:       keptIDs,
		RemovedRoomIDs:    removedIDs,
	}

	return Report{Groups: groups, Merges: merges, Summary: summary}
}
