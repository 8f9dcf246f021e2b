package ingest

import (
	"encoding/csv"
	"io"
	"sort"

	"github.com/examconsolidate/examconsolidate/model"
)

// ParseCSV reads a header row followed by data rows from r and returns one
// Subproblem per (shift, campus) group, sorted by shift then campus to
// match the original implementation's groupby(["shift","campus"], sort=True).
func ParseCSV(r io.Reader) ([]*model.Subproblem, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	headers, err := cr.Read()
	if err != nil {
		return nil, err
	}
	cs, err := resolveColumns(headers)
	if err != nil {
		return nil, err
	}

	type groupKey struct{ shift, campus string }
	rows := make(map[groupKey][]model.Room)

	rowNum := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rowNum++

		rec, err := parseRow(cs, row, rowNum)
		if err != nil {
			return nil, err
		}

		gk := groupKey{shift: rec.shiftKey(), campus: rec.campus}
		rows[gk] = append(rows[gk], model.Room{
			ID:       rec.room,
			Subject:  rec.subject,
			Students: rec.students,
			Capacity: rec.capacity,
		})
	}

	keys := make([]groupKey, 0, len(rows))
	for gk := range rows {
		keys = append(keys, gk)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].shift != keys[j].shift {
			return keys[i].shift < keys[j].shift
		}

		return keys[i].campus < keys[j].campus
	})

	subs := make([]*model.Subproblem, 0, len(keys))
	for _, gk := range keys {
		sp, err := model.NewSubproblem(model.GroupKey{Shift: gk.shift, Campus: gk.campus}, rows[gk])
		if err != nil {
			return nil, err
		}
		subs = append(subs, sp)
	}

	return subs, nil
}
