package ingest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MissingColumnError names a required field whose header could not be
// resolved against any known alias.
type MissingColumnError struct {
	Field string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("ingest: no column found for required field %q", e.Field)
}

// ErrNotANumber is wrapped with row/column context when students or capacity
// fails to parse as an integer.
var ErrNotANumber = errors.New("ingest: value is not an integer")

// rawRecord is one parsed input row before grouping: normalized room fields
// plus the raw_shift/date pieces needed to build the composite shift key.
type rawRecord struct {
	room      string
	rawShift  string
	date      string
	subject   string
	campus    string
	students  int
	capacity  int
}

// columnSet resolves header positions once per file, per the required/
// optional split in the original implementation's column discovery.
type columnSet struct {
	room, shift, subject, students, capacity int // required; -1 is a parse error
	campus, date                             int // optional; -1 means absent
}

// resolveColumns locates every field's column in headers, returning
// *MissingColumnError for any required field absent from the header row.
func resolveColumns(headers []string) (columnSet, error) {
	cs := columnSet{
		room:     pickColumn(headers, "room"),
		shift:    pickColumn(headers, "shift"),
		subject:  pickColumn(headers, "subject"),
		students: pickColumn(headers, "students"),
		capacity: pickColumn(headers, "capacity"),
		campus:   pickColumn(headers, "campus"),
		date:     pickColumn(headers, "date"),
	}

	for field, idx := range map[string]int{
		"room": cs.room, "shift": cs.shift, "subject": cs.subject,
		"students": cs.students, "capacity": cs.capacity,
	} {
		if idx == -1 {
			return cs, &MissingColumnError{Field: field}
		}
	}

	return cs, nil
}

// parseRow converts one data row into a rawRecord using cs's resolved
// column positions. Strings are whitespace-trimmed, matching the upstream
// stripping spec §6.1 requires of the core's callers.
func parseRow(cs columnSet, row []string, rowNum int) (rawRecord, error) {
	get := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[idx])
	}

	students, err := strconv.Atoi(get(cs.students))
	if err != nil {
		return rawRecord{}, fmt.Errorf("ingest: row %d column students: %w: %q", rowNum, ErrNotANumber, get(cs.students))
	}
	capacity, err := strconv.Atoi(get(cs.capacity))
	if err != nil {
		return rawRecord{}, fmt.Errorf("ingest: row %d column capacity: %w: %q", rowNum, ErrNotANumber, get(cs.capacity))
	}

	campus := "ALL"
	if cs.campus >= 0 {
		campus = get(cs.campus)
	}

	return rawRecord{
		room:     get(cs.room),
		rawShift: get(cs.shift),
		date:     get(cs.date),
		subject:  get(cs.subject),
		campus:   campus,
		students: students,
		capacity: capacity,
	}, nil
}

// shiftKey builds the composite shift identifier: date + "_" + raw shift
// when a date column was present, otherwise the raw shift alone, mirroring
// the original implementation's work["shift"] construction.
func (r rawRecord) shiftKey() string {
	if r.date == "" {
		return r.rawShift
	}

	return r.date + "_" + r.rawShift
}
