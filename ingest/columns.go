package ingest

import "strings"

// columnCandidates lists the header aliases recognized for each field,
// mirroring pick_col's candidate lists in the original implementation
// (Vietnamese and English variants, plus the source system's raw codes).
var columnCandidates = map[string][]string{
	"room":     {"Phong", "Room", "Ma phong", "F_TENPHMOI"},
	"shift":    {"Ca thi", "Ca", "Cathi", "Shift", "Ca_thi", "GIOTHI_BD", "GI"},
	"subject":  {"Ma mon", "Mon thi", "Subject", "Ma_mon", "F_MAMH"},
	"students": {"So sinh vien tham gia thi", "So thi sinh", "Students", "So SV", "F_SOLUONG"},
	"capacity": {"Suc chua thi", "Suc chua", "Capacity", "SUC_CHUA", "SUC_C"},
	"campus":   {"Co so", "Campus", "Facility", "Site", "COSO"},
	"date":     {"Ngay thi", "Date", "NGAYTHI", "Ngay"},
}

// pickColumn finds the header in headers matching one of field's known
// aliases, case-insensitively and whitespace-trimmed, mirroring pick_col.
// It returns the header's index or -1 if none match.
func pickColumn(headers []string, field string) int {
	candidates, ok := columnCandidates[field]
	if !ok {
		return -1
	}

	normalized := make(map[string]int, len(headers))
	for i, h := range headers {
		normalized[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, c := range candidates {
		if i, ok := normalized[strings.ToLower(strings.TrimSpace(c))]; ok {
			return i
		}
	}

	return -1
}
