// Package ingest turns raw CSV rows into model.Room records grouped by
// (shift, campus), the upstream intake described in spec §6.1. Column-name
// discovery and the composite shift key (date + raw shift, when a date
// column is present) are grounded on pick_col and the shift/campus groupby
// in the original implementation's src/core/merging.py.
package ingest
