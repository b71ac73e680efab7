// Package clean filters raw detector output down to tables worth keeping.
//
// Detectors over-segment pages into many candidate regions; most of them are
// noise such as page margins and running headers. The gates here are what
// keep that noise out of the output without per-document tuning.
package clean

import (
	"fmt"
	"strings"

	"github.com/tablift/tablift/pkg/tablift/models"
)

// Params holds the acceptance thresholds applied to every candidate table.
type Params struct {
	// MinRows is the minimum number of data rows for a table that is
	// assumed to carry a header.
	MinRows int
	// MinFillRatio is the minimum fraction of non-blank cells; sparser
	// grids are treated as extraction noise.
	MinFillRatio float64
	// ColumnPrefix names columns whose header is missing or a
	// placeholder, as "<prefix>_<n>" with a 1-based position.
	ColumnPrefix string
	// PlaceholderMarker flags auto-generated header names from upstream
	// detectors that should be treated as missing.
	PlaceholderMarker string
}

// DefaultParams returns the thresholds used when the caller does not tune
// them. The 0.1 ratio and 2-row minimum are heuristic; callers with an
// unusual document corpus can adjust them through Params.
func DefaultParams() Params {
	return Params{
		MinRows:           2,
		MinFillRatio:      0.1,
		ColumnPrefix:      "Column",
		PlaceholderMarker: "Unnamed",
	}
}

// Clean normalizes a raw table and reports whether it survived the
// acceptance gates. The steps, in order: drop all-empty rows, drop all-empty
// columns, promote the first remaining row to a header (or generate
// placeholder names when assumeHeader is false), rename blank or placeholder
// headers, then reject tables that are too small or too sparse. Cleaning an
// already-clean table returns it unchanged.
func Clean(raw models.Table, assumeHeader bool, p Params) (models.Table, bool) {
	width := len(raw.Columns)
	for _, r := range raw.Rows {
		if len(r) > width {
			width = len(r)
		}
	}
	if width == 0 {
		return models.Table{}, false
	}

	// Pad ragged rows so every row covers the full width. Missing cells
	// become empty strings.
	rows := make([][]string, 0, len(raw.Rows))
	for _, r := range raw.Rows {
		row := make([]string, width)
		copy(row, r)
		if !rowEmpty(row) {
			rows = append(rows, row)
		}
	}

	hasHeader := len(raw.Columns) > 0
	header := make([]string, width)
	copy(header, raw.Columns)

	// Drop columns where every cell is blank. The header cell counts as
	// content when a header is already present, so a named column with no
	// data survives recleaning.
	var keep []int
	for c := 0; c < width; c++ {
		filled := hasHeader && strings.TrimSpace(header[c]) != ""
		for _, row := range rows {
			if filled {
				break
			}
			if strings.TrimSpace(row[c]) != "" {
				filled = true
			}
		}
		if filled {
			keep = append(keep, c)
		}
	}
	if len(keep) == 0 || (len(rows) == 0 && !hasHeader) {
		return models.Table{}, false
	}

	header = project(header, keep)
	for i, row := range rows {
		rows[i] = project(row, keep)
	}

	if !hasHeader && assumeHeader {
		header = rows[0]
		rows = rows[1:]
	} else if !hasHeader {
		header = make([]string, len(keep))
	}

	names := make([]string, len(keep))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" || (p.PlaceholderMarker != "" && strings.Contains(name, p.PlaceholderMarker)) {
			name = fmt.Sprintf("%s_%d", p.ColumnPrefix, i+1)
		}
		names[i] = name
	}

	if assumeHeader && len(rows) < p.MinRows {
		return models.Table{}, false
	}

	total := len(rows) * len(keep)
	if total > 0 && fillRatio(rows) < p.MinFillRatio {
		return models.Table{}, false
	}

	return models.Table{Columns: names, Rows: rows}, true
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func project(row []string, keep []int) []string {
	out := make([]string, len(keep))
	for i, c := range keep {
		out[i] = row[c]
	}
	return out
}

func fillRatio(rows [][]string) float64 {
	total, filled := 0, 0
	for _, row := range rows {
		for _, cell := range row {
			total++
			if strings.TrimSpace(cell) != "" {
				filled++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(filled) / float64(total)
}
