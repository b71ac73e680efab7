// Package render writes cleaned tables into styled xlsx workbooks and
// verifies the written file.
package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tablift/tablift/pkg/tablift/models"
)

const (
	headerFillColor = "366092"
	minColWidth     = 10.0
	maxColWidth     = 50.0
	infoSheetName   = "Info"
	percentFormat   = "0.0%"
)

// WriteXLSX lays the tables out one sheet each, in order, with a styled
// header row, normalized data cells, and auto-sized columns. When no tables
// are given it writes a single informational sheet naming the source file.
// The file is written wholesale at the end; nothing is flushed early.
func WriteXLSX(path string, tables []models.Table, sourceLabel string) error {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	specs := SheetSpecs(tables)
	for _, spec := range specs {
		if _, err := f.NewSheet(spec.Name); err != nil {
			return fmt.Errorf("create sheet %q: %w", spec.Name, err)
		}
		if err := writeTable(f, spec, st); err != nil {
			return err
		}
	}

	if len(specs) == 0 {
		if _, err := f.NewSheet(infoSheetName); err != nil {
			return fmt.Errorf("create info sheet: %w", err)
		}
		f.SetCellValue(infoSheetName, "A1", "No tables were found in the PDF")
		if sourceLabel == "" {
			sourceLabel = "unknown"
		}
		f.SetCellValue(infoSheetName, "A2", "Source: "+sourceLabel)
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

type styleSet struct {
	header  int
	data    int
	percent int
}

func newStyles(f *excelize.File) (styleSet, error) {
	borders := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	var st styleSet
	var err error
	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    borders,
	})
	if err != nil {
		return st, fmt.Errorf("header style: %w", err)
	}
	st.data, err = f.NewStyle(&excelize.Style{Border: borders})
	if err != nil {
		return st, fmt.Errorf("data style: %w", err)
	}
	pct := percentFormat
	st.percent, err = f.NewStyle(&excelize.Style{Border: borders, CustomNumFmt: &pct})
	if err != nil {
		return st, fmt.Errorf("percent style: %w", err)
	}
	return st, nil
}

func writeTable(f *excelize.File, spec models.SheetSpec, st styleSet) error {
	t := spec.Table
	cols := len(t.Columns)
	if cols == 0 {
		return nil
	}

	widths := make([]int, cols)
	for c, name := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(spec.Name, cell, name); err != nil {
			return err
		}
		widths[c] = len(name)
	}
	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(spec.Name, "A1", last, st.header); err != nil {
		return err
	}

	for r, row := range t.Rows {
		for c := 0; c < cols; c++ {
			var raw string
			if c < len(row) {
				raw = row[c]
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			value, format := Normalize(raw)
			if err := f.SetCellValue(spec.Name, cell, value); err != nil {
				return err
			}
			style := st.data
			if format == FormatPercent {
				style = st.percent
			}
			if err := f.SetCellStyle(spec.Name, cell, cell, style); err != nil {
				return err
			}
			if len(raw) > widths[c] {
				widths[c] = len(raw)
			}
		}
	}

	for c, w := range widths {
		width := float64(w) + 2
		if width < minColWidth {
			width = minColWidth
		}
		if width > maxColWidth {
			width = maxColWidth
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(spec.Name, col, col, width); err != nil {
			return err
		}
	}
	return nil
}
