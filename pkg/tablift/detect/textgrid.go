package detect

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tablift/tablift/pkg/tablift/models"
)

var cellSeparator = regexp.MustCompile(`\s{2,}`)

// TextEngine is the secondary, best-effort detector: it extracts plain text
// per page and splits lines into cells at runs of two or more spaces. It is
// only consulted after every PDFEngine mode has missed.
type TextEngine struct {
	// MinColumns is the fewest cells a line must split into to count as a
	// table row.
	MinColumns int
}

// NewTextEngine returns a text engine with default settings.
func NewTextEngine() *TextEngine {
	return &TextEngine{MinColumns: 2}
}

// Name implements Engine.
func (e *TextEngine) Name() string { return "text" }

// Detect implements Engine. The mode is ignored; this engine has exactly one
// heuristic.
func (e *TextEngine) Detect(path string, _ Mode) ([]models.Table, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tables []models.Table
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if grid := splitGrid(text, e.MinColumns); len(grid) > 0 {
			tables = append(tables, models.Table{Rows: grid})
		}
	}
	return tables, nil
}

// splitGrid turns plain text into a grid, keeping only the lines that split
// into at least minCols cells.
func splitGrid(text string, minCols int) [][]string {
	var rows [][]string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		cells := cellSeparator.Split(ln, -1)
		if len(cells) >= minCols {
			rows = append(rows, cells)
		}
	}
	return rows
}
