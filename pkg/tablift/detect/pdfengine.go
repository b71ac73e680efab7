package detect

import (
	"math"

	"github.com/ledongthuc/pdf"
	"github.com/montanaflynn/stats"

	"github.com/tablift/tablift/pkg/tablift/models"
)

// PDFEngine is the primary detector. It reads positional text and rectangle
// primitives with ledongthuc/pdf and infers one candidate grid per page,
// leaving acceptance to the cleaner.
type PDFEngine struct {
	// RowTolerance is the Y distance (points) within which glyphs share a
	// baseline.
	RowTolerance float64
	// SnapTolerance is the X distance within which positions are
	// considered aligned.
	SnapTolerance float64
	// WordSpaceMultiplier of the font size separates words on a baseline.
	WordSpaceMultiplier float64
	// MinColumnSupport is the fraction of lines that must share a column
	// position before it counts as a column.
	MinColumnSupport float64
	// MinCutClearance is the fraction of lines whose whitespace a stream
	// column boundary must pass through.
	MinCutClearance float64
	// MinGapWidth is the narrowest whitespace channel (points) the stream
	// mode will split on.
	MinGapWidth float64
	// MinLines is the fewest baselines a page needs before any grid is
	// attempted.
	MinLines int
}

// NewPDFEngine returns an engine with the default tolerances.
func NewPDFEngine() *PDFEngine {
	return &PDFEngine{
		RowTolerance:        3.0,
		SnapTolerance:       3.0,
		WordSpaceMultiplier: 0.3,
		MinColumnSupport:    0.5,
		MinCutClearance:     0.9,
		MinGapWidth:         9.0,
		MinLines:            2,
	}
}

// Name implements Engine.
func (e *PDFEngine) Name() string { return "pdf" }

// Detect implements Engine. ModeHeaderless shares the ModeGrid scan; the
// chain applies the different header assumption during cleaning.
func (e *PDFEngine) Detect(path string, mode Mode) ([]models.Table, error) {
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
		content := page.Content()

		var found []models.Table
		switch mode {
		case ModeLattice:
			found = e.latticeTables(content)
		case ModeStream:
			found = e.streamTables(content.Text)
		default:
			found = e.gridTables(content.Text)
		}
		tables = append(tables, found...)
	}
	return tables, nil
}

// gridTables infers columns from word start positions that repeat across
// baselines. Running prose rarely aligns interior words, so pages without
// tabular structure yield fewer than two columns and no candidate.
func (e *PDFEngine) gridTables(texts []pdf.Text) []models.Table {
	lines := e.buildLines(texts)
	if len(lines) < e.MinLines {
		return nil
	}

	var starts []float64
	for _, ln := range lines {
		for _, w := range ln.words {
			starts = append(starts, w.x)
		}
	}
	cols := e.supportedPositions(snapPositions(starts, e.SnapTolerance), lines)
	if len(cols) < 2 {
		return nil
	}

	rows := make([][]string, len(lines))
	for i, ln := range lines {
		row := make([]string, len(cols))
		for _, w := range ln.words {
			c := columnFor(w.x+e.SnapTolerance, cols)
			if row[c] != "" {
				row[c] += " "
			}
			row[c] += w.text
		}
		rows[i] = row
	}
	return []models.Table{{Rows: rows}}
}

// supportedPositions keeps the candidate column positions that enough lines
// actually start a word at.
func (e *PDFEngine) supportedPositions(candidates []float64, lines []line) []float64 {
	minSupport := int(math.Ceil(e.MinColumnSupport * float64(len(lines))))
	if minSupport < 1 {
		minSupport = 1
	}

	var out []float64
	for _, pos := range candidates {
		support := 0
		for _, ln := range lines {
			for _, w := range ln.words {
				if math.Abs(w.x-pos) <= e.SnapTolerance {
					support++
					break
				}
			}
		}
		if support >= minSupport {
			out = append(out, pos)
		}
	}
	return out
}

// columnFor returns the index of the rightmost column position at or left of
// x. Words left of the first column are folded into it.
func columnFor(x float64, cols []float64) int {
	for i := len(cols) - 1; i > 0; i-- {
		if x >= cols[i] {
			return i
		}
	}
	return 0
}

// streamTables splits baselines at whitespace channels. A channel is a gap
// clearly wider than the document's typical inter-word gap that stays clear
// of words on nearly every line.
func (e *PDFEngine) streamTables(texts []pdf.Text) []models.Table {
	lines := e.buildLines(texts)
	if len(lines) < e.MinLines {
		return nil
	}

	var gaps []float64
	for _, ln := range lines {
		for i := 1; i < len(ln.words); i++ {
			gap := ln.words[i].x - (ln.words[i-1].x + ln.words[i-1].w)
			if gap > 0 {
				gaps = append(gaps, gap)
			}
		}
	}
	if len(gaps) == 0 {
		return nil
	}
	median, err := stats.Median(gaps)
	if err != nil {
		return nil
	}
	// Inter-word gaps are narrow and plentiful, so the median tracks the
	// document's typical word spacing; column gaps sit well above it. The
	// floor keeps prose with uniformly tight spacing from splitting at all.
	threshold := math.Max(e.MinGapWidth, median)

	var mids []float64
	for _, ln := range lines {
		for i := 1; i < len(ln.words); i++ {
			prev := ln.words[i-1]
			gap := ln.words[i].x - (prev.x + prev.w)
			if gap >= threshold {
				mids = append(mids, prev.x+prev.w+gap/2)
			}
		}
	}
	cuts := e.clearCuts(snapPositions(mids, e.SnapTolerance*2), lines)
	if len(cuts) == 0 {
		return nil
	}

	rows := make([][]string, len(lines))
	for i, ln := range lines {
		row := make([]string, len(cuts)+1)
		for _, w := range ln.words {
			c := segmentFor(w.x+w.w/2, cuts)
			if row[c] != "" {
				row[c] += " "
			}
			row[c] += w.text
		}
		rows[i] = row
	}
	return []models.Table{{Rows: rows}}
}

// clearCuts keeps the candidate boundaries that pass through whitespace on
// at least MinCutClearance of the lines.
func (e *PDFEngine) clearCuts(candidates []float64, lines []line) []float64 {
	minClear := int(math.Ceil(e.MinCutClearance * float64(len(lines))))

	var out []float64
	for _, cut := range candidates {
		clear := 0
		for _, ln := range lines {
			blocked := false
			for _, w := range ln.words {
				if w.x < cut && cut < w.x+w.w {
					blocked = true
					break
				}
			}
			if !blocked {
				clear++
			}
		}
		if clear >= minClear {
			out = append(out, cut)
		}
	}
	return out
}

// segmentFor returns the index of the segment between cuts that x falls in.
func segmentFor(x float64, cuts []float64) int {
	for i, cut := range cuts {
		if x < cut {
			return i
		}
	}
	return len(cuts)
}

// latticeTables rebuilds a ruled grid from rectangle edges and assigns each
// word to the cell its baseline center falls into. Pages without at least a
// 2x2 arrangement of ruled cells yield no candidate.
func (e *PDFEngine) latticeTables(content pdf.Content) []models.Table {
	if len(content.Rect) == 0 {
		return nil
	}

	var xs, ys []float64
	for _, r := range content.Rect {
		xs = append(xs, r.Min.X, r.Max.X)
		ys = append(ys, r.Min.Y, r.Max.Y)
	}
	xEdges := snapPositions(xs, e.SnapTolerance)
	yEdges := snapPositions(ys, e.SnapTolerance)
	if len(xEdges) < 3 || len(yEdges) < 3 {
		return nil
	}

	// Rows run top to bottom; PDF Y grows upward.
	for i, j := 0, len(yEdges)-1; i < j; i, j = i+1, j-1 {
		yEdges[i], yEdges[j] = yEdges[j], yEdges[i]
	}

	rows := make([][]string, len(yEdges)-1)
	for i := range rows {
		rows[i] = make([]string, len(xEdges)-1)
	}

	for _, ln := range e.buildLines(content.Text) {
		for _, w := range ln.words {
			cx := w.x + w.w/2
			col := cellIndex(cx, xEdges, false)
			row := cellIndex(w.y, yEdges, true)
			if col < 0 || row < 0 {
				continue
			}
			if rows[row][col] != "" {
				rows[row][col] += " "
			}
			rows[row][col] += w.text
		}
	}
	return []models.Table{{Rows: rows}}
}

// cellIndex finds the band a coordinate falls into. Edges are ascending for
// columns and descending for rows.
func cellIndex(v float64, edges []float64, descending bool) int {
	for i := 0; i < len(edges)-1; i++ {
		if descending {
			if v <= edges[i] && v > edges[i+1] {
				return i
			}
		} else {
			if v >= edges[i] && v < edges[i+1] {
				return i
			}
		}
	}
	return -1
}
