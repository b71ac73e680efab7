package detect

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// word is a run of glyphs merged on a shared baseline.
type word struct {
	x, y, w float64
	text    string
}

// line is one baseline of words, sorted left to right.
type line struct {
	y     float64
	words []word
}

// buildLines groups positional glyphs into baselines and merges adjacent
// glyphs into words. PDF coordinates grow upward, so lines are ordered by
// descending Y (top of the page first).
func (e *PDFEngine) buildLines(texts []pdf.Text) []line {
	type bucket struct {
		yMin, yMax float64
		texts      []pdf.Text
	}
	var buckets []bucket

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		placed := false
		for i := range buckets {
			if t.Y >= buckets[i].yMin-e.RowTolerance && t.Y <= buckets[i].yMax+e.RowTolerance {
				buckets[i].texts = append(buckets[i].texts, t)
				if t.Y < buckets[i].yMin {
					buckets[i].yMin = t.Y
				}
				if t.Y > buckets[i].yMax {
					buckets[i].yMax = t.Y
				}
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{yMin: t.Y, yMax: t.Y, texts: []pdf.Text{t}})
		}
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].yMax > buckets[j].yMax
	})

	lines := make([]line, 0, len(buckets))
	for _, b := range buckets {
		sort.SliceStable(b.texts, func(i, j int) bool {
			return b.texts[i].X < b.texts[j].X
		})

		ln := line{y: (b.yMin + b.yMax) / 2}
		var cur *word
		for _, t := range b.texts {
			threshold := e.WordSpaceMultiplier * t.FontSize
			if threshold <= 0 {
				threshold = 3.0
			}
			if cur != nil && t.X-(cur.x+cur.w) <= threshold {
				cur.text += t.S
				if t.X+t.W > cur.x+cur.w {
					cur.w = t.X + t.W - cur.x
				}
				continue
			}
			if cur != nil {
				ln.words = append(ln.words, *cur)
			}
			cur = &word{x: t.X, y: t.Y, w: t.W, text: t.S}
		}
		if cur != nil {
			ln.words = append(ln.words, *cur)
		}
		if len(ln.words) > 0 {
			lines = append(lines, ln)
		}
	}
	return lines
}

// snapPositions sorts coordinates and merges values closer than tol into a
// single representative position.
func snapPositions(values []float64, tol float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var out []float64
	start, sum, n := 0, 0.0, 0
	for i, v := range sorted {
		if i > start && v-sorted[i-1] > tol {
			out = append(out, sum/float64(n))
			start, sum, n = i, 0, 0
		}
		sum += v
		n++
	}
	out = append(out, sum/float64(n))
	return out
}
