// Package tablift extracts tabular data from PDF documents and writes it to
// xlsx workbooks, trying progressively more aggressive detection strategies
// until one finds a table.
package tablift

import (
	"github.com/tablift/tablift/pkg/tablift/clean"
	"github.com/tablift/tablift/pkg/tablift/detect"
)

// Options configures the conversion pipeline. The engine fields are the
// chain's capability descriptor: the strategy list is a pure function of
// what is configured here, never of ambient state.
type Options struct {
	// Engine is the primary positional detector, tried in grid, lattice,
	// stream, and headerless order. Nil skips all four strategies.
	Engine detect.Engine
	// Fallback is the best-effort text detector tried after every Engine
	// mode has missed. Nil means the strategy is skipped, which is not an
	// error.
	Fallback detect.Engine
	// Clean holds the table acceptance thresholds.
	Clean clean.Params
	// Overwrite allows replacing an existing output file.
	Overwrite bool
}

// DefaultOptions returns the full default pipeline: the PDF engine, the text
// fallback, and the default cleaning thresholds.
func DefaultOptions() Options {
	return Options{
		Engine:   detect.NewPDFEngine(),
		Fallback: detect.NewTextEngine(),
		Clean:    clean.DefaultParams(),
	}
}
