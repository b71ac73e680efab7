// Package detect hosts the table detector engines invoked by the extraction
// chain. Engines emit raw rectangular grids only; acceptance filtering is the
// clean package's job.
package detect

import "github.com/tablift/tablift/pkg/tablift/models"

// Mode selects how a detector looks for tabular structure on a page.
type Mode string

const (
	// ModeGrid infers columns from word start positions aligned across
	// rows. This is the default, least-assuming mode.
	ModeGrid Mode = "grid"
	// ModeLattice builds the grid from ruled cell borders and assigns
	// words to the cells they fall into.
	ModeLattice Mode = "lattice"
	// ModeStream splits rows at whitespace channels shared by most rows,
	// for tables aligned without borders.
	ModeStream Mode = "stream"
	// ModeHeaderless is ModeGrid for documents where the first row is
	// data, not a header. Engines may treat it exactly like ModeGrid; the
	// chain applies the different header assumption during cleaning.
	ModeHeaderless Mode = "headerless"
)

// Engine turns a PDF file into zero or more raw table grids. An error or an
// empty result is a miss for the calling strategy, never a fatal condition.
type Engine interface {
	// Name identifies the engine in logs.
	Name() string
	// Detect scans every page of the PDF at path for candidate tables.
	Detect(path string, mode Mode) ([]models.Table, error)
}
