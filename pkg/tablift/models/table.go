// Package models defines data structures shared by the extraction pipeline.
package models

// Method identifies which extraction strategy produced an outcome.
type Method string

const (
	// MethodGrid is the default detector: columns inferred from word
	// alignment, first row assumed to be a header.
	MethodGrid Method = "grid"
	// MethodLattice requires ruled cell borders.
	MethodLattice Method = "lattice"
	// MethodStream splits rows at shared whitespace channels.
	MethodStream Method = "stream"
	// MethodGridHeaderless is the default detector without the header
	// assumption, so single-row tables are acceptable.
	MethodGridHeaderless Method = "grid-headerless"
	// MethodTextFallback is the best-effort plain-text grid heuristic.
	MethodTextFallback Method = "text-fallback"
	// MethodAllFailed marks the terminal outcome when every strategy missed.
	MethodAllFailed Method = "all-methods-failed"
)

// Table is a rectangular grid of cell values. Detectors emit raw tables with
// nil Columns and all grid rows in Rows; the clean package promotes or
// generates the header and enforces the acceptance gates. A cleaned table
// always has Columns set.
type Table struct {
	// Columns holds the header names, one per column.
	Columns []string `json:"columns"`
	// Rows holds data cells in row-major order.
	Rows [][]string `json:"rows"`
}

// IsEmpty reports whether the table carries neither header nor data.
func (t Table) IsEmpty() bool {
	return len(t.Columns) == 0 && len(t.Rows) == 0
}

// Outcome is the terminal result of running the extraction chain on one PDF.
// Exactly one outcome is produced per file.
type Outcome struct {
	// Success is true when at least one table was accepted.
	Success bool `json:"success"`
	// Tables holds the accepted tables in detection order.
	Tables []Table `json:"tables,omitempty"`
	// Method tags the strategy that produced the tables, or
	// MethodAllFailed when every strategy missed.
	Method Method `json:"method"`
	// ErrorMessage describes the failure when Success is false.
	ErrorMessage string `json:"error_message,omitempty"`
}

// SheetSpec binds a cleaned table to the sanitized sheet name it occupies in
// the output workbook.
type SheetSpec struct {
	// Name is the sanitized sheet name (31 chars max, no \ / ? * [ ] :).
	Name string `json:"name"`
	// Table is the cleaned table rendered on the sheet.
	Table Table `json:"table"`
}
