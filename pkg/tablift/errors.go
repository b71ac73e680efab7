package tablift

import (
	"errors"
	"fmt"
)

// ErrInvalidPDF indicates the input failed the structural PDF check.
var ErrInvalidPDF = errors.New("invalid pdf file")

// ErrNoTables indicates every extraction strategy missed. This is a normal
// outcome for PDFs without tabular content, not a crash.
var ErrNoTables = errors.New("no tables found")

// ErrOutputExists indicates the output file already exists and overwriting
// was not requested.
var ErrOutputExists = errors.New("output file already exists")

// ConvertError reports a failure in one stage of a single file's conversion.
type ConvertError struct {
	Path  string
	Stage string // "validate", "extract", "render", "verify"
	Err   error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("convert %s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}
