package tablift

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tablift/tablift/pkg/tablift/models"
	"github.com/tablift/tablift/pkg/tablift/render"
)

// Result summarizes a successful conversion.
type Result struct {
	// OutputPath is where the workbook was written.
	OutputPath string
	// TableCount is the number of sheets carrying extracted tables.
	TableCount int
	// Method tags the strategy that produced the tables.
	Method models.Method
}

// Convert extracts tables from the PDF at inputPath and writes them to an
// xlsx workbook. An empty outputPath derives the destination from the input
// path with the extension swapped. A present output file is always a
// complete, valid one: partial files are removed whenever rendering or
// verification fails.
func Convert(inputPath, outputPath string, opts Options) (*Result, error) {
	if err := ValidatePDF(inputPath); err != nil {
		return nil, &ConvertError{Path: inputPath, Stage: "validate", Err: err}
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".xlsx"
	}
	if _, err := os.Stat(outputPath); err == nil && !opts.Overwrite {
		return nil, &ConvertError{Path: outputPath, Stage: "output", Err: ErrOutputExists}
	}

	outcome := Extract(inputPath, opts)
	if !outcome.Success {
		return nil, &ConvertError{
			Path:  inputPath,
			Stage: "extract",
			Err:   fmt.Errorf("%w: %s", ErrNoTables, outcome.ErrorMessage),
		}
	}

	if err := render.WriteXLSX(outputPath, outcome.Tables, filepath.Base(inputPath)); err != nil {
		os.Remove(outputPath)
		return nil, &ConvertError{Path: outputPath, Stage: "render", Err: err}
	}
	if err := render.VerifyXLSX(outputPath); err != nil {
		os.Remove(outputPath)
		return nil, &ConvertError{Path: outputPath, Stage: "verify", Err: err}
	}

	return &Result{
		OutputPath: outputPath,
		TableCount: len(outcome.Tables),
		Method:     outcome.Method,
	}, nil
}
