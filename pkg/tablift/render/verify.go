package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// minFileSize is the sanity floor against truncated writes; a workbook with
// a single populated sheet is always larger than this.
const minFileSize = 1024

// VerifyXLSX re-opens a written workbook and checks it is complete: the file
// exists, is not truncated, and contains at least one readable row. This is
// the final acceptance gate after writing.
func VerifyXLSX(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("output missing: %w", err)
	}
	if info.Size() < minFileSize {
		return fmt.Errorf("output truncated: %d bytes", info.Size())
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("reopen workbook: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err == nil && len(rows) > 0 {
			return nil
		}
	}
	return errors.New("workbook has no readable rows")
}
