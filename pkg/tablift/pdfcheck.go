package tablift

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

const (
	minPDFSize   = 100
	headProbeLen = 4096
	tailProbeLen = 1024
)

// ValidatePDF performs a structural sanity check on the file before any
// detector runs: the %PDF header, a minimum size, object markers near the
// start, and the %%EOF marker near the end. Detector calls are expensive, so
// malformed files are rejected here with a descriptive reason.
func ValidatePDF(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	if info.Size() < minPDFSize {
		return fmt.Errorf("%w: file is only %d bytes", ErrInvalidPDF, info.Size())
	}

	head := make([]byte, headProbeLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	head = head[:n]

	if !bytes.HasPrefix(head, []byte("%PDF")) {
		return fmt.Errorf("%w: missing %%PDF header", ErrInvalidPDF)
	}
	if !bytes.Contains(head, []byte("obj")) {
		return fmt.Errorf("%w: no object markers in the first %d bytes", ErrInvalidPDF, headProbeLen)
	}

	tailStart := info.Size() - tailProbeLen
	if tailStart < 0 {
		tailStart = 0
	}
	tail := make([]byte, info.Size()-tailStart)
	if _, err := f.ReadAt(tail, tailStart); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	if !bytes.Contains(tail, []byte("%%EOF")) {
		return fmt.Errorf("%w: missing %%%%EOF marker", ErrInvalidPDF)
	}
	return nil
}
