package render

import (
	"strconv"
	"strings"
)

// NumberFormat selects the display format for a normalized cell value.
type NumberFormat int

const (
	// FormatGeneral leaves the cell with the default display format.
	FormatGeneral NumberFormat = iota
	// FormatPercent displays the cell as a percentage.
	FormatPercent
)

// Normalize decides whether a data cell represents a number and returns the
// value to write plus its display format. Percentages are stored as
// fractions, thousands separators are stripped, and anything that fails to
// parse keeps its original string form. Header cells must not pass through
// here; they are never coerced.
func Normalize(cell string) (interface{}, NumberFormat) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return cell, FormatGeneral
	}

	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '.', '-', '%', ',':
			return -1
		}
		return r
	}, trimmed)
	if stripped == "" || !isDigits(stripped) {
		return cell, FormatGeneral
	}

	switch {
	case strings.Contains(trimmed, "%"):
		f, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, "%", ""), 64)
		if err != nil {
			return cell, FormatGeneral
		}
		return f / 100, FormatPercent
	case strings.Contains(trimmed, ","):
		f, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64)
		if err != nil {
			return cell, FormatGeneral
		}
		return f, FormatGeneral
	default:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return cell, FormatGeneral
		}
		return f, FormatGeneral
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
