package render

import (
	"fmt"
	"strings"

	"github.com/tablift/tablift/pkg/tablift/models"
)

// maxSheetNameLen is the sheet name length limit imposed by the xlsx format.
const maxSheetNameLen = 31

var invalidSheetChars = strings.NewReplacer(
	`\`, "_", `/`, "_", `?`, "_", `*`, "_", `[`, "_", `]`, "_", `:`, "_",
)

// SanitizeSheetName replaces the characters the xlsx format forbids in sheet
// names with underscores and truncates the result to 31 characters.
func SanitizeSheetName(name string) string {
	if name == "" {
		name = "Sheet"
	}
	name = invalidSheetChars.Replace(name)
	if len(name) > maxSheetNameLen {
		name = name[:maxSheetNameLen]
	}
	return name
}

// SheetSpecs assigns positional sheet names: "Table" for a single table,
// "Table_<n>" otherwise, both passed through the sanitizer.
func SheetSpecs(tables []models.Table) []models.SheetSpec {
	specs := make([]models.SheetSpec, 0, len(tables))
	for i, t := range tables {
		name := "Table"
		if len(tables) > 1 {
			name = fmt.Sprintf("Table_%d", i+1)
		}
		specs = append(specs, models.SheetSpec{Name: SanitizeSheetName(name), Table: t})
	}
	return specs
}
