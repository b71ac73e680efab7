package clean

import (
	"reflect"
	"testing"

	"github.com/tablift/tablift/pkg/tablift/models"
)

func TestCleanDropsEmptyRowsAndColumns(t *testing.T) {
	raw := models.Table{
		Rows: [][]string{
			{"Name", "", "Age"},
			{"", "", ""},
			{"Alice", " ", "30"},
			{"Bob", "", "25"},
		},
	}

	got, ok := Clean(raw, true, DefaultParams())
	if !ok {
		t.Fatal("expected table to be accepted")
	}
	if len(got.Columns) != 2 {
		t.Fatalf("expected 2 columns after dropping the empty one, got %d", len(got.Columns))
	}
	if len(got.Rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(got.Rows))
	}
	want := [][]string{{"Alice", "30"}, {"Bob", "25"}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("rows = %v, want %v", got.Rows, want)
	}
}

func TestCleanRejectsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  models.Table
	}{
		{"no cells", models.Table{}},
		{"all blank", models.Table{Rows: [][]string{{"", " "}, {"", ""}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Clean(tt.raw, true, DefaultParams()); ok {
				t.Error("expected rejection")
			}
		})
	}
}

func TestCleanHeaderNames(t *testing.T) {
	raw := models.Table{
		Rows: [][]string{
			{"  Name  ", "", "Unnamed: 2"},
			{"Alice", "x", "30"},
			{"Bob", "y", "25"},
		},
	}

	got, ok := Clean(raw, true, DefaultParams())
	if !ok {
		t.Fatal("expected table to be accepted")
	}
	want := []string{"Name", "Column_2", "Column_3"}
	if !reflect.DeepEqual(got.Columns, want) {
		t.Errorf("columns = %v, want %v", got.Columns, want)
	}
}

func TestCleanMinRows(t *testing.T) {
	raw := models.Table{
		Rows: [][]string{
			{"Name", "Age"},
			{"Alice", "30"},
		},
	}

	if _, ok := Clean(raw, true, DefaultParams()); ok {
		t.Error("one data row under a header should be rejected")
	}

	// Without the header assumption the same grid is two data rows and
	// acceptable, and single-row grids are acceptable too.
	got, ok := Clean(raw, false, DefaultParams())
	if !ok {
		t.Fatal("expected headerless acceptance")
	}
	if len(got.Rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(got.Rows))
	}
	if got.Columns[0] != "Column_1" || got.Columns[1] != "Column_2" {
		t.Errorf("expected generated column names, got %v", got.Columns)
	}

	single := models.Table{Rows: [][]string{{"Alice", "30"}}}
	if _, ok := Clean(single, false, DefaultParams()); !ok {
		t.Error("single-row grid should be accepted without the header assumption")
	}
}

func TestCleanDensityGate(t *testing.T) {
	rows := make([][]string, 4)
	for i := range rows {
		rows[i] = make([]string, 12)
	}
	rows[0] = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	rows[1][0] = "x"
	rows[2][3] = "y"
	rows[3][7] = "z"
	raw := models.Table{Rows: rows}

	// 3 filled cells out of 36 data cells is under the default 0.1.
	if _, ok := Clean(raw, true, DefaultParams()); ok {
		t.Error("sparse grid should be rejected")
	}

	p := DefaultParams()
	p.MinFillRatio = 0.05
	if _, ok := Clean(raw, true, p); !ok {
		t.Error("lowered threshold should accept the same grid")
	}
}

func TestCleanIdempotent(t *testing.T) {
	raw := models.Table{
		Rows: [][]string{
			{"Name", "Age", ""},
			{"", "", ""},
			{"Alice", "30", ""},
			{"Bob", "25", ""},
		},
	}

	once, ok := Clean(raw, true, DefaultParams())
	if !ok {
		t.Fatal("expected acceptance")
	}
	twice, ok := Clean(once, true, DefaultParams())
	if !ok {
		t.Fatal("expected recleaning to accept")
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("cleaning is not idempotent: %v != %v", once, twice)
	}
}

func TestCleanPadsRaggedRows(t *testing.T) {
	raw := models.Table{
		Rows: [][]string{
			{"Name", "Age", "City"},
			{"Alice", "30"},
			{"Bob", "25", "Paris"},
		},
	}

	got, ok := Clean(raw, true, DefaultParams())
	if !ok {
		t.Fatal("expected acceptance")
	}
	for i, row := range got.Rows {
		if len(row) != len(got.Columns) {
			t.Errorf("row %d has %d cells, want %d", i, len(row), len(got.Columns))
		}
	}
	if got.Rows[0][2] != "" {
		t.Errorf("missing cell should be empty string, got %q", got.Rows[0][2])
	}
}

func TestCleanShrinksOnly(t *testing.T) {
	raw := models.Table{
		Rows: [][]string{
			{"A", "B", "C"},
			{"", "", ""},
			{"1", "2", "3"},
			{"4", "5", "6"},
		},
	}

	got, ok := Clean(raw, true, DefaultParams())
	if !ok {
		t.Fatal("expected acceptance")
	}
	if len(got.Rows) > len(raw.Rows) {
		t.Error("cleaning must never add rows")
	}
	if len(got.Columns) > 3 {
		t.Error("cleaning must never add columns")
	}
}
