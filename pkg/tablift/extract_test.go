package tablift

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tablift/tablift/pkg/tablift/detect"
	"github.com/tablift/tablift/pkg/tablift/models"
)

// stubEngine answers each mode from fixed data, recording the call order.
type stubEngine struct {
	tables map[detect.Mode][]models.Table
	errs   map[detect.Mode]error
	panics map[detect.Mode]string
	calls  []detect.Mode
}

func (s *stubEngine) Name() string { return "stub" }

func (s *stubEngine) Detect(_ string, mode detect.Mode) ([]models.Table, error) {
	s.calls = append(s.calls, mode)
	if msg, ok := s.panics[mode]; ok {
		panic(msg)
	}
	if err := s.errs[mode]; err != nil {
		return nil, err
	}
	return s.tables[mode], nil
}

// goodGrid is a raw grid that survives default cleaning under the header
// assumption: a header row plus two data rows.
func goodGrid() models.Table {
	return models.Table{Rows: [][]string{
		{"Name", "Age"},
		{"Alice", "30"},
		{"Bob", "25"},
	}}
}

func stubOptions(primary, fallback detect.Engine) Options {
	opts := DefaultOptions()
	opts.Engine = primary
	opts.Fallback = fallback
	return opts
}

func TestExtractFirstStrategyWins(t *testing.T) {
	eng := &stubEngine{tables: map[detect.Mode][]models.Table{
		detect.ModeGrid:    {goodGrid()},
		detect.ModeLattice: {goodGrid()},
	}}

	out := Extract("in.pdf", stubOptions(eng, nil))
	if !out.Success {
		t.Fatalf("expected success, got %+v", out)
	}
	if out.Method != models.MethodGrid {
		t.Errorf("method = %q, want grid", out.Method)
	}
	if len(eng.calls) != 1 || eng.calls[0] != detect.ModeGrid {
		t.Errorf("later strategies ran after a hit: %v", eng.calls)
	}
}

func TestExtractSkipsFailingStrategies(t *testing.T) {
	eng := &stubEngine{
		errs:   map[detect.Mode]error{detect.ModeGrid: errors.New("parse failed")},
		panics: map[detect.Mode]string{detect.ModeLattice: "index out of range"},
		tables: map[detect.Mode][]models.Table{detect.ModeStream: {goodGrid()}},
	}

	out := Extract("in.pdf", stubOptions(eng, nil))
	if !out.Success {
		t.Fatalf("expected the stream strategy to win, got %+v", out)
	}
	if out.Method != models.MethodStream {
		t.Errorf("method = %q, want stream", out.Method)
	}
	want := []detect.Mode{detect.ModeGrid, detect.ModeLattice, detect.ModeStream}
	if !reflect.DeepEqual(eng.calls, want) {
		t.Errorf("call order = %v, want %v", eng.calls, want)
	}
}

func TestExtractHeaderlessAcceptsSingleRow(t *testing.T) {
	single := models.Table{Rows: [][]string{{"Alice", "30"}}}
	eng := &stubEngine{tables: map[detect.Mode][]models.Table{
		detect.ModeHeaderless: {single},
	}}

	out := Extract("in.pdf", stubOptions(eng, nil))
	if !out.Success {
		t.Fatalf("expected success, got %+v", out)
	}
	if out.Method != models.MethodGridHeaderless {
		t.Errorf("method = %q, want grid-headerless", out.Method)
	}
	tbl := out.Tables[0]
	if !reflect.DeepEqual(tbl.Columns, []string{"Column_1", "Column_2"}) {
		t.Errorf("columns = %v, want generated names", tbl.Columns)
	}
	if len(tbl.Rows) != 1 {
		t.Errorf("expected the single row kept as data, got %v", tbl.Rows)
	}
}

func TestExtractRejectedCandidatesAreMisses(t *testing.T) {
	// A header with one data row fails the minimum-rows gate under the
	// header assumption, so grid misses even though it found something.
	thin := models.Table{Rows: [][]string{{"Name", "Age"}, {"Alice", "30"}}}
	primary := &stubEngine{tables: map[detect.Mode][]models.Table{
		detect.ModeGrid: {thin},
	}}
	fallback := &stubEngine{tables: map[detect.Mode][]models.Table{
		detect.ModeHeaderless: {goodGrid()},
	}}

	out := Extract("in.pdf", stubOptions(primary, fallback))
	if !out.Success {
		t.Fatalf("expected fallback success, got %+v", out)
	}
	if out.Method != models.MethodTextFallback {
		t.Errorf("method = %q, want text-fallback", out.Method)
	}
}

func TestExtractAllStrategiesMiss(t *testing.T) {
	eng := &stubEngine{}
	out := Extract("in.pdf", stubOptions(eng, eng))

	if out.Success {
		t.Fatal("expected failure outcome")
	}
	if out.Method != models.MethodAllFailed {
		t.Errorf("method = %q, want all-methods-failed", out.Method)
	}
	if out.ErrorMessage == "" {
		t.Error("expected a descriptive error message")
	}
	if len(eng.calls) != 5 {
		t.Errorf("expected all 5 strategies to run, got %v", eng.calls)
	}
}

func TestExtractNilEngines(t *testing.T) {
	out := Extract("in.pdf", stubOptions(nil, nil))
	if out.Success || out.Method != models.MethodAllFailed {
		t.Errorf("expected the all-failed outcome with no engines, got %+v", out)
	}
}
