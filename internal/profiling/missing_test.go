package profiling

import (
	"testing"

	"datascope/domain/table"
)

func TestAnalyzeMissing_CountsAndPercentages(t *testing.T) {
	tbl, err := table.New(
		column("a", "1", "", "3", "NA"),
		column("b", "x", "y", "z", "w"),
	)
	if err != nil {
		t.Fatal(err)
	}

	report := AnalyzeMissing(tbl)

	if got := report.PerColumn["a"].Count; got != 2 {
		t.Errorf("column a missing count = %d, want 2", got)
	}
	if got := report.PerColumn["a"].Percent; got != 50.0 {
		t.Errorf("column a missing percent = %v, want 50", got)
	}
	if got := report.PerColumn["b"].Count; got != 0 {
		t.Errorf("column b missing count = %d, want 0", got)
	}
	if report.TotalMissing != 2 {
		t.Errorf("total missing = %d, want 2", report.TotalMissing)
	}
	// 2 of 8 cells
	if report.TotalPercent != 25.0 {
		t.Errorf("total percent = %v, want 25", report.TotalPercent)
	}
}

func TestAnalyzeMissing_EmptyTableIsDefined(t *testing.T) {
	tbl, err := table.New(
		table.Column{Name: "a"},
		table.Column{Name: "b"},
	)
	if err != nil {
		t.Fatal(err)
	}

	report := AnalyzeMissing(tbl)
	if report.TotalMissing != 0 || report.TotalPercent != 0 {
		t.Errorf("zero-row table should report 0 missing, got %+v", report)
	}
	if report.PerColumn["a"].Percent != 0 {
		t.Errorf("zero-row column percent should be 0, got %v", report.PerColumn["a"].Percent)
	}
}
