package table

import (
	"testing"

	"datascope/domain/core"
)

func TestParseCell_ResolvesVariants(t *testing.T) {
	cases := []struct {
		raw  string
		kind CellKind
	}{
		{"", KindMissing},
		{"  ", KindMissing},
		{"NA", KindMissing},
		{"n/a", KindMissing},
		{"null", KindMissing},
		{"NaN", KindMissing},
		{"None", KindMissing},
		{"42", KindNumber},
		{"-3.5", KindNumber},
		{"1e6", KindNumber},
		{" 7 ", KindNumber},
		{"red", KindText},
		{"12 apples", KindText},
		{"2023-01-01", KindText},
	}
	for _, tc := range cases {
		if got := ParseCell(tc.raw).Kind; got != tc.kind {
			t.Errorf("ParseCell(%q).Kind = %v, want %v", tc.raw, got, tc.kind)
		}
	}
}

func TestParseCell_PreservesTextVerbatim(t *testing.T) {
	cell := ParseCell("  Mixed Case  ")
	if cell.Kind != KindText {
		t.Fatalf("expected text cell, got %v", cell.Kind)
	}
	if cell.Text != "  Mixed Case  " {
		t.Errorf("text should keep the raw string, got %q", cell.Text)
	}
}

func TestParseCell_NumberKeepsRawForm(t *testing.T) {
	for _, raw := range []string{"01", "1.0", " 5", "1e2"} {
		cell := ParseCell(raw)
		if cell.Kind != KindNumber {
			t.Fatalf("ParseCell(%q).Kind = %v, want number", raw, cell.Kind)
		}
		if cell.String() != raw {
			t.Errorf("ParseCell(%q).String() = %q, want the raw form", raw, cell.String())
		}
	}
}

func TestParseCell_NumberParsing(t *testing.T) {
	cell := ParseCell("3.25")
	if cell.Kind != KindNumber || cell.Number != 3.25 {
		t.Errorf("ParseCell(\"3.25\") = %+v", cell)
	}
}

func TestValidate_AcceptsWellFormedTable(t *testing.T) {
	tbl, err := New(
		Column{Name: "a", Cells: []Cell{NumberCell(1), NumberCell(2)}},
		Column{Name: "b", Cells: []Cell{TextCell("x"), MissingCell()}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.RowCount() != 2 || tbl.ColumnCount() != 2 {
		t.Errorf("got %d rows, %d columns", tbl.RowCount(), tbl.ColumnCount())
	}
}

func TestValidate_RejectsRaggedColumns(t *testing.T) {
	_, err := New(
		Column{Name: "a", Cells: []Cell{NumberCell(1), NumberCell(2)}},
		Column{Name: "b", Cells: []Cell{NumberCell(3)}},
	)
	if !core.IsMalformedTableError(err) {
		t.Fatalf("expected malformed table error, got %v", err)
	}
}

func TestValidate_RejectsDuplicateNames(t *testing.T) {
	_, err := New(
		Column{Name: "a", Cells: []Cell{NumberCell(1)}},
		Column{Name: "a", Cells: []Cell{NumberCell(2)}},
	)
	if !core.IsMalformedTableError(err) {
		t.Fatalf("expected malformed table error, got %v", err)
	}
}

func TestValidate_AcceptsEmptyTable(t *testing.T) {
	tbl, err := New()
	if err != nil {
		t.Fatalf("empty table should validate, got %v", err)
	}
	if tbl.RowCount() != 0 || tbl.ColumnCount() != 0 {
		t.Errorf("empty table has %d rows, %d columns", tbl.RowCount(), tbl.ColumnCount())
	}
}

func TestNonMissing_KeepsRowIndices(t *testing.T) {
	col := Column{Name: "x", Cells: []Cell{
		NumberCell(1), MissingCell(), NumberCell(3), MissingCell(), NumberCell(5),
	}}
	cells, rows := col.NonMissing()
	if len(cells) != 3 {
		t.Fatalf("expected 3 non-missing cells, got %d", len(cells))
	}
	wantRows := []int{0, 2, 4}
	for i, want := range wantRows {
		if rows[i] != want {
			t.Errorf("rows[%d] = %d, want %d", i, rows[i], want)
		}
	}
	if col.MissingCount() != 2 {
		t.Errorf("MissingCount = %d, want 2", col.MissingCount())
	}
}
