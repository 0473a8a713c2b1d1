// Package table models the in-memory tabular dataset handed to the
// profiling engine: ordered named columns of equal length, cells already
// resolved to the Number/Text/Missing variant. The table is owned by the
// caller; the engine reads it and never mutates it.
package table

import (
	"datascope/domain/core"
)

// Column is an ordered sequence of cells under a unique name
type Column struct {
	Name  string
	Cells []Cell
}

// NonMissing returns the column's non-missing cells paired with their
// original row indices, preserving row order.
func (c Column) NonMissing() ([]Cell, []int) {
	cells := make([]Cell, 0, len(c.Cells))
	idx := make([]int, 0, len(c.Cells))
	for i, cell := range c.Cells {
		if !cell.IsMissing() {
			cells = append(cells, cell)
			idx = append(idx, i)
		}
	}
	return cells, idx
}

// MissingCount returns the number of missing cells in the column
func (c Column) MissingCount() int {
	count := 0
	for _, cell := range c.Cells {
		if cell.IsMissing() {
			count++
		}
	}
	return count
}

// Table is an ordered sequence of named columns with equal row counts
type Table struct {
	Columns []Column
}

// New builds a table from columns and validates its shape
func New(columns ...Column) (*Table, error) {
	t := &Table{Columns: columns}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// RowCount returns the shared column length, 0 for a column-less table
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// ColumnNames returns the column names in table order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by name
func (t *Table) Column(name string) (Column, error) {
	for _, col := range t.Columns {
		if col.Name == name {
			return col, nil
		}
	}
	return Column{}, core.NewColumnNotFoundError(name)
}

// Validate rejects the two shape violations every downstream statistic
// depends on not happening: ragged columns and duplicate names. This is the
// only fatal failure class at the engine boundary.
func (t *Table) Validate() error {
	seen := make(map[string]struct{}, len(t.Columns))
	rowCount := t.RowCount()
	for _, col := range t.Columns {
		if col.Name == "" {
			return core.ErrEmptyColumnName
		}
		if _, dup := seen[col.Name]; dup {
			return core.NewDuplicateColumnError(col.Name)
		}
		seen[col.Name] = struct{}{}
		if len(col.Cells) != rowCount {
			return core.NewRaggedColumnsError(col.Name, len(col.Cells), rowCount)
		}
	}
	return nil
}
