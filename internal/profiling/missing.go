package profiling

import (
	"datascope/domain/profile"
	"datascope/domain/table"
)

// AnalyzeMissing counts missing cells per column and dataset-wide.
// Percentages are of the row count (per column) and of the total cell count
// (overall); an empty table yields defined 0% rather than failing.
func AnalyzeMissing(t *table.Table) profile.MissingReport {
	report := profile.MissingReport{
		PerColumn: make(map[string]profile.MissingColumn, t.ColumnCount()),
	}

	rowCount := t.RowCount()
	for _, col := range t.Columns {
		count := col.MissingCount()
		percent := 0.0
		if rowCount > 0 {
			percent = float64(count) / float64(rowCount) * 100
		}
		report.PerColumn[col.Name] = profile.MissingColumn{
			Count:   count,
			Percent: percent,
		}
		report.TotalMissing += count
	}

	totalCells := rowCount * t.ColumnCount()
	if totalCells > 0 {
		report.TotalPercent = float64(report.TotalMissing) / float64(totalCells) * 100
	}
	return report
}
