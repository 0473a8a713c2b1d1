package profiling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datascope/domain/core"
	"datascope/domain/profile"
	"datascope/domain/table"
	"datascope/internal/testkit"
)

func mixedTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		column("score", "1", "2", "3", "4", "5", "100"),
		column("rating", "3.5", "", "4.0", "NA", "2.5", "5.0"),
		column("color", "red", "blue", "red", "green", "red", "blue"),
	)
	require.NoError(t, err)
	return tbl
}

func TestEngine_ProfileMixedTable(t *testing.T) {
	engine := NewEngine()
	p, err := engine.Profile(context.Background(), mixedTable(t))
	require.NoError(t, err)

	assert.Equal(t, 6, p.RowCount)
	assert.Equal(t, 3, p.ColumnCount)
	assert.Equal(t, profile.Numerical, p.Classifications["score"])
	assert.Equal(t, profile.Numerical, p.Classifications["rating"])
	assert.Equal(t, profile.Categorical, p.Classifications["color"])

	// Outlier report for score flags only the extreme value
	score := p.Outliers["score"]
	require.Len(t, score.Outliers, 1)
	assert.Equal(t, 5, score.Outliers[0].RowIndex)
	assert.Equal(t, 100.0, score.Outliers[0].Value)

	// Correlation matrix covers exactly the numerical columns
	assert.ElementsMatch(t, []string{"score", "rating"}, p.Correlations.Columns)
}

func TestEngine_MissingPlusObservedEqualsRows(t *testing.T) {
	engine := NewEngine()
	p, err := engine.Profile(context.Background(), mixedTable(t))
	require.NoError(t, err)

	for name, class := range p.Classifications {
		observed := 0
		switch class {
		case profile.Numerical:
			observed = p.Numeric[name].Count
		case profile.Categorical:
			observed = p.Categorical[name].Count
		}
		assert.Equal(t, p.RowCount, observed+p.Missing.PerColumn[name].Count,
			"column %s: observed + missing must equal row count", name)
	}
}

func TestEngine_EmptyTable(t *testing.T) {
	engine := NewEngine()
	tbl, err := table.New()
	require.NoError(t, err)

	p, err := engine.Profile(context.Background(), tbl)
	require.NoError(t, err)
	assert.Equal(t, 0, p.RowCount)
	assert.Equal(t, 0, p.ColumnCount)
	assert.Empty(t, p.Numeric)
	assert.Empty(t, p.Categorical)
	assert.Empty(t, p.Outliers)
	assert.Empty(t, p.Correlations.Columns)
	assert.Equal(t, 0.0, p.Missing.TotalPercent)
}

func TestEngine_ZeroRowColumns(t *testing.T) {
	engine := NewEngine()
	tbl, err := table.New(table.Column{Name: "a"}, table.Column{Name: "b"})
	require.NoError(t, err)

	p, err := engine.Profile(context.Background(), tbl)
	require.NoError(t, err)
	assert.Equal(t, 0, p.RowCount)
	assert.Equal(t, 2, p.ColumnCount)
	// No evidence of numbers: both columns default to categorical
	assert.Equal(t, profile.Categorical, p.Classifications["a"])
	assert.Equal(t, profile.Categorical, p.Classifications["b"])
}

func TestEngine_AllMissingColumn(t *testing.T) {
	engine := NewEngine()
	tbl, err := table.New(column("void", "", "NA", "null"))
	require.NoError(t, err)

	p, err := engine.Profile(context.Background(), tbl)
	require.NoError(t, err)
	assert.Equal(t, profile.Categorical, p.Classifications["void"])

	s := p.Categorical["void"]
	assert.Equal(t, 0, s.Count)
	assert.Nil(t, s.MostFrequent)
	assert.Equal(t, 100.0, p.Missing.PerColumn["void"].Percent)
}

func TestEngine_RejectsMalformedTable(t *testing.T) {
	engine := NewEngine()
	bad := &table.Table{Columns: []table.Column{
		{Name: "a", Cells: []table.Cell{table.NumberCell(1)}},
		{Name: "b", Cells: []table.Cell{table.NumberCell(1), table.NumberCell(2)}},
	}}

	_, err := engine.Profile(context.Background(), bad)
	require.Error(t, err)
	assert.True(t, core.IsMalformedTableError(err))
}

func TestEngine_Idempotence(t *testing.T) {
	engine := NewEngine()
	tbl := testkit.DemoTable(testkit.DefaultDemoConfig())

	first, err := engine.Profile(context.Background(), tbl)
	require.NoError(t, err)
	second, err := engine.Profile(context.Background(), tbl)
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint(), second.Fingerprint(),
		"two runs over an identical table must produce identical content")
	assert.NotEqual(t, first.ID, second.ID, "each invocation gets its own ID")
}

func TestEngine_DemoDatasetShape(t *testing.T) {
	engine := NewEngine()
	p, err := engine.Profile(context.Background(), testkit.DemoTable(testkit.DefaultDemoConfig()))
	require.NoError(t, err)

	assert.Equal(t, 100, p.RowCount)
	assert.Equal(t, profile.Numerical, p.Classifications["Sales"])
	assert.Equal(t, profile.Categorical, p.Classifications["Region"])
	assert.Equal(t, 10, p.Missing.PerColumn["Customer_Satisfaction"].Count)
	assert.Len(t, p.Correlations.Columns, 3)

	// Every defined coefficient stays within [-1, 1]
	for _, a := range p.Correlations.Columns {
		for _, b := range p.Correlations.Columns {
			if r, ok := p.Correlations.Coefficient(a, b); ok {
				assert.GreaterOrEqual(t, r, -1.0)
				assert.LessOrEqual(t, r, 1.0)
			}
		}
	}
}
