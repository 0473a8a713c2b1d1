// Package profiling implements the statistical profiling engine: a pure
// function from a validated table to an immutable profile. There is no I/O
// here; the table is already materialized and size limits belong to the
// caller.
package profiling

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"datascope/domain/core"
	"datascope/domain/profile"
	"datascope/domain/table"
)

// Engine orchestrates the profiling stages. Stateless and reentrant: each
// invocation reads one table and returns one profile with nothing retained
// between calls.
type Engine struct{}

// NewEngine creates a profiling engine
func NewEngine() *Engine {
	return &Engine{}
}

// columnResult collects the per-column outputs of the concurrent stage
type columnResult struct {
	name           string
	classification profile.Classification
	numeric        *profile.NumericStats
	categorical    *profile.CategoricalStats
	outliers       *profile.OutlierReport
	numericCol     *NumericColumn
}

// Profile runs classification, missing-value analysis, descriptive
// statistics, outlier detection, and pairwise correlation, and assembles
// the results into one Profile value. The only error it returns is a
// malformed table (ragged columns or duplicate names); every statistical
// degenerate case yields a defined result instead.
//
// Per-column work is independent and fans out across workers; results are
// keyed by column name, so completion order never affects the outcome.
func (e *Engine) Profile(ctx context.Context, t *table.Table) (*profile.Profile, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	results := make([]columnResult, t.ColumnCount())

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range t.Columns {
		col := t.Columns[i]
		res := &results[i]
		g.Go(func() error {
			res.name = col.Name
			res.classification = Classify(col)
			cells, rows := col.NonMissing()

			switch res.classification {
			case profile.Numerical:
				values := make([]float64, len(cells))
				for k, cell := range cells {
					values[k] = cell.Number
				}
				numeric := DescribeNumeric(values)
				outliers := DetectOutliers(values, rows)
				res.numeric = &numeric
				res.outliers = &outliers
				res.numericCol = &NumericColumn{Name: col.Name, Values: values, Rows: rows}
			default:
				categorical := DescribeCategorical(cells)
				res.categorical = &categorical
			}
			return nil
		})
	}
	// Workers only compute, they cannot fail
	_ = g.Wait()

	p := &profile.Profile{
		ID:              core.NewProfileID(),
		CreatedAt:       core.Now(),
		RowCount:        t.RowCount(),
		ColumnCount:     t.ColumnCount(),
		Classifications: make(map[string]profile.Classification, t.ColumnCount()),
		Missing:         AnalyzeMissing(t),
		Numeric:         make(map[string]profile.NumericStats),
		Categorical:     make(map[string]profile.CategoricalStats),
		Outliers:        make(map[string]profile.OutlierReport),
	}

	// Correlation is the single join point: it needs every numerical column
	numericCols := make([]NumericColumn, 0, len(results))
	for _, res := range results {
		p.Classifications[res.name] = res.classification
		if res.numeric != nil {
			p.Numeric[res.name] = *res.numeric
		}
		if res.categorical != nil {
			p.Categorical[res.name] = *res.categorical
		}
		if res.outliers != nil {
			p.Outliers[res.name] = *res.outliers
		}
		if res.numericCol != nil {
			numericCols = append(numericCols, *res.numericCol)
		}
	}
	p.Correlations = Correlate(t.RowCount(), numericCols)

	return p, nil
}
