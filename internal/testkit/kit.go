// Package testkit generates synthetic datasets for the demo endpoint and
// for tests. Generation is seeded so fixtures stay reproducible.
package testkit

import (
	"math/rand"

	"datascope/domain/table"
)

// DemoConfig controls the synthetic business dataset
type DemoConfig struct {
	Rows           int
	Seed           int64
	MissingRatings int // Customer_Satisfaction cells blanked out
}

// DefaultDemoConfig mirrors the canonical demo dataset: 100 rows, seed 42,
// 10 injected missing satisfaction ratings
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{Rows: 100, Seed: 42, MissingRatings: 10}
}

// DemoTable builds the demo dataset: two correlated-ish normal columns, a
// uniform rating column with injected missing values, and two categorical
// columns
func DemoTable(cfg DemoConfig) *table.Table {
	rng := rand.New(rand.NewSource(cfg.Seed))

	sales := make([]table.Cell, cfg.Rows)
	marketing := make([]table.Cell, cfg.Rows)
	satisfaction := make([]table.Cell, cfg.Rows)
	region := make([]table.Cell, cfg.Rows)
	category := make([]table.Cell, cfg.Rows)

	regions := []string{"North", "South", "East", "West"}
	categories := []string{"A", "B", "C"}

	for i := 0; i < cfg.Rows; i++ {
		sales[i] = table.NumberCell(rng.NormFloat64()*200 + 1000)
		marketing[i] = table.NumberCell(rng.NormFloat64()*100 + 500)
		satisfaction[i] = table.NumberCell(rng.Float64()*4 + 1)
		region[i] = table.TextCell(regions[rng.Intn(len(regions))])
		category[i] = table.TextCell(categories[rng.Intn(len(categories))])
	}

	// Blank out a few ratings so the missing-value report has something to say
	for _, idx := range rng.Perm(cfg.Rows)[:min(cfg.MissingRatings, cfg.Rows)] {
		satisfaction[idx] = table.MissingCell()
	}

	t, err := table.New(
		table.Column{Name: "Sales", Cells: sales},
		table.Column{Name: "Marketing_Spend", Cells: marketing},
		table.Column{Name: "Customer_Satisfaction", Cells: satisfaction},
		table.Column{Name: "Region", Cells: region},
		table.Column{Name: "Product_Category", Cells: category},
	)
	if err != nil {
		// Columns are constructed with equal lengths and unique names
		panic(err)
	}
	return t
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
