// Package viz maps a profile onto the chart payloads the frontend renders.
// It is thin plumbing: every number here is lifted from the profile or the
// table, never recomputed with different semantics.
package viz

import (
	"math"

	"datascope/domain/profile"
	"datascope/domain/table"
)

// Caps mirroring the upstream renderer's readability limits
const (
	maxSummaryColumns   = 5
	maxHistogramColumns = 3
	maxBoxPlotColumns   = 4
	maxScatterColumns   = 3
	maxCategoryBars     = 10
	maxHistogramBins    = 20
)

// Charts bundles every chart payload for one profiled table. Absent
// sections are nil when the dataset has no columns of the required kind.
type Charts struct {
	SummaryStats  *SummaryStatsChart  `json:"summary_stats,omitempty"`
	Distributions []HistogramChart    `json:"distributions,omitempty"`
	Correlation   *HeatmapChart       `json:"correlation,omitempty"`
	BoxPlots      []BoxPlotChart      `json:"box_plots,omitempty"`
	Categorical   *CategoryBarChart   `json:"categorical,omitempty"`
	ScatterMatrix *ScatterMatrixChart `json:"scatter_matrix,omitempty"`
}

// SummaryStatsChart compares central measures across numerical columns
type SummaryStatsChart struct {
	Measures []string            `json:"measures"`
	Series   []SummaryStatSeries `json:"series"`
}

// SummaryStatSeries is one column's bar group
type SummaryStatSeries struct {
	Column string     `json:"column"`
	Values []*float64 `json:"values"`
}

// HistogramChart is one column's binned distribution
type HistogramChart struct {
	Column   string    `json:"column"`
	BinEdges []float64 `json:"bin_edges"`
	Counts   []int     `json:"counts"`
}

// HeatmapChart is the correlation matrix grid; undefined cells are null
type HeatmapChart struct {
	Columns []string     `json:"columns"`
	Z       [][]*float64 `json:"z"`
}

// BoxPlotChart is one column's five-number summary with flagged outliers
type BoxPlotChart struct {
	Column   string    `json:"column"`
	Min      *float64  `json:"min"`
	Q25      *float64  `json:"q25"`
	Median   *float64  `json:"median"`
	Q75      *float64  `json:"q75"`
	Max      *float64  `json:"max"`
	Outliers []float64 `json:"outliers"`
}

// CategoryBarChart is the top-categories bar chart for one column
type CategoryBarChart struct {
	Column string   `json:"column"`
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// ScatterMatrixChart carries jointly non-missing points for a small set of
// numerical columns
type ScatterMatrixChart struct {
	Columns []string    `json:"columns"`
	Points  [][]float64 `json:"points"`
}

// Build assembles every chart payload from a table and its profile
func Build(t *table.Table, p *profile.Profile) Charts {
	numeric := columnsOfKind(t, p, profile.Numerical)
	categorical := columnsOfKind(t, p, profile.Categorical)

	charts := Charts{}
	charts.SummaryStats = buildSummaryStats(p, numeric)
	charts.Distributions = buildHistograms(t, numeric)
	charts.Correlation = buildHeatmap(p)
	charts.BoxPlots = buildBoxPlots(t, p, numeric)
	charts.Categorical = buildCategoryBars(p, categorical)
	charts.ScatterMatrix = buildScatterMatrix(t, numeric)
	return charts
}

// columnsOfKind returns column names of the given classification in table order
func columnsOfKind(t *table.Table, p *profile.Profile, kind profile.Classification) []string {
	var names []string
	for _, col := range t.Columns {
		if p.Classifications[col.Name] == kind {
			names = append(names, col.Name)
		}
	}
	return names
}

func buildSummaryStats(p *profile.Profile, numeric []string) *SummaryStatsChart {
	if len(numeric) == 0 {
		return nil
	}
	chart := &SummaryStatsChart{
		Measures: []string{"Mean", "Median", "Std", "Min", "Max"},
	}
	for _, name := range capped(numeric, maxSummaryColumns) {
		s := p.Numeric[name]
		chart.Series = append(chart.Series, SummaryStatSeries{
			Column: name,
			Values: []*float64{s.Mean, s.Median, s.StdDev, s.Min, s.Max},
		})
	}
	return chart
}

func buildHistograms(t *table.Table, numeric []string) []HistogramChart {
	var charts []HistogramChart
	for _, name := range capped(numeric, maxHistogramColumns) {
		values := numericValues(t, name)
		if len(values) == 0 {
			continue
		}
		edges, counts := histogram(values)
		charts = append(charts, HistogramChart{Column: name, BinEdges: edges, Counts: counts})
	}
	return charts
}

// histogram bins values with the Sturges rule capped at maxHistogramBins
func histogram(values []float64) ([]float64, []int) {
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	bins := int(math.Ceil(math.Log2(float64(len(values))))) + 1
	if bins < 1 {
		bins = 1
	}
	if bins > maxHistogramBins {
		bins = maxHistogramBins
	}
	if min == max {
		return []float64{min, max}, []int{len(values)}
	}

	width := (max - min) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1 // max lands in the last bin
		}
		counts[idx]++
	}
	return edges, counts
}

func buildHeatmap(p *profile.Profile) *HeatmapChart {
	cols := p.Correlations.Columns
	if len(cols) < 2 {
		return nil
	}
	z := make([][]*float64, len(cols))
	for i, a := range cols {
		z[i] = make([]*float64, len(cols))
		for j, b := range cols {
			z[i][j] = p.Correlations.Coefficients[a][b]
		}
	}
	return &HeatmapChart{Columns: cols, Z: z}
}

func buildBoxPlots(t *table.Table, p *profile.Profile, numeric []string) []BoxPlotChart {
	var charts []BoxPlotChart
	for _, name := range capped(numeric, maxBoxPlotColumns) {
		s := p.Numeric[name]
		box := BoxPlotChart{
			Column:   name,
			Min:      s.Min,
			Q25:      s.Q25,
			Median:   s.Median,
			Q75:      s.Q75,
			Max:      s.Max,
			Outliers: []float64{},
		}
		for _, o := range p.Outliers[name].Outliers {
			box.Outliers = append(box.Outliers, o.Value)
		}
		charts = append(charts, box)
	}
	return charts
}

func buildCategoryBars(p *profile.Profile, categorical []string) *CategoryBarChart {
	if len(categorical) == 0 {
		return nil
	}
	// First categorical column only, matching the upstream layout
	name := categorical[0]
	chart := &CategoryBarChart{Column: name}
	freqs := p.Categorical[name].Frequencies
	if len(freqs) > maxCategoryBars {
		freqs = freqs[:maxCategoryBars]
	}
	for _, f := range freqs {
		chart.Labels = append(chart.Labels, f.Value)
		chart.Counts = append(chart.Counts, f.Count)
	}
	return chart
}

func buildScatterMatrix(t *table.Table, numeric []string) *ScatterMatrixChart {
	if len(numeric) < 2 {
		return nil
	}
	names := capped(numeric, maxScatterColumns)
	cols := make([]table.Column, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil
		}
		cols[i] = col
	}

	chart := &ScatterMatrixChart{Columns: names}
	for row := 0; row < t.RowCount(); row++ {
		point := make([]float64, 0, len(names))
		complete := true
		for _, col := range cols {
			cell := col.Cells[row]
			if cell.Kind != table.KindNumber {
				complete = false
				break
			}
			point = append(point, cell.Number)
		}
		if complete {
			chart.Points = append(chart.Points, point)
		}
	}
	return chart
}

func numericValues(t *table.Table, name string) []float64 {
	col, err := t.Column(name)
	if err != nil {
		return nil
	}
	var values []float64
	for _, cell := range col.Cells {
		if cell.Kind == table.KindNumber {
			values = append(values, cell.Number)
		}
	}
	return values
}

func capped(names []string, limit int) []string {
	if len(names) > limit {
		return names[:limit]
	}
	return names
}
