// Package report renders a profile as a human-readable summary for the
// results page.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"datascope/domain/profile"
)

// Markdown builds the profile report in markdown
func Markdown(filename string, p *profile.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Profile of %s\n\n", filename)
	fmt.Fprintf(&b, "%d rows, %d columns, %.2f%% of cells missing.\n\n",
		p.RowCount, p.ColumnCount, p.Missing.TotalPercent)

	numericNames := sortedKeys(p.Numeric)
	if len(numericNames) > 0 {
		b.WriteString("## Numerical columns\n\n")
		b.WriteString("| Column | Count | Mean | Std | Min | Median | Max | Skew | Kurtosis | Outliers |\n")
		b.WriteString("|---|---|---|---|---|---|---|---|---|---|\n")
		for _, name := range numericNames {
			s := p.Numeric[name]
			fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s | %s | %s | %s | %d |\n",
				name, s.Count,
				num(s.Mean), num(s.StdDev), num(s.Min), num(s.Median), num(s.Max),
				num(s.Skewness), num(s.Kurtosis),
				p.Outliers[name].Count)
		}
		b.WriteString("\n")
	}

	categoricalNames := sortedKeys(p.Categorical)
	if len(categoricalNames) > 0 {
		b.WriteString("## Categorical columns\n\n")
		b.WriteString("| Column | Count | Distinct | Most frequent |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, name := range categoricalNames {
			s := p.Categorical[name]
			top := "-"
			if s.MostFrequent != nil {
				top = fmt.Sprintf("%s (%d)", *s.MostFrequent, s.MostFrequentCount)
			}
			fmt.Fprintf(&b, "| %s | %d | %d | %s |\n", name, s.Count, s.DistinctCount, top)
		}
		b.WriteString("\n")
	}

	if pairs := strongestPairs(p, 5); len(pairs) > 0 {
		b.WriteString("## Strongest correlations\n\n")
		for _, pair := range pairs {
			fmt.Fprintf(&b, "- %s and %s: r = %.3f\n", pair.a, pair.b, pair.r)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML renders the markdown report as HTML
func HTML(filename string, p *profile.Profile) []byte {
	md := Markdown(filename, p)
	mdParser := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), mdParser, renderer)
}

type correlatedPair struct {
	a, b string
	r    float64
}

// strongestPairs lists the top off-diagonal coefficients by magnitude
func strongestPairs(p *profile.Profile, limit int) []correlatedPair {
	var pairs []correlatedPair
	cols := p.Correlations.Columns
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			if r, ok := p.Correlations.Coefficient(cols[i], cols[j]); ok {
				pairs = append(pairs, correlatedPair{a: cols[i], b: cols[j], r: r})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		return abs(pairs[i].r) > abs(pairs[j].r)
	})
	if len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}

func num(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.4g", *v)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
