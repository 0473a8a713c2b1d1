package profiling

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"datascope/domain/profile"
	"datascope/domain/table"
)

// DescribeNumeric computes descriptive statistics over one numerical
// column's non-missing values. Measures whose sample is too small stay nil:
// n≥1 for mean/min/max/percentiles, n≥2 for the sample standard deviation,
// n≥3 for skewness, n≥4 for kurtosis. Shape measures also need non-zero
// variance.
func DescribeNumeric(values []float64) profile.NumericStats {
	s := profile.NumericStats{Count: len(values)}
	if len(values) == 0 {
		return s
	}

	mean, _ := stats.Mean(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	s.Mean = ptr(mean)
	s.Min = ptr(min)
	s.Max = ptr(max)

	sorted := sortedCopy(values)
	s.Q25 = ptr(quantileSorted(sorted, 0.25))
	s.Median = ptr(quantileSorted(sorted, 0.50))
	s.Q75 = ptr(quantileSorted(sorted, 0.75))

	if len(values) < 2 {
		return s
	}
	std, _ := stats.StandardDeviationSample(values)
	s.StdDev = ptr(std)

	if std > 0 && len(values) >= 3 {
		s.Skewness = ptr(skewness(values, mean, std))
	}
	if std > 0 && len(values) >= 4 {
		s.Kurtosis = ptr(excessKurtosis(values, mean, std))
	}
	return s
}

// skewness is the adjusted Fisher-Pearson standardized third moment,
// G1 = n/((n-1)(n-2)) * Σ((x-mean)/s)³ with s the sample deviation.
// Equivalent to g1·√(n(n-1))/(n-2), the pandas .skew() formula.
func skewness(values []float64, mean, std float64) float64 {
	n := float64(len(values))
	sum := 0.0
	for _, x := range values {
		d := (x - mean) / std
		sum += d * d * d
	}
	return n / ((n - 1) * (n - 2)) * sum
}

// excessKurtosis is the bias-corrected excess kurtosis,
// G2 = n(n+1)/((n-1)(n-2)(n-3)) * Σ((x-mean)/s)⁴ - 3(n-1)²/((n-2)(n-3)),
// the pandas .kurtosis() formula. A normal sample trends to 0.
func excessKurtosis(values []float64, mean, std float64) float64 {
	n := float64(len(values))
	sum := 0.0
	for _, x := range values {
		d := (x - mean) / std
		sum += d * d * d * d
	}
	term := n * (n + 1) / ((n - 1) * (n - 2) * (n - 3)) * sum
	return term - 3*(n-1)*(n-1)/((n-2)*(n-3))
}

// DescribeCategorical builds the frequency table over a column's
// non-missing cells. Values are matched exactly (case-sensitive,
// whitespace-preserving); entries sort by descending count with ties kept
// in first-seen order.
func DescribeCategorical(cells []table.Cell) profile.CategoricalStats {
	s := profile.CategoricalStats{
		Count:       len(cells),
		Frequencies: []profile.ValueCount{},
	}

	counts := make(map[string]int, len(cells))
	order := make([]string, 0, len(cells))
	for _, cell := range cells {
		v := cell.String()
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	s.DistinctCount = len(order)
	for _, v := range order {
		s.Frequencies = append(s.Frequencies, profile.ValueCount{Value: v, Count: counts[v]})
	}
	// Stable sort keeps first-seen order among equal counts
	sort.SliceStable(s.Frequencies, func(i, j int) bool {
		return s.Frequencies[i].Count > s.Frequencies[j].Count
	})

	if len(s.Frequencies) > 0 {
		top := s.Frequencies[0]
		s.MostFrequent = &top.Value
		s.MostFrequentCount = top.Count
	}
	return s
}

func ptr(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
