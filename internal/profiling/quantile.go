package profiling

import "sort"

// quantileSorted computes the p-quantile (0 ≤ p ≤ 1) of ascending-sorted
// values by linear interpolation between order statistics (the R-7
// estimator, the numpy/pandas default). Requires len(sorted) ≥ 1.
//
// The same estimator is used everywhere a quantile appears - descriptive
// percentiles and outlier fences - so the two never disagree.
func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(h)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// sortedCopy returns the values sorted ascending without touching the input
func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}
