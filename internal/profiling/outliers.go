package profiling

import (
	"datascope/domain/profile"
)

// iqrFenceMultiplier sizes the outlier fences around the interquartile
// range. 1.5 is part of the renderer contract; do not tune per dataset.
const iqrFenceMultiplier = 1.5

// DetectOutliers flags values strictly outside [Q1-1.5·IQR, Q3+1.5·IQR],
// keeping each value's original row index for traceability. Fewer than 4
// samples is too few for a meaningful quartile split and yields an empty
// report with nil fences.
func DetectOutliers(values []float64, rowIndex []int) profile.OutlierReport {
	report := profile.OutlierReport{Outliers: []profile.Outlier{}}
	if len(values) < 4 {
		return report
	}

	sorted := sortedCopy(values)
	q1 := quantileSorted(sorted, 0.25)
	q3 := quantileSorted(sorted, 0.75)
	iqr := q3 - q1

	lower := q1 - iqrFenceMultiplier*iqr
	upper := q3 + iqrFenceMultiplier*iqr
	report.LowerFence = &lower
	report.UpperFence = &upper

	for i, v := range values {
		if v < lower || v > upper {
			report.Outliers = append(report.Outliers, profile.Outlier{
				RowIndex: rowIndex[i],
				Value:    v,
			})
		}
	}
	report.Count = len(report.Outliers)
	return report
}
