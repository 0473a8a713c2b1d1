package profiling

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"datascope/domain/profile"
)

// NumericColumn is one numerical column's non-missing values with their
// original row indices, the correlation engine's working unit.
type NumericColumn struct {
	Name   string
	Values []float64
	Rows   []int
}

// Correlate computes the pairwise Pearson matrix across the numerical
// columns. Each unordered pair is restricted to rows where both columns are
// simultaneously non-missing; fewer than 2 joint rows (or a zero-variance
// side) leaves the pair undefined. Computed once per pair and mirrored, so
// symmetry holds by construction. The diagonal is 1.0 wherever the column
// itself has at least 2 values.
func Correlate(rowCount int, cols []NumericColumn) profile.CorrelationMatrix {
	matrix := profile.CorrelationMatrix{
		Columns:      make([]string, 0, len(cols)),
		Coefficients: make(map[string]map[string]*float64, len(cols)),
	}
	for _, col := range cols {
		matrix.Columns = append(matrix.Columns, col.Name)
		matrix.Coefficients[col.Name] = make(map[string]*float64, len(cols))
	}

	// Row-aligned dense views for joint-presence intersection
	present := make([][]bool, len(cols))
	dense := make([][]float64, len(cols))
	for i, col := range cols {
		present[i] = make([]bool, rowCount)
		dense[i] = make([]float64, rowCount)
		for k, row := range col.Rows {
			present[i][row] = true
			dense[i][row] = col.Values[k]
		}
	}

	for i := range cols {
		if len(cols[i].Values) >= 2 {
			one := 1.0
			matrix.Coefficients[cols[i].Name][cols[i].Name] = &one
		} else {
			matrix.Coefficients[cols[i].Name][cols[i].Name] = nil
		}

		for j := i + 1; j < len(cols); j++ {
			coeff := pairCoefficient(rowCount, present[i], dense[i], present[j], dense[j])
			matrix.Coefficients[cols[i].Name][cols[j].Name] = coeff
			matrix.Coefficients[cols[j].Name][cols[i].Name] = coeff
		}
	}
	return matrix
}

// pairCoefficient computes Pearson's r over the jointly non-missing rows of
// one column pair, nil when undefined.
func pairCoefficient(rowCount int, presentX []bool, x []float64, presentY []bool, y []float64) *float64 {
	jointX := make([]float64, 0, rowCount)
	jointY := make([]float64, 0, rowCount)
	for row := 0; row < rowCount; row++ {
		if presentX[row] && presentY[row] {
			jointX = append(jointX, x[row])
			jointY = append(jointY, y[row])
		}
	}
	if len(jointX) < 2 {
		return nil
	}

	r := stat.Correlation(jointX, jointY, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		// Zero variance on either side leaves the coefficient undefined
		return nil
	}
	// Clamp floating drift back into [-1, 1]
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return &r
}
