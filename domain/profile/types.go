// Package profile defines the immutable statistical summary the profiling
// engine emits for one table. Field names and numeric semantics (quantile
// method, skewness/kurtosis formulas, the 1.5 IQR fence multiplier) are the
// contract renderers consume and must not reinterpret.
package profile

import (
	"encoding/json"

	"datascope/domain/core"
)

// Classification assigns a column to one of the two supported kinds
type Classification string

const (
	Numerical   Classification = "numerical"
	Categorical Classification = "categorical"
)

// MissingColumn reports absent values for one column
type MissingColumn struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// MissingReport quantifies absent values per column and dataset-wide
type MissingReport struct {
	PerColumn    map[string]MissingColumn `json:"per_column"`
	TotalMissing int                      `json:"total_missing"`
	TotalPercent float64                  `json:"total_percent"`
}

// NumericStats describes one numerical column. Measures that lack a
// sufficient sample are nil (JSON null), never zero-defaulted: a zero would
// misrepresent a measured value.
type NumericStats struct {
	Count    int      `json:"count"`
	Mean     *float64 `json:"mean"`
	StdDev   *float64 `json:"std"`
	Min      *float64 `json:"min"`
	Q25      *float64 `json:"q25"`
	Median   *float64 `json:"median"`
	Q75      *float64 `json:"q75"`
	Max      *float64 `json:"max"`
	Skewness *float64 `json:"skewness"`
	Kurtosis *float64 `json:"kurtosis"`
}

// ValueCount is one frequency-table entry
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CategoricalStats describes one categorical column. Frequencies are sorted
// by descending count, ties broken by first appearance in the column.
type CategoricalStats struct {
	Count             int          `json:"count"`
	DistinctCount     int          `json:"distinct_count"`
	MostFrequent      *string      `json:"most_frequent"`
	MostFrequentCount int          `json:"most_frequent_count"`
	Frequencies       []ValueCount `json:"frequencies"`
}

// Outlier is one flagged observation with its original row index
type Outlier struct {
	RowIndex int     `json:"row_index"`
	Value    float64 `json:"value"`
}

// OutlierReport flags values strictly outside the 1.5 IQR fences of one
// numerical column. Fences are nil when fewer than 4 samples exist.
type OutlierReport struct {
	LowerFence *float64  `json:"lower_fence"`
	UpperFence *float64  `json:"upper_fence"`
	Outliers   []Outlier `json:"outliers"`
	Count      int       `json:"count"`
}

// CorrelationMatrix holds pairwise Pearson coefficients across the
// numerical columns. Symmetric; diagonal 1.0 wherever the column has at
// least 2 non-missing values; nil where fewer than 2 jointly non-missing
// rows exist.
type CorrelationMatrix struct {
	Columns      []string                       `json:"columns"`
	Coefficients map[string]map[string]*float64 `json:"coefficients"`
}

// Coefficient looks up the coefficient for a column pair. The second return
// is false when the pair is undefined or unknown.
func (m CorrelationMatrix) Coefficient(a, b string) (float64, bool) {
	row, ok := m.Coefficients[a]
	if !ok {
		return 0, false
	}
	v, ok := row[b]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// Profile is the assembled result of one engine invocation. It is a value:
// created once, never mutated, no further lifecycle.
type Profile struct {
	ID        core.ProfileID `json:"id"`
	CreatedAt core.Timestamp `json:"created_at"`

	RowCount        int                         `json:"row_count"`
	ColumnCount     int                         `json:"column_count"`
	Classifications map[string]Classification   `json:"classifications"`
	Missing         MissingReport               `json:"missing"`
	Numeric         map[string]NumericStats     `json:"numeric_stats"`
	Categorical     map[string]CategoricalStats `json:"categorical_stats"`
	Outliers        map[string]OutlierReport    `json:"outliers"`
	Correlations    CorrelationMatrix           `json:"correlations"`
}

// content is the fingerprinted view of a profile: everything except the
// per-invocation ID and timestamp.
type content struct {
	RowCount        int                         `json:"row_count"`
	ColumnCount     int                         `json:"column_count"`
	Classifications map[string]Classification   `json:"classifications"`
	Missing         MissingReport               `json:"missing"`
	Numeric         map[string]NumericStats     `json:"numeric_stats"`
	Categorical     map[string]CategoricalStats `json:"categorical_stats"`
	Outliers        map[string]OutlierReport    `json:"outliers"`
	Correlations    CorrelationMatrix           `json:"correlations"`
}

// Fingerprint hashes the profile content deterministically. Two runs over an
// identical table yield equal fingerprints; encoding/json sorts map keys, so
// the serialization is stable.
func (p *Profile) Fingerprint() core.ProfileFingerprint {
	data, err := json.Marshal(content{
		RowCount:        p.RowCount,
		ColumnCount:     p.ColumnCount,
		Classifications: p.Classifications,
		Missing:         p.Missing,
		Numeric:         p.Numeric,
		Categorical:     p.Categorical,
		Outliers:        p.Outliers,
		Correlations:    p.Correlations,
	})
	if err != nil {
		// Profile types marshal without error by construction
		return core.NewProfileFingerprint(nil)
	}
	return core.NewProfileFingerprint(data)
}
