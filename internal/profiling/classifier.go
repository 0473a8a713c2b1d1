package profiling

import (
	"datascope/domain/profile"
	"datascope/domain/table"
)

// Classify assigns a column to Numerical or Categorical. A column is
// Numerical iff every non-missing cell resolved to a number; a single text
// value flips the whole column to Categorical, the always-computable path.
// An all-missing column carries no evidence of numeric intent and defaults
// to Categorical. Total function: never errors.
func Classify(col table.Column) profile.Classification {
	cells, _ := col.NonMissing()
	if len(cells) == 0 {
		return profile.Categorical
	}
	for _, cell := range cells {
		if cell.Kind != table.KindNumber {
			return profile.Categorical
		}
	}
	return profile.Numerical
}
