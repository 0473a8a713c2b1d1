package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Table shape errors - the only fatal class at the engine boundary
	ErrMalformedTable  = errors.New("malformed table")
	ErrRaggedColumns   = fmt.Errorf("%w: columns have unequal lengths", ErrMalformedTable)
	ErrDuplicateColumn = fmt.Errorf("%w: duplicate column name", ErrMalformedTable)
	ErrEmptyColumnName = fmt.Errorf("%w: empty column name", ErrMalformedTable)

	// Lookup errors
	ErrColumnNotFound = errors.New("column not found")

	// Ingestion errors
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyFile         = errors.New("file contains no data")
)

// NewRaggedColumnsError reports a column whose length disagrees with the table
func NewRaggedColumnsError(column string, got, want int) error {
	return fmt.Errorf("%w: column %q has %d rows, expected %d", ErrRaggedColumns, column, got, want)
}

// NewDuplicateColumnError reports a repeated column name
func NewDuplicateColumnError(column string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateColumn, column)
}

// NewColumnNotFoundError reports a lookup miss by name
func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}

// IsMalformedTableError checks whether err is a table shape violation
func IsMalformedTableError(err error) bool {
	return errors.Is(err, ErrMalformedTable)
}
