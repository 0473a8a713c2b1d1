package table

import (
	"strconv"
	"strings"
)

// CellKind tags the resolved type of a single cell
type CellKind int

const (
	KindMissing CellKind = iota
	KindNumber
	KindText
)

// Cell is a tagged variant holding one observation. Raw values are resolved
// to exactly one of Number, Text, or Missing during ingestion so downstream
// stages never re-inspect raw strings. Numeric cells parsed from text keep
// the source form in Raw so frequency counting sees exact values ("01",
// "1" and "1.0" stay distinct) even though they parse to the same number.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
	Raw    string
}

// MissingCell returns the missing-marker cell
func MissingCell() Cell {
	return Cell{Kind: KindMissing}
}

// NumberCell returns a numeric cell
func NumberCell(v float64) Cell {
	return Cell{Kind: KindNumber, Number: v}
}

// TextCell returns a text cell
func TextCell(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// IsMissing reports whether the cell holds the missing marker
func (c Cell) IsMissing() bool {
	return c.Kind == KindMissing
}

// String renders the cell for display and frequency counting.
// Values parsed from text are returned verbatim (case and whitespace
// preserved); only programmatically built number cells fall back to a
// formatted float.
func (c Cell) String() string {
	switch c.Kind {
	case KindNumber:
		if c.Raw != "" {
			return c.Raw
		}
		return strconv.FormatFloat(c.Number, 'g', -1, 64)
	case KindText:
		return c.Text
	default:
		return ""
	}
}

// Explicit null tokens treated as missing, matched case-insensitively on the
// trimmed raw value. A valid zero or a quoted empty string survives as data
// only if the source format distinguishes it, which CSV and Excel do not.
var missingTokens = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"null": {},
	"nan":  {},
	"none": {},
}

// ParseCell resolves one raw string value into a Cell. Missing detection and
// numeric parsing operate on the trimmed form; surviving text keeps the raw
// string untouched.
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if _, ok := missingTokens[strings.ToLower(trimmed)]; ok {
		return MissingCell()
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: KindNumber, Number: v, Raw: raw}
	}
	return TextCell(raw)
}
