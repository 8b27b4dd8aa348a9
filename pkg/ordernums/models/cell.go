// Package models defines data structures shared by the extraction pipeline.
package models

import "encoding/json"

// CellKind tags the variant held by a CellValue.
type CellKind int

const (
	// CellAbsent marks an empty or missing cell.
	CellAbsent CellKind = iota
	// CellText marks a string cell (including formulas and booleans).
	CellText
	// CellNumber marks a numeric cell.
	CellNumber
)

// CellValue is a single spreadsheet cell as read from a sheet.
type CellValue struct {
	Kind CellKind
	// Raw is the stored text of the cell. Numbers keep their stored decimal form.
	Raw string
}

// Absent returns the empty cell value.
func Absent() CellValue {
	return CellValue{Kind: CellAbsent}
}

// Text returns a text cell value.
func Text(s string) CellValue {
	return CellValue{Kind: CellText, Raw: s}
}

// Number returns a numeric cell value holding its stored decimal text.
func Number(raw string) CellValue {
	return CellValue{Kind: CellNumber, Raw: raw}
}

// IsAbsent reports whether the cell holds no value.
func (v CellValue) IsAbsent() bool {
	return v.Kind == CellAbsent
}

// String coerces the cell to its textual representation. Absent cells yield "".
func (v CellValue) String() string {
	if v.Kind == CellAbsent {
		return ""
	}
	return v.Raw
}

// MarshalJSON renders absent cells as null and everything else as its text.
func (v CellValue) MarshalJSON() ([]byte, error) {
	if v.Kind == CellAbsent {
		return []byte("null"), nil
	}
	return json.Marshal(v.Raw)
}

// SourceRow is one row of the source table.
type SourceRow struct {
	// Owner is the consultant label from column A.
	Owner CellValue
	// Field is the free-text order field from column B.
	Field CellValue
}
