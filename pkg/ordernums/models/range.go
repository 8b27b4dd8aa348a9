package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// CellRange represents cell coordinate bounds.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Ref returns the range in A1 notation, e.g. "A1:D10".
func (r CellRange) Ref() string {
	return r.format(false)
}

// AbsoluteRef returns the range with both axes anchored, e.g. "$B$1:$B$28".
func (r CellRange) AbsoluteRef() string {
	return r.format(true)
}

func (r CellRange) format(abs bool) string {
	start, err := excelize.CoordinatesToCellName(r.C1, r.R1, abs)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(r.C2, r.R2, abs)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", start, end)
}
