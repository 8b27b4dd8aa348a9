package summary

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/models"
)

// LookupRange is the source column searched by the verification formula.
type LookupRange struct {
	Sheet    string
	Column   int // 1-based
	FirstRow int
	LastRow  int
}

// NewLookupRange returns the order-field range (column B) of sheet spanning
// rows 1 through lastRow.
func NewLookupRange(sheet string, lastRow int) LookupRange {
	if lastRow < 1 {
		lastRow = 1
	}
	return LookupRange{Sheet: sheet, Column: 2, FirstRow: 1, LastRow: lastRow}
}

// CellRange returns the bounds of the range.
func (l LookupRange) CellRange() models.CellRange {
	return models.CellRange{R1: l.FirstRow, C1: l.Column, R2: l.LastRow, C2: l.Column}
}

// String renders the sheet-qualified absolute reference, e.g. 'REAT-10'!$B$1:$B$28.
func (l LookupRange) String() string {
	return fmt.Sprintf("%s!%s", quoteSheetName(l.Sheet), l.CellRange().AbsoluteRef())
}

// quoteSheetName always wraps the name in single quotes, doubling embedded ones.
func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// VerificationFormula builds the formula telling whether the number in
// keyCell appears as a hyphen-delimited token anywhere in the lookup range.
// Spaces are stripped from each field before the search.
func VerificationFormula(lookup LookupRange, keyCell string) string {
	return fmt.Sprintf(
		`=SUMPRODUCT(--ISNUMBER(SEARCH("-"&%s&"-","-"&SUBSTITUTE(%s," ","")&"-")))>0`,
		keyCell, lookup.String(),
	)
}

// keyCellForRow returns the NUMERO cell of a summary sheet row.
func keyCellForRow(sheetRow int) string {
	cell, _ := excelize.CoordinatesToCellName(1, sheetRow)
	return cell
}
