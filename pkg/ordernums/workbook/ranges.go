package workbook

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/models"
)

const filterDatabaseName = "_xlnm._FilterDatabase"

// AutoFilterRange returns the auto-filter area defined for sheet, if any.
func (d *Document) AutoFilterRange(sheet string) (models.CellRange, bool) {
	for _, dn := range d.file.GetDefinedName() {
		if !strings.EqualFold(dn.Name, filterDatabaseName) {
			continue
		}
		refSheet, area, ok := ParseRange(dn.RefersTo)
		if !ok {
			continue
		}
		if refSheet == sheet || (refSheet == "" && dn.Scope == sheet) {
			return area, true
		}
	}
	return models.CellRange{}, false
}

// ParseRange parses a reference such as 'Sheet'!$A$1:$D$10 or A1:D10.
// The sheet is "" when the reference is unqualified.
func ParseRange(ref string) (string, models.CellRange, bool) {
	ref = strings.TrimSpace(ref)
	var sheet string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = ref[:idx]
		ref = ref[idx+1:]
		if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
			sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
		}
	}
	area, ok := parseArea(ref)
	return sheet, area, ok
}

// parseArea parses a range string like $A$1:$D$10. A single cell yields a
// one-cell range.
func parseArea(rangeStr string) (models.CellRange, bool) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.CellRange{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, false
	}

	return models.CellRange{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}
