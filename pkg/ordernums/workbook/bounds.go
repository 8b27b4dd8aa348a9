package workbook

import (
	"github.com/ukaji3/ordernums-go/pkg/ordernums/models"
)

// DataBounds returns the bounding box of non-empty cells in sheet, read the
// same way as Rows so formulas without a cached result count as values. ok
// is false when the sheet holds no values.
func (d *Document) DataBounds(sheet string) (area models.CellRange, ok bool, err error) {
	rows, err := d.Rows(sheet)
	if err != nil {
		return models.CellRange{}, false, err
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.CellRange{}, false, nil
	}
	return models.CellRange{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true, nil
}

// LastRow returns the last row of sheet holding a value, or 1 for an empty sheet.
func (d *Document) LastRow(sheet string) (int, error) {
	area, ok, err := d.DataBounds(sheet)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}
	return area.R2, nil
}

// findDataBounds finds the bounding box of non-absent cells (0-based).
func findDataBounds(rows [][]models.CellValue) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell.IsAbsent() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
