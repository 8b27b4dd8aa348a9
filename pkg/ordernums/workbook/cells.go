package workbook

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/models"
)

// Rows returns every row of a sheet as typed cell values. Rows are 0-indexed
// in the result; each row is as wide as its last stored cell.
func (d *Document) Rows(sheet string) ([][]models.CellValue, error) {
	stored, ok := d.ResolveSheet(sheet)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchSheet, sheet)
	}
	sheet = stored
	rows, err := d.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([][]models.CellValue, len(rows))
	for rowIdx, row := range rows {
		values := make([]models.CellValue, len(row))
		for colIdx, raw := range row {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			values[colIdx], err = d.cellValue(sheet, cellName, raw)
			if err != nil {
				return nil, err
			}
		}
		result[rowIdx] = values
	}
	return result, nil
}

// SourceRows maps column A to the owner and column B to the order field of
// every row of sheet, starting at row 1.
func (d *Document) SourceRows(sheet string) ([]models.SourceRow, error) {
	rows, err := d.Rows(sheet)
	if err != nil {
		return nil, err
	}
	result := make([]models.SourceRow, len(rows))
	for i, row := range rows {
		result[i] = models.SourceRow{
			Owner: columnValue(row, 0),
			Field: columnValue(row, 1),
		}
	}
	return result, nil
}

func columnValue(row []models.CellValue, col int) models.CellValue {
	if col >= len(row) {
		return models.Absent()
	}
	return row[col]
}

// cellValue classifies a raw cell. Formulas are returned as their text so a
// workbook reads the same way it was written, not as cached results.
func (d *Document) cellValue(sheet, cellName, raw string) (models.CellValue, error) {
	formula, err := d.file.GetCellFormula(sheet, cellName)
	if err != nil {
		return models.Absent(), err
	}
	if formula != "" {
		return models.Text("=" + formula), nil
	}
	if raw == "" {
		return models.Absent(), nil
	}

	cellType, err := d.file.GetCellType(sheet, cellName)
	if err != nil {
		return models.Absent(), err
	}
	switch cellType {
	case excelize.CellTypeBool:
		if raw == "1" || raw == "TRUE" || raw == "true" {
			return models.Text("True"), nil
		}
		return models.Text("False"), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if isNumeric(raw) {
			return models.Number(raw), nil
		}
		return models.Text(raw), nil
	default:
		return models.Text(raw), nil
	}
}

// isNumeric reports whether s parses as a number.
func isNumeric(s string) bool {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
