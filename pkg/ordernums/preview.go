package ordernums

import (
	"path/filepath"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/models"
	"github.com/ukaji3/ordernums-go/pkg/ordernums/workbook"
)

// DescribeWorkbook lists the sheets of the workbook at path.
func DescribeWorkbook(path string) (*models.WorkbookPreview, error) {
	doc, err := workbook.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return &models.WorkbookPreview{
		BookName: filepath.Base(path),
		Sheets:   doc.SheetNames(),
	}, nil
}

// Preview returns a sheet view whose header is the sheet's first row.
// An empty sheet yields an empty preview.
func Preview(doc *workbook.Document, sheet string) (*models.SheetPreview, error) {
	if !doc.HasSheet(sheet) {
		return nil, NewSheetNotFoundError(sheet, doc.SheetNames())
	}
	rows, err := doc.Rows(sheet)
	if err != nil {
		return nil, err
	}

	preview := &models.SheetPreview{Name: sheet, Header: []string{}, Rows: [][]models.CellValue{}}
	if area, ok := doc.AutoFilterRange(sheet); ok {
		preview.AutoFilter = area.Ref()
	}
	if len(rows) == 0 {
		return preview, nil
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for col := 0; col < width; col++ {
		var v models.CellValue
		if col < len(rows[0]) {
			v = rows[0][col]
		}
		preview.Header = append(preview.Header, v.String())
	}
	for _, row := range rows[1:] {
		padded := make([]models.CellValue, width)
		copy(padded, row)
		preview.Rows = append(preview.Rows, padded)
	}
	return preview, nil
}
