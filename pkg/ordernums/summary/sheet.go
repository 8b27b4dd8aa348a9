package summary

import (
	"fmt"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/extractor"
	"github.com/ukaji3/ordernums-go/pkg/ordernums/models"
)

// Header cells of the summary sheet.
const (
	HeaderNumber      = "NUMERO"
	HeaderFound       = "ENCONTRADO_REAT10"
	HeaderOccurrences = "OCORRENCIAS_REAT10"
	HeaderConsultants = "CONSULTORES"
)

// Headers lists the summary header row in column order.
var Headers = []string{HeaderNumber, HeaderFound, HeaderOccurrences, HeaderConsultants}

// ColumnWidths are the display widths of columns A-D in character units.
var ColumnWidths = []float64{16, 22, 22, 50}

// SheetDocument is the part of a workbook the summary sheet is written through.
// HasSheet and RemoveSheet match sheet names ignoring case, as workbooks do.
type SheetDocument interface {
	HasSheet(name string) bool
	RemoveSheet(name string) error
	CreateSheet(name string) error
	SetCell(sheet string, row, col int, value interface{}) error
	SetFormula(sheet string, row, col int, formula string) error
	SetColumnWidth(sheet string, col int, width float64) error
	SetAutoFilter(sheet string, area models.CellRange) error
}

// FilterRange returns the auto-filter bounds for a sheet holding n data rows.
func FilterRange(n int) models.CellRange {
	return models.CellRange{R1: 1, C1: 1, R2: n + 1, C2: len(Headers)}
}

// Materialize replaces sheet name in doc with the summary rows. Any existing
// sheet of that name is removed first; nothing of it survives.
func Materialize(doc SheetDocument, name string, rows []models.SummaryRow) error {
	if doc.HasSheet(name) {
		if err := doc.RemoveSheet(name); err != nil {
			return fmt.Errorf("remove sheet %q: %w", name, err)
		}
	}
	if err := doc.CreateSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}

	for col, header := range Headers {
		if err := doc.SetCell(name, 1, col+1, header); err != nil {
			return err
		}
	}

	for i, row := range rows {
		sheetRow := FirstDataRow + i
		if err := writeRow(doc, name, sheetRow, row); err != nil {
			return fmt.Errorf("write row %d: %w", sheetRow, err)
		}
	}

	if err := doc.SetAutoFilter(name, FilterRange(len(rows))); err != nil {
		return fmt.Errorf("set auto filter: %w", err)
	}
	for col, width := range ColumnWidths {
		if err := doc.SetColumnWidth(name, col+1, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	return nil
}

func writeRow(doc SheetDocument, sheet string, sheetRow int, row models.SummaryRow) error {
	var number interface{} = row.Identifier
	if id, ok := extractor.ParseIdentifier(row.Identifier); ok {
		number = id.CellValue()
	}
	if err := doc.SetCell(sheet, sheetRow, 1, number); err != nil {
		return err
	}
	if err := doc.SetFormula(sheet, sheetRow, 2, row.VerificationFormula); err != nil {
		return err
	}
	if err := doc.SetCell(sheet, sheetRow, 3, row.OwnerCount); err != nil {
		return err
	}
	return doc.SetCell(sheet, sheetRow, 4, row.OwnersJoined)
}
