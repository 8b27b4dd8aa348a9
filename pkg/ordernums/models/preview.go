package models

// SheetPreview is a tabular view of a sheet with its first row used as the header.
type SheetPreview struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Header holds the first row's values.
	Header []string `json:"header"`
	// Rows contains the remaining rows, padded to the header width.
	Rows [][]CellValue `json:"rows"`
	// AutoFilter is the sheet's auto-filter range in A1 notation, if any.
	AutoFilter string `json:"auto_filter,omitempty"`
}

// WorkbookPreview lists the sheets of a workbook.
type WorkbookPreview struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists sheet names in workbook order.
	Sheets []string `json:"sheets"`
}
