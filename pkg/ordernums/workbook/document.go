// Package workbook wraps an excelize workbook with the small set of
// operations the extraction pipeline needs.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/models"
)

// ErrInvalidFormat indicates the input is not a readable xlsx container.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoSuchSheet indicates a sheet lookup failed.
var ErrNoSuchSheet = errors.New("sheet does not exist")

// Document is an open workbook. It is not safe for concurrent use.
type Document struct {
	file *excelize.File
}

// Open reads a workbook from r.
func Open(r io.Reader) (*Document, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &Document{file: f}, nil
}

// OpenFile reads the workbook at path.
func OpenFile(path string) (*Document, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Open(fh)
}

// New returns a document around an already open excelize file.
func New(f *excelize.File) *Document {
	return &Document{file: f}
}

// File exposes the underlying excelize file.
func (d *Document) File() *excelize.File {
	return d.file
}

// Close releases temporary resources held by the workbook.
func (d *Document) Close() error {
	return d.file.Close()
}

// SheetNames returns the sheet names in workbook order.
func (d *Document) SheetNames() []string {
	return d.file.GetSheetList()
}

// ResolveSheet returns the stored name of the sheet matching name. Sheet
// names are case-insensitive in a workbook, so "reat-10" resolves to "REAT-10".
func (d *Document) ResolveSheet(name string) (string, bool) {
	return MatchSheet(d.file.GetSheetList(), name)
}

// MatchSheet finds name in sheets ignoring case.
func MatchSheet(sheets []string, name string) (string, bool) {
	for _, sheet := range sheets {
		if strings.EqualFold(sheet, name) {
			return sheet, true
		}
	}
	return "", false
}

// HasSheet reports whether a sheet with this name exists, ignoring case.
func (d *Document) HasSheet(name string) bool {
	_, ok := d.ResolveSheet(name)
	return ok
}

// RemoveSheet deletes the named sheet, matched ignoring case.
func (d *Document) RemoveSheet(name string) error {
	stored, ok := d.ResolveSheet(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchSheet, name)
	}
	return d.file.DeleteSheet(stored)
}

// CreateSheet appends an empty sheet.
func (d *Document) CreateSheet(name string) error {
	_, err := d.file.NewSheet(name)
	return err
}

// SetCell writes value at the 1-based row and column.
func (d *Document) SetCell(sheet string, row, col int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return d.file.SetCellValue(sheet, cell, value)
}

// SetFormula writes a formula at the 1-based row and column. A leading "="
// is accepted and dropped, as the file format stores formulas without it.
func (d *Document) SetFormula(sheet string, row, col int, formula string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return d.file.SetCellFormula(sheet, cell, strings.TrimPrefix(formula, "="))
}

// SetColumnWidth sets the width of a 1-based column.
func (d *Document) SetColumnWidth(sheet string, col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return d.file.SetColWidth(sheet, name, name, width)
}

// SetAutoFilter adds an auto-filter over area.
func (d *Document) SetAutoFilter(sheet string, area models.CellRange) error {
	return d.file.AutoFilter(sheet, area.Ref(), nil)
}

// Serialize renders the workbook as xlsx bytes.
func (d *Document) Serialize() ([]byte, error) {
	buf, err := d.file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
