package ordernums

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/workbook"
)

// ErrInvalidFormat indicates the input is not a valid xlsx workbook.
var ErrInvalidFormat = workbook.ErrInvalidFormat

// ErrSheetNotFound indicates the source sheet is missing from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidOptions indicates unusable processing options.
var ErrInvalidOptions = errors.New("invalid options")

// SheetError reports a missing sheet together with the sheets that do exist.
type SheetError struct {
	SheetName string
	Available []string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%v: %q (available: %s)", e.Err, e.SheetName, strings.Join(e.Available, ", "))
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetNotFoundError creates a SheetError wrapping ErrSheetNotFound.
func NewSheetNotFoundError(sheetName string, available []string) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Available: available,
		Err:       ErrSheetNotFound,
	}
}
