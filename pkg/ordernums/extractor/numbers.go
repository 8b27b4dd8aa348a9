// Package extractor finds numbers embedded in order fields and groups the
// consultants that reference each of them.
package extractor

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/models"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Identifier is a non-negative integer of arbitrary size, held in canonical
// decimal form (no leading zeros). The zero value is not a valid identifier.
type Identifier struct {
	digits string
}

// ParseIdentifier builds an Identifier from a run of ASCII digits.
// It reports false if s is empty or contains anything but digits.
func ParseIdentifier(s string) (Identifier, bool) {
	if s == "" {
		return Identifier{}, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Identifier{}, false
		}
	}
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return Identifier{digits: trimmed}, true
}

// String returns the canonical decimal text.
func (id Identifier) String() string {
	return id.digits
}

// Int64 returns the value when it fits in an int64.
func (id Identifier) Int64() (int64, bool) {
	n, err := strconv.ParseInt(id.digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Big returns the value as a big.Int.
func (id Identifier) Big() *big.Int {
	n, _ := new(big.Int).SetString(id.digits, 10)
	return n
}

// MaxExactDigits is the longest digit run a spreadsheet number keeps exactly;
// longer values are shown and compared rounded.
const MaxExactDigits = 15

// CellValue returns the value to store in a sheet cell: an int64 for up to
// MaxExactDigits digits, otherwise the decimal text so that nothing is rounded.
func (id Identifier) CellValue() interface{} {
	if len(id.digits) <= MaxExactDigits {
		if n, ok := id.Int64(); ok {
			return n
		}
	}
	return id.digits
}

// ExtractNumbers returns every maximal run of decimal digits in the cell's
// text, left to right. Absent cells yield nil.
func ExtractNumbers(v models.CellValue) []Identifier {
	if v.IsAbsent() {
		return nil
	}
	return ExtractNumbersFromText(v.String())
}

// ExtractNumbersFromText is ExtractNumbers for already coerced text.
func ExtractNumbersFromText(text string) []Identifier {
	runs := digitRun.FindAllString(text, -1)
	if len(runs) == 0 {
		return nil
	}
	ids := make([]Identifier, 0, len(runs))
	for _, run := range runs {
		id, _ := ParseIdentifier(run)
		ids = append(ids, id)
	}
	return ids
}
