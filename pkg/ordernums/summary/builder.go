package summary

import (
	"strings"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/extractor"
	"github.com/ukaji3/ordernums-go/pkg/ordernums/models"
)

// OwnersSeparator joins the consultants of a summary row.
const OwnersSeparator = "; "

// FirstDataRow is the sheet row of the first summary data row; row 1 is the header.
const FirstDataRow = 2

// BuildSummary returns one row per identifier in index order.
func BuildSummary(index *extractor.NumberOwnerIndex, lookup LookupRange, filter OwnerFilter) []models.SummaryRow {
	rows := make([]models.SummaryRow, 0, index.Len())
	sheetRow := FirstDataRow
	index.Range(func(id extractor.Identifier, owners []string) bool {
		kept := filter.Apply(owners)
		rows = append(rows, models.SummaryRow{
			Identifier:          id.String(),
			VerificationFormula: VerificationFormula(lookup, keyCellForRow(sheetRow)),
			OwnerCount:          len(kept),
			OwnersJoined:        strings.Join(kept, OwnersSeparator),
		})
		sheetRow++
		return true
	})
	return rows
}
