// Package output renders pipeline results for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/models"
)

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ReportSummary is the one-line human-readable description of a run.
func ReportSummary(r *models.Report) string {
	return fmt.Sprintf("Sheet %s updated. Unique numbers: %d | Last row of %s: %d",
		r.OutputSheet, r.UniqueCount, r.SourceSheet, r.LastSourceRow)
}

// WriteJSON writes v as JSON followed by a newline.
func WriteJSON(w io.Writer, v interface{}, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
