package ordernums

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/summary"
	"github.com/ukaji3/ordernums-go/pkg/ordernums/workbook"
)

// sourceWorkbook returns xlsx bytes with a REAT-10 sheet holding the given
// consultant/order pairs from row 1.
func sourceWorkbook(t *testing.T, pairs [][2]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", DefaultSourceSheet))
	for i, pair := range pairs {
		row := i + 1
		if pair[0] != "" {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			require.NoError(t, f.SetCellValue(DefaultSourceSheet, cell, pair[0]))
		}
		if pair[1] != "" {
			cell, _ := excelize.CoordinatesToCellName(2, row)
			require.NoError(t, f.SetCellValue(DefaultSourceSheet, cell, pair[1]))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func openBytes(t *testing.T, data []byte) *workbook.Document {
	t.Helper()
	doc, err := workbook.Open(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { doc.Close() })
	return doc
}

func outputRows(t *testing.T, doc *workbook.Document) [][]string {
	t.Helper()
	rows, err := doc.File().GetRows(DefaultOutputSheet)
	require.NoError(t, err)
	return rows
}

func TestProcessBytes(t *testing.T) {
	input := sourceWorkbook(t, [][2]string{
		{"Consultor", "nan"},
		{"Ana", "100-200"},
		{"Bruno", "100"},
		{"Carla", "7 - 200"},
	})

	opts := DefaultOptions()
	opts.Logger = zaptest.NewLogger(t)
	out, report, err := ProcessBytes(input, opts)
	require.NoError(t, err)
	require.Equal(t, 3, report.UniqueCount)
	require.Equal(t, 4, report.LastSourceRow)
	require.NotEmpty(t, report.RequestID)

	doc := openBytes(t, out)
	require.Equal(t, []string{DefaultSourceSheet, DefaultOutputSheet}, doc.SheetNames())

	rows := outputRows(t, doc)
	require.Len(t, rows, 4)
	require.Equal(t, summary.Headers, rows[0])
	require.Equal(t, []string{"100", "2", "Ana; Bruno"}, []string{rows[1][0], rows[1][2], rows[1][3]})
	require.Equal(t, []string{"200", "2", "Ana; Carla"}, []string{rows[2][0], rows[2][2], rows[2][3]})
	require.Equal(t, []string{"7", "1", "Carla"}, []string{rows[3][0], rows[3][2], rows[3][3]})

	formula, err := doc.File().GetCellFormula(DefaultOutputSheet, "B3")
	require.NoError(t, err)
	require.Equal(t,
		`SUMPRODUCT(--ISNUMBER(SEARCH("-"&A3&"-","-"&SUBSTITUTE('REAT-10'!$B$1:$B$4," ","")&"-")))>0`,
		formula,
	)

	area, ok := doc.AutoFilterRange(DefaultOutputSheet)
	require.True(t, ok)
	require.Equal(t, "A1:D4", area.Ref())

	for i, column := range []string{"A", "B", "C", "D"} {
		width, err := doc.File().GetColWidth(DefaultOutputSheet, column)
		require.NoError(t, err)
		require.InDelta(t, summary.ColumnWidths[i], width, 0.01, "column %s", column)
	}
}

func TestProcessFirstOccurrenceOrder(t *testing.T) {
	doc := openBytes(t, sourceWorkbook(t, [][2]string{{"A", "200"}, {"B", "100"}, {"C", "200"}}))

	_, err := Process(doc, DefaultOptions())
	require.NoError(t, err)

	rows := outputRows(t, doc)
	require.Equal(t, "200", rows[1][0])
	require.Equal(t, "100", rows[2][0])
	require.Equal(t, "A; C", rows[1][3])
}

func TestProcessMissingSourceSheet(t *testing.T) {
	doc := openBytes(t, sourceWorkbook(t, [][2]string{{"Ana", "1"}}))
	before := doc.SheetNames()

	opts := DefaultOptions()
	opts.SourceSheet = "REAT-11"
	_, err := Process(doc, opts)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrSheetNotFound))

	var sheetErr *SheetError
	require.True(t, errors.As(err, &sheetErr))
	require.Equal(t, "REAT-11", sheetErr.SheetName)
	require.Equal(t, []string{DefaultSourceSheet}, sheetErr.Available)
	require.Equal(t, before, doc.SheetNames())
}

func TestProcessInvalidPayload(t *testing.T) {
	_, _, err := ProcessBytes([]byte("definitely not xlsx"), DefaultOptions())
	require.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestProcessRejectsInvalidOptions(t *testing.T) {
	doc := openBytes(t, sourceWorkbook(t, [][2]string{{"Ana", "1"}}))
	for _, opts := range []Options{
		{SourceSheet: "", OutputSheet: "OUT"},
		{SourceSheet: "REAT-10", OutputSheet: " "},
		{SourceSheet: "REAT-10", OutputSheet: "REAT-10"},
		{SourceSheet: "REAT-10", OutputSheet: "reat-10"},
		{SourceSheet: "REAT-10", OutputSheet: " Reat-10 "},
	} {
		_, err := Process(doc, opts)
		require.True(t, errors.Is(err, ErrInvalidOptions), "options %+v: %v", opts, err)
	}
	require.Equal(t, []string{DefaultSourceSheet}, doc.SheetNames())
}

func TestProcessReplacesStaleOutput(t *testing.T) {
	first, _, err := ProcessBytes(sourceWorkbook(t, [][2]string{
		{"Ana", "1-2-3"},
		{"Bruno", "4"},
	}), DefaultOptions())
	require.NoError(t, err)

	// shrink the source: only number 1 remains
	doc := openBytes(t, first)
	require.NoError(t, doc.File().SetCellValue(DefaultSourceSheet, "B1", "1"))
	require.NoError(t, doc.File().SetCellValue(DefaultSourceSheet, "B2", "x"))
	require.NoError(t, doc.File().SetCellValue(DefaultOutputSheet, "F9", "stale"))

	report, err := Process(doc, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, report.UniqueCount)
	require.Equal(t, 2, report.LastSourceRow)

	rows := outputRows(t, doc)
	require.Len(t, rows, 2)
	require.Equal(t, "1", rows[1][0])
	require.Equal(t, "1", rows[1][2])
	require.Equal(t, "Ana", rows[1][3])
	stale, err := doc.File().GetCellValue(DefaultOutputSheet, "F9")
	require.NoError(t, err)
	require.Empty(t, stale)

	area, ok := doc.AutoFilterRange(DefaultOutputSheet)
	require.True(t, ok)
	require.Equal(t, "A1:D2", area.Ref())
	require.Equal(t, []string{DefaultSourceSheet, DefaultOutputSheet}, doc.SheetNames())
}

func TestProcessKeepsSourceWhenOutputDiffersByCase(t *testing.T) {
	doc := openBytes(t, sourceWorkbook(t, [][2]string{{"Ana", "1"}}))

	opts := DefaultOptions()
	opts.OutputSheet = "reat-10"
	_, err := Process(doc, opts)
	require.True(t, errors.Is(err, ErrInvalidOptions))

	rows, err := doc.File().GetRows(DefaultSourceSheet)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"Ana", "1"}}, rows)
	require.Equal(t, []string{DefaultSourceSheet}, doc.SheetNames())
}

func TestProcessReplacesCaseVariantOutputSheet(t *testing.T) {
	doc := openBytes(t, sourceWorkbook(t, [][2]string{{"Ana", "1"}}))
	_, err := doc.File().NewSheet("extraidos_reat10")
	require.NoError(t, err)
	for row := 2; row <= 6; row++ {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		require.NoError(t, doc.File().SetCellValue("extraidos_reat10", cell, "stale"))
	}

	_, err = Process(doc, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{DefaultSourceSheet, DefaultOutputSheet}, doc.SheetNames())

	rows := outputRows(t, doc)
	require.Len(t, rows, 2)
	require.Equal(t, "1", rows[1][0])
	require.Equal(t, "Ana", rows[1][3])
}

func TestProcessResolvesSourceSheetIgnoringCase(t *testing.T) {
	doc := openBytes(t, sourceWorkbook(t, [][2]string{{"Ana", "1"}}))

	opts := DefaultOptions()
	opts.SourceSheet = "reat-10"
	report, err := Process(doc, opts)
	require.NoError(t, err)
	require.Equal(t, DefaultSourceSheet, report.SourceSheet)

	formula, err := doc.File().GetCellFormula(DefaultOutputSheet, "B2")
	require.NoError(t, err)
	require.Contains(t, formula, "'REAT-10'!$B$1:$B$1")
}

func TestProcessLookupRangeCoversUncachedFormula(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", DefaultSourceSheet))
	require.NoError(t, f.SetCellValue(DefaultSourceSheet, "A1", "Ana"))
	require.NoError(t, f.SetCellValue(DefaultSourceSheet, "B1", "1"))
	require.NoError(t, f.SetCellFormula(DefaultSourceSheet, "B3", `"77"`))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	doc := openBytes(t, buf.Bytes())

	report, err := Process(doc, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, report.LastSourceRow)
	require.Equal(t, 2, report.UniqueCount)

	formula, err := doc.File().GetCellFormula(DefaultOutputSheet, "B3")
	require.NoError(t, err)
	require.Contains(t, formula, "'REAT-10'!$B$1:$B$3")
}

func TestProcessIsIdempotent(t *testing.T) {
	input := sourceWorkbook(t, [][2]string{{"Carla", "9-8"}, {"Ana", "8 7"}, {"", "7"}})
	doc := openBytes(t, input)

	_, err := Process(doc, DefaultOptions())
	require.NoError(t, err)
	first := outputRows(t, doc)

	_, err = Process(doc, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, first, outputRows(t, doc))
}

func TestProcessEmptySourceSheet(t *testing.T) {
	doc := openBytes(t, sourceWorkbook(t, nil))

	report, err := Process(doc, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 0, report.UniqueCount)
	require.Equal(t, 1, report.LastSourceRow)

	rows := outputRows(t, doc)
	require.Equal(t, [][]string{summary.Headers}, rows)
	area, ok := doc.AutoFilterRange(DefaultOutputSheet)
	require.True(t, ok)
	require.Equal(t, "A1:D1", area.Ref())
}

func TestProcessCustomExcludedOwners(t *testing.T) {
	doc := openBytes(t, sourceWorkbook(t, [][2]string{{"Vendedor", "5"}, {"nan", "5"}, {"Ana", "5"}}))

	opts := DefaultOptions()
	opts.ExcludedOwners = []string{"vendedor"}
	_, err := Process(doc, opts)
	require.NoError(t, err)

	rows := outputRows(t, doc)
	require.Equal(t, "2", rows[1][2])
	require.Equal(t, "Ana; nan", rows[1][3])
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "Resultados2025.xlsx")
	outputPath := filepath.Join(dir, "Resultados2025_atualizado.xlsx")
	require.NoError(t, os.WriteFile(inputPath, sourceWorkbook(t, [][2]string{{"Ana", "10-20"}}), 0o644))

	report, err := ProcessFile(inputPath, outputPath, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, outputPath, report.OutputPath)
	require.Equal(t, 2, report.UniqueCount)

	doc, err := workbook.OpenFile(outputPath)
	require.NoError(t, err)
	defer doc.Close()
	require.True(t, doc.HasSheet(DefaultOutputSheet))

	input, err := workbook.OpenFile(inputPath)
	require.NoError(t, err)
	defer input.Close()
	require.False(t, input.HasSheet(DefaultOutputSheet))
}

func TestPreview(t *testing.T) {
	doc := openBytes(t, sourceWorkbook(t, [][2]string{{"CONSULTOR", "PEDIDOS"}, {"Ana", "1-2"}, {"Bruno", ""}}))

	preview, err := Preview(doc, DefaultSourceSheet)
	require.NoError(t, err)
	require.Equal(t, []string{"CONSULTOR", "PEDIDOS"}, preview.Header)
	require.Len(t, preview.Rows, 2)
	require.Equal(t, "Ana", preview.Rows[0][0].String())
	require.True(t, preview.Rows[1][1].IsAbsent())
	require.Empty(t, preview.AutoFilter)

	_, err = Preview(doc, DefaultOutputSheet)
	require.True(t, errors.Is(err, ErrSheetNotFound))

	_, err = Process(doc, DefaultOptions())
	require.NoError(t, err)
	preview, err = Preview(doc, DefaultOutputSheet)
	require.NoError(t, err)
	require.Equal(t, summary.Headers, preview.Header)
	require.Equal(t, "A1:D3", preview.AutoFilter)
}

func TestDescribeWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, os.WriteFile(path, sourceWorkbook(t, nil), 0o644))

	described, err := DescribeWorkbook(path)
	require.NoError(t, err)
	require.Equal(t, "book.xlsx", described.BookName)
	require.Equal(t, []string{DefaultSourceSheet}, described.Sheets)
}
