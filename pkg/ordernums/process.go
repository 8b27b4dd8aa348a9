package ordernums

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/extractor"
	"github.com/ukaji3/ordernums-go/pkg/ordernums/models"
	"github.com/ukaji3/ordernums-go/pkg/ordernums/summary"
	"github.com/ukaji3/ordernums-go/pkg/ordernums/workbook"
)

// Document is the workbook surface used by Process.
type Document interface {
	summary.SheetDocument
	SheetNames() []string
	SourceRows(sheet string) ([]models.SourceRow, error)
	LastRow(sheet string) (int, error)
}

// Process rebuilds the summary sheet of doc from its source sheet. doc is
// mutated in place. A missing source sheet is reported before anything is
// read or written.
func Process(doc Document, opts Options) (*models.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	source, ok := workbook.MatchSheet(doc.SheetNames(), opts.SourceSheet)
	if !ok {
		return nil, NewSheetNotFoundError(opts.SourceSheet, doc.SheetNames())
	}
	opts.SourceSheet = source

	report := &models.Report{
		RequestID:   uuid.NewString(),
		SourceSheet: opts.SourceSheet,
		OutputSheet: opts.OutputSheet,
	}
	log := opts.logger().With(zap.String("request_id", report.RequestID))

	rows, err := doc.SourceRows(opts.SourceSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", opts.SourceSheet, err)
	}
	lastRow, err := doc.LastRow(opts.SourceSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", opts.SourceSheet, err)
	}
	log.Debug("source sheet loaded",
		zap.String("sheet", opts.SourceSheet),
		zap.Int("rows", len(rows)),
		zap.Int("last_row", lastRow),
	)

	index := extractor.BuildIndex(rows)
	lookup := summary.NewLookupRange(opts.SourceSheet, lastRow)
	summaryRows := summary.BuildSummary(index, lookup, summary.NewOwnerFilter(opts.ExcludedOwners))

	if err := summary.Materialize(doc, opts.OutputSheet, summaryRows); err != nil {
		return nil, err
	}

	report.UniqueCount = len(summaryRows)
	report.LastSourceRow = lastRow
	log.Info("summary sheet written",
		zap.String("sheet", opts.OutputSheet),
		zap.Int("unique_count", report.UniqueCount),
		zap.String("lookup_range", lookup.String()),
	)
	return report, nil
}

// ProcessBytes opens an xlsx payload, processes it and returns the updated workbook.
func ProcessBytes(data []byte, opts Options) ([]byte, *models.Report, error) {
	doc, err := workbook.Open(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	defer doc.Close()

	report, err := Process(doc, opts)
	if err != nil {
		return nil, nil, err
	}
	out, err := doc.Serialize()
	if err != nil {
		return nil, nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return out, report, nil
}

// ProcessFile processes the workbook at inputPath and atomically writes the
// result to outputPath. inputPath and outputPath may be the same file.
func ProcessFile(inputPath, outputPath string, opts Options) (*models.Report, error) {
	doc, err := workbook.OpenFile(inputPath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	report, err := Process(doc, opts)
	if err != nil {
		return nil, err
	}
	out, err := doc.Serialize()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	if err := atomic.WriteFile(outputPath, bytes.NewReader(out)); err != nil {
		return nil, fmt.Errorf("write %s: %w", outputPath, err)
	}
	report.OutputPath = outputPath
	return report, nil
}
