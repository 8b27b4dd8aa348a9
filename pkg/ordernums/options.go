// Package ordernums extracts order numbers from a workbook sheet and writes
// a per-number consultant summary back into the workbook.
package ordernums

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ukaji3/ordernums-go/pkg/ordernums/summary"
)

const (
	// DefaultSourceSheet is the sheet holding consultants (A) and orders (B).
	DefaultSourceSheet = "REAT-10"
	// DefaultOutputSheet is the summary sheet written by Process.
	DefaultOutputSheet = "EXTRAIDOS_REAT10"
)

// Options configures a processing run.
type Options struct {
	// SourceSheet names the sheet to read.
	SourceSheet string
	// OutputSheet names the summary sheet; an existing sheet of this name is replaced.
	OutputSheet string
	// ExcludedOwners lists owner values dropped from the summary, compared
	// case-insensitively. If nil, summary.DefaultExcludedOwners is used.
	ExcludedOwners []string
	// Logger receives progress messages. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	excluded := make([]string, len(summary.DefaultExcludedOwners))
	copy(excluded, summary.DefaultExcludedOwners)
	return Options{
		SourceSheet:    DefaultSourceSheet,
		OutputSheet:    DefaultOutputSheet,
		ExcludedOwners: excluded,
	}
}

// Validate checks that the sheet names are usable.
func (o Options) Validate() error {
	switch {
	case strings.TrimSpace(o.SourceSheet) == "":
		return fmt.Errorf("%w: source sheet name is empty", ErrInvalidOptions)
	case strings.TrimSpace(o.OutputSheet) == "":
		return fmt.Errorf("%w: output sheet name is empty", ErrInvalidOptions)
	case strings.EqualFold(strings.TrimSpace(o.SourceSheet), strings.TrimSpace(o.OutputSheet)):
		return fmt.Errorf("%w: output sheet %q would overwrite the source sheet", ErrInvalidOptions, o.OutputSheet)
	}
	return nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
