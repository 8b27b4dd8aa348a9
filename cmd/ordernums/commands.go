package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/ordernums-go/pkg/ordernums"
	"github.com/ukaji3/ordernums-go/pkg/ordernums/output"
	"github.com/ukaji3/ordernums-go/pkg/ordernums/workbook"
)

const outputSuffix = "_atualizado"

func (app *application) newProcessCommand() *cobra.Command {
	var (
		outputPath string
		jsonReport bool
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "process [input.xlsx]",
		Short: "Rebuild the summary sheet and write the updated workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}
			target := outputPath
			if target == "" {
				target = defaultOutputPath(inputPath)
			}

			opts := app.cfg.Extract.Options()
			opts.Logger = app.logger
			app.logger.Info("processing workbook",
				zap.String("input", inputPath),
				zap.String("output", target),
				zap.String("source_sheet", opts.SourceSheet),
				zap.String("output_sheet", opts.OutputSheet),
			)

			report, err := ordernums.ProcessFile(inputPath, target, opts)
			if err != nil {
				return err
			}
			if jsonReport {
				return output.WriteJSON(cmd.OutOrStdout(), report, pretty)
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.ReportSummary(report))
			fmt.Fprintf(cmd.OutOrStdout(), "Written to %s\n", report.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>"+outputSuffix+".xlsx)")
	cmd.Flags().String("source-sheet", "", "Sheet holding consultants (A) and orders (B)")
	cmd.Flags().String("output-sheet", "", "Summary sheet to create or replace")
	cmd.Flags().StringSlice("exclude-owner", nil, "Owner values left out of the summary (repeatable)")
	cmd.Flags().BoolVar(&jsonReport, "json", false, "Print the run report as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func (app *application) newSheetsCommand() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			described, err := ordernums.DescribeWorkbook(args[0])
			if err != nil {
				return err
			}
			return output.WriteJSON(cmd.OutOrStdout(), described, pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func (app *application) newPreviewCommand() *cobra.Command {
	var (
		sheet  string
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   "preview [input.xlsx]",
		Short: "Show a sheet as JSON, using its first row as the header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := sheet
			if name == "" {
				name = app.cfg.Extract.Options().SourceSheet
			}
			doc, err := workbook.OpenFile(args[0])
			if err != nil {
				return err
			}
			defer doc.Close()

			preview, err := ordernums.Preview(doc, name)
			if err != nil {
				return err
			}
			return output.WriteJSON(cmd.OutOrStdout(), preview, pretty)
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to show (default: the configured source sheet)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func (app *application) newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(app.cfg); err != nil {
				return err
			}
			return encoder.Close()
		},
	}
}

// defaultOutputPath places the result next to the input, e.g.
// Resultados2025.xlsx -> Resultados2025_atualizado.xlsx.
func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + outputSuffix + ext
}
