package main

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/ordernums-go/internal/config"
	"github.com/ukaji3/ordernums-go/internal/logging"
	"github.com/ukaji3/ordernums-go/pkg/ordernums"
)

// application wires the cobra commands, configuration loader and logger.
type application struct {
	root       *cobra.Command
	loader     *config.Loader
	logger     *zap.Logger
	cfg        config.Configuration
	configPath string
}

func newApplication() *application {
	app := &application{
		loader: config.NewLoader("."),
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "ordernums",
		Short: "Extract order numbers per consultant from an Excel workbook",
		Long: `ordernums reads the consultant (A) and order (B) columns of a source sheet,
collects every number found in the orders and writes a summary sheet listing each
number, a verification formula, and the consultants that mention it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initialize(cmd)
		},
	}
	root.PersistentFlags().StringVar(&app.configPath, "config", "", "Optional path to a configuration file (YAML)")
	root.PersistentFlags().String("log-level", "", "Override the configured log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "", "Override the configured log format (structured or console)")

	root.AddCommand(
		app.newProcessCommand(),
		app.newSheetsCommand(),
		app.newPreviewCommand(),
		app.newConfigCommand(),
	)
	app.root = root
	return app
}

func (app *application) initialize(cmd *cobra.Command) error {
	cfg, loaded, err := app.loader.Load(app.configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}
	app.cfg = cfg

	logger, err := logging.NewLogger(logging.Level(cfg.Common.LogLevel), logging.Format(cfg.Common.LogFormat))
	if err != nil {
		return fmt.Errorf("unable to create logger: %w", err)
	}
	app.logger = logger
	app.logger.Debug("configuration initialized",
		zap.String("log_level", cfg.Common.LogLevel),
		zap.String("log_format", cfg.Common.LogFormat),
		zap.String("config_file", loaded.ConfigFileUsed),
	)
	return nil
}

func (app *application) execute(args []string) error {
	app.root.SetArgs(args)
	err := app.root.Execute()
	if syncErr := syncLogger(app.logger); syncErr != nil && err == nil {
		return fmt.Errorf("unable to flush logger: %w", syncErr)
	}
	return err
}

func (app *application) setOutput(w io.Writer) {
	app.root.SetOut(w)
	app.root.SetErr(w)
}

// syncLogger flushes logger, ignoring the errors stderr/stdout syncs return
// on terminals and pipes.
func syncLogger(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}
	err := logger.Sync()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, syscall.ENOTSUP), errors.Is(err, syscall.EINVAL), errors.Is(err, syscall.ENOTTY):
		return nil
	default:
		return err
	}
}

// describeError turns pipeline errors into messages for the terminal.
func describeError(err error) string {
	var sheetErr *ordernums.SheetError
	switch {
	case errors.As(err, &sheetErr):
		return fmt.Sprintf("sheet %q was not found in the workbook; check the file (available sheets: %v)",
			sheetErr.SheetName, sheetErr.Available)
	case errors.Is(err, ordernums.ErrInvalidFormat):
		return fmt.Sprintf("the file is not a valid .xlsx workbook (%v)", err)
	default:
		return err.Error()
	}
}
