package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ChicagoDave/measure/internal/ctxlog"
	"github.com/ChicagoDave/measure/internal/settings"
	"github.com/ChicagoDave/measure/pkg/measure"
	"github.com/ChicagoDave/measure/pkg/validation"
	"github.com/ChicagoDave/measure/pkg/worksheet"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	settings *settings.Settings
	logger   *slog.Logger
	out      io.Writer
	errOut   io.Writer
}

func (a *app) init(cmd *cobra.Command) error {
	s, err := settings.Load(cmd.Flags())
	if err != nil {
		return err
	}
	a.settings = s
	a.logger = s.Logger(cmd.ErrOrStderr())
	a.out = cmd.OutOrStdout()
	a.errOut = cmd.ErrOrStderr()
	slog.SetDefault(a.logger)
	return nil
}

// loadAndValidate loads a worksheet file or project directory and runs
// schema validation.
func loadAndValidate(path string) (*worksheet.Worksheet, *validation.Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading worksheet: %w", err)
	}
	var ws *worksheet.Worksheet
	if info.IsDir() {
		ws, err = worksheet.LoadProject(path)
	} else {
		ws, err = worksheet.Load(path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading worksheet: %w", err)
	}
	return ws, worksheet.Validate(ws), nil
}

func (a *app) runConvert(magnitude, from, to string) error {
	step := worksheet.Step{
		Name:  "convert",
		Op:    worksheet.OpConvert,
		Value: worksheet.Operand{Magnitude: magnitude, Unit: from},
		To:    to,
	}
	report := worksheet.Validate(&worksheet.Worksheet{Steps: []worksheet.Step{step}})
	if !report.Valid {
		printValidationReport(a.out, report)
		return fmt.Errorf("invalid conversion")
	}

	out, err := worksheet.EvaluateStep(step, measure.DivisionPrecision)
	if err != nil {
		return err
	}
	a.logger.Debug("Converted.", "from", from, "to", to, "result", out.Result)
	return a.printOutcomes([]worksheet.Outcome{out})
}

func (a *app) runUnits() error {
	printUnits(a.out)
	return nil
}

func (a *app) runValidate(path string) error {
	_, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}

	printValidationReport(a.out, report)

	if !report.Valid {
		return fmt.Errorf("worksheet has validation errors")
	}
	return nil
}

func (a *app) runEval(ctx context.Context, path string) error {
	ws, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(a.out, report)
		return fmt.Errorf("worksheet has validation errors; fix before evaluating")
	}
	if len(report.Warnings) > 0 {
		// JSON output must stay parseable on stdout.
		w := a.out
		if a.settings.Output == "json" {
			w = a.errOut
		}
		printValidationReport(w, report)
		fmt.Fprintln(w)
	}

	a.logger.Debug("Evaluating worksheet.", "path", path, "steps", len(ws.Steps))
	outcomes, err := worksheet.Evaluate(ctxlog.WithLogger(ctx, a.logger), ws)
	if err != nil {
		return err
	}
	return a.printOutcomes(outcomes)
}

func (a *app) printOutcomes(outcomes []worksheet.Outcome) error {
	if a.settings.Output == "json" {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(outcomes)
	}
	if len(outcomes) == 1 {
		fmt.Fprintln(a.out, outcomes[0].Result)
		return nil
	}
	printOutcomeTable(a.out, outcomes)
	return nil
}
