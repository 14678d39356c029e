package main

import (
	"fmt"
	"io"

	"github.com/ChicagoDave/measure/pkg/unit"
	"github.com/ChicagoDave/measure/pkg/validation"
	"github.com/ChicagoDave/measure/pkg/worksheet"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(w, e)
			if e.ConflictWith != "" {
				fmt.Fprintf(w, "    conflicts with: %s\n", e.ConflictWith)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, wr := range r.Warnings {
			printResult(w, wr)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(w io.Writer, res validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", res.Level, res.Message)
	if res.Path != "" {
		if res.ActualValue != nil {
			fmt.Fprintf(w, "    -> %s = %v\n", res.Path, res.ActualValue)
		} else {
			fmt.Fprintf(w, "    -> %s\n", res.Path)
		}
	}
	if res.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printOutcomeTable(w io.Writer, outcomes []worksheet.Outcome) {
	fmt.Fprintf(w, "%-18s %-10s %s\n", "Step", "Op", "Result")
	fmt.Fprintf(w, "%-18s %-10s %s\n", "------------------", "----------", "------------------")
	for _, o := range outcomes {
		fmt.Fprintf(w, "%-18s %-10s %s\n", o.Step, o.Op, o.Result)
	}
}

func printUnits(w io.Writer) {
	fmt.Fprintf(w, "%-8s %-8s %s\n", "Family", "Symbol", "Name")
	fmt.Fprintf(w, "%-8s %-8s %s\n", "--------", "--------", "------------")
	for _, u := range unit.LengthUnits() {
		fmt.Fprintf(w, "%-8s %-8s %s\n", u.Family(), u.Symbol(), u.Name())
	}
	for _, u := range unit.WeightUnits() {
		fmt.Fprintf(w, "%-8s %-8s %s\n", u.Family(), u.Symbol(), u.Name())
	}
}
