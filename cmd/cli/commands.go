package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"xlfilter/adapters/excel"
	"xlfilter/app"
	"xlfilter/cmd/cli/dialog"
	"xlfilter/domain/core"
	"xlfilter/domain/filter"
	"xlfilter/internal"
	"xlfilter/internal/config"
	"xlfilter/internal/profiling"

	"github.com/spf13/cobra"
)

// newService builds the filter service from the environment configuration
func newService() (*app.FilterService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))
	return app.NewFilterService(*cfg,
		excel.NewDataReader(cfg.Excel, logger),
		excel.NewWriter(cfg.Excel, logger),
		logger,
	), nil
}

func newHeadersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "headers FILE",
		Short: "Show the detected header row of a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return runHeaders(cmd.OutOrStdout(), svc, args[0])
		},
	}
}

func runHeaders(out io.Writer, svc *app.FilterService, path string) error {
	wb, err := svc.Open(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Header row %d in sheet %q\n", wb.Header.Index, wb.Grid.Sheet)
	for i, name := range wb.Columns() {
		fmt.Fprintf(out, "  %d. %s\n", i+1, name)
	}
	return nil
}

func newFilterCmd() *cobra.Command {
	var column, value, outPath string

	cmd := &cobra.Command{
		Use:   "filter FILE",
		Short: "Keep the rows whose column equals a value and save them",
		Long: `Keep the rows below the header row whose cell in --column equals --value
(case-insensitive) and save the recognized columns to a new workbook.

Example: xlfilter-cli filter staff.xlsx --column Department --value sales`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return runFilter(cmd.OutOrStdout(), svc, args[0], filter.Selection{Column: column, Value: value}, outPath)
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "Header name to filter on")
	cmd.Flags().StringVar(&value, "value", "", "Value to keep (case-insensitive)")
	cmd.Flags().StringVar(&outPath, "out", "", "Output path (default: suggested name next to the input)")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func runFilter(out io.Writer, svc *app.FilterService, path string, sel filter.Selection, outPath string) error {
	outcome, err := svc.Run(path, sel, outPath)
	if stderrors.Is(err, core.ErrNoMatches) {
		fmt.Fprintln(out, "No data found.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %d rows to %s\n", outcome.Result.Count, outcome.Path)
	printSummary(out, outcome.Summary)
	return nil
}

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick FILE",
		Short: "Choose the column, value and output path interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return runPick(cmd.OutOrStdout(), svc, args[0], terminalPrompter{})
		},
	}
}

// prompter asks the user for the selections of an interactive run
type prompter interface {
	PickColumn(columns []string) (string, error)
	Ask(title, initial, problem string) (string, error)
}

type terminalPrompter struct{}

func (terminalPrompter) PickColumn(columns []string) (string, error) {
	return dialog.PickColumn("Filter on column", columns)
}

func (terminalPrompter) Ask(title, initial, problem string) (string, error) {
	return dialog.Ask(title, initial, problem)
}

// runPick walks the interactive sequence. Cancelling any dialog returns
// core.ErrNoSelection; a failed save asks for another path.
func runPick(out io.Writer, svc *app.FilterService, path string, p prompter) error {
	wb, err := svc.Open(path)
	if err != nil {
		return err
	}

	column, err := p.PickColumn(wb.Columns())
	if err != nil {
		return err
	}
	value, err := p.Ask(fmt.Sprintf("Value to keep in %q", column), "", "")
	if err != nil {
		return err
	}

	result, err := svc.Filter(wb, filter.Selection{Column: column, Value: value})
	if stderrors.Is(err, core.ErrNoMatches) {
		fmt.Fprintln(out, "No data found.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d matching rows\n", result.Count)

	target, problem := svc.SuggestPath(wb, column), ""
	for {
		target, err = p.Ask("Save as", target, problem)
		if err != nil {
			return err
		}
		saved, err := svc.Save(result, target)
		if stderrors.Is(err, core.ErrFileWrite) {
			problem = err.Error()
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved %d rows to %s\n", result.Count, saved)
		return nil
	}
}

func printSummary(out io.Writer, summary []profiling.ColumnSummary) {
	for _, col := range summary {
		line := fmt.Sprintf("  %-20s %d/%d filled", col.Label, col.NonEmpty, col.Values)
		if col.Stats != nil {
			line += fmt.Sprintf("  sum=%g mean=%g min=%g max=%g", col.Stats.Sum, col.Stats.Mean, col.Stats.Min, col.Stats.Max)
		}
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
}
