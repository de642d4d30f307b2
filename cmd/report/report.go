// Package report handles the report commands
package report

import (
	"fmt"
	"io"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/tracker"

	"github.com/spf13/cobra"
)

// Kinds of report.
const (
	KindSummary    = "summary"
	KindBudget     = "budget"
	KindTimeSeries = "timeseries"
	KindCategories = "categories"
)

var format string

// Cmd represents the report command group
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Print financial reports",
	Long: `Print reports for the logged-in user:
  summary     total income, total expense and net balance
  budget      spending against each category budget
  timeseries  income, expense and net per month and per year
  categories  expense totals per category`,
}

func init() {
	Cmd.PersistentFlags().StringVar(&format, "format", "", "Output format (text, json, yaml)")
	for _, kind := range []struct{ name, short string }{
		{KindSummary, "Show total income, expense and net balance"},
		{KindBudget, "Compare spending with category budgets"},
		{KindTimeSeries, "Show monthly and yearly totals"},
		{KindCategories, "Show expense totals by category"},
	} {
		name := kind.name
		Cmd.AddCommand(&cobra.Command{
			Use:   name,
			Short: kind.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return reportFunc(cmd, name)
			},
		})
	}
}

func reportFunc(cmd *cobra.Command, kind string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}
	user, password := root.Credentials()
	if err := common.Login(c.GetTracker(), user, password); err != nil {
		return err
	}
	resolved, err := common.ResolveFormat(format, c.GetReportFormat())
	if err != nil {
		return err
	}
	return runReport(cmd.OutOrStdout(), c.GetTracker(), c.GetReportGenerator(), kind, resolved)
}

func runReport(w io.Writer, tr *tracker.Tracker, generator *report.ReportGenerator, kind, format string) error {
	switch kind {
	case KindSummary:
		summary, err := tr.Summary()
		if err != nil {
			return err
		}
		out, err := generator.Summary(summary, format)
		return common.WriteReport(w, out, err)
	case KindBudget:
		profile, err := tr.CurrentUser()
		if err != nil {
			return err
		}
		result, err := tr.BudgetReport()
		if err != nil {
			return err
		}
		out, err := generator.Budget(profile.Username, result, format)
		return common.WriteReport(w, out, err)
	case KindTimeSeries:
		series, err := tr.TimeSeries()
		if err != nil {
			return err
		}
		out, err := generator.TimeSeries(series, format)
		return common.WriteReport(w, out, err)
	case KindCategories:
		totals, err := tr.CategoryTotals()
		if err != nil {
			return err
		}
		out, err := generator.Categories(totals, format)
		return common.WriteReport(w, out, err)
	default:
		return fmt.Errorf("unknown report: %s", kind)
	}
}
