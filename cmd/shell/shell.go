// Package shell handles the interactive menu command
package shell

import (
	"io"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/console"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/tracker"

	"github.com/spf13/cobra"
)

// Cmd represents the shell command
var Cmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive menu",
	Long: `Start the interactive menu. Log in or register, then add, view, edit and delete
transactions, set budgets and view reports. Type :q at any prompt to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.Container()
		if err != nil {
			return err
		}
		return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), c.GetTracker(), c.GetReportGenerator(), c.GetLogger())
	},
}

func runShell(in io.Reader, out io.Writer, tr *tracker.Tracker, generator *report.ReportGenerator, logger logging.Logger) error {
	return console.NewShell(tr, generator, console.NewTerminal(in, out), logger).Run()
}
