package main

import (
	"fmt"
	"os"

	"fjacquet/fintrack/cmd/budget"
	"fjacquet/fintrack/cmd/csvfile"
	"fjacquet/fintrack/cmd/register"
	"fjacquet/fintrack/cmd/report"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/cmd/shell"
	"fjacquet/fintrack/cmd/transaction"
	"fjacquet/fintrack/internal/config"
)

func init() {
	// Load .env before any command reads FINTRACK_* variables. Errors are ignored
	// here since logging is not configured yet.
	_, _ = config.LoadEnv()

	root.Init()

	root.Cmd.AddCommand(register.Cmd)
	root.Cmd.AddCommand(transaction.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(csvfile.ExportCmd)
	root.Cmd.AddCommand(csvfile.ImportCmd)
	root.Cmd.AddCommand(shell.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
