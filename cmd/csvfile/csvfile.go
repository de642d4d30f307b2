// Package csvfile handles the CSV export and import commands
package csvfile

import (
	"fmt"
	"io"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	csvio "fjacquet/fintrack/internal/common"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	outputFile string
	inputFile  string
)

// ExportCmd represents the export command
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to CSV",
	Long: `Export every transaction of the logged-in user to a CSV file with the columns
id, date, category, description, amount and type.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, delimiter, err := session()
		if err != nil {
			return err
		}
		return runExport(cmd.OutOrStdout(), tr, outputFile, delimiter, root.Log)
	},
}

// ImportCmd represents the import command
var ImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from CSV",
	Long: `Import transactions from a CSV file with the columns date, category, description,
amount and type. An id column is ignored and fresh ids are assigned. Rows that fail
validation are reported and skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, delimiter, err := session()
		if err != nil {
			return err
		}
		return runImport(cmd.OutOrStdout(), tr, inputFile, delimiter, root.Log)
	},
}

func init() {
	ExportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file")
	_ = ExportCmd.MarkFlagRequired("output")
	ImportCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file")
	_ = ImportCmd.MarkFlagRequired("input")
}

func session() (*tracker.Tracker, rune, error) {
	c, err := root.Container()
	if err != nil {
		return nil, 0, err
	}
	user, password := root.Credentials()
	if err := common.Login(c.GetTracker(), user, password); err != nil {
		return nil, 0, err
	}
	return c.GetTracker(), c.GetDelimiter(), nil
}

func runExport(w io.Writer, tr *tracker.Tracker, path string, delimiter rune, logger logging.Logger) error {
	txs, err := tr.Transactions("")
	if err != nil {
		return err
	}
	if err := csvio.WriteTransactionsToCSV(txs, path, delimiter, logger); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Exported %d transactions to %s\n", len(txs), path)
	return err
}

func runImport(w io.Writer, tr *tracker.Tracker, path string, delimiter rune, logger logging.Logger) error {
	if !tr.IsLoggedIn() {
		_, err := tr.CurrentUser()
		return err
	}

	inputs, err := csvio.ReadTransactionsCSV(path, delimiter, logger)
	if err != nil {
		return err
	}

	result, err := tr.ImportTransactions(inputs)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Imported %d transactions from %s\n", len(result.Added), path); err != nil {
		return err
	}
	for _, rejected := range result.Rejected {
		if _, err := fmt.Fprintf(w, "  skipped %s\n", rejected.Error()); err != nil {
			return err
		}
	}
	return nil
}
