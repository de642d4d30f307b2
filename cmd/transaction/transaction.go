// Package transaction handles the commands that add, list, edit and delete transactions
package transaction

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/tracker"

	"github.com/spf13/cobra"
)

// Cmd represents the transaction command group
var Cmd = &cobra.Command{
	Use:     "transaction",
	Aliases: []string{"tx"},
	Short:   "Add, list, edit and delete transactions",
	Long:    `Add, list, edit and delete the transactions of the logged-in user.`,
}

var (
	fields         models.TransactionInput
	filterCategory string
	listFormat     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction",
	Long: `Add an income or expense transaction. The date defaults to today and the
type is I for income or E for expense.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := session()
		if err != nil {
			return err
		}
		input := fields
		if input.Date == "" {
			input.Date = dateutils.Today()
		}
		return runAdd(cmd.OutOrStdout(), tr, input)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Long:  `List transactions in the order they were added, optionally limited to one category.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := session()
		if err != nil {
			return err
		}
		format, err := common.ResolveFormat(listFormat, root.AppContainer.GetReportFormat())
		if err != nil {
			return err
		}
		return runList(cmd.OutOrStdout(), tr, root.AppContainer.GetReportGenerator(), filterCategory, format)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a transaction",
	Long: `Edit a transaction. Only the fields given as flags change; a field that fails
validation is reported and the other fields are still applied.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := session()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return runEdit(cmd.OutOrStdout(), tr, id, models.TransactionEdit(fields))
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := session()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return runDelete(cmd.OutOrStdout(), tr, id)
	},
}

func init() {
	for _, c := range []*cobra.Command{addCmd, editCmd} {
		c.Flags().StringVarP(&fields.Date, "date", "d", "", "Date (YYYY-MM-DD)")
		c.Flags().StringVarP(&fields.Category, "category", "c", "", "Category")
		c.Flags().StringVarP(&fields.Description, "description", "m", "", "Description")
		c.Flags().StringVarP(&fields.Amount, "amount", "a", "", "Amount")
		c.Flags().StringVarP(&fields.Type, "type", "t", "", "Type: I for income, E for expense")
	}
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("type")

	listCmd.Flags().StringVarP(&filterCategory, "category", "c", "", "Only list this category")
	listCmd.Flags().StringVar(&listFormat, "format", "", "Output format (text, json, yaml)")

	Cmd.AddCommand(addCmd, listCmd, editCmd, deleteCmd)
}

func session() (*tracker.Tracker, error) {
	c, err := root.Container()
	if err != nil {
		return nil, err
	}
	user, password := root.Credentials()
	if err := common.Login(c.GetTracker(), user, password); err != nil {
		return nil, err
	}
	return c.GetTracker(), nil
}

func parseID(text string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("invalid transaction ID: %s", text)
	}
	return id, nil
}

func runAdd(w io.Writer, tr *tracker.Tracker, input models.TransactionInput) error {
	tx, err := tr.AddTransaction(input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Transaction %d added successfully!\n", tx.ID)
	return err
}

func runList(w io.Writer, tr *tracker.Tracker, generator *report.ReportGenerator, category, format string) error {
	txs, err := tr.Transactions(category)
	if err != nil {
		return err
	}
	out, err := generator.Transactions(txs, format)
	return common.WriteReport(w, out, err)
}

func runEdit(w io.Writer, tr *tracker.Tracker, id int, edit models.TransactionEdit) error {
	if edit.IsEmpty() {
		_, err := fmt.Fprintln(w, "Nothing changed.")
		return err
	}

	tx, err := tr.EditTransaction(id, edit)
	if tx.ID == 0 {
		return err
	}
	if _, writeErr := fmt.Fprintf(w, "Transaction %d updated!\n", tx.ID); writeErr != nil {
		return writeErr
	}
	if err != nil {
		return fmt.Errorf("some fields were not updated:\n%w", err)
	}
	return nil
}

func runDelete(w io.Writer, tr *tracker.Tracker, id int) error {
	if err := tr.DeleteTransaction(id); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Transaction %d deleted!\n", id)
	return err
}
