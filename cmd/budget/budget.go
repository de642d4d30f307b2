// Package budget handles the budget commands
package budget

import (
	"fmt"
	"io"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/tracker"

	"github.com/spf13/cobra"
)

// Cmd represents the budget command group
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage category budgets",
	Long:  `Manage the monthly spending limits of the logged-in user, one per category.`,
}

var setCmd = &cobra.Command{
	Use:   "set <category> <amount>",
	Short: "Set the budget for a category",
	Long: `Set the budget for a category, replacing any previous value. Category names
must not contain '|', ':', ',' or line breaks.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.Container()
		if err != nil {
			return err
		}
		user, password := root.Credentials()
		if err := common.Login(c.GetTracker(), user, password); err != nil {
			return err
		}
		return runSet(cmd.OutOrStdout(), c.GetTracker(), args[0], args[1])
	},
}

func init() {
	Cmd.AddCommand(setCmd)
}

func runSet(w io.Writer, tr *tracker.Tracker, category, amount string) error {
	if err := tr.SetBudget(category, amount); err != nil {
		return err
	}
	profile, err := tr.CurrentUser()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Budget for %s set to %s!\n", category, profile.Budgets[category].StringFixed(2))
	return err
}
