package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/tracker"
	"fjacquet/fintrack/internal/validation"
)

var errExit = errors.New("exit")

type menuItem struct {
	label  string
	action func() error
}

// Shell runs the interactive menus. Failed operations are shown to the user and control
// returns to the menu; Run only fails when the prompter itself fails.
type Shell struct {
	tracker   *tracker.Tracker
	generator *report.ReportGenerator
	prompter  Prompter
	logger    logging.Logger
}

// NewShell creates a shell over an opened tracker.
func NewShell(tr *tracker.Tracker, generator *report.ReportGenerator, prompter Prompter, logger logging.Logger) *Shell {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Shell{
		tracker:   tr,
		generator: generator,
		prompter:  prompter,
		logger:    logger,
	}
}

// Run shows the login menu until a user logs in, then the main menu until they log out,
// and repeats until the user exits or input ends.
func (s *Shell) Run() error {
	for {
		var err error
		if s.tracker.IsLoggedIn() {
			err = s.mainMenu()
		} else {
			err = s.authMenu()
		}

		switch {
		case err == nil:
			continue
		case errors.Is(err, errExit), errors.Is(err, ErrQuit):
			s.logger.Debug("Shell finished")
			return nil
		default:
			return err
		}
	}
}

func (s *Shell) authMenu() error {
	return s.menu("Welcome to Personal Finance Tracker", []menuItem{
		{"Login", s.login},
		{"Register", s.register},
		{"Exit", s.exit},
	})
}

func (s *Shell) mainMenu() error {
	user, err := s.tracker.CurrentUser()
	if err != nil {
		return nil
	}
	return s.menu(fmt.Sprintf("Welcome, %s!", user.Username), []menuItem{
		{"Add Transaction", s.addTransaction},
		{"View All Transactions", s.viewAll},
		{"View Transactions by Category", s.viewByCategory},
		{"Edit/Delete Transaction", s.editOrDelete},
		{"Show Summary", s.summary},
		{"Budget Report", s.budgetReport},
		{"Set Budget", s.setBudget},
		{"Time Series Report", s.timeSeries},
		{"Category Breakdown", s.categoryBreakdown},
		{"Logout", s.logout},
		{"Exit", s.exit},
	})
}

func (s *Shell) menu(heading string, items []menuItem) error {
	lines := []string{"", heading}
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item.label))
	}
	lines = append(lines, "Choice:")

	choice, ok, err := s.prompter.Prompt(strings.Join(lines, "\n"))
	if err != nil || !ok {
		return err
	}

	n, convErr := strconv.Atoi(choice)
	if convErr != nil || n < 1 || n > len(items) {
		return s.prompter.Display("Invalid choice.")
	}
	return items[n-1].action()
}

// ask prompts for a value; cancelled is true when the user left it blank.
func (s *Shell) ask(label string) (value string, cancelled bool, err error) {
	text, ok, err := s.prompter.Prompt(label)
	if err != nil {
		return "", true, err
	}
	return text, !ok, nil
}

func (s *Shell) showError(err error) error {
	s.logger.WithError(err).Debug("Operation failed")
	lines := []string{"Error:"}
	for _, line := range strings.Split(err.Error(), "\n") {
		lines = append(lines, "  "+line)
	}
	return s.prompter.Display(lines...)
}

func (s *Shell) showReport(out []byte, err error) error {
	if err != nil {
		return s.showError(err)
	}
	return s.prompter.Display(strings.Split(strings.TrimRight(string(out), "\n"), "\n")...)
}

func (s *Shell) exit() error {
	return errExit
}

func (s *Shell) login() error {
	username, cancelled, err := s.ask("Enter Username:")
	if err != nil || cancelled {
		return err
	}
	password, cancelled, err := s.ask("Enter Password:")
	if err != nil || cancelled {
		return err
	}

	if _, err := s.tracker.Login(username, password); err != nil {
		return s.showError(err)
	}
	return s.prompter.Display("Login successful!")
}

func (s *Shell) register() error {
	username, cancelled, err := s.ask("Choose Username:")
	if err != nil || cancelled {
		return err
	}
	password, cancelled, err := s.ask("Choose Password:")
	if err != nil || cancelled {
		return err
	}

	if _, err := s.tracker.Register(username, password); err != nil {
		return s.showError(err)
	}
	return s.prompter.Display("Registration successful! Logged in as " + username)
}

func (s *Shell) logout() error {
	s.tracker.Logout()
	return nil
}

func (s *Shell) addTransaction() error {
	labels := []string{
		"Enter Date (YYYY-MM-DD):",
		"Enter Category:",
		"Enter Description:",
		"Enter Amount (number):",
		"Enter Type (I for Income, E for Expense):",
	}
	values := make([]string, len(labels))
	for i, label := range labels {
		value, cancelled, err := s.ask(label)
		if err != nil || cancelled {
			return err
		}
		values[i] = value
	}

	tx, err := s.tracker.AddTransaction(models.TransactionInput{
		Date:        values[0],
		Category:    values[1],
		Description: values[2],
		Amount:      values[3],
		Type:        values[4],
	})
	if err != nil {
		return s.showError(err)
	}
	return s.prompter.Display(fmt.Sprintf("Transaction %d added successfully!", tx.ID))
}

func (s *Shell) viewAll() error {
	txs, err := s.tracker.Transactions("")
	if err != nil {
		return s.showError(err)
	}
	return s.showReport(s.generator.Transactions(txs, validation.FormatText))
}

func (s *Shell) viewByCategory() error {
	category, cancelled, err := s.ask("Enter Category to filter by:")
	if err != nil || cancelled {
		return err
	}
	txs, err := s.tracker.Transactions(category)
	if err != nil {
		return s.showError(err)
	}
	return s.showReport(s.generator.Transactions(txs, validation.FormatText))
}

func (s *Shell) editOrDelete() error {
	idText, cancelled, err := s.ask("Enter Transaction ID to Edit/Delete:")
	if err != nil || cancelled {
		return err
	}
	id, convErr := strconv.Atoi(idText)
	if convErr != nil {
		return s.prompter.Display("Invalid ID.")
	}

	user, err := s.tracker.CurrentUser()
	if err != nil {
		return s.showError(err)
	}
	tx, err := user.FindTransaction(id)
	if err != nil {
		return s.showError(err)
	}

	action, cancelled, err := s.ask(strings.Join([]string{
		"Transaction found:",
		fmt.Sprintf("ID: %d", tx.ID),
		"Date: " + tx.Date,
		"Category: " + tx.Category,
		"Description: " + tx.Description,
		"Amount: " + tx.Amount.StringFixed(2),
		"Type: " + tx.Type.String(),
		"(E)dit, (D)elete or blank to cancel:",
	}, "\n"))
	if err != nil || cancelled {
		return err
	}

	switch strings.ToUpper(action[:1]) {
	case "E":
		return s.edit(tx)
	case "D":
		if err := s.tracker.DeleteTransaction(id); err != nil {
			return s.showError(err)
		}
		return s.prompter.Display("Transaction deleted!")
	default:
		return s.prompter.Display("Invalid choice.")
	}
}

func (s *Shell) edit(tx models.Transaction) error {
	var edit models.TransactionEdit
	fields := []struct {
		label string
		dest  *string
	}{
		{fmt.Sprintf("New Date (YYYY-MM-DD) [%s]:", tx.Date), &edit.Date},
		{fmt.Sprintf("New Category [%s]:", tx.Category), &edit.Category},
		{fmt.Sprintf("New Description [%s]:", tx.Description), &edit.Description},
		{fmt.Sprintf("New Amount (number) [%s]:", tx.Amount.StringFixed(2)), &edit.Amount},
		{fmt.Sprintf("New Type (I/E) [%s]:", tx.Type.Code()), &edit.Type},
	}
	for _, f := range fields {
		value, _, err := s.ask(f.label)
		if err != nil {
			return err
		}
		*f.dest = value
	}

	if edit.IsEmpty() {
		return s.prompter.Display("Nothing changed.")
	}

	_, err := s.tracker.EditTransaction(tx.ID, edit)
	if err != nil {
		lines := []string{"Some fields were not updated:"}
		for _, line := range strings.Split(err.Error(), "\n") {
			lines = append(lines, "  "+line)
		}
		lines = append(lines, "Transaction updated!")
		return s.prompter.Display(lines...)
	}
	return s.prompter.Display("Transaction updated!")
}

func (s *Shell) summary() error {
	summary, err := s.tracker.Summary()
	if err != nil {
		return s.showError(err)
	}
	return s.showReport(s.generator.Summary(summary, validation.FormatText))
}

func (s *Shell) budgetReport() error {
	user, err := s.tracker.CurrentUser()
	if err != nil {
		return s.showError(err)
	}
	result, err := s.tracker.BudgetReport()
	if err != nil {
		return s.showError(err)
	}
	return s.showReport(s.generator.Budget(user.Username, result, validation.FormatText))
}

func (s *Shell) setBudget() error {
	user, err := s.tracker.CurrentUser()
	if err != nil {
		return s.showError(err)
	}

	lines := []string{"Current Budgets:"}
	if len(user.Budgets) == 0 {
		lines = append(lines, "  "+report.BannerNoBudgets)
	}
	for _, category := range user.BudgetCategories() {
		lines = append(lines, fmt.Sprintf("  %s: %s", category, user.Budgets[category].StringFixed(2)))
	}
	lines = append(lines, "Enter Category to set budget for (e.g., Food, Transport):")

	category, cancelled, err := s.ask(strings.Join(lines, "\n"))
	if err != nil || cancelled {
		return err
	}
	amount, cancelled, err := s.ask("Enter Budget Amount for " + category + ":")
	if err != nil || cancelled {
		return err
	}

	if err := s.tracker.SetBudget(category, amount); err != nil {
		return s.showError(err)
	}
	return s.prompter.Display(fmt.Sprintf("Budget for %s set to %s!", category, user.Budgets[category].StringFixed(2)))
}

func (s *Shell) timeSeries() error {
	series, err := s.tracker.TimeSeries()
	if err != nil {
		return s.showError(err)
	}
	return s.showReport(s.generator.TimeSeries(series, validation.FormatText))
}

func (s *Shell) categoryBreakdown() error {
	totals, err := s.tracker.CategoryTotals()
	if err != nil {
		return s.showError(err)
	}
	return s.showReport(s.generator.Categories(totals, validation.FormatText))
}
