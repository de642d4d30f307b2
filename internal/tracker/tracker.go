// Package tracker holds the application state: the registered profiles, the data store
// they are persisted to and the current session. Every mutation of the logged-in
// profile rewrites the data file.
package tracker

import (
	"errors"
	"fmt"

	"fjacquet/fintrack/internal/aggregator"
	"fjacquet/fintrack/internal/auth"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/trackererror"

	"github.com/shopspring/decimal"
)

// Store loads and saves the complete set of profiles.
type Store interface {
	Load() ([]*models.UserProfile, error)
	Save(profiles []*models.UserProfile) error
}

// Options tune the tracker's behavior.
type Options struct {
	// WarningThreshold is the share of a budget at which a category is flagged.
	// Zero selects aggregator.DefaultWarningThreshold.
	WarningThreshold decimal.Decimal
	// HashPasswords stores newly registered passwords as bcrypt hashes.
	HashPasswords bool
}

// RowError reports why one row of an import was rejected. Row is zero-based.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row+1, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// ImportResult lists what an import added and what it rejected.
type ImportResult struct {
	Added    []models.Transaction
	Rejected []RowError
}

// Tracker is the application state shared by the command line and the interactive shell.
type Tracker struct {
	store     Store
	directory *auth.Directory
	session   string
	threshold decimal.Decimal
	logger    logging.Logger
}

// Open loads every profile from store.
func Open(store Store, options Options, logger logging.Logger) (*Tracker, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	profiles, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading profiles: %w", err)
	}

	threshold := options.WarningThreshold
	if !threshold.IsPositive() {
		threshold = aggregator.DefaultWarningThreshold
	}

	logger.WithField(logging.FieldCount, len(profiles)).Debug("Tracker opened")

	return &Tracker{
		store:     store,
		directory: auth.NewDirectory(profiles, options.HashPasswords),
		threshold: threshold,
		logger:    logger,
	}, nil
}

// Register creates a profile, saves it and logs the new user in.
func (t *Tracker) Register(username, password string) (*models.UserProfile, error) {
	profile, err := t.directory.Register(username, password)
	if err != nil {
		return nil, err
	}
	t.session = profile.Username
	t.logger.WithField(logging.FieldUsername, username).Info("Registered new user")

	if err := t.Save(); err != nil {
		return profile, err
	}
	return profile, nil
}

// Login starts a session for the matching profile.
func (t *Tracker) Login(username, password string) (*models.UserProfile, error) {
	profile, err := t.directory.Login(username, password)
	if err != nil {
		t.logger.WithField(logging.FieldUsername, username).Warn("Login failed")
		return nil, err
	}
	t.session = profile.Username
	t.logger.WithField(logging.FieldUsername, username).Debug("User logged in")
	return profile, nil
}

// Logout ends the session.
func (t *Tracker) Logout() {
	t.session = ""
}

// IsLoggedIn reports whether a session is active.
func (t *Tracker) IsLoggedIn() bool {
	_, err := t.CurrentUser()
	return err == nil
}

// CurrentUser returns the logged-in profile.
func (t *Tracker) CurrentUser() (*models.UserProfile, error) {
	if t.session == "" {
		return nil, trackererror.ErrNotLoggedIn
	}
	profile, ok := t.directory.Lookup(t.session)
	if !ok {
		return nil, trackererror.ErrNotLoggedIn
	}
	return profile, nil
}

// Profiles returns every registered profile in registration order.
func (t *Tracker) Profiles() []*models.UserProfile {
	return t.directory.Profiles()
}

// WarningThreshold returns the budget warning threshold in effect.
func (t *Tracker) WarningThreshold() decimal.Decimal {
	return t.threshold
}

// AddTransaction adds a transaction to the current profile and saves.
func (t *Tracker) AddTransaction(input models.TransactionInput) (models.Transaction, error) {
	profile, err := t.CurrentUser()
	if err != nil {
		return models.Transaction{}, err
	}

	tx, err := profile.AddTransaction(input)
	if err != nil {
		return models.Transaction{}, err
	}
	t.logger.WithFields(
		logging.Field{Key: logging.FieldUsername, Value: profile.Username},
		logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
	).Debug("Transaction added")

	return tx, t.Save()
}

// EditTransaction applies edit to transaction id and saves. Field errors do not stop
// the other fields from being applied, so the file is saved whenever the transaction
// exists; the returned error then carries the field errors.
func (t *Tracker) EditTransaction(id int, edit models.TransactionEdit) (models.Transaction, error) {
	profile, err := t.CurrentUser()
	if err != nil {
		return models.Transaction{}, err
	}

	tx, editErr := profile.EditTransaction(id, edit)
	var notFound *trackererror.NotFoundError
	if errors.As(editErr, &notFound) {
		return models.Transaction{}, editErr
	}
	if editErr != nil {
		t.logger.WithError(editErr).WithField(logging.FieldTransactionID, id).Warn("Some fields were not updated")
	}

	if saveErr := t.Save(); saveErr != nil {
		return tx, errors.Join(editErr, saveErr)
	}
	return tx, editErr
}

// DeleteTransaction removes transaction id and saves.
func (t *Tracker) DeleteTransaction(id int) error {
	profile, err := t.CurrentUser()
	if err != nil {
		return err
	}
	if err := profile.DeleteTransaction(id); err != nil {
		return err
	}
	t.logger.WithField(logging.FieldTransactionID, id).Debug("Transaction deleted")
	return t.Save()
}

// SetBudget sets a category budget and saves.
func (t *Tracker) SetBudget(category, amount string) error {
	profile, err := t.CurrentUser()
	if err != nil {
		return err
	}
	if err := profile.SetBudget(category, amount); err != nil {
		return err
	}
	t.logger.WithField(logging.FieldCategory, category).Debug("Budget set")
	return t.Save()
}

// ImportTransactions adds every valid input to the current profile and saves once.
// Invalid rows are reported in the result and do not stop the import.
func (t *Tracker) ImportTransactions(inputs []models.TransactionInput) (ImportResult, error) {
	var result ImportResult

	profile, err := t.CurrentUser()
	if err != nil {
		return result, err
	}

	for i, input := range inputs {
		tx, err := profile.AddTransaction(input)
		if err != nil {
			result.Rejected = append(result.Rejected, RowError{Row: i, Err: err})
			continue
		}
		result.Added = append(result.Added, tx)
	}

	t.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(result.Added)},
		logging.Field{Key: logging.FieldDropped, Value: len(result.Rejected)},
	).Info("Imported transactions")

	if len(result.Added) == 0 {
		return result, nil
	}
	return result, t.Save()
}

// Transactions lists the current profile's transactions in insertion order, limited to
// category unless it is blank.
func (t *Tracker) Transactions(category string) ([]models.Transaction, error) {
	profile, err := t.CurrentUser()
	if err != nil {
		return nil, err
	}
	return profile.TransactionsInCategory(category), nil
}

// Summary totals the current profile's income and expense.
func (t *Tracker) Summary() (aggregator.Summary, error) {
	profile, err := t.CurrentUser()
	if err != nil {
		return aggregator.Summary{}, err
	}
	return aggregator.FinancialSummary(profile.Transactions), nil
}

// BudgetReport compares the current profile's budgets with its spending.
func (t *Tracker) BudgetReport() (aggregator.BudgetReportResult, error) {
	profile, err := t.CurrentUser()
	if err != nil {
		return aggregator.BudgetReportResult{}, err
	}
	return aggregator.BudgetReportWithThreshold(profile, t.threshold), nil
}

// TimeSeries buckets the current profile's transactions by month and year.
func (t *Tracker) TimeSeries() (aggregator.TimeSeries, error) {
	profile, err := t.CurrentUser()
	if err != nil {
		return aggregator.TimeSeries{}, err
	}
	return aggregator.TimeSeriesReport(profile.Transactions), nil
}

// CategoryTotals returns the current profile's expense totals sorted by category.
func (t *Tracker) CategoryTotals() ([]aggregator.CategoryTotal, error) {
	profile, err := t.CurrentUser()
	if err != nil {
		return nil, err
	}
	return aggregator.SortedCategoryTotals(aggregator.CategorizeExpenses(profile.Transactions)), nil
}

// Save rewrites the data file with every profile.
func (t *Tracker) Save() error {
	if err := t.store.Save(t.directory.Profiles()); err != nil {
		t.logger.WithError(err).Error("Failed to save profiles")
		return fmt.Errorf("error saving profiles: %w", err)
	}
	return nil
}
