package models

import (
	"errors"
	"slices"
	"sort"
	"strings"

	"fjacquet/fintrack/internal/trackererror"
	"fjacquet/fintrack/internal/validation"

	"github.com/shopspring/decimal"
)

// UserProfile is one registered user's credentials plus their private transactions
// and budgets.
//
// NextTransactionID is always greater than every id ever issued for this profile,
// including ids of deleted transactions.
type UserProfile struct {
	Username          string
	Password          string
	Transactions      []Transaction
	Budgets           map[string]decimal.Decimal
	NextTransactionID int
}

// NewUserProfile returns an empty profile whose first transaction will get id 1.
func NewUserProfile(username, password string) *UserProfile {
	return &UserProfile{
		Username:          username,
		Password:          password,
		Transactions:      []Transaction{},
		Budgets:           make(map[string]decimal.Decimal),
		NextTransactionID: FirstTransactionID,
	}
}

// AddTransaction parses input and appends a new transaction with the next id.
// The profile is left untouched when any field is invalid.
func (p *UserProfile) AddTransaction(input TransactionInput) (Transaction, error) {
	amount, err := ParseAmount(input.Amount)
	if err != nil {
		return Transaction{}, err
	}
	txType, err := ParseTransactionType(input.Type)
	if err != nil {
		return Transaction{}, err
	}
	if err := validateTextFields(input.Date, input.Category, input.Description); err != nil {
		return Transaction{}, err
	}

	tx, err := NewTransactionBuilder().
		WithID(p.NextTransactionID).
		WithDate(input.Date).
		WithCategory(input.Category).
		WithDescription(input.Description).
		WithAmount(amount).
		WithType(txType).
		Build()
	if err != nil {
		return Transaction{}, err
	}

	p.NextTransactionID++
	p.Transactions = append(p.Transactions, tx)
	return tx, nil
}

// EditTransaction overwrites the fields of transaction id with the non-blank fields of
// edit. A field that fails to parse or validate keeps its current value and contributes
// its error to the joined result; the remaining fields are still applied. The returned
// transaction reflects the state after the edit.
func (p *UserProfile) EditTransaction(id int, edit TransactionEdit) (Transaction, error) {
	idx := p.indexOf(id)
	if idx < 0 {
		return Transaction{}, &trackererror.NotFoundError{ID: id}
	}
	tx := &p.Transactions[idx]

	var errs []error
	if !isBlank(edit.Date) {
		if err := validation.ValidateText("date", edit.Date); err != nil {
			errs = append(errs, err)
		} else {
			tx.Date = edit.Date
		}
	}
	if !isBlank(edit.Category) {
		if err := validation.ValidateCategory(edit.Category); err != nil {
			errs = append(errs, err)
		} else {
			tx.Category = edit.Category
		}
	}
	if !isBlank(edit.Description) {
		if err := validation.ValidateText("description", edit.Description); err != nil {
			errs = append(errs, err)
		} else {
			tx.Description = edit.Description
		}
	}
	if !isBlank(edit.Amount) {
		if amount, err := ParseAmount(edit.Amount); err != nil {
			errs = append(errs, err)
		} else {
			tx.Amount = amount
		}
	}
	if !isBlank(edit.Type) {
		if txType, err := ParseTransactionType(edit.Type); err != nil {
			errs = append(errs, err)
		} else {
			tx.Type = txType
		}
	}

	return *tx, errors.Join(errs...)
}

// DeleteTransaction removes transaction id. Its id is never issued again.
func (p *UserProfile) DeleteTransaction(id int) error {
	idx := p.indexOf(id)
	if idx < 0 {
		return &trackererror.NotFoundError{ID: id}
	}
	p.Transactions = slices.Delete(p.Transactions, idx, idx+1)
	return nil
}

// FindTransaction returns transaction id.
func (p *UserProfile) FindTransaction(id int) (Transaction, error) {
	idx := p.indexOf(id)
	if idx < 0 {
		return Transaction{}, &trackererror.NotFoundError{ID: id}
	}
	return p.Transactions[idx], nil
}

// SetBudget sets the budget ceiling of category, replacing any previous value.
func (p *UserProfile) SetBudget(category, amountText string) error {
	if strings.TrimSpace(category) == "" {
		return &trackererror.ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if err := validation.ValidateCategory(category); err != nil {
		return err
	}
	amount, err := ParseAmount(amountText)
	if err != nil {
		return err
	}
	if p.Budgets == nil {
		p.Budgets = make(map[string]decimal.Decimal)
	}
	p.Budgets[category] = amount
	return nil
}

// BudgetCategories returns the budgeted categories sorted by name.
func (p *UserProfile) BudgetCategories() []string {
	categories := make([]string, 0, len(p.Budgets))
	for category := range p.Budgets {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// TransactionsInCategory returns a copy of the transactions in insertion order,
// restricted to category unless it is blank.
func (p *UserProfile) TransactionsInCategory(category string) []Transaction {
	result := make([]Transaction, 0, len(p.Transactions))
	for _, tx := range p.Transactions {
		if category != "" && tx.Category != category {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// MaxTransactionID returns the highest id currently held, or 0 without transactions.
func (p *UserProfile) MaxTransactionID() int {
	maxID := 0
	for _, tx := range p.Transactions {
		if tx.ID > maxID {
			maxID = tx.ID
		}
	}
	return maxID
}

func (p *UserProfile) indexOf(id int) int {
	return slices.IndexFunc(p.Transactions, func(tx Transaction) bool {
		return tx.ID == id
	})
}

func validateTextFields(date, category, description string) error {
	if err := validation.ValidateText("date", date); err != nil {
		return err
	}
	if err := validation.ValidateCategory(category); err != nil {
		return err
	}
	return validation.ValidateText("description", description)
}
