// Package models contains the domain model of the tracker: user profiles, their
// transactions and budgets, and the mutations allowed on them.
package models

import (
	"errors"
	"strings"
	"unicode"

	"fjacquet/fintrack/internal/trackererror"

	"github.com/shopspring/decimal"
)

// TransactionType tells income and expense entries apart.
type TransactionType byte

const (
	Income  TransactionType = 'I'
	Expense TransactionType = 'E'
)

// Code returns the single-letter storage code ("I" or "E").
func (t TransactionType) Code() string {
	return string(rune(t))
}

func (t TransactionType) String() string {
	switch t {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return "Unknown"
	}
}

// IsValid reports whether t is Income or Expense.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// ParseTransactionType reads a type from user text. Only the first character counts,
// case-insensitively: "i", "Income" and "I" are all Income.
func ParseTransactionType(text string) (TransactionType, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &trackererror.ParseError{Field: "type", Value: text, Err: errors.New("empty type")}
	}
	switch unicode.ToUpper([]rune(trimmed)[0]) {
	case 'I':
		return Income, nil
	case 'E':
		return Expense, nil
	default:
		return 0, &trackererror.ParseError{Field: "type", Value: text, Err: errors.New("must be 'I' or 'E'")}
	}
}

// Transaction is a single dated income or expense entry. ID never changes once issued.
type Transaction struct {
	ID          int
	Date        string
	Category    string
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
}

// IsIncome reports whether the transaction is an income entry.
func (t Transaction) IsIncome() bool {
	return t.Type == Income
}

// IsExpense reports whether the transaction is an expense entry.
func (t Transaction) IsExpense() bool {
	return t.Type == Expense
}

// TransactionInput holds the raw text of a new transaction as typed by the user.
type TransactionInput struct {
	Date        string
	Category    string
	Description string
	Amount      string
	Type        string
}

// TransactionEdit holds replacement text for an existing transaction. A blank field
// keeps the current value.
type TransactionEdit struct {
	Date        string
	Category    string
	Description string
	Amount      string
	Type        string
}

// IsEmpty reports whether the edit would change nothing.
func (e TransactionEdit) IsEmpty() bool {
	return isBlank(e.Date) && isBlank(e.Category) && isBlank(e.Description) &&
		isBlank(e.Amount) && isBlank(e.Type)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
