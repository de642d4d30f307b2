package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionBuilder provides a fluent API for constructing transactions
type TransactionBuilder struct {
	tx  Transaction
	err error
}

// NewTransactionBuilder creates a new TransactionBuilder for an expense of zero
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		tx: Transaction{
			Amount: decimal.Zero,
			Type:   Expense,
		},
	}
}

// WithID sets the transaction ID
func (b *TransactionBuilder) WithID(id int) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if id < FirstTransactionID {
		b.err = fmt.Errorf("transaction id must be positive, got %d", id)
		return b
	}
	b.tx.ID = id
	return b
}

// WithDate sets the date text. It is kept verbatim; reports decide whether it parses.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Date = date
	return b
}

// WithCategory sets the category
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Category = category
	return b
}

// WithDescription sets the description
func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Description = description
	return b
}

// WithAmount sets the amount
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if amount.IsNegative() {
		b.err = errors.New("amount must not be negative")
		return b
	}
	b.tx.Amount = amount
	return b
}

// WithAmountFromString parses and sets the amount
func (b *TransactionBuilder) WithAmountFromString(amount string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		b.err = fmt.Errorf("invalid amount %q: %w", amount, err)
		return b
	}
	return b.WithAmount(dec)
}

// WithType sets the transaction type
func (b *TransactionBuilder) WithType(t TransactionType) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if !t.IsValid() {
		b.err = fmt.Errorf("invalid transaction type %q", t.Code())
		return b
	}
	b.tx.Type = t
	return b
}

// WithTypeCode sets the type from its exact storage code, "I" or "E"
func (b *TransactionBuilder) WithTypeCode(code string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	switch code {
	case TypeCodeIncome:
		b.tx.Type = Income
	case TypeCodeExpense:
		b.tx.Type = Expense
	default:
		b.err = fmt.Errorf("invalid transaction type code %q", code)
	}
	return b
}

// AsIncome marks the transaction as income
func (b *TransactionBuilder) AsIncome() *TransactionBuilder {
	return b.WithType(Income)
}

// AsExpense marks the transaction as an expense
func (b *TransactionBuilder) AsExpense() *TransactionBuilder {
	return b.WithType(Expense)
}

// Build returns the transaction or the first error met while building it
func (b *TransactionBuilder) Build() (Transaction, error) {
	if b.err != nil {
		return Transaction{}, b.err
	}
	if b.tx.ID == 0 {
		return Transaction{}, errors.New("transaction id is required")
	}
	return b.tx, nil
}

// MustBuild is Build for fixtures; it panics on error
func (b *TransactionBuilder) MustBuild() Transaction {
	tx, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tx
}
