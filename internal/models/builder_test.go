package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionBuilder(t *testing.T) {
	builder := NewTransactionBuilder()

	assert.NotNil(t, builder)
	assert.Nil(t, builder.err)
	assert.Equal(t, Expense, builder.tx.Type)
	assert.True(t, builder.tx.Amount.IsZero())
}

func TestTransactionBuilder_Build(t *testing.T) {
	tx, err := NewTransactionBuilder().
		WithID(3).
		WithDate("2024-03-05").
		WithCategory("Salary").
		WithDescription("march").
		WithAmountFromString("1500.25").
		AsIncome().
		Build()
	require.NoError(t, err)

	assert.Equal(t, 3, tx.ID)
	assert.Equal(t, "2024-03-05", tx.Date)
	assert.Equal(t, "Salary", tx.Category)
	assert.Equal(t, "march", tx.Description)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("1500.25")))
	assert.True(t, tx.IsIncome())
}

func TestTransactionBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *TransactionBuilder
	}{
		{"missing id", NewTransactionBuilder().WithCategory("Food")},
		{"zero id", NewTransactionBuilder().WithID(0)},
		{"negative amount", NewTransactionBuilder().WithID(1).WithAmount(decimal.NewFromInt(-1))},
		{"bad amount text", NewTransactionBuilder().WithID(1).WithAmountFromString("ten")},
		{"bad type", NewTransactionBuilder().WithID(1).WithType(TransactionType('X'))},
		{"bad type code", NewTransactionBuilder().WithID(1).WithTypeCode("i")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			assert.Error(t, err)
		})
	}
}

func TestTransactionBuilder_FirstErrorWins(t *testing.T) {
	_, err := NewTransactionBuilder().WithID(-1).WithAmountFromString("ten").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transaction id must be positive")
}

func TestTransactionBuilder_WithTypeCode(t *testing.T) {
	tx := NewTransactionBuilder().WithID(1).WithTypeCode(TypeCodeIncome).MustBuild()
	assert.Equal(t, Income, tx.Type)

	tx = NewTransactionBuilder().WithID(1).WithTypeCode(TypeCodeExpense).MustBuild()
	assert.Equal(t, Expense, tx.Type)
}

func TestTransactionBuilder_MustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewTransactionBuilder().MustBuild()
	})
}
