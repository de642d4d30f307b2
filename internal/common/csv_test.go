package common

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCSVRow represents a test CSV row for gocsv unmarshaling
type TestCSVRow struct {
	Name    string `csv:"Name"`
	Age     string `csv:"Age"`
	Country string `csv:"Country"`
}

func TestReadCSVFile(t *testing.T) {
	tempDir := t.TempDir()

	csvContent := `Name,Age,Country
John Doe,30,USA
Jane Smith,25,Canada
,,
Bob Johnson,42,UK`

	testCSVPath := filepath.Join(tempDir, "test.csv")
	err := os.WriteFile(testCSVPath, []byte(csvContent), 0600)
	require.NoError(t, err)

	logger := logging.NewMockLogger()
	rows, err := ReadCSVFile[TestCSVRow](testCSVPath, ',', logger)
	require.NoError(t, err)
	assert.Len(t, rows, 4, "ReadCSVFile should read all 4 rows including empty row")

	assert.Equal(t, "John Doe", rows[0].Name)
	assert.Equal(t, "30", rows[0].Age)
	assert.Equal(t, "Canada", rows[1].Country)
	assert.Equal(t, "", rows[2].Name)

	_, err = ReadCSVFile[TestCSVRow]("non-existent-file.csv", ',', logger)
	assert.Error(t, err, "ReadCSVFile should return an error for a non-existent file")
}

func TestWriteAndReadTransactions(t *testing.T) {
	tests := []struct {
		name      string
		delimiter rune
	}{
		{"comma", ','},
		{"semicolon", ';'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logging.NewMockLogger()
			path := filepath.Join(t.TempDir(), "out", "transactions.csv")

			txs := []models.Transaction{
				models.NewTransactionBuilder().WithID(1).WithDate("2024-03-05").WithCategory("Food").
					WithDescription("lunch, with friends").WithAmountFromString("12.5").AsExpense().MustBuild(),
				models.NewTransactionBuilder().WithID(4).WithDate("2024-03-01").WithCategory("Salary").
					WithAmountFromString("1000").AsIncome().MustBuild(),
			}

			require.NoError(t, WriteTransactionsToCSV(txs, path, tt.delimiter, logger))

			inputs, err := ReadTransactionsCSV(path, tt.delimiter, logger)
			require.NoError(t, err)
			require.Len(t, inputs, 2)
			assert.Equal(t, models.TransactionInput{
				Date: "2024-03-05", Category: "Food", Description: "lunch, with friends", Amount: "12.5", Type: "E",
			}, inputs[0])
			assert.Equal(t, "1000", inputs[1].Amount)
			assert.Equal(t, "I", inputs[1].Type)
		})
	}
}

func TestWriteTransactionsToCSV_Header(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")

	txs := []models.Transaction{
		models.NewTransactionBuilder().WithID(2).WithDate("2024-03-05").WithCategory("Food").
			WithAmountFromString("3").AsExpense().MustBuild(),
	}
	require.NoError(t, WriteTransactionsToCSV(txs, path, ',', logging.NewMockLogger()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,date,category,description,amount,type\n2,2024-03-05,Food,,3,E\n", string(data))
}

func TestWriteTransactionsToCSV_KeepsPrecision(t *testing.T) {
	logger := logging.NewMockLogger()
	path := filepath.Join(t.TempDir(), "precise.csv")

	txs := []models.Transaction{
		models.NewTransactionBuilder().WithID(1).WithDate("2024-03-05").WithCategory("Fees").
			WithAmountFromString("0.125").AsExpense().MustBuild(),
	}
	require.NoError(t, WriteTransactionsToCSV(txs, path, ',', logger))

	inputs, err := ReadTransactionsCSV(path, ',', logger)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "0.125", inputs[0].Amount)

	amount, err := models.ParseAmount(inputs[0].Amount)
	require.NoError(t, err)
	assert.True(t, amount.Equal(txs[0].Amount))
}

func TestWriteTransactionsToCSV_Nil(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "x.csv"), ',', logging.NewMockLogger())
	assert.Error(t, err)
}

func TestReadTransactionsCSV_SkipsBlankRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	content := "date,category,amount,type\n2024-01-01,Food,5,E\n,,,\n2024-01-02,Pay,10,I\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	inputs, err := ReadTransactionsCSV(path, ',', logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "", inputs[0].Description)
	assert.Equal(t, "Pay", inputs[1].Category)
}
