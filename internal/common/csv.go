// Package common provides the CSV exchange format shared by the export and import commands.
package common

import (
	"encoding/csv"
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates CSV fields unless configured otherwise.
const DefaultDelimiter = ','

// TransactionRow is one line of an exported or imported CSV file.
type TransactionRow struct {
	ID          int    `csv:"id"`
	Date        string `csv:"date"`
	Category    string `csv:"category"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Type        string `csv:"type"`
}

// IsBlank reports whether every text column of the row is empty.
func (r TransactionRow) IsBlank() bool {
	return strings.TrimSpace(r.Date+r.Category+r.Description+r.Amount+r.Type) == ""
}

// Input converts the row into input for a new transaction. The id column is ignored;
// imported transactions get fresh ids.
func (r TransactionRow) Input() models.TransactionInput {
	return models.TransactionInput{
		Date:        r.Date,
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount,
		Type:        r.Type,
	}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string, delimiter rune, logger logging.Logger) ([]TCSVRow, error) {
	logger.WithField(logging.FieldInputFile, filePath).Debug("Reading CSV file")

	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		logger.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	logger.WithField(logging.FieldCount, len(rows)).Debug("Successfully read CSV data")
	return rows, nil
}

// ReadTransactionsCSV reads transaction input rows from csvFile, skipping blank rows.
func ReadTransactionsCSV(csvFile string, delimiter rune, logger logging.Logger) ([]models.TransactionInput, error) {
	rows, err := ReadCSVFile[TransactionRow](csvFile, delimiter, logger)
	if err != nil {
		return nil, err
	}

	inputs := make([]models.TransactionInput, 0, len(rows))
	for _, row := range rows {
		if row.IsBlank() {
			continue
		}
		inputs = append(inputs, row.Input())
	}
	return inputs, nil
}

// WriteTransactionsToCSV writes transactions to csvFile. Amounts keep their full precision
// so an export can be imported again without rounding.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, delimiter rune, logger logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Debug("Writing transactions to CSV file")

	file, err := fileutils.CreateFile(csvFile, models.PermissionExport)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]TransactionRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, TransactionRow{
			ID:          tx.ID,
			Date:        tx.Date,
			Category:    tx.Category,
			Description: tx.Description,
			Amount:      tx.Amount.String(),
			Type:        tx.Type.Code(),
		})
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Exported transactions")
	return nil
}
