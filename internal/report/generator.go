// Package report renders the tracker's views as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"

	"fjacquet/fintrack/internal/aggregator"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/validation"

	"gopkg.in/yaml.v3"
)

// DefaultCurrency prefixes amounts when no currency is configured.
const DefaultCurrency = "$"

// ReportGenerator renders views in the supported output formats.
type ReportGenerator struct {
	logger   logging.Logger
	currency string
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger, currency string) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return &ReportGenerator{
		logger:   logger.WithField("component", "ReportGenerator"),
		currency: currency,
	}
}

// Summary renders the income/expense summary.
func (g *ReportGenerator) Summary(summary aggregator.Summary, format string) ([]byte, error) {
	return g.generate(format, newSummaryDTO(summary), func() string {
		return g.summaryText(summary)
	})
}

// Budget renders the budget report of username.
func (g *ReportGenerator) Budget(username string, result aggregator.BudgetReportResult, format string) ([]byte, error) {
	return g.generate(format, newBudgetDTO(username, result), func() string {
		return g.budgetText(username, result)
	})
}

// TimeSeries renders the monthly and yearly buckets.
func (g *ReportGenerator) TimeSeries(series aggregator.TimeSeries, format string) ([]byte, error) {
	return g.generate(format, newTimeSeriesDTO(series), func() string {
		return g.timeSeriesText(series)
	})
}

// Categories renders expense totals per category.
func (g *ReportGenerator) Categories(totals []aggregator.CategoryTotal, format string) ([]byte, error) {
	return g.generate(format, newCategoriesDTO(totals), func() string {
		return g.categoriesText(totals)
	})
}

// Transactions renders a transaction listing.
func (g *ReportGenerator) Transactions(transactions []models.Transaction, format string) ([]byte, error) {
	return g.generate(format, newTransactionsDTO(transactions), func() string {
		return g.transactionsText(transactions)
	})
}

func (g *ReportGenerator) generate(format string, dto interface{}, text func() string) ([]byte, error) {
	switch format {
	case validation.FormatText, "":
		return []byte(text()), nil
	case validation.FormatJSON:
		return g.generateJSONReport(dto)
	case validation.FormatYAML:
		return g.generateYAMLReport(dto)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateJSONReport(dto interface{}) ([]byte, error) {
	out, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *ReportGenerator) generateYAMLReport(dto interface{}) ([]byte, error) {
	out, err := yaml.Marshal(dto)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}
