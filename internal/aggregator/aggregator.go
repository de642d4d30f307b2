// Package aggregator computes the derived views of a profile: expense totals per
// category, budget comparisons, the income/expense summary and the monthly and yearly
// time series. None of the functions fail; data that cannot take part in a view is
// skipped or counted as zero.
package aggregator

import (
	"sort"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// BudgetStatus classifies spending against a budget ceiling.
type BudgetStatus string

const (
	StatusOK       BudgetStatus = "OK"
	StatusWarning  BudgetStatus = "WARNING"
	StatusExceeded BudgetStatus = "EXCEEDED"
)

// DefaultWarningThreshold is the share of a budget at which a category is flagged.
var DefaultWarningThreshold = decimal.RequireFromString("0.90")

// CategoryTotal is an amount aggregated for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary holds overall income, expense and their difference.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// BudgetLine compares one budgeted category with what was spent in it.
type BudgetLine struct {
	Category string
	Budgeted decimal.Decimal
	Spent    decimal.Decimal
	Status   BudgetStatus
}

// BudgetReportResult is the budget-versus-spend view of a profile.
type BudgetReportResult struct {
	Lines       []BudgetLine
	AnyExceeded bool
	NoBudgets   bool
	// Unbudgeted lists categories with expenses but no budget entry.
	Unbudgeted []CategoryTotal
}

// PeriodTotal is one bucket of a time series.
type PeriodTotal struct {
	Period  string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// TimeSeries holds the monthly ("YYYY-MM") and yearly ("YYYY") buckets in ascending order.
type TimeSeries struct {
	Monthly []PeriodTotal
	Yearly  []PeriodTotal
}

// CategorizeExpenses sums expense amounts per category. Categories without expenses
// are absent from the result.
func CategorizeExpenses(transactions []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}

// SortedCategoryTotals flattens a category map into a slice sorted by category name.
func SortedCategoryTotals(totals map[string]decimal.Decimal) []CategoryTotal {
	result := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result
}

// FinancialSummary totals income and expense; Net may be negative.
func FinancialSummary(transactions []models.Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case models.Income:
			income = income.Add(tx.Amount)
		case models.Expense:
			expense = expense.Add(tx.Amount)
		}
	}
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
	}
}

// BudgetReport compares each budgeted category with its spending using
// DefaultWarningThreshold.
func BudgetReport(profile *models.UserProfile) BudgetReportResult {
	return BudgetReportWithThreshold(profile, DefaultWarningThreshold)
}

// BudgetReportWithThreshold compares each budgeted category, in name order, with its
// spending. Spending above the budget is EXCEEDED; otherwise a positive budget spent
// to at least threshold of its value is WARNING; everything else is OK.
func BudgetReportWithThreshold(profile *models.UserProfile, threshold decimal.Decimal) BudgetReportResult {
	expenses := CategorizeExpenses(profile.Transactions)

	result := BudgetReportResult{
		Lines:     make([]BudgetLine, 0, len(profile.Budgets)),
		NoBudgets: len(profile.Budgets) == 0,
	}

	for _, category := range profile.BudgetCategories() {
		budgeted := profile.Budgets[category]
		spent := expenses[category]

		status := ClassifyBudget(budgeted, spent, threshold)
		if status == StatusExceeded {
			result.AnyExceeded = true
		}
		result.Lines = append(result.Lines, BudgetLine{
			Category: category,
			Budgeted: budgeted,
			Spent:    spent,
			Status:   status,
		})
	}

	for _, total := range SortedCategoryTotals(expenses) {
		if _, ok := profile.Budgets[total.Category]; !ok {
			result.Unbudgeted = append(result.Unbudgeted, total)
		}
	}

	return result
}

// ClassifyBudget applies the status rule to one category.
func ClassifyBudget(budgeted, spent, threshold decimal.Decimal) BudgetStatus {
	switch {
	case spent.GreaterThan(budgeted):
		return StatusExceeded
	case budgeted.IsPositive() && spent.GreaterThanOrEqual(budgeted.Mul(threshold)):
		return StatusWarning
	default:
		return StatusOK
	}
}

// TimeSeriesReport buckets transactions by month and by year. Transactions whose date
// does not read as year-month-day are left out.
func TimeSeriesReport(transactions []models.Transaction) TimeSeries {
	monthly := newBuckets()
	yearly := newBuckets()

	for _, tx := range transactions {
		year, month, _, ok := dateutils.ParseDateParts(tx.Date)
		if !ok {
			continue
		}
		monthly.add(dateutils.MonthKey(year, month), tx)
		yearly.add(dateutils.YearKey(year), tx)
	}

	return TimeSeries{
		Monthly: monthly.sorted(),
		Yearly:  yearly.sorted(),
	}
}

type buckets map[string]*PeriodTotal

func newBuckets() buckets {
	return make(buckets)
}

func (b buckets) add(period string, tx models.Transaction) {
	bucket, ok := b[period]
	if !ok {
		bucket = &PeriodTotal{Period: period, Income: decimal.Zero, Expense: decimal.Zero}
		b[period] = bucket
	}
	if tx.IsIncome() {
		bucket.Income = bucket.Income.Add(tx.Amount)
	} else {
		bucket.Expense = bucket.Expense.Add(tx.Amount)
	}
}

func (b buckets) sorted() []PeriodTotal {
	result := make([]PeriodTotal, 0, len(b))
	for _, bucket := range b {
		bucket.Net = bucket.Income.Sub(bucket.Expense)
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Period < result[j].Period
	})
	return result
}
