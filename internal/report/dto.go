package report

import (
	"fjacquet/fintrack/internal/aggregator"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Machine-readable shapes of the views. Amounts are fixed two-decimal strings so they
// survive JSON and YAML without float rounding.

type summaryDTO struct {
	TotalIncome  string `json:"total_income" yaml:"total_income"`
	TotalExpense string `json:"total_expense" yaml:"total_expense"`
	Net          string `json:"net" yaml:"net"`
}

type budgetLineDTO struct {
	Category string `json:"category" yaml:"category"`
	Budgeted string `json:"budgeted" yaml:"budgeted"`
	Spent    string `json:"spent" yaml:"spent"`
	Status   string `json:"status" yaml:"status"`
}

type categoryTotalDTO struct {
	Category string `json:"category" yaml:"category"`
	Total    string `json:"total" yaml:"total"`
}

type budgetDTO struct {
	Username    string             `json:"username" yaml:"username"`
	Lines       []budgetLineDTO    `json:"lines" yaml:"lines"`
	AnyExceeded bool               `json:"any_exceeded" yaml:"any_exceeded"`
	NoBudgets   bool               `json:"no_budgets" yaml:"no_budgets"`
	Unbudgeted  []categoryTotalDTO `json:"unbudgeted" yaml:"unbudgeted"`
}

type periodDTO struct {
	Period  string `json:"period" yaml:"period"`
	Income  string `json:"income" yaml:"income"`
	Expense string `json:"expense" yaml:"expense"`
	Net     string `json:"net" yaml:"net"`
}

type timeSeriesDTO struct {
	Monthly []periodDTO `json:"monthly" yaml:"monthly"`
	Yearly  []periodDTO `json:"yearly" yaml:"yearly"`
}

type categoriesDTO struct {
	Categories []categoryTotalDTO `json:"categories" yaml:"categories"`
}

type transactionDTO struct {
	ID          int    `json:"id" yaml:"id"`
	Date        string `json:"date" yaml:"date"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
	Amount      string `json:"amount" yaml:"amount"`
	Type        string `json:"type" yaml:"type"`
}

type transactionsDTO struct {
	Transactions []transactionDTO `json:"transactions" yaml:"transactions"`
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func newSummaryDTO(s aggregator.Summary) summaryDTO {
	return summaryDTO{
		TotalIncome:  fixed(s.TotalIncome),
		TotalExpense: fixed(s.TotalExpense),
		Net:          fixed(s.Net),
	}
}

func newCategoryTotalDTOs(totals []aggregator.CategoryTotal) []categoryTotalDTO {
	result := make([]categoryTotalDTO, 0, len(totals))
	for _, ct := range totals {
		result = append(result, categoryTotalDTO{Category: ct.Category, Total: fixed(ct.Total)})
	}
	return result
}

func newBudgetDTO(username string, r aggregator.BudgetReportResult) budgetDTO {
	lines := make([]budgetLineDTO, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, budgetLineDTO{
			Category: line.Category,
			Budgeted: fixed(line.Budgeted),
			Spent:    fixed(line.Spent),
			Status:   string(line.Status),
		})
	}
	return budgetDTO{
		Username:    username,
		Lines:       lines,
		AnyExceeded: r.AnyExceeded,
		NoBudgets:   r.NoBudgets,
		Unbudgeted:  newCategoryTotalDTOs(r.Unbudgeted),
	}
}

func newPeriodDTOs(periods []aggregator.PeriodTotal) []periodDTO {
	result := make([]periodDTO, 0, len(periods))
	for _, p := range periods {
		result = append(result, periodDTO{
			Period:  p.Period,
			Income:  fixed(p.Income),
			Expense: fixed(p.Expense),
			Net:     fixed(p.Net),
		})
	}
	return result
}

func newTimeSeriesDTO(ts aggregator.TimeSeries) timeSeriesDTO {
	return timeSeriesDTO{
		Monthly: newPeriodDTOs(ts.Monthly),
		Yearly:  newPeriodDTOs(ts.Yearly),
	}
}

func newCategoriesDTO(totals []aggregator.CategoryTotal) categoriesDTO {
	return categoriesDTO{Categories: newCategoryTotalDTOs(totals)}
}

func newTransactionsDTO(txs []models.Transaction) transactionsDTO {
	result := make([]transactionDTO, 0, len(txs))
	for _, tx := range txs {
		result = append(result, transactionDTO{
			ID:          tx.ID,
			Date:        tx.Date,
			Category:    tx.Category,
			Description: tx.Description,
			Amount:      fixed(tx.Amount),
			Type:        tx.Type.Code(),
		})
	}
	return transactionsDTO{Transactions: result}
}
