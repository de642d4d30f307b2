package report

import (
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/aggregator"
	"fjacquet/fintrack/internal/currencyutils"
	"fjacquet/fintrack/internal/models"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

// Text banners shown under the budget table.
const (
	BannerBudgetExceeded = "Budget exceeded in at least one category!"
	BannerNoBudgets      = "No budgets set yet."
	NoTransactions       = "No transactions found."
	NoExpenses           = "No expenses recorded yet."

	descriptionLimit = 25
	columnGap        = 2
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#828282"))
	incomeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00"))
	expenseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))
	netStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#4f8fff"))
	exceededStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d29b1d"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

func (g *ReportGenerator) money(d decimal.Decimal) string {
	return currencyutils.FormatAmount(d, g.currency)
}

func title(text string) string {
	return titleStyle.Render("--- " + text + " ---")
}

func (g *ReportGenerator) summaryText(s aggregator.Summary) string {
	t := newTable("", "")
	t.align(1, lipgloss.Right)
	t.addStyledRow(incomeStyle, "Total Income:", g.money(s.TotalIncome))
	t.addStyledRow(expenseStyle, "Total Expense:", g.money(s.TotalExpense))
	t.addStyledRow(netStyle, "Net:", g.money(s.Net))

	return joinLines(title("Financial Summary"), t.renderBody())
}

func (g *ReportGenerator) budgetText(username string, r aggregator.BudgetReportResult) string {
	lines := []string{title("Budget Report for " + username)}

	if r.NoBudgets {
		lines = append(lines, mutedStyle.Render(BannerNoBudgets))
	} else {
		t := newTable("Category", "Budget", "Spent", "Status")
		t.align(1, lipgloss.Right)
		t.align(2, lipgloss.Right)
		for _, line := range r.Lines {
			style := lipgloss.NewStyle()
			switch line.Status {
			case aggregator.StatusExceeded:
				style = exceededStyle
			case aggregator.StatusWarning:
				style = warningStyle
			}
			t.addStyledRow(style, line.Category, g.money(line.Budgeted), g.money(line.Spent), string(line.Status))
		}
		lines = append(lines, t.render())
	}

	if len(r.Unbudgeted) > 0 {
		lines = append(lines, "", "Spending without a budget:")
		t := newTable("", "")
		t.align(1, lipgloss.Right)
		for _, ct := range r.Unbudgeted {
			t.addRow("  "+ct.Category, g.money(ct.Total))
		}
		lines = append(lines, mutedStyle.Render(t.renderBody()))
	}

	if r.AnyExceeded {
		lines = append(lines, "", exceededStyle.Render(BannerBudgetExceeded))
	}
	return joinLines(lines...)
}

func (g *ReportGenerator) periodTable(periods []aggregator.PeriodTotal) string {
	if len(periods) == 0 {
		return mutedStyle.Render("  " + NoTransactions)
	}
	t := newTable("Period", "Income", "Expense", "Net")
	for col := 1; col <= 3; col++ {
		t.align(col, lipgloss.Right)
	}
	for _, p := range periods {
		t.addRow(p.Period, g.money(p.Income), g.money(p.Expense), g.money(p.Net))
	}
	return t.render()
}

func (g *ReportGenerator) timeSeriesText(ts aggregator.TimeSeries) string {
	return joinLines(
		title("Time Series Report"),
		"Monthly Summary:",
		g.periodTable(ts.Monthly),
		"",
		"Yearly Summary:",
		g.periodTable(ts.Yearly),
	)
}

func (g *ReportGenerator) categoriesText(totals []aggregator.CategoryTotal) string {
	if len(totals) == 0 {
		return joinLines(title("Expenses by Category"), mutedStyle.Render(NoExpenses))
	}

	grand := decimal.Zero
	t := newTable("Category", "Total")
	t.align(1, lipgloss.Right)
	for _, ct := range totals {
		grand = grand.Add(ct.Total)
		t.addRow(ct.Category, g.money(ct.Total))
	}
	t.addStyledRow(titleStyle, "Total", g.money(grand))
	return joinLines(title("Expenses by Category"), t.render())
}

func (g *ReportGenerator) transactionsText(txs []models.Transaction) string {
	if len(txs) == 0 {
		return joinLines(title("Transactions"), mutedStyle.Render(NoTransactions))
	}

	t := newTable("ID", "Date", "Category", "Description", "Type", "Amount")
	t.align(0, lipgloss.Right)
	t.align(5, lipgloss.Right)
	for _, tx := range txs {
		style := expenseStyle
		if tx.IsIncome() {
			style = incomeStyle
		}
		t.addStyledRow(style,
			fmt.Sprintf("%d", tx.ID),
			tx.Date,
			tx.Category,
			TruncateDescription(tx.Description),
			tx.Type.String(),
			g.money(tx.Amount),
		)
	}
	return joinLines(title("Transactions"), t.render())
}

// TruncateDescription shortens a description to 25 runes followed by "...".
func TruncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= descriptionLimit {
		return description
	}
	return string(runes[:descriptionLimit]) + "..."
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// table collects rows for a borderless lipgloss table. Each row carries its own style
// and columns can be aligned individually.
type table struct {
	headers []string
	rows    [][]string
	styles  []lipgloss.Style
	aligns  map[int]lipgloss.Position
}

func newTable(headers ...string) *table {
	return &table{headers: headers, aligns: make(map[int]lipgloss.Position)}
}

func (t *table) align(col int, pos lipgloss.Position) {
	t.aligns[col] = pos
}

func (t *table) addRow(cells ...string) {
	t.addStyledRow(lipgloss.NewStyle(), cells...)
}

func (t *table) addStyledRow(style lipgloss.Style, cells ...string) {
	t.rows = append(t.rows, cells)
	t.styles = append(t.styles, style)
}

func (t *table) cellStyle(row, col int) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch {
	case row == lgtable.HeaderRow:
		style = headerStyle
	case row >= 0 && row < len(t.styles):
		style = t.styles[row]
	}

	pos, ok := t.aligns[col]
	if !ok {
		pos = lipgloss.Left
	}
	style = style.Align(pos)
	if col < len(t.headers)-1 {
		style = style.PaddingRight(columnGap)
	}
	return style
}

func (t *table) build(withHeaders bool) *lgtable.Table {
	tbl := lgtable.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(t.cellStyle).
		Rows(t.rows...)
	if withHeaders {
		tbl = tbl.Headers(t.headers...)
	}
	return tbl
}

// renderBody renders the rows without the header line.
func (t *table) renderBody() string {
	return trimLines(t.build(false).Render())
}

func (t *table) render() string {
	return trimLines(t.build(true).Render())
}

func trimLines(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
