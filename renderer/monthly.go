package renderer

import (
	"strings"

	"github.com/spendwise/spendwise"
)

// MonthlySeries renders the income/expense trend, one row per month in
// chronological order.
func MonthlySeries(series []spendwise.MonthlySummary) string {
	var b strings.Builder
	title(&b, "Monthly Trends")
	if len(series) == 0 {
		b.WriteString("No transactions recorded.\n")
		return b.String()
	}
	var t table
	t.header("Month", "Income", "Expense", "Net")
	for _, m := range series {
		t.row(m.Month.Label(), m.Income.String(), m.Expense.String(), m.Net.SignedString())
	}
	b.WriteString(t.String())
	return b.String()
}
