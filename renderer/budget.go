package renderer

import (
	"fmt"
	"strings"

	"github.com/spendwise/spendwise"
)

// BudgetReport renders the budget progress of one month.
func BudgetReport(month spendwise.Month, report []spendwise.BudgetProgress) string {
	var b strings.Builder
	title(&b, "Budgets for %s", month.Label())
	if len(report) == 0 {
		b.WriteString("No budgets set for this month.\n")
		return b.String()
	}
	var t table
	t.header("Category", "Spent", "Budget", "Remaining", "Progress", "Status")
	for _, p := range report {
		t.row(
			p.Budget.Category,
			p.Spent.String(),
			p.Budget.Amount.String(),
			p.Remaining.String(),
			p.Progress.String(),
			status(p),
		)
	}
	b.WriteString(t.String())
	return b.String()
}

func status(p spendwise.BudgetProgress) string {
	if p.Variance.IsPositive() {
		return fmt.Sprintf("over by %s", p.Variance.String())
	}
	return "under"
}
