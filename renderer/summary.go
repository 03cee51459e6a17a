package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/spendwise/spendwise"
)

// Summary renders the at-a-glance overview: account balances, net worth
// components and the month's savings rate.
func Summary(sum *spendwise.Summary) string {
	var b strings.Builder
	title(&b, "Summary on %s", sum.Date)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(sum.Accounts) == 0 {
			return false
		}
		section(w, "Accounts")
		var t table
		t.header("Account", "Balance")
		for _, acc := range sum.Accounts {
			t.row(acc.Account.Name, acc.Balance.String())
		}
		fmt.Fprintln(w, t.String())
		return true
	})

	section(&b, "Net Worth")
	var t table
	t.header("Component", "Value")
	t.row("Account balances", sum.TotalBalance.String())
	t.row("Investments", sum.InvestmentValue.String())
	t.row("Debts", sum.DebtBalance.Neg().String())
	t.row("**Net worth**", "**"+sum.NetWorth.String()+"**")
	b.WriteString(t.String())
	b.WriteString("\n")

	section(&b, "Savings for %s", sum.Savings.Month.Label())
	var st table
	st.header("Income", "Expense", "Savings", "Rate")
	st.row(sum.Savings.Income.String(), sum.Savings.Expense.String(),
		sum.Savings.Savings.SignedString(), sum.Savings.Rate.String())
	b.WriteString(st.String())
	return b.String()
}
