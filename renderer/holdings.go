package renderer

import (
	"fmt"
	"strings"

	"github.com/spendwise/spendwise"
)

// Goals renders the savings goals with their progress.
func Goals(goals []spendwise.Goal) string {
	var b strings.Builder
	title(&b, "Goals")
	if len(goals) == 0 {
		b.WriteString("No goals.\n")
		return b.String()
	}
	var t table
	t.header("Goal", "Saved", "Target", "Progress", "Remaining", "Target Date")
	for _, g := range goals {
		progress, remaining := g.Progress()
		target := ""
		if g.TargetDate != nil {
			target = g.TargetDate.String()
		}
		t.row(
			g.Name,
			g.CurrentAmount.String(),
			g.TargetAmount.String(),
			progress.String(),
			remaining.String(),
			target,
		)
	}
	b.WriteString(t.String())
	return b.String()
}

// Investments renders the investment holdings with unrealized gains.
func Investments(investments []spendwise.Investment) string {
	var b strings.Builder
	title(&b, "Investments")
	if len(investments) == 0 {
		b.WriteString("No investments.\n")
		return b.String()
	}
	var t table
	var total spendwise.Money
	t.header("Name", "Quantity", "Purchase", "Value", "Gain", "Gain %")
	for _, i := range investments {
		gain, pct := i.Gain()
		t.row(
			i.Name,
			fmt.Sprintf("%g", i.Quantity),
			i.PurchasePrice.String(),
			i.CurrentValue.String(),
			gain.SignedString(),
			pct.SignedString(),
		)
		total = total.Add(i.CurrentValue)
	}
	t.row("**Total**", "", "", "**"+total.String()+"**", "", "")
	b.WriteString(t.String())
	return b.String()
}

// Debts renders the outstanding debts with payoff progress.
func Debts(debts []spendwise.Debt) string {
	var b strings.Builder
	title(&b, "Debts")
	if len(debts) == 0 {
		b.WriteString("No debts.\n")
		return b.String()
	}
	var t table
	var total spendwise.Money
	t.header("Name", "Initial", "Balance", "Paid Down", "Progress", "Rate")
	for _, d := range debts {
		paid, pct := d.PaidDown()
		rate := ""
		if d.InterestRate != 0 {
			rate = fmt.Sprintf("%.2f%%", d.InterestRate)
		}
		t.row(
			d.Name,
			d.InitialAmount.String(),
			d.CurrentBalance.String(),
			paid.String(),
			pct.String(),
			rate,
		)
		total = total.Add(d.CurrentBalance)
	}
	t.row("**Total**", "", "**"+total.String()+"**", "", "", "")
	b.WriteString(t.String())
	return b.String()
}
