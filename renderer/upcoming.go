package renderer

import (
	"fmt"
	"strings"

	"github.com/spendwise/spendwise"
)

// Recurring renders the full recurring transaction listing.
func Recurring(recurring []spendwise.RecurringTransaction, accountName func(string) string) string {
	var b strings.Builder
	title(&b, "Recurring Transactions")
	if len(recurring) == 0 {
		b.WriteString("No recurring transactions.\n")
		return b.String()
	}
	var t table
	t.header("Day", "Category", "Account", "Type", "Amount", "Last Posted", "Id")
	for _, r := range recurring {
		lastPosted := ""
		if r.LastPosted != nil {
			lastPosted = r.LastPosted.String()
		}
		t.row(
			fmt.Sprintf("%d", r.DayOfMonth),
			r.Category,
			accountName(r.AccountID),
			string(r.Type),
			r.Amount.String(),
			lastPosted,
			r.ID,
		)
	}
	b.WriteString(t.String())
	return b.String()
}

// Upcoming renders the recurring obligations still due this month.
func Upcoming(due []spendwise.RecurringTransaction, accountName func(string) string) string {
	var b strings.Builder
	title(&b, "Upcoming This Month")
	if len(due) == 0 {
		b.WriteString("Nothing due.\n")
		return b.String()
	}
	var t table
	t.header("Day", "Category", "Account", "Type", "Amount")
	for _, r := range due {
		t.row(
			fmt.Sprintf("%d", r.DayOfMonth),
			r.Category,
			accountName(r.AccountID),
			string(r.Type),
			r.Amount.String(),
		)
	}
	b.WriteString(t.String())
	return b.String()
}
