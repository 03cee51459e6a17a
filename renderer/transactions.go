package renderer

import (
	"strings"

	"github.com/spendwise/spendwise"
)

// Transactions renders a transaction listing. accountName resolves an
// account id to its display name; unknown ids are rendered as-is.
func Transactions(txs []spendwise.Transaction, accountName func(string) string) string {
	if len(txs) == 0 {
		return "No transactions.\n"
	}
	var t table
	t.header("Date", "Account", "Type", "Categories", "Amount", "Tags", "Notes")
	for _, tx := range txs {
		amount := tx.TotalAmount
		if tx.Type == spendwise.Expense {
			amount = amount.Neg()
		}
		t.row(
			tx.Date.String(),
			accountName(tx.AccountID),
			string(tx.Type),
			categories(tx),
			amount.SignedString(),
			strings.Join(tx.Tags, ", "),
			tx.Notes,
		)
	}
	return t.String()
}

// categories renders the split breakdown, one "category amount" pair per
// split for multi-split transactions.
func categories(tx spendwise.Transaction) string {
	if len(tx.Splits) == 1 {
		return tx.Splits[0].Category
	}
	parts := make([]string, 0, len(tx.Splits))
	for _, split := range tx.Splits {
		parts = append(parts, split.Category+" "+split.Amount.String())
	}
	return strings.Join(parts, "; ")
}

// ExpenseByCategory renders the expense aggregate of a (filtered) view.
func ExpenseByCategory(totals []spendwise.CategoryTotal) string {
	if len(totals) == 0 {
		return "No expense data.\n"
	}
	var t table
	t.header("Category", "Spent")
	for _, ct := range totals {
		t.row(ct.Category, ct.Amount.String())
	}
	return t.String()
}
