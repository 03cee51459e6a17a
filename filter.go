package spendwise

import "strings"

// Filter describes the criteria a transaction view is narrowed by. Zero
// fields always match, so the zero Filter returns the full collection.
// Supplied criteria compose as a logical AND.
type Filter struct {
	AccountID string // "" or "all" matches every account
	Category  string // "" or "all" matches every category
	Dates     Range  // inclusive on both ends, day granularity
	MinAmount *Money // on the transaction total
	MaxAmount *Money
	Query     string // case-insensitive substring over category, tags, notes
}

// Matches reports whether the transaction satisfies every supplied
// criterion.
func (f Filter) Matches(tx Transaction) bool {
	if f.AccountID != "" && f.AccountID != "all" && tx.AccountID != f.AccountID {
		return false
	}
	if f.Category != "" && f.Category != "all" && !hasCategory(tx, f.Category) {
		return false
	}
	if !f.Dates.Contains(tx.Date) {
		return false
	}
	if f.MinAmount != nil && tx.TotalAmount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && tx.TotalAmount.GreaterThan(*f.MaxAmount) {
		return false
	}
	if f.Query != "" && !matchesQuery(tx, f.Query) {
		return false
	}
	return true
}

func hasCategory(tx Transaction, category string) bool {
	for _, split := range tx.Splits {
		if split.Category == category {
			return true
		}
	}
	return false
}

func matchesQuery(tx Transaction, query string) bool {
	query = strings.ToLower(query)
	for _, split := range tx.Splits {
		if strings.Contains(strings.ToLower(split.Category), query) {
			return true
		}
	}
	for _, tag := range tx.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(tx.Notes), query)
}

// FilterTransactions returns the transactions matching the filter, in
// collection order (date descending).
func (s *Store) FilterTransactions(f Filter) []Transaction {
	var out []Transaction
	for _, tx := range s.transactions {
		if f.Matches(tx) {
			out = append(out, tx.clone())
		}
	}
	return out
}

// CategoryTotal is one slice of an expense-by-category aggregate.
type CategoryTotal struct {
	Category string
	Amount   Money
}

// ExpenseByCategory sums expense split amounts grouped by category name
// over the given transaction set (typically a filtered view). Categories
// appear in first-seen order.
func ExpenseByCategory(transactions []Transaction) []CategoryTotal {
	index := make(map[string]int)
	var out []CategoryTotal
	for _, tx := range transactions {
		if tx.Type != Expense {
			continue
		}
		for _, split := range tx.Splits {
			i, ok := index[split.Category]
			if !ok {
				i = len(out)
				index[split.Category] = i
				out = append(out, CategoryTotal{Category: split.Category})
			}
			out[i].Amount = out[i].Amount.Add(split.Amount)
		}
	}
	return out
}
