package spendwise

import "slices"

// Budget is a monthly spending cap for one category. At most one budget
// exists per (category, month) pair; SetBudget enforces this by upserting.
type Budget struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Amount   Money  `json:"amount"`
	Month    Month  `json:"month"`
}

// Budget returns the budget with the given id, or nil if unknown.
func (s *Store) Budget(id string) *Budget {
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			return &s.budgets[i]
		}
	}
	return nil
}

// BudgetFor returns the budget for the (category, month) pair, or nil.
func (s *Store) BudgetFor(category string, month Month) *Budget {
	for i := range s.budgets {
		if s.budgets[i].Category == category && s.budgets[i].Month == month {
			return &s.budgets[i]
		}
	}
	return nil
}

// BudgetsFor returns all budgets set for the given month.
func (s *Store) BudgetsFor(month Month) []Budget {
	var out []Budget
	for _, b := range s.budgets {
		if b.Month == month {
			out = append(out, b)
		}
	}
	return out
}

// SetBudget creates or updates a budget. When id is non-empty the matching
// budget is updated; otherwise an existing budget for the same (category,
// month) pair is updated in place, which is what keeps the pair unique.
// Only when neither matches is a new budget inserted.
func (s *Store) SetBudget(category string, amount Money, month Month, id string) *Budget {
	var existing *Budget
	if id != "" {
		existing = s.Budget(id)
	} else {
		existing = s.BudgetFor(category, month)
	}
	if existing != nil {
		existing.Category = category
		existing.Amount = amount
		existing.Month = month
		return existing
	}
	s.budgets = append(s.budgets, Budget{ID: newID(), Category: category, Amount: amount, Month: month})
	return &s.budgets[len(s.budgets)-1]
}

// DeleteBudget removes the budget with the given id.
func (s *Store) DeleteBudget(id string) {
	s.budgets = slices.DeleteFunc(s.budgets, func(b Budget) bool { return b.ID == id })
}
