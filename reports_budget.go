package spendwise

// CategorySpend sums expense split amounts for one category over one
// calendar month. Income transactions never count against a budget.
func (s *Store) CategorySpend(category string, month Month) Money {
	var spent Money
	for _, tx := range s.transactions {
		if tx.Type != Expense || !month.Contains(tx.Date) {
			continue
		}
		for _, split := range tx.Splits {
			if split.Category == category {
				spent = spent.Add(split.Amount)
			}
		}
	}
	return spent
}

// BudgetProgress is the derived state of one budget: what was spent against
// the cap, what remains, and how far along (or over) the month is.
type BudgetProgress struct {
	Budget    Budget
	Spent     Money
	Remaining Money   // Amount - Spent, negative when over budget
	Progress  Percent // Spent/Amount, capped at 100
	Variance  Money   // Spent - Amount, positive means over budget
}

// Progress computes the budget's progress against the store.
func (s *Store) Progress(b Budget) BudgetProgress {
	spent := s.CategorySpend(b.Category, b.Month)
	p := BudgetProgress{
		Budget:    b,
		Spent:     spent,
		Remaining: b.Amount.Sub(spent),
		Variance:  spent.Sub(b.Amount),
	}
	if b.Amount.IsPositive() {
		p.Progress = spent.DivPercent(b.Amount)
		if p.Progress > 100 {
			p.Progress = 100
		}
	}
	return p
}

// BudgetReport computes the progress of every budget set for the month.
func (s *Store) BudgetReport(month Month) []BudgetProgress {
	var out []BudgetProgress
	for _, b := range s.BudgetsFor(month) {
		out = append(out, s.Progress(b))
	}
	return out
}
