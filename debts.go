package spendwise

import "slices"

// Debt is an outstanding liability paid down over time. InterestRate is an
// optional annual percentage, informational only.
type Debt struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	InitialAmount  Money   `json:"initialAmount"`
	CurrentBalance Money   `json:"currentBalance"`
	InterestRate   float64 `json:"interestRate,omitempty"`
}

// Debt returns the debt with the given id, or nil.
func (s *Store) Debt(id string) *Debt {
	for i := range s.debts {
		if s.debts[i].ID == id {
			return &s.debts[i]
		}
	}
	return nil
}

// AddDebt creates a debt. The id is assigned here.
func (s *Store) AddDebt(d Debt) *Debt {
	d.ID = newID()
	s.debts = append(s.debts, d)
	return &s.debts[len(s.debts)-1]
}

// UpdateDebt replaces the debt with a matching id. An unknown id is a no-op.
func (s *Store) UpdateDebt(d Debt) {
	for i := range s.debts {
		if s.debts[i].ID == d.ID {
			s.debts[i] = d
			return
		}
	}
}

// DeleteDebt removes the debt with the given id.
func (s *Store) DeleteDebt(id string) {
	s.debts = slices.DeleteFunc(s.debts, func(d Debt) bool { return d.ID == id })
}

// PaidDown returns how much of the initial amount has been repaid and the
// corresponding percentage (zero when the initial amount is not positive).
func (d Debt) PaidDown() (Money, Percent) {
	paid := d.InitialAmount.Sub(d.CurrentBalance)
	if !d.InitialAmount.IsPositive() {
		return paid, 0
	}
	return paid, paid.DivPercent(d.InitialAmount)
}
