package spendwise

import "slices"

// Investment is a held asset tracked by total cost basis and current
// mark-to-market value. Valuations are entered by the user; there is no
// market data feed.
type Investment struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice Money   `json:"purchasePrice"`
	CurrentValue  Money   `json:"currentValue"`
}

// Investment returns the investment with the given id, or nil.
func (s *Store) Investment(id string) *Investment {
	for i := range s.investments {
		if s.investments[i].ID == id {
			return &s.investments[i]
		}
	}
	return nil
}

// AddInvestment creates an investment. The id is assigned here.
func (s *Store) AddInvestment(inv Investment) *Investment {
	inv.ID = newID()
	s.investments = append(s.investments, inv)
	return &s.investments[len(s.investments)-1]
}

// UpdateInvestment replaces the investment with a matching id. An unknown
// id is a no-op.
func (s *Store) UpdateInvestment(inv Investment) {
	for i := range s.investments {
		if s.investments[i].ID == inv.ID {
			s.investments[i] = inv
			return
		}
	}
}

// DeleteInvestment removes the investment with the given id.
func (s *Store) DeleteInvestment(id string) {
	s.investments = slices.DeleteFunc(s.investments, func(i Investment) bool { return i.ID == id })
}

// Gain returns the unrealized gain (current value minus cost basis) and the
// corresponding return percentage (zero when the cost basis is not positive).
func (inv Investment) Gain() (Money, Percent) {
	gain := inv.CurrentValue.Sub(inv.PurchasePrice)
	if !inv.PurchasePrice.IsPositive() {
		return gain, 0
	}
	return gain, gain.DivPercent(inv.PurchasePrice)
}
