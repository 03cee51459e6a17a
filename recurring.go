package spendwise

import (
	"fmt"
	"slices"
)

// Frequency is the repetition schedule of a recurring template. Monthly is
// the only supported frequency for now.
type Frequency string

const Monthly Frequency = "monthly"

// RecurringTransaction is a template describing a transaction pattern to be
// posted every month, distinct from any transaction it produces.
// LastPosted records the most recent posting and is what prevents a second
// posting in the same month.
type RecurringTransaction struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"accountId"`
	Amount     Money     `json:"amount"`
	Category   string    `json:"category"`
	Type       TxType    `json:"type"`
	Frequency  Frequency `json:"frequency"`
	DayOfMonth int       `json:"dayOfMonth"`
	Tags       []string  `json:"tags,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	LastPosted *Date     `json:"lastPostedDate,omitempty"`
}

// clone returns a copy sharing no memory with the receiver.
func (r RecurringTransaction) clone() RecurringTransaction {
	r.Tags = slices.Clone(r.Tags)
	if r.LastPosted != nil {
		d := *r.LastPosted
		r.LastPosted = &d
	}
	return r
}

// RecurringTransaction returns the template with the given id, or nil.
func (s *Store) RecurringTransaction(id string) *RecurringTransaction {
	for i := range s.recurring {
		if s.recurring[i].ID == id {
			return &s.recurring[i]
		}
	}
	return nil
}

// AddRecurringTransaction creates a recurring template. The id is assigned
// here; any value on the input is ignored.
func (s *Store) AddRecurringTransaction(r RecurringTransaction) (*RecurringTransaction, error) {
	if s.Account(r.AccountID) == nil {
		return nil, fmt.Errorf("add recurring: account %q: %w", r.AccountID, ErrNotFound)
	}
	if r.DayOfMonth < 1 || r.DayOfMonth > 31 {
		return nil, fmt.Errorf("add recurring: day of month %d out of range 1-31", r.DayOfMonth)
	}
	if r.Frequency == "" {
		r.Frequency = Monthly
	}
	r = r.clone()
	r.ID = newID()
	s.recurring = append(s.recurring, r)
	return &s.recurring[len(s.recurring)-1], nil
}

// UpdateRecurringTransaction replaces the template with a matching id. An
// unknown id is a no-op.
func (s *Store) UpdateRecurringTransaction(r RecurringTransaction) {
	for i := range s.recurring {
		if s.recurring[i].ID == r.ID {
			s.recurring[i] = r.clone()
			return
		}
	}
}

// DeleteRecurringTransaction removes the template with the given id.
func (s *Store) DeleteRecurringTransaction(id string) {
	s.recurring = slices.DeleteFunc(s.recurring, func(r RecurringTransaction) bool { return r.ID == id })
}

// MarkRecurringPosted records the date the template was last posted on.
func (s *Store) MarkRecurringPosted(id string, date Date) {
	if r := s.RecurringTransaction(id); r != nil {
		r.LastPosted = &date
	}
}

// PostRecurring materializes the template into a real single-split
// transaction dated 'date' (today if zero) and records the posting on the
// template. Posting twice in the same month returns ErrAlreadyPosted and
// leaves the ledger untouched.
func (s *Store) PostRecurring(id string, date Date) (*Transaction, error) {
	r := s.RecurringTransaction(id)
	if r == nil {
		return nil, fmt.Errorf("post recurring %q: %w", id, ErrNotFound)
	}
	if date.IsZero() {
		date = Today()
	}
	if r.LastPosted != nil && r.LastPosted.Month() == date.Month() {
		return nil, fmt.Errorf("post recurring %q on %s: %w", id, date, ErrAlreadyPosted)
	}
	tx, err := s.AddTransaction(Transaction{
		AccountID: r.AccountID,
		Splits:    []Split{{Category: r.Category, Amount: r.Amount}},
		Date:      date,
		Type:      r.Type,
		Tags:      slices.Clone(r.Tags),
		Notes:     r.Notes,
	})
	if err != nil {
		return nil, err
	}
	s.MarkRecurringPosted(id, date)
	return tx, nil
}
