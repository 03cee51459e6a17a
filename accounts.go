package spendwise

import (
	"slices"
	"strings"
)

// Account is a container transactions are recorded against. Names are
// unique case-insensitively.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Account returns the account with the given id, or nil if unknown.
func (s *Store) Account(id string) *Account {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return &s.accounts[i]
		}
	}
	return nil
}

// AccountByName returns the account with the given name (case-insensitive),
// or nil if unknown.
func (s *Store) AccountByName(name string) *Account {
	for i := range s.accounts {
		if strings.EqualFold(s.accounts[i].Name, name) {
			return &s.accounts[i]
		}
	}
	return nil
}

// AddAccount creates an account with the given name and returns it. A blank
// name or a case-insensitive duplicate is a no-op returning nil.
func (s *Store) AddAccount(name string) *Account {
	if name == "" || s.AccountByName(name) != nil {
		return nil
	}
	s.accounts = append(s.accounts, Account{ID: newID(), Name: name})
	return &s.accounts[len(s.accounts)-1]
}

// UpdateAccount replaces the account with a matching id. An unknown id is a
// no-op.
func (s *Store) UpdateAccount(account Account) {
	for i := range s.accounts {
		if s.accounts[i].ID == account.ID {
			s.accounts[i] = account
			return
		}
	}
}

// DeleteAccount removes the account and, cascading, every transaction and
// recurring template that references it. Deleting an unknown id is a no-op.
func (s *Store) DeleteAccount(id string) {
	s.accounts = slices.DeleteFunc(s.accounts, func(a Account) bool { return a.ID == id })
	s.transactions = slices.DeleteFunc(s.transactions, func(t Transaction) bool { return t.AccountID == id })
	s.recurring = slices.DeleteFunc(s.recurring, func(r RecurringTransaction) bool { return r.AccountID == id })
}
