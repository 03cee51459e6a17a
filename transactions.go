package spendwise

import (
	"fmt"
	"slices"
	"strings"
)

// TxType discriminates income from expense transactions. Amounts are stored
// positive; the type carries the sign.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Split is a (category, amount) sub-allocation of a single transaction,
// allowing one payment to count against multiple categories.
type Split struct {
	Category string `json:"category"`
	Amount   Money  `json:"amount"`
}

// Transaction is a single ledger entry against an account. TotalAmount is
// derived from the splits and recomputed on every create or update; it is
// never settable independently.
type Transaction struct {
	ID          string   `json:"id"`
	AccountID   string   `json:"accountId"`
	Splits      []Split  `json:"splits"`
	TotalAmount Money    `json:"totalAmount"`
	Date        Date     `json:"date"`
	Type        TxType   `json:"type"`
	Tags        []string `json:"tags,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// clone returns a copy sharing no backing arrays with the receiver, so
// neither side can reach the other's splits or tags.
func (t Transaction) clone() Transaction {
	t.Splits = slices.Clone(t.Splits)
	t.Tags = slices.Clone(t.Tags)
	return t
}

// SplitTotal sums the split amounts.
func SplitTotal(splits []Split) Money {
	var total Money
	for _, split := range splits {
		total = total.Add(split.Amount)
	}
	return total
}

// Transaction returns the transaction with the given id, or nil if unknown.
func (s *Store) Transaction(id string) *Transaction {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			return &s.transactions[i]
		}
	}
	return nil
}

// AddTransaction records a new transaction. The id and total amount are
// assigned here; any values on the input are ignored. The collection is
// re-sorted by date descending.
func (s *Store) AddTransaction(tx Transaction) (*Transaction, error) {
	if tx.AccountID == "" || s.Account(tx.AccountID) == nil {
		return nil, fmt.Errorf("add transaction: account %q: %w", tx.AccountID, ErrNotFound)
	}
	if len(tx.Splits) == 0 {
		return nil, fmt.Errorf("add transaction: at least one split is required")
	}
	tx = tx.clone()
	tx.ID = newID()
	tx.TotalAmount = SplitTotal(tx.Splits)
	s.transactions = append(s.transactions, tx)
	s.sortTransactions()
	return s.Transaction(tx.ID), nil
}

// UpdateTransaction replaces the transaction with a matching id, recomputes
// its total amount and re-sorts the collection. An unknown id is a no-op.
func (s *Store) UpdateTransaction(tx Transaction) {
	for i := range s.transactions {
		if s.transactions[i].ID == tx.ID {
			tx = tx.clone()
			tx.TotalAmount = SplitTotal(tx.Splits)
			s.transactions[i] = tx
			s.sortTransactions()
			return
		}
	}
}

// DeleteTransaction removes the transaction with the given id.
func (s *Store) DeleteTransaction(id string) {
	s.transactions = slices.DeleteFunc(s.transactions, func(t Transaction) bool { return t.ID == id })
}

// DeleteTransactions removes every transaction whose id is in ids.
func (s *Store) DeleteTransactions(ids []string) {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	s.transactions = slices.DeleteFunc(s.transactions, func(t Transaction) bool { return set[t.ID] })
}

// TagEditMode selects how a bulk tag edit combines with existing tags.
type TagEditMode string

const (
	TagsReplace TagEditMode = "replace" // overwrite the tag list
	TagsAdd     TagEditMode = "add"     // set union
	TagsRemove  TagEditMode = "remove"  // set difference
)

// BulkChange describes an edit applied to a selection of transactions. Nil
// fields are left untouched.
type BulkChange struct {
	AccountID *string
	Category  *string // applied only to single-split transactions
	Tags      []string
	TagMode   TagEditMode
}

// UpdateSelectedTransactions applies the change to every transaction whose
// id is in ids. A category change only applies when the transaction has
// exactly one split; multi-split transactions keep their categories.
func (s *Store) UpdateSelectedTransactions(ids []string, change BulkChange) {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	for i := range s.transactions {
		tx := &s.transactions[i]
		if !set[tx.ID] {
			continue
		}
		if change.AccountID != nil && s.Account(*change.AccountID) != nil {
			tx.AccountID = *change.AccountID
		}
		if change.Category != nil && len(tx.Splits) == 1 {
			tx.Splits[0].Category = *change.Category
		}
		if change.Tags != nil || change.TagMode == TagsReplace {
			tx.Tags = editTags(tx.Tags, change.Tags, change.TagMode)
		}
	}
}

// editTags combines existing and edit tags according to the mode. The
// result keeps the existing order, appending new tags in edit order.
func editTags(existing, edit []string, mode TagEditMode) []string {
	switch mode {
	case TagsAdd:
		out := slices.Clone(existing)
		for _, tag := range edit {
			if !slices.Contains(out, tag) {
				out = append(out, tag)
			}
		}
		return out
	case TagsRemove:
		return slices.DeleteFunc(slices.Clone(existing), func(t string) bool {
			return slices.Contains(edit, t)
		})
	default: // TagsReplace
		return slices.Clone(edit)
	}
}

// sortTransactions keeps the collection ordered by date descending. The
// sort is stable so same-day transactions keep their insertion order.
func (s *Store) sortTransactions() {
	slices.SortStableFunc(s.transactions, func(a, b Transaction) int {
		return b.Date.Compare(a.Date)
	})
}

// ParseTags splits a comma-separated tag list into trimmed, non-empty tags.
func ParseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
