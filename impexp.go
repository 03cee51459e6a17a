package spendwise

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// this file contains functions to handle the import/export format.
// A snapshot is the complete state of all entity collections as one JSON
// document, human readable and easy to back up. The format carries no
// version tag, matching the original data files.

// ErrInvalidSnapshot is returned by Import when the document parses as JSON
// but is missing one of the required collections.
var ErrInvalidSnapshot = errors.New("invalid snapshot structure")

// snapshot is the readable form of the import/export format. Field order is
// the export order.
type snapshot struct {
	Transactions []Transaction          `json:"transactions"`
	Accounts     []Account              `json:"accounts"`
	Categories   []Category             `json:"categories"`
	Budgets      []Budget               `json:"budgets"`
	Recurring    []RecurringTransaction `json:"recurringTransactions"`
	Goals        []Goal                 `json:"goals"`
	Investments  []Investment           `json:"investments"`
	Debts        []Debt                 `json:"debts"`
	Theme        Theme                  `json:"theme"`
}

// snapshotKeys are the top-level keys a snapshot must carry to be imported.
// The theme is optional.
var snapshotKeys = []string{
	"transactions", "accounts", "categories", "budgets",
	"recurringTransactions", "goals", "investments", "debts",
}

// Export writes the whole store to w as one indented JSON document.
func (s *Store) Export(w io.Writer) error {
	snap := snapshot{
		Transactions: s.transactions,
		Accounts:     s.accounts,
		Categories:   s.categories,
		Budgets:      s.budgets,
		Recurring:    s.recurring,
		Goals:        s.goals,
		Investments:  s.investments,
		Debts:        s.debts,
		Theme:        s.theme,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// ExportFilename returns the conventional backup file name for an export
// taken at the given time, e.g. "spendwise_backup_20240131_153005.json".
func ExportFilename(at time.Time) string {
	return "spendwise_backup_" + at.Format("20060102_150405") + ".json"
}

// Import reads a snapshot document and atomically replaces every collection
// of the store. A JSON parse failure and a missing-key failure are distinct
// errors; in both cases the store is left untouched. A valid theme in the
// snapshot is adopted, an invalid or absent one is ignored.
func (s *Store) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("cannot read snapshot: %w", err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("cannot parse snapshot: %w", err)
	}
	for _, key := range snapshotKeys {
		if _, ok := keys[key]; !ok {
			return fmt.Errorf("%w: missing %q", ErrInvalidSnapshot, key)
		}
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("cannot parse snapshot: %w", err)
	}
	s.transactions = snap.Transactions
	s.accounts = snap.Accounts
	s.categories = snap.Categories
	s.budgets = snap.Budgets
	s.recurring = snap.Recurring
	s.goals = snap.Goals
	s.investments = snap.Investments
	s.debts = snap.Debts
	if ValidTheme(snap.Theme) {
		s.theme = snap.Theme
	}
	s.sortTransactions()
	return nil
}

// Clear resets every collection to empty. Categories are reset to the
// default seed list rather than emptied, which distinguishes a cleared
// store from one whose categories were deliberately deleted.
func (s *Store) Clear() {
	s.accounts = nil
	s.categories = seedCategories()
	s.transactions = nil
	s.budgets = nil
	s.recurring = nil
	s.goals = nil
	s.investments = nil
	s.debts = nil
}
