package spendwise

import (
	"fmt"
	"slices"

	"github.com/spendwise/spendwise/kv"
)

// Collection keys in the persistent key-value store. Each collection
// round-trips through JSON under its own key, so a corrupt value only costs
// that one collection.
const (
	keyAccounts     = "accounts"
	keyCategories   = "categories"
	keyTransactions = "transactions"
	keyBudgets      = "budgets"
	keyRecurring    = "recurringTransactions"
	keyGoals        = "goals"
	keyInvestments  = "investments"
	keyDebts        = "debts"
	keyTheme        = "theme"
)

// LoadStore reads every collection from the key-value store. A missing or
// unparseable key falls back to its default (the seed categories, the dark
// theme, empty collections); the corrupt value is simply discarded and will
// be overwritten on the next save.
func LoadStore(db *kv.DB) *Store {
	s := NewStore()
	loadKey(db, keyAccounts, &s.accounts)
	// An explicitly persisted category list wins over the seed, even empty.
	loadKey(db, keyCategories, &s.categories)
	loadKey(db, keyTransactions, &s.transactions)
	loadKey(db, keyBudgets, &s.budgets)
	loadKey(db, keyRecurring, &s.recurring)
	loadKey(db, keyGoals, &s.goals)
	loadKey(db, keyInvestments, &s.investments)
	loadKey(db, keyDebts, &s.debts)
	var theme Theme
	if loadKey(db, keyTheme, &theme) && ValidTheme(theme) {
		s.theme = theme
	}
	s.sortTransactions()
	return s
}

// loadKey reads one key, assigning to target only when the whole value
// decodes, so a corrupt value cannot leave a half-filled collection behind.
func loadKey[T any](db *kv.DB, key string, target *T) bool {
	var v T
	if db.GetJSON(key, &v) != nil {
		return false
	}
	*target = v
	return true
}

// PruneKeys deletes every key the store does not own, returning the pruned
// names sorted. Stray keys can be left behind by older versions of the data
// file; 'sw clear' prunes them along with the data.
func PruneKeys(db *kv.DB) ([]string, error) {
	owned := []string{
		keyAccounts, keyCategories, keyTransactions, keyBudgets,
		keyRecurring, keyGoals, keyInvestments, keyDebts, keyTheme,
	}
	keys, err := db.Keys()
	if err != nil {
		return nil, err
	}
	var pruned []string
	for _, key := range keys {
		if slices.Contains(owned, key) {
			continue
		}
		if err := db.Delete(key); err != nil {
			return pruned, fmt.Errorf("cannot prune %q: %w", key, err)
		}
		pruned = append(pruned, key)
	}
	return pruned, nil
}

// Save flushes every collection to the key-value store. The cmd layer
// calls it after every successful mutation.
func (s *Store) Save(db *kv.DB) error {
	puts := []struct {
		key   string
		value any
	}{
		{keyAccounts, s.accounts},
		{keyCategories, s.categories},
		{keyTransactions, s.transactions},
		{keyBudgets, s.budgets},
		{keyRecurring, s.recurring},
		{keyGoals, s.goals},
		{keyInvestments, s.investments},
		{keyDebts, s.debts},
		{keyTheme, s.theme},
	}
	for _, p := range puts {
		if err := db.PutJSON(p.key, p.value); err != nil {
			return fmt.Errorf("cannot save %q: %w", p.key, err)
		}
	}
	return nil
}
