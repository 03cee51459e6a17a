package spendwise

import (
	"errors"
	"slices"

	"github.com/google/uuid"
)

// Sentinel errors returned by mutation operations. Expected validation
// failures are reported through these (or as silent no-ops); the core never
// panics on user input.
var (
	// ErrNotFound is returned when an operation targets an id that is not
	// in the store.
	ErrNotFound = errors.New("not found")
	// ErrCategoryInUse is returned when deleting a category still
	// referenced by a transaction split, budget or recurring template.
	ErrCategoryInUse = errors.New("category is in use")
	// ErrAlreadyPosted is returned when posting a recurring template that
	// has already been posted in the target month.
	ErrAlreadyPosted = errors.New("recurring transaction already posted this month")
)

// Theme is the user interface theme preference. It is not interpreted by
// the core but travels with the snapshot like the original data files do.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ValidTheme reports whether t is one of the known themes.
func ValidTheme(t Theme) bool { return t == ThemeLight || t == ThemeDark }

// DefaultCategoryNames is the seed list a fresh (or cleared) store starts
// with. An empty category list means the user deleted them on purpose.
var DefaultCategoryNames = []string{
	"Groceries", "Utilities", "Salary", "Rent", "Entertainment", "Transport", "Other",
}

// Store holds the normalized collections of every entity the tracker knows
// about. It is the single source of truth: all reads derive from it and all
// writes go through its mutation methods.
//
// A Store is not safe for concurrent use; the application is single-threaded
// by design.
type Store struct {
	accounts     []Account
	categories   []Category
	transactions []Transaction
	budgets      []Budget
	recurring    []RecurringTransaction
	goals        []Goal
	investments  []Investment
	debts        []Debt
	theme        Theme
}

// NewStore creates a store with the default seed categories and theme.
func NewStore() *Store {
	return &Store{
		categories: seedCategories(),
		theme:      ThemeDark,
	}
}

func seedCategories() []Category {
	cats := make([]Category, 0, len(DefaultCategoryNames))
	for _, name := range DefaultCategoryNames {
		cats = append(cats, Category{ID: newID(), Name: name})
	}
	return cats
}

// newID returns a fresh opaque identifier for a new entity.
func newID() string { return uuid.NewString() }

// Theme returns the stored theme preference.
func (s *Store) Theme() Theme { return s.theme }

// SetTheme stores the theme preference. Unknown values are ignored.
func (s *Store) SetTheme(t Theme) {
	if ValidTheme(t) {
		s.theme = t
	}
}

// Accounts returns a copy of the account collection.
func (s *Store) Accounts() []Account { return slices.Clone(s.accounts) }

// Categories returns a copy of the category collection.
func (s *Store) Categories() []Category { return slices.Clone(s.categories) }

// Transactions returns a copy of the transaction collection, ordered by
// date descending. Splits and tags are copied too; mutating the result
// cannot reach store state.
func (s *Store) Transactions() []Transaction {
	out := make([]Transaction, len(s.transactions))
	for i, tx := range s.transactions {
		out[i] = tx.clone()
	}
	return out
}

// Budgets returns a copy of the budget collection.
func (s *Store) Budgets() []Budget { return slices.Clone(s.budgets) }

// RecurringTransactions returns a copy of the recurring template
// collection, tags and posting dates included.
func (s *Store) RecurringTransactions() []RecurringTransaction {
	out := make([]RecurringTransaction, len(s.recurring))
	for i, r := range s.recurring {
		out[i] = r.clone()
	}
	return out
}

// Goals returns a copy of the goal collection.
func (s *Store) Goals() []Goal { return slices.Clone(s.goals) }

// Investments returns a copy of the investment collection.
func (s *Store) Investments() []Investment { return slices.Clone(s.investments) }

// Debts returns a copy of the debt collection.
func (s *Store) Debts() []Debt { return slices.Clone(s.debts) }
