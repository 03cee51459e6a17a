package spendwise

import (
	"fmt"
	"slices"
	"strings"
)

// Category is a named bucket transaction splits, budgets and recurring
// templates refer to. Those references are by name, matching the snapshot
// format of the original data files; RenameCategory keeps them consistent.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category returns the category with the given id, or nil if unknown.
func (s *Store) Category(id string) *Category {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return &s.categories[i]
		}
	}
	return nil
}

// CategoryByName returns the category with the given name
// (case-insensitive), or nil if unknown.
func (s *Store) CategoryByName(name string) *Category {
	for i := range s.categories {
		if strings.EqualFold(s.categories[i].Name, name) {
			return &s.categories[i]
		}
	}
	return nil
}

// CategoryNames returns the names of all categories, in store order.
func (s *Store) CategoryNames() []string {
	names := make([]string, 0, len(s.categories))
	for _, c := range s.categories {
		names = append(names, c.Name)
	}
	return names
}

// AddCategory creates a category with the trimmed name and reports whether
// it was added. A blank name or a case-insensitive duplicate is rejected.
func (s *Store) AddCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || s.CategoryByName(name) != nil {
		return false
	}
	s.categories = append(s.categories, Category{ID: newID(), Name: name})
	return true
}

// RenameCategory renames the category and cascade-updates every transaction
// split, budget and recurring template carrying the old name, so no
// reference is orphaned by the rename.
func (s *Store) RenameCategory(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("rename category: blank name")
	}
	cat := s.Category(id)
	if cat == nil {
		return fmt.Errorf("rename category %q: %w", id, ErrNotFound)
	}
	if dup := s.CategoryByName(name); dup != nil && dup.ID != id {
		return fmt.Errorf("rename category: %q already exists", name)
	}
	old := cat.Name
	cat.Name = name
	for ti := range s.transactions {
		for si := range s.transactions[ti].Splits {
			if s.transactions[ti].Splits[si].Category == old {
				s.transactions[ti].Splits[si].Category = name
			}
		}
	}
	for i := range s.budgets {
		if s.budgets[i].Category == old {
			s.budgets[i].Category = name
		}
	}
	for i := range s.recurring {
		if s.recurring[i].Category == old {
			s.recurring[i].Category = name
		}
	}
	return nil
}

// DeleteCategory removes the category, unless it is still referenced by a
// transaction split, a budget or a recurring template, in which case it
// returns ErrCategoryInUse and leaves the store untouched. Deleting an
// unknown id is a no-op.
func (s *Store) DeleteCategory(id string) error {
	cat := s.Category(id)
	if cat == nil {
		return nil
	}
	if s.categoryInUse(cat.Name) {
		return fmt.Errorf("cannot delete category %q: %w", cat.Name, ErrCategoryInUse)
	}
	s.categories = slices.DeleteFunc(s.categories, func(c Category) bool { return c.ID == id })
	return nil
}

func (s *Store) categoryInUse(name string) bool {
	for _, tx := range s.transactions {
		for _, split := range tx.Splits {
			if split.Category == name {
				return true
			}
		}
	}
	for _, b := range s.budgets {
		if b.Category == name {
			return true
		}
	}
	for _, r := range s.recurring {
		if r.Category == name {
			return true
		}
	}
	return false
}
