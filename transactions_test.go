package spendwise

import (
	"errors"
	"slices"
	"testing"
)

func TestAddTransaction(t *testing.T) {
	s, acc := newTestStore(t)

	tx, err := s.AddTransaction(Transaction{
		AccountID: acc.ID,
		Splits: []Split{
			{Category: "Groceries", Amount: M(40)},
			{Category: "Entertainment", Amount: M(15)},
		},
		Date: NewDate(2025, 3, 14),
		Type: Expense,
	})
	if err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}
	if tx.ID == "" {
		t.Error("AddTransaction must assign an id")
	}
	if !tx.TotalAmount.Equal(M(55)) {
		t.Errorf("TotalAmount = %v, want 55", tx.TotalAmount)
	}
}

func TestAddTransactionRejects(t *testing.T) {
	s, acc := newTestStore(t)

	_, err := s.AddTransaction(Transaction{
		AccountID: "nope",
		Splits:    []Split{{Category: "Groceries", Amount: M(10)}},
		Date:      NewDate(2025, 3, 1),
		Type:      Expense,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown account: err = %v, want ErrNotFound", err)
	}

	_, err = s.AddTransaction(Transaction{AccountID: acc.ID, Date: NewDate(2025, 3, 1), Type: Expense})
	if err == nil {
		t.Error("a transaction without splits should be rejected")
	}
}

func TestTransactionsSortedByDateDescending(t *testing.T) {
	s, acc := newTestStore(t)
	record(t, s, acc.ID, Expense, "Groceries", 10, NewDate(2025, 3, 10))
	record(t, s, acc.ID, Expense, "Groceries", 20, NewDate(2025, 3, 20))
	first := record(t, s, acc.ID, Expense, "Groceries", 30, NewDate(2025, 3, 20))
	record(t, s, acc.ID, Expense, "Groceries", 40, NewDate(2025, 3, 1))

	var dates []string
	for _, tx := range s.Transactions() {
		dates = append(dates, tx.Date.String())
	}
	want := []string{"2025-03-20", "2025-03-20", "2025-03-10", "2025-03-01"}
	if !slices.Equal(dates, want) {
		t.Errorf("dates = %v, want %v", dates, want)
	}
	// The sort is stable: same-day transactions keep insertion order.
	if got := s.Transactions()[1].ID; got != first.ID {
		t.Error("same-day transactions should keep their insertion order")
	}
}

func TestUpdateTransactionRecomputesTotal(t *testing.T) {
	s, acc := newTestStore(t)
	tx := record(t, s, acc.ID, Expense, "Groceries", 40, NewDate(2025, 3, 1))

	edited := *tx
	edited.Splits = []Split{{Category: "Groceries", Amount: M(70)}}
	edited.TotalAmount = M(1) // must be ignored and recomputed
	s.UpdateTransaction(edited)

	if got := s.Transaction(tx.ID).TotalAmount; !got.Equal(M(70)) {
		t.Errorf("TotalAmount = %v, want 70", got)
	}
}

func TestDeleteTransactions(t *testing.T) {
	s, acc := newTestStore(t)
	a := record(t, s, acc.ID, Expense, "Groceries", 10, NewDate(2025, 3, 1))
	b := record(t, s, acc.ID, Expense, "Groceries", 20, NewDate(2025, 3, 2))
	c := record(t, s, acc.ID, Expense, "Groceries", 30, NewDate(2025, 3, 3))

	s.DeleteTransaction(a.ID)
	s.DeleteTransactions([]string{b.ID, c.ID, "nope"})

	if got := len(s.Transactions()); got != 0 {
		t.Errorf("got %d transactions, want 0", got)
	}
}

func TestUpdateSelectedTransactions(t *testing.T) {
	s, acc := newTestStore(t)
	other := s.AddAccount("Savings")
	single := record(t, s, acc.ID, Expense, "Groceries", 10, NewDate(2025, 3, 1))
	multi, err := s.AddTransaction(Transaction{
		AccountID: acc.ID,
		Splits: []Split{
			{Category: "Groceries", Amount: M(40)},
			{Category: "Entertainment", Amount: M(15)},
		},
		Date: NewDate(2025, 3, 2),
		Type: Expense,
	})
	if err != nil {
		t.Fatal(err)
	}
	untouched := record(t, s, acc.ID, Expense, "Transport", 5, NewDate(2025, 3, 3))

	category := "Food"
	s.UpdateSelectedTransactions([]string{single.ID, multi.ID}, BulkChange{
		AccountID: &other.ID,
		Category:  &category,
	})

	if got := s.Transaction(single.ID); got.AccountID != other.ID || got.Splits[0].Category != "Food" {
		t.Errorf("single-split edit = %+v, want account moved and recategorized", got)
	}
	if got := s.Transaction(multi.ID); got.Splits[0].Category != "Groceries" {
		t.Error("a category change must not touch multi-split transactions")
	}
	if got := s.Transaction(multi.ID); got.AccountID != other.ID {
		t.Error("the account change applies to multi-split transactions too")
	}
	if got := s.Transaction(untouched.ID); got.AccountID != acc.ID {
		t.Error("unselected transactions must not change")
	}
}

func TestBulkTagModes(t *testing.T) {
	tests := []struct {
		name string
		mode TagEditMode
		edit []string
		want []string
	}{
		{"replace", TagsReplace, []string{"new"}, []string{"new"}},
		{"add unions", TagsAdd, []string{"food", "weekend"}, []string{"weekend", "market", "food"}},
		{"remove differences", TagsRemove, []string{"market", "absent"}, []string{"weekend"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, acc := newTestStore(t)
			tx, err := s.AddTransaction(Transaction{
				AccountID: acc.ID,
				Splits:    []Split{{Category: "Groceries", Amount: M(10)}},
				Date:      NewDate(2025, 3, 1),
				Type:      Expense,
				Tags:      []string{"weekend", "market"},
			})
			if err != nil {
				t.Fatal(err)
			}
			s.UpdateSelectedTransactions([]string{tx.ID}, BulkChange{Tags: tt.edit, TagMode: tt.mode})
			if got := s.Transaction(tx.ID).Tags; !slices.Equal(got, tt.want) {
				t.Errorf("tags = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"  ", nil},
		{"a,b", []string{"a", "b"}},
		{" a , , b ", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if got := ParseTags(tt.input); !slices.Equal(got, tt.want) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseTxType(t *testing.T) {
	if _, err := ParseTxType("income"); err != nil {
		t.Errorf("ParseTxType(income): %v", err)
	}
	if _, err := ParseTxType("transfer"); err == nil {
		t.Error("ParseTxType(transfer) should fail")
	}
}
