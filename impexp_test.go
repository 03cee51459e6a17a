package spendwise

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestExportImportRoundTrip(t *testing.T) {
	s, acc := newTestStore(t)
	record(t, s, acc.ID, Income, "Salary", 2000, NewDate(2025, 3, 1))
	record(t, s, acc.ID, Expense, "Groceries", 54.2, NewDate(2025, 3, 14))
	s.SetBudget("Groceries", M(400), NewMonth(2025, 3), "")
	addRecurring(t, s, acc.ID, 1)
	s.AddGoal(Goal{Name: "Vacation", TargetAmount: M(1500), CurrentAmount: M(250)})
	s.AddInvestment(Investment{Name: "Fund", Quantity: 10, PurchasePrice: M(900), CurrentValue: M(1000)})
	s.AddDebt(Debt{Name: "Loan", InitialAmount: M(500), CurrentBalance: M(400), InterestRate: 4.2})
	s.SetTheme(ThemeLight)

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	restored := NewStore()
	if err := restored.Import(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if got := len(restored.Transactions()); got != 2 {
		t.Errorf("got %d transactions, want 2", got)
	}
	if got := restored.Transactions()[1].TotalAmount; !got.Equal(M(2000)) {
		t.Errorf("restored total = %v, want 2000", got)
	}
	if restored.AccountByName("Checking") == nil {
		t.Error("restored store should have the Checking account")
	}
	if got := len(restored.Budgets()); got != 1 {
		t.Errorf("got %d budgets, want 1", got)
	}
	if got := len(restored.RecurringTransactions()); got != 1 {
		t.Errorf("got %d recurring transactions, want 1", got)
	}
	if got := len(restored.Goals()); got != 1 {
		t.Errorf("got %d goals, want 1", got)
	}
	if got := restored.Investments()[0].Quantity; got != 10 {
		t.Errorf("restored quantity = %v, want 10", got)
	}
	if got := restored.Debts()[0].InterestRate; got != 4.2 {
		t.Errorf("restored rate = %v, want 4.2", got)
	}
	if got := restored.Theme(); got != ThemeLight {
		t.Errorf("restored theme = %v, want light", got)
	}
}

func TestExportFormat(t *testing.T) {
	s, acc := newTestStore(t)
	record(t, s, acc.ID, Expense, "Groceries", 54.2, NewDate(2025, 3, 14))

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatal(err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for _, key := range append(slices.Clone(snapshotKeys), "theme") {
		if _, ok := doc[key]; !ok {
			t.Errorf("export is missing key %q", key)
		}
	}
	// Amounts export as plain numbers and dates as ISO strings.
	if !strings.Contains(buf.String(), `"amount": 54.2`) {
		t.Errorf("export should carry plain number amounts:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `"date": "2025-03-14"`) {
		t.Errorf("export should carry ISO dates:\n%s", buf.String())
	}
}

func TestImportRejectsMissingKey(t *testing.T) {
	s, acc := newTestStore(t)
	record(t, s, acc.ID, Expense, "Groceries", 10, NewDate(2025, 3, 1))

	// A valid JSON document missing the budgets collection.
	doc := `{"transactions":[],"accounts":[],"categories":[],` +
		`"recurringTransactions":[],"goals":[],"investments":[],"debts":[]}`

	err := s.Import(strings.NewReader(doc))
	if !errors.Is(err, ErrInvalidSnapshot) {
		t.Fatalf("err = %v, want ErrInvalidSnapshot", err)
	}
	// The store is untouched after a rejected import.
	if got := len(s.Transactions()); got != 1 {
		t.Errorf("got %d transactions after rejected import, want 1", got)
	}
}

func TestImportRejectsBadJSON(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.Import(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("Import should fail on malformed JSON")
	}
	if errors.Is(err, ErrInvalidSnapshot) {
		t.Error("a parse failure is not an ErrInvalidSnapshot")
	}
}

func TestImportIgnoresBadTheme(t *testing.T) {
	s := NewStore()
	doc := `{"transactions":[],"accounts":[],"categories":[],"budgets":[],` +
		`"recurringTransactions":[],"goals":[],"investments":[],"debts":[],"theme":"solarized"}`
	if err := s.Import(strings.NewReader(doc)); err != nil {
		t.Fatal(err)
	}
	if got := s.Theme(); got != ThemeDark {
		t.Errorf("theme = %v, want the previous theme kept", got)
	}
}

func TestClear(t *testing.T) {
	s, acc := newTestStore(t)
	record(t, s, acc.ID, Expense, "Groceries", 10, NewDate(2025, 3, 1))
	s.SetBudget("Groceries", M(400), NewMonth(2025, 3), "")
	s.AddGoal(Goal{Name: "Vacation", TargetAmount: M(100)})

	s.Clear()

	if len(s.Accounts()) != 0 || len(s.Transactions()) != 0 || len(s.Budgets()) != 0 || len(s.Goals()) != 0 {
		t.Error("Clear should empty every collection")
	}
	if got := s.CategoryNames(); !slices.Equal(got, DefaultCategoryNames) {
		t.Errorf("Clear should reseed the categories, got %v", got)
	}
}

func TestExportFilename(t *testing.T) {
	at := time.Date(2024, 1, 31, 15, 30, 5, 0, time.UTC)
	if got, want := ExportFilename(at), "spendwise_backup_20240131_153005.json"; got != want {
		t.Errorf("ExportFilename = %q, want %q", got, want)
	}
}
