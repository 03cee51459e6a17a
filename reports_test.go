package spendwise

import "testing"

func TestAccountBalance(t *testing.T) {
	s, acc := newTestStore(t)
	other := s.AddAccount("Savings")
	record(t, s, acc.ID, Income, "Salary", 2000, NewDate(2025, 3, 1))
	record(t, s, acc.ID, Expense, "Groceries", 300, NewDate(2025, 3, 5))
	record(t, s, other.ID, Income, "Salary", 500, NewDate(2025, 3, 1))

	if got := s.AccountBalance(acc.ID); !got.Equal(M(1700)) {
		t.Errorf("AccountBalance = %v, want 1700", got)
	}
	if got := s.AccountBalance("nope"); !got.IsZero() {
		t.Errorf("unknown account balance = %v, want 0", got)
	}
	if got := s.TotalBalance(); !got.Equal(M(2200)) {
		t.Errorf("TotalBalance = %v, want 2200", got)
	}
}

func TestNetWorth(t *testing.T) {
	s, acc := newTestStore(t)
	record(t, s, acc.ID, Income, "Salary", 2000, NewDate(2025, 3, 1))
	s.AddInvestment(Investment{Name: "Fund", PurchasePrice: M(900), CurrentValue: M(1000)})
	s.AddDebt(Debt{Name: "Loan", InitialAmount: M(500), CurrentBalance: M(400)})

	if got := s.NetWorth(); !got.Equal(M(2600)) {
		t.Errorf("NetWorth = %v, want 2000 + 1000 - 400 = 2600", got)
	}
}

func TestMonthlySeries(t *testing.T) {
	s, acc := newTestStore(t)
	record(t, s, acc.ID, Income, "Salary", 2000, NewDate(2025, 3, 1))
	record(t, s, acc.ID, Expense, "Groceries", 800, NewDate(2025, 3, 10))
	record(t, s, acc.ID, Expense, "Rent", 1200, NewDate(2025, 2, 1))
	record(t, s, acc.ID, Income, "Salary", 2000, NewDate(2025, 2, 1))

	series := s.MonthlySeries()
	if len(series) != 2 {
		t.Fatalf("got %d months, want 2", len(series))
	}
	// Ascending by month even though storage is date-descending.
	feb, mar := series[0], series[1]
	if feb.Month != NewMonth(2025, 2) || mar.Month != NewMonth(2025, 3) {
		t.Fatalf("months = %v %v, want 2025-02 then 2025-03", feb.Month, mar.Month)
	}
	if !feb.Net.Equal(M(800)) {
		t.Errorf("Feb net = %v, want 800", feb.Net)
	}
	if !mar.Income.Equal(M(2000)) || !mar.Expense.Equal(M(800)) || !mar.Net.Equal(M(1200)) {
		t.Errorf("Mar = %+v, want income 2000 expense 800 net 1200", mar)
	}
}

func TestSavingsRateFor(t *testing.T) {
	s, acc := newTestStore(t)
	march := NewMonth(2025, 3)
	record(t, s, acc.ID, Income, "Salary", 2000, NewDate(2025, 3, 1))
	record(t, s, acc.ID, Expense, "Groceries", 800, NewDate(2025, 3, 10))
	record(t, s, acc.ID, Expense, "Rent", 999, NewDate(2025, 4, 1)) // next month

	rate := s.SavingsRateFor(march)
	if !rate.Savings.Equal(M(1200)) {
		t.Errorf("Savings = %v, want 1200", rate.Savings)
	}
	if !rate.Rate.Equal(60) {
		t.Errorf("Rate = %v, want 60%%", rate.Rate)
	}
}

func TestSavingsRateNoIncome(t *testing.T) {
	s, acc := newTestStore(t)
	record(t, s, acc.ID, Expense, "Groceries", 800, NewDate(2025, 3, 10))

	rate := s.SavingsRateFor(NewMonth(2025, 3))
	if !rate.Rate.Equal(0) {
		t.Errorf("Rate without income = %v, want 0", rate.Rate)
	}
	if !rate.Savings.Equal(M(-800)) {
		t.Errorf("Savings = %v, want -800", rate.Savings)
	}
}

func TestNewSummary(t *testing.T) {
	s, acc := newTestStore(t)
	record(t, s, acc.ID, Income, "Salary", 2000, NewDate(2025, 3, 1))
	record(t, s, acc.ID, Expense, "Groceries", 800, NewDate(2025, 3, 10))
	s.AddInvestment(Investment{Name: "Fund", PurchasePrice: M(900), CurrentValue: M(1000)})
	s.AddDebt(Debt{Name: "Loan", InitialAmount: M(500), CurrentBalance: M(400)})

	sum := NewSummary(s, NewDate(2025, 3, 31))

	if len(sum.Accounts) != 1 || !sum.Accounts[0].Balance.Equal(M(1200)) {
		t.Errorf("Accounts = %+v, want one account at 1200", sum.Accounts)
	}
	if !sum.NetWorth.Equal(M(1800)) {
		t.Errorf("NetWorth = %v, want 1200 + 1000 - 400 = 1800", sum.NetWorth)
	}
	if sum.Savings.Month != NewMonth(2025, 3) {
		t.Errorf("Savings month = %v, want the date's month", sum.Savings.Month)
	}
	if !sum.Savings.Rate.Equal(60) {
		t.Errorf("Savings rate = %v, want 60%%", sum.Savings.Rate)
	}
}
