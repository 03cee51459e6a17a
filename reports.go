package spendwise

// This file holds the balance and net-worth derivations. Like every report
// in this package they are pure functions of the store, recomputed on each
// call so a view can never be stale.

// AccountBalance folds every transaction recorded against the account:
// income adds the total amount, expense subtracts it.
func (s *Store) AccountBalance(accountID string) Money {
	var balance Money
	for _, tx := range s.transactions {
		if tx.AccountID != accountID {
			continue
		}
		if tx.Type == Income {
			balance = balance.Add(tx.TotalAmount)
		} else {
			balance = balance.Sub(tx.TotalAmount)
		}
	}
	return balance
}

// TotalBalance folds all transactions regardless of account.
func (s *Store) TotalBalance() Money {
	var balance Money
	for _, tx := range s.transactions {
		if tx.Type == Income {
			balance = balance.Add(tx.TotalAmount)
		} else {
			balance = balance.Sub(tx.TotalAmount)
		}
	}
	return balance
}

// NetWorth is total account balances plus investment values minus debt
// balances.
func (s *Store) NetWorth() Money {
	worth := s.TotalBalance()
	for _, inv := range s.investments {
		worth = worth.Add(inv.CurrentValue)
	}
	for _, d := range s.debts {
		worth = worth.Sub(d.CurrentBalance)
	}
	return worth
}

// AccountSummary is the balance of one account, for rendering.
type AccountSummary struct {
	Account Account
	Balance Money
}

// Summary provides an at-a-glance overview of the whole store on a given
// date: per-account balances, net worth components and the savings rate of
// the date's month.
type Summary struct {
	Date            Date
	Accounts        []AccountSummary
	TotalBalance    Money
	InvestmentValue Money
	DebtBalance     Money
	NetWorth        Money
	Savings         SavingsRate
}

// NewSummary computes the summary for the given date (today if zero).
func NewSummary(s *Store, on Date) *Summary {
	if on.IsZero() {
		on = Today()
	}
	sum := &Summary{Date: on}
	for _, acc := range s.accounts {
		sum.Accounts = append(sum.Accounts, AccountSummary{Account: acc, Balance: s.AccountBalance(acc.ID)})
	}
	sum.TotalBalance = s.TotalBalance()
	for _, inv := range s.investments {
		sum.InvestmentValue = sum.InvestmentValue.Add(inv.CurrentValue)
	}
	for _, d := range s.debts {
		sum.DebtBalance = sum.DebtBalance.Add(d.CurrentBalance)
	}
	sum.NetWorth = sum.TotalBalance.Add(sum.InvestmentValue).Sub(sum.DebtBalance)
	sum.Savings = s.SavingsRateFor(on.Month())
	return sum
}
