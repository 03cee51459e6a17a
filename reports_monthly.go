package spendwise

import "slices"

// MonthlySummary is one point of the income/expense trend series.
type MonthlySummary struct {
	Month   Month
	Income  Money
	Expense Money
	Net     Money // Income - Expense
}

// MonthlySeries groups all transactions by calendar month and accumulates
// income and expense totals per month. The series is ordered ascending by
// month, independent of the storage order of the transactions.
func (s *Store) MonthlySeries() []MonthlySummary {
	index := make(map[Month]int)
	var series []MonthlySummary
	for _, tx := range s.transactions {
		month := tx.Date.Month()
		i, ok := index[month]
		if !ok {
			i = len(series)
			index[month] = i
			series = append(series, MonthlySummary{Month: month})
		}
		if tx.Type == Income {
			series[i].Income = series[i].Income.Add(tx.TotalAmount)
		} else {
			series[i].Expense = series[i].Expense.Add(tx.TotalAmount)
		}
	}
	for i := range series {
		series[i].Net = series[i].Income.Sub(series[i].Expense)
	}
	slices.SortFunc(series, func(a, b MonthlySummary) int { return a.Month.Compare(b.Month) })
	return series
}

// SavingsRate is the income/expense balance of one month. Rate is savings
// over income, zero when the month had no income.
type SavingsRate struct {
	Month   Month
	Income  Money
	Expense Money
	Savings Money
	Rate    Percent
}

// SavingsRateFor computes the savings rate restricted to one calendar month.
func (s *Store) SavingsRateFor(month Month) SavingsRate {
	rate := SavingsRate{Month: month}
	for _, tx := range s.transactions {
		if !month.Contains(tx.Date) {
			continue
		}
		if tx.Type == Income {
			rate.Income = rate.Income.Add(tx.TotalAmount)
		} else {
			rate.Expense = rate.Expense.Add(tx.TotalAmount)
		}
	}
	rate.Savings = rate.Income.Sub(rate.Expense)
	if rate.Income.IsPositive() {
		rate.Rate = rate.Savings.DivPercent(rate.Income)
	}
	return rate
}
