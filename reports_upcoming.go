package spendwise

import "slices"

// DefaultUpcomingLimit bounds the upcoming-obligations preview.
const DefaultUpcomingLimit = 5

// Upcoming returns the recurring templates still due later in the month of
// 'today': their day of month has not passed yet and they have not been
// posted this month. The result is ordered ascending by day of month and
// capped to limit entries (DefaultUpcomingLimit when limit <= 0).
func (s *Store) Upcoming(today Date, limit int) []RecurringTransaction {
	if today.IsZero() {
		today = Today()
	}
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	month := today.Month()
	var due []RecurringTransaction
	for _, r := range s.recurring {
		if r.DayOfMonth < today.Day() {
			continue
		}
		if r.LastPosted != nil && r.LastPosted.Month() == month {
			continue
		}
		due = append(due, r.clone())
	}
	slices.SortStableFunc(due, func(a, b RecurringTransaction) int {
		return a.DayOfMonth - b.DayOfMonth
	})
	if len(due) > limit {
		due = due[:limit]
	}
	return due
}
