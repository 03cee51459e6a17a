package spendwise

import "slices"

// Goal is a savings target the user funds over time.
type Goal struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TargetAmount  Money  `json:"targetAmount"`
	CurrentAmount Money  `json:"currentAmount"`
	TargetDate    *Date  `json:"targetDate,omitempty"`
}

// Goal returns the goal with the given id, or nil.
func (s *Store) Goal(id string) *Goal {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return &s.goals[i]
		}
	}
	return nil
}

// AddGoal creates a goal. The id is assigned here.
func (s *Store) AddGoal(g Goal) *Goal {
	g.ID = newID()
	s.goals = append(s.goals, g)
	return &s.goals[len(s.goals)-1]
}

// UpdateGoal replaces the goal with a matching id. An unknown id is a no-op.
func (s *Store) UpdateGoal(g Goal) {
	for i := range s.goals {
		if s.goals[i].ID == g.ID {
			s.goals[i] = g
			return
		}
	}
}

// DeleteGoal removes the goal with the given id.
func (s *Store) DeleteGoal(id string) {
	s.goals = slices.DeleteFunc(s.goals, func(g Goal) bool { return g.ID == id })
}

// Progress returns how far along the goal is, as a percentage of the target
// capped at 100, and the amount still missing (never negative).
func (g Goal) Progress() (Percent, Money) {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		remaining = Money{}
	}
	if !g.TargetAmount.IsPositive() {
		return 0, remaining
	}
	p := g.CurrentAmount.DivPercent(g.TargetAmount)
	if p > 100 {
		p = 100
	}
	return p, remaining
}
