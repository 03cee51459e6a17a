package spendwise

import "testing"

func TestGoalCRUD(t *testing.T) {
	s := NewStore()
	g := s.AddGoal(Goal{Name: "Vacation", TargetAmount: M(1500)})
	if g.ID == "" {
		t.Fatal("AddGoal must assign an id")
	}

	g.CurrentAmount = M(250)
	s.UpdateGoal(*g)
	if got := s.Goal(g.ID).CurrentAmount; !got.Equal(M(250)) {
		t.Errorf("CurrentAmount = %v, want 250", got)
	}

	s.DeleteGoal(g.ID)
	if s.Goal(g.ID) != nil {
		t.Error("goal should be gone")
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name          string
		goal          Goal
		wantPct       Percent
		wantRemaining Money
	}{
		{"partway", Goal{TargetAmount: M(1000), CurrentAmount: M(250)}, 25, M(750)},
		{"complete", Goal{TargetAmount: M(1000), CurrentAmount: M(1000)}, 100, M(0)},
		{"overfunded caps", Goal{TargetAmount: M(1000), CurrentAmount: M(1500)}, 100, M(0)},
		{"zero target", Goal{TargetAmount: M(0), CurrentAmount: M(50)}, 0, M(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, remaining := tt.goal.Progress()
			if !pct.Equal(tt.wantPct) {
				t.Errorf("progress = %v, want %v", pct, tt.wantPct)
			}
			if !remaining.Equal(tt.wantRemaining) {
				t.Errorf("remaining = %v, want %v", remaining, tt.wantRemaining)
			}
		})
	}
}
