package spendwise

import "testing"

func TestInvestmentCRUD(t *testing.T) {
	s := NewStore()
	inv := s.AddInvestment(Investment{Name: "Fund", Quantity: 10, PurchasePrice: M(955), CurrentValue: M(1020)})
	if inv.ID == "" {
		t.Fatal("AddInvestment must assign an id")
	}

	inv.CurrentValue = M(1100)
	s.UpdateInvestment(*inv)
	if got := s.Investment(inv.ID).CurrentValue; !got.Equal(M(1100)) {
		t.Errorf("CurrentValue = %v, want 1100", got)
	}

	s.DeleteInvestment(inv.ID)
	if s.Investment(inv.ID) != nil {
		t.Error("investment should be gone")
	}
}

func TestInvestmentGain(t *testing.T) {
	tests := []struct {
		name     string
		inv      Investment
		wantGain Money
		wantPct  Percent
	}{
		{"gain", Investment{PurchasePrice: M(1000), CurrentValue: M(1100)}, M(100), 10},
		{"loss", Investment{PurchasePrice: M(1000), CurrentValue: M(900)}, M(-100), -10},
		{"zero basis", Investment{PurchasePrice: M(0), CurrentValue: M(50)}, M(50), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gain, pct := tt.inv.Gain()
			if !gain.Equal(tt.wantGain) {
				t.Errorf("gain = %v, want %v", gain, tt.wantGain)
			}
			if !pct.Equal(tt.wantPct) {
				t.Errorf("pct = %v, want %v", pct, tt.wantPct)
			}
		})
	}
}
