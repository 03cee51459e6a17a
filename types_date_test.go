package spendwise

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2025-03-14 ", NewDate(2025, time.March, 14), false},
		{"invalid-date", Date{}, true},
		{"2025/01/15", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.err {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected an error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateNormalization(t *testing.T) {
	// Overflowing day and month values normalize like time.Date does.
	if got, want := NewDate(2025, time.January, 32), NewDate(2025, time.February, 1); got != want {
		t.Errorf("NewDate(2025, 1, 32) = %v, want %v", got, want)
	}
	if got, want := NewDate(2025, 13, 1), NewDate(2026, time.January, 1); got != want {
		t.Errorf("NewDate(2025, 13, 1) = %v, want %v", got, want)
	}
	if got, want := NewDate(2025, time.March, 0), NewDate(2025, time.February, 28); got != want {
		t.Errorf("NewDate(2025, 3, 0) = %v, want %v", got, want)
	}
}

func TestDateCompare(t *testing.T) {
	a := NewDate(2025, time.March, 1)
	b := NewDate(2025, time.March, 2)

	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() is inconsistent for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After() is inconsistent for %v and %v", a, b)
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare() is inconsistent for %v and %v", a, b)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.March, 14)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-03-14"` {
		t.Errorf("Marshal = %s, want %q", data, "2025-03-14")
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
	// Legacy files carry single-digit months and days.
	if err := json.Unmarshal([]byte(`"2025-7-1"`), &back); err != nil {
		t.Fatalf("lenient parse: %v", err)
	}
	if back != NewDate(2025, time.July, 1) {
		t.Errorf("lenient parse = %v, want 2025-07-01", back)
	}
}

func TestMonth(t *testing.T) {
	m := NewMonth(2025, time.February)

	if got := m.String(); got != "2025-02" {
		t.Errorf("String() = %q, want %q", got, "2025-02")
	}
	if got := m.Label(); got != "Feb 2025" {
		t.Errorf("Label() = %q, want %q", got, "Feb 2025")
	}
	if got, want := m.Start(), NewDate(2025, time.February, 1); got != want {
		t.Errorf("Start() = %v, want %v", got, want)
	}
	if got, want := m.End(), NewDate(2025, time.February, 28); got != want {
		t.Errorf("End() = %v, want %v", got, want)
	}
	if !m.Contains(NewDate(2025, time.February, 15)) {
		t.Error("Contains() should include a mid-month date")
	}
	if m.Contains(NewDate(2025, time.March, 1)) {
		t.Error("Contains() should exclude the next month")
	}
}

func TestMonthCompare(t *testing.T) {
	jan := NewMonth(2025, time.January)
	dec := NewMonth(2024, time.December)

	if !dec.Before(jan) {
		t.Error("2024-12 should be before 2025-01")
	}
	if jan.Compare(dec) != 1 || dec.Compare(jan) != -1 || jan.Compare(jan) != 0 {
		t.Error("Compare() is inconsistent across a year boundary")
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2025-02")
	if err != nil {
		t.Fatal(err)
	}
	if got != NewMonth(2025, time.February) {
		t.Errorf("ParseMonth = %v, want 2025-02", got)
	}
	if _, err := ParseMonth("2025-2"); err == nil {
		t.Error("ParseMonth should reject a single-digit month")
	}
}

func TestRangeContains(t *testing.T) {
	from := NewDate(2025, time.March, 1)
	to := NewDate(2025, time.March, 31)
	tests := []struct {
		name string
		r    Range
		date Date
		want bool
	}{
		{"inside", NewRange(from, to), NewDate(2025, time.March, 15), true},
		{"on from boundary", NewRange(from, to), from, true},
		{"on to boundary", NewRange(from, to), to, true},
		{"before", NewRange(from, to), NewDate(2025, time.February, 28), false},
		{"after", NewRange(from, to), NewDate(2025, time.April, 1), false},
		{"open start", Range{To: to}, NewDate(2000, time.January, 1), true},
		{"open end", Range{From: from}, NewDate(2030, time.January, 1), true},
		{"zero range matches everything", Range{}, NewDate(2025, time.June, 6), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.date); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestNewRangeSwaps(t *testing.T) {
	from := NewDate(2025, time.March, 31)
	to := NewDate(2025, time.March, 1)
	r := NewRange(from, to)
	if r.From != to || r.To != from {
		t.Errorf("NewRange should swap inverted boundaries, got %+v", r)
	}
}
