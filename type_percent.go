package spendwise

import "fmt"

// Percent is a percentage value, e.g. a savings rate or budget progress.
type Percent float64

// Equal compares two percentages up to a hundredth of a percent, absorbing
// float rounding from the rate divisions that produce them.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString formats with an explicit sign, rendering zero as "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
