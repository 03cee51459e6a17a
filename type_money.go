package spendwise

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// displayCurrency is the single currency every amount is denominated in.
// The tracker is deliberately single-currency; the code only selects the
// formatting (symbol, fraction digits) used for display.
var displayCurrency = money.USD

// SetDisplayCurrency selects the ISO 4217 currency code used to format
// amounts. Unknown codes are ignored.
func SetDisplayCurrency(code string) {
	if c := money.GetCurrency(code); c != nil {
		displayCurrency = c.Code
	}
}

// Money represents a monetary value as an exact decimal. Amounts are
// signed-magnitude: splits and budgets always carry positive values, the
// income/expense type provides the sign.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from a numeric constant.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal amount from its string form.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

// String formats the amount with the display currency's symbol and fraction
// digits, e.g. "$1,050.00".
func (m Money) String() string {
	cur := money.New(0, displayCurrency).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but prefixes positive amounts with "+" and
// renders zero as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }

// DivPercent returns m/n as a percentage. It is the caller's responsibility
// to guard against a zero divisor.
func (m Money) DivPercent(n Money) Percent {
	f, _ := m.value.Div(n.value).Mul(decimal.NewFromInt(100)).Float64()
	return Percent(f)
}

// MarshalJSON writes the amount as a plain JSON number, matching the
// snapshot format the original data files use.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON reads a plain JSON number (quoted numbers are accepted too).
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}

// newDecimal is a convenient factory for decimal.Decimal.
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}
