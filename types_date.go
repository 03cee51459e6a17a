package spendwise

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// MonthFormat is the format used to represent calendar months as strings.
const MonthFormat = "2006-01"

// Date represents a calendar date with day-level granularity. Transactions
// carry no time component, so a Date is the finest unit the tracker knows.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the calendar month containing the date.
func (d Date) Month() Month { return Month{y: d.y, m: d.m} }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to, or
// after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json.Unmarshaler interface for Date.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*d = NewDate(on.Date())
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Month represents a calendar month, the natural period for budgets and
// trend series.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	// Normalize through NewDate so month 13 becomes January of next year.
	d := NewDate(year, month, 1)
	return Month{y: d.y, m: d.m}
}

// ThisMonth returns the month containing today.
func ThisMonth() Month { return Today().Month() }

// String formats the month as "YYYY-MM".
func (m Month) String() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}

// Label formats the month for display, e.g. "Jan 2024".
func (m Month) Label() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// Start returns the first day of the month.
func (m Month) Start() Date { return NewDate(m.y, m.m, 1) }

// End returns the last day of the month.
func (m Month) End() Date { return NewDate(m.y, m.m+1, 0) }

// Contains reports whether the date falls within the month.
func (m Month) Contains(d Date) bool { return d.y == m.y && d.m == m.m }

// Before reports whether m is chronologically before x.
func (m Month) Before(x Month) bool {
	return m.y < x.y || (m.y == x.y && m.m < x.m)
}

// Compare returns -1, 0 or +1 depending on whether m is before, equal to, or
// after x.
func (m Month) Compare(x Month) int {
	switch {
	case m.Before(x):
		return -1
	case x.Before(m):
		return 1
	default:
		return 0
	}
}

// ParseMonth parses a Month from its "YYYY-MM" string form.
func ParseMonth(str string) (Month, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(MonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return Month{y: on.Year(), m: on.Month()}, nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// UnmarshalJSON implements the json.Unmarshaler interface for Month.
func (m *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Month.
func (m Month) MarshalJSON() ([]byte, error) {
	str := m.String()
	return json.Marshal(&str)
}

// Range represents a range of dates, both boundaries included. The zero
// value of either boundary means that side is open.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// IsZero reports whether both boundaries are open.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }
