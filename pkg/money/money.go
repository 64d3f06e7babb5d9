package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// FromDecimal creates a new Money instance from a decimal.Decimal
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Grouped formats the amount rounded to whole dollars with comma
// separators, e.g. 1234567.89 -> "$1,234,568".
func (m Money) Grouped() string {
	s := m.Decimal.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Compact formats large amounts in abbreviated form: amounts of a
// million or more as "$1.7M", a thousand or more as "$450K", and
// everything else as whole dollars.
func (m Money) Compact() string {
	million := decimal.NewFromInt(1000000)
	thousand := decimal.NewFromInt(1000)
	switch {
	case m.Decimal.GreaterThanOrEqual(million):
		return "$" + m.Decimal.Div(million).StringFixed(1) + "M"
	case m.Decimal.GreaterThanOrEqual(thousand):
		return "$" + m.Decimal.Div(thousand).StringFixed(0) + "K"
	default:
		return "$" + m.Decimal.StringFixed(0)
	}
}
