package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
)

// Formatter formats amounts in one currency.
type Formatter struct {
	currency string
}

// NewFormatter returns a formatter for the ISO 4217 code. Unknown codes
// fall back to EUR.
func NewFormatter(code string) Formatter {
	code = strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(code) == nil {
		code = money.EUR
	}
	return Formatter{currency: code}
}

// Currency returns the ISO code in use.
func (f Formatter) Currency() string { return f.currency }

// Money formats v with cents.
func (f Formatter) Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	cur := money.GetCurrency(f.currency)
	minor := math.Round(v * math.Pow10(cur.Fraction))
	return money.New(int64(minor), f.currency).Display()
}

// Whole formats v rounded to whole currency units.
func (f Formatter) Whole(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	cur := money.GetCurrency(f.currency)
	return money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template).
		Format(int64(math.Round(v)))
}

// Percent formats a fraction such as 0.25 as "25.0%".
func Percent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// Points formats a value already expressed in percent.
func Points(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// Months formats an optional month count.
func Months(n *int) string {
	if n == nil {
		return "never"
	}
	return fmt.Sprintf("%d", *n)
}

// Years formats an optional fractional year count.
func Years(y *float64) string {
	if y == nil {
		return "never"
	}
	return fmt.Sprintf("%.1f", *y)
}
