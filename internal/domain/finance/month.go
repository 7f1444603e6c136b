// Package finance implements the stateless calculations behind the dashboard:
// aggregation, financial profile, analytics, projections and goal tracking.
// Every function is pure: inputs are never mutated, the clock is never read
// and ratios with a zero denominator evaluate to 0.
package finance

import (
	"fmt"
	"time"
)

// MonthLayout is the ISO layout of a calendar month identifier.
const MonthLayout = "2006-01"

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" identifier.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String returns the "YYYY-MM" identifier.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start returns the first day of the month at midnight UTC.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the month at midnight UTC.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, -1)
}

// AddMonths returns the month n months later (earlier when n is negative).
func (m Month) AddMonths(n int) Month {
	return MonthOf(m.Start().AddDate(0, n, 0))
}

// Contains reports whether t falls into the month. The date part of t is
// taken in t's own location so that stored calendar dates are not shifted.
func (m Month) Contains(t time.Time) bool {
	y, mo, _ := t.Date()
	return y == m.Year && mo == m.Month
}

// Before reports whether m is earlier than o.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// TrailingMonths returns the n months ending with the month of ref, oldest first.
func TrailingMonths(ref time.Time, n int) []Month {
	if n < 1 {
		n = 1
	}
	last := MonthOf(ref)
	months := make([]Month, n)
	for i := 0; i < n; i++ {
		months[i] = last.AddMonths(i - n + 1)
	}
	return months
}

// averageDaysPerMonth is used to turn day counts into fractional months.
const averageDaysPerMonth = 365.25 / 12

// monthsBetween returns the fractional number of months from a to b.
// It is negative when b is before a.
func monthsBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24 / averageDaysPerMonth
}
