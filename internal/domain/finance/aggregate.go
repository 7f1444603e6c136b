package finance

import (
	"sort"
	"time"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// CategoryAmount is the summed amount of one category.
type CategoryAmount struct {
	Category string
	Amount   float64
}

// GroupByCategory sums transaction amounts per category. When kind is not
// nil only transactions of that type are counted. Map iteration order is
// undefined; use TopCategories for a ranking.
func GroupByCategory(txs []*entity.Transaction, kind *entity.TransactionType) map[string]float64 {
	totals := make(map[string]float64)
	for _, ca := range groupOrdered(txs, kind) {
		totals[ca.Category] = ca.Amount
	}
	return totals
}

// groupOrdered sums per category and keeps the order of first occurrence.
func groupOrdered(txs []*entity.Transaction, kind *entity.TransactionType) []CategoryAmount {
	index := make(map[string]int)
	var out []CategoryAmount
	for _, tx := range txs {
		if tx == nil || (kind != nil && tx.Type != *kind) {
			continue
		}
		cat := entity.NormalizeCategory(tx.Category)
		i, ok := index[cat]
		if !ok {
			i = len(out)
			index[cat] = i
			out = append(out, CategoryAmount{Category: cat})
		}
		out[i].Amount += tx.Amount
	}
	return out
}

// TopCategories returns the categories of the given type sorted by amount,
// highest first. Ties keep the order of first occurrence. A limit <= 0
// returns all categories.
func TopCategories(txs []*entity.Transaction, kind entity.TransactionType, limit int) []CategoryAmount {
	grouped := groupOrdered(txs, &kind)
	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].Amount > grouped[j].Amount
	})
	if limit > 0 && len(grouped) > limit {
		grouped = grouped[:limit]
	}
	return grouped
}

// MonthlySummary holds the totals of one calendar month.
type MonthlySummary struct {
	Month            Month
	Income           float64
	Expenses         float64
	Net              float64
	SavingsRate      float64
	TransactionCount int
}

// MonthlySummarize totals the transactions falling into month.
// SavingsRate is Net/Income and 0 when there is no income.
func MonthlySummarize(txs []*entity.Transaction, month Month) MonthlySummary {
	s := MonthlySummary{Month: month}
	for _, tx := range txs {
		if tx == nil || !month.Contains(tx.Date) {
			continue
		}
		s.TransactionCount++
		switch tx.Type {
		case entity.TransactionTypeIncome:
			s.Income += tx.Amount
		case entity.TransactionTypeExpense:
			s.Expenses += tx.Amount
		}
	}
	s.Net = s.Income - s.Expenses
	s.SavingsRate = safeDiv(s.Net, s.Income)
	return s
}

// MonthlyTotals returns one zero-filled summary per month, in the given order.
func MonthlyTotals(txs []*entity.Transaction, months []Month) []MonthlySummary {
	index := make(map[Month]int, len(months))
	out := make([]MonthlySummary, len(months))
	for i, m := range months {
		index[m] = i
		out[i].Month = m
	}
	for _, tx := range txs {
		if tx == nil {
			continue
		}
		i, ok := index[MonthOf(tx.Date)]
		if !ok {
			continue
		}
		out[i].TransactionCount++
		switch tx.Type {
		case entity.TransactionTypeIncome:
			out[i].Income += tx.Amount
		case entity.TransactionTypeExpense:
			out[i].Expenses += tx.Amount
		}
	}
	for i := range out {
		out[i].Net = out[i].Income - out[i].Expenses
		out[i].SavingsRate = safeDiv(out[i].Net, out[i].Income)
	}
	return out
}

// WeeklyTotal holds the totals of one Monday-based week.
type WeeklyTotal struct {
	WeekStart        time.Time
	Income           float64
	Expenses         float64
	Net              float64
	TransactionCount int
}

// WeeklyTotals buckets transactions between from and to (inclusive, by date)
// into Monday-based weeks. Weeks without transactions are included with zeros.
func WeeklyTotals(txs []*entity.Transaction, from, to time.Time) []WeeklyTotal {
	from, to = dateOnly(from), dateOnly(to)
	if to.Before(from) {
		return []WeeklyTotal{}
	}

	var out []WeeklyTotal
	index := make(map[time.Time]int)
	for w := weekStart(from); !w.After(to); w = w.AddDate(0, 0, 7) {
		index[w] = len(out)
		out = append(out, WeeklyTotal{WeekStart: w})
	}

	for _, tx := range txs {
		if tx == nil {
			continue
		}
		d := dateOnly(tx.Date)
		if d.Before(from) || d.After(to) {
			continue
		}
		i := index[weekStart(d)]
		out[i].TransactionCount++
		switch tx.Type {
		case entity.TransactionTypeIncome:
			out[i].Income += tx.Amount
		case entity.TransactionTypeExpense:
			out[i].Expenses += tx.Amount
		}
	}
	for i := range out {
		out[i].Net = out[i].Income - out[i].Expenses
	}
	return out
}

// dateOnly drops the time of day, keeping the calendar date of t's location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday of the week containing the given date.
func weekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return date.AddDate(0, 0, -(weekday - 1))
}
