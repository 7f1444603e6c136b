package finance

import (
	"sort"
	"time"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// trendSpan is the number of months compared on each side of a category trend.
const trendSpan = 3

// AnalyticsThresholds tunes the analytics detectors.
type AnalyticsThresholds struct {
	// GrowthPercent is the trend above which a category counts as growing.
	GrowthPercent float64
	// InflationPercent is the trend above which a lifestyle inflation alert fires.
	InflationPercent float64
	// InflationMinMonthly suppresses alerts for categories with a smaller
	// average monthly spend.
	InflationMinMonthly float64
	// TopCategories is the length of the top spending list.
	TopCategories int
}

// DefaultAnalyticsThresholds returns 10% growth, 20% inflation above 50 per
// month and a top five.
func DefaultAnalyticsThresholds() AnalyticsThresholds {
	return AnalyticsThresholds{
		GrowthPercent:       10,
		InflationPercent:    20,
		InflationMinMonthly: 50,
		TopCategories:       5,
	}
}

// AnalyticsInput is the transaction window the analytics are computed over.
type AnalyticsInput struct {
	Transactions []*entity.Transaction
	Budgets      []*entity.Budget
	MonthsBack   int
	AsOf         time.Time
	Thresholds   AnalyticsThresholds
}

// WeekdaySpending holds the expenses booked on one weekday.
type WeekdaySpending struct {
	Weekday time.Weekday
	Total   float64
	Count   int
	Average float64
}

// SpendingPatterns buckets expenses by weekday, Sunday first.
// PeakSpendingDay is nil when there are no expenses.
type SpendingPatterns struct {
	Days            []WeekdaySpending
	PeakSpendingDay *time.Weekday
}

// MonthAmount is an amount attributed to a month.
type MonthAmount struct {
	Month  Month
	Amount float64
}

// CategoryTrend compares the last three months of a category with the three
// months before.
type CategoryTrend struct {
	Category        string
	Monthly         []MonthAmount
	Total           float64
	AverageMonthly  float64
	RecentAverage   float64
	PreviousAverage float64
	TrendPercent    float64
}

// InflationAlert flags a category whose spending rises notably.
type InflationAlert struct {
	Category        string
	TrendPercent    float64
	AverageMonthly  float64
	RecentAverage   float64
	PreviousAverage float64
	MonthlyIncrease float64
}

// MissedSaving is a budget overrun in the current month.
type MissedSaving struct {
	Category         string
	Budget           float64
	Actual           float64
	PotentialSavings float64
	OveragePercent   float64
}

// SavingsRatePoint is the savings rate of one month.
type SavingsRatePoint struct {
	Month       Month
	SavingsRate float64
}

// Analytics is the result of Analyze.
type Analytics struct {
	Window                     []Month
	SpendingPatterns           SpendingPatterns
	CategoryTrends             []CategoryTrend
	GrowingCategories          []CategoryTrend
	LifestyleInflationAlerts   []InflationAlert
	MissedSavingsOpportunities []MissedSaving
	TotalMissedSavings         float64
	TopSpendingCategories      []CategoryAmount
	TotalExpenses              float64
	AverageMonthlyExpenses     float64
	MonthlyTotals              []MonthlySummary
	SavingsRateTrend           []SavingsRatePoint
}

// Analyze computes spending patterns, trends, inflation alerts and missed
// savings over the MonthsBack months ending with the month of AsOf.
// Transactions outside the window are ignored; months without data count as
// zero.
func Analyze(in AnalyticsInput) Analytics {
	window := TrailingMonths(in.AsOf, in.MonthsBack)
	inWindow := filterWindow(in.Transactions, window)

	a := Analytics{
		Window:           window,
		SpendingPatterns: SpendingPatternsByWeekday(inWindow),
		MonthlyTotals:    MonthlyTotals(inWindow, window),
	}

	a.SavingsRateTrend = make([]SavingsRatePoint, len(a.MonthlyTotals))
	for i, m := range a.MonthlyTotals {
		a.TotalExpenses += m.Expenses
		a.SavingsRateTrend[i] = SavingsRatePoint{Month: m.Month, SavingsRate: m.SavingsRate}
	}
	a.AverageMonthlyExpenses = safeDiv(a.TotalExpenses, float64(len(window)))
	a.TopSpendingCategories = TopCategories(inWindow, entity.TransactionTypeExpense, in.Thresholds.TopCategories)

	a.CategoryTrends = CategoryTrends(inWindow, window)
	a.GrowingCategories = GrowingCategories(a.CategoryTrends, in.Thresholds.GrowthPercent)
	a.LifestyleInflationAlerts = LifestyleInflationAlerts(
		a.CategoryTrends, in.Thresholds.InflationPercent, in.Thresholds.InflationMinMonthly,
	)

	a.MissedSavingsOpportunities = MissedSavings(in.Transactions, in.Budgets, MonthOf(in.AsOf))
	for _, m := range a.MissedSavingsOpportunities {
		a.TotalMissedSavings += m.PotentialSavings
	}
	return a
}

func filterWindow(txs []*entity.Transaction, window []Month) []*entity.Transaction {
	if len(window) == 0 {
		return nil
	}
	first, last := window[0], window[len(window)-1]
	out := make([]*entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx == nil {
			continue
		}
		m := MonthOf(tx.Date)
		if m.Before(first) || last.Before(m) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// SpendingPatternsByWeekday buckets expense transactions into the seven
// weekdays. The peak day is the bucket with the highest total; ties go to
// the earlier weekday.
func SpendingPatternsByWeekday(txs []*entity.Transaction) SpendingPatterns {
	days := make([]WeekdaySpending, 7)
	for i := range days {
		days[i].Weekday = time.Weekday(i)
	}
	for _, tx := range txs {
		if tx == nil || tx.Type != entity.TransactionTypeExpense {
			continue
		}
		d := &days[tx.Date.Weekday()]
		d.Total += tx.Amount
		d.Count++
	}

	var peak *time.Weekday
	best := 0.0
	for i := range days {
		days[i].Average = safeDiv(days[i].Total, float64(days[i].Count))
		if days[i].Count > 0 && (peak == nil || days[i].Total > best) {
			wd := days[i].Weekday
			peak = &wd
			best = days[i].Total
		}
	}
	return SpendingPatterns{Days: days, PeakSpendingDay: peak}
}

// CategoryTrends builds a per-month expense series for every category and
// compares the average of the last three months with the three before.
// A zero previous average yields a trend of 0. Trends are ordered by total,
// highest first.
func CategoryTrends(txs []*entity.Transaction, window []Month) []CategoryTrend {
	index := make(map[Month]int, len(window))
	for i, m := range window {
		index[m] = i
	}

	expense := entity.TransactionTypeExpense
	categories := groupOrdered(txs, &expense)
	series := make(map[string][]float64, len(categories))
	for _, c := range categories {
		series[c.Category] = make([]float64, len(window))
	}
	for _, tx := range txs {
		if tx == nil || tx.Type != entity.TransactionTypeExpense {
			continue
		}
		i, ok := index[MonthOf(tx.Date)]
		if !ok {
			continue
		}
		series[entity.NormalizeCategory(tx.Category)][i] += tx.Amount
	}

	trends := make([]CategoryTrend, 0, len(categories))
	for _, c := range categories {
		s := series[c.Category]
		n := len(s)
		t := CategoryTrend{
			Category:        c.Category,
			Monthly:         make([]MonthAmount, n),
			RecentAverage:   spanAverage(s, n-trendSpan, n),
			PreviousAverage: spanAverage(s, n-2*trendSpan, n-trendSpan),
		}
		for i, v := range s {
			t.Monthly[i] = MonthAmount{Month: window[i], Amount: v}
			t.Total += v
		}
		t.AverageMonthly = safeDiv(t.Total, float64(n))
		t.TrendPercent = safeDiv(t.RecentAverage-t.PreviousAverage, t.PreviousAverage) * 100
		trends = append(trends, t)
	}
	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].Total > trends[j].Total
	})
	return trends
}

// spanAverage averages s[from:to] over trendSpan slots. Indices outside s
// count as zero so short windows never fail.
func spanAverage(s []float64, from, to int) float64 {
	var sum float64
	for i := from; i < to; i++ {
		if i >= 0 && i < len(s) {
			sum += s[i]
		}
	}
	return sum / trendSpan
}

// GrowingCategories returns the trends above minPercent, steepest first.
func GrowingCategories(trends []CategoryTrend, minPercent float64) []CategoryTrend {
	out := []CategoryTrend{}
	for _, t := range trends {
		if t.TrendPercent > minPercent {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TrendPercent > out[j].TrendPercent
	})
	return out
}

// LifestyleInflationAlerts flags categories whose trend exceeds minPercent and
// whose average monthly spend exceeds minMonthly, steepest first.
func LifestyleInflationAlerts(trends []CategoryTrend, minPercent, minMonthly float64) []InflationAlert {
	out := []InflationAlert{}
	for _, t := range trends {
		if t.TrendPercent <= minPercent || t.AverageMonthly <= minMonthly {
			continue
		}
		out = append(out, InflationAlert{
			Category:        t.Category,
			TrendPercent:    t.TrendPercent,
			AverageMonthly:  t.AverageMonthly,
			RecentAverage:   t.RecentAverage,
			PreviousAverage: t.PreviousAverage,
			MonthlyIncrease: t.RecentAverage - t.PreviousAverage,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TrendPercent > out[j].TrendPercent
	})
	return out
}

// MissedSavings compares the expenses of month with the budgets of that
// month and reports every overrun, largest first.
func MissedSavings(txs []*entity.Transaction, budgets []*entity.Budget, month Month) []MissedSaving {
	actual := expensesInMonth(txs, month)
	out := []MissedSaving{}
	for _, b := range budgetsByCategory(budgets, month) {
		spent := actual[b.Category]
		if spent <= b.Amount {
			continue
		}
		over := spent - b.Amount
		out = append(out, MissedSaving{
			Category:         b.Category,
			Budget:           b.Amount,
			Actual:           spent,
			PotentialSavings: over,
			OveragePercent:   safeDiv(over, b.Amount) * 100,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PotentialSavings > out[j].PotentialSavings
	})
	return out
}
