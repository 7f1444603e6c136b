package finance

import (
	"testing"
	"time"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// sixMonths returns expenses from January to June 2024 with a rising
// restaurant category, a small rising coffee category and a category that
// only appears in the recent half.
func sixMonths() []*entity.Transaction {
	var txs []*entity.Transaction
	for m := 1; m <= 6; m++ {
		day := time.Date(2024, time.Month(m), 10, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		restaurant, coffee := 100.0, 20.0
		if m > 3 {
			restaurant, coffee = 150, 30
			txs = append(txs, expense(day, 30, "Kino"))
		}
		txs = append(txs,
			expense(day, restaurant, "Restaurant"),
			expense(day, coffee, "Kaffee"),
			income(day, 3000, "Gehalt"),
		)
	}
	return txs
}

func trendByCategory(trends []CategoryTrend) map[string]CategoryTrend {
	out := make(map[string]CategoryTrend, len(trends))
	for _, tr := range trends {
		out[tr.Category] = tr
	}
	return out
}

func TestCategoryTrends(t *testing.T) {
	window := TrailingMonths(date("2024-06-20"), 6)
	trends := trendByCategory(CategoryTrends(sixMonths(), window))

	t.Run("rising category", func(t *testing.T) {
		tr := trends["Restaurant"]
		assertFloat(t, "previous average", 100, tr.PreviousAverage)
		assertFloat(t, "recent average", 150, tr.RecentAverage)
		assertFloat(t, "trend", 50, tr.TrendPercent)
		assertFloat(t, "average monthly", 125, tr.AverageMonthly)
		if len(tr.Monthly) != 6 {
			t.Errorf("expected 6 monthly points, got %d", len(tr.Monthly))
		}
	})

	t.Run("zero previous average yields zero trend", func(t *testing.T) {
		tr := trends["Kino"]
		assertFloat(t, "previous average", 0, tr.PreviousAverage)
		if tr.TrendPercent != 0 {
			t.Errorf("expected trend 0, got %v", tr.TrendPercent)
		}
	})

	t.Run("short window is zero filled", func(t *testing.T) {
		short := TrailingMonths(date("2024-06-20"), 2)
		got := trendByCategory(CategoryTrends(sixMonths(), short))
		tr := got["Restaurant"]
		assertFloat(t, "recent average", 100, tr.RecentAverage)
		assertFloat(t, "previous average", 0, tr.PreviousAverage)
		assertFloat(t, "trend", 0, tr.TrendPercent)
	})
}

func TestGrowingAndInflation(t *testing.T) {
	window := TrailingMonths(date("2024-06-20"), 6)
	trends := CategoryTrends(sixMonths(), window)

	growing := GrowingCategories(trends, 10)
	if len(growing) != 2 {
		t.Fatalf("expected 2 growing categories, got %d", len(growing))
	}

	alerts := LifestyleInflationAlerts(trends, 20, 50)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Category != "Restaurant" {
		t.Errorf("expected Restaurant, got %s", alerts[0].Category)
	}
	assertFloat(t, "monthly increase", 50, alerts[0].MonthlyIncrease)

	if none := LifestyleInflationAlerts(nil, 20, 50); none == nil || len(none) != 0 {
		t.Errorf("expected an empty, non-nil slice, got %v", none)
	}
}

func TestSpendingPatternsByWeekday(t *testing.T) {
	txs := []*entity.Transaction{
		expense("2024-01-06", 80, "Freizeit"),      // Saturday
		expense("2024-01-13", 40, "Freizeit"),      // Saturday
		expense("2024-01-08", 100, "Lebensmittel"), // Monday
		income("2024-01-07", 5000, "Gehalt"),       // Sunday, ignored
	}

	p := SpendingPatternsByWeekday(txs)

	if len(p.Days) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(p.Days))
	}
	sat := p.Days[time.Saturday]
	assertFloat(t, "saturday total", 120, sat.Total)
	assertFloat(t, "saturday average", 60, sat.Average)
	if sat.Count != 2 {
		t.Errorf("expected 2 saturday transactions, got %d", sat.Count)
	}
	if p.Days[time.Sunday].Count != 0 {
		t.Error("expected income to be ignored")
	}
	if p.PeakSpendingDay == nil || *p.PeakSpendingDay != time.Saturday {
		t.Errorf("expected Saturday as peak day, got %v", p.PeakSpendingDay)
	}

	if empty := SpendingPatternsByWeekday(nil); empty.PeakSpendingDay != nil {
		t.Error("expected no peak day without expenses")
	}
}

func TestMissedSavings(t *testing.T) {
	txs := []*entity.Transaction{
		expense("2024-06-02", 180, "Restaurant"),
		expense("2024-06-03", 520, "Lebensmittel"),
		expense("2024-06-04", 40, "Freizeit"),
		expense("2024-05-04", 900, "Freizeit"),
	}
	budgets := []*entity.Budget{
		budget("2024-06", "Restaurant", 100),
		budget("2024-06", "Lebensmittel", 500),
		budget("2024-06", "Freizeit", 50),
		budget("2024-05", "Freizeit", 10),
	}

	got := MissedSavings(txs, budgets, month("2024-06"))

	if len(got) != 2 {
		t.Fatalf("expected 2 opportunities, got %d", len(got))
	}
	if got[0].Category != "Restaurant" || got[1].Category != "Lebensmittel" {
		t.Errorf("expected Restaurant then Lebensmittel, got %s then %s", got[0].Category, got[1].Category)
	}
	assertFloat(t, "restaurant savings", 80, got[0].PotentialSavings)
	assertFloat(t, "restaurant overage", 80, got[0].OveragePercent)

	if none := MissedSavings(txs, nil, month("2024-06")); len(none) != 0 {
		t.Errorf("expected no opportunities without budgets, got %d", len(none))
	}
}

func TestAnalyze(t *testing.T) {
	txs := append(sixMonths(), expense("2023-12-10", 5000, "Reisen"))
	budgets := []*entity.Budget{budget("2024-06", "Restaurant", 120)}

	a := Analyze(AnalyticsInput{
		Transactions: txs,
		Budgets:      budgets,
		MonthsBack:   6,
		AsOf:         date("2024-06-20"),
		Thresholds:   DefaultAnalyticsThresholds(),
	})

	if len(a.Window) != 6 || a.Window[0].String() != "2024-01" {
		t.Fatalf("expected window 2024-01..2024-06, got %v", a.Window)
	}
	for _, c := range a.TopSpendingCategories {
		if c.Category == "Reisen" {
			t.Error("expected transactions outside the window to be ignored")
		}
	}
	assertFloat(t, "total expenses", 990, a.TotalExpenses)
	assertFloat(t, "average monthly expenses", 165, a.AverageMonthlyExpenses)
	if len(a.SavingsRateTrend) != 6 {
		t.Errorf("expected 6 savings rate points, got %d", len(a.SavingsRateTrend))
	}
	if len(a.LifestyleInflationAlerts) != 1 {
		t.Errorf("expected 1 inflation alert, got %d", len(a.LifestyleInflationAlerts))
	}
	assertFloat(t, "total missed savings", 30, a.TotalMissedSavings)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	a := Analyze(AnalyticsInput{MonthsBack: 12, AsOf: date("2024-06-20"), Thresholds: DefaultAnalyticsThresholds()})

	if len(a.MonthlyTotals) != 12 {
		t.Errorf("expected 12 zero filled months, got %d", len(a.MonthlyTotals))
	}
	if a.AverageMonthlyExpenses != 0 || a.TotalMissedSavings != 0 {
		t.Error("expected zero aggregates")
	}
	if len(a.MissedSavingsOpportunities) != 0 || len(a.CategoryTrends) != 0 {
		t.Error("expected empty result sets")
	}
}
