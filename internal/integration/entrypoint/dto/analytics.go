package dto

import (
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// AnalyticsResponse represents the response for the analytics API.
type AnalyticsResponse struct {
	Data AnalyticsData `json:"data"`
}

// AnalyticsData holds the spending analysis over the trailing window.
type AnalyticsData struct {
	Window                     []string                   `json:"window"`
	SpendingPatterns           SpendingPatternsResponse   `json:"spending_patterns"`
	CategoryTrends             []CategoryTrendResponse    `json:"category_trends"`
	GrowingCategories          []CategoryTrendResponse    `json:"growing_categories"`
	LifestyleInflationAlerts   []InflationAlertResponse   `json:"lifestyle_inflation_alerts"`
	MissedSavingsOpportunities []MissedSavingResponse     `json:"missed_savings_opportunities"`
	TotalMissedSavings         float64                    `json:"total_missed_savings"`
	TopSpendingCategories      []CategoryAmountResponse   `json:"top_spending_categories"`
	TotalExpenses              float64                    `json:"total_expenses"`
	AverageMonthlyExpenses     float64                    `json:"average_monthly_expenses"`
	MonthlyTotals              []MonthlySummaryResponse   `json:"monthly_totals"`
	SavingsRateTrend           []SavingsRatePointResponse `json:"savings_rate_trend"`
}

// SpendingPatternsResponse represents spending by weekday.
type SpendingPatternsResponse struct {
	Days            []WeekdaySpendingResponse `json:"days"`
	PeakSpendingDay *string                   `json:"peak_spending_day"`
}

// WeekdaySpendingResponse represents one weekday bucket.
type WeekdaySpendingResponse struct {
	Weekday string  `json:"weekday"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// MonthAmountResponse represents a category total in one month.
type MonthAmountResponse struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// CategoryTrendResponse represents the monthly development of one category.
type CategoryTrendResponse struct {
	Category        string                `json:"category"`
	Monthly         []MonthAmountResponse `json:"monthly"`
	Total           float64               `json:"total"`
	AverageMonthly  float64               `json:"average_monthly"`
	RecentAverage   float64               `json:"recent_average"`
	PreviousAverage float64               `json:"previous_average"`
	TrendPercent    float64               `json:"trend_percent"`
}

// InflationAlertResponse flags a category with lifestyle inflation.
type InflationAlertResponse struct {
	Category        string  `json:"category"`
	TrendPercent    float64 `json:"trend_percent"`
	AverageMonthly  float64 `json:"average_monthly"`
	RecentAverage   float64 `json:"recent_average"`
	PreviousAverage float64 `json:"previous_average"`
	MonthlyIncrease float64 `json:"monthly_increase"`
}

// MissedSavingResponse represents a category that exceeded its budget.
type MissedSavingResponse struct {
	Category         string  `json:"category"`
	Budget           float64 `json:"budget"`
	Actual           float64 `json:"actual"`
	PotentialSavings float64 `json:"potential_savings"`
	OveragePercent   float64 `json:"overage_percent"`
}

// CategoryAmountResponse represents a category total.
type CategoryAmountResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// SavingsRatePointResponse represents the savings rate of one month.
type SavingsRatePointResponse struct {
	Month       string  `json:"month"`
	SavingsRate float64 `json:"savings_rate"`
}

// ToAnalyticsResponse converts a finance.Analytics to its DTO.
func ToAnalyticsResponse(a *finance.Analytics) AnalyticsResponse {
	window := make([]string, len(a.Window))
	for i, m := range a.Window {
		window[i] = m.String()
	}

	days := make([]WeekdaySpendingResponse, len(a.SpendingPatterns.Days))
	for i, d := range a.SpendingPatterns.Days {
		days[i] = WeekdaySpendingResponse{
			Weekday: d.Weekday.String(),
			Total:   money(d.Total),
			Count:   d.Count,
			Average: money(d.Average),
		}
	}
	var peak *string
	if a.SpendingPatterns.PeakSpendingDay != nil {
		s := a.SpendingPatterns.PeakSpendingDay.String()
		peak = &s
	}

	alerts := make([]InflationAlertResponse, len(a.LifestyleInflationAlerts))
	for i, al := range a.LifestyleInflationAlerts {
		alerts[i] = InflationAlertResponse{
			Category:        al.Category,
			TrendPercent:    ratio(al.TrendPercent),
			AverageMonthly:  money(al.AverageMonthly),
			RecentAverage:   money(al.RecentAverage),
			PreviousAverage: money(al.PreviousAverage),
			MonthlyIncrease: money(al.MonthlyIncrease),
		}
	}

	missed := make([]MissedSavingResponse, len(a.MissedSavingsOpportunities))
	for i, m := range a.MissedSavingsOpportunities {
		missed[i] = MissedSavingResponse{
			Category:         m.Category,
			Budget:           money(m.Budget),
			Actual:           money(m.Actual),
			PotentialSavings: money(m.PotentialSavings),
			OveragePercent:   ratio(m.OveragePercent),
		}
	}

	top := make([]CategoryAmountResponse, len(a.TopSpendingCategories))
	for i, c := range a.TopSpendingCategories {
		top[i] = CategoryAmountResponse{Category: c.Category, Amount: money(c.Amount)}
	}

	totals := make([]MonthlySummaryResponse, len(a.MonthlyTotals))
	for i, s := range a.MonthlyTotals {
		totals[i] = ToMonthlySummaryResponse(s)
	}

	rates := make([]SavingsRatePointResponse, len(a.SavingsRateTrend))
	for i, p := range a.SavingsRateTrend {
		rates[i] = SavingsRatePointResponse{Month: p.Month.String(), SavingsRate: ratio(p.SavingsRate)}
	}

	return AnalyticsResponse{
		Data: AnalyticsData{
			Window:                     window,
			SpendingPatterns:           SpendingPatternsResponse{Days: days, PeakSpendingDay: peak},
			CategoryTrends:             toCategoryTrends(a.CategoryTrends),
			GrowingCategories:          toCategoryTrends(a.GrowingCategories),
			LifestyleInflationAlerts:   alerts,
			MissedSavingsOpportunities: missed,
			TotalMissedSavings:         money(a.TotalMissedSavings),
			TopSpendingCategories:      top,
			TotalExpenses:              money(a.TotalExpenses),
			AverageMonthlyExpenses:     money(a.AverageMonthlyExpenses),
			MonthlyTotals:              totals,
			SavingsRateTrend:           rates,
		},
	}
}

func toCategoryTrends(trends []finance.CategoryTrend) []CategoryTrendResponse {
	out := make([]CategoryTrendResponse, len(trends))
	for i, t := range trends {
		monthly := make([]MonthAmountResponse, len(t.Monthly))
		for j, m := range t.Monthly {
			monthly[j] = MonthAmountResponse{Month: m.Month.String(), Amount: money(m.Amount)}
		}
		out[i] = CategoryTrendResponse{
			Category:        t.Category,
			Monthly:         monthly,
			Total:           money(t.Total),
			AverageMonthly:  money(t.AverageMonthly),
			RecentAverage:   money(t.RecentAverage),
			PreviousAverage: money(t.PreviousAverage),
			TrendPercent:    ratio(t.TrendPercent),
		}
	}
	return out
}
