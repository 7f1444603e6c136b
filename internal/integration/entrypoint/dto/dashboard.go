package dto

import (
	"github.com/finance-tracker/planner/internal/application/usecase/dashboard"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// MonthlySummaryResponse represents one month of aggregated cash flow.
type MonthlySummaryResponse struct {
	Month            string  `json:"month"`
	Income           float64 `json:"income"`
	Expenses         float64 `json:"expenses"`
	Net              float64 `json:"net"`
	SavingsRate      float64 `json:"savings_rate"`
	TransactionCount int     `json:"transaction_count"`
}

// DashboardSummaryResponse represents the response for the dashboard summary API.
type DashboardSummaryResponse struct {
	Data DashboardSummaryData `json:"data"`
}

// DashboardSummaryData compares a month with the one before it.
type DashboardSummaryData struct {
	Current              MonthlySummaryResponse `json:"current"`
	Previous             MonthlySummaryResponse `json:"previous"`
	IncomeChangePercent  float64                `json:"income_change_percent"`
	ExpenseChangePercent float64                `json:"expense_change_percent"`
}

// ToMonthlySummaryResponse converts a finance.MonthlySummary.
func ToMonthlySummaryResponse(s finance.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:            s.Month.String(),
		Income:           money(s.Income),
		Expenses:         money(s.Expenses),
		Net:              money(s.Net),
		SavingsRate:      ratio(s.SavingsRate),
		TransactionCount: s.TransactionCount,
	}
}

// ToDashboardSummaryResponse converts a GetMonthlySummaryOutput to its DTO.
func ToDashboardSummaryResponse(output *dashboard.GetMonthlySummaryOutput) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		Data: DashboardSummaryData{
			Current:              ToMonthlySummaryResponse(output.Current),
			Previous:             ToMonthlySummaryResponse(output.Previous),
			IncomeChangePercent:  ratio(output.IncomeChangePercent),
			ExpenseChangePercent: ratio(output.ExpenseChangePercent),
		},
	}
}

// TopCategoriesResponse represents the response for the top categories API.
type TopCategoriesResponse struct {
	Data TopCategoriesData `json:"data"`
}

// TopCategoriesData lists the largest categories of a month.
type TopCategoriesData struct {
	Month      string                `json:"month"`
	Type       string                `json:"type"`
	Total      float64               `json:"total"`
	Categories []TopCategoryResponse `json:"categories"`
}

// TopCategoryResponse represents a single ranked category.
type TopCategoryResponse struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Known      bool    `json:"known"`
}

// ToTopCategoriesResponse converts a GetTopCategoriesOutput to its DTO.
func ToTopCategoriesResponse(output *dashboard.GetTopCategoriesOutput) TopCategoriesResponse {
	categories := make([]TopCategoryResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = TopCategoryResponse{
			Category:   c.Category,
			Amount:     money(c.Amount),
			Percentage: ratio(c.Percentage),
			Known:      entity.IsKnownCategory(output.Type, c.Category),
		}
	}
	return TopCategoriesResponse{
		Data: TopCategoriesData{
			Month:      output.Month.String(),
			Type:       string(output.Type),
			Total:      money(output.Total),
			Categories: categories,
		},
	}
}

// BudgetComparisonResponse represents the response for the budget comparison API.
type BudgetComparisonResponse struct {
	Data BudgetComparisonData `json:"data"`
}

// BudgetComparisonData holds budget against actual per category.
type BudgetComparisonData struct {
	Month           string               `json:"month"`
	Items           []BudgetItemResponse `json:"items"`
	TotalBudget     float64              `json:"total_budget"`
	TotalActual     float64              `json:"total_actual"`
	OverBudgetCount int                  `json:"over_budget_count"`
}

// BudgetItemResponse represents one budgeted category.
type BudgetItemResponse struct {
	Category    string  `json:"category"`
	Budget      float64 `json:"budget"`
	Actual      float64 `json:"actual"`
	Remaining   float64 `json:"remaining"`
	PercentUsed float64 `json:"percent_used"`
	OverBudget  bool    `json:"over_budget"`
}

// ToBudgetComparisonResponse converts a GetBudgetComparisonOutput to its DTO.
func ToBudgetComparisonResponse(output *dashboard.GetBudgetComparisonOutput) BudgetComparisonResponse {
	items := make([]BudgetItemResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = BudgetItemResponse{
			Category:    item.Category,
			Budget:      money(item.Budget),
			Actual:      money(item.Actual),
			Remaining:   money(item.Remaining),
			PercentUsed: ratio(item.PercentUsed),
			OverBudget:  item.OverBudget,
		}
	}
	return BudgetComparisonResponse{
		Data: BudgetComparisonData{
			Month:           output.Month.String(),
			Items:           items,
			TotalBudget:     money(output.TotalBudget),
			TotalActual:     money(output.TotalActual),
			OverBudgetCount: output.OverBudgetCount,
		},
	}
}

// TrendsResponse represents the response for the trends API.
type TrendsResponse struct {
	Data TrendsData `json:"data"`
}

// TrendsData represents the data section of trends response.
type TrendsData struct {
	Period TrendPeriodResponse  `json:"period"`
	Trends []TrendPointResponse `json:"trends"`
}

// TrendPeriodResponse represents the period information in the response.
type TrendPeriodResponse struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Granularity string `json:"granularity"`
}

// TrendPointResponse represents a single bucket of the series.
type TrendPointResponse struct {
	Date             string  `json:"date"`
	PeriodLabel      string  `json:"period_label"`
	Income           float64 `json:"income"`
	Expenses         float64 `json:"expenses"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count"`
}

// ToTrendsResponse converts a GetTrendsOutput to its DTO.
func ToTrendsResponse(output *dashboard.GetTrendsOutput) TrendsResponse {
	trends := make([]TrendPointResponse, len(output.Trends))
	for i, p := range output.Trends {
		trends[i] = TrendPointResponse{
			Date:             formatDate(p.Date),
			PeriodLabel:      p.PeriodLabel,
			Income:           money(p.Income),
			Expenses:         money(p.Expenses),
			Balance:          money(p.Balance),
			TransactionCount: p.TransactionCount,
		}
	}
	return TrendsResponse{
		Data: TrendsData{
			Period: TrendPeriodResponse{
				StartDate:   formatDate(output.Period.StartDate),
				EndDate:     formatDate(output.Period.EndDate),
				Granularity: string(output.Period.Granularity),
			},
			Trends: trends,
		},
	}
}

// DataRangeResponse represents the response for data range API.
type DataRangeResponse struct {
	Data DataRangeData `json:"data"`
}

// DataRangeData represents the data section of data range response.
type DataRangeData struct {
	OldestDate        *string `json:"oldest_date"`
	NewestDate        *string `json:"newest_date"`
	TotalTransactions int     `json:"total_transactions"`
	HasData           bool    `json:"has_data"`
}

// ToDataRangeResponse converts a GetDataRangeOutput to DataRangeResponse DTO.
func ToDataRangeResponse(output *dashboard.GetDataRangeOutput) DataRangeResponse {
	return DataRangeResponse{
		Data: DataRangeData{
			OldestDate:        formatDatePtr(output.OldestDate),
			NewestDate:        formatDatePtr(output.NewestDate),
			TotalTransactions: output.TotalTransactions,
			HasData:           output.HasData,
		},
	}
}
