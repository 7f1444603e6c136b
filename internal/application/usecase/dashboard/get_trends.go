// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// GetTrendsInput represents the input for getting trends.
type GetTrendsInput struct {
	UserID      uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
}

// TrendPoint represents a single trend data point.
type TrendPoint struct {
	Date             time.Time
	PeriodLabel      string
	Income           float64
	Expenses         float64
	Balance          float64
	TransactionCount int
}

// TrendsPeriod represents the period information for trends.
type TrendsPeriod struct {
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
}

// GetTrendsOutput represents the output of getting trends.
type GetTrendsOutput struct {
	Period TrendsPeriod
	Trends []TrendPoint
}

// GetTrendsUseCase handles getting income/expense trends.
type GetTrendsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(transactionRepo adapter.TransactionRepository) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves income/expense trends for the given period and granularity.
// Periods without transactions are included with zero values.
func (uc *GetTrendsUseCase) Execute(
	ctx context.Context,
	input GetTrendsInput,
) (*GetTrendsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	txs, err := uc.transactionRepo.ListTransactions(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &input.StartDate,
		EndDate:   &input.EndDate,
	})
	if err != nil {
		return nil, internalError("failed to get trends", err)
	}

	var trends []TrendPoint
	switch input.Granularity {
	case GranularityWeekly:
		for _, w := range finance.WeeklyTotals(txs, input.StartDate, input.EndDate) {
			trends = append(trends, TrendPoint{
				Date:             w.WeekStart,
				PeriodLabel:      GeneratePeriodLabel(w.WeekStart, GranularityWeekly),
				Income:           w.Income,
				Expenses:         w.Expenses,
				Balance:          w.Net,
				TransactionCount: w.TransactionCount,
			})
		}
	case GranularityMonthly:
		var months []finance.Month
		last := finance.MonthOf(input.EndDate)
		for m := finance.MonthOf(input.StartDate); !last.Before(m); m = m.AddMonths(1) {
			months = append(months, m)
		}
		for _, s := range finance.MonthlyTotals(txs, months) {
			trends = append(trends, TrendPoint{
				Date:             s.Month.Start(),
				PeriodLabel:      GeneratePeriodLabel(s.Month.Start(), GranularityMonthly),
				Income:           s.Income,
				Expenses:         s.Expenses,
				Balance:          s.Net,
				TransactionCount: s.TransactionCount,
			})
		}
	}

	return &GetTrendsOutput{
		Period: TrendsPeriod{
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
			Granularity: input.Granularity,
		},
		Trends: trends,
	}, nil
}

// validateInput validates the input parameters.
func (uc *GetTrendsUseCase) validateInput(input GetTrendsInput) error {
	if input.UserID == uuid.Nil {
		return missingUserError()
	}

	if input.StartDate.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if input.EndDate.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	if input.Granularity != GranularityWeekly && input.Granularity != GranularityMonthly {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be: weekly or monthly",
			domainerror.ErrInvalidGranularity,
		)
	}

	return nil
}
