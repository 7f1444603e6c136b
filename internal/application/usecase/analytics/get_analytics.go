// Package analytics contains spending analytics use cases.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// MaxMonthsBack bounds the analytics window.
const MaxMonthsBack = 60

// GetAnalyticsInput represents the input for computing analytics.
type GetAnalyticsInput struct {
	UserID     uuid.UUID
	MonthsBack int // 0 uses the configured default
	AsOf       time.Time
}

// GetAnalyticsUseCase computes spending patterns, trends and missed savings.
type GetAnalyticsUseCase struct {
	transactionRepo   adapter.TransactionRepository
	budgetRepo        adapter.BudgetRepository
	thresholds        finance.AnalyticsThresholds
	defaultMonthsBack int
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	thresholds finance.AnalyticsThresholds,
	defaultMonthsBack int,
) *GetAnalyticsUseCase {
	if defaultMonthsBack <= 0 {
		defaultMonthsBack = 6
	}
	return &GetAnalyticsUseCase{
		transactionRepo:   transactionRepo,
		budgetRepo:        budgetRepo,
		thresholds:        thresholds,
		defaultMonthsBack: defaultMonthsBack,
	}
}

// Execute loads the trailing window and the current month's budgets and
// runs the analytics engine over them.
func (uc *GetAnalyticsUseCase) Execute(
	ctx context.Context,
	input GetAnalyticsInput,
) (*finance.Analytics, error) {
	if input.MonthsBack == 0 {
		input.MonthsBack = uc.defaultMonthsBack
	}
	if input.AsOf.IsZero() {
		input.AsOf = time.Now().UTC()
	}
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	window := finance.TrailingMonths(input.AsOf, input.MonthsBack)
	start, end := window[0].Start(), window[len(window)-1].End()
	txs, err := uc.transactionRepo.ListTransactions(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeAnalyticsInternalError, "failed to list transactions", err,
		)
	}

	current := finance.MonthOf(input.AsOf).String()
	budgets, err := uc.budgetRepo.ListBudgets(ctx, input.UserID, &current)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeAnalyticsInternalError, "failed to list budgets", err,
		)
	}

	result := finance.Analyze(finance.AnalyticsInput{
		Transactions: txs,
		Budgets:      budgets,
		MonthsBack:   input.MonthsBack,
		AsOf:         input.AsOf,
		Thresholds:   uc.thresholds,
	})

	slog.DebugContext(ctx, "Analytics computed",
		"userID", input.UserID,
		"monthsBack", input.MonthsBack,
		"transactions", len(txs),
		"alerts", len(result.LifestyleInflationAlerts),
	)
	return &result, nil
}

// validateInput validates the input parameters.
func (uc *GetAnalyticsUseCase) validateInput(input GetAnalyticsInput) error {
	if input.UserID == uuid.Nil {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeAnalyticsMissingUser,
			"user id is required",
			domainerror.ErrMissingUserID,
		)
	}
	if input.MonthsBack < 1 || input.MonthsBack > MaxMonthsBack {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidMonthsBack,
			"months_back must be between 1 and 60",
			domainerror.ErrInvalidMonthsBack,
		)
	}
	return nil
}
