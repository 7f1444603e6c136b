// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// GetBudgetComparisonInput represents the input for comparing budgets.
type GetBudgetComparisonInput struct {
	UserID uuid.UUID
	Month  string
	AsOf   time.Time
}

// GetBudgetComparisonOutput compares a month's budgets with its expenses.
type GetBudgetComparisonOutput struct {
	Month           finance.Month
	Items           []finance.BudgetComparison
	TotalBudget     float64
	TotalActual     float64
	OverBudgetCount int
}

// GetBudgetComparisonUseCase compares budgets with actual spending.
type GetBudgetComparisonUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
}

// NewGetBudgetComparisonUseCase creates a new GetBudgetComparisonUseCase instance.
func NewGetBudgetComparisonUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
) *GetBudgetComparisonUseCase {
	return &GetBudgetComparisonUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
	}
}

// Execute compares every budget of the month with the expenses booked in it.
func (uc *GetBudgetComparisonUseCase) Execute(
	ctx context.Context,
	input GetBudgetComparisonInput,
) (*GetBudgetComparisonOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, missingUserError()
	}
	month, err := resolveMonth(input.Month, input.AsOf)
	if err != nil {
		return nil, err
	}

	key := month.String()
	budgets, err := uc.budgetRepo.ListBudgets(ctx, input.UserID, &key)
	if err != nil {
		return nil, internalError("failed to list budgets", err)
	}

	start, end := month.Start(), month.End()
	txs, err := uc.transactionRepo.ListTransactions(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, internalError("failed to list transactions", err)
	}

	out := &GetBudgetComparisonOutput{
		Month: month,
		Items: finance.CompareBudgets(txs, budgets, month),
	}
	for _, item := range out.Items {
		out.TotalBudget += item.Budget
		out.TotalActual += item.Actual
		if item.OverBudget {
			out.OverBudgetCount++
		}
	}
	return out, nil
}
