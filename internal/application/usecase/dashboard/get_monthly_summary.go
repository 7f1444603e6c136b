// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// GetMonthlySummaryInput represents the input for getting a monthly summary.
type GetMonthlySummaryInput struct {
	UserID uuid.UUID
	Month  string // YYYY-MM, defaults to the month of AsOf
	AsOf   time.Time
}

// GetMonthlySummaryOutput holds the month and the month before it.
// Change percentages are 0 when the previous value is 0.
type GetMonthlySummaryOutput struct {
	Current              finance.MonthlySummary
	Previous             finance.MonthlySummary
	IncomeChangePercent  float64
	ExpenseChangePercent float64
}

// GetMonthlySummaryUseCase handles the monthly income/expense summary.
type GetMonthlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(transactionRepo adapter.TransactionRepository) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute summarises the requested month and compares it with the previous one.
func (uc *GetMonthlySummaryUseCase) Execute(
	ctx context.Context,
	input GetMonthlySummaryInput,
) (*GetMonthlySummaryOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, missingUserError()
	}
	month, err := resolveMonth(input.Month, input.AsOf)
	if err != nil {
		return nil, err
	}
	previous := month.AddMonths(-1)

	start, end := previous.Start(), month.End()
	txs, err := uc.transactionRepo.ListTransactions(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, internalError("failed to list transactions", err)
	}

	out := &GetMonthlySummaryOutput{
		Current:  finance.MonthlySummarize(txs, month),
		Previous: finance.MonthlySummarize(txs, previous),
	}
	out.IncomeChangePercent = changePercent(out.Previous.Income, out.Current.Income)
	out.ExpenseChangePercent = changePercent(out.Previous.Expenses, out.Current.Expenses)

	slog.DebugContext(ctx, "Monthly summary computed",
		"userID", input.UserID, "month", month.String(), "transactions", len(txs))
	return out, nil
}

func changePercent(before, after float64) float64 {
	if before == 0 {
		return 0
	}
	return (after - before) / before * 100
}
