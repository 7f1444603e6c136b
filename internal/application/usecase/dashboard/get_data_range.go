// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

// GetDataRangeInput represents the input for getting data range.
type GetDataRangeInput struct {
	UserID uuid.UUID
}

// GetDataRangeOutput represents the output of getting data range.
type GetDataRangeOutput struct {
	OldestDate        *time.Time
	NewestDate        *time.Time
	TotalTransactions int
	HasData           bool
}

// GetDataRangeUseCase handles getting the date range of user's transactions.
// Clients use it to bound date pickers and the analytics window.
type GetDataRangeUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetDataRangeUseCase creates a new GetDataRangeUseCase instance.
func NewGetDataRangeUseCase(transactionRepo adapter.TransactionRepository) *GetDataRangeUseCase {
	return &GetDataRangeUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the date range of user's transactions.
func (uc *GetDataRangeUseCase) Execute(
	ctx context.Context,
	input GetDataRangeInput,
) (*GetDataRangeOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, missingUserError()
	}

	txs, err := uc.transactionRepo.ListTransactions(ctx, adapter.TransactionFilter{UserID: input.UserID})
	if err != nil {
		return nil, internalError("failed to get data range", err)
	}

	out := &GetDataRangeOutput{
		TotalTransactions: len(txs),
		HasData:           len(txs) > 0,
	}
	for _, tx := range txs {
		d := tx.Date
		if out.OldestDate == nil || d.Before(*out.OldestDate) {
			out.OldestDate = &d
		}
		if out.NewestDate == nil || d.After(*out.NewestDate) {
			newest := d
			out.NewestDate = &newest
		}
	}
	return out, nil
}
