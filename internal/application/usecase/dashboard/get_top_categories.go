// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

const (
	defaultTopCategoriesLimit = 5
	maxTopCategoriesLimit     = 50
)

// GetTopCategoriesInput represents the input for ranking categories.
type GetTopCategoriesInput struct {
	UserID uuid.UUID
	Month  string
	Type   entity.TransactionType // defaults to expense
	Limit  int                    // defaults to 5
	AsOf   time.Time
}

// TopCategory is a ranked category with its share of the total.
type TopCategory struct {
	Category   string
	Amount     float64
	Percentage float64
}

// GetTopCategoriesOutput represents the ranking of one month.
type GetTopCategoriesOutput struct {
	Month      finance.Month
	Type       entity.TransactionType
	Total      float64
	Categories []TopCategory
}

// GetTopCategoriesUseCase ranks the categories of a month.
type GetTopCategoriesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTopCategoriesUseCase creates a new GetTopCategoriesUseCase instance.
func NewGetTopCategoriesUseCase(transactionRepo adapter.TransactionRepository) *GetTopCategoriesUseCase {
	return &GetTopCategoriesUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute ranks the categories of the requested month by amount.
func (uc *GetTopCategoriesUseCase) Execute(
	ctx context.Context,
	input GetTopCategoriesInput,
) (*GetTopCategoriesOutput, error) {
	if input.Type == "" {
		input.Type = entity.TransactionTypeExpense
	}
	if input.Limit == 0 {
		input.Limit = defaultTopCategoriesLimit
	}
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}
	month, err := resolveMonth(input.Month, input.AsOf)
	if err != nil {
		return nil, err
	}

	start, end := month.Start(), month.End()
	txs, err := uc.transactionRepo.ListTransactions(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
		Type:      &input.Type,
	})
	if err != nil {
		return nil, internalError("failed to list transactions", err)
	}

	out := &GetTopCategoriesOutput{Month: month, Type: input.Type}
	for _, tx := range txs {
		if tx.Type == input.Type {
			out.Total += tx.Amount
		}
	}
	for _, c := range finance.TopCategories(txs, input.Type, input.Limit) {
		pct := 0.0
		if out.Total > 0 {
			pct = c.Amount / out.Total * 100
		}
		out.Categories = append(out.Categories, TopCategory{
			Category:   c.Category,
			Amount:     c.Amount,
			Percentage: pct,
		})
	}
	return out, nil
}

// validateInput validates the input parameters.
func (uc *GetTopCategoriesUseCase) validateInput(input GetTopCategoriesInput) error {
	if input.UserID == uuid.Nil {
		return missingUserError()
	}
	if !input.Type.IsValid() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be: income or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if input.Limit < 1 || input.Limit > maxTopCategoriesLimit {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidLimit,
			"limit must be between 1 and 50",
			domainerror.ErrInvalidLimit,
		)
	}
	return nil
}
