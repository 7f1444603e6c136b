// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// Dates are inclusive calendar days.
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Category  string
}

// TransactionRepository provides read access to a user's transactions.
type TransactionRepository interface {
	// ListTransactions returns the transactions matching filter, oldest first.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)
}

// BudgetRepository provides read access to monthly category budgets.
type BudgetRepository interface {
	// ListBudgets returns the budgets of userID. A nil month returns all months.
	ListBudgets(ctx context.Context, userID uuid.UUID, month *string) ([]*entity.Budget, error)
}
