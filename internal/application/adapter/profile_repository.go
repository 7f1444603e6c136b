// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// ProfileRepository provides the records a financial profile is derived from.
type ProfileRepository interface {
	// ListIncomeSources returns all income sources, active or not.
	ListIncomeSources(ctx context.Context, userID uuid.UUID) ([]*entity.IncomeSource, error)

	// ListFixedCosts returns the recurring fixed costs.
	ListFixedCosts(ctx context.Context, userID uuid.UUID) ([]*entity.FixedCost, error)

	// ListVariableCosts returns the monthly variable cost estimates.
	ListVariableCosts(ctx context.Context, userID uuid.UUID) ([]*entity.VariableCostEstimate, error)

	// ListDebts returns all debts.
	ListDebts(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error)

	// GetAssets returns the asset snapshot or nil when none was recorded.
	GetAssets(ctx context.Context, userID uuid.UUID) (*entity.Assets, error)
}

// InvestmentRepository provides read access to investments and savings plans.
type InvestmentRepository interface {
	ListInvestments(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error)
	ListSavingsPlans(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsPlan, error)
}
