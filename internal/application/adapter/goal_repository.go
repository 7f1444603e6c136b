// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// GoalRepository provides read access to goals.
type GoalRepository interface {
	// ListGoals returns the goals of a user with their milestones.
	ListGoals(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)
}

// PlanningRepository provides read access to purchase, event and scenario plans.
type PlanningRepository interface {
	ListPlannedPurchases(ctx context.Context, userID uuid.UUID) ([]*entity.PlannedPurchase, error)
	ListEventBudgets(ctx context.Context, userID uuid.UUID) ([]*entity.EventBudget, error)
	// ListLifeScenarios returns the scenarios with their adjustments.
	ListLifeScenarios(ctx context.Context, userID uuid.UUID) ([]*entity.LifeScenario, error)
}
