package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// ListGoals retrieves all goals for a given user with their milestones.
func (r *goalRepository) ListGoals(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("deadline ASC, created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}

// planningRepository implements the adapter.PlanningRepository interface.
type planningRepository struct {
	db *gorm.DB
}

// NewPlanningRepository creates a new planning repository instance.
func NewPlanningRepository(db *gorm.DB) adapter.PlanningRepository {
	return &planningRepository{
		db: db,
	}
}

// ListPlannedPurchases retrieves all planned purchases of a user.
func (r *planningRepository) ListPlannedPurchases(ctx context.Context, userID uuid.UUID) ([]*entity.PlannedPurchase, error) {
	return listByUser[model.PlannedPurchaseModel, entity.PlannedPurchase](ctx, r.db, userID, "created_at ASC")
}

// ListEventBudgets retrieves all event budgets of a user, soonest first.
func (r *planningRepository) ListEventBudgets(ctx context.Context, userID uuid.UUID) ([]*entity.EventBudget, error) {
	return listByUser[model.EventBudgetModel, entity.EventBudget](ctx, r.db, userID, "event_date ASC")
}

// ListLifeScenarios retrieves all life scenarios of a user with their adjustments.
func (r *planningRepository) ListLifeScenarios(ctx context.Context, userID uuid.UUID) ([]*entity.LifeScenario, error) {
	var scenarioModels []model.LifeScenarioModel
	result := r.db.WithContext(ctx).
		Preload("Adjustments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&scenarioModels)
	if result.Error != nil {
		return nil, result.Error
	}

	scenarios := make([]*entity.LifeScenario, len(scenarioModels))
	for i := range scenarioModels {
		scenarios[i] = scenarioModels[i].ToEntity()
	}
	return scenarios, nil
}
