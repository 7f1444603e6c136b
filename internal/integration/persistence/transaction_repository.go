// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// ListTransactions retrieves the transactions matching filter ordered by date.
// Both date bounds are inclusive calendar days.
func (r *transactionRepository) ListTransactions(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", dayStart(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("date < ?", dayStart(*filter.EndDate).AddDate(0, 0, 1))
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var models []model.TransactionModel
	if err := query.Order("date ASC, created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(models))
	for i := range models {
		transactions[i] = models[i].ToEntity()
	}
	return transactions, nil
}

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// ListBudgets retrieves the budgets of a user, optionally restricted to one month.
func (r *budgetRepository) ListBudgets(ctx context.Context, userID uuid.UUID, month *string) ([]*entity.Budget, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if month != nil {
		query = query.Where("month = ?", *month)
	}

	var models []model.BudgetModel
	if err := query.Order("month ASC, category ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	budgets := make([]*entity.Budget, len(models))
	for i := range models {
		budgets[i] = models[i].ToEntity()
	}
	return budgets, nil
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
