// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Account     string          `gorm:"type:varchar(100)"`
	IsRecurring bool            `gorm:"default:false"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        m.Date.UTC(),
		Amount:      toFloat(m.Amount),
		Type:        entity.TransactionType(m.Type),
		Category:    entity.NormalizeCategory(m.Category),
		Account:     m.Account,
		IsRecurring: m.IsRecurring,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(tx *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Date:        tx.Date,
		Amount:      toDecimal(tx.Amount),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Account:     tx.Account,
		IsRecurring: tx.IsRecurring,
		Notes:       tx.Notes,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

// BudgetModel represents the budgets table. One row per user, month and category.
type BudgetModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_user_month_category"`
	Month        string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_budget_user_month_category"`
	Category     string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budget_user_month_category"`
	BudgetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:           m.ID,
		UserID:       m.UserID,
		Month:        m.Month,
		Category:     entity.NormalizeCategory(m.Category),
		BudgetAmount: toFloat(m.BudgetAmount),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(b *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:           b.ID,
		UserID:       b.UserID,
		Month:        b.Month,
		Category:     b.Category,
		BudgetAmount: toDecimal(b.BudgetAmount),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
