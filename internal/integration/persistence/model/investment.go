package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// InvestmentModel represents the investments table. Prices are per unit.
type InvestmentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Type          string          `gorm:"type:varchar(20);not null;default:'other'"`
	Quantity      decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	CurrentPrice  decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	Active        bool            `gorm:"not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Type:          entity.InvestmentType(m.Type),
		Quantity:      toFloat(m.Quantity),
		PurchasePrice: toFloat(m.PurchasePrice),
		CurrentPrice:  toFloat(m.CurrentPrice),
		Active:        m.Active,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(i *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:            i.ID,
		UserID:        i.UserID,
		Name:          i.Name,
		Type:          string(i.Type),
		Quantity:      decimal.NewFromFloat(i.Quantity),
		PurchasePrice: decimal.NewFromFloat(i.PurchasePrice).Round(4),
		CurrentPrice:  decimal.NewFromFloat(i.CurrentPrice).Round(4),
		Active:        i.Active,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// SavingsPlanModel represents the savings_plans table.
type SavingsPlanModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	InvestmentID *uuid.UUID      `gorm:"type:uuid;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Frequency    string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	Active       bool            `gorm:"not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"`

	Investment *InvestmentModel `gorm:"foreignKey:InvestmentID;references:ID"`
}

// TableName returns the table name for the SavingsPlanModel.
func (SavingsPlanModel) TableName() string {
	return "savings_plans"
}

// ToEntity converts a SavingsPlanModel to a domain SavingsPlan entity.
func (m *SavingsPlanModel) ToEntity() *entity.SavingsPlan {
	return &entity.SavingsPlan{
		ID:           m.ID,
		UserID:       m.UserID,
		InvestmentID: m.InvestmentID,
		Name:         m.Name,
		Amount:       toFloat(m.Amount),
		Frequency:    entity.Frequency(m.Frequency),
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SavingsPlanFromEntity creates a SavingsPlanModel from a domain SavingsPlan entity.
func SavingsPlanFromEntity(p *entity.SavingsPlan) *SavingsPlanModel {
	return &SavingsPlanModel{
		ID:           p.ID,
		UserID:       p.UserID,
		InvestmentID: p.InvestmentID,
		Name:         p.Name,
		Amount:       toDecimal(p.Amount),
		Frequency:    string(p.Frequency),
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
