package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// IncomeSourceModel represents the income_sources table. Bonus quarters are
// only meaningful for quarterly-bonus sources.
type IncomeSourceModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Frequency   string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	Active      bool            `gorm:"not null"`
	ConfirmedQ1 bool            `gorm:"column:confirmed_q1;default:false"`
	ConfirmedQ2 bool            `gorm:"column:confirmed_q2;default:false"`
	ConfirmedQ3 bool            `gorm:"column:confirmed_q3;default:false"`
	ConfirmedQ4 bool            `gorm:"column:confirmed_q4;default:false"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the IncomeSourceModel.
func (IncomeSourceModel) TableName() string {
	return "income_sources"
}

// ToEntity converts an IncomeSourceModel to a domain IncomeSource entity.
func (m *IncomeSourceModel) ToEntity() *entity.IncomeSource {
	s := &entity.IncomeSource{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    toFloat(m.Amount),
		Frequency: entity.Frequency(m.Frequency),
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if s.IsQuarterlyBonus() {
		s.ConfirmedQuarters = &entity.ConfirmedQuarters{
			Q1: m.ConfirmedQ1,
			Q2: m.ConfirmedQ2,
			Q3: m.ConfirmedQ3,
			Q4: m.ConfirmedQ4,
		}
	}
	return s
}

// IncomeSourceFromEntity creates an IncomeSourceModel from a domain IncomeSource entity.
func IncomeSourceFromEntity(s *entity.IncomeSource) *IncomeSourceModel {
	m := &IncomeSourceModel{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		Amount:    toDecimal(s.Amount),
		Frequency: string(s.Frequency),
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if q := s.ConfirmedQuarters; q != nil {
		m.ConfirmedQ1, m.ConfirmedQ2, m.ConfirmedQ3, m.ConfirmedQ4 = q.Q1, q.Q2, q.Q3, q.Q4
	}
	return m
}

// FixedCostModel represents the fixed_costs table.
type FixedCostModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Category  string          `gorm:"type:varchar(100);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Frequency string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the FixedCostModel.
func (FixedCostModel) TableName() string {
	return "fixed_costs"
}

// ToEntity converts a FixedCostModel to a domain FixedCost entity.
func (m *FixedCostModel) ToEntity() *entity.FixedCost {
	return &entity.FixedCost{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Category:  entity.NormalizeCategory(m.Category),
		Amount:    toFloat(m.Amount),
		Frequency: entity.Frequency(m.Frequency),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FixedCostFromEntity creates a FixedCostModel from a domain FixedCost entity.
func FixedCostFromEntity(c *entity.FixedCost) *FixedCostModel {
	return &FixedCostModel{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Category:  c.Category,
		Amount:    toDecimal(c.Amount),
		Frequency: string(c.Frequency),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// VariableCostModel represents the variable_costs table.
type VariableCostModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Category      string          `gorm:"type:varchar(100);not null"`
	MonthlyAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the VariableCostModel.
func (VariableCostModel) TableName() string {
	return "variable_costs"
}

// ToEntity converts a VariableCostModel to a domain VariableCostEstimate entity.
func (m *VariableCostModel) ToEntity() *entity.VariableCostEstimate {
	return &entity.VariableCostEstimate{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Category:      entity.NormalizeCategory(m.Category),
		MonthlyAmount: toFloat(m.MonthlyAmount),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// VariableCostFromEntity creates a VariableCostModel from a domain entity.
func VariableCostFromEntity(c *entity.VariableCostEstimate) *VariableCostModel {
	return &VariableCostModel{
		ID:            c.ID,
		UserID:        c.UserID,
		Name:          c.Name,
		Category:      c.Category,
		MonthlyAmount: toDecimal(c.MonthlyAmount),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// DebtModel represents the debts table. InterestRate is in percent per year.
type DebtModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Type           string          `gorm:"type:varchar(20);not null;default:'other'"`
	OriginalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InterestRate   decimal.Decimal `gorm:"type:decimal(6,3);not null;default:0"`
	MonthlyPayment decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Type:           entity.DebtType(m.Type),
		OriginalAmount: toFloat(m.OriginalAmount),
		CurrentBalance: toFloat(m.CurrentBalance),
		InterestRate:   toFloat(m.InterestRate),
		MonthlyPayment: toFloat(m.MonthlyPayment),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(d *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:             d.ID,
		UserID:         d.UserID,
		Name:           d.Name,
		Type:           string(d.Type),
		OriginalAmount: toDecimal(d.OriginalAmount),
		CurrentBalance: toDecimal(d.CurrentBalance),
		InterestRate:   decimal.NewFromFloat(d.InterestRate).Round(3),
		MonthlyPayment: toDecimal(d.MonthlyPayment),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// AssetsModel represents the assets table, one row per user.
type AssetsModel struct {
	UserID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Savings     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Investments decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Other       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AssetsModel.
func (AssetsModel) TableName() string {
	return "assets"
}

// ToEntity converts an AssetsModel to a domain Assets entity.
func (m *AssetsModel) ToEntity() *entity.Assets {
	return &entity.Assets{
		UserID:      m.UserID,
		Savings:     toFloat(m.Savings),
		Investments: toFloat(m.Investments),
		Other:       toFloat(m.Other),
		UpdatedAt:   m.UpdatedAt,
	}
}

// AssetsFromEntity creates an AssetsModel from a domain Assets entity.
func AssetsFromEntity(a *entity.Assets) *AssetsModel {
	return &AssetsModel{
		UserID:      a.UserID,
		Savings:     toDecimal(a.Savings),
		Investments: toDecimal(a.Investments),
		Other:       toDecimal(a.Other),
		UpdatedAt:   a.UpdatedAt,
	}
}
