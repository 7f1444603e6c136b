package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// PlannedPurchaseModel represents the planned_purchases table.
type PlannedPurchaseModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name                string          `gorm:"type:varchar(255);not null"`
	TargetAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SavedAmount         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	MonthlyContribution decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TargetDate          *time.Time      `gorm:"type:date"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`
	DeletedAt           gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the PlannedPurchaseModel.
func (PlannedPurchaseModel) TableName() string {
	return "planned_purchases"
}

// ToEntity converts a PlannedPurchaseModel to a domain PlannedPurchase entity.
func (m *PlannedPurchaseModel) ToEntity() *entity.PlannedPurchase {
	return &entity.PlannedPurchase{
		ID:                  m.ID,
		UserID:              m.UserID,
		Name:                m.Name,
		TargetAmount:        toFloat(m.TargetAmount),
		SavedAmount:         toFloat(m.SavedAmount),
		MonthlyContribution: toFloat(m.MonthlyContribution),
		TargetDate:          m.TargetDate,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// PlannedPurchaseFromEntity creates a PlannedPurchaseModel from a domain entity.
func PlannedPurchaseFromEntity(p *entity.PlannedPurchase) *PlannedPurchaseModel {
	return &PlannedPurchaseModel{
		ID:                  p.ID,
		UserID:              p.UserID,
		Name:                p.Name,
		TargetAmount:        toDecimal(p.TargetAmount),
		SavedAmount:         toDecimal(p.SavedAmount),
		MonthlyContribution: toDecimal(p.MonthlyContribution),
		TargetDate:          p.TargetDate,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// EventBudgetModel represents the event_budgets table.
type EventBudgetModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name                string          `gorm:"type:varchar(255);not null"`
	EventDate           time.Time       `gorm:"type:date;not null"`
	TargetAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SavedAmount         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	MonthlyContribution decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`
	DeletedAt           gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the EventBudgetModel.
func (EventBudgetModel) TableName() string {
	return "event_budgets"
}

// ToEntity converts an EventBudgetModel to a domain EventBudget entity.
func (m *EventBudgetModel) ToEntity() *entity.EventBudget {
	return &entity.EventBudget{
		ID:                  m.ID,
		UserID:              m.UserID,
		Name:                m.Name,
		EventDate:           m.EventDate.UTC(),
		TargetAmount:        toFloat(m.TargetAmount),
		SavedAmount:         toFloat(m.SavedAmount),
		MonthlyContribution: toFloat(m.MonthlyContribution),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// EventBudgetFromEntity creates an EventBudgetModel from a domain entity.
func EventBudgetFromEntity(e *entity.EventBudget) *EventBudgetModel {
	return &EventBudgetModel{
		ID:                  e.ID,
		UserID:              e.UserID,
		Name:                e.Name,
		EventDate:           e.EventDate,
		TargetAmount:        toDecimal(e.TargetAmount),
		SavedAmount:         toDecimal(e.SavedAmount),
		MonthlyContribution: toDecimal(e.MonthlyContribution),
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

// LifeScenarioModel represents the life_scenarios table.
type LifeScenarioModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	OneTimeCost decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`

	// Not loaded by default, use Preload
	Adjustments []ScenarioAdjustmentModel `gorm:"foreignKey:ScenarioID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the LifeScenarioModel.
func (LifeScenarioModel) TableName() string {
	return "life_scenarios"
}

// ToEntity converts a LifeScenarioModel and its loaded adjustments to a domain entity.
func (m *LifeScenarioModel) ToEntity() *entity.LifeScenario {
	sc := &entity.LifeScenario{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		OneTimeCost: toFloat(m.OneTimeCost),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, a := range m.Adjustments {
		sc.Adjustments = append(sc.Adjustments, entity.ScenarioAdjustment{
			ID:       a.ID,
			Category: entity.NormalizeCategory(a.Category),
			Kind:     entity.AdjustmentKind(a.Kind),
			Value:    toFloat(a.Value),
		})
	}
	return sc
}

// LifeScenarioFromEntity creates a LifeScenarioModel with its adjustments from a domain entity.
func LifeScenarioFromEntity(sc *entity.LifeScenario) *LifeScenarioModel {
	m := &LifeScenarioModel{
		ID:          sc.ID,
		UserID:      sc.UserID,
		Name:        sc.Name,
		Description: sc.Description,
		OneTimeCost: toDecimal(sc.OneTimeCost),
		CreatedAt:   sc.CreatedAt,
		UpdatedAt:   sc.UpdatedAt,
	}
	for i, a := range sc.Adjustments {
		id := a.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		m.Adjustments = append(m.Adjustments, ScenarioAdjustmentModel{
			ID:         id,
			ScenarioID: sc.ID,
			Category:   a.Category,
			Kind:       string(a.Kind),
			Value:      toDecimal(a.Value),
			Position:   i,
		})
	}
	return m
}

// ScenarioAdjustmentModel represents the scenario_adjustments table.
type ScenarioAdjustmentModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ScenarioID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category   string          `gorm:"type:varchar(100);not null"`
	Kind       string          `gorm:"type:varchar(20);not null;default:'absolute'"`
	Value      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Position   int             `gorm:"not null;default:0"`
}

// TableName returns the table name for the ScenarioAdjustmentModel.
func (ScenarioAdjustmentModel) TableName() string {
	return "scenario_adjustments"
}
