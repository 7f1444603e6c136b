package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Type          string          `gorm:"type:varchar(20);not null;default:'savings'"`
	StartAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Deadline      time.Time       `gorm:"type:date;not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Not loaded by default, use Preload
	Milestones []MilestoneModel `gorm:"foreignKey:GoalID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel and its loaded milestones to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	g := &entity.Goal{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Type:          entity.GoalType(m.Type),
		StartAmount:   toFloat(m.StartAmount),
		CurrentAmount: toFloat(m.CurrentAmount),
		TargetAmount:  toFloat(m.TargetAmount),
		Deadline:      m.Deadline.UTC(),
		Status:        entity.GoalStatus(m.Status),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt,
	}
	for _, ms := range m.Milestones {
		g.Milestones = append(g.Milestones, entity.Milestone{
			ID:           ms.ID,
			Name:         ms.Name,
			TargetAmount: toFloat(ms.TargetAmount),
		})
	}
	return g
}

// GoalFromEntity creates a GoalModel with its milestones from a domain Goal entity.
func GoalFromEntity(g *entity.Goal) *GoalModel {
	m := &GoalModel{
		ID:            g.ID,
		UserID:        g.UserID,
		Name:          g.Name,
		Type:          string(g.Type),
		StartAmount:   toDecimal(g.StartAmount),
		CurrentAmount: toDecimal(g.CurrentAmount),
		TargetAmount:  toDecimal(g.TargetAmount),
		Deadline:      g.Deadline,
		Status:        string(g.Status),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
	for i, ms := range g.Milestones {
		id := ms.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		m.Milestones = append(m.Milestones, MilestoneModel{
			ID:           id,
			GoalID:       g.ID,
			Name:         ms.Name,
			TargetAmount: toDecimal(ms.TargetAmount),
			Position:     i,
		})
	}
	return m
}

// MilestoneModel represents the goal_milestones table.
type MilestoneModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GoalID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Position     int             `gorm:"not null;default:0"`
}

// TableName returns the table name for the MilestoneModel.
func (MilestoneModel) TableName() string {
	return "goal_milestones"
}
