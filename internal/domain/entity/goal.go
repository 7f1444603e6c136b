// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalType represents what a goal measures.
type GoalType string

const (
	GoalTypeSavings    GoalType = "savings"
	GoalTypeDebtPayoff GoalType = "debt-payoff"
	GoalTypeIncome     GoalType = "income"
	GoalTypeInvestment GoalType = "investment"
	GoalTypeOther      GoalType = "other"
)

// GoalStatus represents the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive   GoalStatus = "active"
	GoalStatusPaused   GoalStatus = "paused"
	GoalStatusAchieved GoalStatus = "achieved"
)

// Goal represents a financial target with a deadline.
// For income goals CurrentAmount is not authoritative: progress is measured
// against the live monthly income of the financial profile.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Type          GoalType
	StartAmount   float64
	CurrentAmount float64
	TargetAmount  float64
	Deadline      time.Time
	Status        GoalStatus
	Milestones    []Milestone
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Milestone is an intermediate target of a goal.
type Milestone struct {
	ID           uuid.UUID
	Name         string
	TargetAmount float64
}

// IsIncomeGoal reports whether the goal tracks monthly income.
func (g *Goal) IsIncomeGoal() bool {
	return g.Type == GoalTypeIncome
}

// IsActive reports whether the goal is being pursued.
func (g *Goal) IsActive() bool {
	return g.Status == GoalStatusActive
}

// IsValid reports whether the status is known.
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusActive, GoalStatusPaused, GoalStatusAchieved:
		return true
	}
	return false
}
