// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlannedPurchase is a larger purchase the user saves up for.
type PlannedPurchase struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Name                string
	TargetAmount        float64
	SavedAmount         float64
	MonthlyContribution float64
	TargetDate          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// EventBudget is money set aside for a dated event such as a wedding or a trip.
type EventBudget struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Name                string
	EventDate           time.Time
	TargetAmount        float64
	SavedAmount         float64
	MonthlyContribution float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AdjustmentKind tells how a scenario adjustment changes a category.
type AdjustmentKind string

const (
	AdjustmentAbsolute   AdjustmentKind = "absolute"
	AdjustmentPercentage AdjustmentKind = "percentage"
)

// ScenarioAdjustment changes the monthly expenses of one category.
// Absolute values are added as is, percentage values relative to the
// category's current monthly expenses.
type ScenarioAdjustment struct {
	ID       uuid.UUID
	Category string
	Kind     AdjustmentKind
	Value    float64
}

// LifeScenario models a life change (moving, a child, a new car) as a
// one-time cost plus recurring changes to category expenses.
type LifeScenario struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	OneTimeCost float64
	Adjustments []ScenarioAdjustment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
