// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Quarter identifies a calendar quarter.
type Quarter int

const (
	Q1 Quarter = iota + 1
	Q2
	Q3
	Q4
)

// Quarters lists all quarters in calendar order.
var Quarters = []Quarter{Q1, Q2, Q3, Q4}

// String returns the quarter label, e.g. "Q1".
func (q Quarter) String() string {
	switch q {
	case Q1:
		return "Q1"
	case Q2:
		return "Q2"
	case Q3:
		return "Q3"
	case Q4:
		return "Q4"
	}
	return "Q?"
}

// ConfirmedQuarters records which bonus quarters the user has confirmed
// as paid out.
type ConfirmedQuarters struct {
	Q1 bool
	Q2 bool
	Q3 bool
	Q4 bool
}

// Get returns the confirmation flag of q.
func (c ConfirmedQuarters) Get(q Quarter) bool {
	switch q {
	case Q1:
		return c.Q1
	case Q2:
		return c.Q2
	case Q3:
		return c.Q3
	case Q4:
		return c.Q4
	}
	return false
}

// Count returns the number of confirmed quarters.
func (c ConfirmedQuarters) Count() int {
	n := 0
	for _, q := range Quarters {
		if c.Get(q) {
			n++
		}
	}
	return n
}

// IncomeSource is a recurring income such as a salary or a bonus.
type IncomeSource struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	Amount            float64
	Frequency         Frequency
	Active            bool
	ConfirmedQuarters *ConfirmedQuarters // nil unless the source pays a quarterly bonus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsQuarterlyBonus reports whether the source pays a quarterly bonus.
func (s *IncomeSource) IsQuarterlyBonus() bool {
	return s.Frequency == FrequencyQuarterlyBonus
}

// FixedCost is a recurring obligation such as rent or insurance.
type FixedCost struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Category  string
	Amount    float64
	Frequency Frequency
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VariableCostEstimate is an estimated monthly spend for a category.
type VariableCostEstimate struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Category      string
	MonthlyAmount float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DebtType classifies a debt.
type DebtType string

const (
	DebtTypeLoan       DebtType = "loan"
	DebtTypeMortgage   DebtType = "mortgage"
	DebtTypeCreditCard DebtType = "credit-card"
	DebtTypeStudent    DebtType = "student"
	DebtTypeOther      DebtType = "other"
)

// Debt is an outstanding liability.
// InterestRate is the nominal annual rate in percent.
type Debt struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           DebtType
	OriginalAmount float64
	CurrentBalance float64
	InterestRate   float64
	MonthlyPayment float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Assets is the per-user snapshot of liquid and other holdings.
type Assets struct {
	UserID      uuid.UUID
	Savings     float64
	Investments float64
	Other       float64
	UpdatedAt   time.Time
}

// Total returns the sum of all asset classes.
func (a *Assets) Total() float64 {
	if a == nil {
		return 0
	}
	return a.Savings + a.Investments + a.Other
}
