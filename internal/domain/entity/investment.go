// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvestmentType classifies an investment position.
type InvestmentType string

const (
	InvestmentTypeETF    InvestmentType = "etf"
	InvestmentTypeStock  InvestmentType = "stock"
	InvestmentTypeBond   InvestmentType = "bond"
	InvestmentTypeCrypto InvestmentType = "crypto"
	InvestmentTypeFund   InvestmentType = "fund"
	InvestmentTypeOther  InvestmentType = "other"
)

// Investment is a held position. Prices are per unit and entered manually.
type Investment struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Type          InvestmentType
	Quantity      float64
	PurchasePrice float64
	CurrentPrice  float64
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Value returns quantity × current price.
func (i *Investment) Value() float64 {
	return i.Quantity * i.CurrentPrice
}

// CostBasis returns quantity × purchase price.
func (i *Investment) CostBasis() float64 {
	return i.Quantity * i.PurchasePrice
}

// GainLoss returns the unrealised gain (negative for a loss).
func (i *Investment) GainLoss() float64 {
	return i.Value() - i.CostBasis()
}

// SavingsPlan is a recurring contribution into an investment.
type SavingsPlan struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	InvestmentID *uuid.UUID
	Name         string
	Amount       float64
	Frequency    Frequency
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
