// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is known.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a booked income or expense.
// Amount is always non-negative; the direction is given by Type.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Amount      float64
	Type        TransactionType
	Category    string
	Account     string
	IsRecurring bool
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	amount float64,
	transactionType TransactionType,
	category string,
	account string,
	isRecurring bool,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Amount:      amount,
		Type:        transactionType,
		Category:    NormalizeCategory(category),
		Account:     account,
		IsRecurring: isRecurring,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Budget is the planned spending for one category in one calendar month.
// Month uses the "YYYY-MM" format.
type Budget struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Month        string
	Category     string
	BudgetAmount float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
