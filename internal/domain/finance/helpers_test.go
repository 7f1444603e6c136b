package finance

import (
	"math"
	"testing"
	"time"

	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/google/uuid"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func assertFloat(t *testing.T, name string, expected, got float64) {
	t.Helper()
	if !approx(expected, got) {
		t.Errorf("expected %s %v, got %v", name, expected, got)
	}
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func expense(day string, amount float64, category string) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		Date:     date(day),
		Amount:   amount,
		Type:     entity.TransactionTypeExpense,
		Category: category,
	}
}

func income(day string, amount float64, category string) *entity.Transaction {
	tx := expense(day, amount, category)
	tx.Type = entity.TransactionTypeIncome
	return tx
}

func budget(month, category string, amount float64) *entity.Budget {
	return &entity.Budget{ID: uuid.New(), Month: month, Category: category, BudgetAmount: amount}
}

func month(s string) Month {
	m, err := ParseMonth(s)
	if err != nil {
		panic(err)
	}
	return m
}
