package snapshot

import (
	"context"
	"os"
	"sort"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// Store holds one user's records in memory and implements the read
// repositories of the adapter package. Records of other users are never
// returned. A Store is safe for concurrent reads.
type Store struct {
	UserID   uuid.UUID
	Currency string

	Assets           *entity.Assets
	IncomeSources    []*entity.IncomeSource
	FixedCosts       []*entity.FixedCost
	VariableCosts    []*entity.VariableCostEstimate
	Debts            []*entity.Debt
	Transactions     []*entity.Transaction
	Budgets          []*entity.Budget
	Investments      []*entity.Investment
	SavingsPlans     []*entity.SavingsPlan
	Goals            []*entity.Goal
	PlannedPurchases []*entity.PlannedPurchase
	EventBudgets     []*entity.EventBudget
	LifeScenarios    []*entity.LifeScenario
}

var (
	_ adapter.TransactionRepository = (*Store)(nil)
	_ adapter.BudgetRepository      = (*Store)(nil)
	_ adapter.ProfileRepository     = (*Store)(nil)
	_ adapter.InvestmentRepository  = (*Store)(nil)
	_ adapter.GoalRepository        = (*Store)(nil)
	_ adapter.PlanningRepository    = (*Store)(nil)
)

func (s *Store) owns(userID uuid.UUID) bool {
	return userID == s.UserID
}

// ListTransactions implements adapter.TransactionRepository.
func (s *Store) ListTransactions(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	out := []*entity.Transaction{}
	if !s.owns(filter.UserID) {
		return out, nil
	}
	for _, tx := range s.Transactions {
		if filter.StartDate != nil && tx.Date.Before(dayStart(*filter.StartDate)) {
			continue
		}
		if filter.EndDate != nil && !tx.Date.Before(dayStart(*filter.EndDate).AddDate(0, 0, 1)) {
			continue
		}
		if filter.Type != nil && tx.Type != *filter.Type {
			continue
		}
		if filter.Category != "" && tx.Category != filter.Category {
			continue
		}
		out = append(out, tx)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// ListBudgets implements adapter.BudgetRepository.
func (s *Store) ListBudgets(_ context.Context, userID uuid.UUID, month *string) ([]*entity.Budget, error) {
	out := []*entity.Budget{}
	if !s.owns(userID) {
		return out, nil
	}
	for _, b := range s.Budgets {
		if month == nil || b.Month == *month {
			out = append(out, b)
		}
	}
	return out, nil
}

// ListIncomeSources implements adapter.ProfileRepository.
func (s *Store) ListIncomeSources(_ context.Context, userID uuid.UUID) ([]*entity.IncomeSource, error) {
	return owned(s, userID, s.IncomeSources), nil
}

// ListFixedCosts implements adapter.ProfileRepository.
func (s *Store) ListFixedCosts(_ context.Context, userID uuid.UUID) ([]*entity.FixedCost, error) {
	return owned(s, userID, s.FixedCosts), nil
}

// ListVariableCosts implements adapter.ProfileRepository.
func (s *Store) ListVariableCosts(_ context.Context, userID uuid.UUID) ([]*entity.VariableCostEstimate, error) {
	return owned(s, userID, s.VariableCosts), nil
}

// ListDebts implements adapter.ProfileRepository.
func (s *Store) ListDebts(_ context.Context, userID uuid.UUID) ([]*entity.Debt, error) {
	return owned(s, userID, s.Debts), nil
}

// GetAssets implements adapter.ProfileRepository.
func (s *Store) GetAssets(_ context.Context, userID uuid.UUID) (*entity.Assets, error) {
	if !s.owns(userID) {
		return nil, nil
	}
	return s.Assets, nil
}

// ListInvestments implements adapter.InvestmentRepository.
func (s *Store) ListInvestments(_ context.Context, userID uuid.UUID) ([]*entity.Investment, error) {
	return owned(s, userID, s.Investments), nil
}

// ListSavingsPlans implements adapter.InvestmentRepository.
func (s *Store) ListSavingsPlans(_ context.Context, userID uuid.UUID) ([]*entity.SavingsPlan, error) {
	return owned(s, userID, s.SavingsPlans), nil
}

// ListGoals implements adapter.GoalRepository.
func (s *Store) ListGoals(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return owned(s, userID, s.Goals), nil
}

// ListPlannedPurchases implements adapter.PlanningRepository.
func (s *Store) ListPlannedPurchases(_ context.Context, userID uuid.UUID) ([]*entity.PlannedPurchase, error) {
	return owned(s, userID, s.PlannedPurchases), nil
}

// ListEventBudgets implements adapter.PlanningRepository.
func (s *Store) ListEventBudgets(_ context.Context, userID uuid.UUID) ([]*entity.EventBudget, error) {
	return owned(s, userID, s.EventBudgets), nil
}

// ListLifeScenarios implements adapter.PlanningRepository.
func (s *Store) ListLifeScenarios(_ context.Context, userID uuid.UUID) ([]*entity.LifeScenario, error) {
	return owned(s, userID, s.LifeScenarios), nil
}

// owned returns a copy of records when userID owns the store, an empty slice otherwise.
func owned[T any](s *Store, userID uuid.UUID, records []T) []T {
	if !s.owns(userID) {
		return []T{}
	}
	out := make([]T, len(records))
	copy(out, records)
	return out
}

// WriteExample writes a documented example snapshot to path. Existing files
// are not overwritten.
func WriteExample(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(Example())
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
