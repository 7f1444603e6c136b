package planning

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/usecase/profile"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/snapshot"
)

type failingPlanningRepo struct{ *snapshot.Store }

func (failingPlanningRepo) ListEventBudgets(context.Context, uuid.UUID) ([]*entity.EventBudget, error) {
	return nil, errors.New("timeout")
}

func newStore(userID uuid.UUID) *snapshot.Store {
	wedding := time.Date(2025, time.September, 6, 0, 0, 0, 0, time.UTC)
	return &snapshot.Store{
		UserID: userID,
		Assets: &entity.Assets{UserID: userID, Savings: 5000},
		IncomeSources: []*entity.IncomeSource{
			{ID: uuid.New(), UserID: userID, Name: "Gehalt", Amount: 3000, Frequency: entity.FrequencyMonthly, Active: true},
		},
		FixedCosts: []*entity.FixedCost{
			{ID: uuid.New(), UserID: userID, Name: "Miete", Category: "Wohnen", Amount: 1000, Frequency: entity.FrequencyMonthly},
		},
		VariableCosts: []*entity.VariableCostEstimate{
			{ID: uuid.New(), UserID: userID, Name: "Einkauf", Category: "Lebensmittel", MonthlyAmount: 500},
		},
		PlannedPurchases: []*entity.PlannedPurchase{
			{ID: uuid.New(), UserID: userID, Name: "Laptop", TargetAmount: 1500, SavedAmount: 300, MonthlyContribution: 200},
		},
		EventBudgets: []*entity.EventBudget{
			{ID: uuid.New(), UserID: userID, Name: "Hochzeit", EventDate: wedding, TargetAmount: 5000, SavedAmount: 5000, MonthlyContribution: 100},
		},
		LifeScenarios: []*entity.LifeScenario{
			{
				ID: uuid.New(), UserID: userID, Name: "Umzug", OneTimeCost: 3000,
				Adjustments: []entity.ScenarioAdjustment{
					{Category: "Wohnen", Kind: entity.AdjustmentPercentage, Value: 20},
					{Category: "Lebensmittel", Kind: entity.AdjustmentAbsolute, Value: 100},
				},
			},
		},
	}
}

func TestGetPlanningOverviewUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := newStore(userID)
	profileUC := profile.NewGetFinancialProfileUseCase(store, nil)
	uc := NewGetPlanningOverviewUseCase(store, profileUC)
	asOf := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("evaluates purchases, events and scenarios", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetPlanningOverviewInput{UserID: userID, AsOf: asOf})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		laptop := out.Purchases[0]
		if laptop.MonthsToTarget == nil || *laptop.MonthsToTarget != 6 {
			t.Errorf("expected laptop in 6 months, got %v", laptop.MonthsToTarget)
		}
		if got := laptop.ProjectedCompletion.String(); got != "2025-09" {
			t.Errorf("expected completion 2025-09, got %s", got)
		}

		if out.Events[0].Remaining != 0 {
			t.Errorf("expected funded event, got remaining %v", out.Events[0].Remaining)
		}
		if out.TotalMonthlyCommitment != 200 {
			t.Errorf("expected commitment 200, got %v", out.TotalMonthlyCommitment)
		}
		if math.Abs(out.CommitmentShare-200.0/1500.0) > 1e-9 {
			t.Errorf("expected commitment share %v, got %v", 200.0/1500.0, out.CommitmentShare)
		}

		move := out.Scenarios[0]
		if move.MonthlyDelta != 300 {
			t.Errorf("expected monthly delta 300, got %v", move.MonthlyDelta)
		}
		if move.NewAvailable != 1200 {
			t.Errorf("expected new available 1200, got %v", move.NewAvailable)
		}
		if move.MonthsToRecover == nil || *move.MonthsToRecover != 3 {
			t.Errorf("expected recovery in 3 months, got %v", move.MonthsToRecover)
		}
		if !move.AffordableFromSavings {
			t.Error("expected one-time cost to be affordable from savings")
		}
	})

	t.Run("rejects missing user", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetPlanningOverviewInput{})
		var planErr *domainerror.PlanningError
		if !errors.As(err, &planErr) || planErr.Code != domainerror.ErrCodePlanningMissingUser {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodePlanningMissingUser, err)
		}
	})

	t.Run("wraps repository failures", func(t *testing.T) {
		broken := NewGetPlanningOverviewUseCase(failingPlanningRepo{store}, profileUC)
		_, err := broken.Execute(ctx, GetPlanningOverviewInput{UserID: userID, AsOf: asOf})
		var planErr *domainerror.PlanningError
		if !errors.As(err, &planErr) || planErr.Code != domainerror.ErrCodePlanningInternalError {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodePlanningInternalError, err)
		}
	})
}
