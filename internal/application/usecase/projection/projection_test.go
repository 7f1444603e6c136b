package projection

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
	"github.com/finance-tracker/planner/internal/domain/finance"
	"github.com/finance-tracker/planner/internal/integration/snapshot"
)

var asOf = time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

func newStore(userID uuid.UUID) *snapshot.Store {
	return &snapshot.Store{
		UserID:   userID,
		Currency: "EUR",
		Assets:   &entity.Assets{UserID: userID, Savings: 6000},
		IncomeSources: []*entity.IncomeSource{
			{ID: uuid.New(), UserID: userID, Name: "Gehalt", Amount: 3000, Frequency: entity.FrequencyMonthly, Active: true},
		},
		FixedCosts: []*entity.FixedCost{
			{ID: uuid.New(), UserID: userID, Name: "Miete", Category: "Wohnen", Amount: 1050, Frequency: entity.FrequencyMonthly},
		},
		VariableCosts: []*entity.VariableCostEstimate{
			{ID: uuid.New(), UserID: userID, Name: "Lebensmittel", Category: "Lebensmittel", MonthlyAmount: 450},
		},
		Debts: []*entity.Debt{
			{ID: uuid.New(), UserID: userID, Name: "Autokredit", OriginalAmount: 10000, CurrentBalance: 5000, MonthlyPayment: 200},
		},
		Investments: []*entity.Investment{
			{ID: uuid.New(), UserID: userID, Name: "MSCI World", Type: entity.InvestmentTypeETF, Quantity: 10, PurchasePrice: 80, CurrentPrice: 100, Active: true},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func projectionCode(t *testing.T, err error) domainerror.ProjectionErrorCode {
	t.Helper()
	var projErr *domainerror.ProjectionError
	if !errors.As(err, &projErr) {
		t.Fatalf("expected ProjectionError, got %v", err)
	}
	return projErr.Code
}

func TestGetCashFlowProjectionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := newStore(userID)
	uc := NewGetCashFlowProjectionUseCase(
		profile.NewGetFinancialProfileUseCase(store, nil),
		CashFlowDefaults{BestMultiplier: 1.1, WorstMultiplier: 0.9},
	)

	t.Run("projects all scenarios from the profile", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetCashFlowProjectionInput{UserID: userID, AsOf: asOf})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out.Projections) != 3 {
			t.Fatalf("expected 3 projections, got %d", len(out.Projections))
		}
		if out.Baseline.StartingCash != 6000 || out.Baseline.StartingDebt != 5000 {
			t.Errorf("expected starting cash 6000 and debt 5000, got %v and %v", out.Baseline.StartingCash, out.Baseline.StartingDebt)
		}

		base := out.Projections[0]
		if base.Scenario != finance.ScenarioBase {
			t.Errorf("expected base scenario first, got %s", base.Scenario)
		}
		if len(base.Points) != finance.ProjectionMonths {
			t.Errorf("expected %d points, got %d", finance.ProjectionMonths, len(base.Points))
		}
		if got := base.Points[0].Month.String(); got != "2025-03" {
			t.Errorf("expected first month 2025-03, got %s", got)
		}
		// 1000 opening balance plus twelve months of 3000 - 1500.
		if !approx(base.EndingCash, 19000) {
			t.Errorf("expected ending cash 19000, got %v", base.EndingCash)
		}

		best, worst := out.Projections[1], out.Projections[2]
		if !(best.EndingCash > base.EndingCash && base.EndingCash > worst.EndingCash) {
			t.Errorf("expected best > base > worst, got %v, %v, %v", best.EndingCash, base.EndingCash, worst.EndingCash)
		}
	})

	t.Run("single scenario with overrides", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetCashFlowProjectionInput{
			UserID:   userID,
			Scenario: finance.ScenarioBase,
			Overrides: CashFlowOverrides{
				ExpectedIncome: ptr(2000.0),
				StartingDebt:   ptr(0.0),
			},
			AsOf: asOf,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out.Projections) != 1 {
			t.Fatalf("expected 1 projection, got %d", len(out.Projections))
		}
		if !approx(out.Projections[0].EndingCash, 6000+12*500) {
			t.Errorf("expected ending cash 12000, got %v", out.Projections[0].EndingCash)
		}
	})

	tests := []struct {
		name  string
		input GetCashFlowProjectionInput
		code  domainerror.ProjectionErrorCode
	}{
		{
			name:  "missing user",
			input: GetCashFlowProjectionInput{},
			code:  domainerror.ErrCodeProjectionMissingUser,
		},
		{
			name:  "unknown scenario",
			input: GetCashFlowProjectionInput{UserID: userID, Scenario: "optimistic"},
			code:  domainerror.ErrCodeInvalidScenario,
		},
		{
			name:  "negative income",
			input: GetCashFlowProjectionInput{UserID: userID, Overrides: CashFlowOverrides{ExpectedIncome: ptr(-1.0)}},
			code:  domainerror.ErrCodeNegativeAmount,
		},
		{
			name:  "zero worst multiplier",
			input: GetCashFlowProjectionInput{UserID: userID, Overrides: CashFlowOverrides{WorstMultiplier: ptr(0.0)}},
			code:  domainerror.ErrCodeInvalidMultiplier,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			if code := projectionCode(t, err); code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, code)
			}
		})
	}
}

func TestSimulateWhatIfUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := newStore(userID)
	profileUC := profile.NewGetFinancialProfileUseCase(store, nil)
	uc := NewSimulateWhatIfUseCase(profileUC, NewGetPortfolioSummaryUseCase(store), SimulationDefaults{
		ExpectedReturn:   0,
		SavingsRate:      0.5,
		TimeHorizonYears: 1,
	})

	t.Run("uses the portfolio value and simulated income", func(t *testing.T) {
		out, err := uc.Execute(ctx, SimulateWhatIfInput{
			UserID:    userID,
			Simulated: SimulatedBudget{Income: ptr(3500.0)},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		r := out.Result
		if !approx(out.Input.CurrentPortfolioValue, 1000) {
			t.Errorf("expected portfolio value 1000, got %v", out.Input.CurrentPortfolioValue)
		}
		if !approx(r.AvailableDelta, 500) {
			t.Errorf("expected available delta 500, got %v", r.AvailableDelta)
		}
		if !approx(r.MonthlyContribution, 900) {
			t.Errorf("expected monthly contribution 900, got %v", r.MonthlyContribution)
		}
		if !approx(r.FinalPortfolioValue, 1000+12*900) {
			t.Errorf("expected final value 11800, got %v", r.FinalPortfolioValue)
		}
		if !approx(r.FireTarget, 1700*12/0.04) {
			t.Errorf("expected fire target 510000, got %v", r.FireTarget)
		}
		if r.YearsToFire != nil {
			t.Errorf("expected no FIRE estimate without returns, got %v", *r.YearsToFire)
		}
	})

	t.Run("explicit portfolio value skips the lookup", func(t *testing.T) {
		out, err := uc.Execute(ctx, SimulateWhatIfInput{
			UserID:                userID,
			CurrentPortfolioValue: ptr(0.0),
			ExpectedReturn:        ptr(0.06),
			TimeHorizonYears:      ptr(10),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out.Result.Projection) != 121 {
			t.Errorf("expected 121 projection points, got %d", len(out.Result.Projection))
		}
		if out.Result.YearsToFire == nil {
			t.Error("expected a FIRE estimate with positive returns")
		}
	})

	tests := []struct {
		name  string
		input SimulateWhatIfInput
		code  domainerror.ProjectionErrorCode
	}{
		{"missing user", SimulateWhatIfInput{}, domainerror.ErrCodeProjectionMissingUser},
		{"savings rate above one", SimulateWhatIfInput{UserID: userID, SavingsRate: ptr(1.5)}, domainerror.ErrCodeInvalidSavingsRate},
		{"return below minus one", SimulateWhatIfInput{UserID: userID, ExpectedReturn: ptr(-2.0)}, domainerror.ErrCodeInvalidExpectedReturn},
		{"zero horizon", SimulateWhatIfInput{UserID: userID, TimeHorizonYears: ptr(0)}, domainerror.ErrCodeInvalidTimeHorizon},
		{"horizon above fifty", SimulateWhatIfInput{UserID: userID, TimeHorizonYears: ptr(51)}, domainerror.ErrCodeInvalidTimeHorizon},
		{"negative costs", SimulateWhatIfInput{UserID: userID, Simulated: SimulatedBudget{FixedCosts: ptr(-10.0)}}, domainerror.ErrCodeNegativeAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			if code := projectionCode(t, err); code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, code)
			}
		})
	}
}

func TestGetPortfolioSummaryUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	uc := NewGetPortfolioSummaryUseCase(newStore(userID))

	out, err := uc.Execute(context.Background(), GetPortfolioSummaryInput{UserID: userID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !approx(out.TotalValue, 1000) {
		t.Errorf("expected total value 1000, got %v", out.TotalValue)
	}
	if !approx(out.TotalGainLoss, 200) {
		t.Errorf("expected gain 200, got %v", out.TotalGainLoss)
	}

	if _, err := uc.Execute(context.Background(), GetPortfolioSummaryInput{}); err == nil {
		t.Error("expected error for missing user")
	}
}
