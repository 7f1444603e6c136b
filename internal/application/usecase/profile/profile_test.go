package profile

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
	"github.com/finance-tracker/planner/internal/integration/snapshot"
)

func newStore(userID uuid.UUID) *snapshot.Store {
	return &snapshot.Store{
		UserID:   userID,
		Currency: "EUR",
		Assets:   &entity.Assets{UserID: userID, Savings: 6000, Investments: 4000},
		IncomeSources: []*entity.IncomeSource{
			{ID: uuid.New(), UserID: userID, Name: "Gehalt", Amount: 3000, Frequency: entity.FrequencyMonthly, Active: true},
		},
		FixedCosts: []*entity.FixedCost{
			{ID: uuid.New(), UserID: userID, Name: "Miete", Category: "Wohnen", Amount: 1000, Frequency: entity.FrequencyMonthly},
			{ID: uuid.New(), UserID: userID, Name: "Haftpflicht", Category: "Versicherung", Amount: 600, Frequency: entity.FrequencyYearly},
		},
		VariableCosts: []*entity.VariableCostEstimate{
			{ID: uuid.New(), UserID: userID, Name: "Lebensmittel", Category: "Lebensmittel", MonthlyAmount: 450},
		},
		Debts: []*entity.Debt{
			{ID: uuid.New(), UserID: userID, Name: "Autokredit", Type: entity.DebtTypeLoan, OriginalAmount: 10000, CurrentBalance: 5000, MonthlyPayment: 200},
		},
	}
}

type failingProfileRepo struct{ snapshot.Store }

func (failingProfileRepo) ListFixedCosts(context.Context, uuid.UUID) ([]*entity.FixedCost, error) {
	return nil, errors.New("connection reset")
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestGetFinancialProfileUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	uc := NewGetFinancialProfileUseCase(newStore(userID), nil)

	t.Run("derives the monthly profile", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetFinancialProfileInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		p := out.Profile
		if !approx(p.MonthlyIncome, 3000) {
			t.Errorf("expected monthly income 3000, got %v", p.MonthlyIncome)
		}
		if !approx(p.MonthlyFixedCosts, 1050) {
			t.Errorf("expected fixed costs 1050, got %v", p.MonthlyFixedCosts)
		}
		if !approx(p.MonthlyExpenses, 1700) {
			t.Errorf("expected expenses 1700, got %v", p.MonthlyExpenses)
		}
		if !approx(p.AvailableIncome, 1300) {
			t.Errorf("expected available income 1300, got %v", p.AvailableIncome)
		}
		if !approx(p.NetWorth, 5000) {
			t.Errorf("expected net worth 5000, got %v", p.NetWorth)
		}
		if !approx(p.EmergencyFundMonths, 6000.0/1700.0) {
			t.Errorf("expected emergency fund months %v, got %v", 6000.0/1700.0, p.EmergencyFundMonths)
		}
		if len(out.Records.FixedCosts) != 2 {
			t.Errorf("expected 2 fixed cost records, got %d", len(out.Records.FixedCosts))
		}
	})

	t.Run("uses the injected scorer", func(t *testing.T) {
		fixed := NewGetFinancialProfileUseCase(newStore(userID), finance.HealthScorerFunc(func(finance.HealthInputs) int { return 42 }))
		out, err := fixed.Execute(ctx, GetFinancialProfileInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Profile.HealthScore != 42 {
			t.Errorf("expected health score 42, got %d", out.Profile.HealthScore)
		}
		if out.Profile.HealthGrade != "D" {
			t.Errorf("expected grade D, got %s", out.Profile.HealthGrade)
		}
	})

	t.Run("another user sees an empty profile", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetFinancialProfileInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Profile.MonthlyIncome != 0 || out.Profile.MonthlyExpenses != 0 {
			t.Errorf("expected empty profile, got %+v", out.Profile)
		}
	})

	t.Run("rejects missing user", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetFinancialProfileInput{})
		var profileErr *domainerror.ProfileError
		if !errors.As(err, &profileErr) {
			t.Fatalf("expected ProfileError, got %v", err)
		}
		if profileErr.Code != domainerror.ErrCodeProfileMissingUser {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeProfileMissingUser, profileErr.Code)
		}
	})

	t.Run("wraps repository failures", func(t *testing.T) {
		broken := NewGetFinancialProfileUseCase(&failingProfileRepo{Store: *newStore(userID)}, nil)
		_, err := broken.Execute(ctx, GetFinancialProfileInput{UserID: userID})
		var profileErr *domainerror.ProfileError
		if !errors.As(err, &profileErr) {
			t.Fatalf("expected ProfileError, got %v", err)
		}
		if profileErr.Code != domainerror.ErrCodeProfileInternalError {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeProfileInternalError, profileErr.Code)
		}
	})
}

func TestGetDebtOverviewUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	uc := NewGetDebtOverviewUseCase(newStore(userID))

	out, err := uc.Execute(context.Background(), GetDebtOverviewInput{UserID: userID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !approx(out.TotalPaid, 5000) {
		t.Errorf("expected total paid 5000, got %v", out.TotalPaid)
	}
	if !approx(out.Progress, 0.5) {
		t.Errorf("expected progress 0.5, got %v", out.Progress)
	}
	if len(out.Debts) != 1 || out.Debts[0].MonthsToPayoff == nil || *out.Debts[0].MonthsToPayoff != 25 {
		t.Errorf("expected one debt paid off in 25 months, got %+v", out.Debts)
	}
}
