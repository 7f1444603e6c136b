package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
	"github.com/finance-tracker/planner/internal/integration/snapshot"
)

func TestGetAnalyticsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	day := func(m time.Month, d int) time.Time { return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC) }
	expense := func(date time.Time, amount float64, category string) *entity.Transaction {
		return entity.NewTransaction(userID, date, amount, entity.TransactionTypeExpense, category, "Giro", false, "")
	}

	store := &snapshot.Store{
		UserID: userID,
		Transactions: []*entity.Transaction{
			expense(day(time.January, 6), 100, "Restaurant"),
			expense(day(time.February, 3), 150, "Restaurant"),
			expense(day(time.March, 3), 300, "Restaurant"),
			expense(day(time.March, 4), 80, "Lebensmittel"),
			// outside a three month window
			expense(time.Date(2024, time.December, 2, 0, 0, 0, 0, time.UTC), 999, "Restaurant"),
		},
		Budgets: []*entity.Budget{
			{ID: uuid.New(), UserID: userID, Month: "2025-03", Category: "Restaurant", BudgetAmount: 200},
		},
	}
	uc := NewGetAnalyticsUseCase(store, store, finance.DefaultAnalyticsThresholds(), 3)
	asOf := day(time.March, 20)

	t.Run("analyses the default window", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetAnalyticsInput{UserID: userID, AsOf: asOf})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out.Window) != 3 {
			t.Errorf("expected 3 months window, got %d", len(out.Window))
		}
		if out.TotalExpenses != 630 {
			t.Errorf("expected total expenses 630, got %v", out.TotalExpenses)
		}
		if len(out.MissedSavingsOpportunities) != 1 {
			t.Fatalf("expected 1 missed saving, got %d", len(out.MissedSavingsOpportunities))
		}
		missed := out.MissedSavingsOpportunities[0]
		if missed.Category != "Restaurant" || missed.PotentialSavings != 100 {
			t.Errorf("expected Restaurant over by 100, got %s over by %v", missed.Category, missed.PotentialSavings)
		}
		if out.TotalMissedSavings != 100 {
			t.Errorf("expected total missed savings 100, got %v", out.TotalMissedSavings)
		}
	})

	tests := []struct {
		name  string
		input GetAnalyticsInput
		code  domainerror.AnalyticsErrorCode
	}{
		{"missing user", GetAnalyticsInput{AsOf: asOf}, domainerror.ErrCodeAnalyticsMissingUser},
		{"negative months", GetAnalyticsInput{UserID: userID, MonthsBack: -1, AsOf: asOf}, domainerror.ErrCodeInvalidMonthsBack},
		{"too many months", GetAnalyticsInput{UserID: userID, MonthsBack: MaxMonthsBack + 1, AsOf: asOf}, domainerror.ErrCodeInvalidMonthsBack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			var analyticsErr *domainerror.AnalyticsError
			if !errors.As(err, &analyticsErr) {
				t.Fatalf("expected AnalyticsError, got %v", err)
			}
			if analyticsErr.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, analyticsErr.Code)
			}
		})
	}
}
