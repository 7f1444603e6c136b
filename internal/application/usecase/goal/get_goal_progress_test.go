package goal

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

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newStore(userID uuid.UUID) *snapshot.Store {
	return &snapshot.Store{
		UserID: userID,
		IncomeSources: []*entity.IncomeSource{
			{ID: uuid.New(), UserID: userID, Name: "Gehalt", Amount: 3000, Frequency: entity.FrequencyMonthly, Active: true},
		},
		Goals: []*entity.Goal{
			{
				ID: uuid.New(), UserID: userID, Name: "Notgroschen", Type: entity.GoalTypeSavings,
				CurrentAmount: 3000, TargetAmount: 12000,
				CreatedAt: date(2025, 1, 1), Deadline: date(2026, 1, 1), Status: entity.GoalStatusActive,
				Milestones: []entity.Milestone{
					{ID: uuid.New(), Name: "Erste 2000", TargetAmount: 2000},
					{ID: uuid.New(), Name: "Halbzeit", TargetAmount: 6000},
				},
			},
			{
				ID: uuid.New(), UserID: userID, Name: "Gehaltserhöhung", Type: entity.GoalTypeIncome,
				StartAmount: 2500, CurrentAmount: 0, TargetAmount: 4000,
				CreatedAt: date(2025, 1, 1), Deadline: date(2027, 1, 1), Status: entity.GoalStatusActive,
			},
			{
				ID: uuid.New(), UserID: userID, Name: "Weltreise", Type: entity.GoalTypeSavings,
				CurrentAmount: 500, TargetAmount: 8000,
				CreatedAt: date(2024, 6, 1), Deadline: date(2026, 6, 1), Status: entity.GoalStatusPaused,
			},
		},
	}
}

func TestGetGoalProgressUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := newStore(userID)
	uc := NewGetGoalProgressUseCase(store, profile.NewGetFinancialProfileUseCase(store, nil))
	asOf := date(2025, 4, 1)

	t.Run("projects active goals with live income", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetGoalProgressInput{UserID: userID, AsOf: asOf})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out.Goals) != 2 {
			t.Fatalf("expected 2 active goals, got %d", len(out.Goals))
		}
		if out.LiveMonthlyIncome != 3000 {
			t.Errorf("expected live income 3000, got %v", out.LiveMonthlyIncome)
		}

		savings := out.Goals[0]
		if math.Abs(savings.Progress-0.25) > 1e-9 {
			t.Errorf("expected progress 0.25, got %v", savings.Progress)
		}
		if !savings.OnTrack {
			t.Error("expected savings goal to be on track")
		}
		if savings.NextMilestone == nil || savings.NextMilestone.Name != "Halbzeit" {
			t.Errorf("expected next milestone Halbzeit, got %+v", savings.NextMilestone)
		}

		income := out.Goals[1]
		if income.CurrentAmount != 3000 {
			t.Errorf("expected income goal measured at 3000, got %v", income.CurrentAmount)
		}
		if math.Abs(income.Progress-1.0/3.0) > 1e-9 {
			t.Errorf("expected progress 1/3, got %v", income.Progress)
		}
		if out.OnTrackCount != 2 {
			t.Errorf("expected 2 goals on track, got %d", out.OnTrackCount)
		}
	})

	t.Run("status filter selects paused goals", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetGoalProgressInput{UserID: userID, Status: entity.GoalStatusPaused, AsOf: asOf})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out.Goals) != 1 || out.Goals[0].Goal.Name != "Weltreise" {
			t.Errorf("expected only the paused goal, got %d goals", len(out.Goals))
		}
		if out.LiveMonthlyIncome != 0 {
			t.Errorf("expected no income lookup without income goals, got %v", out.LiveMonthlyIncome)
		}
	})

	tests := []struct {
		name  string
		input GetGoalProgressInput
		code  domainerror.GoalErrorCode
	}{
		{"missing user", GetGoalProgressInput{}, domainerror.ErrCodeGoalMissingUser},
		{"unknown status", GetGoalProgressInput{UserID: userID, Status: "done"}, domainerror.ErrCodeInvalidGoalStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			var goalErr *domainerror.GoalError
			if !errors.As(err, &goalErr) {
				t.Fatalf("expected GoalError, got %v", err)
			}
			if goalErr.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, goalErr.Code)
			}
		})
	}
}
