// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/usecase/profile"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// GetGoalProgressInput represents the input for projecting goals.
type GetGoalProgressInput struct {
	UserID uuid.UUID
	// Status restricts the goals projected. Empty means active goals only.
	Status entity.GoalStatus
	AsOf   time.Time
}

// GetGoalProgressOutput represents the projected goals.
type GetGoalProgressOutput struct {
	Goals             []finance.GoalProgress
	LiveMonthlyIncome float64
	OnTrackCount      int
}

// GetGoalProgressUseCase projects progress, pace and completion of goals.
type GetGoalProgressUseCase struct {
	goalRepo  adapter.GoalRepository
	profileUC *profile.GetFinancialProfileUseCase
}

// NewGetGoalProgressUseCase creates a new GetGoalProgressUseCase instance.
func NewGetGoalProgressUseCase(
	goalRepo adapter.GoalRepository,
	profileUC *profile.GetFinancialProfileUseCase,
) *GetGoalProgressUseCase {
	return &GetGoalProgressUseCase{
		goalRepo:  goalRepo,
		profileUC: profileUC,
	}
}

// Execute loads the goals and projects them. The live monthly income is only
// derived when an income goal is part of the result.
func (uc *GetGoalProgressUseCase) Execute(ctx context.Context, input GetGoalProgressInput) (*GetGoalProgressOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	goals, err := uc.goalRepo.ListGoals(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalInternalError,
			"failed to list goals",
			err,
		)
	}

	status := input.Status
	if status == "" {
		status = entity.GoalStatusActive
	}
	selected := make([]*entity.Goal, 0, len(goals))
	needsIncome := false
	for _, g := range goals {
		if g.Status != status {
			continue
		}
		selected = append(selected, g)
		needsIncome = needsIncome || g.IsIncomeGoal()
	}

	output := &GetGoalProgressOutput{Goals: make([]finance.GoalProgress, 0, len(selected))}
	if needsIncome {
		prof, err := uc.profileUC.Execute(ctx, profile.GetFinancialProfileInput{UserID: input.UserID})
		if err != nil {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalProfileUnavailable,
				"failed to derive live monthly income",
				domainerror.ErrGoalProfileUnavailable,
			)
		}
		output.LiveMonthlyIncome = prof.Profile.MonthlyIncome
	}

	for _, g := range selected {
		p := finance.ProjectGoal(g, output.LiveMonthlyIncome, asOf)
		if p.OnTrack {
			output.OnTrackCount++
		}
		output.Goals = append(output.Goals, p)
	}

	slog.DebugContext(ctx, "Goals projected",
		"userID", input.UserID,
		"status", status,
		"count", len(output.Goals),
		"onTrack", output.OnTrackCount,
	)
	return output, nil
}

func (uc *GetGoalProgressUseCase) validateInput(input GetGoalProgressInput) error {
	if input.UserID == uuid.Nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalMissingUser,
			"user id is required",
			domainerror.ErrMissingUserID,
		)
	}
	if input.Status != "" && !input.Status.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalStatus,
			"status must be: active, paused or achieved",
			domainerror.ErrInvalidGoalStatus,
		)
	}
	return nil
}
