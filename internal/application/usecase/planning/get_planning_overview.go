// Package planning contains purchase, event and life scenario planning use cases.
package planning

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/usecase/profile"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// GetPlanningOverviewInput represents the input for the planning overview.
type GetPlanningOverviewInput struct {
	UserID uuid.UUID
	AsOf   time.Time
}

// GetPlanningOverviewUseCase evaluates planned purchases, event budgets and
// life scenarios against the financial profile.
type GetPlanningOverviewUseCase struct {
	planningRepo adapter.PlanningRepository
	profileUC    *profile.GetFinancialProfileUseCase
}

// NewGetPlanningOverviewUseCase creates a new GetPlanningOverviewUseCase instance.
func NewGetPlanningOverviewUseCase(
	planningRepo adapter.PlanningRepository,
	profileUC *profile.GetFinancialProfileUseCase,
) *GetPlanningOverviewUseCase {
	return &GetPlanningOverviewUseCase{
		planningRepo: planningRepo,
		profileUC:    profileUC,
	}
}

// Execute builds the overview.
func (uc *GetPlanningOverviewUseCase) Execute(ctx context.Context, input GetPlanningOverviewInput) (*finance.PlanningOverview, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodePlanningMissingUser,
			"user id is required",
			domainerror.ErrMissingUserID,
		)
	}
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	prof, err := uc.profileUC.Execute(ctx, profile.GetFinancialProfileInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	in := finance.PlanningInput{
		FixedCosts:    prof.Records.FixedCosts,
		VariableCosts: prof.Records.VariableCosts,
		Profile:       prof.Profile,
		AsOf:          asOf,
	}
	if err := uc.load(ctx, input.UserID, &in); err != nil {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodePlanningInternalError,
			"failed to load plans",
			err,
		)
	}

	overview := finance.BuildPlanningOverview(in)
	slog.DebugContext(ctx, "Planning overview built",
		"userID", input.UserID,
		"purchases", len(overview.Purchases),
		"events", len(overview.Events),
		"scenarios", len(overview.Scenarios),
	)
	return &overview, nil
}

func (uc *GetPlanningOverviewUseCase) load(ctx context.Context, userID uuid.UUID, in *finance.PlanningInput) error {
	var err error
	if in.Purchases, err = uc.planningRepo.ListPlannedPurchases(ctx, userID); err != nil {
		return fmt.Errorf("planned purchases: %w", err)
	}
	if in.Events, err = uc.planningRepo.ListEventBudgets(ctx, userID); err != nil {
		return fmt.Errorf("event budgets: %w", err)
	}
	if in.Scenarios, err = uc.planningRepo.ListLifeScenarios(ctx, userID); err != nil {
		return fmt.Errorf("life scenarios: %w", err)
	}
	return nil
}
