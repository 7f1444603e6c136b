// Package profile contains financial profile use cases.
package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// GetFinancialProfileInput represents the input for deriving a profile.
type GetFinancialProfileInput struct {
	UserID uuid.UUID
}

// GetFinancialProfileOutput holds the derived profile and the records it was
// derived from, so callers can build on both without reloading.
type GetFinancialProfileOutput struct {
	Profile finance.FinancialProfile
	Records finance.ProfileInput
}

// GetFinancialProfileUseCase derives the monthly financial profile.
type GetFinancialProfileUseCase struct {
	profileRepo adapter.ProfileRepository
	scorer      finance.HealthScorer
}

// NewGetFinancialProfileUseCase creates a new GetFinancialProfileUseCase instance.
// A nil scorer uses the default health score policy.
func NewGetFinancialProfileUseCase(
	profileRepo adapter.ProfileRepository,
	scorer finance.HealthScorer,
) *GetFinancialProfileUseCase {
	if scorer == nil {
		scorer = finance.DefaultHealthScorer()
	}
	return &GetFinancialProfileUseCase{
		profileRepo: profileRepo,
		scorer:      scorer,
	}
}

// Execute loads the profile records and derives the profile.
func (uc *GetFinancialProfileUseCase) Execute(
	ctx context.Context,
	input GetFinancialProfileInput,
) (*GetFinancialProfileOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileMissingUser,
			"user id is required",
			domainerror.ErrMissingUserID,
		)
	}

	records, err := uc.load(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to load profile records",
			err,
		)
	}

	p := finance.BuildProfile(records, uc.scorer)
	slog.DebugContext(ctx, "Financial profile derived",
		"userID", input.UserID,
		"monthlyIncome", p.MonthlyIncome,
		"healthScore", p.HealthScore,
	)
	return &GetFinancialProfileOutput{Profile: p, Records: records}, nil
}

func (uc *GetFinancialProfileUseCase) load(ctx context.Context, userID uuid.UUID) (finance.ProfileInput, error) {
	var in finance.ProfileInput
	var err error

	if in.IncomeSources, err = uc.profileRepo.ListIncomeSources(ctx, userID); err != nil {
		return in, fmt.Errorf("failed to list income sources: %w", err)
	}
	if in.FixedCosts, err = uc.profileRepo.ListFixedCosts(ctx, userID); err != nil {
		return in, fmt.Errorf("failed to list fixed costs: %w", err)
	}
	if in.VariableCosts, err = uc.profileRepo.ListVariableCosts(ctx, userID); err != nil {
		return in, fmt.Errorf("failed to list variable costs: %w", err)
	}
	if in.Debts, err = uc.profileRepo.ListDebts(ctx, userID); err != nil {
		return in, fmt.Errorf("failed to list debts: %w", err)
	}
	if in.Assets, err = uc.profileRepo.GetAssets(ctx, userID); err != nil {
		return in, fmt.Errorf("failed to get assets: %w", err)
	}
	return in, nil
}
