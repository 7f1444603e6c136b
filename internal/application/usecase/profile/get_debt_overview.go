// Package profile contains financial profile use cases.
package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// GetDebtOverviewInput represents the input for the debt overview.
type GetDebtOverviewInput struct {
	UserID uuid.UUID
}

// GetDebtOverviewUseCase summarises repayment progress of all debts.
type GetDebtOverviewUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetDebtOverviewUseCase creates a new GetDebtOverviewUseCase instance.
func NewGetDebtOverviewUseCase(profileRepo adapter.ProfileRepository) *GetDebtOverviewUseCase {
	return &GetDebtOverviewUseCase{profileRepo: profileRepo}
}

// Execute loads the debts and summarises them.
func (uc *GetDebtOverviewUseCase) Execute(
	ctx context.Context,
	input GetDebtOverviewInput,
) (*finance.DebtOverview, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileMissingUser,
			"user id is required",
			domainerror.ErrMissingUserID,
		)
	}

	debts, err := uc.profileRepo.ListDebts(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to list debts",
			err,
		)
	}

	overview := finance.SummarizeDebts(debts)
	return &overview, nil
}
