// Package projection contains cash-flow, investment and simulation use cases.
package projection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// GetPortfolioSummaryInput represents the input for the portfolio summary.
type GetPortfolioSummaryInput struct {
	UserID uuid.UUID
}

// GetPortfolioSummaryUseCase values the investment portfolio.
type GetPortfolioSummaryUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewGetPortfolioSummaryUseCase creates a new GetPortfolioSummaryUseCase instance.
func NewGetPortfolioSummaryUseCase(investmentRepo adapter.InvestmentRepository) *GetPortfolioSummaryUseCase {
	return &GetPortfolioSummaryUseCase{investmentRepo: investmentRepo}
}

// Execute loads investments and savings plans and summarises them.
func (uc *GetPortfolioSummaryUseCase) Execute(
	ctx context.Context,
	input GetPortfolioSummaryInput,
) (*finance.PortfolioSummary, error) {
	if input.UserID == uuid.Nil {
		return nil, missingUserError()
	}

	investments, err := uc.investmentRepo.ListInvestments(ctx, input.UserID)
	if err != nil {
		return nil, internalError(fmt.Errorf("failed to list investments: %w", err))
	}
	plans, err := uc.investmentRepo.ListSavingsPlans(ctx, input.UserID)
	if err != nil {
		return nil, internalError(fmt.Errorf("failed to list savings plans: %w", err))
	}

	summary := finance.SummarizePortfolio(investments, plans)
	return &summary, nil
}

func internalError(err error) error {
	return domainerror.NewProjectionError(
		domainerror.ErrCodeProjectionInternalError,
		"failed to load portfolio",
		err,
	)
}
