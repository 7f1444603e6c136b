// Package projection contains cash-flow, investment and simulation use cases.
package projection

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/usecase/profile"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// CashFlowDefaults are the configured assumptions of a projection.
type CashFlowDefaults struct {
	GrowthRate      float64
	BestMultiplier  float64
	WorstMultiplier float64
}

// CashFlowOverrides replaces individual baseline values. Nil fields keep the
// value derived from the financial profile.
type CashFlowOverrides struct {
	ExpectedIncome  *float64
	FixedCosts      *float64
	VariableCosts   *float64
	GrowthRate      *float64
	StartingCash    *float64
	StartingDebt    *float64
	BestMultiplier  *float64
	WorstMultiplier *float64
}

// GetCashFlowProjectionInput represents the input for a cash-flow projection.
type GetCashFlowProjectionInput struct {
	UserID    uuid.UUID
	Scenario  finance.Scenario // empty projects all scenarios
	Overrides CashFlowOverrides
	AsOf      time.Time
}

// GetCashFlowProjectionOutput holds the baseline used and one projection per scenario.
type GetCashFlowProjectionOutput struct {
	Baseline    finance.CashFlowInput
	Projections []finance.CashFlowProjection
}

// GetCashFlowProjectionUseCase projects the next twelve months of cash flow.
type GetCashFlowProjectionUseCase struct {
	profileUC *profile.GetFinancialProfileUseCase
	defaults  CashFlowDefaults
}

// NewGetCashFlowProjectionUseCase creates a new GetCashFlowProjectionUseCase instance.
func NewGetCashFlowProjectionUseCase(
	profileUC *profile.GetFinancialProfileUseCase,
	defaults CashFlowDefaults,
) *GetCashFlowProjectionUseCase {
	return &GetCashFlowProjectionUseCase{
		profileUC: profileUC,
		defaults:  defaults,
	}
}

// Execute derives the baseline from the profile (income, fixed and variable
// costs, savings as starting cash, total debt as starting debt), applies the
// overrides and projects the requested scenarios.
func (uc *GetCashFlowProjectionUseCase) Execute(
	ctx context.Context,
	input GetCashFlowProjectionInput,
) (*GetCashFlowProjectionOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, missingUserError()
	}
	if input.Scenario != "" && !input.Scenario.IsValid() {
		return nil, domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidScenario,
			"scenario must be: base, best or worst",
			domainerror.ErrInvalidScenario,
		)
	}

	prof, err := uc.profileUC.Execute(ctx, profile.GetFinancialProfileInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}
	p := prof.Profile

	baseline := finance.CashFlowInput{
		ExpectedIncome:  p.MonthlyIncome,
		FixedCosts:      p.MonthlyFixedCosts,
		VariableCosts:   p.MonthlyVariableCosts,
		GrowthRate:      uc.defaults.GrowthRate,
		StartingCash:    p.Savings,
		StartingDebt:    p.TotalDebt,
		BestMultiplier:  uc.defaults.BestMultiplier,
		WorstMultiplier: uc.defaults.WorstMultiplier,
	}
	applyOverrides(&baseline, input.Overrides)
	if err := validateBaseline(baseline); err != nil {
		return nil, err
	}

	scenarios := finance.Scenarios
	if input.Scenario != "" {
		scenarios = []finance.Scenario{input.Scenario}
	}
	out := &GetCashFlowProjectionOutput{Baseline: baseline}
	for _, sc := range scenarios {
		out.Projections = append(out.Projections, finance.ProjectCashFlow(baseline, sc, input.AsOf))
	}

	slog.DebugContext(ctx, "Cash flow projected",
		"userID", input.UserID,
		"scenarios", len(scenarios),
		"expectedIncome", baseline.ExpectedIncome,
	)
	return out, nil
}

func applyOverrides(in *finance.CashFlowInput, o CashFlowOverrides) {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&in.ExpectedIncome, o.ExpectedIncome)
	set(&in.FixedCosts, o.FixedCosts)
	set(&in.VariableCosts, o.VariableCosts)
	set(&in.GrowthRate, o.GrowthRate)
	set(&in.StartingCash, o.StartingCash)
	set(&in.StartingDebt, o.StartingDebt)
	set(&in.BestMultiplier, o.BestMultiplier)
	set(&in.WorstMultiplier, o.WorstMultiplier)
}

func validateBaseline(in finance.CashFlowInput) error {
	for _, v := range []float64{in.ExpectedIncome, in.FixedCosts, in.VariableCosts, in.StartingCash, in.StartingDebt} {
		if v < 0 {
			return domainerror.NewProjectionError(
				domainerror.ErrCodeNegativeAmount,
				"amounts must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
	}
	if in.BestMultiplier <= 0 || in.WorstMultiplier <= 0 {
		return domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidMultiplier,
			"scenario multipliers must be greater than zero",
			domainerror.ErrInvalidMultiplier,
		)
	}
	return nil
}

func missingUserError() error {
	return domainerror.NewProjectionError(
		domainerror.ErrCodeProjectionMissingUser,
		"user id is required",
		domainerror.ErrMissingUserID,
	)
}
