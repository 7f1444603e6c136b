// Package projection contains cash-flow, investment and simulation use cases.
package projection

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/usecase/profile"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// SimulationDefaults are used for parameters the caller leaves out.
type SimulationDefaults struct {
	ExpectedReturn   float64
	SavingsRate      float64
	TimeHorizonYears int
}

// SimulatedBudget overrides the current monthly budget. Nil fields keep the
// current value from the financial profile.
type SimulatedBudget struct {
	Income        *float64
	FixedCosts    *float64
	VariableCosts *float64
	DebtPayments  *float64
}

// SimulateWhatIfInput represents the input for a what-if simulation.
type SimulateWhatIfInput struct {
	UserID                uuid.UUID
	Simulated             SimulatedBudget
	ExpectedReturn        *float64
	SavingsRate           *float64
	TimeHorizonYears      *int
	CurrentPortfolioValue *float64 // nil uses the value of the active investments
}

// SimulateWhatIfOutput holds the simulation with the parameters it ran with.
type SimulateWhatIfOutput struct {
	Input  finance.SimulationInput
	Result finance.SimulationResult
}

// SimulateWhatIfUseCase compares the current budget with a simulated one and
// projects the portfolio the simulated surplus would build.
type SimulateWhatIfUseCase struct {
	profileUC   *profile.GetFinancialProfileUseCase
	portfolioUC *GetPortfolioSummaryUseCase
	defaults    SimulationDefaults
}

// NewSimulateWhatIfUseCase creates a new SimulateWhatIfUseCase instance.
func NewSimulateWhatIfUseCase(
	profileUC *profile.GetFinancialProfileUseCase,
	portfolioUC *GetPortfolioSummaryUseCase,
	defaults SimulationDefaults,
) *SimulateWhatIfUseCase {
	return &SimulateWhatIfUseCase{
		profileUC:   profileUC,
		portfolioUC: portfolioUC,
		defaults:    defaults,
	}
}

// Execute runs the simulation.
func (uc *SimulateWhatIfUseCase) Execute(
	ctx context.Context,
	input SimulateWhatIfInput,
) (*SimulateWhatIfOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, missingUserError()
	}

	prof, err := uc.profileUC.Execute(ctx, profile.GetFinancialProfileInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}
	p := prof.Profile

	current := finance.MonthlyBudget{
		Income:        p.MonthlyIncome,
		FixedCosts:    p.MonthlyFixedCosts,
		VariableCosts: p.MonthlyVariableCosts,
		DebtPayments:  p.MonthlyDebtPayments,
	}
	simulated := current
	override(&simulated.Income, input.Simulated.Income)
	override(&simulated.FixedCosts, input.Simulated.FixedCosts)
	override(&simulated.VariableCosts, input.Simulated.VariableCosts)
	override(&simulated.DebtPayments, input.Simulated.DebtPayments)

	sim := finance.SimulationInput{
		Current:          current,
		Simulated:        simulated,
		ExpectedReturn:   uc.defaults.ExpectedReturn,
		SavingsRate:      uc.defaults.SavingsRate,
		TimeHorizonYears: uc.defaults.TimeHorizonYears,
	}
	override(&sim.ExpectedReturn, input.ExpectedReturn)
	override(&sim.SavingsRate, input.SavingsRate)
	if input.TimeHorizonYears != nil {
		sim.TimeHorizonYears = *input.TimeHorizonYears
	}

	if input.CurrentPortfolioValue != nil {
		sim.CurrentPortfolioValue = *input.CurrentPortfolioValue
	} else {
		summary, err := uc.portfolioUC.Execute(ctx, GetPortfolioSummaryInput{UserID: input.UserID})
		if err != nil {
			return nil, err
		}
		sim.CurrentPortfolioValue = summary.TotalValue
	}

	if err := validateSimulation(sim); err != nil {
		return nil, err
	}

	result := finance.Simulate(sim)
	slog.DebugContext(ctx, "What-if simulation computed",
		"userID", input.UserID,
		"monthlyContribution", result.MonthlyContribution,
		"fireReachable", result.YearsToFire != nil,
	)
	return &SimulateWhatIfOutput{Input: sim, Result: result}, nil
}

func override(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func validateSimulation(in finance.SimulationInput) error {
	b := in.Simulated
	for _, v := range []float64{b.Income, b.FixedCosts, b.VariableCosts, b.DebtPayments, in.CurrentPortfolioValue} {
		if v < 0 {
			return domainerror.NewProjectionError(
				domainerror.ErrCodeNegativeAmount,
				"amounts must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
	}
	if in.SavingsRate < 0 || in.SavingsRate > 1 {
		return domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidSavingsRate,
			"savings_rate must be between 0 and 1",
			domainerror.ErrInvalidSavingsRate,
		)
	}
	if in.ExpectedReturn < -1 || in.ExpectedReturn > 1 {
		return domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidExpectedReturn,
			"expected_return must be between -1 and 1",
			domainerror.ErrInvalidExpectedReturn,
		)
	}
	if in.TimeHorizonYears < 1 || in.TimeHorizonYears > 50 {
		return domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidTimeHorizon,
			"time_horizon_years must be between 1 and 50",
			domainerror.ErrInvalidTimeHorizon,
		)
	}
	return nil
}
