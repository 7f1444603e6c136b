package dto

import (
	"github.com/finance-tracker/planner/internal/application/usecase/projection"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// CashFlowProjectionRequest represents the body of the cash-flow projection API.
// Omitted fields fall back to the user's financial profile and the configured defaults.
type CashFlowProjectionRequest struct {
	Scenario        string   `json:"scenario"`
	ExpectedIncome  *float64 `json:"expected_income"`
	FixedCosts      *float64 `json:"fixed_costs"`
	VariableCosts   *float64 `json:"variable_costs"`
	GrowthRate      *float64 `json:"growth_rate"`
	StartingCash    *float64 `json:"starting_cash"`
	StartingDebt    *float64 `json:"starting_debt"`
	BestMultiplier  *float64 `json:"best_multiplier"`
	WorstMultiplier *float64 `json:"worst_multiplier"`
}

// ToOverrides converts the request into use case overrides.
func (r CashFlowProjectionRequest) ToOverrides() projection.CashFlowOverrides {
	return projection.CashFlowOverrides{
		ExpectedIncome:  r.ExpectedIncome,
		FixedCosts:      r.FixedCosts,
		VariableCosts:   r.VariableCosts,
		GrowthRate:      r.GrowthRate,
		StartingCash:    r.StartingCash,
		StartingDebt:    r.StartingDebt,
		BestMultiplier:  r.BestMultiplier,
		WorstMultiplier: r.WorstMultiplier,
	}
}

// CashFlowProjectionResponse represents the response for the cash-flow projection API.
type CashFlowProjectionResponse struct {
	Data CashFlowProjectionData `json:"data"`
}

// CashFlowProjectionData holds the baseline and one projection per scenario.
type CashFlowProjectionData struct {
	Baseline    CashFlowBaselineResponse `json:"baseline"`
	Projections []CashFlowScenarioResult `json:"projections"`
}

// CashFlowBaselineResponse echoes the inputs the projection ran with.
type CashFlowBaselineResponse struct {
	ExpectedIncome  float64 `json:"expected_income"`
	FixedCosts      float64 `json:"fixed_costs"`
	VariableCosts   float64 `json:"variable_costs"`
	GrowthRate      float64 `json:"growth_rate"`
	StartingCash    float64 `json:"starting_cash"`
	StartingDebt    float64 `json:"starting_debt"`
	BestMultiplier  float64 `json:"best_multiplier"`
	WorstMultiplier float64 `json:"worst_multiplier"`
}

// CashFlowScenarioResult represents the twelve-month series of one scenario.
type CashFlowScenarioResult struct {
	Scenario        string                  `json:"scenario"`
	StartingBalance float64                 `json:"starting_balance"`
	Points          []CashFlowPointResponse `json:"points"`
	TotalIncome     float64                 `json:"total_income"`
	TotalExpenses   float64                 `json:"total_expenses"`
	TotalNet        float64                 `json:"total_net"`
	EndingCash      float64                 `json:"ending_cash"`
}

// CashFlowPointResponse represents one projected month, in whole currency units.
type CashFlowPointResponse struct {
	Month          string  `json:"month"`
	Income         float64 `json:"income"`
	Expenses       float64 `json:"expenses"`
	Net            float64 `json:"net"`
	CumulativeCash float64 `json:"cumulative_cash"`
}

// ToCashFlowProjectionResponse converts a GetCashFlowProjectionOutput to its DTO.
func ToCashFlowProjectionResponse(output *projection.GetCashFlowProjectionOutput) CashFlowProjectionResponse {
	b := output.Baseline
	results := make([]CashFlowScenarioResult, len(output.Projections))
	for i, p := range output.Projections {
		points := make([]CashFlowPointResponse, len(p.Points))
		for j, pt := range p.Points {
			points[j] = CashFlowPointResponse{
				Month:          pt.Month.String(),
				Income:         whole(pt.Income),
				Expenses:       whole(pt.Expenses),
				Net:            whole(pt.Net),
				CumulativeCash: whole(pt.CumulativeCash),
			}
		}
		results[i] = CashFlowScenarioResult{
			Scenario:        string(p.Scenario),
			StartingBalance: money(p.StartingBalance),
			Points:          points,
			TotalIncome:     money(p.TotalIncome),
			TotalExpenses:   money(p.TotalExpenses),
			TotalNet:        money(p.TotalNet),
			EndingCash:      money(p.EndingCash),
		}
	}
	return CashFlowProjectionResponse{
		Data: CashFlowProjectionData{
			Baseline: CashFlowBaselineResponse{
				ExpectedIncome:  money(b.ExpectedIncome),
				FixedCosts:      money(b.FixedCosts),
				VariableCosts:   money(b.VariableCosts),
				GrowthRate:      ratio(b.GrowthRate),
				StartingCash:    money(b.StartingCash),
				StartingDebt:    money(b.StartingDebt),
				BestMultiplier:  ratio(b.BestMultiplier),
				WorstMultiplier: ratio(b.WorstMultiplier),
			},
			Projections: results,
		},
	}
}

// SimulationRequest represents the body of the what-if simulation API.
type SimulationRequest struct {
	Simulated             SimulatedBudgetRequest `json:"simulated"`
	ExpectedReturn        *float64               `json:"expected_return"`
	SavingsRate           *float64               `json:"savings_rate"`
	TimeHorizonYears      *int                   `json:"time_horizon_years"`
	CurrentPortfolioValue *float64               `json:"current_portfolio_value"`
}

// SimulatedBudgetRequest holds the changed monthly figures. Omitted values keep the current ones.
type SimulatedBudgetRequest struct {
	Income        *float64 `json:"income"`
	FixedCosts    *float64 `json:"fixed_costs"`
	VariableCosts *float64 `json:"variable_costs"`
	DebtPayments  *float64 `json:"debt_payments"`
}

// ToInput converts the request into use case input fields.
func (r SimulationRequest) ToInput() projection.SimulateWhatIfInput {
	return projection.SimulateWhatIfInput{
		Simulated: projection.SimulatedBudget{
			Income:        r.Simulated.Income,
			FixedCosts:    r.Simulated.FixedCosts,
			VariableCosts: r.Simulated.VariableCosts,
			DebtPayments:  r.Simulated.DebtPayments,
		},
		ExpectedReturn:        r.ExpectedReturn,
		SavingsRate:           r.SavingsRate,
		TimeHorizonYears:      r.TimeHorizonYears,
		CurrentPortfolioValue: r.CurrentPortfolioValue,
	}
}

// SimulationResponse represents the response for the what-if simulation API.
type SimulationResponse struct {
	Data SimulationData `json:"data"`
}

// SimulationData holds the inputs used and the simulation outcome.
type SimulationData struct {
	Current               MonthlyBudgetResponse    `json:"current"`
	Simulated             MonthlyBudgetResponse    `json:"simulated"`
	ExpectedReturn        float64                  `json:"expected_return"`
	SavingsRate           float64                  `json:"savings_rate"`
	TimeHorizonYears      int                      `json:"time_horizon_years"`
	CurrentPortfolioValue float64                  `json:"current_portfolio_value"`
	CurrentAvailable      float64                  `json:"current_available"`
	SimulatedAvailable    float64                  `json:"simulated_available"`
	AvailableDelta        float64                  `json:"available_delta"`
	CurrentSavingsRate    float64                  `json:"current_savings_rate"`
	SimulatedSavingsRate  float64                  `json:"simulated_savings_rate"`
	MonthlyContribution   float64                  `json:"monthly_contribution"`
	Projection            []PortfolioPointResponse `json:"projection"`
	FinalPortfolioValue   float64                  `json:"final_portfolio_value"`
	TotalContributions    float64                  `json:"total_contributions"`
	TotalReturns          float64                  `json:"total_returns"`
	FireTarget            float64                  `json:"fire_target"`
	YearsToFire           *float64                 `json:"years_to_fire"`
}

// MonthlyBudgetResponse represents a monthly budget.
type MonthlyBudgetResponse struct {
	Income        float64 `json:"income"`
	FixedCosts    float64 `json:"fixed_costs"`
	VariableCosts float64 `json:"variable_costs"`
	DebtPayments  float64 `json:"debt_payments"`
}

// PortfolioPointResponse represents the portfolio at a month offset.
type PortfolioPointResponse struct {
	Month          int     `json:"month"`
	Contributions  float64 `json:"contributions"`
	PortfolioValue float64 `json:"portfolio_value"`
	Returns        float64 `json:"returns"`
}

func toMonthlyBudget(b finance.MonthlyBudget) MonthlyBudgetResponse {
	return MonthlyBudgetResponse{
		Income:        money(b.Income),
		FixedCosts:    money(b.FixedCosts),
		VariableCosts: money(b.VariableCosts),
		DebtPayments:  money(b.DebtPayments),
	}
}

// ToSimulationResponse converts a SimulateWhatIfOutput to its DTO.
func ToSimulationResponse(output *projection.SimulateWhatIfOutput) SimulationResponse {
	in, res := output.Input, output.Result
	points := make([]PortfolioPointResponse, len(res.Projection))
	for i, p := range res.Projection {
		points[i] = PortfolioPointResponse{
			Month:          p.Month,
			Contributions:  money(p.Contributions),
			PortfolioValue: money(p.PortfolioValue),
			Returns:        money(p.Returns),
		}
	}
	return SimulationResponse{
		Data: SimulationData{
			Current:               toMonthlyBudget(in.Current),
			Simulated:             toMonthlyBudget(in.Simulated),
			ExpectedReturn:        ratio(in.ExpectedReturn),
			SavingsRate:           ratio(in.SavingsRate),
			TimeHorizonYears:      in.TimeHorizonYears,
			CurrentPortfolioValue: money(in.CurrentPortfolioValue),
			CurrentAvailable:      money(res.CurrentAvailable),
			SimulatedAvailable:    money(res.SimulatedAvailable),
			AvailableDelta:        money(res.AvailableDelta),
			CurrentSavingsRate:    ratio(res.CurrentSavingsRate),
			SimulatedSavingsRate:  ratio(res.SimulatedSavingsRate),
			MonthlyContribution:   money(res.MonthlyContribution),
			Projection:            points,
			FinalPortfolioValue:   money(res.FinalPortfolioValue),
			TotalContributions:    money(res.TotalContributions),
			TotalReturns:          money(res.TotalReturns),
			FireTarget:            money(res.FireTarget),
			YearsToFire:           roundPtr(res.YearsToFire, 1),
		},
	}
}

// PortfolioSummaryResponse represents the response for the investment summary API.
type PortfolioSummaryResponse struct {
	Data PortfolioSummaryData `json:"data"`
}

// PortfolioSummaryData holds positions, allocation and savings plans.
type PortfolioSummaryData struct {
	Positions               []PositionResponse   `json:"positions"`
	TotalValue              float64              `json:"total_value"`
	TotalCostBasis          float64              `json:"total_cost_basis"`
	TotalGainLoss           float64              `json:"total_gain_loss"`
	TotalGainPercent        float64              `json:"total_gain_percent"`
	Allocation              []AllocationResponse `json:"allocation"`
	MonthlySavingsPlanTotal float64              `json:"monthly_savings_plan_total"`
	ActiveSavingsPlans      int                  `json:"active_savings_plans"`
}

// PositionResponse represents one investment.
type PositionResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Quantity    float64 `json:"quantity"`
	Value       float64 `json:"value"`
	CostBasis   float64 `json:"cost_basis"`
	GainLoss    float64 `json:"gain_loss"`
	GainPercent float64 `json:"gain_percent"`
	Share       float64 `json:"share"`
}

// AllocationResponse represents the share of one investment type.
type AllocationResponse struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Share float64 `json:"share"`
}

// ToPortfolioSummaryResponse converts a finance.PortfolioSummary to its DTO.
func ToPortfolioSummaryResponse(s *finance.PortfolioSummary) PortfolioSummaryResponse {
	positions := make([]PositionResponse, len(s.Positions))
	for i, p := range s.Positions {
		positions[i] = PositionResponse{
			ID:          p.Investment.ID.String(),
			Name:        p.Investment.Name,
			Type:        string(p.Investment.Type),
			Quantity:    p.Investment.Quantity,
			Value:       money(p.Value),
			CostBasis:   money(p.CostBasis),
			GainLoss:    money(p.GainLoss),
			GainPercent: ratio(p.GainPercent),
			Share:       ratio(p.Share),
		}
	}
	allocation := make([]AllocationResponse, len(s.Allocation))
	for i, a := range s.Allocation {
		allocation[i] = AllocationResponse{Type: string(a.Type), Value: money(a.Value), Share: ratio(a.Share)}
	}
	return PortfolioSummaryResponse{
		Data: PortfolioSummaryData{
			Positions:               positions,
			TotalValue:              money(s.TotalValue),
			TotalCostBasis:          money(s.TotalCostBasis),
			TotalGainLoss:           money(s.TotalGainLoss),
			TotalGainPercent:        ratio(s.TotalGainPercent),
			Allocation:              allocation,
			MonthlySavingsPlanTotal: money(s.MonthlySavingsPlanTotal),
			ActiveSavingsPlans:      s.ActiveSavingsPlans,
		},
	}
}
