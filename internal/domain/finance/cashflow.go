package finance

import (
	"math"
	"time"
)

// ProjectionMonths is the length of a cash-flow projection.
const ProjectionMonths = 12

// Scenario selects the assumptions of a cash-flow projection.
type Scenario string

const (
	ScenarioBase  Scenario = "base"
	ScenarioBest  Scenario = "best"
	ScenarioWorst Scenario = "worst"
)

// Scenarios lists all scenarios in display order.
var Scenarios = []Scenario{ScenarioBase, ScenarioBest, ScenarioWorst}

// IsValid reports whether the scenario is known.
func (s Scenario) IsValid() bool {
	return s == ScenarioBase || s == ScenarioBest || s == ScenarioWorst
}

// CashFlowInput holds the monthly baseline of a projection.
// GrowthRate is the annual income growth in percent.
type CashFlowInput struct {
	ExpectedIncome  float64
	FixedCosts      float64
	VariableCosts   float64
	GrowthRate      float64
	StartingCash    float64
	StartingDebt    float64
	BestMultiplier  float64
	WorstMultiplier float64
}

// CashFlowPoint is one projected month.
type CashFlowPoint struct {
	Month          Month
	Income         float64
	Expenses       float64
	Net            float64
	CumulativeCash float64
}

// CashFlowProjection is a projected series for one scenario.
type CashFlowProjection struct {
	Scenario        Scenario
	StartingBalance float64
	Points          []CashFlowPoint
	TotalIncome     float64
	TotalExpenses   float64
	TotalNet        float64
	EndingCash      float64
}

// Multiplier returns the income multiplier of the scenario.
func (s Scenario) Multiplier(in CashFlowInput) float64 {
	switch s {
	case ScenarioBest:
		return in.BestMultiplier
	case ScenarioWorst:
		return in.WorstMultiplier
	default:
		return 1
	}
}

// expenseFactor inflates expenses by the inverse of the worst-case multiplier.
// Other scenarios leave expenses untouched.
func (s Scenario) expenseFactor(in CashFlowInput) float64 {
	if s != ScenarioWorst || in.WorstMultiplier <= 0 {
		return 1
	}
	return 1 / in.WorstMultiplier
}

// ProjectCashFlow projects the next twelve months starting with the month of
// asOf. Month i grows income by (1+g/100)^(i/12) and applies the scenario
// multiplier; under the worst scenario expenses are divided by the same
// multiplier. The cumulative cash starts at StartingCash − StartingDebt.
// Values are exact; callers round for display.
func ProjectCashFlow(in CashFlowInput, scenario Scenario, asOf time.Time) CashFlowProjection {
	start := MonthOf(asOf)
	mult := scenario.Multiplier(in)
	expenses := (in.FixedCosts + in.VariableCosts) * scenario.expenseFactor(in)

	p := CashFlowProjection{
		Scenario:        scenario,
		StartingBalance: in.StartingCash - in.StartingDebt,
		Points:          make([]CashFlowPoint, ProjectionMonths),
	}
	cumulative := p.StartingBalance
	for i := 0; i < ProjectionMonths; i++ {
		growth := math.Pow(1+in.GrowthRate/100, float64(i)/12)
		income := in.ExpectedIncome * growth * mult
		net := income - expenses
		cumulative += net

		p.Points[i] = CashFlowPoint{
			Month:          start.AddMonths(i),
			Income:         income,
			Expenses:       expenses,
			Net:            net,
			CumulativeCash: cumulative,
		}
		p.TotalIncome += income
		p.TotalExpenses += expenses
	}
	p.TotalNet = p.TotalIncome - p.TotalExpenses
	p.EndingCash = cumulative
	return p
}

// Rounded returns a copy with every amount rounded to whole currency units.
func (p CashFlowProjection) Rounded() CashFlowProjection {
	out := p
	out.StartingBalance = math.Round(p.StartingBalance)
	out.TotalIncome = math.Round(p.TotalIncome)
	out.TotalExpenses = math.Round(p.TotalExpenses)
	out.TotalNet = math.Round(p.TotalNet)
	out.EndingCash = math.Round(p.EndingCash)
	out.Points = make([]CashFlowPoint, len(p.Points))
	for i, pt := range p.Points {
		out.Points[i] = CashFlowPoint{
			Month:          pt.Month,
			Income:         math.Round(pt.Income),
			Expenses:       math.Round(pt.Expenses),
			Net:            math.Round(pt.Net),
			CumulativeCash: math.Round(pt.CumulativeCash),
		}
	}
	return out
}
