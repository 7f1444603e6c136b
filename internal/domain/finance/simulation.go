package finance

const (
	// SafeWithdrawalRate is the annual withdrawal rate of the 4% rule.
	SafeWithdrawalRate = 0.04
	// MaxFireMonths bounds the years-to-FIRE search to 50 years.
	MaxFireMonths = 600
)

// MonthlyBudget is a monthly income and expense baseline.
type MonthlyBudget struct {
	Income        float64
	FixedCosts    float64
	VariableCosts float64
	DebtPayments  float64
}

// Expenses returns all monthly outflows.
func (b MonthlyBudget) Expenses() float64 {
	return b.FixedCosts + b.VariableCosts + b.DebtPayments
}

// Available returns income minus all outflows. It may be negative.
func (b MonthlyBudget) Available() float64 {
	return b.Income - b.Expenses()
}

// SavingsRate returns Available/Income, 0 without income.
func (b MonthlyBudget) SavingsRate() float64 {
	return safeDiv(b.Available(), b.Income)
}

// SimulationInput describes a what-if comparison.
// ExpectedReturn is the annual return as a decimal (0.07 for 7%), SavingsRate
// the fraction of the simulated available income that is invested.
type SimulationInput struct {
	Current               MonthlyBudget
	Simulated             MonthlyBudget
	ExpectedReturn        float64
	SavingsRate           float64
	TimeHorizonYears      int
	CurrentPortfolioValue float64
}

// PortfolioPoint is the state of the portfolio after Month months.
// Contributions include the starting value; Returns is the growth on top.
type PortfolioPoint struct {
	Month          int
	Contributions  float64
	PortfolioValue float64
	Returns        float64
}

// SimulationResult is the outcome of Simulate.
type SimulationResult struct {
	CurrentAvailable     float64
	SimulatedAvailable   float64
	AvailableDelta       float64
	CurrentSavingsRate   float64
	SimulatedSavingsRate float64
	MonthlyContribution  float64

	Projection          []PortfolioPoint
	FinalPortfolioValue float64
	TotalContributions  float64
	TotalReturns        float64

	FireTarget  float64
	YearsToFire *float64
}

// ProjectPortfolio compounds monthly over months months:
// value = value × (1 + annualReturn/12) + contribution. The first point is the
// starting state at month 0.
func ProjectPortfolio(start, monthlyContribution, annualReturn float64, months int) []PortfolioPoint {
	if months < 0 {
		months = 0
	}
	rate := annualReturn / 12
	points := make([]PortfolioPoint, months+1)
	value, contributed := start, start
	points[0] = PortfolioPoint{Month: 0, Contributions: contributed, PortfolioValue: value}
	for m := 1; m <= months; m++ {
		value = value*(1+rate) + monthlyContribution
		contributed += monthlyContribution
		points[m] = PortfolioPoint{
			Month:          m,
			Contributions:  contributed,
			PortfolioValue: value,
			Returns:        value - contributed,
		}
	}
	return points
}

// FireTarget returns the portfolio needed to cover monthlyExpenses forever
// under the 4% rule, i.e. 25 times the annual expenses.
func FireTarget(monthlyExpenses float64) float64 {
	return monthlyExpenses * 12 / SafeWithdrawalRate
}

// YearsToFire searches month by month for the first month in which the
// compounding portfolio reaches target. It returns nil when the contribution
// or the expected return is not positive, or when the target is not reached
// within MaxFireMonths.
func YearsToFire(start, monthlyContribution, annualReturn, target float64) *float64 {
	if monthlyContribution <= 0 || annualReturn <= 0 {
		return nil
	}
	rate := annualReturn / 12
	value := start
	for m := 0; m <= MaxFireMonths; m++ {
		if m > 0 {
			value = value*(1+rate) + monthlyContribution
		}
		if value >= target {
			years := float64(m) / 12
			return &years
		}
	}
	return nil
}

// Simulate compares the current and the simulated budget, projects the
// portfolio fed by the simulated surplus and solves for the FIRE date.
func Simulate(in SimulationInput) SimulationResult {
	r := SimulationResult{
		CurrentAvailable:     in.Current.Available(),
		SimulatedAvailable:   in.Simulated.Available(),
		CurrentSavingsRate:   in.Current.SavingsRate(),
		SimulatedSavingsRate: in.Simulated.SavingsRate(),
	}
	r.AvailableDelta = r.SimulatedAvailable - r.CurrentAvailable

	surplus := r.SimulatedAvailable
	if surplus < 0 {
		surplus = 0
	}
	r.MonthlyContribution = surplus * in.SavingsRate
	if r.MonthlyContribution < 0 {
		r.MonthlyContribution = 0
	}

	r.Projection = ProjectPortfolio(in.CurrentPortfolioValue, r.MonthlyContribution, in.ExpectedReturn, in.TimeHorizonYears*12)
	last := r.Projection[len(r.Projection)-1]
	r.FinalPortfolioValue = last.PortfolioValue
	r.TotalContributions = last.Contributions
	r.TotalReturns = last.Returns

	r.FireTarget = FireTarget(in.Simulated.Expenses())
	r.YearsToFire = YearsToFire(in.CurrentPortfolioValue, r.MonthlyContribution, in.ExpectedReturn, r.FireTarget)
	return r
}
