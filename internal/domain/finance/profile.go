package finance

import "github.com/finance-tracker/planner/internal/domain/entity"

// ProfileInput carries the raw records a financial profile is derived from.
type ProfileInput struct {
	IncomeSources []*entity.IncomeSource
	FixedCosts    []*entity.FixedCost
	VariableCosts []*entity.VariableCostEstimate
	Debts         []*entity.Debt
	Assets        *entity.Assets
}

// QuarterlyBonusOverview summarises all active quarterly-bonus sources.
// A quarter is confirmed only when every source confirms it.
type QuarterlyBonusOverview struct {
	Sources               int
	TotalQuarterlyAmount  float64
	ConfirmedQuarters     entity.ConfirmedQuarters
	ConfirmedCount        int
	ConfirmedAnnualAmount float64
	MonthlyAmortized      float64
}

// FinancialProfile is the derived monthly view of a user's finances.
type FinancialProfile struct {
	MonthlyIncomeWithoutBonus float64
	MonthlyBonusIncome        float64
	MonthlyIncome             float64
	QuarterlyBonus            *QuarterlyBonusOverview

	MonthlyFixedCosts    float64
	MonthlyVariableCosts float64
	MonthlyDebtPayments  float64
	MonthlyExpenses      float64
	TotalDebt            float64
	TotalAssets          float64
	Savings              float64
	NetWorth             float64
	AvailableIncome      float64

	DebtToIncomeRatio   float64
	SavingsRate         float64
	EmergencyFundMonths float64
	HealthScore         int
	HealthGrade         string
}

// MonthlyIncomeWithoutBonus sums the active, non-bonus income sources
// normalised to a monthly amount.
func MonthlyIncomeWithoutBonus(sources []*entity.IncomeSource) float64 {
	var total float64
	for _, s := range sources {
		if s == nil || !s.Active || s.IsQuarterlyBonus() {
			continue
		}
		total += MonthlyEquivalent(s.Amount, s.Frequency)
	}
	return total
}

// MonthlyBonusIncome amortises the confirmed bonus total of every active
// quarterly-bonus source over the whole year: amount × confirmed ÷ 12.
// Unconfirmed quarters contribute nothing.
func MonthlyBonusIncome(sources []*entity.IncomeSource) float64 {
	var total float64
	for _, s := range sources {
		if s == nil || !s.Active || !s.IsQuarterlyBonus() {
			continue
		}
		total += s.Amount * float64(confirmedCount(s)) / 12
	}
	return total
}

func confirmedCount(s *entity.IncomeSource) int {
	if s.ConfirmedQuarters == nil {
		return 0
	}
	return s.ConfirmedQuarters.Count()
}

// QuarterlyBonus returns the bonus overview, or nil when there is no active
// quarterly-bonus source.
func QuarterlyBonus(sources []*entity.IncomeSource) *QuarterlyBonusOverview {
	var bonus []*entity.IncomeSource
	for _, s := range sources {
		if s != nil && s.Active && s.IsQuarterlyBonus() {
			bonus = append(bonus, s)
		}
	}
	if len(bonus) == 0 {
		return nil
	}

	o := &QuarterlyBonusOverview{
		Sources:           len(bonus),
		ConfirmedQuarters: entity.ConfirmedQuarters{Q1: true, Q2: true, Q3: true, Q4: true},
	}
	for _, s := range bonus {
		var cq entity.ConfirmedQuarters
		if s.ConfirmedQuarters != nil {
			cq = *s.ConfirmedQuarters
		}
		o.ConfirmedQuarters.Q1 = o.ConfirmedQuarters.Q1 && cq.Q1
		o.ConfirmedQuarters.Q2 = o.ConfirmedQuarters.Q2 && cq.Q2
		o.ConfirmedQuarters.Q3 = o.ConfirmedQuarters.Q3 && cq.Q3
		o.ConfirmedQuarters.Q4 = o.ConfirmedQuarters.Q4 && cq.Q4

		o.TotalQuarterlyAmount += s.Amount
		o.ConfirmedAnnualAmount += s.Amount * float64(cq.Count())
	}
	o.ConfirmedCount = o.ConfirmedQuarters.Count()
	o.MonthlyAmortized = o.ConfirmedAnnualAmount / 12
	return o
}

// MonthlyFixedCosts sums fixed costs normalised to a monthly amount.
func MonthlyFixedCosts(costs []*entity.FixedCost) float64 {
	var total float64
	for _, c := range costs {
		if c != nil {
			total += MonthlyEquivalent(c.Amount, c.Frequency)
		}
	}
	return total
}

// MonthlyVariableCosts sums the monthly variable cost estimates.
func MonthlyVariableCosts(costs []*entity.VariableCostEstimate) float64 {
	var total float64
	for _, c := range costs {
		if c != nil {
			total += c.MonthlyAmount
		}
	}
	return total
}

// TotalDebt sums the outstanding balances.
func TotalDebt(debts []*entity.Debt) float64 {
	var total float64
	for _, d := range debts {
		if d != nil {
			total += d.CurrentBalance
		}
	}
	return total
}

// MonthlyDebtPayments sums the monthly instalments.
func MonthlyDebtPayments(debts []*entity.Debt) float64 {
	var total float64
	for _, d := range debts {
		if d != nil {
			total += d.MonthlyPayment
		}
	}
	return total
}

// BuildProfile derives the financial profile. A nil scorer uses
// DefaultHealthScorer.
func BuildProfile(in ProfileInput, scorer HealthScorer) FinancialProfile {
	if scorer == nil {
		scorer = DefaultHealthScorer()
	}

	p := FinancialProfile{
		MonthlyIncomeWithoutBonus: MonthlyIncomeWithoutBonus(in.IncomeSources),
		MonthlyBonusIncome:        MonthlyBonusIncome(in.IncomeSources),
		QuarterlyBonus:            QuarterlyBonus(in.IncomeSources),
		MonthlyFixedCosts:         MonthlyFixedCosts(in.FixedCosts),
		MonthlyVariableCosts:      MonthlyVariableCosts(in.VariableCosts),
		MonthlyDebtPayments:       MonthlyDebtPayments(in.Debts),
		TotalDebt:                 TotalDebt(in.Debts),
		TotalAssets:               in.Assets.Total(),
	}
	p.MonthlyIncome = p.MonthlyIncomeWithoutBonus + p.MonthlyBonusIncome
	p.MonthlyExpenses = p.MonthlyFixedCosts + p.MonthlyVariableCosts + p.MonthlyDebtPayments
	p.NetWorth = p.TotalAssets - p.TotalDebt
	p.AvailableIncome = p.MonthlyIncome - p.MonthlyExpenses
	p.DebtToIncomeRatio = safeDiv(p.MonthlyDebtPayments, p.MonthlyIncome)
	p.SavingsRate = safeDiv(p.AvailableIncome, p.MonthlyIncome)

	if in.Assets != nil {
		p.Savings = in.Assets.Savings
	}
	p.EmergencyFundMonths = safeDiv(p.Savings, p.MonthlyExpenses)

	p.HealthScore = scorer.Score(HealthInputs{
		SavingsRate:         p.SavingsRate,
		DebtToIncomeRatio:   p.DebtToIncomeRatio,
		EmergencyFundMonths: p.EmergencyFundMonths,
	})
	p.HealthGrade = HealthGrade(p.HealthScore)
	return p
}
