package dto

import (
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// ProfileResponse represents the response for the financial profile API.
type ProfileResponse struct {
	Data ProfileData `json:"data"`
}

// ProfileData holds the derived monthly figures and health indicators.
type ProfileData struct {
	MonthlyIncomeWithoutBonus float64                 `json:"monthly_income_without_bonus"`
	MonthlyBonusIncome        float64                 `json:"monthly_bonus_income"`
	MonthlyIncome             float64                 `json:"monthly_income"`
	QuarterlyBonus            *QuarterlyBonusResponse `json:"quarterly_bonus"`
	MonthlyFixedCosts         float64                 `json:"monthly_fixed_costs"`
	MonthlyVariableCosts      float64                 `json:"monthly_variable_costs"`
	MonthlyDebtPayments       float64                 `json:"monthly_debt_payments"`
	MonthlyExpenses           float64                 `json:"monthly_expenses"`
	AvailableIncome           float64                 `json:"available_income"`
	TotalDebt                 float64                 `json:"total_debt"`
	TotalAssets               float64                 `json:"total_assets"`
	Savings                   float64                 `json:"savings"`
	NetWorth                  float64                 `json:"net_worth"`
	DebtToIncomeRatio         float64                 `json:"debt_to_income_ratio"`
	SavingsRate               float64                 `json:"savings_rate"`
	EmergencyFundMonths       float64                 `json:"emergency_fund_months"`
	HealthScore               int                     `json:"health_score"`
	HealthGrade               string                  `json:"health_grade"`
}

// QuarterlyBonusResponse summarises the quarterly bonus sources.
type QuarterlyBonusResponse struct {
	Sources               int     `json:"sources"`
	TotalQuarterlyAmount  float64 `json:"total_quarterly_amount"`
	ConfirmedQuarters     []int   `json:"confirmed_quarters"`
	ConfirmedCount        int     `json:"confirmed_count"`
	ConfirmedAnnualAmount float64 `json:"confirmed_annual_amount"`
	MonthlyAmortized      float64 `json:"monthly_amortized"`
}

// ToProfileResponse converts a finance.FinancialProfile to its DTO.
func ToProfileResponse(p finance.FinancialProfile) ProfileResponse {
	data := ProfileData{
		MonthlyIncomeWithoutBonus: money(p.MonthlyIncomeWithoutBonus),
		MonthlyBonusIncome:        money(p.MonthlyBonusIncome),
		MonthlyIncome:             money(p.MonthlyIncome),
		MonthlyFixedCosts:         money(p.MonthlyFixedCosts),
		MonthlyVariableCosts:      money(p.MonthlyVariableCosts),
		MonthlyDebtPayments:       money(p.MonthlyDebtPayments),
		MonthlyExpenses:           money(p.MonthlyExpenses),
		AvailableIncome:           money(p.AvailableIncome),
		TotalDebt:                 money(p.TotalDebt),
		TotalAssets:               money(p.TotalAssets),
		Savings:                   money(p.Savings),
		NetWorth:                  money(p.NetWorth),
		DebtToIncomeRatio:         ratio(p.DebtToIncomeRatio),
		SavingsRate:               ratio(p.SavingsRate),
		EmergencyFundMonths:       roundTo(p.EmergencyFundMonths, 1),
		HealthScore:               p.HealthScore,
		HealthGrade:               p.HealthGrade,
	}

	if b := p.QuarterlyBonus; b != nil {
		quarters := []int{}
		for i, confirmed := range []bool{b.ConfirmedQuarters.Q1, b.ConfirmedQuarters.Q2, b.ConfirmedQuarters.Q3, b.ConfirmedQuarters.Q4} {
			if confirmed {
				quarters = append(quarters, i+1)
			}
		}
		data.QuarterlyBonus = &QuarterlyBonusResponse{
			Sources:               b.Sources,
			TotalQuarterlyAmount:  money(b.TotalQuarterlyAmount),
			ConfirmedQuarters:     quarters,
			ConfirmedCount:        b.ConfirmedCount,
			ConfirmedAnnualAmount: money(b.ConfirmedAnnualAmount),
			MonthlyAmortized:      money(b.MonthlyAmortized),
		}
	}

	return ProfileResponse{Data: data}
}

// DebtOverviewResponse represents the response for the debt overview API.
type DebtOverviewResponse struct {
	Data DebtOverviewData `json:"data"`
}

// DebtOverviewData summarises all debts of a user.
type DebtOverviewData struct {
	Debts                  []DebtStatusResponse `json:"debts"`
	TotalOriginal          float64              `json:"total_original"`
	TotalBalance           float64              `json:"total_balance"`
	TotalPaid              float64              `json:"total_paid"`
	TotalMonthlyPayments   float64              `json:"total_monthly_payments"`
	WeightedInterestRate   float64              `json:"weighted_interest_rate"`
	Progress               float64              `json:"progress"`
	EstimatedTotalInterest float64              `json:"estimated_total_interest"`
}

// DebtStatusResponse represents the payoff state of one debt.
type DebtStatusResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	OriginalAmount    float64 `json:"original_amount"`
	CurrentBalance    float64 `json:"current_balance"`
	InterestRate      float64 `json:"interest_rate"`
	MonthlyPayment    float64 `json:"monthly_payment"`
	PaidAmount        float64 `json:"paid_amount"`
	Progress          float64 `json:"progress"`
	MonthsToPayoff    *int    `json:"months_to_payoff"`
	EstimatedInterest float64 `json:"estimated_interest"`
}

// ToDebtOverviewResponse converts a finance.DebtOverview to its DTO.
func ToDebtOverviewResponse(o *finance.DebtOverview) DebtOverviewResponse {
	debts := make([]DebtStatusResponse, len(o.Debts))
	for i, s := range o.Debts {
		debts[i] = DebtStatusResponse{
			ID:                s.Debt.ID.String(),
			Name:              s.Debt.Name,
			Type:              string(s.Debt.Type),
			OriginalAmount:    money(s.Debt.OriginalAmount),
			CurrentBalance:    money(s.Debt.CurrentBalance),
			InterestRate:      ratio(s.Debt.InterestRate),
			MonthlyPayment:    money(s.Debt.MonthlyPayment),
			PaidAmount:        money(s.PaidAmount),
			Progress:          ratio(s.Progress),
			MonthsToPayoff:    s.MonthsToPayoff,
			EstimatedInterest: money(s.EstimatedInterest),
		}
	}
	return DebtOverviewResponse{
		Data: DebtOverviewData{
			Debts:                  debts,
			TotalOriginal:          money(o.TotalOriginal),
			TotalBalance:           money(o.TotalBalance),
			TotalPaid:              money(o.TotalPaid),
			TotalMonthlyPayments:   money(o.TotalMonthlyPayments),
			WeightedInterestRate:   ratio(o.WeightedInterestRate),
			Progress:               ratio(o.Progress),
			EstimatedTotalInterest: money(o.EstimatedTotalInterest),
		},
	}
}
