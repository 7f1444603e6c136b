package finance

import (
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// maxPayoffMonths bounds the amortisation of a single debt.
const maxPayoffMonths = 600

// DebtStatus is the repayment state of one debt.
type DebtStatus struct {
	Debt              *entity.Debt
	PaidAmount        float64
	Progress          float64
	MonthsToPayoff    *int
	EstimatedInterest float64
}

// DebtOverview aggregates all debts.
type DebtOverview struct {
	Debts                  []DebtStatus
	TotalOriginal          float64
	TotalBalance           float64
	TotalPaid              float64
	TotalMonthlyPayments   float64
	WeightedInterestRate   float64
	Progress               float64
	EstimatedTotalInterest float64
}

// DebtProgress returns (original − current)/original, 0 without an original amount.
func DebtProgress(d *entity.Debt) float64 {
	return safeDiv(d.OriginalAmount-d.CurrentBalance, d.OriginalAmount)
}

// MonthsToPayoff amortises the balance month by month with the annual rate
// InterestRate (percent). It returns the month count and the interest paid,
// or nil when the payment never outgrows the interest within maxPayoffMonths.
func MonthsToPayoff(d *entity.Debt) (*int, float64) {
	balance := d.CurrentBalance
	if balance <= 0 {
		zero := 0
		return &zero, 0
	}
	rate := d.InterestRate / 100 / 12
	if d.MonthlyPayment <= balance*rate || d.MonthlyPayment <= 0 {
		return nil, 0
	}
	var interest float64
	for m := 1; m <= maxPayoffMonths; m++ {
		charge := balance * rate
		interest += charge
		balance += charge - d.MonthlyPayment
		if balance <= 0 {
			return &m, interest
		}
	}
	return nil, 0
}

// SummarizeDebts evaluates every debt and weights the interest rate by balance.
func SummarizeDebts(debts []*entity.Debt) DebtOverview {
	o := DebtOverview{Debts: make([]DebtStatus, 0, len(debts))}
	var weighted float64
	for _, d := range debts {
		months, interest := MonthsToPayoff(d)
		o.Debts = append(o.Debts, DebtStatus{
			Debt:              d,
			PaidAmount:        d.OriginalAmount - d.CurrentBalance,
			Progress:          DebtProgress(d),
			MonthsToPayoff:    months,
			EstimatedInterest: interest,
		})
		o.TotalOriginal += d.OriginalAmount
		o.TotalBalance += d.CurrentBalance
		o.TotalMonthlyPayments += d.MonthlyPayment
		o.EstimatedTotalInterest += interest
		weighted += d.InterestRate * d.CurrentBalance
	}
	o.TotalPaid = o.TotalOriginal - o.TotalBalance
	o.Progress = safeDiv(o.TotalPaid, o.TotalOriginal)
	o.WeightedInterestRate = safeDiv(weighted, o.TotalBalance)
	return o
}
