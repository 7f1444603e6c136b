package finance

import (
	"sort"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// Position is one valued investment.
type Position struct {
	Investment  *entity.Investment
	Value       float64
	CostBasis   float64
	GainLoss    float64
	GainPercent float64
	Share       float64
}

// Allocation is the share of the portfolio held in one investment type.
type Allocation struct {
	Type  entity.InvestmentType
	Value float64
	Share float64
}

// PortfolioSummary values all active investments.
type PortfolioSummary struct {
	Positions               []Position
	TotalValue              float64
	TotalCostBasis          float64
	TotalGainLoss           float64
	TotalGainPercent        float64
	Allocation              []Allocation
	MonthlySavingsPlanTotal float64
	ActiveSavingsPlans      int
}

// SummarizePortfolio values the active investments, groups them by type and
// sums the monthly equivalent of all active savings plans. Allocations are
// sorted by value, largest first.
func SummarizePortfolio(investments []*entity.Investment, plans []*entity.SavingsPlan) PortfolioSummary {
	var s PortfolioSummary
	byType := make(map[entity.InvestmentType]float64)
	var order []entity.InvestmentType

	for _, inv := range investments {
		if !inv.Active {
			continue
		}
		pos := Position{
			Investment: inv,
			Value:      inv.Value(),
			CostBasis:  inv.CostBasis(),
			GainLoss:   inv.GainLoss(),
		}
		pos.GainPercent = safeDiv(pos.GainLoss, pos.CostBasis) * 100
		s.Positions = append(s.Positions, pos)
		s.TotalValue += pos.Value
		s.TotalCostBasis += pos.CostBasis

		if _, ok := byType[inv.Type]; !ok {
			order = append(order, inv.Type)
		}
		byType[inv.Type] += pos.Value
	}
	s.TotalGainLoss = s.TotalValue - s.TotalCostBasis
	s.TotalGainPercent = safeDiv(s.TotalGainLoss, s.TotalCostBasis) * 100

	for i := range s.Positions {
		s.Positions[i].Share = safeDiv(s.Positions[i].Value, s.TotalValue)
	}
	for _, t := range order {
		s.Allocation = append(s.Allocation, Allocation{
			Type:  t,
			Value: byType[t],
			Share: safeDiv(byType[t], s.TotalValue),
		})
	}
	sort.SliceStable(s.Allocation, func(i, j int) bool {
		return s.Allocation[i].Value > s.Allocation[j].Value
	})

	for _, p := range plans {
		if !p.Active {
			continue
		}
		s.ActiveSavingsPlans++
		s.MonthlySavingsPlanTotal += MonthlyEquivalent(p.Amount, p.Frequency)
	}
	return s
}
