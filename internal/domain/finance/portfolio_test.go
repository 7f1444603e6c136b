package finance

import (
	"testing"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

func TestSummarizePortfolio(t *testing.T) {
	investments := []*entity.Investment{
		{Name: "MSCI World", Type: entity.InvestmentTypeETF, Quantity: 10, PurchasePrice: 100, CurrentPrice: 120, Active: true},
		{Name: "Geschenkt", Type: entity.InvestmentTypeCrypto, Quantity: 1, PurchasePrice: 0, CurrentPrice: 300, Active: true},
		{Name: "Verkauft", Type: entity.InvestmentTypeStock, Quantity: 5, PurchasePrice: 10, CurrentPrice: 50, Active: false},
	}
	plans := []*entity.SavingsPlan{
		{Name: "ETF Sparplan", Amount: 100, Frequency: entity.FrequencyMonthly, Active: true},
		{Name: "Quartal", Amount: 300, Frequency: entity.FrequencyQuarterly, Active: true},
		{Name: "Pausiert", Amount: 999, Frequency: entity.FrequencyMonthly, Active: false},
	}

	s := SummarizePortfolio(investments, plans)

	if len(s.Positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(s.Positions))
	}
	assertFloat(t, "total value", 1500, s.TotalValue)
	assertFloat(t, "cost basis", 1000, s.TotalCostBasis)
	assertFloat(t, "gain", 500, s.TotalGainLoss)
	assertFloat(t, "gain percent", 50, s.TotalGainPercent)
	assertFloat(t, "etf gain percent", 20, s.Positions[0].GainPercent)
	assertFloat(t, "zero cost basis gain percent", 0, s.Positions[1].GainPercent)

	if len(s.Allocation) != 2 || s.Allocation[0].Type != entity.InvestmentTypeETF {
		t.Fatalf("expected ETF to lead the allocation, got %+v", s.Allocation)
	}
	assertFloat(t, "etf share", 0.8, s.Allocation[0].Share)
	assertFloat(t, "savings plans", 200, s.MonthlySavingsPlanTotal)
	if s.ActiveSavingsPlans != 2 {
		t.Errorf("expected 2 active plans, got %d", s.ActiveSavingsPlans)
	}
}

func TestSummarizePortfolio_Empty(t *testing.T) {
	s := SummarizePortfolio(nil, nil)
	if s.TotalValue != 0 || s.TotalGainPercent != 0 || len(s.Allocation) != 0 {
		t.Errorf("expected an empty summary, got %+v", s)
	}
}
