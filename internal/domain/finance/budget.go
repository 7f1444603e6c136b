package finance

import (
	"sort"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// BudgetComparison compares one category budget with the actual spending.
type BudgetComparison struct {
	Category    string
	Budget      float64
	Actual      float64
	Remaining   float64
	PercentUsed float64
	OverBudget  bool
}

// budgetsByCategory sums the budgets of month per category, keeping the order
// of first occurrence.
func budgetsByCategory(budgets []*entity.Budget, month Month) []CategoryAmount {
	key := month.String()
	index := make(map[string]int)
	var out []CategoryAmount
	for _, b := range budgets {
		if b == nil || b.Month != key {
			continue
		}
		cat := entity.NormalizeCategory(b.Category)
		i, ok := index[cat]
		if !ok {
			i = len(out)
			index[cat] = i
			out = append(out, CategoryAmount{Category: cat})
		}
		out[i].Amount += b.BudgetAmount
	}
	return out
}

// expensesInMonth sums expenses per category for month.
func expensesInMonth(txs []*entity.Transaction, month Month) map[string]float64 {
	actual := make(map[string]float64)
	for _, tx := range txs {
		if tx == nil || tx.Type != entity.TransactionTypeExpense || !month.Contains(tx.Date) {
			continue
		}
		actual[entity.NormalizeCategory(tx.Category)] += tx.Amount
	}
	return actual
}

// CompareBudgets compares every budget of month with the expenses booked in
// that month, most consumed budget first.
func CompareBudgets(txs []*entity.Transaction, budgets []*entity.Budget, month Month) []BudgetComparison {
	actual := expensesInMonth(txs, month)
	planned := budgetsByCategory(budgets, month)

	out := make([]BudgetComparison, 0, len(planned))
	for _, b := range planned {
		spent := actual[b.Category]
		out = append(out, BudgetComparison{
			Category:    b.Category,
			Budget:      b.Amount,
			Actual:      spent,
			Remaining:   b.Amount - spent,
			PercentUsed: safeDiv(spent, b.Amount) * 100,
			OverBudget:  spent > b.Amount,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PercentUsed > out[j].PercentUsed
	})
	return out
}
