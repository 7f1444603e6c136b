package finance

import (
	"testing"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

func TestMonthlySummarize(t *testing.T) {
	t.Run("calendar month totals", func(t *testing.T) {
		txs := []*entity.Transaction{
			income("2024-01-05", 3500, "Gehalt"),
			expense("2024-01-03", 950, "Miete"),
			expense("2024-01-01", 85.50, "Lebensmittel"),
			expense("2024-02-01", 40, "Lebensmittel"),
		}

		s := MonthlySummarize(txs, month("2024-01"))

		assertFloat(t, "income", 3500, s.Income)
		assertFloat(t, "expenses", 1035.50, s.Expenses)
		assertFloat(t, "net", 2464.50, s.Net)
		assertFloat(t, "savings rate", 2464.50/3500, s.SavingsRate)
		if s.TransactionCount != 3 {
			t.Errorf("expected 3 transactions, got %d", s.TransactionCount)
		}
	})

	t.Run("savings rate is zero without income", func(t *testing.T) {
		s := MonthlySummarize([]*entity.Transaction{expense("2024-01-10", 20, "Freizeit")}, month("2024-01"))
		if s.SavingsRate != 0 {
			t.Errorf("expected savings rate 0, got %v", s.SavingsRate)
		}
		assertFloat(t, "net", -20, s.Net)
	})

	t.Run("last day of the month is included", func(t *testing.T) {
		s := MonthlySummarize([]*entity.Transaction{expense("2024-01-31", 10, "Freizeit")}, month("2024-01"))
		assertFloat(t, "expenses", 10, s.Expenses)
	})
}

func TestGroupByCategory(t *testing.T) {
	txs := []*entity.Transaction{
		expense("2024-01-01", 10, "Lebensmittel"),
		expense("2024-01-02", 15, "Lebensmittel"),
		expense("2024-01-03", 5, ""),
		income("2024-01-04", 100, "Gehalt"),
	}

	t.Run("all kinds", func(t *testing.T) {
		got := GroupByCategory(txs, nil)
		if len(got) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(got))
		}
		assertFloat(t, "Lebensmittel", 25, got["Lebensmittel"])
		assertFloat(t, "Sonstiges", 5, got[entity.UncategorizedName])
	})

	t.Run("filtered by kind", func(t *testing.T) {
		kind := entity.TransactionTypeIncome
		got := GroupByCategory(txs, &kind)
		if len(got) != 1 {
			t.Fatalf("expected 1 category, got %d", len(got))
		}
		assertFloat(t, "Gehalt", 100, got["Gehalt"])
	})
}

func TestTopCategories(t *testing.T) {
	txs := []*entity.Transaction{
		expense("2024-01-01", 50, "Restaurant"),
		expense("2024-01-02", 200, "Miete"),
		expense("2024-01-03", 50, "Freizeit"),
		expense("2024-01-04", 75, "Lebensmittel"),
		income("2024-01-05", 1000, "Gehalt"),
	}

	t.Run("sorted descending with stable ties", func(t *testing.T) {
		got := TopCategories(txs, entity.TransactionTypeExpense, 0)
		expected := []string{"Miete", "Lebensmittel", "Restaurant", "Freizeit"}
		if len(got) != len(expected) {
			t.Fatalf("expected %d categories, got %d", len(expected), len(got))
		}
		for i, c := range expected {
			if got[i].Category != c {
				t.Errorf("expected position %d to be %s, got %s", i, c, got[i].Category)
			}
		}
	})

	t.Run("truncated to limit", func(t *testing.T) {
		got := TopCategories(txs, entity.TransactionTypeExpense, 2)
		if len(got) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(got))
		}
		if got[1].Category != "Lebensmittel" {
			t.Errorf("expected Lebensmittel, got %s", got[1].Category)
		}
	})
}

func TestMonthlyTotals(t *testing.T) {
	txs := []*entity.Transaction{
		income("2024-01-05", 1000, "Gehalt"),
		expense("2024-03-05", 300, "Miete"),
		expense("2023-12-31", 999, "Reisen"),
	}
	months := []Month{month("2024-01"), month("2024-02"), month("2024-03")}

	got := MonthlyTotals(txs, months)

	if len(got) != 3 {
		t.Fatalf("expected 3 months, got %d", len(got))
	}
	assertFloat(t, "january income", 1000, got[0].Income)
	assertFloat(t, "january savings rate", 1, got[0].SavingsRate)
	if got[1].TransactionCount != 0 || got[1].Expenses != 0 {
		t.Errorf("expected an empty february, got %+v", got[1])
	}
	assertFloat(t, "march net", -300, got[2].Net)
	assertFloat(t, "march savings rate", 0, got[2].SavingsRate)
}

func TestWeeklyTotals(t *testing.T) {
	txs := []*entity.Transaction{
		expense("2024-01-03", 30, "Lebensmittel"),
		expense("2024-01-07", 20, "Lebensmittel"),
		income("2024-01-08", 500, "Gehalt"),
		expense("2024-01-20", 99, "Reisen"),
	}

	got := WeeklyTotals(txs, date("2024-01-03"), date("2024-01-14"))

	if len(got) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(got))
	}
	if !got[0].WeekStart.Equal(date("2024-01-01")) {
		t.Errorf("expected first week to start on Monday 2024-01-01, got %v", got[0].WeekStart)
	}
	assertFloat(t, "week 1 expenses", 50, got[0].Expenses)
	assertFloat(t, "week 2 income", 500, got[1].Income)
	assertFloat(t, "week 2 net", 500, got[1].Net)

	if empty := WeeklyTotals(txs, date("2024-01-14"), date("2024-01-01")); len(empty) != 0 {
		t.Errorf("expected no weeks for an inverted range, got %d", len(empty))
	}
}

func TestMonthlyEquivalent(t *testing.T) {
	amounts := []float64{0, 1, 100, 1234.56, 1e9}
	for _, x := range amounts {
		if got := MonthlyEquivalent(x, entity.FrequencyYearly); got != x/12 {
			t.Errorf("expected yearly %v to become %v, got %v", x, x/12, got)
		}
		if got := MonthlyEquivalent(x, entity.FrequencyQuarterly); got != x/3 {
			t.Errorf("expected quarterly %v to become %v, got %v", x, x/3, got)
		}
		if got := MonthlyEquivalent(x, entity.FrequencyMonthly); got != x {
			t.Errorf("expected monthly %v to stay, got %v", x, got)
		}
	}
}

func TestSafeDiv(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"regular", 1, 4, 0.25},
		{"zero denominator", 5, 0, 0},
		{"zero over zero", 0, 0, 0},
		{"negative zero denominator", -5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := safeDiv(tt.a, tt.b); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
