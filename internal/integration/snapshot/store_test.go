package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

func loadSample(t *testing.T) *Store {
	t.Helper()
	s, err := Load(filepath.Join("testdata", "sample.toml"))
	if err != nil {
		t.Fatalf("failed to load sample: %v", err)
	}
	return s
}

func TestLoad(t *testing.T) {
	s := loadSample(t)

	if s.UserID.String() != "7b3e1a52-4c1d-4f8e-9a77-2f6f3c1d0e11" {
		t.Errorf("expected user id from file, got %s", s.UserID)
	}
	if len(s.IncomeSources) != 3 {
		t.Fatalf("expected 3 income sources, got %d", len(s.IncomeSources))
	}
	if s.IncomeSources[2].Active {
		t.Error("expected the third source to be inactive")
	}
	if !s.IncomeSources[0].Active {
		t.Error("expected active to default to true")
	}
	bonus := s.IncomeSources[1]
	if bonus.ConfirmedQuarters == nil || !bonus.ConfirmedQuarters.Q1 || bonus.ConfirmedQuarters.Q2 {
		t.Errorf("expected only Q1 confirmed, got %+v", bonus.ConfirmedQuarters)
	}
	if len(s.Goals) != 2 || len(s.Goals[0].Milestones) != 1 {
		t.Fatalf("expected 2 goals with one milestone on the first, got %+v", s.Goals)
	}
	if s.Goals[1].Status != entity.GoalStatusPaused {
		t.Errorf("expected paused goal, got %s", s.Goals[1].Status)
	}
	if s.Goals[0].Status != entity.GoalStatusActive {
		t.Errorf("expected status to default to active, got %s", s.Goals[0].Status)
	}
	if s.PlannedPurchases[0].TargetDate == nil {
		t.Error("expected a target date")
	}
	if len(s.LifeScenarios[0].Adjustments) != 1 {
		t.Errorf("expected 1 adjustment, got %d", len(s.LifeScenarios[0].Adjustments))
	}
	if s.Transactions[0].UserID != s.UserID {
		t.Error("expected records to belong to the snapshot user")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid toml", `currency = `},
		{"unknown key", "currency = \"EUR\"\nsurprise = 1\n"},
		{"invalid user id", `user_id = "nope"`},
		{"invalid date", "[[transactions]]\ndate = \"05.01.2024\"\namount = 1\ntype = \"expense\"\n"},
		{"invalid type", "[[transactions]]\ndate = \"2024-01-05\"\namount = 1\ntype = \"transfer\"\n"},
		{"invalid frequency", "[[income_sources]]\nname = \"x\"\namount = 1\nfrequency = \"weekly\"\n"},
		{"bonus fixed cost", "[[fixed_costs]]\nname = \"x\"\namount = 1\nfrequency = \"quarterly-bonus\"\n"},
		{"invalid quarter", "[[income_sources]]\nname = \"x\"\namount = 1\nfrequency = \"quarterly-bonus\"\nconfirmed_quarters = [\"Q5\"]\n"},
		{"invalid month", "[[budgets]]\nmonth = \"2024-13\"\ncategory = \"x\"\namount = 1\n"},
		{"invalid adjustment", "[[life_scenarios]]\nname = \"x\"\none_time_cost = 1\n[[life_scenarios.adjustments]]\ncategory = \"x\"\nkind = \"double\"\nvalue = 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.doc); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	s, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Currency != "EUR" {
		t.Errorf("expected EUR, got %s", s.Currency)
	}
	if s.UserID == uuid.Nil {
		t.Error("expected a generated user id")
	}
	if s.Assets != nil {
		t.Error("expected no assets")
	}
}

func TestStore_ListTransactions(t *testing.T) {
	s := loadSample(t)
	ctx := context.Background()

	t.Run("sorted by date", func(t *testing.T) {
		txs, err := s.ListTransactions(ctx, adapter.TransactionFilter{UserID: s.UserID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txs) != 4 {
			t.Fatalf("expected 4 transactions, got %d", len(txs))
		}
		for i := 1; i < len(txs); i++ {
			if txs[i].Date.Before(txs[i-1].Date) {
				t.Error("expected transactions sorted by date")
			}
		}
	})

	t.Run("inclusive date range and type", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
		kind := entity.TransactionTypeExpense
		txs, _ := s.ListTransactions(ctx, adapter.TransactionFilter{
			UserID: s.UserID, StartDate: &start, EndDate: &end, Type: &kind,
		})
		if len(txs) != 2 {
			t.Errorf("expected 2 expenses, got %d", len(txs))
		}
	})

	t.Run("category filter", func(t *testing.T) {
		txs, _ := s.ListTransactions(ctx, adapter.TransactionFilter{UserID: s.UserID, Category: "Lebensmittel"})
		if len(txs) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(txs))
		}
	})

	t.Run("other users see nothing", func(t *testing.T) {
		txs, _ := s.ListTransactions(ctx, adapter.TransactionFilter{UserID: uuid.New()})
		if txs == nil || len(txs) != 0 {
			t.Errorf("expected an empty slice, got %v", txs)
		}
		assets, _ := s.GetAssets(ctx, uuid.New())
		if assets != nil {
			t.Error("expected no assets for another user")
		}
		goals, _ := s.ListGoals(ctx, uuid.New())
		if len(goals) != 0 {
			t.Error("expected no goals for another user")
		}
	})
}

func TestStore_ListBudgets(t *testing.T) {
	s := loadSample(t)
	month := "2024-02"
	budgets, _ := s.ListBudgets(context.Background(), s.UserID, &month)
	if len(budgets) != 1 {
		t.Errorf("expected 1 budget, got %d", len(budgets))
	}
	other := "2024-03"
	budgets, _ = s.ListBudgets(context.Background(), s.UserID, &other)
	if len(budgets) != 0 {
		t.Errorf("expected no budgets, got %d", len(budgets))
	}
}

func TestWriteExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.toml")

	if err := WriteExample(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("example does not load: %v", err)
	}
	if len(s.Transactions) == 0 || len(s.Goals) == 0 || s.Assets == nil {
		t.Error("expected a populated example")
	}

	if err := WriteExample(path); !os.IsExist(err) {
		t.Errorf("expected an exists error, got %v", err)
	}
}
