package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	if err := db.AutoMigrate(model.MigrationOrder()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, values ...any) {
	t.Helper()
	for _, v := range values {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("failed to create %T: %v", v, err)
		}
	}
}

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTransactionRepository_ListTransactions(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	userID := uuid.New()

	tx := func(date time.Time, amount float64, typ entity.TransactionType, category string) *model.TransactionModel {
		return model.TransactionFromEntity(entity.NewTransaction(userID, date, amount, typ, category, "Giro", false, ""))
	}
	deleted := tx(day(time.March, 5), 999, entity.TransactionTypeExpense, "Restaurant")
	mustCreate(t, db,
		tx(day(time.March, 31), 42.5, entity.TransactionTypeExpense, "Restaurant"),
		tx(day(time.March, 1), 3000, entity.TransactionTypeIncome, "Gehalt"),
		tx(day(time.April, 1), 80, entity.TransactionTypeExpense, "Lebensmittel"),
		tx(day(time.February, 28), 19.99, entity.TransactionTypeExpense, "Abonnements"),
		model.TransactionFromEntity(entity.NewTransaction(uuid.New(), day(time.March, 2), 10, entity.TransactionTypeExpense, "Restaurant", "", false, "")),
		deleted,
	)
	if err := db.Delete(deleted).Error; err != nil {
		t.Fatalf("failed to soft delete: %v", err)
	}

	start, end := day(time.March, 1), day(time.March, 31)
	expense := entity.TransactionTypeExpense

	tests := []struct {
		name    string
		filter  adapter.TransactionFilter
		amounts []float64
	}{
		{
			name:    "all of the user",
			filter:  adapter.TransactionFilter{UserID: userID},
			amounts: []float64{19.99, 3000, 42.5, 80},
		},
		{
			name:    "inclusive date range",
			filter:  adapter.TransactionFilter{UserID: userID, StartDate: &start, EndDate: &end},
			amounts: []float64{3000, 42.5},
		},
		{
			name:    "type and category",
			filter:  adapter.TransactionFilter{UserID: userID, Type: &expense, Category: "Restaurant"},
			amounts: []float64{42.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListTransactions(ctx, tt.filter)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(got) != len(tt.amounts) {
				t.Fatalf("expected %d transactions, got %d", len(tt.amounts), len(got))
			}
			for i, want := range tt.amounts {
				if got[i].Amount != want {
					t.Errorf("expected amount %v at %d, got %v", want, i, got[i].Amount)
				}
				if got[i].UserID != userID {
					t.Errorf("expected user %s, got %s", userID, got[i].UserID)
				}
			}
		})
	}
}

func TestBudgetRepository_ListBudgets(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewBudgetRepository(db)
	userID := uuid.New()

	mustCreate(t, db,
		model.BudgetFromEntity(&entity.Budget{ID: uuid.New(), UserID: userID, Month: "2025-03", Category: "Restaurant", BudgetAmount: 150}),
		model.BudgetFromEntity(&entity.Budget{ID: uuid.New(), UserID: userID, Month: "2025-04", Category: "Restaurant", BudgetAmount: 120}),
	)

	month := "2025-04"
	got, err := repo.ListBudgets(ctx, userID, &month)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].BudgetAmount != 120 {
		t.Errorf("expected one budget of 120, got %+v", got)
	}

	all, err := repo.ListBudgets(ctx, userID, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 budgets, got %d", len(all))
	}
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewProfileRepository(db)
	userID := uuid.New()

	mustCreate(t, db,
		model.IncomeSourceFromEntity(&entity.IncomeSource{
			ID: uuid.New(), UserID: userID, Name: "Gehalt", Amount: 3200, Frequency: entity.FrequencyMonthly, Active: true,
		}),
		model.IncomeSourceFromEntity(&entity.IncomeSource{
			ID: uuid.New(), UserID: userID, Name: "Bonus", Amount: 1500, Frequency: entity.FrequencyQuarterlyBonus,
			ConfirmedQuarters: &entity.ConfirmedQuarters{Q1: true, Q3: true},
		}),
		model.FixedCostFromEntity(&entity.FixedCost{ID: uuid.New(), UserID: userID, Name: "Miete", Category: "Miete", Amount: 950, Frequency: entity.FrequencyMonthly}),
		model.VariableCostFromEntity(&entity.VariableCostEstimate{ID: uuid.New(), UserID: userID, Name: "Essen", Category: "", MonthlyAmount: 400}),
		model.DebtFromEntity(&entity.Debt{ID: uuid.New(), UserID: userID, Name: "Kredit", Type: entity.DebtTypeLoan, OriginalAmount: 8000, CurrentBalance: 6000, InterestRate: 4.9, MonthlyPayment: 250}),
	)

	t.Run("income sources keep activity and bonus quarters", func(t *testing.T) {
		sources, err := repo.ListIncomeSources(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(sources) != 2 {
			t.Fatalf("expected 2 income sources, got %d", len(sources))
		}
		var bonus *entity.IncomeSource
		for _, s := range sources {
			if s.IsQuarterlyBonus() {
				bonus = s
			}
		}
		if bonus == nil || bonus.ConfirmedQuarters == nil {
			t.Fatal("expected bonus with confirmed quarters")
		}
		if bonus.Active {
			t.Error("expected inactive bonus to stay inactive")
		}
		if bonus.ConfirmedQuarters.Count() != 2 {
			t.Errorf("expected 2 confirmed quarters, got %d", bonus.ConfirmedQuarters.Count())
		}
	})

	t.Run("costs and debts", func(t *testing.T) {
		variable, err := repo.ListVariableCosts(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(variable) != 1 || variable[0].Category != "Sonstiges" {
			t.Errorf("expected empty category normalised to Sonstiges, got %+v", variable)
		}
		debts, err := repo.ListDebts(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(debts) != 1 || debts[0].InterestRate != 4.9 {
			t.Errorf("expected one debt at 4.9%%, got %+v", debts)
		}
	})

	t.Run("missing assets are nil", func(t *testing.T) {
		assets, err := repo.GetAssets(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if assets != nil {
			t.Errorf("expected nil assets, got %+v", assets)
		}

		mustCreate(t, db, model.AssetsFromEntity(&entity.Assets{UserID: userID, Savings: 12000.5, Investments: 3000}))
		assets, err = repo.GetAssets(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if assets == nil || assets.Total() != 15000.5 {
			t.Errorf("expected total assets 15000.5, got %+v", assets)
		}
	})
}

func TestGoalAndPlanningRepositories(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	userID := uuid.New()

	goal := &entity.Goal{
		ID: uuid.New(), UserID: userID, Name: "Notgroschen", Type: entity.GoalTypeSavings,
		TargetAmount: 10000, CurrentAmount: 2500, Deadline: day(time.December, 31),
		Status: entity.GoalStatusActive, CreatedAt: day(time.January, 1),
		Milestones: []entity.Milestone{
			{Name: "Halbzeit", TargetAmount: 5000},
			{Name: "Start", TargetAmount: 1000},
		},
	}
	scenario := &entity.LifeScenario{
		ID: uuid.New(), UserID: userID, Name: "Umzug", OneTimeCost: 2500,
		Adjustments: []entity.ScenarioAdjustment{
			{Category: "Miete", Kind: entity.AdjustmentPercentage, Value: 15},
			{Category: "Transport", Kind: entity.AdjustmentAbsolute, Value: -40},
		},
	}
	mustCreate(t, db,
		model.GoalFromEntity(goal),
		model.LifeScenarioFromEntity(scenario),
		model.PlannedPurchaseFromEntity(&entity.PlannedPurchase{ID: uuid.New(), UserID: userID, Name: "Fahrrad", TargetAmount: 1200, MonthlyContribution: 100}),
		model.EventBudgetFromEntity(&entity.EventBudget{ID: uuid.New(), UserID: userID, Name: "Urlaub", EventDate: day(time.August, 1), TargetAmount: 2000}),
	)

	goals, err := NewGoalRepository(db).ListGoals(ctx, userID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(goals) != 1 || len(goals[0].Milestones) != 2 {
		t.Fatalf("expected one goal with 2 milestones, got %+v", goals)
	}
	if goals[0].Milestones[0].Name != "Halbzeit" {
		t.Errorf("expected milestones in stored order, got %s first", goals[0].Milestones[0].Name)
	}
	if !goals[0].Deadline.Equal(goal.Deadline) {
		t.Errorf("expected deadline %v, got %v", goal.Deadline, goals[0].Deadline)
	}

	planning := NewPlanningRepository(db)
	scenarios, err := planning.ListLifeScenarios(ctx, userID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(scenarios) != 1 || len(scenarios[0].Adjustments) != 2 {
		t.Fatalf("expected one scenario with 2 adjustments, got %+v", scenarios)
	}
	if adj := scenarios[0].Adjustments[1]; adj.Kind != entity.AdjustmentAbsolute || adj.Value != -40 {
		t.Errorf("expected absolute -40, got %s %v", adj.Kind, adj.Value)
	}

	purchases, err := planning.ListPlannedPurchases(ctx, userID)
	if err != nil || len(purchases) != 1 {
		t.Errorf("expected one purchase, got %d (%v)", len(purchases), err)
	}
	events, err := planning.ListEventBudgets(ctx, uuid.New())
	if err != nil || len(events) != 0 {
		t.Errorf("expected no events for another user, got %d (%v)", len(events), err)
	}
}
