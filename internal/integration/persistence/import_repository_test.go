package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
	"github.com/finance-tracker/planner/internal/integration/snapshot"
)

func TestImportRepository_Replace(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewImportRepository(db)

	store, err := snapshot.Load("../snapshot/testdata/sample.toml")
	if err != nil {
		t.Fatalf("failed to load sample: %v", err)
	}

	other := uuid.New()
	mustCreate(t, db, model.TransactionFromEntity(
		entity.NewTransaction(other, day(1, 2), 10, entity.TransactionTypeExpense, "Restaurant", "", false, ""),
	))

	// Importing twice must not duplicate anything.
	for i := 0; i < 2; i++ {
		res, err := repo.Replace(ctx, store)
		if err != nil {
			t.Fatalf("import %d: expected no error, got %v", i, err)
		}
		if res["transactions"] != len(store.Transactions) {
			t.Errorf("expected %d transactions written, got %d", len(store.Transactions), res["transactions"])
		}
	}

	txs, err := NewTransactionRepository(db).ListTransactions(ctx, adapter.TransactionFilter{UserID: store.UserID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(txs) != len(store.Transactions) {
		t.Errorf("expected %d transactions, got %d", len(store.Transactions), len(txs))
	}

	goals, err := NewGoalRepository(db).ListGoals(ctx, store.UserID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(goals) != len(store.Goals) {
		t.Fatalf("expected %d goals, got %d", len(store.Goals), len(goals))
	}
	byName := make(map[string]*entity.Goal, len(store.Goals))
	for _, g := range store.Goals {
		byName[g.Name] = g
	}
	for _, g := range goals {
		want, ok := byName[g.Name]
		if !ok {
			t.Errorf("unexpected goal %q", g.Name)
			continue
		}
		if len(g.Milestones) != len(want.Milestones) {
			t.Errorf("goal %q: expected %d milestones, got %d", g.Name, len(want.Milestones), len(g.Milestones))
		}
	}

	var milestones int64
	db.Model(&model.MilestoneModel{}).Count(&milestones)
	var wantMilestones int
	for _, g := range store.Goals {
		wantMilestones += len(g.Milestones)
	}
	if int(milestones) != wantMilestones {
		t.Errorf("expected %d milestone rows, got %d", wantMilestones, milestones)
	}

	others, err := NewTransactionRepository(db).ListTransactions(ctx, adapter.TransactionFilter{UserID: other})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(others) != 1 {
		t.Errorf("expected the other user's transaction to survive, got %d", len(others))
	}
}
