package finance

import (
	"testing"

	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/google/uuid"
)

func savingsGoal(current float64) *entity.Goal {
	return &entity.Goal{
		ID:            uuid.New(),
		Name:          "Notgroschen",
		Type:          entity.GoalTypeSavings,
		StartAmount:   0,
		CurrentAmount: current,
		TargetAmount:  10000,
		CreatedAt:     date("2024-01-01"),
		Deadline:      date("2025-01-01"),
		Status:        entity.GoalStatusActive,
	}
}

func TestProjectGoal(t *testing.T) {
	asOf := date("2024-07-01")

	t.Run("on track savings goal", func(t *testing.T) {
		g := savingsGoal(5000)
		p := ProjectGoal(g, 0, asOf)

		assertFloat(t, "remaining", 5000, p.Remaining)
		assertFloat(t, "progress", 0.5, p.Progress)
		if !p.OnTrack {
			t.Errorf("expected on track, elapsed %v progress %v", p.ElapsedFraction, p.Progress)
		}
		if p.ProjectedCompletion == nil {
			t.Fatal("expected a projected completion")
		}
		if p.ProjectedCompletion.After(g.Deadline) {
			t.Errorf("expected completion before the deadline, got %v", p.ProjectedCompletion)
		}
		if p.RequiredMonthly <= 0 {
			t.Errorf("expected a positive required monthly amount, got %v", p.RequiredMonthly)
		}
	})

	t.Run("behind schedule", func(t *testing.T) {
		p := ProjectGoal(savingsGoal(1000), 0, asOf)
		if p.OnTrack {
			t.Error("expected goal to be behind")
		}
	})

	t.Run("within the tolerance band", func(t *testing.T) {
		// elapsed is 182/366, 90% of it is about 0.4475
		p := ProjectGoal(savingsGoal(4500), 0, asOf)
		if !p.OnTrack {
			t.Errorf("expected on track inside the tolerance, progress %v elapsed %v", p.Progress, p.ElapsedFraction)
		}
	})

	t.Run("no progress has no projection", func(t *testing.T) {
		p := ProjectGoal(savingsGoal(0), 0, asOf)
		if p.ProjectedCompletion != nil {
			t.Errorf("expected no projection, got %v", p.ProjectedCompletion)
		}
	})

	t.Run("income goal uses live income", func(t *testing.T) {
		g := &entity.Goal{
			Type:          entity.GoalTypeIncome,
			StartAmount:   3000,
			CurrentAmount: 0,
			TargetAmount:  5000,
			CreatedAt:     date("2024-01-01"),
			Deadline:      date("2025-01-01"),
			Status:        entity.GoalStatusActive,
		}
		p := ProjectGoal(g, 4500, asOf)
		assertFloat(t, "current", 4500, p.CurrentAmount)
		assertFloat(t, "progress", 0.75, p.Progress)
		assertFloat(t, "remaining", 500, p.Remaining)
	})

	t.Run("debt payoff goal counts down", func(t *testing.T) {
		g := &entity.Goal{
			Type:          entity.GoalTypeDebtPayoff,
			StartAmount:   10000,
			CurrentAmount: 4000,
			TargetAmount:  0,
			CreatedAt:     date("2024-01-01"),
			Deadline:      date("2025-01-01"),
			Status:        entity.GoalStatusActive,
		}
		p := ProjectGoal(g, 0, asOf)
		assertFloat(t, "progress", 0.6, p.Progress)
		assertFloat(t, "remaining", -4000, p.Remaining)
		if p.ProjectedCompletion == nil {
			t.Error("expected a projected completion")
		}
	})

	t.Run("deadline passed", func(t *testing.T) {
		p := ProjectGoal(savingsGoal(9000), 0, date("2025-03-01"))
		assertFloat(t, "elapsed", 1, p.ElapsedFraction)
		assertFloat(t, "months remaining", 0, p.MonthsRemaining)
		assertFloat(t, "required monthly", 1000, p.RequiredMonthly)
		if !p.OnTrack {
			t.Error("expected 90% progress to be on track at the deadline")
		}
	})

	t.Run("target equal to start is complete", func(t *testing.T) {
		g := savingsGoal(0)
		g.TargetAmount = 0
		p := ProjectGoal(g, 0, asOf)
		assertFloat(t, "progress", 1, p.Progress)
	})
}

func TestProjectGoal_Milestones(t *testing.T) {
	g := savingsGoal(5000)
	g.Milestones = []entity.Milestone{
		{Name: "Drei Viertel", TargetAmount: 7500},
		{Name: "Ein Viertel", TargetAmount: 2500},
		{Name: "Hälfte", TargetAmount: 5000},
	}

	p := ProjectGoal(g, 0, date("2024-07-01"))

	if len(p.Milestones) != 3 {
		t.Fatalf("expected 3 milestones, got %d", len(p.Milestones))
	}
	expected := []struct {
		name    string
		reached bool
	}{
		{"Ein Viertel", true},
		{"Hälfte", true},
		{"Drei Viertel", false},
	}
	for i, e := range expected {
		if p.Milestones[i].Name != e.name || p.Milestones[i].Reached != e.reached {
			t.Errorf("expected milestone %d to be %s reached=%v, got %+v", i, e.name, e.reached, p.Milestones[i])
		}
	}
	if p.NextMilestone == nil || p.NextMilestone.Name != "Drei Viertel" {
		t.Errorf("expected Drei Viertel as next milestone, got %v", p.NextMilestone)
	}
	if g.Milestones[0].Name != "Drei Viertel" {
		t.Error("expected input milestones to stay untouched")
	}
}

func TestProjectGoals_SkipsInactive(t *testing.T) {
	paused := savingsGoal(100)
	paused.Status = entity.GoalStatusPaused
	achieved := savingsGoal(10000)
	achieved.Status = entity.GoalStatusAchieved
	active := savingsGoal(100)

	got := ProjectGoals([]*entity.Goal{paused, achieved, active}, 0, date("2024-07-01"))

	if len(got) != 1 {
		t.Fatalf("expected 1 projected goal, got %d", len(got))
	}
	if got[0].Goal != active {
		t.Error("expected the active goal")
	}
}
