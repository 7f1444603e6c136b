package finance

import (
	"math"
	"sort"
	"time"

	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/google/uuid"
)

// OnTrackTolerance is the share of the time-proportional progress a goal
// must reach to count as on track.
const OnTrackTolerance = 0.9

// MilestoneStatus is a milestone evaluated against the goal's current amount.
type MilestoneStatus struct {
	ID           uuid.UUID
	Name         string
	TargetAmount float64
	Reached      bool
}

// GoalProgress is the projection of a single goal.
type GoalProgress struct {
	Goal                *entity.Goal
	CurrentAmount       float64
	Remaining           float64
	Progress            float64
	ElapsedFraction     float64
	ExpectedProgress    float64
	OnTrack             bool
	MonthlyRate         float64
	MonthsRemaining     float64
	RequiredMonthly     float64
	ProjectedCompletion *time.Time
	Milestones          []MilestoneStatus
	NextMilestone       *MilestoneStatus
}

// EffectiveCurrentAmount returns the amount a goal is measured with: the live
// monthly income for income goals, the stored current amount otherwise.
func EffectiveCurrentAmount(g *entity.Goal, liveMonthlyIncome float64) float64 {
	if g.IsIncomeGoal() {
		return liveMonthlyIncome
	}
	return g.CurrentAmount
}

// ProjectGoal evaluates g at asOf. Progress is (current−start)/(target−start)
// which also covers goals whose target is below the start, such as debt
// payoff. The projected completion extrapolates the average rate since the
// goal was created; it is nil when there is no progress in the goal's
// direction yet.
func ProjectGoal(g *entity.Goal, liveMonthlyIncome float64, asOf time.Time) GoalProgress {
	current := EffectiveCurrentAmount(g, liveMonthlyIncome)
	p := GoalProgress{
		Goal:          g,
		CurrentAmount: current,
		Remaining:     g.TargetAmount - current,
	}

	span := g.TargetAmount - g.StartAmount
	p.Progress = clamp(safeDiv(current-g.StartAmount, span), 0, 1)
	if span == 0 {
		p.Progress = 1
	}

	total := g.Deadline.Sub(g.CreatedAt)
	if total > 0 {
		p.ElapsedFraction = clamp(float64(asOf.Sub(g.CreatedAt))/float64(total), 0, 1)
	} else if !asOf.Before(g.Deadline) {
		p.ElapsedFraction = 1
	}
	p.ExpectedProgress = p.ElapsedFraction
	p.OnTrack = p.Progress >= p.ExpectedProgress*OnTrackTolerance

	p.MonthsRemaining = math.Max(0, monthsBetween(asOf, g.Deadline))
	if p.MonthsRemaining > 0 {
		p.RequiredMonthly = p.Remaining / p.MonthsRemaining
	} else {
		p.RequiredMonthly = p.Remaining
	}

	elapsedMonths := monthsBetween(g.CreatedAt, asOf)
	if elapsedMonths > 0 {
		p.MonthlyRate = (current - g.StartAmount) / elapsedMonths
	}
	switch {
	case p.Progress >= 1:
		done := asOf
		p.ProjectedCompletion = &done
	case p.MonthlyRate != 0 && sameSign(p.MonthlyRate, p.Remaining):
		months := p.Remaining / p.MonthlyRate
		done := asOf.Add(time.Duration(months * averageDaysPerMonth * 24 * float64(time.Hour)))
		p.ProjectedCompletion = &done
	}

	p.Milestones = milestoneStatuses(g.Milestones, current)
	for i := range p.Milestones {
		if p.Milestones[i].Reached {
			continue
		}
		if i == 0 || p.Milestones[i-1].Reached {
			next := p.Milestones[i]
			p.NextMilestone = &next
		}
		break
	}
	return p
}

// ProjectGoals projects every active goal in input order. Paused and achieved
// goals are skipped.
func ProjectGoals(goals []*entity.Goal, liveMonthlyIncome float64, asOf time.Time) []GoalProgress {
	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		if !g.IsActive() {
			continue
		}
		out = append(out, ProjectGoal(g, liveMonthlyIncome, asOf))
	}
	return out
}

func milestoneStatuses(ms []entity.Milestone, current float64) []MilestoneStatus {
	out := make([]MilestoneStatus, len(ms))
	for i, m := range ms {
		out[i] = MilestoneStatus{
			ID:           m.ID,
			Name:         m.Name,
			TargetAmount: m.TargetAmount,
			Reached:      current >= m.TargetAmount,
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TargetAmount < out[j].TargetAmount
	})
	return out
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
