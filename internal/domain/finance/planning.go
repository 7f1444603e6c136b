package finance

import (
	"math"
	"time"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// SavingsTarget is the progress of a purchase or event fund.
type SavingsTarget struct {
	Name                string
	TargetAmount        float64
	SavedAmount         float64
	MonthlyContribution float64
	TargetDate          *time.Time
	Remaining           float64
	Progress            float64
	MonthsToTarget      *int
	ProjectedCompletion *Month
	OnSchedule          bool
}

// PlanSavingsTarget projects a target funded by a constant monthly
// contribution. MonthsToTarget is nil when money is still missing and
// nothing is contributed. Without a target date the plan is on schedule
// whenever it completes at all.
func PlanSavingsTarget(name string, target, saved, monthly float64, targetDate *time.Time, asOf time.Time) SavingsTarget {
	t := SavingsTarget{
		Name:                name,
		TargetAmount:        target,
		SavedAmount:         saved,
		MonthlyContribution: monthly,
		TargetDate:          targetDate,
		Remaining:           math.Max(0, target-saved),
		Progress:            clamp(safeDiv(saved, target), 0, 1),
	}
	if target <= 0 {
		t.Progress = 1
	}

	switch {
	case t.Remaining == 0:
		zero := 0
		t.MonthsToTarget = &zero
	case monthly > 0:
		n := int(math.Ceil(t.Remaining / monthly))
		t.MonthsToTarget = &n
	}
	if t.MonthsToTarget != nil {
		done := MonthOf(asOf).AddMonths(*t.MonthsToTarget)
		t.ProjectedCompletion = &done
		t.OnSchedule = targetDate == nil || !MonthOf(*targetDate).Before(done)
	}
	return t
}

// PlanPurchase projects a planned purchase.
func PlanPurchase(p *entity.PlannedPurchase, asOf time.Time) SavingsTarget {
	return PlanSavingsTarget(p.Name, p.TargetAmount, p.SavedAmount, p.MonthlyContribution, p.TargetDate, asOf)
}

// PlanEvent projects an event budget against its event date.
func PlanEvent(e *entity.EventBudget, asOf time.Time) SavingsTarget {
	date := e.EventDate
	return PlanSavingsTarget(e.Name, e.TargetAmount, e.SavedAmount, e.MonthlyContribution, &date, asOf)
}

// CategoryExpenses returns the monthly expenses per category from fixed
// costs (normalised to monthly) and variable cost estimates, in first
// occurrence order.
func CategoryExpenses(fixed []*entity.FixedCost, variable []*entity.VariableCostEstimate) []CategoryAmount {
	var out []CategoryAmount
	index := make(map[string]int)
	add := func(category string, amount float64) {
		category = entity.NormalizeCategory(category)
		if i, ok := index[category]; ok {
			out[i].Amount += amount
			return
		}
		index[category] = len(out)
		out = append(out, CategoryAmount{Category: category, Amount: amount})
	}
	for _, c := range fixed {
		add(c.Category, MonthlyEquivalent(c.Amount, c.Frequency))
	}
	for _, c := range variable {
		add(c.Category, c.MonthlyAmount)
	}
	return out
}

// CategoryChange is the effect of a scenario on one category.
type CategoryChange struct {
	Category string
	Before   float64
	After    float64
	Delta    float64
}

// ScenarioImpact is the outcome of applying a life scenario to the profile.
type ScenarioImpact struct {
	Scenario              *entity.LifeScenario
	Changes               []CategoryChange
	CurrentExpenses       float64
	NewExpenses           float64
	MonthlyDelta          float64
	CurrentAvailable      float64
	NewAvailable          float64
	OneTimeCost           float64
	MonthsToRecover       *int
	AffordableFromSavings bool
}

// EvaluateScenario applies the scenario's adjustments to the category
// expenses. Absolute adjustments add their value, percentage adjustments add
// value% of the category's current expenses. Categories not present yet
// start at 0. Months to recover the one-time cost is nil when the new
// available income is not positive.
func EvaluateScenario(sc *entity.LifeScenario, categories []CategoryAmount, profile FinancialProfile) ScenarioImpact {
	current := make(map[string]float64, len(categories))
	for _, c := range categories {
		current[c.Category] += c.Amount
	}

	im := ScenarioImpact{
		Scenario:         sc,
		CurrentExpenses:  profile.MonthlyExpenses,
		CurrentAvailable: profile.AvailableIncome,
		OneTimeCost:      sc.OneTimeCost,
	}
	changed := make(map[string]int)
	for _, adj := range sc.Adjustments {
		cat := entity.NormalizeCategory(adj.Category)
		before := current[cat]
		var delta float64
		switch adj.Kind {
		case entity.AdjustmentPercentage:
			delta = before * adj.Value / 100
		default:
			delta = adj.Value
		}
		current[cat] = before + delta
		im.MonthlyDelta += delta

		if i, ok := changed[cat]; ok {
			im.Changes[i].After = current[cat]
			im.Changes[i].Delta += delta
			continue
		}
		changed[cat] = len(im.Changes)
		im.Changes = append(im.Changes, CategoryChange{
			Category: cat,
			Before:   before,
			After:    current[cat],
			Delta:    delta,
		})
	}

	im.NewExpenses = im.CurrentExpenses + im.MonthlyDelta
	im.NewAvailable = im.CurrentAvailable - im.MonthlyDelta
	if im.NewAvailable > 0 {
		n := int(math.Ceil(sc.OneTimeCost / im.NewAvailable))
		im.MonthsToRecover = &n
	}
	im.AffordableFromSavings = profile.Savings >= sc.OneTimeCost
	return im
}

// PlanningOverview bundles purchases, events and scenarios.
type PlanningOverview struct {
	Purchases              []SavingsTarget
	Events                 []SavingsTarget
	Scenarios              []ScenarioImpact
	TotalMonthlyCommitment float64
	CommitmentShare        float64
}

// PlanningInput is the data needed for a PlanningOverview.
type PlanningInput struct {
	Purchases     []*entity.PlannedPurchase
	Events        []*entity.EventBudget
	Scenarios     []*entity.LifeScenario
	FixedCosts    []*entity.FixedCost
	VariableCosts []*entity.VariableCostEstimate
	Profile       FinancialProfile
	AsOf          time.Time
}

// BuildPlanningOverview evaluates all plans. CommitmentShare is the share of
// the available income taken by the monthly contributions of unfinished
// plans.
func BuildPlanningOverview(in PlanningInput) PlanningOverview {
	var o PlanningOverview
	for _, p := range in.Purchases {
		t := PlanPurchase(p, in.AsOf)
		o.Purchases = append(o.Purchases, t)
		if t.Remaining > 0 {
			o.TotalMonthlyCommitment += t.MonthlyContribution
		}
	}
	for _, e := range in.Events {
		t := PlanEvent(e, in.AsOf)
		o.Events = append(o.Events, t)
		if t.Remaining > 0 {
			o.TotalMonthlyCommitment += t.MonthlyContribution
		}
	}
	categories := CategoryExpenses(in.FixedCosts, in.VariableCosts)
	for _, sc := range in.Scenarios {
		o.Scenarios = append(o.Scenarios, EvaluateScenario(sc, categories, in.Profile))
	}
	o.CommitmentShare = safeDiv(o.TotalMonthlyCommitment, in.Profile.AvailableIncome)
	if in.Profile.AvailableIncome <= 0 {
		o.CommitmentShare = 0
	}
	return o
}
