package dto

import (
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// PlanningOverviewResponse represents the response for the planning API.
type PlanningOverviewResponse struct {
	Data PlanningOverviewData `json:"data"`
}

// PlanningOverviewData holds purchase and event funds and scenario impacts.
type PlanningOverviewData struct {
	Purchases              []SavingsTargetResponse  `json:"purchases"`
	Events                 []SavingsTargetResponse  `json:"events"`
	Scenarios              []ScenarioImpactResponse `json:"scenarios"`
	TotalMonthlyCommitment float64                  `json:"total_monthly_commitment"`
	CommitmentShare        float64                  `json:"commitment_share"`
}

// SavingsTargetResponse represents a purchase or event fund.
type SavingsTargetResponse struct {
	Name                string  `json:"name"`
	TargetAmount        float64 `json:"target_amount"`
	SavedAmount         float64 `json:"saved_amount"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	TargetDate          *string `json:"target_date"`
	Remaining           float64 `json:"remaining"`
	Progress            float64 `json:"progress"`
	MonthsToTarget      *int    `json:"months_to_target"`
	ProjectedCompletion *string `json:"projected_completion"`
	OnSchedule          bool    `json:"on_schedule"`
}

// ScenarioImpactResponse represents the effect of a life scenario.
type ScenarioImpactResponse struct {
	ID                    string                   `json:"id"`
	Name                  string                   `json:"name"`
	Description           string                   `json:"description,omitempty"`
	Changes               []CategoryChangeResponse `json:"changes"`
	CurrentExpenses       float64                  `json:"current_expenses"`
	NewExpenses           float64                  `json:"new_expenses"`
	MonthlyDelta          float64                  `json:"monthly_delta"`
	CurrentAvailable      float64                  `json:"current_available"`
	NewAvailable          float64                  `json:"new_available"`
	OneTimeCost           float64                  `json:"one_time_cost"`
	MonthsToRecover       *int                     `json:"months_to_recover"`
	AffordableFromSavings bool                     `json:"affordable_from_savings"`
}

// CategoryChangeResponse represents a category before and after a scenario.
type CategoryChangeResponse struct {
	Category string  `json:"category"`
	Before   float64 `json:"before"`
	After    float64 `json:"after"`
	Delta    float64 `json:"delta"`
}

func toSavingsTargets(targets []finance.SavingsTarget) []SavingsTargetResponse {
	out := make([]SavingsTargetResponse, len(targets))
	for i, t := range targets {
		var completion *string
		if t.ProjectedCompletion != nil {
			s := t.ProjectedCompletion.String()
			completion = &s
		}
		out[i] = SavingsTargetResponse{
			Name:                t.Name,
			TargetAmount:        money(t.TargetAmount),
			SavedAmount:         money(t.SavedAmount),
			MonthlyContribution: money(t.MonthlyContribution),
			TargetDate:          formatDatePtr(t.TargetDate),
			Remaining:           money(t.Remaining),
			Progress:            ratio(t.Progress),
			MonthsToTarget:      t.MonthsToTarget,
			ProjectedCompletion: completion,
			OnSchedule:          t.OnSchedule,
		}
	}
	return out
}

// ToPlanningOverviewResponse converts a finance.PlanningOverview to its DTO.
func ToPlanningOverviewResponse(o *finance.PlanningOverview) PlanningOverviewResponse {
	scenarios := make([]ScenarioImpactResponse, len(o.Scenarios))
	for i, s := range o.Scenarios {
		changes := make([]CategoryChangeResponse, len(s.Changes))
		for j, c := range s.Changes {
			changes[j] = CategoryChangeResponse{
				Category: c.Category,
				Before:   money(c.Before),
				After:    money(c.After),
				Delta:    money(c.Delta),
			}
		}
		scenarios[i] = ScenarioImpactResponse{
			ID:                    s.Scenario.ID.String(),
			Name:                  s.Scenario.Name,
			Description:           s.Scenario.Description,
			Changes:               changes,
			CurrentExpenses:       money(s.CurrentExpenses),
			NewExpenses:           money(s.NewExpenses),
			MonthlyDelta:          money(s.MonthlyDelta),
			CurrentAvailable:      money(s.CurrentAvailable),
			NewAvailable:          money(s.NewAvailable),
			OneTimeCost:           money(s.OneTimeCost),
			MonthsToRecover:       s.MonthsToRecover,
			AffordableFromSavings: s.AffordableFromSavings,
		}
	}
	return PlanningOverviewResponse{
		Data: PlanningOverviewData{
			Purchases:              toSavingsTargets(o.Purchases),
			Events:                 toSavingsTargets(o.Events),
			Scenarios:              scenarios,
			TotalMonthlyCommitment: money(o.TotalMonthlyCommitment),
			CommitmentShare:        ratio(o.CommitmentShare),
		},
	}
}
