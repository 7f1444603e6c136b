package dto

import (
	"github.com/finance-tracker/planner/internal/application/usecase/goal"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// GoalProgressListResponse represents the response for the goal progress API.
type GoalProgressListResponse struct {
	Data GoalProgressListData `json:"data"`
}

// GoalProgressListData holds the projected goals.
type GoalProgressListData struct {
	Goals             []GoalProgressResponse `json:"goals"`
	LiveMonthlyIncome float64                `json:"live_monthly_income"`
	OnTrackCount      int                    `json:"on_track_count"`
}

// GoalProgressResponse represents one goal with its projection.
type GoalProgressResponse struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Type                string              `json:"type"`
	Status              string              `json:"status"`
	TargetAmount        float64             `json:"target_amount"`
	Deadline            string              `json:"deadline"`
	CurrentAmount       float64             `json:"current_amount"`
	Remaining           float64             `json:"remaining"`
	Progress            float64             `json:"progress"`
	ElapsedFraction     float64             `json:"elapsed_fraction"`
	ExpectedProgress    float64             `json:"expected_progress"`
	OnTrack             bool                `json:"on_track"`
	MonthlyRate         float64             `json:"monthly_rate"`
	MonthsRemaining     float64             `json:"months_remaining"`
	RequiredMonthly     float64             `json:"required_monthly"`
	ProjectedCompletion *string             `json:"projected_completion"`
	Milestones          []MilestoneResponse `json:"milestones"`
	NextMilestone       *MilestoneResponse  `json:"next_milestone"`
}

// MilestoneResponse represents a milestone and whether it was reached.
type MilestoneResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	Reached      bool    `json:"reached"`
}

func toMilestoneResponse(m finance.MilestoneStatus) MilestoneResponse {
	return MilestoneResponse{
		ID:           m.ID.String(),
		Name:         m.Name,
		TargetAmount: money(m.TargetAmount),
		Reached:      m.Reached,
	}
}

// ToGoalProgressListResponse converts a GetGoalProgressOutput to its DTO.
func ToGoalProgressListResponse(output *goal.GetGoalProgressOutput) GoalProgressListResponse {
	goals := make([]GoalProgressResponse, len(output.Goals))
	for i, p := range output.Goals {
		milestones := make([]MilestoneResponse, len(p.Milestones))
		for j, m := range p.Milestones {
			milestones[j] = toMilestoneResponse(m)
		}
		var next *MilestoneResponse
		if p.NextMilestone != nil {
			n := toMilestoneResponse(*p.NextMilestone)
			next = &n
		}
		goals[i] = GoalProgressResponse{
			ID:                  p.Goal.ID.String(),
			Name:                p.Goal.Name,
			Type:                string(p.Goal.Type),
			Status:              string(p.Goal.Status),
			TargetAmount:        money(p.Goal.TargetAmount),
			Deadline:            formatDate(p.Goal.Deadline),
			CurrentAmount:       money(p.CurrentAmount),
			Remaining:           money(p.Remaining),
			Progress:            ratio(p.Progress),
			ElapsedFraction:     ratio(p.ElapsedFraction),
			ExpectedProgress:    ratio(p.ExpectedProgress),
			OnTrack:             p.OnTrack,
			MonthlyRate:         money(p.MonthlyRate),
			MonthsRemaining:     roundTo(p.MonthsRemaining, 1),
			RequiredMonthly:     money(p.RequiredMonthly),
			ProjectedCompletion: formatDatePtr(p.ProjectedCompletion),
			Milestones:          milestones,
			NextMilestone:       next,
		}
	}
	return GoalProgressListResponse{
		Data: GoalProgressListData{
			Goals:             goals,
			LiveMonthlyIncome: money(output.LiveMonthlyIncome),
			OnTrackCount:      output.OnTrackCount,
		},
	}
}
