package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/goal"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/cli"
)

var flagGoalStatus string

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Goal progress, pace and projected completion",
	RunE:  runGoals,
}

func init() {
	goalsCmd.Flags().StringVar(&flagGoalStatus, "status", "", "Goal status to show, defaults to active")
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	out, err := a.useCases.GoalProgress.Execute(a.ctx, goal.GetGoalProgressInput{
		UserID: a.userID,
		Status: entity.GoalStatus(flagGoalStatus),
		AsOf:   a.asOf,
	})
	if err != nil {
		return err
	}

	printTitle(cmd, "GOALS")
	if len(out.Goals) == 0 {
		printBlock(cmd, cli.Muted("No goals."))
		return nil
	}

	rows := make([][]string, 0, len(out.Goals))
	for _, g := range out.Goals {
		completion := "never"
		if g.ProjectedCompletion != nil {
			completion = g.ProjectedCompletion.Format("2006-01-02")
		}
		next := ""
		if g.NextMilestone != nil {
			next = g.NextMilestone.Name
		}
		rows = append(rows, []string{
			g.Goal.Name,
			string(g.Goal.Type),
			a.fmt.Money(g.CurrentAmount),
			a.fmt.Money(g.Goal.TargetAmount),
			cli.Percent(g.Progress),
			cli.Status(onTrackLabel(g.OnTrack), g.OnTrack),
			a.fmt.Money(g.RequiredMonthly),
			completion,
			next,
		})
	}
	printBlock(cmd, cli.RenderTable(cli.Table{
		Headers: []string{"Goal", "Type", "Current", "Target", "Progress", "Pace", "Needed/mo", "Completion", "Next"},
		Rows:    rows,
	}))
	printBlock(cmd, cli.Muted(fmt.Sprintf("%d of %d on track", out.OnTrackCount, len(out.Goals))))
	return nil
}

func onTrackLabel(ok bool) string {
	if ok {
		return "on track"
	}
	return "behind"
}
