package main

import (
	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/planning"
	"github.com/finance-tracker/planner/internal/domain/finance"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/cli"
)

var planningCmd = &cobra.Command{
	Use:   "planning",
	Short: "Planned purchases, event budgets and life scenarios",
	RunE:  runPlanning,
}

func init() {
	rootCmd.AddCommand(planningCmd)
}

func runPlanning(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	o, err := a.useCases.PlanningOverview.Execute(a.ctx, planning.GetPlanningOverviewInput{
		UserID: a.userID,
		AsOf:   a.asOf,
	})
	if err != nil {
		return err
	}

	printTitle(cmd, "PLANNING")
	printBlock(cmd, renderTargets(a, "Purchases", o.Purchases))
	printBlock(cmd, renderTargets(a, "Events", o.Events))

	for _, im := range o.Scenarios {
		rows := make([][]string, 0, len(im.Changes)+4)
		for _, c := range im.Changes {
			rows = append(rows, []string{
				c.Category,
				a.fmt.Money(c.Before),
				a.fmt.Money(c.After),
				a.fmt.Money(c.Delta),
			})
		}
		rows = append(rows, cli.Separator,
			[]string{"Expenses", a.fmt.Money(im.CurrentExpenses), a.fmt.Money(im.NewExpenses), a.fmt.Money(im.MonthlyDelta)},
			[]string{"Available", a.fmt.Money(im.CurrentAvailable), a.fmt.Money(im.NewAvailable), a.fmt.Money(-im.MonthlyDelta)},
		)
		printBlock(cmd, cli.RenderTable(cli.Table{
			Title:   "Scenario: " + im.Scenario.Name,
			Headers: []string{"Category", "Before", "After", "Change"},
			Rows:    rows,
		}))
		printBlock(cmd, cli.RenderKeyValues("", [][2]string{
			{"One-time cost", a.fmt.Money(im.OneTimeCost)},
			{"Months to recover", cli.Months(im.MonthsToRecover)},
			{"Covered by savings", cli.Status(yesNo(im.AffordableFromSavings), im.AffordableFromSavings)},
		}))
	}

	printBlock(cmd, cli.RenderKeyValues("Commitments", [][2]string{
		{"Monthly", a.fmt.Money(o.TotalMonthlyCommitment)},
		{"Share of available", cli.Percent(o.CommitmentShare)},
	}))
	return nil
}

func renderTargets(a *app, title string, targets []finance.SavingsTarget) string {
	if len(targets) == 0 {
		return ""
	}
	rows := make([][]string, 0, len(targets))
	for _, t := range targets {
		completion := "never"
		if t.ProjectedCompletion != nil {
			completion = t.ProjectedCompletion.String()
		}
		rows = append(rows, []string{
			t.Name,
			a.fmt.Money(t.TargetAmount),
			a.fmt.Money(t.SavedAmount),
			cli.Percent(t.Progress),
			a.fmt.Money(t.MonthlyContribution),
			cli.Months(t.MonthsToTarget),
			completion,
			cli.Status(yesNo(t.OnSchedule), t.OnSchedule),
		})
	}
	return cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Name", "Target", "Saved", "Progress", "Monthly", "Months", "Done", "On time"},
		Rows:    rows,
	})
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
