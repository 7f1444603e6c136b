package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/dashboard"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/cli"
)

var flagMonth string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly income, expenses, top categories and budgets",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&flagMonth, "month", "", "Month (YYYY-MM), defaults to the month of --as-of")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	summary, err := a.useCases.MonthlySummary.Execute(a.ctx, dashboard.GetMonthlySummaryInput{
		UserID: a.userID, Month: flagMonth, AsOf: a.asOf,
	})
	if err != nil {
		return err
	}
	top, err := a.useCases.TopCategories.Execute(a.ctx, dashboard.GetTopCategoriesInput{
		UserID: a.userID, Month: flagMonth, AsOf: a.asOf,
	})
	if err != nil {
		return err
	}
	budgets, err := a.useCases.BudgetComparison.Execute(a.ctx, dashboard.GetBudgetComparisonInput{
		UserID: a.userID, Month: flagMonth, AsOf: a.asOf,
	})
	if err != nil {
		return err
	}

	cur, prev := summary.Current, summary.Previous
	printTitle(cmd, "SUMMARY "+cur.Month.String())
	printBlock(cmd, cli.RenderTable(cli.Table{
		Headers: []string{"", cur.Month.String(), prev.Month.String(), "Change"},
		Rows: [][]string{
			{"Income", a.fmt.Money(cur.Income), a.fmt.Money(prev.Income), cli.Points(summary.IncomeChangePercent)},
			{"Expenses", a.fmt.Money(cur.Expenses), a.fmt.Money(prev.Expenses), cli.Points(summary.ExpenseChangePercent)},
			{"Net", a.fmt.Money(cur.Net), a.fmt.Money(prev.Net), ""},
			{"Savings rate", cli.Percent(cur.SavingsRate), cli.Percent(prev.SavingsRate), ""},
			{"Transactions", fmt.Sprint(cur.TransactionCount), fmt.Sprint(prev.TransactionCount), ""},
		},
	}))

	topRows := make([][]string, 0, len(top.Categories))
	for _, c := range top.Categories {
		topRows = append(topRows, []string{c.Category, a.fmt.Money(c.Amount), cli.Points(c.Percentage)})
	}
	printBlock(cmd, cli.RenderTable(cli.Table{
		Title:   "Top categories",
		Headers: []string{"Category", "Amount", "Share"},
		Rows:    topRows,
	}))

	if len(budgets.Items) > 0 {
		rows := make([][]string, 0, len(budgets.Items)+2)
		for _, b := range budgets.Items {
			rows = append(rows, []string{
				b.Category,
				a.fmt.Money(b.Budget),
				a.fmt.Money(b.Actual),
				a.fmt.Money(b.Remaining),
				cli.Status(cli.Points(b.PercentUsed), !b.OverBudget),
			})
		}
		rows = append(rows, cli.Separator, []string{
			"Total", a.fmt.Money(budgets.TotalBudget), a.fmt.Money(budgets.TotalActual), "",
			fmt.Sprintf("%d over", budgets.OverBudgetCount),
		})
		printBlock(cmd, cli.RenderTable(cli.Table{
			Title:   "Budgets",
			Headers: []string{"Category", "Budget", "Actual", "Remaining", "Used"},
			Rows:    rows,
		}))
	}
	return nil
}
