package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/analytics"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/cli"
)

var flagMonthsBack int

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Spending patterns, trends, lifestyle inflation and missed savings",
	RunE:  runAnalytics,
}

func init() {
	analyticsCmd.Flags().IntVar(&flagMonthsBack, "months", 0, "Trailing months, defaults to PLANNER_TRAILING_MONTHS")
	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	res, err := a.useCases.Analytics.Execute(a.ctx, analytics.GetAnalyticsInput{
		UserID:     a.userID,
		MonthsBack: flagMonthsBack,
		AsOf:       a.asOf,
	})
	if err != nil {
		return err
	}

	title := "ANALYTICS"
	if n := len(res.Window); n > 0 {
		title = fmt.Sprintf("ANALYTICS %s TO %s", res.Window[0], res.Window[n-1])
	}
	printTitle(cmd, title)

	monthRows := make([][]string, 0, len(res.MonthlyTotals))
	for _, m := range res.MonthlyTotals {
		monthRows = append(monthRows, []string{
			m.Month.String(), a.fmt.Money(m.Income), a.fmt.Money(m.Expenses), cli.Percent(m.SavingsRate),
		})
	}
	monthRows = append(monthRows, cli.Separator, []string{
		"Average", "", a.fmt.Money(res.AverageMonthlyExpenses), "",
	})
	printBlock(cmd, cli.RenderTable(cli.Table{
		Title:   "Months",
		Headers: []string{"Month", "Income", "Expenses", "Savings rate"},
		Rows:    monthRows,
	}))

	dayRows := make([][]string, 0, len(res.SpendingPatterns.Days))
	for _, d := range res.SpendingPatterns.Days {
		name := d.Weekday.String()
		if peak := res.SpendingPatterns.PeakSpendingDay; peak != nil && *peak == d.Weekday {
			name += " *"
		}
		dayRows = append(dayRows, []string{name, a.fmt.Money(d.Total), fmt.Sprint(d.Count), a.fmt.Money(d.Average)})
	}
	printBlock(cmd, cli.RenderTable(cli.Table{
		Title:   "Spending by weekday",
		Headers: []string{"Day", "Total", "Count", "Average"},
		Rows:    dayRows,
	}))

	if len(res.GrowingCategories) > 0 {
		rows := make([][]string, 0, len(res.GrowingCategories))
		for _, t := range res.GrowingCategories {
			rows = append(rows, []string{
				t.Category, a.fmt.Money(t.PreviousAverage), a.fmt.Money(t.RecentAverage), cli.Points(t.TrendPercent),
			})
		}
		printBlock(cmd, cli.RenderTable(cli.Table{
			Title:   "Growing categories",
			Headers: []string{"Category", "Before", "Recent", "Trend"},
			Rows:    rows,
		}))
	}

	if len(res.LifestyleInflationAlerts) > 0 {
		rows := make([][]string, 0, len(res.LifestyleInflationAlerts))
		for _, al := range res.LifestyleInflationAlerts {
			rows = append(rows, []string{al.Category, cli.Points(al.TrendPercent), a.fmt.Money(al.MonthlyIncrease)})
		}
		printBlock(cmd, cli.RenderTable(cli.Table{
			Title:   "Lifestyle inflation",
			Headers: []string{"Category", "Trend", "Monthly increase"},
			Rows:    rows,
		}))
	}

	if len(res.MissedSavingsOpportunities) > 0 {
		rows := make([][]string, 0, len(res.MissedSavingsOpportunities)+2)
		for _, m := range res.MissedSavingsOpportunities {
			rows = append(rows, []string{
				m.Category, a.fmt.Money(m.Budget), a.fmt.Money(m.Actual), a.fmt.Money(m.PotentialSavings),
			})
		}
		rows = append(rows, cli.Separator, []string{"Total", "", "", a.fmt.Money(res.TotalMissedSavings)})
		printBlock(cmd, cli.RenderTable(cli.Table{
			Title:   "Missed savings",
			Headers: []string{"Category", "Budget", "Actual", "Over"},
			Rows:    rows,
		}))
	}

	topRows := make([][]string, 0, len(res.TopSpendingCategories))
	for _, c := range res.TopSpendingCategories {
		topRows = append(topRows, []string{c.Category, a.fmt.Money(c.Amount)})
	}
	printBlock(cmd, cli.RenderTable(cli.Table{
		Title:   "Top spending",
		Headers: []string{"Category", "Amount"},
		Rows:    topRows,
	}))
	return nil
}
