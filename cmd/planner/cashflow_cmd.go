package main

import (
	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/projection"
	"github.com/finance-tracker/planner/internal/domain/finance"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/cli"
)

var flagScenario string

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Twelve month cash-flow projection in base, best and worst scenarios",
	RunE:  runCashflow,
}

func init() {
	f := cashflowCmd.Flags()
	f.StringVar(&flagScenario, "scenario", "", "Only project one scenario (base, best, worst)")
	f.Float64("income", 0, "Expected monthly income")
	f.Float64("fixed", 0, "Monthly fixed costs")
	f.Float64("variable", 0, "Monthly variable costs")
	f.Float64("growth", 0, "Annual growth rate in percent")
	f.Float64("cash", 0, "Starting cash")
	f.Float64("debt", 0, "Starting debt")
	f.Float64("best", 0, "Best case multiplier")
	f.Float64("worst", 0, "Worst case multiplier")
	rootCmd.AddCommand(cashflowCmd)
}

func runCashflow(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	out, err := a.useCases.CashFlow.Execute(a.ctx, projection.GetCashFlowProjectionInput{
		UserID:   a.userID,
		Scenario: finance.Scenario(flagScenario),
		Overrides: projection.CashFlowOverrides{
			ExpectedIncome:  floatFlag(cmd, "income"),
			FixedCosts:      floatFlag(cmd, "fixed"),
			VariableCosts:   floatFlag(cmd, "variable"),
			GrowthRate:      floatFlag(cmd, "growth"),
			StartingCash:    floatFlag(cmd, "cash"),
			StartingDebt:    floatFlag(cmd, "debt"),
			BestMultiplier:  floatFlag(cmd, "best"),
			WorstMultiplier: floatFlag(cmd, "worst"),
		},
		AsOf: a.asOf,
	})
	if err != nil {
		return err
	}

	printTitle(cmd, "CASH FLOW")
	b := out.Baseline
	printBlock(cmd, cli.RenderKeyValues("Baseline", [][2]string{
		{"Income", a.fmt.Money(b.ExpectedIncome)},
		{"Fixed costs", a.fmt.Money(b.FixedCosts)},
		{"Variable costs", a.fmt.Money(b.VariableCosts)},
		{"Growth", cli.Points(b.GrowthRate)},
		{"Starting balance", a.fmt.Money(b.StartingCash - b.StartingDebt)},
	}))

	for _, p := range out.Projections {
		rows := make([][]string, 0, len(p.Points)+2)
		for _, pt := range p.Points {
			rows = append(rows, []string{
				pt.Month.String(),
				a.fmt.Whole(pt.Income),
				a.fmt.Whole(pt.Expenses),
				cli.Status(a.fmt.Whole(pt.Net), pt.Net >= 0),
				a.fmt.Whole(pt.CumulativeCash),
			})
		}
		rows = append(rows, cli.Separator, []string{
			"Total",
			a.fmt.Whole(p.TotalIncome),
			a.fmt.Whole(p.TotalExpenses),
			a.fmt.Whole(p.TotalNet),
			a.fmt.Whole(p.EndingCash),
		})
		printBlock(cmd, cli.RenderTable(cli.Table{
			Title:   string(p.Scenario),
			Headers: []string{"Month", "Income", "Expenses", "Net", "Cash"},
			Rows:    rows,
		}))
	}
	return nil
}
