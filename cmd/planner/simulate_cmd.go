package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/projection"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/cli"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "What-if budget change with portfolio growth and FIRE estimate",
	RunE:  runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.Float64("income", 0, "Simulated monthly income")
	f.Float64("fixed", 0, "Simulated monthly fixed costs")
	f.Float64("variable", 0, "Simulated monthly variable costs")
	f.Float64("debt", 0, "Simulated monthly debt payments")
	f.Float64("return", 0, "Expected annual return as a fraction, e.g. 0.07")
	f.Float64("savings-rate", 0, "Share of the available income invested, 0 to 1")
	f.Int("years", 0, "Time horizon in years")
	f.Float64("portfolio", 0, "Current portfolio value, defaults to the active investments")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	out, err := a.useCases.Simulation.Execute(a.ctx, projection.SimulateWhatIfInput{
		UserID: a.userID,
		Simulated: projection.SimulatedBudget{
			Income:        floatFlag(cmd, "income"),
			FixedCosts:    floatFlag(cmd, "fixed"),
			VariableCosts: floatFlag(cmd, "variable"),
			DebtPayments:  floatFlag(cmd, "debt"),
		},
		ExpectedReturn:        floatFlag(cmd, "return"),
		SavingsRate:           floatFlag(cmd, "savings-rate"),
		TimeHorizonYears:      intFlag(cmd, "years"),
		CurrentPortfolioValue: floatFlag(cmd, "portfolio"),
	})
	if err != nil {
		return err
	}
	in, res := out.Input, out.Result

	printTitle(cmd, "WHAT-IF SIMULATION")
	printBlock(cmd, cli.RenderTable(cli.Table{
		Headers: []string{"", "Current", "Simulated"},
		Rows: [][]string{
			{"Income", a.fmt.Money(in.Current.Income), a.fmt.Money(in.Simulated.Income)},
			{"Fixed costs", a.fmt.Money(in.Current.FixedCosts), a.fmt.Money(in.Simulated.FixedCosts)},
			{"Variable costs", a.fmt.Money(in.Current.VariableCosts), a.fmt.Money(in.Simulated.VariableCosts)},
			{"Debt payments", a.fmt.Money(in.Current.DebtPayments), a.fmt.Money(in.Simulated.DebtPayments)},
			cli.Separator,
			{"Available", a.fmt.Money(res.CurrentAvailable), a.fmt.Money(res.SimulatedAvailable)},
			{"Savings rate", cli.Percent(res.CurrentSavingsRate), cli.Percent(res.SimulatedSavingsRate)},
		},
	}))

	// One row per year keeps the table readable.
	rows := make([][]string, 0, in.TimeHorizonYears+1)
	for _, p := range res.Projection {
		if p.Month%12 != 0 {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("Year %d", p.Month/12),
			a.fmt.Whole(p.Contributions),
			a.fmt.Whole(p.Returns),
			a.fmt.Whole(p.PortfolioValue),
		})
	}
	printBlock(cmd, cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Portfolio at %s return, %s invested", cli.Percent(in.ExpectedReturn), cli.Percent(in.SavingsRate)),
		Headers: []string{"", "Contributions", "Returns", "Value"},
		Rows:    rows,
	}))

	printBlock(cmd, cli.RenderKeyValues("Outcome", [][2]string{
		{"Monthly contribution", a.fmt.Money(res.MonthlyContribution)},
		{"Final value", a.fmt.Money(res.FinalPortfolioValue)},
		{"Contributions", a.fmt.Money(res.TotalContributions)},
		{"Returns", a.fmt.Money(res.TotalReturns)},
		{"FIRE target", a.fmt.Money(res.FireTarget)},
		{"Years to FIRE", cli.Years(res.YearsToFire)},
	}))
	return nil
}
