package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/application/usecase/profile"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/cli"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Financial profile, health score and debts",
	RunE:  runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	out, err := a.useCases.FinancialProfile.Execute(a.ctx, profile.GetFinancialProfileInput{UserID: a.userID})
	if err != nil {
		return err
	}
	debts, err := a.useCases.DebtOverview.Execute(a.ctx, profile.GetDebtOverviewInput{UserID: a.userID})
	if err != nil {
		return err
	}
	p := out.Profile

	printTitle(cmd, "FINANCIAL PROFILE")
	printBlock(cmd, cli.RenderKeyValues("Monthly", [][2]string{
		{"Income (without bonus)", a.fmt.Money(p.MonthlyIncomeWithoutBonus)},
		{"Bonus (amortized)", a.fmt.Money(p.MonthlyBonusIncome)},
		{"Income", a.fmt.Money(p.MonthlyIncome)},
		{"Fixed costs", a.fmt.Money(p.MonthlyFixedCosts)},
		{"Variable costs", a.fmt.Money(p.MonthlyVariableCosts)},
		{"Debt payments", a.fmt.Money(p.MonthlyDebtPayments)},
		{"Expenses", a.fmt.Money(p.MonthlyExpenses)},
		{"Available", a.fmt.Money(p.AvailableIncome)},
	}))

	if b := p.QuarterlyBonus; b != nil {
		printBlock(cmd, cli.RenderKeyValues("Quarterly bonus", [][2]string{
			{"Sources", fmt.Sprint(b.Sources)},
			{"Per quarter", a.fmt.Money(b.TotalQuarterlyAmount)},
			{"Confirmed quarters", fmt.Sprintf("%d of 4", b.ConfirmedCount)},
			{"Confirmed per year", a.fmt.Money(b.ConfirmedAnnualAmount)},
		}))
	}

	printBlock(cmd, cli.RenderKeyValues("Health", [][2]string{
		{"Net worth", a.fmt.Money(p.NetWorth)},
		{"Assets", a.fmt.Money(p.TotalAssets)},
		{"Debt", a.fmt.Money(p.TotalDebt)},
		{"Savings rate", cli.Percent(p.SavingsRate)},
		{"Debt to income", cli.Percent(p.DebtToIncomeRatio)},
		{"Emergency fund", fmt.Sprintf("%.1f months", p.EmergencyFundMonths)},
		{"Score", fmt.Sprintf("%d (%s)", p.HealthScore, cli.Grade(p.HealthGrade))},
	}))

	if len(debts.Debts) > 0 {
		rows := make([][]string, 0, len(debts.Debts)+2)
		for _, d := range debts.Debts {
			rows = append(rows, []string{
				d.Debt.Name,
				a.fmt.Money(d.Debt.CurrentBalance),
				cli.Points(d.Debt.InterestRate),
				a.fmt.Money(d.Debt.MonthlyPayment),
				cli.Percent(d.Progress),
				cli.Months(d.MonthsToPayoff),
				a.fmt.Money(d.EstimatedInterest),
			})
		}
		rows = append(rows, cli.Separator, []string{
			"Total",
			a.fmt.Money(debts.TotalBalance),
			cli.Points(debts.WeightedInterestRate),
			a.fmt.Money(debts.TotalMonthlyPayments),
			cli.Percent(debts.Progress),
			"",
			a.fmt.Money(debts.EstimatedTotalInterest),
		})
		printBlock(cmd, cli.RenderTable(cli.Table{
			Title:   "Debts",
			Headers: []string{"Debt", "Balance", "Rate", "Payment", "Paid", "Months", "Interest"},
			Rows:    rows,
		}))
	}
	return nil
}
