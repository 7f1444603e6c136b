package snapshot

// Example returns a small but complete snapshot used by `planner init`.
func Example() File {
	no := false
	return File{
		Currency: "EUR",
		Assets:   &AssetsRecord{Savings: 8500, Investments: 12000, Other: 1500},
		IncomeSources: []IncomeRecord{
			{Name: "Gehalt", Amount: 3800, Frequency: "monthly"},
			{Name: "Quartalsbonus", Amount: 1500, Frequency: "quarterly-bonus", ConfirmedQuarters: []string{"Q1", "Q2"}},
			{Name: "Nebenjob", Amount: 300, Frequency: "monthly", Active: &no},
		},
		FixedCosts: []FixedCostRecord{
			{Name: "Miete", Category: "Miete", Amount: 1150, Frequency: "monthly"},
			{Name: "Haftpflicht", Category: "Versicherungen", Amount: 84, Frequency: "yearly"},
			{Name: "Strom", Category: "Nebenkosten", Amount: 180, Frequency: "quarterly"},
			{Name: "Streaming", Category: "Abonnements", Amount: 18, Frequency: "monthly"},
		},
		VariableCosts: []VariableRecord{
			{Name: "Einkauf", Category: "Lebensmittel", MonthlyAmount: 420},
			{Name: "Ausgehen", Category: "Restaurant", MonthlyAmount: 150},
		},
		Debts: []DebtRecord{
			{Name: "Autokredit", Type: "loan", OriginalAmount: 12000, CurrentBalance: 7400, InterestRate: 4.9, MonthlyPayment: 260},
		},
		Transactions: []TxRecord{
			{Date: "2024-01-05", Amount: 3800, Type: "income", Category: "Gehalt", Account: "Giro", Recurring: true},
			{Date: "2024-01-03", Amount: 1150, Type: "expense", Category: "Miete", Account: "Giro", Recurring: true},
			{Date: "2024-01-13", Amount: 86.40, Type: "expense", Category: "Lebensmittel", Account: "Giro"},
			{Date: "2024-01-20", Amount: 62, Type: "expense", Category: "Restaurant", Account: "Kreditkarte"},
			{Date: "2024-02-05", Amount: 3800, Type: "income", Category: "Gehalt", Account: "Giro", Recurring: true},
			{Date: "2024-02-03", Amount: 1150, Type: "expense", Category: "Miete", Account: "Giro", Recurring: true},
			{Date: "2024-02-10", Amount: 112.15, Type: "expense", Category: "Lebensmittel", Account: "Giro"},
			{Date: "2024-02-24", Amount: 145, Type: "expense", Category: "Restaurant", Account: "Kreditkarte"},
		},
		Budgets: []BudgetRecord{
			{Month: "2024-02", Category: "Lebensmittel", Amount: 400},
			{Month: "2024-02", Category: "Restaurant", Amount: 120},
		},
		Investments: []InvestRecord{
			{Name: "MSCI World ETF", Type: "etf", Quantity: 110, PurchasePrice: 85, CurrentPrice: 98.5},
		},
		SavingsPlans: []PlanRecord{
			{Name: "ETF Sparplan", Amount: 250, Frequency: "monthly"},
		},
		Goals: []GoalRecord{
			{
				Name: "Notgroschen", Type: "savings", StartAmount: 2000, CurrentAmount: 8500, TargetAmount: 15000,
				Created: "2023-06-01", Deadline: "2025-06-01",
				Milestones: []MilestoneRecord{{Name: "Drei Monate", TargetAmount: 7500}, {Name: "Sechs Monate", TargetAmount: 15000}},
			},
			{Name: "Gehaltsziel", Type: "income", StartAmount: 3500, TargetAmount: 4500, Created: "2023-01-01", Deadline: "2025-12-31"},
		},
		PlannedPurchases: []PurchaseRecord{
			{Name: "Laptop", TargetAmount: 1800, SavedAmount: 600, MonthlyContribution: 150, TargetDate: "2024-12-01"},
		},
		EventBudgets: []EventRecord{
			{Name: "Hochzeit", EventDate: "2025-08-15", TargetAmount: 9000, SavedAmount: 2500, MonthlyContribution: 400},
		},
		LifeScenarios: []ScenarioRecord{
			{
				Name: "Umzug in eine größere Wohnung", OneTimeCost: 3500,
				Adjustments: []AdjustmentRecord{
					{Category: "Miete", Kind: "absolute", Value: 350},
					{Category: "Nebenkosten", Kind: "percentage", Value: 20},
				},
			},
		},
	}
}
