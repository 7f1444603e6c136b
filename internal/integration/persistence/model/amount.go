// Package model defines database models for persistence layer.
package model

import "github.com/shopspring/decimal"

// Amounts are stored as decimal(15,2) and handed to the domain as float64.

func toDecimal(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// Models returns every model of the schema keyed by table name.
func Models() map[string]any {
	return map[string]any{
		TransactionModel{}.TableName():        &TransactionModel{},
		BudgetModel{}.TableName():             &BudgetModel{},
		IncomeSourceModel{}.TableName():       &IncomeSourceModel{},
		FixedCostModel{}.TableName():          &FixedCostModel{},
		VariableCostModel{}.TableName():       &VariableCostModel{},
		DebtModel{}.TableName():               &DebtModel{},
		AssetsModel{}.TableName():             &AssetsModel{},
		InvestmentModel{}.TableName():         &InvestmentModel{},
		SavingsPlanModel{}.TableName():        &SavingsPlanModel{},
		GoalModel{}.TableName():               &GoalModel{},
		MilestoneModel{}.TableName():          &MilestoneModel{},
		PlannedPurchaseModel{}.TableName():    &PlannedPurchaseModel{},
		EventBudgetModel{}.TableName():        &EventBudgetModel{},
		LifeScenarioModel{}.TableName():       &LifeScenarioModel{},
		ScenarioAdjustmentModel{}.TableName(): &ScenarioAdjustmentModel{},
	}
}

// MigrationOrder lists the models for AutoMigrate, parents before children.
func MigrationOrder() []any {
	return []any{
		&TransactionModel{},
		&BudgetModel{},
		&IncomeSourceModel{},
		&FixedCostModel{},
		&VariableCostModel{},
		&DebtModel{},
		&AssetsModel{},
		&InvestmentModel{},
		&SavingsPlanModel{},
		&GoalModel{},
		&MilestoneModel{},
		&PlannedPurchaseModel{},
		&EventBudgetModel{},
		&LifeScenarioModel{},
		&ScenarioAdjustmentModel{},
	}
}
