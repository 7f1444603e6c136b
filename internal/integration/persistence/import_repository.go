package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/integration/persistence/model"
	"github.com/finance-tracker/planner/internal/integration/snapshot"
)

// ImportRepository writes snapshot files into the database.
type ImportRepository struct {
	db *gorm.DB
}

// NewImportRepository creates a new import repository instance.
func NewImportRepository(db *gorm.DB) *ImportRepository {
	return &ImportRepository{db: db}
}

// ImportResult counts the rows written per table.
type ImportResult map[string]int

// Replace removes every record of the store's user and writes the store's
// records in one transaction.
func (r *ImportRepository) Replace(ctx context.Context, store *snapshot.Store) (ImportResult, error) {
	result := ImportResult{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := purgeUser(tx, store.UserID); err != nil {
			return err
		}

		rows := importRows(store)
		for _, table := range importOrder {
			values := rows[table]
			if len(values) == 0 {
				continue
			}
			for _, v := range values {
				if err := tx.Create(v).Error; err != nil {
					return fmt.Errorf("insert into %s: %w", table, err)
				}
			}
			result[table] = len(values)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

var importOrder = []string{
	"assets",
	"income_sources",
	"fixed_costs",
	"variable_costs",
	"debts",
	"transactions",
	"budgets",
	"investments",
	"savings_plans",
	"goals",
	"planned_purchases",
	"event_budgets",
	"life_scenarios",
}

// importRows converts the store into models keyed by table. Milestones and
// scenario adjustments are created with their parents.
func importRows(s *snapshot.Store) map[string][]any {
	rows := make(map[string][]any)
	add := func(table string, v any) { rows[table] = append(rows[table], v) }

	if s.Assets != nil {
		add("assets", model.AssetsFromEntity(s.Assets))
	}
	for _, v := range s.IncomeSources {
		add("income_sources", model.IncomeSourceFromEntity(v))
	}
	for _, v := range s.FixedCosts {
		add("fixed_costs", model.FixedCostFromEntity(v))
	}
	for _, v := range s.VariableCosts {
		add("variable_costs", model.VariableCostFromEntity(v))
	}
	for _, v := range s.Debts {
		add("debts", model.DebtFromEntity(v))
	}
	for _, v := range s.Transactions {
		add("transactions", model.TransactionFromEntity(v))
	}
	for _, v := range s.Budgets {
		add("budgets", model.BudgetFromEntity(v))
	}
	for _, v := range s.Investments {
		add("investments", model.InvestmentFromEntity(v))
	}
	for _, v := range s.SavingsPlans {
		add("savings_plans", model.SavingsPlanFromEntity(v))
	}
	for _, v := range s.Goals {
		add("goals", model.GoalFromEntity(v))
	}
	for _, v := range s.PlannedPurchases {
		add("planned_purchases", model.PlannedPurchaseFromEntity(v))
	}
	for _, v := range s.EventBudgets {
		add("event_budgets", model.EventBudgetFromEntity(v))
	}
	for _, v := range s.LifeScenarios {
		add("life_scenarios", model.LifeScenarioFromEntity(v))
	}
	return rows
}

// purgeUser hard deletes the user's rows, children first.
func purgeUser(tx *gorm.DB, userID uuid.UUID) error {
	goals := tx.Unscoped().Model(&model.GoalModel{}).Select("id").Where("user_id = ?", userID)
	if err := tx.Where("goal_id IN (?)", goals).Delete(&model.MilestoneModel{}).Error; err != nil {
		return fmt.Errorf("delete milestones: %w", err)
	}
	scenarios := tx.Unscoped().Model(&model.LifeScenarioModel{}).Select("id").Where("user_id = ?", userID)
	if err := tx.Where("scenario_id IN (?)", scenarios).Delete(&model.ScenarioAdjustmentModel{}).Error; err != nil {
		return fmt.Errorf("delete scenario adjustments: %w", err)
	}

	owned := []any{
		&model.AssetsModel{},
		&model.IncomeSourceModel{},
		&model.FixedCostModel{},
		&model.VariableCostModel{},
		&model.DebtModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.InvestmentModel{},
		&model.SavingsPlanModel{},
		&model.GoalModel{},
		&model.PlannedPurchaseModel{},
		&model.EventBudgetModel{},
		&model.LifeScenarioModel{},
	}
	for _, m := range owned {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(m).Error; err != nil {
			return fmt.Errorf("delete %T: %w", m, err)
		}
	}
	return nil
}
