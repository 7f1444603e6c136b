package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// entityModel is a persistence model convertible to a domain entity.
type entityModel[E any] interface {
	ToEntity() *E
}

// listByUser loads every row of M owned by userID and converts it.
func listByUser[M any, E any, PM interface {
	*M
	entityModel[E]
}](ctx context.Context, db *gorm.DB, userID uuid.UUID, order string) ([]*E, error) {
	var rows []M
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order(order).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*E, len(rows))
	for i := range rows {
		out[i] = PM(&rows[i]).ToEntity()
	}
	return out, nil
}

// ListIncomeSources retrieves all income sources of a user.
func (r *profileRepository) ListIncomeSources(ctx context.Context, userID uuid.UUID) ([]*entity.IncomeSource, error) {
	return listByUser[model.IncomeSourceModel, entity.IncomeSource](ctx, r.db, userID, "created_at ASC")
}

// ListFixedCosts retrieves all fixed costs of a user.
func (r *profileRepository) ListFixedCosts(ctx context.Context, userID uuid.UUID) ([]*entity.FixedCost, error) {
	return listByUser[model.FixedCostModel, entity.FixedCost](ctx, r.db, userID, "created_at ASC")
}

// ListVariableCosts retrieves all variable cost estimates of a user.
func (r *profileRepository) ListVariableCosts(ctx context.Context, userID uuid.UUID) ([]*entity.VariableCostEstimate, error) {
	return listByUser[model.VariableCostModel, entity.VariableCostEstimate](ctx, r.db, userID, "created_at ASC")
}

// ListDebts retrieves all debts of a user.
func (r *profileRepository) ListDebts(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error) {
	return listByUser[model.DebtModel, entity.Debt](ctx, r.db, userID, "created_at ASC")
}

// GetAssets retrieves the asset snapshot of a user, nil when none was recorded.
func (r *profileRepository) GetAssets(ctx context.Context, userID uuid.UUID) (*entity.Assets, error) {
	var m model.AssetsModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// investmentRepository implements the adapter.InvestmentRepository interface.
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository instance.
func NewInvestmentRepository(db *gorm.DB) adapter.InvestmentRepository {
	return &investmentRepository{
		db: db,
	}
}

// ListInvestments retrieves all investment positions of a user.
func (r *investmentRepository) ListInvestments(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error) {
	return listByUser[model.InvestmentModel, entity.Investment](ctx, r.db, userID, "created_at ASC")
}

// ListSavingsPlans retrieves all savings plans of a user.
func (r *investmentRepository) ListSavingsPlans(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsPlan, error) {
	return listByUser[model.SavingsPlanModel, entity.SavingsPlan](ctx, r.db, userID, "created_at ASC")
}
