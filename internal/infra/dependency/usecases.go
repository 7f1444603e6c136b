package dependency

import (
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/usecase/analytics"
	"github.com/finance-tracker/planner/internal/application/usecase/dashboard"
	"github.com/finance-tracker/planner/internal/application/usecase/goal"
	"github.com/finance-tracker/planner/internal/application/usecase/planning"
	"github.com/finance-tracker/planner/internal/application/usecase/profile"
	"github.com/finance-tracker/planner/internal/application/usecase/projection"
	"github.com/finance-tracker/planner/internal/domain/finance"
	"github.com/finance-tracker/planner/internal/integration/persistence"
	"github.com/finance-tracker/planner/internal/integration/snapshot"
)

// Repositories groups the read ports the use cases depend on.
type Repositories struct {
	Transactions adapter.TransactionRepository
	Budgets      adapter.BudgetRepository
	Profile      adapter.ProfileRepository
	Investments  adapter.InvestmentRepository
	Goals        adapter.GoalRepository
	Planning     adapter.PlanningRepository
}

// GormRepositories returns repositories backed by the database.
func GormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Transactions: persistence.NewTransactionRepository(db),
		Budgets:      persistence.NewBudgetRepository(db),
		Profile:      persistence.NewProfileRepository(db),
		Investments:  persistence.NewInvestmentRepository(db),
		Goals:        persistence.NewGoalRepository(db),
		Planning:     persistence.NewPlanningRepository(db),
	}
}

// SnapshotRepositories returns repositories backed by a loaded snapshot file.
func SnapshotRepositories(store *snapshot.Store) Repositories {
	return Repositories{
		Transactions: store,
		Budgets:      store,
		Profile:      store,
		Investments:  store,
		Goals:        store,
		Planning:     store,
	}
}

// UseCases holds every use case of the planner.
type UseCases struct {
	MonthlySummary   *dashboard.GetMonthlySummaryUseCase
	TopCategories    *dashboard.GetTopCategoriesUseCase
	BudgetComparison *dashboard.GetBudgetComparisonUseCase
	Trends           *dashboard.GetTrendsUseCase
	DataRange        *dashboard.GetDataRangeUseCase
	FinancialProfile *profile.GetFinancialProfileUseCase
	DebtOverview     *profile.GetDebtOverviewUseCase
	Analytics        *analytics.GetAnalyticsUseCase
	CashFlow         *projection.GetCashFlowProjectionUseCase
	PortfolioSummary *projection.GetPortfolioSummaryUseCase
	Simulation       *projection.SimulateWhatIfUseCase
	GoalProgress     *goal.GetGoalProgressUseCase
	PlanningOverview *planning.GetPlanningOverviewUseCase
}

// NewUseCases wires the use cases over repos using the planner assumptions in cfg.
func NewUseCases(cfg config.PlannerConfig, repos Repositories) *UseCases {
	scorer := finance.DefaultHealthScorer()
	scorer.SavingsWeight = cfg.HealthWeights.SavingsRate
	scorer.DebtWeight = cfg.HealthWeights.DebtRatio
	scorer.EmergencyWeight = cfg.HealthWeights.EmergencyFund

	thresholds := finance.AnalyticsThresholds{
		GrowthPercent:       cfg.AnalyticsMinGrowth,
		InflationPercent:    cfg.InflationMinPercent,
		InflationMinMonthly: cfg.InflationMinMonthly,
		TopCategories:       cfg.TopCategories,
	}

	profileUC := profile.NewGetFinancialProfileUseCase(repos.Profile, scorer)
	portfolioUC := projection.NewGetPortfolioSummaryUseCase(repos.Investments)

	return &UseCases{
		MonthlySummary:   dashboard.NewGetMonthlySummaryUseCase(repos.Transactions),
		TopCategories:    dashboard.NewGetTopCategoriesUseCase(repos.Transactions),
		BudgetComparison: dashboard.NewGetBudgetComparisonUseCase(repos.Transactions, repos.Budgets),
		Trends:           dashboard.NewGetTrendsUseCase(repos.Transactions),
		DataRange:        dashboard.NewGetDataRangeUseCase(repos.Transactions),
		FinancialProfile: profileUC,
		DebtOverview:     profile.NewGetDebtOverviewUseCase(repos.Profile),
		Analytics: analytics.NewGetAnalyticsUseCase(
			repos.Transactions,
			repos.Budgets,
			thresholds,
			cfg.TrailingMonths,
		),
		CashFlow: projection.NewGetCashFlowProjectionUseCase(profileUC, projection.CashFlowDefaults{
			GrowthRate:      cfg.GrowthRate,
			BestMultiplier:  cfg.BestMultiplier,
			WorstMultiplier: cfg.WorstMultiplier,
		}),
		PortfolioSummary: portfolioUC,
		Simulation: projection.NewSimulateWhatIfUseCase(profileUC, portfolioUC, projection.SimulationDefaults{
			ExpectedReturn:   cfg.ExpectedReturn,
			SavingsRate:      cfg.SavingsRate,
			TimeHorizonYears: cfg.TimeHorizonYears,
		}),
		GoalProgress:     goal.NewGetGoalProgressUseCase(repos.Goals, profileUC),
		PlanningOverview: planning.NewGetPlanningOverviewUseCase(repos.Planning, profileUC),
	}
}
