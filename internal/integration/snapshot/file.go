// Package snapshot loads a user's finances from a TOML file and serves them
// through the repository interfaces, so the planner can run without a database.
package snapshot

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// File is the on-disk layout of a snapshot.
type File struct {
	UserID           string            `toml:"user_id,omitempty"`
	Currency         string            `toml:"currency"`
	Assets           *AssetsRecord     `toml:"assets,omitempty"`
	IncomeSources    []IncomeRecord    `toml:"income_sources"`
	FixedCosts       []FixedCostRecord `toml:"fixed_costs"`
	VariableCosts    []VariableRecord  `toml:"variable_costs"`
	Debts            []DebtRecord      `toml:"debts"`
	Transactions     []TxRecord        `toml:"transactions"`
	Budgets          []BudgetRecord    `toml:"budgets"`
	Investments      []InvestRecord    `toml:"investments"`
	SavingsPlans     []PlanRecord      `toml:"savings_plans"`
	Goals            []GoalRecord      `toml:"goals"`
	PlannedPurchases []PurchaseRecord  `toml:"planned_purchases"`
	EventBudgets     []EventRecord     `toml:"event_budgets"`
	LifeScenarios    []ScenarioRecord  `toml:"life_scenarios"`
}

// AssetsRecord holds the asset snapshot.
type AssetsRecord struct {
	Savings     float64 `toml:"savings"`
	Investments float64 `toml:"investments"`
	Other       float64 `toml:"other"`
}

// IncomeRecord is an income source. ConfirmedQuarters lists "Q1".."Q4".
type IncomeRecord struct {
	Name              string   `toml:"name"`
	Amount            float64  `toml:"amount"`
	Frequency         string   `toml:"frequency"`
	Active            *bool    `toml:"active,omitempty"`
	ConfirmedQuarters []string `toml:"confirmed_quarters,omitempty"`
}

// FixedCostRecord is a recurring fixed cost.
type FixedCostRecord struct {
	Name      string  `toml:"name"`
	Category  string  `toml:"category"`
	Amount    float64 `toml:"amount"`
	Frequency string  `toml:"frequency"`
}

// VariableRecord is a monthly variable cost estimate.
type VariableRecord struct {
	Name          string  `toml:"name"`
	Category      string  `toml:"category"`
	MonthlyAmount float64 `toml:"monthly_amount"`
}

// DebtRecord is a debt. InterestRate is the annual rate in percent.
type DebtRecord struct {
	Name           string  `toml:"name"`
	Type           string  `toml:"type"`
	OriginalAmount float64 `toml:"original_amount"`
	CurrentBalance float64 `toml:"current_balance"`
	InterestRate   float64 `toml:"interest_rate"`
	MonthlyPayment float64 `toml:"monthly_payment"`
}

// TxRecord is a transaction with an ISO date.
type TxRecord struct {
	Date      string  `toml:"date"`
	Amount    float64 `toml:"amount"`
	Type      string  `toml:"type"`
	Category  string  `toml:"category"`
	Account   string  `toml:"account,omitempty"`
	Recurring bool    `toml:"recurring,omitempty"`
	Notes     string  `toml:"notes,omitempty"`
}

// BudgetRecord is the budget of one category in one month.
type BudgetRecord struct {
	Month    string  `toml:"month"`
	Category string  `toml:"category"`
	Amount   float64 `toml:"amount"`
}

// InvestRecord is an investment position.
type InvestRecord struct {
	Name          string  `toml:"name"`
	Type          string  `toml:"type"`
	Quantity      float64 `toml:"quantity"`
	PurchasePrice float64 `toml:"purchase_price"`
	CurrentPrice  float64 `toml:"current_price"`
	Active        *bool   `toml:"active,omitempty"`
}

// PlanRecord is a savings plan.
type PlanRecord struct {
	Name      string  `toml:"name"`
	Amount    float64 `toml:"amount"`
	Frequency string  `toml:"frequency"`
	Active    *bool   `toml:"active,omitempty"`
}

// GoalRecord is a goal with optional milestones.
type GoalRecord struct {
	Name          string            `toml:"name"`
	Type          string            `toml:"type"`
	StartAmount   float64           `toml:"start_amount"`
	CurrentAmount float64           `toml:"current_amount"`
	TargetAmount  float64           `toml:"target_amount"`
	Created       string            `toml:"created"`
	Deadline      string            `toml:"deadline"`
	Status        string            `toml:"status,omitempty"`
	Milestones    []MilestoneRecord `toml:"milestones,omitempty"`
}

// MilestoneRecord is an intermediate goal target.
type MilestoneRecord struct {
	Name         string  `toml:"name"`
	TargetAmount float64 `toml:"target_amount"`
}

// PurchaseRecord is a planned purchase.
type PurchaseRecord struct {
	Name                string  `toml:"name"`
	TargetAmount        float64 `toml:"target_amount"`
	SavedAmount         float64 `toml:"saved_amount"`
	MonthlyContribution float64 `toml:"monthly_contribution"`
	TargetDate          string  `toml:"target_date,omitempty"`
}

// EventRecord is an event budget.
type EventRecord struct {
	Name                string  `toml:"name"`
	EventDate           string  `toml:"event_date"`
	TargetAmount        float64 `toml:"target_amount"`
	SavedAmount         float64 `toml:"saved_amount"`
	MonthlyContribution float64 `toml:"monthly_contribution"`
}

// ScenarioRecord is a life scenario.
type ScenarioRecord struct {
	Name        string             `toml:"name"`
	Description string             `toml:"description,omitempty"`
	OneTimeCost float64            `toml:"one_time_cost"`
	Adjustments []AdjustmentRecord `toml:"adjustments,omitempty"`
}

// AdjustmentRecord changes one category; Kind is "absolute" or "percentage".
type AdjustmentRecord struct {
	Category string  `toml:"category"`
	Kind     string  `toml:"kind"`
	Value    float64 `toml:"value"`
}

// Load reads and converts the snapshot at path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes a snapshot document.
func Parse(doc string) (*Store, error) {
	var f File
	md, err := toml.Decode(doc, &f)
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parsing snapshot: unknown keys %s", strings.Join(keys, ", "))
	}
	return f.Store()
}

// Store converts the file into entities owned by a single user.
func (f *File) Store() (*Store, error) {
	userID := uuid.New()
	if f.UserID != "" {
		id, err := uuid.Parse(f.UserID)
		if err != nil {
			return nil, fmt.Errorf("invalid user_id: %w", err)
		}
		userID = id
	}
	s := &Store{UserID: userID, Currency: f.Currency}
	if s.Currency == "" {
		s.Currency = "EUR"
	}

	if f.Assets != nil {
		s.Assets = &entity.Assets{
			UserID:      userID,
			Savings:     f.Assets.Savings,
			Investments: f.Assets.Investments,
			Other:       f.Assets.Other,
		}
	}

	for i, r := range f.IncomeSources {
		freq, err := frequency(r.Frequency)
		if err != nil {
			return nil, fmt.Errorf("income_sources[%d]: %w", i, err)
		}
		src := &entity.IncomeSource{
			ID: uuid.New(), UserID: userID, Name: r.Name, Amount: r.Amount,
			Frequency: freq, Active: active(r.Active),
		}
		if len(r.ConfirmedQuarters) > 0 {
			cq, err := quarters(r.ConfirmedQuarters)
			if err != nil {
				return nil, fmt.Errorf("income_sources[%d]: %w", i, err)
			}
			src.ConfirmedQuarters = cq
		}
		s.IncomeSources = append(s.IncomeSources, src)
	}

	for i, r := range f.FixedCosts {
		freq, err := frequency(r.Frequency)
		if err != nil || freq == entity.FrequencyQuarterlyBonus {
			return nil, fmt.Errorf("fixed_costs[%d]: invalid frequency %q", i, r.Frequency)
		}
		s.FixedCosts = append(s.FixedCosts, &entity.FixedCost{
			ID: uuid.New(), UserID: userID, Name: r.Name,
			Category: entity.NormalizeCategory(r.Category), Amount: r.Amount, Frequency: freq,
		})
	}

	for _, r := range f.VariableCosts {
		s.VariableCosts = append(s.VariableCosts, &entity.VariableCostEstimate{
			ID: uuid.New(), UserID: userID, Name: r.Name,
			Category: entity.NormalizeCategory(r.Category), MonthlyAmount: r.MonthlyAmount,
		})
	}

	for _, r := range f.Debts {
		s.Debts = append(s.Debts, &entity.Debt{
			ID: uuid.New(), UserID: userID, Name: r.Name, Type: entity.DebtType(r.Type),
			OriginalAmount: r.OriginalAmount, CurrentBalance: r.CurrentBalance,
			InterestRate: r.InterestRate, MonthlyPayment: r.MonthlyPayment,
		})
	}

	for i, r := range f.Transactions {
		d, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("transactions[%d]: %w", i, err)
		}
		kind := entity.TransactionType(r.Type)
		if !kind.IsValid() {
			return nil, fmt.Errorf("transactions[%d]: invalid type %q", i, r.Type)
		}
		tx := entity.NewTransaction(userID, d, r.Amount, kind, r.Category, r.Account, r.Recurring, r.Notes)
		s.Transactions = append(s.Transactions, tx)
	}

	for i, r := range f.Budgets {
		if _, err := time.Parse("2006-01", r.Month); err != nil {
			return nil, fmt.Errorf("budgets[%d]: invalid month %q", i, r.Month)
		}
		s.Budgets = append(s.Budgets, &entity.Budget{
			ID: uuid.New(), UserID: userID, Month: r.Month,
			Category: entity.NormalizeCategory(r.Category), BudgetAmount: r.Amount,
		})
	}

	for _, r := range f.Investments {
		s.Investments = append(s.Investments, &entity.Investment{
			ID: uuid.New(), UserID: userID, Name: r.Name, Type: entity.InvestmentType(r.Type),
			Quantity: r.Quantity, PurchasePrice: r.PurchasePrice, CurrentPrice: r.CurrentPrice,
			Active: active(r.Active),
		})
	}

	for i, r := range f.SavingsPlans {
		freq, err := frequency(r.Frequency)
		if err != nil {
			return nil, fmt.Errorf("savings_plans[%d]: %w", i, err)
		}
		s.SavingsPlans = append(s.SavingsPlans, &entity.SavingsPlan{
			ID: uuid.New(), UserID: userID, Name: r.Name, Amount: r.Amount,
			Frequency: freq, Active: active(r.Active),
		})
	}

	for i, r := range f.Goals {
		g, err := r.goal(userID)
		if err != nil {
			return nil, fmt.Errorf("goals[%d]: %w", i, err)
		}
		s.Goals = append(s.Goals, g)
	}

	for i, r := range f.PlannedPurchases {
		p := &entity.PlannedPurchase{
			ID: uuid.New(), UserID: userID, Name: r.Name, TargetAmount: r.TargetAmount,
			SavedAmount: r.SavedAmount, MonthlyContribution: r.MonthlyContribution,
		}
		if r.TargetDate != "" {
			d, err := parseDate(r.TargetDate)
			if err != nil {
				return nil, fmt.Errorf("planned_purchases[%d]: %w", i, err)
			}
			p.TargetDate = &d
		}
		s.PlannedPurchases = append(s.PlannedPurchases, p)
	}

	for i, r := range f.EventBudgets {
		d, err := parseDate(r.EventDate)
		if err != nil {
			return nil, fmt.Errorf("event_budgets[%d]: %w", i, err)
		}
		s.EventBudgets = append(s.EventBudgets, &entity.EventBudget{
			ID: uuid.New(), UserID: userID, Name: r.Name, EventDate: d,
			TargetAmount: r.TargetAmount, SavedAmount: r.SavedAmount,
			MonthlyContribution: r.MonthlyContribution,
		})
	}

	for i, r := range f.LifeScenarios {
		sc := &entity.LifeScenario{
			ID: uuid.New(), UserID: userID, Name: r.Name,
			Description: r.Description, OneTimeCost: r.OneTimeCost,
		}
		for j, a := range r.Adjustments {
			kind := entity.AdjustmentKind(a.Kind)
			if kind != entity.AdjustmentAbsolute && kind != entity.AdjustmentPercentage {
				return nil, fmt.Errorf("life_scenarios[%d].adjustments[%d]: invalid kind %q", i, j, a.Kind)
			}
			sc.Adjustments = append(sc.Adjustments, entity.ScenarioAdjustment{
				ID: uuid.New(), Category: entity.NormalizeCategory(a.Category), Kind: kind, Value: a.Value,
			})
		}
		s.LifeScenarios = append(s.LifeScenarios, sc)
	}

	return s, nil
}

func (r GoalRecord) goal(userID uuid.UUID) (*entity.Goal, error) {
	created, err := parseDate(r.Created)
	if err != nil {
		return nil, err
	}
	deadline, err := parseDate(r.Deadline)
	if err != nil {
		return nil, err
	}
	status := entity.GoalStatus(r.Status)
	if status == "" {
		status = entity.GoalStatusActive
	}
	g := &entity.Goal{
		ID: uuid.New(), UserID: userID, Name: r.Name, Type: entity.GoalType(r.Type),
		StartAmount: r.StartAmount, CurrentAmount: r.CurrentAmount, TargetAmount: r.TargetAmount,
		Deadline: deadline, Status: status, CreatedAt: created, UpdatedAt: created,
	}
	for _, m := range r.Milestones {
		g.Milestones = append(g.Milestones, entity.Milestone{
			ID: uuid.New(), Name: m.Name, TargetAmount: m.TargetAmount,
		})
	}
	return g, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

func frequency(s string) (entity.Frequency, error) {
	if s == "" {
		return entity.FrequencyMonthly, nil
	}
	f := entity.Frequency(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency %q", s)
	}
	return f, nil
}

func quarters(names []string) (*entity.ConfirmedQuarters, error) {
	var cq entity.ConfirmedQuarters
	for _, n := range names {
		switch strings.ToUpper(strings.TrimSpace(n)) {
		case "Q1":
			cq.Q1 = true
		case "Q2":
			cq.Q2 = true
		case "Q3":
			cq.Q3 = true
		case "Q4":
			cq.Q4 = true
		default:
			return nil, fmt.Errorf("invalid quarter %q", n)
		}
	}
	return &cq, nil
}

// active defaults missing flags to true.
func active(b *bool) bool {
	return b == nil || *b
}
