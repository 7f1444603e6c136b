package finance

import "math"

// HealthInputs are the ratios the health score is computed from.
type HealthInputs struct {
	SavingsRate         float64
	DebtToIncomeRatio   float64
	EmergencyFundMonths float64
}

// HealthScorer turns the health inputs into a score in [0,100].
type HealthScorer interface {
	Score(in HealthInputs) int
}

// HealthScorerFunc adapts a function to the HealthScorer interface.
type HealthScorerFunc func(in HealthInputs) int

// Score calls f.
func (f HealthScorerFunc) Score(in HealthInputs) int { return f(in) }

// WeightedHealthScorer awards up to SavingsWeight points for a savings rate
// up to TargetSavingsRate, up to DebtWeight points for a debt-to-income ratio
// at or below DebtThreshold (falling linearly to zero at twice the threshold)
// and up to EmergencyWeight points for an emergency fund of TargetEmergencyMonths.
type WeightedHealthScorer struct {
	SavingsWeight         float64
	DebtWeight            float64
	EmergencyWeight       float64
	TargetSavingsRate     float64
	DebtThreshold         float64
	TargetEmergencyMonths float64
}

// DefaultHealthScorer returns the 40/30/30 policy with a 30% savings target,
// a 35% debt threshold and a six month emergency fund.
func DefaultHealthScorer() WeightedHealthScorer {
	return WeightedHealthScorer{
		SavingsWeight:         40,
		DebtWeight:            30,
		EmergencyWeight:       30,
		TargetSavingsRate:     0.30,
		DebtThreshold:         0.35,
		TargetEmergencyMonths: 6,
	}
}

// Score implements HealthScorer.
func (w WeightedHealthScorer) Score(in HealthInputs) int {
	savings := clamp(safeDiv(in.SavingsRate, w.TargetSavingsRate), 0, 1)

	debt := 1.0
	if in.DebtToIncomeRatio > w.DebtThreshold {
		excess := safeDiv(in.DebtToIncomeRatio-w.DebtThreshold, w.DebtThreshold)
		debt = clamp(1-excess, 0, 1)
	}

	emergency := clamp(safeDiv(in.EmergencyFundMonths, w.TargetEmergencyMonths), 0, 1)

	score := savings*w.SavingsWeight + debt*w.DebtWeight + emergency*w.EmergencyWeight
	return int(clamp(math.Round(score), 0, 100))
}

// HealthGrade maps a score to a school grade.
func HealthGrade(score int) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 55:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}
