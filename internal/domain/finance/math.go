package finance

import (
	"math"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// safeDiv divides a by b and returns 0 instead of NaN or ±Inf.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	r := a / b
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// MonthlyEquivalent normalises an amount of the given frequency to a monthly
// amount: quarterly amounts are divided by 3 and yearly amounts by 12.
// Quarterly bonuses use their nominal quarterly value here; the profile
// applies the confirmation rule on top (see MonthlyBonusIncome).
func MonthlyEquivalent(amount float64, frequency entity.Frequency) float64 {
	switch frequency {
	case entity.FrequencyQuarterly, entity.FrequencyQuarterlyBonus:
		return amount / 3
	case entity.FrequencyYearly:
		return amount / 12
	default:
		return amount
	}
}
