// Package entity defines the core business entities for the domain layer.
package entity

// Frequency describes how often an amount recurs.
type Frequency string

const (
	FrequencyMonthly        Frequency = "monthly"
	FrequencyQuarterly      Frequency = "quarterly"
	FrequencyYearly         Frequency = "yearly"
	FrequencyQuarterlyBonus Frequency = "quarterly-bonus"
)

// IsValid reports whether the frequency is known.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyYearly, FrequencyQuarterlyBonus:
		return true
	}
	return false
}
