package finance

import "testing"

func TestWeightedHealthScorer_Score(t *testing.T) {
	scorer := DefaultHealthScorer()

	tests := []struct {
		name     string
		in       HealthInputs
		expected int
	}{
		{
			name:     "ideal finances",
			in:       HealthInputs{SavingsRate: 0.35, DebtToIncomeRatio: 0, EmergencyFundMonths: 8},
			expected: 100,
		},
		{
			name:     "nothing saved but no debt",
			in:       HealthInputs{SavingsRate: 0, DebtToIncomeRatio: 0, EmergencyFundMonths: 0},
			expected: 30,
		},
		{
			name:     "half way everywhere",
			in:       HealthInputs{SavingsRate: 0.15, DebtToIncomeRatio: 0.525, EmergencyFundMonths: 3},
			expected: 50,
		},
		{
			name:     "overspending and heavy debt",
			in:       HealthInputs{SavingsRate: -0.5, DebtToIncomeRatio: 0.9, EmergencyFundMonths: 0},
			expected: 0,
		},
		{
			name:     "debt exactly at the threshold keeps full points",
			in:       HealthInputs{SavingsRate: 0, DebtToIncomeRatio: 0.35, EmergencyFundMonths: 0},
			expected: 30,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.Score(tt.in); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWeightedHealthScorer_ZeroTargets(t *testing.T) {
	scorer := WeightedHealthScorer{SavingsWeight: 50, EmergencyWeight: 50}
	got := scorer.Score(HealthInputs{SavingsRate: 0.5, EmergencyFundMonths: 10})
	if got != 0 {
		t.Errorf("expected 0 with zero targets, got %d", got)
	}
}

func TestHealthGrade(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "A"}, {85, "A"}, {84, "B"}, {70, "B"}, {69, "C"}, {55, "C"}, {54, "D"}, {40, "D"}, {39, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := HealthGrade(tt.score); got != tt.expected {
			t.Errorf("expected grade %s for %d, got %s", tt.expected, tt.score, got)
		}
	}
}
