package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatter(t *testing.T) {
	eur := NewFormatter("eur")
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"money", eur.Money(1234.5), "€1,234.50"},
		{"money rounds half away from zero", eur.Money(0.125), "€0.13"},
		{"money negative", eur.Money(-80), "-€80.00"},
		{"whole", eur.Whole(19000.4), "€19,000"},
		{"whole negative", eur.Whole(-1500.6), "-€1,501"},
		{"percent", Percent(0.25), "25.0%"},
		{"points", Points(12.34), "12.3%"},
		{"months nil", Months(nil), "never"},
		{"years", Years(ptr(2.26)), "2.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.got)
			}
		})
	}

	if got := NewFormatter("XXX-unknown").Currency(); got != "EUR" {
		t.Errorf("expected fallback to EUR, got %s", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Budgets",
		Headers: []string{"Category", "Actual"},
		Rows: [][]string{
			{"Wohnen", "950"},
			Separator,
			{"Total", "1000"},
		},
	})

	for _, want := range []string{"Budgets", "Category", "Wohnen", "Total", "1000"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, top, header, rule, row, separator, row, bottom
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), out)
	}
	width := lipgloss.Width(lines[1])
	for i, line := range lines[1:] {
		if lipgloss.Width(line) != width {
			t.Errorf("line %d: expected width %d, got %d", i+1, width, lipgloss.Width(line))
		}
	}

	if RenderTable(Table{}) != "" {
		t.Error("expected empty table to render nothing")
	}
}

func ptr[T any](v T) *T { return &v }
