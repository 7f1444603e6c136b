package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	file := filepath.Join(t.TempDir(), "planner.toml")

	if out, err := run(t, "init", "-f", file); err != nil {
		t.Fatalf("init failed: %v\n%s", err, out)
	}
	if _, err := run(t, "init", "-f", file); err == nil {
		t.Error("expected init to refuse overwriting an existing file")
	}

	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"summary", "--month", "2024-02"}, []string{"SUMMARY 2024-02", "Lebensmittel"}},
		{[]string{"profile"}, []string{"FINANCIAL PROFILE", "Autokredit", "Quarterly bonus"}},
		{[]string{"analytics"}, []string{"ANALYTICS"}},
		{[]string{"cashflow", "--scenario", "base"}, []string{"CASH FLOW", "base"}},
		{[]string{"simulate", "--income", "5000", "--years", "5"}, []string{"WHAT-IF SIMULATION", "Year 5", "FIRE target"}},
		{[]string{"goals"}, []string{"GOALS", "Notgroschen"}},
		{[]string{"planning"}, []string{"PLANNING", "Laptop", "Hochzeit"}},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			args := append(tt.args, "-f", file, "--as-of", "2024-03-15")
			out, err := run(t, args...)
			if err != nil {
				t.Fatalf("expected no error, got %v\n%s", err, out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("expected output to contain %q, got:\n%s", w, out)
				}
			}
		})
	}
}

func TestCommands_MissingSnapshot(t *testing.T) {
	_, err := run(t, "profile", "-f", filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing snapshot")
	}
}

func TestToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	out, err := run(t, "token", "--user", "7b3e1a52-4c1d-4f8e-9a77-2f6f3c1d0e11")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parts := strings.Split(strings.TrimSpace(out), "."); len(parts) != 3 {
		t.Errorf("expected a JWT with 3 parts, got %q", out)
	}

	if _, err := run(t, "token", "--user", "not-a-uuid"); err == nil {
		t.Error("expected an error for an invalid user id")
	}
}
