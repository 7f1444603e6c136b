package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/infra/dependency"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/cli"
	"github.com/finance-tracker/planner/internal/integration/snapshot"
)

var (
	flagFile     string
	flagAsOf     string
	flagCurrency string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Personal finance projections",
	Long: "Summaries, health score, analytics, cash-flow scenarios, what-if simulations, " +
		"goal and planning projections over a TOML snapshot of your finances.",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "planner.toml", "Snapshot file")
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Reference date (YYYY-MM-DD), defaults to today")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency code, defaults to the snapshot's")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log to stderr")
}

func setupLogging(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	var w io.Writer = io.Discard
	if flagVerbose {
		w = os.Stderr
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

// app is the shared state of every reporting command.
type app struct {
	ctx      context.Context
	useCases *dependency.UseCases
	userID   uuid.UUID
	asOf     time.Time
	fmt      cli.Formatter
}

// loadApp reads the snapshot and wires the use cases over it.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg := config.Load()

	store, err := snapshot.Load(flagFile)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	slog.Debug("Snapshot loaded",
		"file", flagFile,
		"transactions", len(store.Transactions),
		"goals", len(store.Goals),
	)

	asOf := time.Now().UTC()
	if flagAsOf != "" {
		asOf, err = time.Parse("2006-01-02", flagAsOf)
		if err != nil {
			return nil, fmt.Errorf("invalid --as-of %q, expected YYYY-MM-DD", flagAsOf)
		}
	}

	currency := flagCurrency
	if currency == "" {
		currency = store.Currency
	}
	if currency == "" {
		currency = cfg.Planner.Currency
	}

	return &app{
		ctx:      cmd.Context(),
		useCases: dependency.NewUseCases(cfg.Planner, dependency.SnapshotRepositories(store)),
		userID:   store.UserID,
		asOf:     asOf,
		fmt:      cli.NewFormatter(currency),
	}, nil
}

func printTitle(cmd *cobra.Command, title string) {
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTitle(title))
	fmt.Fprintln(cmd.OutOrStdout())
}

func printBlock(cmd *cobra.Command, block string) {
	if block == "" {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), block)
}

// floatFlag returns a pointer to the flag value when it was set.
func floatFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}
