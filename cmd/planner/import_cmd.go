package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/infra/db"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/cli"
	"github.com/finance-tracker/planner/internal/integration/persistence"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
	"github.com/finance-tracker/planner/internal/integration/snapshot"
)

var flagMigrate bool

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the snapshot user's records in the API database",
	Long: "Import the snapshot file into the database configured by DATABASE_URL. " +
		"Existing records of the snapshot's user are removed first.",
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagMigrate, "migrate", false, "Create or update the schema before importing")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	ctx := cmd.Context()

	store, err := snapshot.Load(flagFile)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	database, err := db.NewPostgresConnection(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Warn("Failed to close database", "error", err)
		}
	}()

	if flagMigrate || cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(model.MigrationOrder()...); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	res, err := persistence.NewImportRepository(database.DB()).Replace(ctx, store)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	tables := make([]string, 0, len(res))
	for t := range res {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	rows := make([][2]string, 0, len(tables)+1)
	rows = append(rows, [2]string{"User", store.UserID.String()})
	for _, t := range tables {
		rows = append(rows, [2]string{t, fmt.Sprint(res[t])})
	}
	printTitle(cmd, "IMPORT")
	printBlock(cmd, cli.RenderKeyValues("Rows written", rows))
	return nil
}
