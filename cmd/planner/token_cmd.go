package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/integration/adapters"
	"github.com/finance-tracker/planner/internal/integration/snapshot"
)

var (
	flagTokenUser  string
	flagTokenEmail string
	flagTokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API access token signed with JWT_SECRET",
	Long: "Issue an access token for the HTTP API. The user defaults to the " +
		"user id of the snapshot file.",
	RunE: runToken,
}

func init() {
	f := tokenCmd.Flags()
	f.StringVar(&flagTokenUser, "user", "", "User id (UUID)")
	f.StringVar(&flagTokenEmail, "email", "", "Email claim")
	f.DurationVar(&flagTokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	var userID uuid.UUID
	if flagTokenUser != "" {
		id, err := uuid.Parse(flagTokenUser)
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
		userID = id
	} else {
		store, err := snapshot.Load(flagFile)
		if err != nil {
			return fmt.Errorf("no --user given and snapshot unreadable: %w", err)
		}
		userID = store.UserID
	}

	token, err := adapters.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer).
		IssueAccessToken(userID, flagTokenEmail, flagTokenTTL)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
