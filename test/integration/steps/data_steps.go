package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/integration/persistence"
	"github.com/finance-tracker/planner/internal/integration/snapshot"
)

// registerDataSteps registers steps that seed the database.
func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the user has the following finances:$`, theUserHasTheFollowingFinances)
	ctx.Step(`^another user has the following finances:$`, anotherUserHasTheFollowingFinances)
}

func theUserHasTheFollowingFinances(ctx context.Context, doc *godog.DocString) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	return importFinances(ctx, tc, tc.userID, doc.Content)
}

func anotherUserHasTheFollowingFinances(ctx context.Context, doc *godog.DocString) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	return importFinances(ctx, tc, uuid.New(), doc.Content)
}

// importFinances parses a snapshot document owned by userID and writes it
// through the import repository.
func importFinances(ctx context.Context, tc *TestContext, userID uuid.UUID, doc string) error {
	store, err := snapshot.Parse(fmt.Sprintf("user_id = %q\n%s", userID, doc))
	if err != nil {
		return fmt.Errorf("invalid finances: %w", err)
	}
	if _, err := persistence.NewImportRepository(tc.db.DbConn).Replace(ctx, store); err != nil {
		return fmt.Errorf("failed to import finances: %w", err)
	}
	return nil
}
