package steps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

// registerAPISteps registers HTTP request and authentication steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I send (\d+) "([^"]*)" requests to "([^"]*)"$`, iSendRequestsTo)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I am authenticated as another user$`, iAmAuthenticatedAsAnotherUser)
	ctx.Step(`^I am authenticated with an expired token$`, iAmAuthenticatedWithAnExpiredToken)
	ctx.Step(`^I use the token "([^"]*)"$`, iUseTheToken)
	ctx.Step(`^the rate limit is (\d+) requests per minute$`, theRateLimitIs)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return ctx, send(ctx, method, endpoint, "")
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return ctx, send(ctx, method, endpoint, body.Content)
}

func iSendRequestsTo(ctx context.Context, n int, method, endpoint string) (context.Context, error) {
	for i := 0; i < n; i++ {
		if err := send(ctx, method, endpoint, ""); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

func send(ctx context.Context, method, endpoint, body string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, tc.server.URL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.requestHeaders[header] = value
	return nil
}

func iAmAuthenticated(ctx context.Context) error {
	return authenticate(ctx, uuid.Nil, time.Hour)
}

func iAmAuthenticatedAsAnotherUser(ctx context.Context) error {
	return authenticate(ctx, uuid.New(), time.Hour)
}

func iAmAuthenticatedWithAnExpiredToken(ctx context.Context) error {
	return authenticate(ctx, uuid.Nil, -time.Minute)
}

// authenticate signs a token for userID, or for the scenario user when
// userID is nil.
func authenticate(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if userID == uuid.Nil {
		userID = tc.userID
	}
	token, err := tc.tokens.IssueAccessToken(userID, "user@example.com", ttl)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	tc.accessToken = token
	return nil
}

func iUseTheToken(ctx context.Context, token string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.accessToken = token
	return nil
}

func theRateLimitIs(ctx context.Context, n int) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.cfg.RateLimit.MaxRequests = n
	tc.startServer()
	return nil
}
