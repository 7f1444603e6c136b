package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should be null$`, theResponseFieldShouldBeNull)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response fields should be:$`, theResponseFieldsShouldBe)
	ctx.Step(`^the response header "([^"]*)" should be "([^"]*)"$`, theResponseHeaderShouldBe)
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	_, err := responseJSON(ctx)
	return err
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	value, err := responseField(ctx, path)
	if err != nil {
		return err
	}
	if actual := fmt.Sprintf("%v", value); actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", path, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	_, err := responseField(ctx, path)
	return err
}

func theResponseFieldShouldBeNull(ctx context.Context, path string) error {
	value, err := responseField(ctx, path)
	if err != nil {
		return err
	}
	if value != nil {
		return fmt.Errorf("field '%s' expected null, got '%v'", path, value)
	}
	return nil
}

func theResponseFieldShouldHaveItems(ctx context.Context, path string, n int) error {
	value, err := responseField(ctx, path)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		if value == nil && n == 0 {
			return nil
		}
		return fmt.Errorf("field '%s' is not an array: %v", path, value)
	}
	if len(items) != n {
		return fmt.Errorf("field '%s' expected %d items, got %d", path, n, len(items))
	}
	return nil
}

// theResponseFieldsShouldBe checks a two column table of field paths and
// expected values.
func theResponseFieldsShouldBe(ctx context.Context, table *godog.Table) error {
	for _, row := range table.Rows {
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected 2 columns, got %d", len(row.Cells))
		}
		path, expected := row.Cells[0].Value, row.Cells[1].Value
		if path == "field" {
			continue
		}
		if err := theResponseFieldShouldBe(ctx, path, expected); err != nil {
			return err
		}
	}
	return nil
}

func theResponseHeaderShouldBe(ctx context.Context, header, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if actual := tc.response.Header.Get(header); actual != expected {
		return fmt.Errorf("header '%s' expected '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func responseJSON(ctx context.Context) (any, error) {
	tc, err := testContext(ctx)
	if err != nil {
		return nil, err
	}
	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w. Body: %s", err, tc.responseBody)
	}
	return data, nil
}

// responseField resolves a dotted path such as "data.goals.0.name".
func responseField(ctx context.Context, path string) (any, error) {
	current, err := responseJSON(ctx)
	if err != nil {
		return nil, err
	}
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response", path)
			}
			current = value
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("field '%s': index '%s' out of range", path, part)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("field '%s': cannot descend into '%s'", path, part)
		}
	}
	return current, nil
}
