package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shop-ledger/backend/internal/integration/persistence/model"
)

// registerSetupSteps registers data fixture steps.
func registerSetupSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^a user "([^"]*)" exists with role "([^"]*)" and password "([^"]*)"$`, aUserExistsWithRoleAndPassword)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, iAmLoggedInAsWithPassword)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I clear the access token$`, iClearTheAccessToken)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, iStoreTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should not exist$`, theResponseFieldShouldNotExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, theResponseFieldShouldHaveItems)
}

// registerDBSteps registers database assertion steps.
func registerDBSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, theDbShouldContainObjectsInWithTheValues)
}

func scenarioContext(ctx context.Context) (*TestContext, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}
	return tc, nil
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return err
	}
	if tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func aUserExistsWithRoleAndPassword(ctx context.Context, username, role, password string) error {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	return tc.db.DbConn.Create(&model.UserModel{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}).Error
}

func iAmLoggedInAsWithPassword(ctx context.Context, username, password string) (context.Context, error) {
	body := fmt.Sprintf(`{"username": %q, "password": %q}`, username, password)
	ctx, err := iSendARequestToWithBody(ctx, http.MethodPost, "/api/v1/auth/login", &godog.DocString{Content: body})
	if err != nil {
		return ctx, err
	}

	tc := GetTestContext(ctx)
	if tc.response.StatusCode != http.StatusOK {
		return ctx, fmt.Errorf("login failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	token, ok := responseField(tc, "token").(string)
	if !ok || token == "" {
		return ctx, fmt.Errorf("login response has no token: %s", string(tc.responseBody))
	}
	tc.accessToken = token
	return SetTestContext(ctx, tc), nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, body)
}

func sendRequest(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return ctx, err
	}

	var payload io.Reader
	if body != nil {
		payload = bytes.NewBufferString(tc.substitute(body.Content))
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.substitute(endpoint), payload)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

// substitute replaces {{name}} placeholders with stored values.
func (tc *TestContext) substitute(content string) string {
	for name, value := range tc.vars {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return ctx, err
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iClearTheAccessToken(ctx context.Context) (context.Context, error) {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return ctx, err
	}
	tc.accessToken = ""
	return SetTestContext(ctx, tc), nil
}

func iStoreTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return ctx, err
	}
	value := responseField(tc, field)
	if value == nil {
		return ctx, fmt.Errorf("field '%s' not found in response: %s", field, string(tc.responseBody))
	}
	tc.vars[name] = formatValue(value)
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return err
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return err
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return err
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return err
	}

	value := responseField(tc, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, string(tc.responseBody))
	}

	if actual := formatValue(value); actual != tc.substitute(expected) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return err
	}
	if responseField(tc, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldNotExist(ctx context.Context, field string) error {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return err
	}
	if value := responseField(tc, field); value != nil {
		return fmt.Errorf("field '%s' should not be present, got %v", field, value)
	}
	return nil
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return err
	}
	items, ok := responseField(tc, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array: %s", field, string(tc.responseBody))
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return err
	}
	return countRows(tc, table, nil, quantity)
}

func theDbShouldContainObjectsInWithTheValues(ctx context.Context, quantity int, table string, content *godog.DocString) error {
	tc, err := scenarioContext(ctx)
	if err != nil {
		return err
	}

	var criteria map[string]any
	if err := json.Unmarshal([]byte(tc.substitute(content.Content)), &criteria); err != nil {
		return err
	}
	return countRows(tc, table, criteria, quantity)
}

func countRows(tc *TestContext, table string, criteria map[string]any, quantity int) error {
	entity, ok := tc.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := tc.db.DbConn.Model(entity)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}
	if err := query.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	if count := entitySlicePtr.Elem().Len(); count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// responseField reads a dot separated path from the JSON response. Numeric
// segments index into arrays.
func responseField(tc *TestContext, dotSeparatedField string) any {
	var field any
	if err := json.Unmarshal(tc.responseBody, &field); err != nil {
		return nil
	}

	for _, segment := range strings.Split(dotSeparatedField, ".") {
		switch current := field.(type) {
		case map[string]any:
			field = current[segment]
		case []any:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(current) {
				return nil
			}
			field = current[i]
		default:
			return nil
		}
	}
	return field
}

// formatValue renders JSON numbers without a trailing ".0" so ids compare as integers.
func formatValue(value any) string {
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprintf("%v", value)
}
