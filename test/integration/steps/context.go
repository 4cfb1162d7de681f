// Package steps provides step definitions for the BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/meubolso/backend/config"
	"github.com/meubolso/backend/internal/infra/dependency"
	"github.com/meubolso/backend/internal/integration/persistence/model"
	"github.com/meubolso/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-local-runs"

var serverOnce sync.Once
var testServer *httptest.Server

// testContext holds the state for one scenario.
type testContext struct {
	client  *http.Client
	headers map[string]string

	accessToken   string
	currentUserID uuid.UUID

	response      *http.Response
	responseBody  []byte
	billPaymentID string

	db *mock.Db
}

// InitializeTestSuite sets up suite-wide resources.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb([]any{
			&model.CategoryModel{},
			&model.CategoryRuleModel{},
			&model.InstallmentModel{},
			&model.TransactionModel{},
			&model.BillPaymentModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am authenticated$`, test.iAmAuthenticated)
	ctx.Given(`^I am not authenticated$`, test.iAmNotAuthenticated)
	ctx.Given(`^I set header "([^"]*)" to "([^"]*)"$`, test.iSetHeaderTo)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) rows in the "([^"]*)" table$`, test.theDbShouldContainRowsInTheTable)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.response = nil
	t.responseBody = nil
	t.billPaymentID = ""

	if err := t.db.Reset(); err != nil {
		return err
	}
	return mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) theAPIServerIsRunning() error {
	serverOnce.Do(func() {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret

		injector := dependency.NewInjector(cfg, t.db.DbConn, mock.NewRedis())
		testServer = httptest.NewServer(injector.Router.Setup("test"))
	})
	if testServer == nil {
		return fmt.Errorf("test server failed to start")
	}
	return nil
}

func (t *testContext) iAmAuthenticated() error {
	t.currentUserID = uuid.New()

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": t.currentUserID.String(),
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(time.Hour)),
		"iss": "meubolso-identity",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign test token: %w", err)
	}
	t.accessToken = signed
	return nil
}

func (t *testContext) iAmNotAuthenticated() error {
	t.accessToken = ""
	return nil
}

func (t *testContext) iSetHeaderTo(name, value string) error {
	t.headers[name] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{bill_payment_id}}", t.billPaymentID)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := testServer.URL + t.replacePlaceholders(path)

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	t.response = resp
	t.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Capture the created bill payment ID for later path placeholders.
	var responseBody map[string]any
	if err := json.Unmarshal(t.responseBody, &responseBody); err == nil {
		if id, ok := responseBody["id"].(string); ok {
			t.billPaymentID = id
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, t.response.StatusCode, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q. Body: %s", field, expected, actual, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) responseField(field string) (any, error) {
	var data map[string]any
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}
	value, ok := data[field]
	if !ok {
		return nil, fmt.Errorf("field %q not found in response. Body: %s", field, string(t.responseBody))
	}
	return value, nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theDbShouldContainRowsInTheTable(expected int, table string) error {
	count, err := t.db.CountRows(table)
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("table %q has %d rows, want %d", table, count, expected)
	}
	return nil
}
