package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/api/http/handlers"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/auth"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/config"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/domain"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/events"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/observability"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/persistence"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/repository"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return newTestAppWithRepos(t,
		repository.NewMemoryInventoryRepository(),
		repository.NewMemoryRequestRepository(),
	)
}

func newTestAppWithRepos(t *testing.T, inventoryRepo repository.InventoryRepository, requestRepo repository.RequestRepository) *fiber.App {
	t.Helper()

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 15,
			BcryptCost:            4,
		},
	}
	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher()

	userRepo := repository.NewMemoryUserRepository()

	authService := service.NewAuthService(cfg, userRepo, dispatcher)
	inventoryService := service.NewInventoryService(inventoryRepo, dispatcher)
	requestService := service.NewRequestService(requestRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, nil, logger, cfg.Notification)
	notificationService.RegisterHandlers()

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("blood-bridge", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Auth:           handlers.NewAuthHandler(authService),
		Dashboard:      handlers.NewDashboardHandler(requestService, inventoryService, logger),
		Requests:       handlers.NewRequestsHandler(requestService, logger),
		Inventory:      handlers.NewInventoryHandler(inventoryService, logger),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), userRepo),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	decoded := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func signup(t *testing.T, app *fiber.App, name, email, role string) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/auth/signup", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "s3cret",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]any)
	authPayload := data["auth"].(map[string]any)
	return authPayload["token"].(string)
}

func errorCode(body map[string]any) string {
	errPayload, ok := body["error"].(map[string]any)
	if !ok {
		return ""
	}
	code, _ := errPayload["code"].(string)
	return code
}

func TestHealthLive(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alive", body["status"])
}

func TestSignupLoginFlow(t *testing.T) {
	app := newTestApp(t)

	token := signup(t, app, "Jane Donor", "jane@example.com", "donor")
	assert.NotEmpty(t, token)

	// duplicate email is rejected regardless of other fields
	resp, body := doJSON(t, app, http.MethodPost, "/auth/signup", "", map[string]any{
		"name":     "Other",
		"email":    "jane@example.com",
		"password": "different",
		"role":     "hospital",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_EMAIL", errorCode(body))

	resp, _ = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "jane@example.com",
		"password": "s3cret",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTH_FAILED", errorCode(body))
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/dashboard", "/requests", "/inventory"} {
		resp, body := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, "UNAUTHENTICATED", errorCode(body), path)
	}
}

func TestInventoryAdjustFlow(t *testing.T) {
	app := newTestApp(t)

	bankToken := signup(t, app, "Central Blood Bank", "ops@centralbank.org", "blood_bank")
	donorToken := signup(t, app, "Jane Donor", "jane@example.com", "donor")

	// donors cannot mutate stock
	resp, body := doJSON(t, app, http.MethodPost, "/inventory/adjust", donorToken, map[string]any{
		"blood_type": "A+", "quantity": 1, "action": "add",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(body))

	resp, body = doJSON(t, app, http.MethodPost, "/inventory/adjust", bankToken, map[string]any{
		"blood_type": "O-", "quantity": 5, "action": "add",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entry := body["data"].(map[string]any)
	assert.Equal(t, float64(5), entry["quantity"])

	resp, body = doJSON(t, app, http.MethodPost, "/inventory/adjust", bankToken, map[string]any{
		"blood_type": "O-", "quantity": 3, "action": "remove",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entry = body["data"].(map[string]any)
	assert.Equal(t, float64(2), entry["quantity"])

	resp, body = doJSON(t, app, http.MethodPost, "/inventory/adjust", bankToken, map[string]any{
		"blood_type": "O-", "quantity": 10, "action": "remove",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", errorCode(body))

	// stock unchanged after the rejected remove
	resp, body = doJSON(t, app, http.MethodGet, "/inventory", donorToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entries := body["data"].([]any)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(2), entries[0].(map[string]any)["quantity"])
}

func TestSubmitRequestAndDashboard(t *testing.T) {
	app := newTestApp(t)

	token := signup(t, app, "City Hospital", "admin@cityhospital.org", "hospital")

	resp, body := doJSON(t, app, http.MethodPost, "/requests", token, map[string]any{
		"blood_type": "AB-", "quantity": 2, "urgency": "Critical",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	request := body["data"].(map[string]any)
	assert.Equal(t, "Pending", request["status"])
	assert.Equal(t, "City Hospital", request["requested_by"])

	resp, body = doJSON(t, app, http.MethodPost, "/requests", token, map[string]any{
		"blood_type": "AB-", "quantity": 0, "urgency": "Low",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(body))

	resp, body = doJSON(t, app, http.MethodGet, "/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	user := data["user"].(map[string]any)
	assert.Equal(t, "City Hospital", user["name"])
	requests := data["requests"].([]any)
	require.Len(t, requests, 1)
}

var errStoreDown = errors.New("connection refused")

// failingInventoryRepo simulates an unreachable backing store.
type failingInventoryRepo struct{}

func (failingInventoryRepo) List(context.Context) ([]domain.InventoryEntry, error) {
	return nil, errStoreDown
}

func (failingInventoryRepo) Get(context.Context, string) (*domain.InventoryEntry, error) {
	return nil, errStoreDown
}

func (failingInventoryRepo) Add(context.Context, string, int) (*domain.InventoryEntry, error) {
	return nil, errStoreDown
}

func (failingInventoryRepo) Remove(context.Context, string, int) (*domain.InventoryEntry, error) {
	return nil, errStoreDown
}

// failingRequestRepo simulates an unreachable backing store.
type failingRequestRepo struct{}

func (failingRequestRepo) Create(context.Context, *domain.BloodRequest) error {
	return errStoreDown
}

func (failingRequestRepo) ListAll(context.Context) ([]domain.BloodRequest, error) {
	return nil, errStoreDown
}

func TestListReadsDegradeWhenStoreUnavailable(t *testing.T) {
	app := newTestAppWithRepos(t, failingInventoryRepo{}, failingRequestRepo{})
	token := signup(t, app, "Jane Donor", "jane@example.com", "donor")

	resp, body := doJSON(t, app, http.MethodGet, "/inventory", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["data"].([]any))
	assert.Equal(t, "inventory temporarily unavailable", body["warning"])

	resp, body = doJSON(t, app, http.MethodGet, "/requests", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["data"].([]any))
	assert.Equal(t, "blood requests temporarily unavailable", body["warning"])
}

func TestDashboardDegradesPerSection(t *testing.T) {
	app := newTestAppWithRepos(t, failingInventoryRepo{}, failingRequestRepo{})
	token := signup(t, app, "Jane Donor", "jane@example.com", "donor")

	resp, body := doJSON(t, app, http.MethodGet, "/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Empty(t, data["requests"].([]any))
	assert.Empty(t, data["inventory"].([]any))
	assert.Equal(t, "Jane Donor", data["user"].(map[string]any)["name"])

	warnings := body["warnings"].([]any)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings, "blood requests temporarily unavailable")
	assert.Contains(t, warnings, "inventory temporarily unavailable")
}
