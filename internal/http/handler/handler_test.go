package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aixart12/infra-stucture-poc/internal/config"
	"github.com/aixart12/infra-stucture-poc/internal/http/middleware"
	"github.com/aixart12/infra-stucture-poc/internal/model"
	"github.com/aixart12/infra-stucture-poc/internal/repository/memory"
	"github.com/aixart12/infra-stucture-poc/internal/service"
	serviceMocks "github.com/aixart12/infra-stucture-poc/internal/service/mocks"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		AppName:     "demo-api",
		Version:     "1.0.0",
		Environment: "test",
		Port:        "8080",
	}
}

func TestRoot(t *testing.T) {
	app := fiber.New()
	app.Get("/", Root(testConfig()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Welcome to demo-api", body["message"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, "test", body["environment"])
}

func TestHealth(t *testing.T) {
	app := fiber.New()
	app.Get("/health", Health(testConfig()))

	// Liveness must hold on every call, with no dependency on anything else
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "demo-api", body["service"])
	}
}

func TestReady(t *testing.T) {
	var ready atomic.Bool
	app := fiber.New()
	app.Get("/ready", Ready(testConfig(), &ready))

	t.Run("ready after startup", func(t *testing.T) {
		ready.Store(true)

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "ready", body["status"])
	})

	t.Run("not ready during shutdown", func(t *testing.T) {
		ready.Store(false)

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NOT_READY", body.Error.Code)
	})
}

func TestListItems(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Get("/api/items", ListItems(mockSvc))

		seed := []model.Item{{ID: 1, Name: "Item 1", Description: "First item"}}
		mockSvc.On("List", mock.Anything).Return(seed, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var items []model.Item
		json.NewDecoder(resp.Body).Decode(&items)
		assert.Equal(t, seed, items)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Get("/api/items", ListItems(mockSvc))

		mockSvc.On("List", mock.Anything).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("stable across repeated calls with the seed repository", func(t *testing.T) {
		itemSvc := service.NewItemService(memory.NewItemMemory())
		app := fiber.New()
		app.Get("/api/items", ListItems(itemSvc))

		var first []model.Item
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
			resp, _ := app.Test(req)

			require.Equal(t, http.StatusOK, resp.StatusCode)

			var items []model.Item
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
			require.Len(t, items, 3)
			if first == nil {
				first = items
			} else {
				assert.Equal(t, first, items)
			}
		}
	})
}

func TestStatus(t *testing.T) {
	cfg := &config.AppConfig{
		AppName:     "env-named-app",
		Version:     "2.3.4",
		Environment: "production",
	}
	startedAt := time.Now().Add(-2 * time.Second)

	app := fiber.New()
	app.Get("/api/status", Status(cfg, startedAt))

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body statusPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "env-named-app", body.Name)
	assert.Equal(t, "2.3.4", body.Version)
	assert.Equal(t, "running", body.Status)
	assert.Equal(t, "production", body.Environment)
	assert.GreaterOrEqual(t, body.UptimeSeconds, 2.0)
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	mockSvc := new(serviceMocks.MockItemService)
	var ready atomic.Bool
	ready.Store(true)
	RegisterRoutes(app, testConfig(), mockSvc, &ready, time.Now())

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(promMiddleware.Handler())

	mockSvc := new(serviceMocks.MockItemService)
	mockSvc.On("List", mock.Anything).Return([]model.Item{}, nil)
	var ready atomic.Bool
	ready.Store(true)
	RegisterRoutes(app, testConfig(), mockSvc, &ready, time.Now())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	const n = 4
	for i := 0; i < n; i++ {
		app.Test(httptest.NewRequest(http.MethodGet, "/api/items", nil))
	}

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body, _ := io.ReadAll(resp.Body)
	exposition := string(body)
	assert.Contains(t, exposition, `http_requests_total{method="GET",path="/api/items",status="200"} 4`)
	assert.True(t, strings.Contains(exposition, "http_request_duration_seconds"))
}
