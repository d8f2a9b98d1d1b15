package handler

import (
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aixart12/infra-stucture-poc/internal/config"
	"github.com/aixart12/infra-stucture-poc/internal/service"
)

// greetingPayload is the response body for GET /.
type greetingPayload struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// probePayload is the response body for the liveness and readiness probes.
type probePayload struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// statusPayload is the response body for GET /api/status. It is recomputed
// on every request and never stored.
type statusPayload struct {
	Name          string  `json:"name"`
	Version       string  `json:"version"`
	Status        string  `json:"status"`
	Environment   string  `json:"environment"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Root returns the greeting handler for GET /.
func Root(cfg *config.AppConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(greetingPayload{
			Message:     "Welcome to " + cfg.AppName,
			Version:     cfg.Version,
			Environment: cfg.Environment,
		})
	}
}

// Health returns the liveness probe handler. It must stay independent of any
// downstream system: as long as the process can serve HTTP, it is alive.
func Health(cfg *config.AppConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(probePayload{Status: "healthy", Service: cfg.AppName})
	}
}

// Ready returns the readiness probe handler. The flag is set once startup
// completes and cleared when shutdown begins, so the orchestrator stops
// routing traffic before the listener drains.
func Ready(cfg *config.AppConfig, ready *atomic.Bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !ready.Load() {
			return writeError(c, fiber.StatusServiceUnavailable, "NOT_READY", "service is not ready")
		}
		return c.JSON(probePayload{Status: "ready", Service: cfg.AppName})
	}
}

// ListItems returns the handler for GET /api/items. The response is a bare
// JSON array of the seed items.
func ListItems(itemSvc service.ItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := itemSvc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(items)
	}
}

// Status returns the handler for GET /api/status. Name, version and
// environment come from process configuration; uptime is measured from the
// startedAt instant recorded in main.
func Status(cfg *config.AppConfig, startedAt time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(statusPayload{
			Name:          cfg.AppName,
			Version:       cfg.Version,
			Status:        "running",
			Environment:   cfg.Environment,
			UptimeSeconds: time.Since(startedAt).Seconds(),
		})
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, cfg *config.AppConfig, itemSvc service.ItemService, ready *atomic.Bool, startedAt time.Time) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/", Root(cfg))
	app.Get("/health", Health(cfg))
	app.Get("/ready", Ready(cfg, ready))
	app.Get("/api/items", ListItems(itemSvc))
	app.Get("/api/status", Status(cfg, startedAt))
}
