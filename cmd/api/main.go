package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aixart12/infra-stucture-poc/internal/config"
	handlers "github.com/aixart12/infra-stucture-poc/internal/http/handler"
	"github.com/aixart12/infra-stucture-poc/internal/http/middleware"
	tracing "github.com/aixart12/infra-stucture-poc/internal/otel"
	"github.com/aixart12/infra-stucture-poc/internal/repository/memory"
	"github.com/aixart12/infra-stucture-poc/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Initialize tracing; degrades to no-op when no collector is configured
	shutdownTracing, err := tracing.Init(context.Background(), cfg.AppName)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	// The item catalog is a fixed in-memory seed; no external stores
	itemSvc := service.NewItemService(memory.NewItemMemory())

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			log.Fatalf("failed to register request metrics: %v", err)
		}
		app.Use(promMiddleware.Handler())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	startedAt := time.Now()
	var ready atomic.Bool

	// Register HTTP routes with injected config and service
	handlers.RegisterRoutes(app, cfg, itemSvc, &ready, startedAt)

	// On SIGINT/SIGTERM flip readiness first so the orchestrator stops
	// routing traffic, then drain in-flight requests.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		ready.Store(false)
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	addr := ":" + cfg.Port

	ready.Store(true)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
