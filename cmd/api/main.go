package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	analyticsCache "proposal-insights-service/internal/analytics/adapters/cache"
	analyticsHttp "proposal-insights-service/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "proposal-insights-service/internal/analytics/adapters/postgres"
	analyticsUsecase "proposal-insights-service/internal/analytics/core/usecase"

	editorHttp "proposal-insights-service/internal/editor/adapters/http/fiber"
	editorRepoPg "proposal-insights-service/internal/editor/adapters/postgres"
	editorUsecase "proposal-insights-service/internal/editor/core/usecase"

	"proposal-insights-service/internal/config"
	"proposal-insights-service/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "proposal-insights-service/docs"
)

// @title Proposal Insights Service API
// @version 1.0
// @description Slide engagement analytics and field editor persistence for proposal links.
// @BasePath /
func main() {
	// Config
	_ = godotenv.Load()
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if cfg.PostgresDSN == "" {
		logger.Error("POSTGRES_DSN is not set")
		os.Exit(1)
	}

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		logger.Error("failed to open postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping postgres", "error", err)
		os.Exit(1)
	}

	// Adapter-level DB wrappers
	analyticsDB := analyticsRepoPg.NewSQLDB(db)
	editorDB := editorRepoPg.NewSQLDB(db)

	// Repositories
	viewEventRepository := analyticsRepoPg.NewViewEventRepository(analyticsDB)
	fieldRepository := editorRepoPg.NewFieldRepository(editorDB)

	// Usecases
	engagementUC := analyticsUsecase.NewGetEngagementUseCase(viewEventRepository, cfg.LiveWindow)
	cachedEngagement := analyticsCache.NewEngagementCache(engagementUC, cfg.CacheTTL)
	fieldSetUC := editorUsecase.NewFieldSetUseCase(fieldRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New()
	app.Use(requestCounter)

	// analytics endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(cachedEngagement)
	app.Get("/proposals/:proposalID/analytics/overview", analyticsHandler.GetOverview)
	app.Get("/proposals/:proposalID/analytics/heatmap", analyticsHandler.GetHeatmap)
	app.Get("/proposals/:proposalID/analytics/sessions", analyticsHandler.GetSessions)
	app.Get("/proposals/:proposalID/analytics/live", analyticsHandler.GetLive)

	// editor endpoints
	fieldHandler := editorHttp.NewFieldHandler(fieldSetUC)
	app.Get("/slides/:slideID/fields", fieldHandler.GetFields)
	app.Put("/slides/:slideID/fields", fieldHandler.SaveFields)
	app.Post("/preview", fieldHandler.Preview)

	// Prometheus scrape endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber stopped", "error", err)
		}
	}()

	logger.Info("server started", "port", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error", "error", err)
	}

	logger.Info("server exiting")
}

// requestCounter labels by registered route pattern, not the raw path, so
// the metric cardinality stays bounded.
func requestCounter(c *fiber.Ctx) error {
	err := c.Next()

	route := c.Route().Path
	status := c.Response().StatusCode()
	observability.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()

	return err
}
