package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/aidt-dashboard-api/api/swagger"
	"github.com/noah-isme/aidt-dashboard-api/internal/repository"
	"github.com/noah-isme/aidt-dashboard-api/internal/service"
	"github.com/noah-isme/aidt-dashboard-api/internal/viewmodel"
	"github.com/noah-isme/aidt-dashboard-api/pkg/cache"
	"github.com/noah-isme/aidt-dashboard-api/pkg/config"
	"github.com/noah-isme/aidt-dashboard-api/pkg/database"
	"github.com/noah-isme/aidt-dashboard-api/pkg/export"
	"github.com/noah-isme/aidt-dashboard-api/pkg/logger"
)

// @title AIDT Teacher Dashboard API
// @version 0.1.0
// @description Render-ready teacher dashboard view-models for the AI digital textbook.
// @BasePath /api/v1
// @schemes http

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := buildDependencies(ctx, cfg, logr)
	if err != nil {
		logr.Fatal("failed to wire dependencies", zap.Error(err))
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           newRouter(cfg, logr, deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logr.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("data_source", cfg.Dashboard.DataSource),
			zap.Bool("cache", deps.Cache.Enabled()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

// buildDependencies connects the configured backends and constructs the services.
func buildDependencies(ctx context.Context, cfg *config.Config, logr *zap.Logger) (*dependencies, func(), error) {
	deps := &dependencies{Metrics: service.NewMetricsService()}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var db *sqlx.DB
	if cfg.Dashboard.UsesDatabase() {
		conn, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, cleanup, fmt.Errorf("connect postgres: %w", err)
		}
		db = conn
		closers = append(closers, func() { _ = conn.Close() })
		deps.Probes = append(deps.Probes, readinessProbe{name: "postgres", check: db.PingContext})
	}

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		} else {
			redisClient = client
			closers = append(closers, func() { _ = client.Close() })
			deps.Probes = append(deps.Probes, readinessProbe{name: "redis", check: func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			}})
		}
	}
	deps.Cache = service.NewCacheService(
		repository.NewCacheRepository(redisClient, logr),
		deps.Metrics,
		cfg.Dashboard.CacheTTL,
		logr,
		cfg.Cache.Enabled && redisClient != nil,
	)

	var (
		source        service.DashboardSource
		notifications service.NotificationStore
	)
	if db != nil {
		source = repository.NewDashboardRepository(db, deps.Metrics, cfg.Dashboard.ActivityLimit)
		notifications = repository.NewNotificationRepository(db)
	} else {
		source = repository.NewSampleDashboardSource()
		notifications = repository.NewMemoryNotificationStore()
	}

	deps.Dashboard = service.NewDashboardService(service.DashboardServiceParams{
		Source:  source,
		Ranker:  viewmodel.NewRanker(cfg.Dashboard.Recommender),
		Cache:   deps.Cache,
		Metrics: deps.Metrics,
		Logger:  logr,
		Config: service.DashboardServiceConfig{
			CacheTTL:         cfg.Dashboard.CacheTTL,
			LoadTimeout:      cfg.Dashboard.LoadTimeout,
			ActivityPageSize: cfg.Dashboard.ActivityPageSize,
		},
	})
	deps.Notifications = service.NewNotificationService(notifications, validator.New(), cfg.Notifications.DefaultTime, logr)
	if cfg.Exports.Enabled {
		deps.Exports = service.NewExportService(
			deps.Dashboard,
			export.NewCSVExporter(cfg.Exports.CSVBOM),
			export.NewPDFExporter(cfg.Exports.PDFFontPath),
			deps.Metrics,
			logr,
		)
	}
	return deps, cleanup, nil
}
