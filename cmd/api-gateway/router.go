package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/aidt-dashboard-api/internal/handler"
	"github.com/noah-isme/aidt-dashboard-api/internal/middleware"
	"github.com/noah-isme/aidt-dashboard-api/internal/service"
	"github.com/noah-isme/aidt-dashboard-api/pkg/config"
	"github.com/noah-isme/aidt-dashboard-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/aidt-dashboard-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/aidt-dashboard-api/pkg/middleware/requestid"
)

const readinessTimeout = 2 * time.Second

type readinessProbe struct {
	name  string
	check func(ctx context.Context) error
}

type dependencies struct {
	Metrics       *service.MetricsService
	Cache         *service.CacheService
	Dashboard     *service.DashboardService
	Notifications *service.NotificationService
	Exports       *service.ExportService
	Probes        []readinessProbe
}

func newRouter(cfg *config.Config, logr *zap.Logger, deps *dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics, "/metrics", "/health", "/ready"))

	metricsHandler := handler.NewMetricsHandler(deps.Metrics)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", readyHandler(deps.Probes))
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.WithResponseMeta())
	api.GET("/metrics/summary", metricsHandler.Summary)

	teachers := api.Group("/teachers/:teacherId")
	if cfg.Dashboard.Enabled {
		dashboardHandler := handler.NewDashboardHandler(deps.Dashboard, nil)
		if cfg.Exports.Enabled && deps.Exports != nil {
			dashboardHandler = handler.NewDashboardHandler(deps.Dashboard, deps.Exports)
		}
		teachers.GET("/dashboard", dashboardHandler.Teacher)
		teachers.GET("/activities", dashboardHandler.Activities)
		teachers.GET("/dashboard/export", dashboardHandler.Export)
	}
	if cfg.Notifications.Enabled {
		notificationHandler := handler.NewNotificationHandler(deps.Notifications)
		teachers.GET("/notification-time", notificationHandler.Get)
		teachers.PUT("/notification-time", notificationHandler.Save)
	}
	return r
}

func readyHandler(probes []readinessProbe) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		checks := make(map[string]string, len(probes))
		status := http.StatusOK
		for _, probe := range probes {
			if err := probe.check(ctx); err != nil {
				checks[probe.name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			checks[probe.name] = "ok"
		}
		state := "ready"
		if status != http.StatusOK {
			state = "degraded"
		}
		c.JSON(status, gin.H{"status": state, "checks": checks})
	}
}
