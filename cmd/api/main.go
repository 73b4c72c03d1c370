package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/passcheck/internal/config"
	"github.com/jwalitptl/passcheck/internal/handler"
	strengthHandler "github.com/jwalitptl/passcheck/internal/handler/strength"
	"github.com/jwalitptl/passcheck/internal/middleware"
	"github.com/jwalitptl/passcheck/internal/router"
	strengthService "github.com/jwalitptl/passcheck/internal/service/strength"
	"github.com/jwalitptl/passcheck/pkg/generator"
	"github.com/jwalitptl/passcheck/pkg/logger"
	"github.com/jwalitptl/passcheck/pkg/metrics"
	"github.com/jwalitptl/passcheck/pkg/ratelimit"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Output: os.Stdout,
		Pretty: cfg.Log.Pretty,
	})
	log.Logger = appLogger.Zerolog()
	gin.SetMode(gin.ReleaseMode)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.NewMetrics(cfg.Metrics.Namespace, prometheus.DefaultRegisterer)
	}

	// Initialize rate limiter
	checks := map[string]handler.Pinger{}
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		switch cfg.RateLimit.Backend {
		case "redis":
			rl, err := ratelimit.NewRedisLimiter(ratelimit.RedisConfig{
				URL:    cfg.RateLimit.RedisURL,
				Limit:  cfg.RateLimit.Burst,
				Window: cfg.RateLimit.Window,
			})
			if err != nil {
				appLogger.Fatal(err, "failed to configure Redis rate limiter")
			}
			defer rl.Close()
			checks["redis"] = rl
			limiter = rl
		default:
			limiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryConfig{
				RPS:   cfg.RateLimit.RPS,
				Burst: cfg.RateLimit.Burst,
			})
		}
	}

	// Initialize services and handlers
	svc := strengthService.NewService(
		generator.New(),
		strengthService.WithMetrics(m),
		strengthService.WithDefaultLength(cfg.Generator.DefaultLength),
	)

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	// Setup router
	r := router.NewRouter(
		handler.NewHandler(prometheus.DefaultGatherer, checks),
		[]router.Handler{strengthHandler.NewHandler(svc)},
		router.RouterConfig{
			Logger:         appLogger,
			Metrics:        m,
			MetricsPath:    metricsPath,
			Limiter:        limiter,
			CORSConfig:     corsConfig,
			MaxBodyBytes:   cfg.Server.MaxBodyBytes,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("server starting", "addr", srv.Addr, "rate_limit_backend", cfg.RateLimit.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error(err, "server forced to shutdown")
		return
	}

	appLogger.Info("server exited properly")
}
