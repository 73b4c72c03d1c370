package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/passcheck/internal/handler"
	"github.com/jwalitptl/passcheck/internal/middleware"
	"github.com/jwalitptl/passcheck/pkg/logger"
	"github.com/jwalitptl/passcheck/pkg/metrics"
	"github.com/jwalitptl/passcheck/pkg/ratelimit"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine   *gin.Engine
	h        *handler.Handler
	handlers []Handler
	config   RouterConfig
}

type RouterConfig struct {
	Logger         *logger.Logger
	Metrics        *metrics.Metrics
	MetricsPath    string
	Limiter        ratelimit.Limiter
	CORSConfig     middleware.CORSConfig
	MaxBodyBytes   int64
	RequestTimeout time.Duration
}

func NewRouter(h *handler.Handler, handlers []Handler, config RouterConfig) *Router {
	engine := gin.New()

	if config.Logger == nil {
		config.Logger = logger.NewLogger(nil)
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = 1 << 16
	}

	r := &Router{
		engine:   engine,
		h:        h,
		handlers: handlers,
		config:   config,
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(config.Logger),
		middleware.Recovery(),
		middleware.ErrorHandler(),
	)
	if config.Metrics != nil {
		engine.Use(middleware.Metrics(config.Metrics))
	}
	engine.Use(
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.CORS(config.CORSConfig),
		middleware.SizeLimit(config.MaxBodyBytes),
		middleware.Timeout(config.RequestTimeout),
	)

	middleware.RegisterValidation()
	return r
}

func (r *Router) Setup() {
	if r.config.Metrics != nil && r.config.MetricsPath != "" {
		r.engine.GET(r.config.MetricsPath, r.h.MetricsHandler())
	}

	api := r.engine.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.h.RegisterRoutes(api)

	limited := api.Group("")
	if r.config.Limiter != nil {
		limited.Use(middleware.RateLimit(r.config.Limiter, r.config.Metrics))
	}
	for _, h := range r.handlers {
		h.RegisterRoutes(limited)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
