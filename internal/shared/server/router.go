package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"career-predictor/internal/predictions"
	"career-predictor/internal/services/health"
	"career-predictor/internal/shared/config"
	"career-predictor/internal/shared/metrics"
	"career-predictor/internal/shared/server/middleware"
	"career-predictor/internal/shared/server/respond"
)

// RouterDeps bundles the handlers mounted by NewRouter.
type RouterDeps struct {
	Config            config.Config
	PredictionHandler *predictions.Handler
	Health            *health.Service
	Limiter           *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env != "test" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.ClientID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(ratePolicy(deps.Config), deps.Limiter),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	r.GET("/metrics", metrics.Handler())
	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		report := healthSvc.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})
	if deps.PredictionHandler != nil {
		deps.PredictionHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

func ratePolicy(cfg config.Config) middleware.RatePolicy {
	return middleware.RatePolicy{
		Analyze:       middleware.Budget{Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
		AnalyzeRoutes: []string{"/api/v1/analyze", "/api/v1/analyze/upload", "/api/v1/extract"},
		ExemptRoutes:  []string{"/api/v1/health", "/metrics"},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
