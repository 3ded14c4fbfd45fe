package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"career-predictor/internal/predictions"
	"career-predictor/internal/projection"
	"career-predictor/internal/services/health"
	"career-predictor/internal/shared/config"
	"career-predictor/internal/shared/server"
	"career-predictor/internal/shared/server/middleware"
	"career-predictor/internal/shared/storage/db"
	"career-predictor/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	Cache              predictions.Cache
	PredictionsRepo    predictions.Repo
	PredictionsService *predictions.Service
	PredictionHandler  *predictions.Handler
	Health             *health.Service
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cache, err := buildCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	schema, err := predictions.NewSchemaValidator()
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Cache:  cache,
		Health: health.NewService(),
	}

	if sqlDB != nil {
		app.PredictionsRepo = &predictions.PGRepo{DB: sqlDB}
		app.Health.Register("database", func(ctx context.Context) error {
			return db.Ping(ctx, sqlDB, 0)
		})
	} else {
		app.PredictionsRepo = predictions.NewMemoryRepo()
	}
	app.Health.Register("cache", cache.Ping)

	app.PredictionsService = predictions.NewService(app.PredictionsRepo, cache, projection.NewProjector(time.Now), schema)
	app.PredictionHandler = predictions.NewHandler(app.PredictionsService, cfg.MaxUploadBytes)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            cfg,
		PredictionHandler: app.PredictionHandler,
		Health:            app.Health,
		Limiter:           middleware.NewRateLimiter(nil),
	})

	return app, nil
}

// Close releases pooled connections.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	if closer, ok := a.Cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}
	if a.DB != nil && !db.IsLambdaRuntime() {
		return a.DB.Close()
	}
	return nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repo", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	profile := db.RuntimeProfile()
	opts := db.OptionsFromEnv(profile)
	if profile == db.ProfileLambda {
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repo", map[string]any{"reason": "database connect failed", "error": err})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildCache(ctx context.Context, cfg config.Config) (predictions.Cache, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return predictions.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxEntries, nil), nil
	}
	redisCache, err := predictions.NewRedisCache(cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		_ = redisCache.Close()
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_cache", map[string]any{"reason": "redis unreachable", "error": err})
			return predictions.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxEntries, nil), nil
		}
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return redisCache, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}
