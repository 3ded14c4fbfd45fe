package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver

	"career-predictor/internal/shared/telemetry"
)

// Profile names a pool sizing preset.
type Profile string

const (
	ProfileServer  Profile = "server"
	ProfileLambda  Profile = "lambda"
	ProfileMigrate Profile = "migrate"
)

// Options controls pool sizing and the connect-time ping.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

var profileDefaults = map[Profile]Options{
	// Lambda runs one request per sandbox, so keep the pool tiny.
	ProfileLambda: {
		MaxOpenConns:    2,
		MaxIdleConns:    1,
		ConnMaxLifetime: 15 * time.Minute,
		ConnMaxIdleTime: 30 * time.Second,
		PingTimeout:     3 * time.Second,
	},
	ProfileServer: {
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 2 * time.Minute,
		PingTimeout:     5 * time.Second,
	},
	ProfileMigrate: {
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 2 * time.Minute,
		PingTimeout:     5 * time.Second,
	},
}

// ErrNoDatabaseURL is returned by Connect when no URL is configured.
var ErrNoDatabaseURL = errors.New("DATABASE_URL is empty")

var (
	openDB    = sql.Open
	singleton struct {
		mu sync.Mutex
		db *sql.DB
	}
)

// IsLambdaRuntime reports whether the process runs inside AWS Lambda.
func IsLambdaRuntime() bool {
	return strings.TrimSpace(os.Getenv("AWS_LAMBDA_FUNCTION_NAME")) != ""
}

// RuntimeProfile picks the lambda or server preset for the current process.
func RuntimeProfile() Profile {
	if IsLambdaRuntime() {
		return ProfileLambda
	}
	return ProfileServer
}

// DefaultOptions returns the preset for p; unknown profiles get the server preset.
func DefaultOptions(p Profile) Options {
	if opts, ok := profileDefaults[p]; ok {
		return opts
	}
	return profileDefaults[ProfileServer]
}

type envOverride struct {
	key   string
	apply func(o *Options, raw string) error
}

var envOverrides = []envOverride{
	{"DB_MAX_OPEN_CONNS", intSetter(func(o *Options, v int) { o.MaxOpenConns = v })},
	{"DB_MAX_IDLE_CONNS", intSetter(func(o *Options, v int) { o.MaxIdleConns = v })},
	{"DB_CONN_MAX_LIFETIME", durationSetter(func(o *Options, v time.Duration) { o.ConnMaxLifetime = v })},
	{"DB_CONN_MAX_IDLE_TIME", durationSetter(func(o *Options, v time.Duration) { o.ConnMaxIdleTime = v })},
	{"DB_PING_TIMEOUT", durationSetter(func(o *Options, v time.Duration) { o.PingTimeout = v })},
}

// OptionsFromEnv layers DB_* environment overrides onto p's preset.
// Unparseable values are logged and ignored.
func OptionsFromEnv(p Profile) Options {
	opts := DefaultOptions(p)
	for _, ov := range envOverrides {
		raw := strings.TrimSpace(os.Getenv(ov.key))
		if raw == "" {
			continue
		}
		if err := ov.apply(&opts, raw); err != nil {
			telemetry.Warn("db.env_invalid", map[string]any{"key": ov.key, "error": err})
		}
	}
	return opts
}

func intSetter(set func(*Options, int)) func(*Options, string) error {
	return func(o *Options, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		set(o, v)
		return nil
	}
}

func durationSetter(set func(*Options, time.Duration)) func(*Options, string) error {
	return func(o *Options, raw string) error {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		set(o, v)
		return nil
	}
}

// Connect opens a pgx-backed pool and pings it. Callers share the result.
func Connect(ctx context.Context, databaseURL string, opts Options) (*sql.DB, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, ErrNoDatabaseURL
	}

	database, err := openDB("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	configurePool(database, opts)

	if err := Ping(ctx, database, opts.PingTimeout); err != nil {
		database.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	stats := database.Stats()
	telemetry.Info("db.connected", map[string]any{
		"max_open": stats.MaxOpenConnections,
		"open":     stats.OpenConnections,
		"idle":     stats.Idle,
	})
	return database, nil
}

// GetSingleton returns the process-wide pool, connecting on first use.
// Concurrent callers wait for the in-flight attempt; a failed attempt is
// retried by the next call.
func GetSingleton(ctx context.Context, databaseURL string, opts Options) (*sql.DB, error) {
	singleton.mu.Lock()
	defer singleton.mu.Unlock()
	if singleton.db != nil {
		return singleton.db, nil
	}
	database, err := Connect(ctx, databaseURL, opts)
	if err != nil {
		return nil, err
	}
	singleton.db = database
	telemetry.Info("db.singleton_init", nil)
	return database, nil
}

func configurePool(database *sql.DB, opts Options) {
	fallback := profileDefaults[ProfileServer]
	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = fallback.MaxOpenConns
	}
	if opts.MaxIdleConns <= 0 {
		opts.MaxIdleConns = fallback.MaxIdleConns
	}
	if opts.ConnMaxLifetime <= 0 {
		opts.ConnMaxLifetime = fallback.ConnMaxLifetime
	}
	database.SetMaxOpenConns(opts.MaxOpenConns)
	database.SetMaxIdleConns(opts.MaxIdleConns)
	database.SetConnMaxLifetime(opts.ConnMaxLifetime)
	if opts.ConnMaxIdleTime > 0 {
		database.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}
}

// Ping checks connectivity within timeout (2s when unset).
func Ping(ctx context.Context, database *sql.DB, timeout time.Duration) error {
	if database == nil {
		return fmt.Errorf("database not configured")
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return database.PingContext(pingCtx)
}
