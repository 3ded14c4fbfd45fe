package main

// Run database migrations:
//   go run ./cmd/migrate

import (
	"context"
	"os"

	"career-predictor/internal/shared/config"
	"career-predictor/internal/shared/storage/db"
	"career-predictor/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.ProfileMigrate)
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err})
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err})
		os.Exit(1)
	}
	version, err := db.MigrationVersion(ctx, sqlDB)
	if err != nil {
		telemetry.Warn("migrate.version_unknown", map[string]any{"error": err})
		return
	}
	telemetry.Info("migrate.done", map[string]any{"version": version})
}
