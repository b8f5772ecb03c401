package migrate

import (
	"context"
	"fmt"

	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/config"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/db"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/db/schema"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/logger"
)

// MaybeRunDev brings the schema up to date when the app is running in dev mode
// and the feature flag is enabled. Postgres runs the goose files in dir;
// SQLite is built from the model declarations.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client, dir string, obs Observer) error {
	if cfg == nil || !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}
	if client == nil {
		return fmt.Errorf("db client is required")
	}
	if dir == "" {
		dir = DefaultDir
	}
	ctx = logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"dialect": client.Dialect(),
	})

	if client.Dialect() == db.DialectSQLite {
		logg.Info(ctx, "building sqlite schema (dev auto-run)")
		if err := Observe(obs, "automigrate", func() error {
			return schema.AutoMigrate(ctx, client.DB())
		}); err != nil {
			return err
		}
		for _, table := range schema.TableNames() {
			logg.Debug(logg.WithTable(ctx, table), "table ready")
		}
		logg.Info(ctx, "sqlite schema ready")
		return nil
	}

	sqlDB, err := client.SQL()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithField(ctx, "dir", dir)
	logg.Info(ctx, "running Goose migrations (dev auto-run)")

	if err := Observe(obs, "up", func() error {
		return Run(ctx, sqlDB, dir, "up")
	}); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "Goose migrations completed")
	return nil
}
