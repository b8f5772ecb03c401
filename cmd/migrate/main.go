package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/config"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/db"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/db/schema"
	pkgerrors "github.com/MathieuSchaff/tdah-habit-tracket/pkg/errors"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/logger"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/metrics"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/migrate"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	// Flags
	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|create|validate|schema|automigrate")
	dir := flag.String("dir", migrate.DefaultDir, "goose migrations directory")

	// Command-specific flags
	name := flag.String("name", "", "migration name (for create)")
	version := flag.String("version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version; empty prints the current version")
	dialect := flag.String("dialect", db.DialectPostgres, "dialect to describe for -cmd=schema: postgres|sqlite")

	flag.Parse()

	opts := options{
		cmd:     *cmd,
		dir:     *dir,
		name:    *name,
		version: *version,
		dialect: *dialect,
	}

	// create, validate and schema work without a database or TDAH_* env.
	if handled, err := runOffline(opts); handled {
		if err != nil {
			logg.Error(logg.WithField(ctx, "error_dump", pkgerrors.Dump(err)), "migrate failed", err)
			os.Exit(exitCode(err))
		}
		return
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx = logg.WithFields(context.Background(), map[string]any{
		"env": cfg.App.Env,
		"cmd": *cmd,
		"dir": *dir,
	})

	registry := prometheus.NewRegistry()
	observer := metrics.NewMigrationMetrics(registry)

	runErr := run(ctx, logg, cfg, observer, opts)

	if err := metrics.Push(ctx, cfg.Metrics, registry); err != nil {
		logg.Warn(logg.WithField(ctx, "error", err.Error()), "metrics push failed")
	}

	if runErr != nil {
		logg.Error(logg.WithField(ctx, "error_dump", pkgerrors.Dump(runErr)), "migrate failed", runErr)
		os.Exit(exitCode(runErr))
	}
}

// exitTempFail is EX_TEMPFAIL from sysexits.h: the failure may clear up on
// its own, so a supervisor can retry the same invocation.
const exitTempFail = 75

// exitCode maps a failure to the process status. Only errors whose code is
// marked retryable get exitTempFail; everything else needs a human.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if typed := pkgerrors.As(err); typed != nil && pkgerrors.MetadataFor(typed.Code()).Retryable {
		return exitTempFail
	}
	return 1
}

type options struct {
	cmd     string
	dir     string
	name    string
	version string
	dialect string
}

// runOffline executes the commands that need neither config nor a database.
// handled is false for every other command.
func runOffline(opts options) (handled bool, err error) {
	switch opts.cmd {
	case "create":
		if opts.name == "" {
			return true, pkgerrors.New(pkgerrors.CodeValidation, "missing -name for create")
		}
		path, err := migrate.CreateSQLMigration(opts.dir, opts.name)
		if err != nil {
			return true, fmt.Errorf("create migration: %w", err)
		}
		fmt.Println("created migration:", path)
		return true, nil

	case "validate":
		if err := migrate.ValidateDir(opts.dir); err != nil {
			return true, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "migration validation failed")
		}
		fmt.Println("migration validation passed")
		return true, nil

	case "schema":
		return true, printSchema(opts.dialect)
	}
	return false, nil
}

func run(ctx context.Context, logg *logger.Logger, cfg *config.Config, observer migrate.Observer, opts options) error {
	if handled, err := runOffline(opts); handled {
		return err
	}

	dbClient, err := db.Open(ctx, cfg, logg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resource not working: database")
	}
	defer dbClient.Close()

	ctx = logg.WithField(ctx, "dialect", dbClient.Dialect())

	if opts.cmd == "automigrate" {
		if dbClient.Dialect() != db.DialectSQLite {
			return pkgerrors.New(pkgerrors.CodeValidation, "automigrate only builds sqlite databases; use -cmd=up for postgres")
		}
		if err := migrate.Observe(observer, opts.cmd, func() error {
			return schema.AutoMigrate(ctx, dbClient.DB())
		}); err != nil {
			return err
		}
		logg.Info(ctx, "sqlite schema ready")
		return nil
	}

	if dbClient.Dialect() != db.DialectPostgres {
		return pkgerrors.New(pkgerrors.CodeValidation, "goose migrations target postgres; use -cmd=automigrate for sqlite")
	}

	sqlDB, err := dbClient.SQL()
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resource not working: sql database")
	}

	logg.Info(ctx, "migrate ready")

	switch opts.cmd {
	case "up", "down", "status":
		return migrate.Observe(observer, opts.cmd, func() error {
			return migrate.Run(ctx, sqlDB, opts.dir, opts.cmd)
		})

	case "version":
		if opts.version == "" {
			current, err := migrate.Version(ctx, sqlDB)
			if err != nil {
				return err
			}
			fmt.Println(current)
			return nil
		}
		return migrate.Observe(observer, opts.cmd, func() error {
			return migrate.MigrateToVersion(ctx, sqlDB, opts.dir, opts.version)
		})
	}

	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown -cmd value: %s", opts.cmd))
}

// printSchema writes the declared tables for dialect as JSON without
// connecting to a database.
func printSchema(dialect string) error {
	var dialector gorm.Dialector
	switch dialect {
	case db.DialectPostgres:
		dialector = postgres.New(postgres.Config{DSN: "postgres://offline@localhost/offline"})
	case db.DialectSQLite:
		dialector = sqlite.Open("file::memory:")
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown dialect %q", dialect))
	}

	conn, err := gorm.Open(dialector, &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		return fmt.Errorf("opening %s dialect: %w", dialect, err)
	}
	if sqlDB, err := conn.DB(); err == nil {
		defer sqlDB.Close()
	}

	tables, err := schema.Inspect(conn)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(tables)
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
