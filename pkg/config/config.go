package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	FeatureFlags FeatureFlagsConfig
	Metrics      MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		return &cfg, nil
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TDAH_APP_ENV" required:"true"`
	LogLevel     string `envconfig:"TDAH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TDAH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

func (a AppConfig) IsTest() bool {
	return strings.EqualFold(a.Env, AppEnvTest)
}

type DBConfig struct {
	DSN        string `envconfig:"TDAH_DB_DSN"`
	SQLitePath string `envconfig:"TDAH_DB_SQLITE_PATH" default:"file:tdah.db?_fk=1"`

	LegacyHost     string `envconfig:"TDAH_DB_HOST"`
	LegacyPort     int    `envconfig:"TDAH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"TDAH_DB_USER"`
	LegacyPassword string `envconfig:"TDAH_DB_PASSWORD"`
	LegacyName     string `envconfig:"TDAH_DB_NAME"`
	LegacySSLMode  string `envconfig:"TDAH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TDAH_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"TDAH_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"TDAH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TDAH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"TDAH_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"TDAH_AUTO_MIGRATE" default:"false"`
}

// MetricsConfig points migration runs at an optional Prometheus Pushgateway.
type MetricsConfig struct {
	PushgatewayURL string `envconfig:"TDAH_METRICS_PUSHGATEWAY_URL"`
	Job            string `envconfig:"TDAH_METRICS_JOB" default:"tdah_migrate"`
}

// PushEnabled reports whether metrics should be pushed after a run.
func (m MetricsConfig) PushEnabled() bool {
	return strings.TrimSpace(m.PushgatewayURL) != ""
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
