package config

const (
	EnvPrefix = "TDAH"

	AppEnvDev  = "dev"
	AppEnvTest = "test"
	AppEnvProd = "prod"

	EnvAppEnv       = "TDAH_APP_ENV"
	EnvLogLevel     = "TDAH_LOG_LEVEL"
	EnvDBDSN        = "TDAH_DB_DSN"
	EnvDBHost       = "TDAH_DB_HOST"
	EnvDBPort       = "TDAH_DB_PORT"
	EnvDBUser       = "TDAH_DB_USER"
	EnvDBPassword   = "TDAH_DB_PASSWORD"
	EnvDBName       = "TDAH_DB_NAME"
	EnvDBSQLitePath = "TDAH_DB_SQLITE_PATH"
	EnvUseSQLite    = "TDAH_USE_SQLITE"
	EnvAutoMigrate  = "TDAH_AUTO_MIGRATE"
	EnvPushgateway  = "TDAH_METRICS_PUSHGATEWAY_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
