package config

const EnvPrefix = "INVENTORY"

const (
	EnvAppEnv       = "INVENTORY_APP_ENV"
	EnvPort         = "PORT"
	EnvLogLevel     = "INVENTORY_LOG_LEVEL"
	EnvDatabaseURI  = "DATABASE_URI"
	EnvDBDriver     = "INVENTORY_DB_DRIVER"
	EnvAutoMigrate  = "INVENTORY_AUTO_MIGRATE"
	EnvCORSOrigins  = "INVENTORY_CORS_ORIGINS"
	EnvShutdownWait = "INVENTORY_SHUTDOWN_TIMEOUT"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)
