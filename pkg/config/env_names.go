package config

// EnvPrefix is empty because every field names its variable explicitly.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "PEDILO_APP_ENV"
	EnvPort     = "PEDILO_APP_PORT"
	EnvRedisURL = "PEDILO_REDIS_URL"

	EnvDBDSN  = "PEDILO_DB_DSN"
	EnvDBHost = "PEDILO_DB_HOST"
	EnvDBUser = "PEDILO_DB_USER"
	EnvDBName = "PEDILO_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
