package config

const (
	// EnvPrefix namespaces every environment variable this service reads.
	EnvPrefix = "RATINGS"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv     = "RATINGS_APP_ENV"
	EnvPort       = "RATINGS_APP_PORT"
	EnvDBDSN      = "RATINGS_DB_DSN"
	EnvDBHost     = "RATINGS_DB_HOST"
	EnvDBUser     = "RATINGS_DB_USER"
	EnvDBName     = "RATINGS_DB_NAME"
	EnvRedisURL   = "RATINGS_REDIS_URL"
	EnvJWTSecret  = "RATINGS_JWT_SECRET"
	EnvJWTIssuer  = "RATINGS_JWT_ISSUER"
	EnvJWTExpMins = "RATINGS_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
