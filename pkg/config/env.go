package config

const (
	EnvPrefix = "stitchkart"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv       = "STITCHKART_APP_ENV"
	EnvPort         = "STITCHKART_APP_PORT"
	EnvRedisURL     = "STITCHKART_REDIS_URL"
	EnvJWTSecret    = "STITCHKART_JWT_SECRET"
	EnvJWTIssuer    = "STITCHKART_JWT_ISSUER"
	EnvJWTExpMins   = "STITCHKART_JWT_EXPIRATION_MINUTES"
	EnvCryptoSecret = "STITCHKART_CRYPTO_SECRET"

	EnvDBDSN  = "STITCHKART_DB_DSN"
	EnvDBHost = "STITCHKART_DB_HOST"
	EnvDBUser = "STITCHKART_DB_USER"
	EnvDBName = "STITCHKART_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
