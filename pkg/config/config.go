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
	Redis        RedisConfig
	JWT          JWTConfig
	Crypto       CryptoConfig
	Media        MediaConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STITCHKART_APP_ENV" required:"true"`
	Port         string `envconfig:"STITCHKART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STITCHKART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STITCHKART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STITCHKART_DB_DSN"`
	Driver string `envconfig:"STITCHKART_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"STITCHKART_DB_HOST"`
	LegacyPort     int    `envconfig:"STITCHKART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"STITCHKART_DB_USER"`
	LegacyPassword string `envconfig:"STITCHKART_DB_PASSWORD"`
	LegacyName     string `envconfig:"STITCHKART_DB_NAME"`
	LegacySSLMode  string `envconfig:"STITCHKART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STITCHKART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STITCHKART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STITCHKART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STITCHKART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STITCHKART_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STITCHKART_REDIS_ADDR"`
	Password     string        `envconfig:"STITCHKART_REDIS_PASSWORD"`
	DB           int           `envconfig:"STITCHKART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STITCHKART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STITCHKART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STITCHKART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STITCHKART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STITCHKART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"STITCHKART_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"STITCHKART_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"STITCHKART_JWT_EXPIRATION_MINUTES" required:"true"`
}

// CryptoConfig holds the shared secret for the payload envelope. The storefront
// must be configured with the same 32-character value or every decode fails.
type CryptoConfig struct {
	Secret string `envconfig:"STITCHKART_CRYPTO_SECRET" required:"true"`
}

type MediaConfig struct {
	MaxUploadMB int    `envconfig:"STITCHKART_MAX_UPLOAD_MB" default:"50"`
	UploadDir   string `envconfig:"STITCHKART_MEDIA_UPLOAD_DIR" default:"uploads/reviews"`
	PublicBase  string `envconfig:"STITCHKART_MEDIA_PUBLIC_BASE" default:"/media/reviews"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"STITCHKART_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"STITCHKART_AUTO_MIGRATE" default:"false"`
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
