package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Seed          SeedConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"RATINGS_APP_ENV" required:"true"`
	Port         string `envconfig:"RATINGS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"RATINGS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RATINGS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"RATINGS_DB_DSN"`
	Driver string `envconfig:"RATINGS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"RATINGS_DB_HOST"`
	LegacyPort     int    `envconfig:"RATINGS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"RATINGS_DB_USER"`
	LegacyPassword string `envconfig:"RATINGS_DB_PASSWORD"`
	LegacyName     string `envconfig:"RATINGS_DB_NAME"`
	LegacySSLMode  string `envconfig:"RATINGS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"RATINGS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RATINGS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RATINGS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RATINGS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional; auth rate limiting is disabled when no URL or
// address is configured.
type RedisConfig struct {
	URL          string        `envconfig:"RATINGS_REDIS_URL"`
	Address      string        `envconfig:"RATINGS_REDIS_ADDR"`
	Password     string        `envconfig:"RATINGS_REDIS_PASSWORD"`
	DB           int           `envconfig:"RATINGS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RATINGS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RATINGS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RATINGS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RATINGS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RATINGS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint is configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"RATINGS_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"RATINGS_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"RATINGS_JWT_EXPIRATION_MINUTES" default:"1440"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"RATINGS_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"RATINGS_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"RATINGS_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"RATINGS_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"RATINGS_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"RATINGS_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"RATINGS_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"RATINGS_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"RATINGS_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"RATINGS_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"RATINGS_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

// SeedConfig drives the idempotent bootstrap of the platform admin and the
// demo owner account.
type SeedConfig struct {
	AdminName     string `envconfig:"RATINGS_SEED_ADMIN_NAME" default:"Default Platform Administrator User"`
	AdminEmail    string `envconfig:"RATINGS_SEED_ADMIN_EMAIL" default:"admin@example.com"`
	AdminAddress  string `envconfig:"RATINGS_SEED_ADMIN_ADDRESS" default:"Admin Address"`
	AdminPassword string `envconfig:"RATINGS_SEED_ADMIN_PASSWORD" default:"Admin@123"`

	OwnerName     string `envconfig:"RATINGS_SEED_OWNER_NAME" default:"Default Demo Store Owner Account"`
	OwnerEmail    string `envconfig:"RATINGS_SEED_OWNER_EMAIL" default:"owner@example.com"`
	OwnerAddress  string `envconfig:"RATINGS_SEED_OWNER_ADDRESS" default:"Owner Address"`
	OwnerPassword string `envconfig:"RATINGS_SEED_OWNER_PASSWORD" default:"Owner@123"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"RATINGS_AUTO_MIGRATE" default:"false"`
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
