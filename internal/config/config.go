// Package config loads service settings from the environment, optionally seeded
// from a .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET is required")
	ErrInvalidLogLevel  = errors.New("LOG_LEVEL must be one of debug, info, warn, error")
	ErrInvalidLogFormat = errors.New("LOG_FORMAT must be json or console")
)

type Config struct {
	Port string

	DB        DBConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig

	InsightsCacheTTL time.Duration
	DefaultCurrency  string
	RunMigrations    bool
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
	// Enabled=false keeps every record in process memory.
	Enabled bool
}

// DSN renders a postgres URL understood by both pgx and lib/pq.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "kanso_user")
	v.SetDefault("DB_NAME", "kanso_db")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("DB_ENABLED", true)

	v.SetDefault("REDIS_ENABLED", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_ISSUER", "kanso-finance")
	v.SetDefault("JWT_TTL", "24h")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("RATE_LIMIT", 100)
	v.SetDefault("RATE_WINDOW", "1m")

	v.SetDefault("INSIGHTS_CACHE_TTL", "10m")
	v.SetDefault("DEFAULT_CURRENCY", "USD")
}

// Load reads envFiles (missing files are ignored) and then the process environment,
// which wins over file values.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port: v.GetString("PORT"),
		DB: DBConfig{
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			Enabled:  v.GetBool("DB_ENABLED"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			Enabled:  v.GetBool("REDIS_ENABLED"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			Issuer:    v.GetString("JWT_ISSUER"),
			TokenTTL:  v.GetDuration("JWT_TTL"),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		RateLimit: RateLimitConfig{
			Limit:  v.GetInt("RATE_LIMIT"),
			Window: v.GetDuration("RATE_WINDOW"),
		},
		InsightsCacheTTL: v.GetDuration("INSIGHTS_CACHE_TTL"),
		DefaultCurrency:  strings.ToUpper(v.GetString("DEFAULT_CURRENCY")),
		RunMigrations:    v.GetBool("DB_MIGRATE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.RateLimit.Limit < 1 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("invalid rate limit %d per %s", c.RateLimit.Limit, c.RateLimit.Window)
	}
	return nil
}
