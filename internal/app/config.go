package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/creatorhub-backend/internal/clients/redis"
	"github.com/yungbote/creatorhub-backend/internal/data/db"
	"github.com/yungbote/creatorhub-backend/internal/observability"
	"github.com/yungbote/creatorhub-backend/internal/platform/envutil"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

const (
	defaultAccessTokenTTL  = 30 * 24 * time.Hour
	defaultRefreshTokenTTL = 60 * 24 * time.Hour
	defaultJWTSecret       = "defaultsecret"
)

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type UsageConfig struct {
	DefaultLimit          int `yaml:"default_limit"`
	ScriptRefinementLimit int `yaml:"script_refinement_limit"`
}

type Config struct {
	Port               string                   `yaml:"port"`
	LogMode            string                   `yaml:"log_mode"`
	DB                 db.Config                `yaml:"db"`
	JWTSecretKey       string                   `yaml:"jwt_secret_key"`
	AccessTokenTTL     time.Duration            `yaml:"access_token_ttl"`
	RefreshTokenTTL    time.Duration            `yaml:"refresh_token_ttl"`
	Redis              redis.Config             `yaml:"redis"`
	Metrics            MetricsConfig            `yaml:"metrics"`
	Otel               observability.OtelConfig `yaml:"otel"`
	CORSAllowedOrigins []string                 `yaml:"cors_allowed_origins"`
	Usage              UsageConfig              `yaml:"usage"`
}

// LoadConfig reads the environment, then overlays the YAML file named by CONFIG_FILE.
// Keys present in the file win over the environment.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		Port:    envutil.String("PORT", "8080"),
		LogMode: envutil.String("LOG_MODE", "development"),
		DB: db.Config{
			Driver: envutil.String("DB_DRIVER", db.DialectPostgres),
			Postgres: db.PostgresConfig{
				Host:     envutil.String("POSTGRES_HOST", "localhost"),
				Port:     envutil.String("POSTGRES_PORT", "5432"),
				User:     envutil.String("POSTGRES_USER", "postgres"),
				Password: envutil.String("POSTGRES_PASSWORD", ""),
				Name:     envutil.String("POSTGRES_NAME", "creatorhub"),
				SSLMode:  envutil.String("POSTGRES_SSLMODE", "disable"),
			},
			SQLitePath: envutil.String("SQLITE_PATH", "creatorhub.db"),
		},
		JWTSecretKey:    envutil.String("JWT_SECRET_KEY", defaultJWTSecret),
		AccessTokenTTL:  envutil.Seconds("ACCESS_TOKEN_TTL", defaultAccessTokenTTL),
		RefreshTokenTTL: envutil.Seconds("REFRESH_TOKEN_TTL", defaultRefreshTokenTTL),
		Redis: redis.Config{
			Addr:     envutil.String("REDIS_ADDR", ""),
			Password: envutil.String("REDIS_PASSWORD", ""),
			DB:       envutil.Int("REDIS_DB", 0),
		},
		Metrics: MetricsConfig{
			Enabled: envutil.Bool("METRICS_ENABLED", false),
			Addr:    envutil.String("METRICS_ADDR", ":9090"),
		},
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "creatorhub"),
			Environment: envutil.String("APP_ENV", "development"),
			Version:     envutil.String("APP_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 0.1),
		},
		CORSAllowedOrigins: envutil.CSV("CORS_ALLOWED_ORIGINS", nil),
		Usage: UsageConfig{
			DefaultLimit:          envutil.Int("USAGE_LIMIT_DEFAULT", 5),
			ScriptRefinementLimit: envutil.Int("USAGE_LIMIT_SCRIPT_REFINEMENT", 10),
		},
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if log != nil {
			log.Info("Loaded config file", "path", path)
		}
	}

	if log != nil && cfg.JWTSecretKey == defaultJWTSecret {
		log.Warn("JWT_SECRET_KEY not set, using the development default")
	}
	return cfg, nil
}

func (c Config) Addr() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
