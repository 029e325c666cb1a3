package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/Owhab/nexacms-sub002/internal/data/db"
	"github.com/Owhab/nexacms-sub002/internal/observability"
	"github.com/Owhab/nexacms-sub002/internal/platform/envutil"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

const defaultJWTSecret = "defaultsecret"

type Config struct {
	LogMode  string `validate:"oneof=development prod production test"`
	HTTPAddr string `validate:"required"`

	DB db.Config

	JWTSecretKey   string        `validate:"required,min=8"`
	AccessTokenTTL time.Duration `validate:"gt=0"`

	RedisAddr     string
	RedisPassword string
	RedisDB       int           `validate:"gte=0"`
	NavCacheTTL   time.Duration `validate:"gte=0"`

	CORSAllowedOrigins []string
	MediaPolicyFile    string
	FFProbePath        string

	Otel observability.OtelConfig
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig(log *logger.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("Could not read .env file", "error", err)
	}

	cfg := Config{
		LogMode:  envutil.String("LOG_MODE", "development", log),
		HTTPAddr: envutil.String("HTTP_ADDR", ":8080", log),
		DB: db.Config{
			Driver:     envutil.String("DB_DRIVER", db.DriverPostgres, log),
			Host:       envutil.String("POSTGRES_HOST", "localhost", log),
			Port:       envutil.String("POSTGRES_PORT", "5432", log),
			User:       envutil.String("POSTGRES_USER", "postgres", log),
			Password:   envutil.String("POSTGRES_PASSWORD", "", log),
			Name:       envutil.String("POSTGRES_NAME", "nexacms", log),
			SSLMode:    envutil.String("POSTGRES_SSLMODE", "disable", log),
			SQLitePath: envutil.String("SQLITE_PATH", "nexacms.db", log),
		},
		JWTSecretKey:       envutil.String("JWT_SECRET_KEY", defaultJWTSecret, log),
		AccessTokenTTL:     envutil.Seconds("ACCESS_TOKEN_TTL", time.Hour, log),
		RedisAddr:          envutil.String("REDIS_ADDR", "", log),
		RedisPassword:      envutil.String("REDIS_PASSWORD", "", log),
		RedisDB:            envutil.Int("REDIS_DB", 0, log),
		NavCacheTTL:        envutil.Seconds("NAV_CACHE_TTL", 5*time.Minute, log),
		CORSAllowedOrigins: envutil.List("CORS_ALLOWED_ORIGINS", nil),
		MediaPolicyFile:    envutil.String("HERO_MEDIA_POLICY_FILE", "", log),
		FFProbePath:        envutil.String("FFPROBE_PATH", "ffprobe", log),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "nexacms-api", log),
			Environment: envutil.String("OTEL_ENVIRONMENT", "development", log),
			Version:     envutil.String("OTEL_SERVICE_VERSION", "dev", log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Headers:     observability.ParseHeaders(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 1, log),
		},
	}
	if cfg.JWTSecretKey == defaultJWTSecret {
		log.Warn("JWT_SECRET_KEY is not set; using the development default")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
