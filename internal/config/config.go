package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kindredapp/kindred/internal/engine/authenticity"
	"github.com/kindredapp/kindred/internal/engine/compat"
	"github.com/kindredapp/kindred/internal/engine/moderation"
	"github.com/kindredapp/kindred/internal/engine/recommend"
)

// Config is the full application configuration, read from the environment
// with sensible defaults. Engine tunables live here too: weights and
// thresholds are data, not code.
type Config struct {
	App struct {
		ENV string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		DSN      string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	GRPC struct {
		Host string
		Port string
	}

	Engine Engine
}

// Engine groups the scoring and moderation tunables. Each engine package
// defines its own config shape with validation tags; this struct only
// aggregates them.
type Engine struct {
	Compat       compat.Config
	Moderation   moderation.Config
	Image        moderation.ImageConfig
	Authenticity authenticity.Config
	Recommend    recommend.Config
}

// New builds the configuration from environment variables.
func New() *Config {
	cfg := &Config{}

	cfg.App.ENV = getEnvDefault("APP_ENV", "development")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "kindred")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.DSN = os.Getenv("MYSQL_DSN")
	if cfg.DB.DSN == "" {
		cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
		cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
		cfg.DB.User = getEnvDefault("DB_USER", "root")
		cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
		cfg.DB.Name = getEnvDefault("DB_NAME", "kindred")

		cfg.DB.DSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
		)
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	if dbStr := getEnvDefault("REDIS_DB", "0"); dbStr != "" {
		if dbInt, err := strconv.Atoi(dbStr); err == nil {
			cfg.Redis.DB = dbInt
		}
	}

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	// Engine defaults plus the knobs most often tuned in experiments
	cfg.Engine = Engine{
		Compat:       compat.DefaultConfig(),
		Moderation:   moderation.DefaultConfig(),
		Image:        moderation.DefaultImageConfig(),
		Authenticity: authenticity.DefaultConfig(),
		Recommend:    recommend.DefaultConfig(),
	}
	overrideFloat("ENGINE_WEIGHT_INTERESTS", &cfg.Engine.Compat.Weights.Interests)
	overrideFloat("ENGINE_WEIGHT_LOCATION", &cfg.Engine.Compat.Weights.Location)
	overrideFloat("ENGINE_WEIGHT_AGE", &cfg.Engine.Compat.Weights.Age)
	overrideFloat("ENGINE_WEIGHT_PERSONALITY", &cfg.Engine.Compat.Weights.Personality)
	overrideFloat("ENGINE_WEIGHT_LIFESTYLE", &cfg.Engine.Compat.Weights.Lifestyle)
	overrideFloat("ENGINE_MIN_SCORE", &cfg.Engine.Recommend.MinScore)
	overrideFloat("ENGINE_TOXICITY_THRESHOLD", &cfg.Engine.Moderation.Toxicity)
	overrideFloat("ENGINE_SPAM_THRESHOLD", &cfg.Engine.Moderation.Spam)
	overrideFloat("ENGINE_EXPLICIT_THRESHOLD", &cfg.Engine.Moderation.Explicit)

	return cfg
}

// Validate checks the engine tunables against their validation tags. Called
// once at startup: a bad override should fail fast, not mis-score silently.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c.Engine); err != nil {
		return fmt.Errorf("invalid engine configuration: %w", err)
	}
	return nil
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}

func overrideFloat(key string, dst *float64) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
