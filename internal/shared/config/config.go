package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds application configuration.
type Config struct {
	Port             string `env:"PORT" env-default:"8080"`
	Env              string `env:"ENV" env-default:"dev"`
	DatabaseURL      string `env:"DATABASE_URL" env-default:""`
	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" env-default:"http://localhost:5173"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	cfg.Env = normalizeEnv(cfg.Env)
	if cfg.Env == "production" && strings.TrimSpace(cfg.DatabaseURL) == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required in production")
	}
	return cfg, nil
}

// AllowedOrigins returns the CORS origin allowlist.
func (c Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSAllowOrigins, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// IsDevLike reports whether the environment tolerates running without a database.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
