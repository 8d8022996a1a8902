package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName  string        `env:"SERVICE_NAME" envDefault:"launchpad"`
	HTTPPort     string        `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN  string        `env:"POSTGRES_DSN"`
	JWTSecret    string        `env:"JWT_SECRET,required,notEmpty"`
	AppEnv       string        `env:"APP_ENV" envDefault:"development"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	AutoMigrate  bool          `env:"AUTO_MIGRATE" envDefault:"false"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	return LoadFiles(".env")
}

func LoadFiles(files ...string) (Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if cfg.StoreTimeout <= 0 {
		return Config{}, fmt.Errorf("STORE_TIMEOUT must be positive, got %s", cfg.StoreTimeout)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	return cfg, nil
}

// Production reports whether cookies must be marked Secure.
func (c Config) Production() bool {
	return c.AppEnv == "production"
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
