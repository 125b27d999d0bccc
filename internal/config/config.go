// Package config reads the console settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"pehlione.com/catalogadmin/internal/storage"
)

type Config struct {
	Addr string `env:"ADDR" envDefault:":8080"`

	BackendURL     string        `env:"BACKEND_URL" envDefault:"http://localhost:48080"`
	AdminAPIBase   string        `env:"ADMIN_API_BASE" envDefault:"/api-admin"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"30s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	// TokenStore is file, mysql or sqlite.
	TokenStore string `env:"TOKEN_STORE" envDefault:"file"`
	TokenFile  string `env:"TOKEN_FILE" envDefault:"./storage/tokens.json"`
	DBDSN      string `env:"DB_DSN"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"./storage/console.db"`

	Storage storage.Config `envPrefix:"STORAGE_"`
}

// Load reads .env files (missing ones are ignored) and then the process
// environment.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// APIBaseURL joins the backend origin and the admin api prefix.
func (c Config) APIBaseURL() string {
	base := strings.TrimRight(c.BackendURL, "/")
	prefix := strings.Trim(c.AdminAPIBase, "/")
	if prefix == "" {
		return base
	}
	return base + "/" + prefix
}

func (c Config) validate() error {
	switch c.TokenStore {
	case "file", "sqlite":
	case "mysql":
		if c.DBDSN == "" {
			return fmt.Errorf("DB_DSN is required when TOKEN_STORE=mysql")
		}
	default:
		return fmt.Errorf("unknown TOKEN_STORE: %s", c.TokenStore)
	}
	if c.BackendTimeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}
	return nil
}
