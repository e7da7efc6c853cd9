package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Store       string
	DatabaseURL string
	SQLitePath  string
	UILocale    string
	Timezone    string
	LogLevel    string
	LogEncoding string
	Editor      string
}

// Load reads the configuration from the environment (and an optional .env
// file) and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		Store:       strings.ToLower(strings.TrimSpace(os.Getenv("STORE"))),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  os.Getenv("SQLITE_PATH"),
		UILocale:    os.Getenv("UI_LOCALE"),
		Timezone:    os.Getenv("TIMEZONE"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		LogEncoding: os.Getenv("LOG_ENCODING"),
		Editor:      os.Getenv("PROMPT_EDITOR"),
	}
	if strings.TrimSpace(cfg.Editor) == "" {
		cfg.Editor = os.Getenv("USER")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fills defaults and checks every value.
func (c *Config) validate() error {
	switch c.Store {
	case "":
		c.Store = StorePostgres
	case StorePostgres, StoreSQLite:
	default:
		return fmt.Errorf("config: STORE must be %q or %q, got %q", StorePostgres, StoreSQLite, c.Store)
	}

	if c.Store == StorePostgres {
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Useful local default when DATABASE_URL is not provided.
			c.DatabaseURL = "postgres://localhost:5432/typeprompt?sslmode=disable"
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	if strings.TrimSpace(c.SQLitePath) == "" {
		c.SQLitePath = "typeprompt.db"
	}

	if strings.TrimSpace(c.UILocale) == "" {
		c.UILocale = "en"
	}
	if _, err := language.Parse(c.UILocale); err != nil {
		return fmt.Errorf("config: invalid UI_LOCALE (%q): %w", c.UILocale, err)
	}

	if strings.TrimSpace(c.Timezone) == "" {
		c.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: invalid TIMEZONE (%q): %w", c.Timezone, err)
	}

	return nil
}
