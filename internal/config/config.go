package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Settings for one run. Command-line flags may override them.
type Settings struct {
	CeilingMinutes int
	LogLevel       zerolog.Level
	Store          string // "", "sqlite" or "postgres"
	DBPath         string
	DatabaseURL    string
}

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads .env into the environment if the file exists. The error is
// returned rather than logged so callers can report it once the log level is set.
func LoadEnv() error {
	return godotenv.Load()
}

// ReportEnv logs the outcome of LoadEnv at debug level.
func ReportEnv(err error) {
	if err != nil {
		log.Debug().Msg("no .env file found (using environment variables)")
	}
}

// Overrides are values given on the command line. A non-nil field replaces
// the matching env var, which is then neither read nor validated.
type Overrides struct {
	CeilingMinutes *int
	Store          *string
}

// Load builds Settings from the environment and applies o on top.
func Load(o Overrides) (Settings, error) {
	var ceiling int
	if o.CeilingMinutes != nil {
		ceiling = *o.CeilingMinutes
	} else {
		v, err := strconv.Atoi(Get("ADMISSION_CEILING_MINUTES", "20"))
		if err != nil {
			return Settings{}, fmt.Errorf("config: ADMISSION_CEILING_MINUTES: %w", err)
		}
		ceiling = v
	}
	if ceiling < 0 {
		return Settings{}, fmt.Errorf("config: ceiling must not be negative, got %d", ceiling)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(Get("LOG_LEVEL", "info")))
	if err != nil {
		return Settings{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}

	store := os.Getenv("DECISION_STORE")
	if o.Store != nil {
		store = *o.Store
	}
	store = strings.ToLower(strings.TrimSpace(store))
	if err := ValidateStore(store); err != nil {
		return Settings{}, err
	}

	return Settings{
		CeilingMinutes: ceiling,
		LogLevel:       level,
		Store:          store,
		DBPath:         Get("DB_PATH", "data/decisions.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
	}, nil
}

// ValidateStore accepts the supported decision store names.
func ValidateStore(store string) error {
	switch store {
	case "", "sqlite", "postgres":
		return nil
	}
	return fmt.Errorf("config: unknown decision store %q (want sqlite or postgres)", store)
}
