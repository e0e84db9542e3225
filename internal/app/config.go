package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime wiring options for building the app.
//
// Every field can be set from the environment; CLI flags override it.
type Config struct {
	// Home is beammm's own directory (default: <local data dir>/BeamMM)
	Home string `env:"BEAMMM_HOME"`

	// DataDir is the game's data directory (default: discovered)
	DataDir string `env:"BEAMMM_DATA_DIR"`

	// LogLevel is one of debug, info, warn, error (default: warn)
	LogLevel string `env:"BEAMMM_LOG_LEVEL" envDefault:"warn"`

	// LogFormat is text or json (default: text)
	LogFormat string `env:"BEAMMM_LOG_FORMAT" envDefault:"text"`

	// AssumeYes answers yes to every confirmation prompt
	AssumeYes bool `env:"BEAMMM_ASSUME_YES"`
}

// LoadConfig reads the optional dotenv files (".env" when none are given)
// into the process environment and then parses Config from it. Missing
// dotenv files are skipped; variables already set are not overridden.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects unknown log levels and formats.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}
