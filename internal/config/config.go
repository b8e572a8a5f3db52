package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Env var names read at startup.
const (
	EnvBackendURL    = "NEWSDIGEST_BACKEND_URL"
	EnvSessionCookie = "NEWSDIGEST_SESSION_COOKIE"
	EnvLogFile       = "NEWSDIGEST_LOG_FILE"
)

const defaultBackendURL = "http://localhost:8000/api"

// Config is the startup configuration resolved from flags, an optional
// .env file, and the environment.
type Config struct {
	BackendURL    string
	SessionCookie string
	LogFile       string
}

// Load resolves the configuration. envFile is loaded first when non-empty
// (missing file is an error; a missing default ".env" is not).
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		// Best effort: pick up a local .env when present.
		_ = godotenv.Load()
	}

	cfg := &Config{
		BackendURL:    os.Getenv(EnvBackendURL),
		SessionCookie: os.Getenv(EnvSessionCookie),
		LogFile:       os.Getenv(EnvLogFile),
	}
	if cfg.BackendURL == "" {
		cfg.BackendURL = defaultBackendURL
	}
	if cfg.LogFile == "" {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		cfg.LogFile = filepath.Join(dir, "newsdigest.log")
	}
	return cfg, nil
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "newsdigest"), nil
}
