// Package config loads application configuration from environment
// variables. All variables use the ADAPTUTOR_ prefix; a .env file in
// the working directory is honored when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	// BankPath is the question bank CSV.
	BankPath string

	// ModelPath is the trained difficulty-model artifact. Optional:
	// without it sessions run with recommendations omitted.
	ModelPath string

	// ProgressPath is the append-only session summary CSV.
	ProgressPath string

	// DBPath is the SQLite event log.
	DBPath string

	// LogPath is the application log file.
	LogPath string

	// Seed is the question sampling seed. Zero selects a fresh
	// time-derived seed per session.
	Seed int64

	// Debug enables debug-level logging.
	Debug bool
}

// Load reads configuration from the environment, applying XDG-based
// defaults for anything unset. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}
	stateDir, err := defaultStateDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BankPath:     envOr("ADAPTUTOR_BANK", filepath.Join(dataDir, "bank.csv")),
		ModelPath:    envOr("ADAPTUTOR_MODEL", filepath.Join(dataDir, "quiz_model.json")),
		ProgressPath: envOr("ADAPTUTOR_PROGRESS", filepath.Join(dataDir, "progress.csv")),
		DBPath:       envOr("ADAPTUTOR_DB", filepath.Join(dataDir, "adaptutor.db")),
		LogPath:      envOr("ADAPTUTOR_LOG", filepath.Join(stateDir, "adaptutor.log")),
		Seed:         1,
		Debug:        os.Getenv("ADAPTUTOR_DEBUG") != "",
	}

	if v := os.Getenv("ADAPTUTOR_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADAPTUTOR_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultDataDir resolves $XDG_DATA_HOME/adaptutor, falling back to
// ~/.local/share/adaptutor.
func defaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "adaptutor"), nil
}

// defaultStateDir resolves $XDG_STATE_HOME/adaptutor, falling back to
// ~/.local/state/adaptutor.
func defaultStateDir() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "adaptutor"), nil
}
