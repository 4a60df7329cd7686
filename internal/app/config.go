package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"milsabores/internal/logging"
)

// Preference backends.
const (
	PrefsJSON   = "json"
	PrefsSQLite = "sqlite"
	PrefsMemory = "memory"
)

// Environment variables read by LoadEnv.
const (
	EnvHome      = "MILSABORES_HOME"
	EnvUsersFile = "MILSABORES_USERS_FILE"
	EnvPrefs     = "MILSABORES_PREFS"
	EnvLogLevel  = "MILSABORES_LOG_LEVEL"
	EnvLogJSON   = "MILSABORES_LOG_JSON"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home         string // data directory, e.g. $HOME/.milsabores
	UsersFile    string // optional; defaults to <Home>/database/Usuarios.json
	PrefsBackend string // json, sqlite or memory
	LogLevel     string // debug, info, warn or error
	LogJSON      bool   // JSON log lines instead of console output
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	home := ".milsabores"
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".milsabores")
	}
	return Config{
		Home:         home,
		PrefsBackend: PrefsJSON,
		LogLevel:     "warn",
	}
}

// LoadEnv loads the given .env files that exist (never overriding variables
// already set in the process) and then overlays MILSABORES_* variables.
func (c *Config) LoadEnv(files ...string) error {
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) > 0 {
		if err := godotenv.Load(present...); err != nil {
			return fmt.Errorf("load env files: %w", err)
		}
	}

	if v := os.Getenv(EnvHome); v != "" {
		c.Home = v
	}
	if v := os.Getenv(EnvUsersFile); v != "" {
		c.UsersFile = v
	}
	if v := os.Getenv(EnvPrefs); v != "" {
		c.PrefsBackend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogJSON); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogJSON, err)
		}
		c.LogJSON = b
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("home directory not set")
	}
	switch c.PrefsBackend {
	case PrefsJSON, PrefsSQLite, PrefsMemory:
	default:
		return fmt.Errorf("unknown preferences backend %q (want json, sqlite or memory)", c.PrefsBackend)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
