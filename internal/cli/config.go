package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk CLI configuration, read from
// $XDG_CONFIG_HOME/logspect/config.toml. Environment variables override
// the file: LOGSPECT_BASE_URL, LOGSPECT_REDIS_ADDR, LOGSPECT_LOG_LEVEL.
type Config struct {
	// BaseURL is the backend root, e.g. "https://logs.example.com/api".
	BaseURL string `toml:"base_url"`

	// TimeoutSeconds bounds every request. Zero means the client default.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RedisAddr enables the reference-data cache when set, e.g.
	// "localhost:6379". Empty disables caching.
	RedisAddr string `toml:"redis_addr"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:  "http://localhost:8000",
		LogLevel: "warn",
	}
}

// ConfigDir returns the directory holding config.toml and credentials.toml.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "logspect"), nil
}

// LoadConfig reads path, or the default location when path is empty. A
// missing file is not an error; defaults and environment overrides still
// apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return cfg, err
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("LOGSPECT_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LOGSPECT_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("LOGSPECT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// Timeout returns the configured request timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
