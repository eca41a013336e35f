package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything roster needs to reach the directory API.
type Config struct {
	APIBase        string `env:"ROSTER_API_BASE" validate:"required,url"`
	LogFile        string `env:"ROSTER_LOG_FILE"`
	TimeoutSeconds int    `env:"ROSTER_TIMEOUT_SECONDS" validate:"gte=0"`
}

const (
	defaultConfigPath     = "~/.config/roster/config.toml"
	defaultAPIBase        = "https://jsonplaceholder.typicode.com"
	defaultLogFile        = "~/.local/state/roster/roster.log"
	defaultTimeoutSeconds = 10
)

// Load locates and parses the roster config, falling back to defaults when
// missing. Environment variables (optionally from a .env file) override file
// values.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBase:        defaultAPIBase,
		LogFile:        defaultLogFile,
		TimeoutSeconds: defaultTimeoutSeconds,
	}

	file, err := os.Open(resolved)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	if err == nil {
		defer func() { _ = file.Close() }()

		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}

		var raw struct {
			APIBase        string `toml:"api_base"`
			LogFile        string `toml:"log_file"`
			TimeoutSeconds int    `toml:"timeout_seconds"`
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}

		if v := strings.TrimSpace(raw.APIBase); v != "" {
			cfg.APIBase = v
		}
		if v := strings.TrimSpace(raw.LogFile); v != "" {
			cfg.LogFile = v
		}
		if raw.TimeoutSeconds > 0 {
			cfg.TimeoutSeconds = raw.TimeoutSeconds
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	cfg.LogFile = mustExpand(cfg.LogFile)
	return cfg, nil
}

// Timeout returns the per-request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func applyEnv(cfg *Config) error {
	// Missing .env is the normal case; only the environment matters then.
	_ = godotenv.Load()

	var fromEnv Config
	if err := env.Parse(&fromEnv); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if v := strings.TrimSpace(fromEnv.APIBase); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(fromEnv.LogFile); v != "" {
		cfg.LogFile = v
	}
	if fromEnv.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = fromEnv.TimeoutSeconds
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
