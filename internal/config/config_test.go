package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearRosterEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ROSTER_API_BASE", "")
	t.Setenv("ROSTER_LOG_FILE", "")
	t.Setenv("ROSTER_TIMEOUT_SECONDS", "")
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearRosterEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}
	if cfg.TimeoutSeconds != defaultTimeoutSeconds {
		t.Fatalf("TimeoutSeconds = %d, want %d", cfg.TimeoutSeconds, defaultTimeoutSeconds)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearRosterEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base = "  http://10.0.0.5:9999  "
log_file = "~/.roster/roster.log"
timeout_seconds = 7
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != "http://10.0.0.5:9999" {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, "http://10.0.0.5:9999")
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.Timeout() != 7*time.Second {
		t.Fatalf("Timeout = %v, want 7s", cfg.Timeout())
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base = "http://from-file:1111"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv("ROSTER_API_BASE", "http://from-env:2222")
	t.Setenv("ROSTER_LOG_FILE", "")
	t.Setenv("ROSTER_TIMEOUT_SECONDS", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != "http://from-env:2222" {
		t.Fatalf("APIBase = %q, want env override", cfg.APIBase)
	}
	if cfg.TimeoutSeconds != 3 {
		t.Fatalf("TimeoutSeconds = %d, want 3", cfg.TimeoutSeconds)
	}
}

func TestLoad_RejectsInvalidURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearRosterEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base = "not a url"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "validate config") {
		t.Fatalf("Load error = %v, want validation error", err)
	}
}
