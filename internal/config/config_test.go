package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func isolateEnvFile(t *testing.T) {
	t.Helper()
	t.Setenv(envEnvFile, filepath.Join(t.TempDir(), "none.env"))
}

func TestLoadDefaults(t *testing.T) {
	isolateEnvFile(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Shell.AnchorID != "app" {
		t.Fatalf("expected default anchor app, got %s", cfg.Shell.AnchorID)
	}
	if !cfg.Shell.OfflineEnabled {
		t.Fatalf("expected offline support enabled by default")
	}
	if cfg.Shell.ThemeFile != "" {
		t.Fatalf("expected no theme file by default, got %s", cfg.Shell.ThemeFile)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Fatalf("expected wildcard cors origins, got %v", cfg.CORSOrigins)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != "matchfeed-web" {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv(envPort, "5000")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envAnchorID, "root")
	t.Setenv(envOffline, "false")
	t.Setenv(envThemeFile, "theme.yaml")
	t.Setenv(envCORSOrigins, "https://scores.example")
	t.Setenv(envMetricsOn, "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("expected log overrides, got %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Shell.AnchorID != "root" {
		t.Fatalf("expected anchor override, got %s", cfg.Shell.AnchorID)
	}
	if cfg.Shell.OfflineEnabled {
		t.Fatalf("expected offline support disabled")
	}
	if cfg.Shell.ThemeFile != "theme.yaml" {
		t.Fatalf("expected theme file override, got %s", cfg.Shell.ThemeFile)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"https://scores.example"}) {
		t.Fatalf("expected cors override, got %v", cfg.CORSOrigins)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.env")
	if err := os.WriteFile(path, []byte("SHELL_TITLE=From File\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envEnvFile, path)
	t.Setenv(envTitle, "")
	os.Unsetenv(envTitle)
	t.Cleanup(func() { os.Unsetenv(envTitle) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Shell.Title != "From File" {
		t.Fatalf("expected title from env file, got %s", cfg.Shell.Title)
	}
}
