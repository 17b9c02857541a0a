package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG", "ADDR", "STORE", "DB", "LOG_LEVEL", "LOG_JSON", "SERVER", "COUNT"} {
		t.Setenv(EnvPrefix+key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palettecraft.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Store.Backend != "memory" || cfg.Generate.Count != 5 {
		t.Errorf("Load() defaults = %+v", cfg)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.Server.ShutdownTimeout)
	}
	if !slices.Equal(cfg.LoadedFrom, []string{"defaults"}) {
		t.Errorf("LoadedFrom = %v", cfg.LoadedFrom)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  addr: "127.0.0.1:9000"
  shutdown_timeout: 2s
store:
  backend: sqlite
  path: /tmp/p.db
log:
  level: debug
  json: true
generate:
  count: 7
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.ShutdownTimeout != 2*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Store.Backend != "sqlite" || cfg.Store.Path != "/tmp/p.db" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.JSON || cfg.Generate.Count != 7 {
		t.Errorf("log/generate = %+v %+v", cfg.Log, cfg.Generate)
	}
	// Untouched sections keep their defaults.
	if cfg.Client.Server != "http://localhost:8080" {
		t.Errorf("client.server = %q", cfg.Client.Server)
	}
	if !slices.Equal(cfg.LoadedFrom, []string{"defaults", path}) {
		t.Errorf("LoadedFrom = %v", cfg.LoadedFrom)
	}
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  addr: \":7000\"\n")
	t.Setenv(EnvPrefix+"CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("addr = %q, want :7000", cfg.Server.Addr)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  addr: \":7000\"\nlog:\n  level: warn\n")
	t.Setenv(EnvPrefix+"ADDR", ":6000")
	t.Setenv(EnvPrefix+"LOG_JSON", "yes")
	t.Setenv(EnvPrefix+"SERVER", "https://palettes.example.com")
	t.Setenv(EnvPrefix+"COUNT", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":6000" {
		t.Errorf("addr = %q, want :6000", cfg.Server.Addr)
	}
	if cfg.Log.Level != "warn" || !cfg.Log.JSON {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Client.Server != "https://palettes.example.com" || cfg.Generate.Count != 3 {
		t.Errorf("client/generate = %+v %+v", cfg.Client, cfg.Generate)
	}
	if cfg.LoadedFrom[len(cfg.LoadedFrom)-1] != "environment" {
		t.Errorf("LoadedFrom = %v", cfg.LoadedFrom)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr string
	}{
		{name: "bad yaml", content: "server: [", wantErr: "failed to parse config file"},
		{name: "bad backend", content: "store:\n  backend: redis\n", wantErr: "store.backend must be one of"},
		{name: "sqlite without path", content: "store:\n  backend: sqlite\n  path: \"\"\n", wantErr: "store.path is required"},
		{name: "bad level", content: "log:\n  level: loud\n", wantErr: "log.level"},
		{name: "bad count", content: "generate:\n  count: 0\n", wantErr: "generate.count must be at least 1"},
		{name: "bad server url", content: "", env: map[string]string{"SERVER": "not a url"}, wantErr: "client.server must be a valid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(EnvPrefix+k, v)
			}
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing file succeeded")
	}
}
