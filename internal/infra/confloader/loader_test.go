package confloader

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	API struct {
		Mode    string `koanf:"mode"`
		BaseURL string `koanf:"base_url"`
	} `koanf:"api"`
	HTTP struct {
		Timeout              time.Duration `koanf:"timeout"`
		MaxRequestsPerSecond float64       `koanf:"max_requests_per_second"`
	} `koanf:"http"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithOptionalConfigFile("/path/to/config.yaml"),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" || !l.fileOptional {
		t.Errorf("filePath = %q optional=%v", l.filePath, l.fileOptional)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"MONEYTRACKER_API_MODE", "api.mode"},
		{"MONEYTRACKER_API_BASE_URL", "api.base_url"},
		{"MONEYTRACKER_SOURCES_WALLETS", "sources.wallets"},
		{"MONEYTRACKER_HTTP_MAX_REQUESTS_PER_SECOND", "http.max_requests_per_second"},
		{"MONEYTRACKER_STORAGE_ENCRYPTION_KEY", "storage.encryption_key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnvKey(DefaultEnvPrefix, tt.name); got != tt.want {
				t.Errorf("EnvKey(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
api:
  mode: hybrid
  base_url: "https://money.example.com/api"
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got := l.GetString("api.base_url"); got != "https://money.example.com/api" {
		t.Errorf("api.base_url = %q", got)
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	var cfg testConfig

	if err := NewLoader(WithConfigFile("/nonexistent/config.yaml")).Load(&cfg); err == nil {
		t.Error("Load() should fail for a required missing file")
	}
	if err := NewLoader(WithOptionalConfigFile("/nonexistent/config.yaml")).Load(&cfg); err != nil {
		t.Errorf("Load() with optional missing file error = %v", err)
	}
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "api: [unterminated")

	var cfg testConfig
	if err := NewLoader(WithOptionalConfigFile(path)).Load(&cfg); err == nil {
		t.Error("Load() should fail for malformed YAML even when the file is optional")
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("MONEYTRACKER_API_MODE", "api")
	t.Setenv("MONEYTRACKER_API_BASE_URL", "http://127.0.0.1:9000/api")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := l.GetString("api.mode"); got != "api" {
		t.Errorf("api.mode = %q, want api", got)
	}
	if got := l.GetString("api.base_url"); got != "http://127.0.0.1:9000/api" {
		t.Errorf("api.base_url = %q", got)
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
api:
  mode: "mock"
  base_url: "http://from-file/api"
http:
  timeout: 5s
`)
	t.Setenv("MONEYTRACKER_API_MODE", "api")

	var cfg testConfig
	cfg.HTTP.MaxRequestsPerSecond = 3 // pre-filled default

	l := NewLoader(WithConfigFile(path))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.Mode != "api" {
		t.Errorf("Mode = %q, want api (env should override file)", cfg.API.Mode)
	}
	if cfg.API.BaseURL != "http://from-file/api" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.HTTP.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.MaxRequestsPerSecond != 3 {
		t.Errorf("MaxRequestsPerSecond = %v, default should survive", cfg.HTTP.MaxRequestsPerSecond)
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{
		"api.mode":     "hybrid",
		"http.timeout": "2s",
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	var cfg testConfig
	if err := l.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.API.Mode != "hybrid" {
		t.Errorf("Mode = %q, want hybrid", cfg.API.Mode)
	}
	if cfg.HTTP.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v, want 2s", cfg.HTTP.Timeout)
	}
}

func TestLoader_Load_OverridesWin(t *testing.T) {
	path := writeConfig(t, `
api:
  mode: "mock"
  base_url: "http://from-file/api"
`)
	t.Setenv("MONEYTRACKER_API_MODE", "api")

	var cfg testConfig
	l := NewLoader(
		WithConfigFile(path),
		WithOverrides(map[string]any{"api.mode": "hybrid"}),
	)
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.Mode != "hybrid" {
		t.Errorf("Mode = %q, want hybrid (override beats env and file)", cfg.API.Mode)
	}
	if cfg.API.BaseURL != "http://from-file/api" {
		t.Errorf("BaseURL = %q, want file value", cfg.API.BaseURL)
	}
}
