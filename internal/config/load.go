package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yndnr/moneytracker-go/internal/infra/confloader"
)

// Load builds the configuration from defaults, the YAML file at path, the
// environment and overrides (dotted keys such as "api.mode"), then verifies it.
//
// An empty path means DefaultConfigPath, which is skipped when missing. An
// explicit path must exist.
func Load(path string, overrides map[string]any) (*ClientConfig, error) {
	opt := confloader.WithConfigFile(path)
	if path == "" {
		opt = confloader.WithOptionalConfigFile(DefaultConfigPath())
	}

	cfg := Default()
	if err := confloader.NewLoader(opt, confloader.WithOverrides(overrides)).Load(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.Dir = expandHome(cfg.Storage.Dir)

	if err := Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
