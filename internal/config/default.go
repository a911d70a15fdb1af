package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default configuration values.
const (
	DefaultMode    = "mock"
	DefaultBaseURL = "http://localhost:8080/api"

	DefaultMockDelay = time.Second
	DefaultBurst     = 1

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// DefaultHome returns the per-user moneytracker directory.
func DefaultHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".moneytracker")
}

// DefaultConfigPath returns the default YAML config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultHome(), "config.yaml")
}

// DefaultStorageDir returns the default token store directory.
func DefaultStorageDir() string {
	return filepath.Join(DefaultHome(), "tokens")
}

// Default returns the default client configuration.
func Default() *ClientConfig {
	return &ClientConfig{
		API: APISection{
			Mode:    DefaultMode,
			BaseURL: DefaultBaseURL,
		},
		Storage: StorageSection{
			Dir: DefaultStorageDir(),
		},
		HTTP: HTTPSection{
			Burst: DefaultBurst,
		},
		Auth: AuthSection{
			MockDelay: DefaultMockDelay,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
