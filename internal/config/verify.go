package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/yndnr/moneytracker-go/internal/storage"
)

// Verify validates the configuration.
func Verify(cfg *ClientConfig) error {
	if err := verifyAPI(&cfg.API); err != nil {
		return err
	}
	if err := verifyStorage(&cfg.Storage); err != nil {
		return err
	}
	if err := verifyHTTP(&cfg.HTTP); err != nil {
		return err
	}
	if cfg.Auth.MockDelay < 0 {
		return errors.New("auth.mock_delay must not be negative")
	}
	return verifyLog(&cfg.Log)
}

func verifyAPI(cfg *APISection) error {
	if cfg.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must be an http or https URL, got %q", cfg.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api.base_url has no host: %q", cfg.BaseURL)
	}
	return nil
}

func verifyStorage(cfg *StorageSection) error {
	if cfg.Dir == "" {
		return errors.New("storage.dir is required")
	}
	if cfg.EncryptionKey != "" && len(cfg.EncryptionKey) < storage.MinSecretLength {
		return fmt.Errorf("storage.encryption_key must be at least %d characters", storage.MinSecretLength)
	}
	return nil
}

func verifyHTTP(cfg *HTTPSection) error {
	if cfg.Timeout < 0 {
		return errors.New("http.timeout must not be negative")
	}
	if cfg.MaxRequestsPerSecond < 0 {
		return errors.New("http.max_requests_per_second must not be negative")
	}
	if cfg.MaxRequestsPerSecond > 0 && cfg.Burst < 1 {
		return errors.New("http.burst must be at least 1 when rate limiting is enabled")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q is not one of text, json", cfg.Format)
	}
	return nil
}
