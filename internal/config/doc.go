// Package config provides client configuration for moneytracker.
//
// This package defines the client configuration structure and validation:
//
//   - spec.go: ClientConfig struct definition
//   - default.go: Default configuration values
//   - verify.go: Validation of loaded values
//   - sanitize.go: Log sanitization (hide sensitive values)
//   - load.go: Layered loading via internal/infra/confloader
//
// Sources, lowest priority first: defaults, YAML file, MONEYTRACKER_*
// environment variables.
package config
