// Package logger provides structured logging for moneytracker.
//
// This package wraps log/slog:
//
//   - logger.go: handler construction and level control
//   - context.go: carrying a logger through context.Context
//   - redact.go: sensitive data redaction
//
// Every handler built here redacts attributes whose key names a credential
// (token, password, secret, authorization) and masks values that look like
// bearer headers or JWTs, whatever their key.
package logger
