// Package command provides CLI command definitions for moneytracker-cli.
//
// Commands are grouped by domain:
//
//   - auth.go: login, register, logout, whoami, refresh
//   - profile.go: profile show/update
//   - wallets.go, transactions.go, categories.go: entity CRUD
//   - dashboard.go: summary and net worth history
//   - system.go, config.go: sources, version and configuration
//
// Every action obtains the invocation's Env (config, logger, metrics,
// token store, gateway client and services) through envFrom and writes its
// result with render, so --output applies uniformly.
package command
