// Package main provides the entry point for moneytracker-cli, the
// command-line client for the MoneyTracker personal finance backend.
//
// It signs in, keeps the issued tokens in a local Badger store and talks
// to the REST API, or serves built-in demo data in mock mode:
//
//	moneytracker-cli login --email demo@example.com
//	moneytracker-cli wallets list -o json
//	moneytracker-cli dashboard net-worth --period 3M
//
// The data source of each domain follows api.mode (mock, api or hybrid)
// and the sources.* overrides; run "moneytracker-cli sources" to see them.
package main
