// Package domain defines the client-side domain models for moneytracker.
//
// Models mirror the JSON contract of the moneytracker REST backend and carry
// no IO dependencies. This package contains:
//
//   - Session, TokenPair, AuthResponse: authentication state and wire forms
//   - Wallet, Transaction, Category: finance entities and their request DTOs
//   - Dashboard, NetWorthHistory: aggregated read models
//   - Errors: fixed-message domain errors raised by mock-backed sources
package domain
