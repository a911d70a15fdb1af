// Package service provides the client session and domain services.
//
// This package contains:
//
//   - SessionManager: the single owner of the client Session; login,
//     register, logout, current-user lookup with one refresh-and-retry
//   - AuthBackend: mock and api implementations of the auth endpoints
//   - WalletSource, TransactionSource, CategorySource, UserSource,
//     DashboardSource: one interface per domain with a mock (in-memory
//     fixtures) and an api (gateway) implementation each
//
// NewServices picks every implementation once from a resolved
// datasource.Config. Domain sources hold no session state; api sources read
// the current access token through a TokenSource on each call.
package service
