// Package metric provides Prometheus metrics for moneytracker.
//
// This package owns the client-side collectors:
//
//   - registry.go: collector registry and text exposition dump
//
// Metrics include:
//
//   - Gateway request counts and latency histograms
//   - Session refresh and login outcomes
//   - Token store writes and clears
//
// A nil *Registry is valid and records nothing, so components can be built
// without metrics in tests.
package metric
