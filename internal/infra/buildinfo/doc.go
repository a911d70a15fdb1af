// Package buildinfo exposes build information for moneytracker-cli.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/moneytracker-go/internal/infra/buildinfo.Version=1.0.0"
//
// The Go version is read from the running binary.
package buildinfo
