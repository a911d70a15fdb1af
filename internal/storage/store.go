package storage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/yndnr/moneytracker-go/internal/telemetry/metric"
)

// Fixed storage keys.
const (
	KeyAccessToken  = "auth/access_token"
	KeyRefreshToken = "auth/refresh_token"
)

// Store is durable key-value storage for the two session tokens.
//
// An empty string means the token is absent.
type Store interface {
	AccessToken(ctx context.Context) string
	RefreshToken(ctx context.Context) string

	// SetTokens replaces both tokens in one write. An empty refresh token
	// removes any previously stored one.
	SetTokens(ctx context.Context, access, refresh string) error

	// Clear removes both tokens.
	Clear(ctx context.Context) error

	Close() error
}

// Option configures a token store.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *metric.Registry
	sealer  *Sealer
}

// WithLogger sets the logger used for storage diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics counts store mutations on the given registry.
func WithMetrics(m *metric.Registry) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithSealer seals values at rest. Ignored by MemoryTokenStore.
func WithSealer(s *Sealer) Option {
	return func(o *options) {
		o.sealer = s
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// MemoryTokenStore keeps tokens in process memory.
type MemoryTokenStore struct {
	mu      sync.RWMutex
	access  string
	refresh string
	metrics *metric.Registry
}

// NewMemoryTokenStore creates an empty in-memory store.
func NewMemoryTokenStore(opts ...Option) *MemoryTokenStore {
	o := buildOptions(opts)
	return &MemoryTokenStore{metrics: o.metrics}
}

// AccessToken returns the stored access token.
func (s *MemoryTokenStore) AccessToken(_ context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// RefreshToken returns the stored refresh token.
func (s *MemoryTokenStore) RefreshToken(_ context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// SetTokens replaces both tokens.
func (s *MemoryTokenStore) SetTokens(_ context.Context, access, refresh string) error {
	s.mu.Lock()
	s.access = access
	s.refresh = refresh
	s.mu.Unlock()

	s.metrics.ObserveStoreOp("set")
	return nil
}

// Clear removes both tokens.
func (s *MemoryTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.access = ""
	s.refresh = ""
	s.mu.Unlock()

	s.metrics.ObserveStoreOp("clear")
	return nil
}

// Close is a no-op.
func (s *MemoryTokenStore) Close() error {
	return nil
}
