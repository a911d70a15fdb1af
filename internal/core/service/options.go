package service

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/moneytracker-go/internal/telemetry/metric"
)

// DefaultMockDelay is the artificial latency of mock login and register.
const DefaultMockDelay = time.Second

// TokenSource supplies the current access token to api-backed sources.
type TokenSource interface {
	AccessToken(ctx context.Context) string
}

// IDGenerator synthesizes identifiers for records created in mock mode.
type IDGenerator func() string

// NewULIDGenerator returns a generator of time-ordered ULIDs taken from clock.
// It is safe for concurrent use.
func NewULIDGenerator(clock func() time.Time) IDGenerator {
	var mu sync.Mutex
	entropy := ulid.Monotonic(rand.Reader, 0)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		return ulid.MustNew(ulid.Timestamp(clock()), entropy).String()
	}
}

// Option configures NewServices and NewSessionManager.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	metrics   *metric.Registry
	clock     func() time.Time
	ids       IDGenerator
	mockDelay time.Duration
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records session metrics on m.
func WithMetrics(m *metric.Registry) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithClock replaces time.Now for mock timestamps and ids.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithIDGenerator replaces the ULID generator used by mock create operations.
func WithIDGenerator(ids IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithMockDelay sets the artificial latency of mock login and register.
func WithMockDelay(d time.Duration) Option {
	return func(o *options) {
		o.mockDelay = d
	}
}

func buildOptions(opts []Option) options {
	o := options{
		mockDelay: DefaultMockDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	if o.ids == nil {
		o.ids = NewULIDGenerator(o.clock)
	}
	return o
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
