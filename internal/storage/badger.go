package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/dgraph-io/badger/v3"

	"github.com/yndnr/moneytracker-go/internal/telemetry/metric"
)

// ErrClosed is returned by mutations after Close.
var ErrClosed = errors.New("token store closed")

// BadgerConfig configures the durable token store.
type BadgerConfig struct {
	// Dir is the Badger data directory. Required unless InMemory is set.
	Dir string

	// InMemory keeps the database in memory only.
	InMemory bool
}

// BadgerTokenStore implements Store using Badger v3.
//
// Writes are synchronous: a mutation is committed and fsynced before it
// returns, and both keys change in the same transaction.
type BadgerTokenStore struct {
	db      *badger.DB
	sealer  *Sealer
	logger  *slog.Logger
	metrics *metric.Registry
	closed  atomic.Bool
}

// NewBadgerTokenStore opens (or creates) the token database.
func NewBadgerTokenStore(cfg BadgerConfig, opts ...Option) (*BadgerTokenStore, error) {
	if cfg.Dir == "" && !cfg.InMemory {
		return nil, fmt.Errorf("badger: dir is required")
	}
	o := buildOptions(opts)

	bopts := badger.DefaultOptions(cfg.Dir).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(true).
		WithNumVersionsToKeep(1).
		WithLogger(&badgerLogger{logger: o.logger})
	if cfg.InMemory {
		bopts = bopts.WithDir("").WithValueDir("")
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	o.logger.Debug("token store opened",
		"dir", cfg.Dir,
		"in_memory", cfg.InMemory,
		"sealed", o.sealer != nil)

	return &BadgerTokenStore{
		db:      db,
		sealer:  o.sealer,
		logger:  o.logger,
		metrics: o.metrics,
	}, nil
}

// AccessToken returns the stored access token, or "" when absent or unreadable.
func (s *BadgerTokenStore) AccessToken(ctx context.Context) string {
	return s.read(ctx, KeyAccessToken)
}

// RefreshToken returns the stored refresh token, or "" when absent or unreadable.
func (s *BadgerTokenStore) RefreshToken(ctx context.Context) string {
	return s.read(ctx, KeyRefreshToken)
}

func (s *BadgerTokenStore) read(_ context.Context, key string) string {
	if s.closed.Load() {
		return ""
	}

	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			s.logger.Warn("token store read failed", "key", key, "error", err)
		}
		return ""
	}

	value, err := s.sealer.Open(key, raw)
	if err != nil {
		s.logger.Warn("token store value undecodable", "key", key, "error", err)
		return ""
	}
	return string(value)
}

// SetTokens writes both tokens in one synchronous transaction.
func (s *BadgerTokenStore) SetTokens(_ context.Context, access, refresh string) error {
	if s.closed.Load() {
		return ErrClosed
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		if err := s.put(txn, KeyAccessToken, access); err != nil {
			return err
		}
		return s.put(txn, KeyRefreshToken, refresh)
	})
	if err != nil {
		return fmt.Errorf("badger: set tokens: %w", err)
	}

	s.metrics.ObserveStoreOp("set")
	return nil
}

func (s *BadgerTokenStore) put(txn *badger.Txn, key, value string) error {
	if value == "" {
		return txn.Delete([]byte(key))
	}
	sealed, err := s.sealer.Seal(key, []byte(value))
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), sealed)
}

// Clear removes both tokens in one synchronous transaction.
func (s *BadgerTokenStore) Clear(_ context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(KeyAccessToken)); err != nil {
			return err
		}
		return txn.Delete([]byte(KeyRefreshToken))
	})
	if err != nil {
		return fmt.Errorf("badger: clear tokens: %w", err)
	}

	s.metrics.ObserveStoreOp("clear")
	return nil
}

// Close flushes and closes the database. It is safe to call more than once.
func (s *BadgerTokenStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}

// badgerLogger adapts slog.Logger to Badger's Logger interface.
//
// Badger's own info chatter is demoted to debug; a CLI run should stay quiet.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...), "component", "badger")
}
