package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/yndnr/moneytracker-go/internal/core/domain"
	"github.com/yndnr/moneytracker-go/internal/datasource"
	"github.com/yndnr/moneytracker-go/internal/gateway"
	"github.com/yndnr/moneytracker-go/internal/storage"
	"github.com/yndnr/moneytracker-go/internal/telemetry/metric"
)

// SessionManager owns the client Session and drives the auth lifecycle.
//
// It is the only writer of the Session and of the token store. The Session
// is guarded so snapshots are never torn, but concurrent refreshes are not
// coordinated: two 401s may refresh independently and the last pair stored
// wins.
type SessionManager struct {
	mu      sync.RWMutex
	session domain.Session

	store   storage.Store
	backend AuthBackend
	logger  *slog.Logger
	metrics *metric.Registry
}

// NewSessionManager creates a manager whose Session starts from the tokens
// persisted in store. A persisted access token means Authenticated with an
// unknown user.
func NewSessionManager(ctx context.Context, store storage.Store, backend AuthBackend, opts ...Option) *SessionManager {
	o := buildOptions(opts)
	return &SessionManager{
		session: domain.Session{
			AccessToken:  store.AccessToken(ctx),
			RefreshToken: store.RefreshToken(ctx),
		},
		store:   store,
		backend: backend,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// AuthSource reports which backend serves auth.
func (m *SessionManager) AuthSource() datasource.Source {
	return m.backend.Source()
}

// Snapshot returns a copy of the current Session.
func (m *SessionManager) Snapshot() domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.session
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// State returns the current authentication state.
func (m *SessionManager) State() domain.State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.State()
}

// AccessToken returns the current access token, or "" when anonymous.
func (m *SessionManager) AccessToken(context.Context) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.AccessToken
}

func (m *SessionManager) refreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.RefreshToken
}

// Login authenticates with email and password. It never retries.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	resp, err := m.backend.Login(ctx, domain.LoginRequest{Email: email, Password: password})
	m.metrics.ObserveAuth("login", err)
	if err != nil {
		return nil, err
	}
	if err := m.adopt(ctx, resp, false); err != nil {
		return nil, err
	}

	m.logger.Info("logged in", "email", email, "source", m.backend.Source())
	return resp, nil
}

// Register creates an account and authenticates as it.
func (m *SessionManager) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	resp, err := m.backend.Register(ctx, req)
	m.metrics.ObserveAuth("register", err)
	if err != nil {
		return nil, err
	}
	if err := m.adopt(ctx, resp, false); err != nil {
		return nil, err
	}

	m.logger.Info("registered", "email", req.Email, "source", m.backend.Source())
	return resp, nil
}

// Logout ends the session. The server is notified best-effort when auth is
// api-backed; its failure is logged and ignored. The Session always ends
// Anonymous. The only error returned is a failure to clear the token store.
func (m *SessionManager) Logout(ctx context.Context) error {
	access := m.AccessToken(ctx)

	if m.backend.Source() == datasource.SourceAPI && access != "" {
		if err := m.backend.Logout(ctx, access); err != nil {
			m.logger.Warn("server logout failed, clearing local session anyway", "error", err)
		}
	}

	err := m.store.Clear(ctx)
	m.reset()
	m.metrics.ObserveAuth("logout", err)
	if err != nil {
		return fmt.Errorf("clear token store: %w", err)
	}
	return nil
}

// CurrentUser returns the authenticated user.
//
// With no access token it returns (nil, nil) without any network call.
// Mock auth returns the user held in memory. Api auth fetches /auth/me; a
// 401 triggers exactly one RefreshTokens, and if that yields nothing or
// fails the original 401 is returned.
func (m *SessionManager) CurrentUser(ctx context.Context) (*domain.User, error) {
	access := m.AccessToken(ctx)
	if access == "" {
		return nil, nil
	}

	if m.backend.Source() != datasource.SourceAPI {
		return m.Snapshot().User, nil
	}

	user, err := m.backend.Me(ctx, access)
	if err == nil {
		m.setUser(user)
		return user, nil
	}
	if !gateway.IsStatus(err, http.StatusUnauthorized) {
		return nil, err
	}

	m.logger.Debug("access token rejected, refreshing")
	refreshed, rerr := m.RefreshTokens(ctx)
	if rerr != nil {
		m.logger.Debug("refresh after 401 failed", "error", rerr)
		return nil, err
	}
	if refreshed == nil {
		return nil, err
	}
	return refreshed.User, nil
}

// RefreshTokens exchanges the refresh token for a new pair.
//
// It returns (nil, nil) when auth is mock-backed or no refresh token is
// held. Errors propagate; the caller decides whether to end the session.
func (m *SessionManager) RefreshTokens(ctx context.Context) (*domain.AuthResponse, error) {
	refresh := m.refreshToken()
	if m.backend.Source() != datasource.SourceAPI || refresh == "" {
		m.metrics.ObserveRefresh(metric.OutcomeSkipped)
		return nil, nil
	}

	resp, err := m.backend.Refresh(ctx, refresh)
	if err != nil {
		m.metrics.ObserveRefresh(metric.OutcomeFailure)
		return nil, err
	}
	if err := m.adopt(ctx, resp, true); err != nil {
		m.metrics.ObserveRefresh(metric.OutcomeFailure)
		return nil, err
	}

	m.metrics.ObserveRefresh(metric.OutcomeSuccess)
	return resp, nil
}

// Bootstrap validates a persisted session at startup.
//
// When auth is api-backed and a token is held but no user is known, the
// user is fetched. Any failure ends the session and is returned.
func (m *SessionManager) Bootstrap(ctx context.Context) error {
	if m.backend.Source() != datasource.SourceAPI {
		return nil
	}
	snap := m.Snapshot()
	if !snap.IsAuthenticated() || snap.User != nil {
		return nil
	}

	if _, err := m.CurrentUser(ctx); err != nil {
		m.logger.Debug("stored session rejected", "error", err)
		if cerr := m.store.Clear(ctx); cerr != nil {
			m.logger.Warn("clear token store failed", "error", cerr)
		}
		m.reset()
		return err
	}
	return nil
}

// adopt stores the pair from resp and updates the Session. When keepUser is
// set and resp carries no user, the known user is retained.
func (m *SessionManager) adopt(ctx context.Context, resp *domain.AuthResponse, keepUser bool) error {
	if err := m.store.SetTokens(ctx, resp.AccessToken, resp.RefreshToken); err != nil {
		return fmt.Errorf("store tokens: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user := resp.User
	if user == nil && keepUser {
		user = m.session.User
	}
	m.session = domain.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         user,
	}
	return nil
}

func (m *SessionManager) setUser(u *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.IsAuthenticated() {
		m.session.User = u
	}
}

func (m *SessionManager) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = domain.Session{}
}
