package service

import (
	"context"
	"net/http"
	"sync"

	"github.com/yndnr/moneytracker-go/internal/core/domain"
	"github.com/yndnr/moneytracker-go/internal/datasource"
	"github.com/yndnr/moneytracker-go/internal/gateway"
)

// UserSource serves the users domain.
type UserSource interface {
	Me(ctx context.Context) (*domain.User, error)
	UpdateMe(ctx context.Context, req domain.UpdateUserRequest) (*domain.User, error)
}

// NewUserSource returns the user source for the given data source.
func NewUserSource(source datasource.Source, client *gateway.Client, tokens TokenSource) UserSource {
	if source == datasource.SourceAPI {
		return &apiUsers{apiBase{client: client, tokens: tokens}}
	}
	return &mockUsers{user: *demoUser()}
}

type apiUsers struct {
	apiBase
}

func (s *apiUsers) Me(ctx context.Context) (*domain.User, error) {
	return gateway.Request[*domain.User](ctx, s.client, "/users/me", s.options(ctx, http.MethodGet, nil))
}

func (s *apiUsers) UpdateMe(ctx context.Context, req domain.UpdateUserRequest) (*domain.User, error) {
	return gateway.Request[*domain.User](ctx, s.client, "/users/me", s.options(ctx, http.MethodPut, req))
}

// mockUsers serves the demo user. Updates persist for the process lifetime;
// password fields are accepted and ignored.
type mockUsers struct {
	mu   sync.Mutex
	user domain.User
}

func (s *mockUsers) Me(context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user
	return &u, nil
}

func (s *mockUsers) UpdateMe(_ context.Context, req domain.UpdateUserRequest) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Email != nil {
		s.user.Email = *req.Email
	}
	if req.FirstName != nil {
		s.user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		s.user.LastName = *req.LastName
	}
	u := s.user
	return &u, nil
}
