package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/yndnr/moneytracker-go/internal/core/domain"
	"github.com/yndnr/moneytracker-go/internal/datasource"
	"github.com/yndnr/moneytracker-go/internal/gateway"
)

// Demo credentials accepted by the mock auth backend.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"

	// ExistingEmail is the single address mock register rejects.
	ExistingEmail = "existing@example.com"

	mockAccessToken  = "mock-access-token"
	mockRefreshToken = "mock-refresh-token"
	mockTokenType    = "Bearer"
	mockExpiresIn    = 900
)

// errEmptyAuthResponse is returned when an auth endpoint answers 2xx with no body.
var errEmptyAuthResponse = errors.New("auth endpoint returned an empty response")

// AuthBackend performs the auth calls behind the SessionManager.
type AuthBackend interface {
	// Source reports whether the backend is mock or api.
	Source() datasource.Source

	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
	Logout(ctx context.Context, accessToken string) error
	Me(ctx context.Context, accessToken string) (*domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.AuthResponse, error)
}

// NewAuthBackend returns the backend for the given source.
func NewAuthBackend(source datasource.Source, client *gateway.Client, mockDelay time.Duration) AuthBackend {
	if source == datasource.SourceAPI {
		return &apiAuth{client: client}
	}
	return &mockAuth{delay: mockDelay}
}

// ============================================================================
// Mock backend
// ============================================================================

func demoUser() *domain.User {
	return &domain.User{
		ID:        "1",
		Email:     DemoEmail,
		FirstName: "Demo",
		LastName:  "User",
	}
}

func mockAuthResponse(user *domain.User) *domain.AuthResponse {
	return &domain.AuthResponse{
		AccessToken:  mockAccessToken,
		RefreshToken: mockRefreshToken,
		TokenType:    mockTokenType,
		ExpiresIn:    mockExpiresIn,
		User:         user,
	}
}

type mockAuth struct {
	delay time.Duration
}

func (a *mockAuth) Source() datasource.Source { return datasource.SourceMock }

func (a *mockAuth) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	if err := sleep(ctx, a.delay); err != nil {
		return nil, err
	}
	if req.Email != DemoEmail || req.Password != DemoPassword {
		return nil, domain.ErrInvalidCredentials
	}
	return mockAuthResponse(demoUser()), nil
}

func (a *mockAuth) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	if err := sleep(ctx, a.delay); err != nil {
		return nil, err
	}
	if req.Email == ExistingEmail {
		return nil, domain.ErrEmailExists
	}
	return mockAuthResponse(&domain.User{
		ID:        "1",
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}), nil
}

func (a *mockAuth) Logout(context.Context, string) error { return nil }

func (a *mockAuth) Me(context.Context, string) (*domain.User, error) { return nil, nil }

func (a *mockAuth) Refresh(context.Context, string) (*domain.AuthResponse, error) { return nil, nil }

// ============================================================================
// API backend
// ============================================================================

type apiAuth struct {
	client *gateway.Client
}

func (a *apiAuth) Source() datasource.Source { return datasource.SourceAPI }

func (a *apiAuth) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	return a.exchange(ctx, "/auth/login", req)
}

func (a *apiAuth) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	return a.exchange(ctx, "/auth/register", req)
}

func (a *apiAuth) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResponse, error) {
	return a.exchange(ctx, "/auth/refresh", domain.RefreshRequest{RefreshToken: refreshToken})
}

func (a *apiAuth) exchange(ctx context.Context, path string, body any) (*domain.AuthResponse, error) {
	resp, err := gateway.Request[*domain.AuthResponse](ctx, a.client, path, gateway.Options{
		Method: http.MethodPost,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, errEmptyAuthResponse
	}
	return resp, nil
}

func (a *apiAuth) Logout(ctx context.Context, accessToken string) error {
	return a.client.Do(ctx, "/auth/logout", gateway.Options{
		Method: http.MethodPost,
		Token:  accessToken,
	}, nil)
}

func (a *apiAuth) Me(ctx context.Context, accessToken string) (*domain.User, error) {
	return gateway.Request[*domain.User](ctx, a.client, "/auth/me", gateway.Options{Token: accessToken})
}
