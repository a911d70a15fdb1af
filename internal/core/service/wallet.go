package service

import (
	"cmp"
	"context"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/yndnr/moneytracker-go/internal/core/domain"
	"github.com/yndnr/moneytracker-go/internal/datasource"
	"github.com/yndnr/moneytracker-go/internal/gateway"
)

// WalletSource serves the wallets domain.
type WalletSource interface {
	List(ctx context.Context) ([]domain.Wallet, error)
	Get(ctx context.Context, id string) (*domain.Wallet, error)
	Favorites(ctx context.Context) ([]domain.Wallet, error)
	UpdateFavorites(ctx context.Context, updates []domain.BatchFavoriteUpdate) ([]domain.Wallet, error)
	Create(ctx context.Context, req domain.CreateWalletRequest) (*domain.Wallet, error)
	Update(ctx context.Context, id string, req domain.UpdateWalletRequest) (*domain.Wallet, error)
	Delete(ctx context.Context, id string) error
	// Transfer hands the source wallet over to target and returns the target.
	Transfer(ctx context.Context, sourceID, targetID string) (*domain.Wallet, error)
}

// NewWalletSource returns the wallet source for the given data source.
func NewWalletSource(source datasource.Source, client *gateway.Client, tokens TokenSource, opts ...Option) WalletSource {
	if source == datasource.SourceAPI {
		return &apiWallets{apiBase{client: client, tokens: tokens}}
	}
	o := buildOptions(opts)
	return &mockWallets{
		wallets: fixtureWallets(),
		clock:   o.clock,
		ids:     o.ids,
	}
}

// favoritesUpdate is the body of PUT /wallets/favorites.
type favoritesUpdate struct {
	Updates []domain.BatchFavoriteUpdate `json:"updates"`
}

// ============================================================================
// API
// ============================================================================

type apiWallets struct {
	apiBase
}

func (s *apiWallets) List(ctx context.Context) ([]domain.Wallet, error) {
	return gateway.RequestList[domain.Wallet](ctx, s.client, "/wallets", s.options(ctx, http.MethodGet, nil))
}

func (s *apiWallets) Get(ctx context.Context, id string) (*domain.Wallet, error) {
	return gateway.Request[*domain.Wallet](ctx, s.client, resourcePath("wallets", id), s.options(ctx, http.MethodGet, nil))
}

func (s *apiWallets) Favorites(ctx context.Context) ([]domain.Wallet, error) {
	return gateway.RequestList[domain.Wallet](ctx, s.client, "/wallets/favorites", s.options(ctx, http.MethodGet, nil))
}

func (s *apiWallets) UpdateFavorites(ctx context.Context, updates []domain.BatchFavoriteUpdate) ([]domain.Wallet, error) {
	body := favoritesUpdate{Updates: updates}
	return gateway.RequestList[domain.Wallet](ctx, s.client, "/wallets/favorites", s.options(ctx, http.MethodPut, body))
}

func (s *apiWallets) Create(ctx context.Context, req domain.CreateWalletRequest) (*domain.Wallet, error) {
	return gateway.Request[*domain.Wallet](ctx, s.client, "/wallets", s.options(ctx, http.MethodPost, req))
}

func (s *apiWallets) Update(ctx context.Context, id string, req domain.UpdateWalletRequest) (*domain.Wallet, error) {
	return gateway.Request[*domain.Wallet](ctx, s.client, resourcePath("wallets", id), s.options(ctx, http.MethodPut, req))
}

func (s *apiWallets) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, resourcePath("wallets", id), s.options(ctx, http.MethodDelete, nil), nil)
}

func (s *apiWallets) Transfer(ctx context.Context, sourceID, targetID string) (*domain.Wallet, error) {
	body := domain.TransferWalletRequest{TargetWalletID: targetID}
	return gateway.Request[*domain.Wallet](ctx, s.client, resourcePath("wallets", sourceID, "transfer"), s.options(ctx, http.MethodPost, body))
}

// ============================================================================
// Mock
// ============================================================================

type mockWallets struct {
	mu      sync.Mutex
	wallets []domain.Wallet
	clock   func() time.Time
	ids     IDGenerator
}

func (s *mockWallets) indexOf(id string) int {
	return slices.IndexFunc(s.wallets, func(w domain.Wallet) bool { return w.ID == id })
}

func (s *mockWallets) List(context.Context) ([]domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.wallets), nil
}

func (s *mockWallets) Get(_ context.Context, id string) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrWalletNotFound
	}
	w := s.wallets[i]
	return &w, nil
}

func (s *mockWallets) Favorites(context.Context) ([]domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites(), nil
}

// favorites returns favorite wallets ordered by FavoriteOrder. Wallets
// without an order sort last; ties keep fixture order.
func (s *mockWallets) favorites() []domain.Wallet {
	var out []domain.Wallet
	for _, w := range s.wallets {
		if w.IsFavorite {
			out = append(out, w)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Wallet) int {
		switch {
		case a.FavoriteOrder == nil && b.FavoriteOrder == nil:
			return 0
		case a.FavoriteOrder == nil:
			return 1
		case b.FavoriteOrder == nil:
			return -1
		}
		return cmp.Compare(*a.FavoriteOrder, *b.FavoriteOrder)
	})
	return out
}

func (s *mockWallets) UpdateFavorites(_ context.Context, updates []domain.BatchFavoriteUpdate) ([]domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range updates {
		if s.indexOf(u.WalletID) < 0 {
			return nil, domain.ErrWalletNotFound.WithDetails(u.WalletID)
		}
	}
	for _, u := range updates {
		w := &s.wallets[s.indexOf(u.WalletID)]
		w.IsFavorite = u.IsFavorite
		w.FavoriteOrder = nil
		if u.IsFavorite && u.FavoriteOrder != nil {
			w.FavoriteOrder = intPtr(*u.FavoriteOrder)
		}
	}
	return s.favorites(), nil
}

func (s *mockWallets) Create(_ context.Context, req domain.CreateWalletRequest) (*domain.Wallet, error) {
	if req.Name == "" {
		return nil, domain.ErrMissingArgument.WithDetails("name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w := domain.Wallet{
		ID:          s.ids(),
		Name:        req.Name,
		Type:        cmp.Or(req.Type, domain.WalletTypeBankCash),
		Currency:    cmp.Or(req.Currency, mockCurrency),
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		IsOwner:     true,
		CreatedAt:   s.clock().Format(time.DateOnly),
	}
	s.wallets = append(s.wallets, w)
	return &w, nil
}

func (s *mockWallets) Update(_ context.Context, id string, req domain.UpdateWalletRequest) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrWalletNotFound
	}
	w := &s.wallets[i]
	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Type != nil {
		w.Type = *req.Type
	}
	if req.Currency != nil {
		w.Currency = *req.Currency
	}
	if req.Description != nil {
		w.Description = *req.Description
	}
	if req.Icon != nil {
		w.Icon = *req.Icon
	}
	if req.Color != nil {
		w.Color = *req.Color
	}
	if req.IsFavorite != nil {
		w.IsFavorite = *req.IsFavorite
	}
	if req.FavoriteOrder != nil {
		w.FavoriteOrder = intPtr(*req.FavoriteOrder)
	}
	out := *w
	return &out, nil
}

func (s *mockWallets) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrWalletNotFound
	}
	s.wallets = slices.Delete(s.wallets, i, i+1)
	return nil
}

func (s *mockWallets) Transfer(_ context.Context, sourceID, targetID string) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.indexOf(sourceID)
	if src < 0 {
		return nil, domain.ErrWalletNotFound
	}
	if sourceID == targetID {
		return nil, domain.ErrSelfTransfer
	}
	dst := s.indexOf(targetID)
	if dst < 0 {
		return nil, domain.ErrTargetWalletNotFound
	}

	target := s.wallets[dst]
	s.wallets = slices.Delete(s.wallets, src, src+1)
	return &target, nil
}
