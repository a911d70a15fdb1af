package service

import (
	"context"

	"github.com/yndnr/moneytracker-go/internal/datasource"
	"github.com/yndnr/moneytracker-go/internal/gateway"
	"github.com/yndnr/moneytracker-go/internal/storage"
)

// Services bundles the session manager and one source per domain, each
// selected once from the resolved data-source configuration.
type Services struct {
	Config datasource.Config

	Session      *SessionManager
	Wallets      WalletSource
	Transactions TransactionSource
	Categories   CategorySource
	Users        UserSource
	Dashboard    DashboardSource
}

// NewServices wires every domain to its mock or api implementation.
// client may be nil when no domain resolves to api.
func NewServices(ctx context.Context, cfg datasource.Config, client *gateway.Client, store storage.Store, opts ...Option) *Services {
	o := buildOptions(opts)
	// Mock sources share one clock and id generator.
	opts = append(opts, WithClock(o.clock), WithIDGenerator(o.ids))

	backend := NewAuthBackend(cfg.Source(datasource.DomainAuth), client, o.mockDelay)
	session := NewSessionManager(ctx, store, backend, opts...)

	return &Services{
		Config:       cfg,
		Session:      session,
		Wallets:      NewWalletSource(cfg.Source(datasource.DomainWallets), client, session, opts...),
		Transactions: NewTransactionSource(cfg.Source(datasource.DomainTransactions), client, session, opts...),
		Categories:   NewCategorySource(cfg.Source(datasource.DomainCategories), client, session, opts...),
		Users:        NewUserSource(cfg.Source(datasource.DomainUsers), client, session),
		Dashboard:    NewDashboardSource(cfg.Source(datasource.DomainDashboard), client, session, opts...),
	}
}
