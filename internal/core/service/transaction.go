package service

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/yndnr/moneytracker-go/internal/core/domain"
	"github.com/yndnr/moneytracker-go/internal/datasource"
	"github.com/yndnr/moneytracker-go/internal/gateway"
)

// TransactionSource serves the transactions domain.
type TransactionSource interface {
	// List returns all transactions, or those of walletID when it is set.
	List(ctx context.Context, walletID string) ([]domain.Transaction, error)
	Get(ctx context.Context, id string) (*domain.Transaction, error)
	// Range returns the wallet's transactions dated within [start, end].
	Range(ctx context.Context, walletID, start, end string) ([]domain.Transaction, error)
	Balance(ctx context.Context, walletID string) (float64, error)
	Create(ctx context.Context, req domain.CreateTransactionRequest) (*domain.Transaction, error)
	Update(ctx context.Context, id string, req domain.UpdateTransactionRequest) (*domain.Transaction, error)
	Delete(ctx context.Context, id string) error
}

// NewTransactionSource returns the transaction source for the given data source.
func NewTransactionSource(source datasource.Source, client *gateway.Client, tokens TokenSource, opts ...Option) TransactionSource {
	if source == datasource.SourceAPI {
		return &apiTransactions{apiBase{client: client, tokens: tokens}}
	}
	o := buildOptions(opts)
	return &mockTransactions{
		transactions: fixtureTransactions(),
		clock:        o.clock,
		ids:          o.ids,
	}
}

// ============================================================================
// API
// ============================================================================

type apiTransactions struct {
	apiBase
}

func (s *apiTransactions) List(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	path := "/transactions"
	if walletID != "" {
		path = resourcePath("wallets", walletID, "transactions")
	}
	return gateway.RequestList[domain.Transaction](ctx, s.client, path, s.options(ctx, http.MethodGet, nil))
}

func (s *apiTransactions) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	return gateway.Request[*domain.Transaction](ctx, s.client, resourcePath("transactions", id), s.options(ctx, http.MethodGet, nil))
}

func (s *apiTransactions) Range(ctx context.Context, walletID, start, end string) ([]domain.Transaction, error) {
	opts := s.options(ctx, http.MethodGet, nil)
	opts.Query = url.Values{
		"startDate": {start},
		"endDate":   {end},
	}
	return gateway.RequestList[domain.Transaction](ctx, s.client, resourcePath("wallets", walletID, "transactions", "range"), opts)
}

// Balance accepts either a bare number or an object with a balance field.
func (s *apiTransactions) Balance(ctx context.Context, walletID string) (float64, error) {
	path := resourcePath("wallets", walletID, "transactions", "balance")
	raw, err := gateway.Request[json.RawMessage](ctx, s.client, path, s.options(ctx, http.MethodGet, nil))
	if err != nil {
		return 0, err
	}
	if len(raw) == 0 {
		return 0, nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var wrapped struct {
		Balance *float64 `json:"balance"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil || wrapped.Balance == nil {
		return 0, fmt.Errorf("decode %s: unexpected balance payload %s", path, raw)
	}
	return *wrapped.Balance, nil
}

func (s *apiTransactions) Create(ctx context.Context, req domain.CreateTransactionRequest) (*domain.Transaction, error) {
	return gateway.Request[*domain.Transaction](ctx, s.client, "/transactions", s.options(ctx, http.MethodPost, req))
}

func (s *apiTransactions) Update(ctx context.Context, id string, req domain.UpdateTransactionRequest) (*domain.Transaction, error) {
	return gateway.Request[*domain.Transaction](ctx, s.client, resourcePath("transactions", id), s.options(ctx, http.MethodPut, req))
}

func (s *apiTransactions) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, resourcePath("transactions", id), s.options(ctx, http.MethodDelete, nil), nil)
}

// ============================================================================
// Mock
// ============================================================================

type mockTransactions struct {
	mu           sync.Mutex
	transactions []domain.Transaction
	clock        func() time.Time
	ids          IDGenerator
}

func (s *mockTransactions) indexOf(id string) int {
	return slices.IndexFunc(s.transactions, func(t domain.Transaction) bool { return t.ID == id })
}

func (s *mockTransactions) filter(keep func(domain.Transaction) bool) []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Transaction
	for _, t := range s.transactions {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *mockTransactions) List(_ context.Context, walletID string) ([]domain.Transaction, error) {
	return s.filter(func(t domain.Transaction) bool {
		return walletID == "" || t.WalletID == walletID
	}), nil
}

func (s *mockTransactions) Get(_ context.Context, id string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrTransactionNotFound
	}
	t := s.transactions[i]
	return &t, nil
}

// Range compares ISO dates as strings, which orders them chronologically.
func (s *mockTransactions) Range(_ context.Context, walletID, start, end string) ([]domain.Transaction, error) {
	if start == "" || end == "" {
		return nil, domain.ErrMissingArgument.WithDetails("startDate and endDate")
	}
	if start > end {
		return nil, domain.ErrInvalidArgument.WithDetails("startDate is after endDate")
	}
	return s.filter(func(t domain.Transaction) bool {
		return t.WalletID == walletID && t.TransactionDate >= start && t.TransactionDate <= end
	}), nil
}

// Balance is income minus expense. Transfers do not move the balance.
func (s *mockTransactions) Balance(_ context.Context, walletID string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var balance float64
	for _, t := range s.transactions {
		if t.WalletID != walletID {
			continue
		}
		switch t.Type {
		case domain.TransactionIncome:
			balance += t.Amount
		case domain.TransactionExpense:
			balance -= t.Amount
		}
	}
	return balance, nil
}

func (s *mockTransactions) Create(_ context.Context, req domain.CreateTransactionRequest) (*domain.Transaction, error) {
	switch {
	case req.WalletID == "":
		return nil, domain.ErrMissingArgument.WithDetails("walletId")
	case req.Amount <= 0:
		return nil, domain.ErrInvalidArgument.WithDetails("amount must be positive")
	case req.Type == domain.TransactionTransfer && req.TargetWalletID == "":
		return nil, domain.ErrMissingArgument.WithDetails("targetWalletId")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := domain.Transaction{
		ID:              s.ids(),
		WalletID:        req.WalletID,
		Type:            cmp.Or(req.Type, domain.TransactionExpense),
		Amount:          req.Amount,
		Currency:        mockCurrency,
		RelatedWalletID: req.TargetWalletID,
		UserID:          mockUserID,
		CategoryID:      req.CategoryID,
		Description:     req.Description,
		TransactionDate: cmp.Or(req.TransactionDate, s.clock().Format(time.DateOnly)),
	}
	s.transactions = append(s.transactions, t)
	return &t, nil
}

func (s *mockTransactions) Update(_ context.Context, id string, req domain.UpdateTransactionRequest) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrTransactionNotFound
	}
	t := &s.transactions[i]
	if req.Type != nil {
		t.Type = *req.Type
	}
	if req.Amount != nil {
		t.Amount = *req.Amount
	}
	if req.CategoryID != nil {
		t.CategoryID = *req.CategoryID
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.TransactionDate != nil {
		t.TransactionDate = *req.TransactionDate
	}
	out := *t
	return &out, nil
}

func (s *mockTransactions) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrTransactionNotFound
	}
	s.transactions = slices.Delete(s.transactions, i, i+1)
	return nil
}
