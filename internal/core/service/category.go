package service

import (
	"context"
	"net/http"
	"slices"
	"sync"

	"github.com/yndnr/moneytracker-go/internal/core/domain"
	"github.com/yndnr/moneytracker-go/internal/datasource"
	"github.com/yndnr/moneytracker-go/internal/gateway"
)

// CategorySource serves the categories domain.
type CategorySource interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Income(ctx context.Context) ([]domain.Category, error)
	Expense(ctx context.Context) ([]domain.Category, error)
	System(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, req domain.CreateCategoryRequest) (*domain.Category, error)
	Update(ctx context.Context, id string, req domain.UpdateCategoryRequest) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// NewCategorySource returns the category source for the given data source.
func NewCategorySource(source datasource.Source, client *gateway.Client, tokens TokenSource, opts ...Option) CategorySource {
	if source == datasource.SourceAPI {
		return &apiCategories{apiBase{client: client, tokens: tokens}}
	}
	o := buildOptions(opts)
	return &mockCategories{
		categories: fixtureCategories(),
		ids:        o.ids,
	}
}

// ============================================================================
// API
// ============================================================================

type apiCategories struct {
	apiBase
}

func (s *apiCategories) list(ctx context.Context, path string) ([]domain.Category, error) {
	return gateway.RequestList[domain.Category](ctx, s.client, path, s.options(ctx, http.MethodGet, nil))
}

func (s *apiCategories) List(ctx context.Context) ([]domain.Category, error) {
	return s.list(ctx, "/categories")
}

func (s *apiCategories) Income(ctx context.Context) ([]domain.Category, error) {
	return s.list(ctx, "/categories/income")
}

func (s *apiCategories) Expense(ctx context.Context) ([]domain.Category, error) {
	return s.list(ctx, "/categories/expense")
}

func (s *apiCategories) System(ctx context.Context) ([]domain.Category, error) {
	return s.list(ctx, "/categories/system")
}

func (s *apiCategories) Get(ctx context.Context, id string) (*domain.Category, error) {
	return gateway.Request[*domain.Category](ctx, s.client, resourcePath("categories", id), s.options(ctx, http.MethodGet, nil))
}

func (s *apiCategories) Create(ctx context.Context, req domain.CreateCategoryRequest) (*domain.Category, error) {
	return gateway.Request[*domain.Category](ctx, s.client, "/categories", s.options(ctx, http.MethodPost, req))
}

func (s *apiCategories) Update(ctx context.Context, id string, req domain.UpdateCategoryRequest) (*domain.Category, error) {
	return gateway.Request[*domain.Category](ctx, s.client, resourcePath("categories", id), s.options(ctx, http.MethodPut, req))
}

func (s *apiCategories) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, resourcePath("categories", id), s.options(ctx, http.MethodDelete, nil), nil)
}

// ============================================================================
// Mock
// ============================================================================

type mockCategories struct {
	mu         sync.Mutex
	categories []domain.Category
	ids        IDGenerator
}

func (s *mockCategories) indexOf(id string) int {
	return slices.IndexFunc(s.categories, func(c domain.Category) bool { return c.ID == id })
}

func (s *mockCategories) filter(keep func(domain.Category) bool) []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Category
	for _, c := range s.categories {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s *mockCategories) List(context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories), nil
}

func (s *mockCategories) Income(context.Context) ([]domain.Category, error) {
	return s.filter(func(c domain.Category) bool { return c.Type == domain.CategoryIncome }), nil
}

func (s *mockCategories) Expense(context.Context) ([]domain.Category, error) {
	return s.filter(func(c domain.Category) bool { return c.Type == domain.CategoryExpense }), nil
}

func (s *mockCategories) System(context.Context) ([]domain.Category, error) {
	return s.filter(func(c domain.Category) bool { return c.IsSystem }), nil
}

func (s *mockCategories) Get(_ context.Context, id string) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrCategoryNotFound
	}
	c := s.categories[i]
	return &c, nil
}

func (s *mockCategories) Create(_ context.Context, req domain.CreateCategoryRequest) (*domain.Category, error) {
	switch {
	case req.Name == "":
		return nil, domain.ErrMissingArgument.WithDetails("name")
	case req.Type != domain.CategoryIncome && req.Type != domain.CategoryExpense:
		return nil, domain.ErrInvalidArgument.WithDetails("type must be INCOME or EXPENSE")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.Category{
		ID:    s.ids(),
		Name:  req.Name,
		Type:  req.Type,
		Icon:  req.Icon,
		Color: req.Color,
	}
	s.categories = append(s.categories, c)
	return &c, nil
}

func (s *mockCategories) Update(_ context.Context, id string, req domain.UpdateCategoryRequest) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrCategoryNotFound
	}
	c := &s.categories[i]
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Type != nil {
		c.Type = *req.Type
	}
	if req.Icon != nil {
		c.Icon = *req.Icon
	}
	if req.Color != nil {
		c.Color = *req.Color
	}
	out := *c
	return &out, nil
}

func (s *mockCategories) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrCategoryNotFound
	}
	s.categories = slices.Delete(s.categories, i, i+1)
	return nil
}
