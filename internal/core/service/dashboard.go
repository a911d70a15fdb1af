package service

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yndnr/moneytracker-go/internal/core/domain"
	"github.com/yndnr/moneytracker-go/internal/datasource"
	"github.com/yndnr/moneytracker-go/internal/gateway"
)

// DefaultNetWorthPeriod is used when no period is given.
const DefaultNetWorthPeriod = "1M"

// DashboardSource serves the dashboard domain.
type DashboardSource interface {
	Summary(ctx context.Context) (*domain.Dashboard, error)
	// NetWorthHistory returns the series for period (7D, 1M, 3M, 6M or 1Y).
	NetWorthHistory(ctx context.Context, period string) (*domain.NetWorthHistory, error)
}

// NewDashboardSource returns the dashboard source for the given data source.
func NewDashboardSource(source datasource.Source, client *gateway.Client, tokens TokenSource, opts ...Option) DashboardSource {
	if source == datasource.SourceAPI {
		return &apiDashboard{apiBase{client: client, tokens: tokens}}
	}
	o := buildOptions(opts)
	return &mockDashboard{clock: o.clock}
}

func normalizePeriod(p string) string {
	p = strings.ToUpper(strings.TrimSpace(p))
	if p == "" {
		return DefaultNetWorthPeriod
	}
	return p
}

type apiDashboard struct {
	apiBase
}

func (s *apiDashboard) Summary(ctx context.Context) (*domain.Dashboard, error) {
	return gateway.Request[*domain.Dashboard](ctx, s.client, "/dashboard", s.options(ctx, http.MethodGet, nil))
}

func (s *apiDashboard) NetWorthHistory(ctx context.Context, period string) (*domain.NetWorthHistory, error) {
	opts := s.options(ctx, http.MethodGet, nil)
	opts.Query = url.Values{"period": {normalizePeriod(period)}}
	return gateway.Request[*domain.NetWorthHistory](ctx, s.client, "/dashboard/net-worth-history", opts)
}

// netWorthShape is the sampling of one mock period.
type netWorthShape struct {
	points int
	step   int // days
	label  string
}

var netWorthPeriods = map[string]netWorthShape{
	"7D": {points: 7, step: 1, label: "Mon"},
	"1M": {points: 30, step: 1, label: "Jan 2"},
	"3M": {points: 13, step: 7, label: "Jan 2"},
	"6M": {points: 26, step: 7, label: "Jan 2"},
	"1Y": {points: 12, step: 30, label: "Jan"},
}

// mockDashboard serves the static dashboard fixture and a synthetic net
// worth series ending at its total balance.
type mockDashboard struct {
	clock func() time.Time
}

func (s *mockDashboard) Summary(context.Context) (*domain.Dashboard, error) {
	return fixtureDashboard(), nil
}

func (s *mockDashboard) NetWorthHistory(_ context.Context, period string) (*domain.NetWorthHistory, error) {
	period = normalizePeriod(period)
	shape, ok := netWorthPeriods[period]
	if !ok {
		return nil, domain.ErrInvalidArgument.WithDetails("unknown period " + period)
	}

	total := fixtureDashboard().TotalBalance
	start := total / 1.05
	wobble := total * 0.004
	today := s.clock()

	history := make([]domain.NetWorthPoint, shape.points)
	for i := range history {
		back := shape.points - 1 - i
		value := total
		if back > 0 {
			trend := start + (total-start)*float64(i)/float64(shape.points-1)
			value = round2(trend + wobble*math.Sin(float64(i)*1.3))
		}
		day := today.AddDate(0, 0, -back*shape.step)
		history[i] = domain.NetWorthPoint{
			Date:  day.Format(time.DateOnly),
			Value: value,
			Label: day.Format(shape.label),
		}
	}

	first := history[0].Value
	change := round2(total - first)
	var pct float64
	if first != 0 {
		pct = round2(change / first * 100)
	}
	return &domain.NetWorthHistory{
		History:             history,
		CurrentNetWorth:     total,
		PeriodChange:        change,
		PeriodChangePercent: pct,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
