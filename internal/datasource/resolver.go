package datasource

import "strings"

// Mode is the overall data mode.
type Mode string

// Supported modes.
const (
	ModeMock   Mode = "mock"
	ModeAPI    Mode = "api"
	ModeHybrid Mode = "hybrid"
)

// ParseMode normalizes s. Unset or unrecognised values resolve to ModeMock.
func ParseMode(s string) Mode {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeMock, ModeAPI, ModeHybrid:
		return m
	default:
		return ModeMock
	}
}

// Source is where a single domain's data comes from.
type Source string

// Supported sources.
const (
	SourceMock Source = "mock"
	SourceAPI  Source = "api"
)

// Domain names a backend resource family.
type Domain string

// Known domains.
const (
	DomainAuth         Domain = "auth"
	DomainWallets      Domain = "wallets"
	DomainTransactions Domain = "transactions"
	DomainCategories   Domain = "categories"
	DomainUsers        Domain = "users"
	DomainDashboard    Domain = "dashboard"
)

var allDomains = []Domain{
	DomainAuth,
	DomainWallets,
	DomainTransactions,
	DomainCategories,
	DomainUsers,
	DomainDashboard,
}

// DefaultBaseURL is used when no base URL is supplied.
const DefaultBaseURL = "/api"

// Overrides are explicit per-domain sources. A value other than exactly
// "mock" or "api" is ignored.
type Overrides struct {
	Wallets      string
	Transactions string
}

// Config is the resolved, immutable data-source decision.
type Config struct {
	mode      Mode
	baseURL   string
	perDomain map[Domain]Source
}

// Resolve computes the per-domain sources for mode and overrides.
func Resolve(mode, baseURL string, overrides Overrides) Config {
	m := ParseMode(mode)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	per := make(map[Domain]Source, len(allDomains))

	switch m {
	case ModeAPI:
		for _, d := range allDomains {
			per[d] = SourceAPI
		}
	case ModeHybrid:
		for _, d := range allDomains {
			per[d] = SourceMock
		}
		per[DomainAuth] = SourceAPI
	default:
		for _, d := range allDomains {
			per[d] = SourceMock
		}
	}

	if s, ok := parseOverride(overrides.Wallets); ok {
		per[DomainWallets] = s
	}
	if s, ok := parseOverride(overrides.Transactions); ok {
		per[DomainTransactions] = s
	}

	per[DomainUsers] = per[DomainAuth]
	per[DomainDashboard] = per[DomainWallets]

	return Config{mode: m, baseURL: baseURL, perDomain: per}
}

func parseOverride(v string) (Source, bool) {
	switch Source(v) {
	case SourceMock, SourceAPI:
		return Source(v), true
	default:
		return "", false
	}
}

// Mode returns the normalized overall mode.
func (c Config) Mode() Mode {
	if c.mode == "" {
		return ModeMock
	}
	return c.mode
}

// BaseURL returns the backend base URL.
func (c Config) BaseURL() string {
	if c.baseURL == "" {
		return DefaultBaseURL
	}
	return c.baseURL
}

// Source returns the resolved source for d. Unknown domains are mock.
func (c Config) Source(d Domain) Source {
	if s, ok := c.perDomain[d]; ok {
		return s
	}
	return SourceMock
}

// IsAPI reports whether d is served by the remote API.
func (c Config) IsAPI(d Domain) bool {
	return c.Source(d) == SourceAPI
}

// UsesAPI reports whether any domain is served by the remote API.
func (c Config) UsesAPI() bool {
	for _, s := range c.perDomain {
		if s == SourceAPI {
			return true
		}
	}
	return false
}

// Domains returns every known domain in a stable order.
func (c Config) Domains() []Domain {
	out := make([]Domain, len(allDomains))
	copy(out, allDomains)
	return out
}

// Sources returns a copy of the per-domain decision.
func (c Config) Sources() map[Domain]Source {
	out := make(map[Domain]Source, len(allDomains))
	for _, d := range allDomains {
		out[d] = c.Source(d)
	}
	return out
}
