package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/yndnr/moneytracker-go/internal/gateway"
)

// apiBase is embedded by every api-backed source.
type apiBase struct {
	client *gateway.Client
	tokens TokenSource
}

// options builds gateway options carrying the current access token.
func (b apiBase) options(ctx context.Context, method string, body any) gateway.Options {
	return gateway.Options{
		Method: method,
		Body:   body,
		Token:  b.tokens.AccessToken(ctx),
	}
}

// resourcePath joins segments into an absolute path, escaping each one.
func resourcePath(segments ...string) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(s))
	}
	return sb.String()
}
