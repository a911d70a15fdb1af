package gateway

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/yndnr/moneytracker-go/internal/telemetry/metric"
)

// DefaultUserAgent is sent when no WithUserAgent option is given.
const DefaultUserAgent = "moneytracker-cli/dev"

// Options describe one request.
type Options struct {
	// Method defaults to GET.
	Method string
	// Body is JSON-encoded when non-nil.
	Body any
	// Token adds "Authorization: Bearer <Token>" when non-empty.
	Token string
	// Query is appended to the path when non-empty.
	Query url.Values
}

// Client sends requests to the backend.
type Client struct {
	baseURL   string
	client    *http.Client
	limiter   *rate.Limiter
	metrics   *metric.Registry
	logger    *slog.Logger
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets the http.Client timeout. Zero leaves timing to the transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithTLSConfig sets the TLS configuration of the transport. A nil config
// keeps the default transport.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *Client) {
		if cfg == nil {
			return
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = cfg
		c.client.Transport = transport
	}
}

// WithRateLimit gates every request through a token bucket. A non-positive
// rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMetrics records request counts and latencies.
func WithMetrics(m *metric.Registry) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithLogger sets the logger for per-request debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a client for baseURL. Paths are appended to baseURL verbatim.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   baseURL,
		client:    &http.Client{},
		logger:    slog.Default(),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs a request and decodes a successful payload into out.
//
// out may be nil. An empty body leaves out untouched and is not an error.
// A non-2xx status returns *RequestError.
func (c *Client) Do(ctx context.Context, path string, opts Options, out any) error {
	payload, err := c.send(ctx, path, opts)
	if err != nil {
		return err
	}
	return payload.Decode(out)
}

func (c *Client) send(ctx context.Context, path string, opts Options) (Payload, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + path
	if len(opts.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + opts.Query.Encode()
	}

	var body io.Reader
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return Payload{}, fmt.Errorf("marshal body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return Payload{}, fmt.Errorf("create request: %w", err)
	}
	c.addHeaders(req, opts.Token)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Payload{}, fmt.Errorf("rate limit: %w", err)
		}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(method, 0, time.Since(start))
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return Payload{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.ObserveRequest(method, resp.StatusCode, elapsed)
	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"elapsed", elapsed,
		"authenticated", opts.Token != "")
	if err != nil {
		return Payload{}, fmt.Errorf("read response: %w", err)
	}

	payload := ParsePayload(raw)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return payload, newRequestError(resp, payload)
	}
	return payload, nil
}

// addHeaders adds authentication and common headers.
func (c *Client) addHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func newRequestError(resp *http.Response, payload Payload) *RequestError {
	msg, ok := payload.Message()
	if !ok {
		msg = statusPhrase(resp)
		if msg == "" {
			msg = DefaultErrorMessage
		}
	}
	return &RequestError{
		Message: msg,
		Status:  resp.StatusCode,
		Details: payload.Value(),
	}
}

// statusPhrase returns the reason phrase of the status line ("Not Found"
// from "404 Not Found").
func statusPhrase(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}

// Request performs a request and returns the decoded payload. An empty
// payload yields the zero value of T.
func Request[T any](ctx context.Context, c *Client, path string, opts Options) (T, error) {
	var out T
	if err := c.Do(ctx, path, opts, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// RequestList performs a request whose payload is either a bare JSON array
// or an object with a "content" array, and returns the elements.
func RequestList[T any](ctx context.Context, c *Client, path string, opts Options) ([]T, error) {
	payload, err := c.send(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	if payload.Kind == PayloadEmpty {
		return nil, nil
	}

	content, ok := payload.Content()
	if !ok {
		return nil, fmt.Errorf("decode %s: expected a JSON array or an object with a content array", path)
	}
	var out []T
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}
