package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/circuitbreaker"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	nrpkg "github.com/victoreduardo21/drb-operacao/internal/pkg/newrelic"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/retry"
)

// maxBodyBytes bounds how much of an upstream body is read
const maxBodyBytes = 8 << 20

// EnhancedClient wraps http.Client with retry and circuit breaker functionality
type EnhancedClient struct {
	client         *http.Client
	retrier        *retry.Retrier
	circuitManager *circuitbreaker.Manager
	logger         *logger.ZapLogger
}

// Option customizes an EnhancedClient
type Option func(*EnhancedClient)

// WithRetryConfig overrides the default backoff policy
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *EnhancedClient) {
		c.retrier = retry.New(cfg, c.logger)
	}
}

// WithCircuitManager shares a breaker manager between clients
func WithCircuitManager(m *circuitbreaker.Manager) Option {
	return func(c *EnhancedClient) {
		c.circuitManager = m
	}
}

// NewEnhancedClient creates a new enhanced HTTP client
func NewEnhancedClient(log *logger.ZapLogger, timeout time.Duration, opts ...Option) *EnhancedClient {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &EnhancedClient{
		client:         &http.Client{Timeout: timeout},
		retrier:        retry.NewWithDefaults(log),
		circuitManager: circuitbreaker.NewManager(log),
		logger:         log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HTTPError is returned for non-2xx upstream responses
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: status %d", e.Message, e.StatusCode)
}

// Do executes an HTTP request with retry and circuit breaker protection.
// 5xx responses are retried; any non-2xx response ends as *HTTPError.
func (c *EnhancedClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	serviceName := req.URL.Host
	if serviceName == "" {
		serviceName = "unknown"
	}

	var resp *http.Response
	err := c.circuitManager.Execute(ctx, serviceName, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			r, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.client.Do(req.Clone(ctx))
			})
			if err != nil {
				return err
			}

			switch {
			case r.StatusCode >= 500:
				r.Body.Close()
				return &HTTPError{StatusCode: r.StatusCode, Message: "Server error"}
			case r.StatusCode >= 300:
				r.Body.Close()
				return retry.Permanent(&HTTPError{StatusCode: r.StatusCode, Message: "Unexpected response"})
			}
			resp = r
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Get performs a GET request with enhanced features
func (c *EnhancedClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.Do(ctx, req)
}

// GetJSON performs a GET and decodes the JSON body into out
func (c *EnhancedClient) GetJSON(ctx context.Context, url string, out interface{}) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (c *EnhancedClient) GetCircuitBreakerStats() map[string]circuitbreaker.Stats {
	return c.circuitManager.GetStats()
}

// WithQuery merges params into the query string of rawURL, keeping any
// parameters already present.
func WithQuery(rawURL string, params url.Values) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
