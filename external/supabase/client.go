// Package supabase reads the hosted league database through its PostgREST
// endpoint and verifies member tokens against its auth endpoint.
package supabase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/platform/resilience"
	"github.com/riskibarqy/league-portal/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const (
	restPath       = "/rest/v1/"
	maxBodyBytes   = 8 << 20
	defaultTimeout = 10 * time.Second
)

var errSupabaseTransient = crerr.New("supabase transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.SingleFlight[[]byte]
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	parsed, err := url.Parse(baseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, crerr.Newf("invalid supabase base url %q", cfg.BaseURL)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, crerr.New("supabase api key is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "league-portal",
			MaxResponseBodySize: maxBodyBytes,
		}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		timeout:    timeout,
		maxRetries: max(cfg.MaxRetries, 0),
		backoff:    backoff,
		logger:     logger,
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
	}, nil
}

// Filter is one PostgREST column filter such as status=eq.completed.
type Filter struct {
	Column   string
	Operator string
	Value    string
}

func Eq(column, value string) Filter {
	return Filter{Column: column, Operator: "eq", Value: value}
}

func Is(column, value string) Filter {
	return Filter{Column: column, Operator: "is", Value: value}
}

// Query selects rows of one table. Select uses PostgREST embedding syntax.
type Query struct {
	Select  string
	Filters []Filter
	Order   []string
	Limit   int
}

// Select fetches the rows of table matching q and decodes them into target,
// which must point to a slice.
func (c *Client) Select(ctx context.Context, table string, q Query, target any) error {
	fullURL := c.tableURL(table, q)

	raw, err, _ := c.flight.Do(fullURL, func() ([]byte, error) {
		var body []byte
		err := c.breaker.Do(isCircuitFailure, func() error {
			var reqErr error
			body, reqErr = c.get(ctx, fullURL, c.apiKey)
			return reqErr
		})
		return body, err
	})
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "supabase circuit breaker rejected request", "table", table, "state", string(c.breaker.State()))
			return fmt.Errorf("%w: league store is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		if crerr.Is(err, errSupabaseTransient) {
			return fmt.Errorf("%w: select %s: %w", usecase.ErrDependencyUnavailable, table, err)
		}
		return fmt.Errorf("select %s: %w", table, err)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode %s rows: %w", table, err)
	}
	return nil
}

func (c *Client) tableURL(table string, q Query) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString(restPath)
	_, _ = buf.WriteString(url.PathEscape(table))

	selectExpr := compactSelect(q.Select)
	if selectExpr == "" {
		selectExpr = "*"
	}
	_, _ = buf.WriteString("?select=")
	_, _ = buf.WriteString(url.QueryEscape(selectExpr))

	for _, f := range q.Filters {
		_ = buf.WriteByte('&')
		_, _ = buf.WriteString(url.QueryEscape(f.Column))
		_ = buf.WriteByte('=')
		_, _ = buf.WriteString(url.QueryEscape(f.Operator + "." + f.Value))
	}
	if len(q.Order) > 0 {
		_, _ = buf.WriteString("&order=")
		_, _ = buf.WriteString(url.QueryEscape(strings.Join(q.Order, ",")))
	}
	if q.Limit > 0 {
		_, _ = fmt.Fprintf(buf, "&limit=%d", q.Limit)
	}

	return buf.String()
}

// get performs a GET with retries on transient failures. bearer is sent as
// the Authorization token.
func (c *Client) get(ctx context.Context, fullURL, bearer string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, status, err := c.do(ctx, fullURL, bearer)
		switch {
		case err != nil:
			lastErr = fmt.Errorf("%w: send request: %v", errSupabaseTransient, err)
		case status >= 200 && status < 300:
			return body, nil
		case isRetryableStatus(status):
			lastErr = fmt.Errorf("%w: status=%d body=%s", errSupabaseTransient, status, abbreviateBody(body))
		default:
			return nil, &StatusError{StatusCode: status, Body: abbreviateBody(body)}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "supabase request failed", "url", redactURL(fullURL), "attempts", c.maxRetries+1, "error", lastErr)
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, fullURL, bearer string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return nil, 0, err
	}

	body := append([]byte(nil), resp.Body()...)
	return body, resp.StatusCode(), nil
}

// StatusError is a non-retryable upstream response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("supabase status=%d body=%s", e.StatusCode, e.Body)
}
