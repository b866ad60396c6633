package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/poiesic/schoolfinder/core"
	"github.com/poiesic/schoolfinder/storage"
)

const (
	EndpointAutocomplete = "/autocomplete/schools"
	EndpointSchools      = "/schools"

	maxResponseBytes = 10 * 1024 * 1024
	maxErrorBytes    = 64 * 1024
)

// Client is the HTTP implementation of Directory.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	cache      storage.ResponseCache
	limiter    *RateLimiter
	logger     *slog.Logger
	outbound   atomic.Int64
}

var _ Directory = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client) error

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) error {
		if hc != nil {
			c.httpClient = hc
		}
		return nil
	}
}

// WithRateLimiter shares an existing limiter instead of building one from
// the config.
func WithRateLimiter(l *RateLimiter) ClientOption {
	return func(c *Client) error {
		if l != nil {
			c.limiter = l
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewClient creates a directory client. cache may be nil, in which case
// every call goes to the network.
func NewClient(cfg *Config, cache storage.ResponseCache, opts ...ClientOption) (*Client, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		cache:      cache,
		limiter:    NewRateLimiter(cfg.RateWindow, cfg.MaxCallsPerWindow, cfg.MinCallDelay),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// OutboundCalls returns how many HTTP requests the client has issued.
// Cache hits are not counted.
func (c *Client) OutboundCalls() int64 {
	return c.outbound.Load()
}

// Call issues one logical GET against endpoint and returns the raw JSON
// body, serving it from the cache when a fresh entry exists.
func (c *Client) Call(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	key := cacheKey(endpoint, params)

	if c.cache != nil {
		data, hit, err := c.cache.Get(ctx, key)
		if err != nil {
			c.logger.Warn("response cache read failed", "key", key, "err", err)
		} else if hit {
			c.logger.Debug("response cache hit", "endpoint", endpoint)
			return data, nil
		}
	}

	var body []byte
	err := RetryWithBackoff(ctx, c.logger, func() error {
		b, err := c.do(ctx, endpoint, params)
		if err != nil {
			return err
		}
		body = b
		return nil
	}, c.cfg.MaxAttempts, c.cfg.RetryDelay, isTransient)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, key, body); err != nil {
			c.logger.Warn("response cache write failed", "key", key, "err", err)
		}
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	for k, vs := range params {
		query[k] = append([]string(nil), vs...)
	}
	query.Set("appID", c.cfg.AppID)
	query.Set("appKey", c.cfg.AppKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("directory: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.outbound.Add(1)
	c.logger.Debug("directory call", "endpoint", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory: http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		derr := newDirectoryError(resp.StatusCode, string(detail))
		c.logger.Warn("directory call failed", "endpoint", endpoint, "status", resp.StatusCode)
		return nil, derr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("directory: read body: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s returned invalid JSON", ErrMalformedResponse, endpoint)
	}
	return body, nil
}

// Autocomplete calls GET /autocomplete/schools.
func (c *Client) Autocomplete(ctx context.Context, q AutocompleteQuery) ([]RawSchool, error) {
	params := url.Values{}
	params.Set("q", q.Q)
	params.Set("qSearchCityStateName", "true")
	if q.State != "" {
		params.Set("st", q.State)
	}
	if q.ReturnCount > 0 {
		params.Set("returnCount", strconv.Itoa(q.ReturnCount))
	}

	body, err := c.Call(ctx, EndpointAutocomplete, params)
	if err != nil {
		return nil, err
	}

	var payload struct {
		SchoolMatches []RawSchool `json:"schoolMatches"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: autocomplete: %w", ErrMalformedResponse, err)
	}
	return payload.SchoolMatches, nil
}

// Schools calls GET /schools.
func (c *Client) Schools(ctx context.Context, q SchoolsQuery) ([]RawSchool, error) {
	params := url.Values{}
	if q.Q != "" {
		params.Set("q", q.Q)
	}
	if q.City != "" {
		params.Set("city", q.City)
	}
	if q.State != "" {
		params.Set("st", q.State)
	}
	if q.PerPage > 0 {
		params.Set("perPage", strconv.Itoa(q.PerPage))
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.NameOnly {
		params.Set("qSearchSchoolNameOnly", "true")
	}

	body, err := c.Call(ctx, EndpointSchools, params)
	if err != nil {
		return nil, err
	}

	var payload struct {
		SchoolList []RawSchool `json:"schoolList"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: schools: %w", ErrMalformedResponse, err)
	}
	return payload.SchoolList, nil
}

// School calls GET /schools/{id}.
func (c *Client) School(ctx context.Context, id string) (RawSchool, error) {
	if id == "" {
		return nil, core.ErrEmptySchoolID
	}

	body, err := c.Call(ctx, EndpointSchools+"/"+url.PathEscape(id), url.Values{})
	if err != nil {
		return nil, err
	}

	var raw RawSchool
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: school %s: %w", ErrMalformedResponse, id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: school %s: empty body", ErrMalformedResponse, id)
	}
	return raw, nil
}

// cacheKey is the endpoint plus the sorted, encoded params. Credentials are
// added later and never appear in the key.
func cacheKey(endpoint string, params url.Values) string {
	return endpoint + "?" + params.Encode()
}

// isTransient reports whether err is worth retrying: network failures and
// 5xx responses. Client errors, malformed bodies and context cancellation
// are final.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrMalformedResponse) {
		return false
	}
	var derr *DirectoryError
	if errors.As(err, &derr) {
		return derr.Retryable()
	}
	return true
}
