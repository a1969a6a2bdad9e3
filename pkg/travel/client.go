package travel

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/voyagekit/skytravel/pkg/cache"
)

// BaseURL is the root of the partner API all product endpoints live under.
const BaseURL = "http://partners.api.skyscanner.net/apiservices"

const httpTimeout = 10 * time.Second

// Client dispatches HTTP requests to the provider. It owns the per-client
// configuration, the default headers, and an optional transparent response
// cache for GET endpoints.
//
// A Client is safe for concurrent use; every call decodes into fresh values
// and linking never mutates shared state.
type Client struct {
	http     *http.Client
	cfg      Config
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *log.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCache enables transparent caching of GET responses with the given TTL.
func WithCache(backend cache.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = backend
		c.cacheTTL = ttl
	}
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Client with the given configuration.
// Unset Config fields are populated with their documented defaults.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		http:   &http.Client{Timeout: httpTimeout},
		cfg:    cfg.withDefaults(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the client configuration with defaults applied.
func (c *Client) Config() Config { return c.cfg }

// Logger returns the client's logger.
func (c *Client) Logger() *log.Logger { return c.logger }

// BaseQuery returns the parameters sent with every request: apiKey plus the
// localisation triple.
func (c *Client) BaseQuery() url.Values {
	return url.Values{
		"apiKey":   {c.cfg.APIKey},
		"country":  {c.cfg.Country},
		"currency": {c.cfg.Currency},
		"locale":   {c.cfg.Locale},
	}
}

// Response captures one provider answer for later inspection.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Message returns the provider's documented description of the status.
func (r *Response) Message() string {
	return StatusMessage(r.Status)
}

// Do performs one HTTP request. GET and HEAD encode params as a query
// string; other verbs send them as a form body.
//
// Network failures return a *TransportError with no status. Statuses of 400
// and above return the captured *Response together with a *TransportError
// carrying the status and body, so callers can inspect both. All other
// statuses (including 204 and 304) are returned without error; callers
// interpret them via [PollDone] and Response.Status.
func (c *Client) Do(ctx context.Context, method, rawURL string, params url.Values) (*Response, error) {
	return c.DoWithHeaders(ctx, method, rawURL, params, nil)
}

// DoWithHeaders performs Do with extra request headers, as some gateway
// endpoints require beyond the defaults.
func (c *Client) DoWithHeaders(ctx context.Context, method, rawURL string, params url.Values, header http.Header) (*Response, error) {
	var body io.Reader
	isQuery := method == http.MethodGet || method == http.MethodHead
	if isQuery {
		if len(params) > 0 {
			sep := "?"
			if strings.Contains(rawURL, "?") {
				sep = "&"
			}
			rawURL += sep + params.Encode()
		}
	} else if len(params) > 0 {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if !isQuery {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.cfg.UserIP != "" {
		req.Header.Set("X-Forwarded-For", c.cfg.UserIP)
	}
	for name, values := range header {
		req.Header[name] = values
	}

	c.logger.Debug("request", "method", method, "url", rawURL)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: err}
	}

	out := &Response{Status: resp.StatusCode, Header: resp.Header, Body: data}
	if resp.StatusCode >= 400 {
		c.logger.Debug("request failed", "status", out.Message())
		return out, &TransportError{Status: resp.StatusCode, Body: data}
	}
	return out, nil
}

// GetJSON performs a GET request and decodes the response body into v.
// When a cache is configured, a fresh 200 body is stored under a key derived
// from the URL and parameters, and later calls are served from the cache
// until the entry expires.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values, v any) error {
	key := cache.Key("travel", rawURL, params.Encode())
	if c.cache != nil {
		if data, ok, _ := c.cache.Get(ctx, key); ok {
			return json.Unmarshal(data, v)
		}
	}

	resp, err := c.Do(ctx, http.MethodGet, rawURL, params)
	if err != nil {
		return err
	}
	if err := resp.Decode(v); err != nil {
		return err
	}
	if c.cache != nil && resp.Status == 200 {
		if err := c.cache.Set(ctx, key, resp.Body, c.cacheTTL); err != nil {
			c.logger.Warn("cache write failed", "err", err)
		}
	}
	return nil
}
