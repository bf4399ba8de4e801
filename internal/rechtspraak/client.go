package rechtspraak

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/models"
	"github.com/rolfvandort/Rolfiessuperzoekert/pkg/log"
)

const (
	// DefaultBaseURL - public open-data host.
	DefaultBaseURL = "https://data.rechtspraak.nl"

	searchPath  = "/uitspraken/zoeken"
	contentPath = "/uitspraken/content"

	defaultUserAgent = "rechtspraak-gateway/1.0"
)

// Options - client settings.
type Options struct {
	// BaseURL - scheme and host of the API, DefaultBaseURL when empty.
	BaseURL string
	// HTTPClient - outbound client; timeouts and proxies are configured by the caller.
	HTTPClient *http.Client
	UserAgent  string
	// Now - clock for the <updated> fallback, time.Now when nil.
	Now     func() time.Time
	Metrics *Metrics
}

// Client talks to the Rechtspraak.nl open-data API.
// Every method performs exactly one outbound request, without retries.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	now       func() time.Time
	metrics   *Metrics
}

// New creates a Client.
func New(opts Options) *Client {
	c := &Client{
		http:      opts.HTTPClient,
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		userAgent: opts.UserAgent,
		now:       opts.Now,
		metrics:   opts.Metrics,
	}

	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if c.now == nil {
		c.now = time.Now
	}

	return c
}

// SearchURL returns the upstream URL for the filters.
func (c *Client) SearchURL(f models.SearchFilters) string {
	return c.baseURL + searchPath + "?" + BuildQuery(f).Encode()
}

// ContentURL returns the full-content URL of a document.
func (c *Client) ContentURL(ecli string) string {
	return c.baseURL + contentPath + "?" + url.Values{"id": {ecli}}.Encode()
}

// Search runs one search and normalizes the Atom response.
//
// Errors:
//   - *UpstreamError - transport failure or non-2xx status;
//   - *ParseError - the body is not a parseable feed.
func (c *Client) Search(ctx context.Context, f models.SearchFilters) (*models.SearchResultPage, error) {
	const op = "rechtspraak.Search"

	u := c.SearchURL(f)
	lg := log.From(ctx)

	body, err := c.get(ctx, endpointSearch, u, "application/atom+xml, application/xml")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	page, err := Normalize(body, c.now)
	if err != nil {
		lg.Error("upstream_parse_failed",
			slog.String("op", op),
			slog.String("url", u),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Debug("upstream_search_ok",
		slog.String("op", op),
		slog.String("url", u),
		slog.Int("total", page.Total),
		slog.Int("results", len(page.Results)),
	)

	return page, nil
}

// Content fetches the full document as raw XML.
func (c *Client) Content(ctx context.Context, ecli string) ([]byte, error) {
	const op = "rechtspraak.Content"

	body, err := c.get(ctx, endpointContent, c.ContentURL(ecli), "application/xml")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return body, nil
}

// Fetch performs a GET on a path of the API host, used for the value lists.
func (c *Client) Fetch(ctx context.Context, path string) ([]byte, error) {
	const op = "rechtspraak.Fetch"

	body, err := c.get(ctx, endpointList, c.baseURL+"/"+strings.TrimLeft(path, "/"), "application/xml")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return body, nil
}

func (c *Client) get(ctx context.Context, endpoint, u, accept string) ([]byte, error) {
	const op = "rechtspraak.get"

	lg := log.From(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &UpstreamError{Endpoint: endpoint, URL: u, Err: err}
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)

	lg.Info("upstream_request",
		slog.String("op", op),
		slog.String("endpoint", endpoint),
		slog.String("url", u),
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(endpoint, "error", time.Since(start))
		lg.Warn("upstream_http_error",
			slog.String("op", op),
			slog.String("url", u),
			slog.String("err", err.Error()),
		)
		return nil, &UpstreamError{Endpoint: endpoint, URL: u, Err: err}
	}
	defer resp.Body.Close()

	c.metrics.observe(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		lg.Warn("upstream_bad_status",
			slog.String("op", op),
			slog.String("url", u),
			slog.Int("status", resp.StatusCode),
		)
		return nil, &UpstreamError{Endpoint: endpoint, URL: u, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		lg.Warn("upstream_read_failed",
			slog.String("op", op),
			slog.String("url", u),
			slog.String("err", err.Error()),
		)
		return nil, &UpstreamError{Endpoint: endpoint, URL: u, Err: err}
	}

	return body, nil
}
