// Package firecrawl provides a client for the Firecrawl scraping API,
// implementing the siteforge SiteMapper and PageScraper contracts.
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/siteforge"
)

// DefaultBaseURL is the hosted Firecrawl endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// DefaultTimeout bounds individual API calls.
const DefaultTimeout = 60 * time.Second

// Compile-time interface verification.
var (
	_ siteforge.SiteMapper  = (*Client)(nil)
	_ siteforge.PageScraper = (*Client)(nil)
)

// Client talks to the Firecrawl map and scrape endpoints.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used for self-hosted instances
// and tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a Client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type mapRequest struct {
	URL   string `json:"url"`
	Limit int    `json:"limit,omitempty"`
}

type mapResponse struct {
	Success bool     `json:"success"`
	Links   []string `json:"links"`
}

// MapSite enumerates up to limit discoverable page URLs for the site.
func (c *Client) MapSite(ctx context.Context, url string, limit int) ([]string, error) {
	var resp mapResponse
	if err := c.post(ctx, "/v1/map", mapRequest{URL: url, Limit: limit}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, siteforge.Errorf(siteforge.EUNAVAILABLE, "map request failed for %s", url)
	}
	if limit > 0 && len(resp.Links) > limit {
		resp.Links = resp.Links[:limit]
	}
	return resp.Links, nil
}

type scrapeRequest struct {
	URL         string   `json:"url"`
	Formats     []string `json:"formats,omitempty"`
	IncludeTags []string `json:"includeTags,omitempty"`
	ExcludeTags []string `json:"excludeTags,omitempty"`
	OnlyMain    bool     `json:"onlyMainContent"`
	WaitFor     int64    `json:"waitFor,omitempty"`
	Timeout     int64    `json:"timeout,omitempty"`
}

type scrapeResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Markdown string `json:"markdown"`
		HTML     string `json:"html"`
		Metadata struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"metadata"`
	} `json:"data"`
}

// ScrapePage fetches one page through the provider. Returns ENOTFOUND when
// the response carries no markdown or HTML content.
func (c *Client) ScrapePage(ctx context.Context, url string, req siteforge.PageRequest) (*siteforge.PageResult, error) {
	body := scrapeRequest{
		URL:         url,
		Formats:     req.Formats,
		IncludeTags: req.IncludeTags,
		ExcludeTags: req.ExcludeTags,
		OnlyMain:    true,
		WaitFor:     req.WaitFor.Milliseconds(),
		Timeout:     req.Timeout.Milliseconds(),
	}

	var resp scrapeResponse
	if err := c.post(ctx, "/v1/scrape", body, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, siteforge.Errorf(siteforge.EUNAVAILABLE, "scrape request failed for %s", url)
	}
	if resp.Data.Markdown == "" && resp.Data.HTML == "" {
		return nil, siteforge.Errorf(siteforge.ENOTFOUND, "no extractable content at %s", url)
	}

	return &siteforge.PageResult{
		Markdown:    resp.Data.Markdown,
		HTML:        resp.Data.HTML,
		Title:       resp.Data.Metadata.Title,
		Description: resp.Data.Metadata.Description,
	}, nil
}

// post sends a JSON request and decodes the JSON response, mapping HTTP
// status codes onto application error codes.
func (c *Client) post(ctx context.Context, path string, reqBody, respBody any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return siteforge.Errorf(siteforge.ETIMEOUT, "scraping provider timed out")
		}
		return siteforge.Errorf(siteforge.EUNAVAILABLE, "scraping provider unreachable: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return siteforge.Errorf(siteforge.ERATELIMIT, "scraping provider rate limit exceeded")
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return siteforge.Errorf(siteforge.EINVALID, "scraping provider rejected credentials")
	case resp.StatusCode >= 500:
		return siteforge.Errorf(siteforge.EUNAVAILABLE, "scraping provider error: HTTP %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, path)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, respBody)
}

// IsRateLimit reports whether err carries the provider rate-limit signature.
func IsRateLimit(err error) bool {
	return siteforge.ErrorCode(err) == siteforge.ERATELIMIT
}
