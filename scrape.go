package siteforge

import (
	"context"
	"time"
)

// Scrape method identifiers recorded in ScrapeMetadata.Method.
const (
	MethodSitemap          = "sitemap-comprehensive"
	MethodSinglePage       = "single-page"
	MethodEnhancedFallback = "enhanced-fallback"
	MethodErrorFallback    = "error-fallback"
)

// Caps applied during extraction and aggregation.
const (
	MaxScrapedLinks  = 15
	MaxScrapedImages = 100
)

// BusinessInfo holds contact details extracted from page text.
// Empty fields mean no match was found.
type BusinessInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// PageImage is an image discovered on a scraped page.
type PageImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ScrapeMetadata describes how a scrape was performed.
type ScrapeMetadata struct {
	ScrapedAt       time.Time `json:"scrapedAt"`
	URL             string    `json:"url"`
	Method          string    `json:"method"`
	WordCount       int       `json:"wordCount"`
	ImageCount      int       `json:"imageCount"`
	HasContactInfo  bool      `json:"hasContactInfo"`
	PagesDiscovered int       `json:"pagesDiscovered,omitempty"`
	PagesScraped    int       `json:"pagesScraped,omitempty"`
	ContentHash     string    `json:"contentHash,omitempty"`
	Error           string    `json:"error,omitempty"`
}

// ScrapedSite is the immutable result of scraping one logical site.
//
// Content is bounded display text; FullContent is the untruncated aggregate
// used only as LLM input and bounded at prompt-build time, not here.
type ScrapedSite struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Content      string         `json:"content"`
	FullContent  string         `json:"fullContent,omitempty"`
	Links        []string       `json:"links,omitempty"`
	Images       []PageImage    `json:"images,omitempty"`
	BusinessInfo BusinessInfo   `json:"businessInfo"`
	Sitemap      []string       `json:"sitemap,omitempty"`
	Metadata     ScrapeMetadata `json:"metadata"`
}

// Scraper produces a ScrapedSite for a URL. Implementations degrade through
// lower-fidelity strategies rather than failing; the only error path is an
// invalid URL.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*ScrapedSite, error)
}

// PageRequest configures a single-page scrape against the provider.
type PageRequest struct {
	// Formats lists the representations to request, e.g. "markdown", "html".
	Formats []string

	// IncludeTags restricts extraction to these tags when non-empty.
	IncludeTags []string

	// ExcludeTags removes these tags before extraction.
	ExcludeTags []string

	// WaitFor is how long the provider should wait for the page to settle.
	WaitFor time.Duration

	// Timeout bounds the provider-side fetch.
	Timeout time.Duration
}

// PageResult is the provider's response for one page.
type PageResult struct {
	Markdown    string
	HTML        string
	Title       string
	Description string
}

// SiteMapper enumerates a site's page URLs via the scraping provider.
type SiteMapper interface {
	// MapSite returns up to limit discoverable URLs for the site.
	// An empty result is not an error.
	MapSite(ctx context.Context, url string, limit int) ([]string, error)
}

// PageScraper fetches and structures a single page via the scraping provider.
type PageScraper interface {
	// ScrapePage returns the structured content of one page.
	// Returns ERATELIMIT when the provider signals rate limiting and
	// ENOTFOUND when the response carries no usable content.
	ScrapePage(ctx context.Context, url string, req PageRequest) (*PageResult, error)
}

// Fetcher retrieves raw HTML from URLs without the scraping provider.
type Fetcher interface {
	// Fetch returns the page body. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// SitemapService discovers URLs from a site's own sitemap files.
type SitemapService interface {
	// DiscoverURLs finds URLs from robots.txt sitemap directives or
	// /sitemap.xml, resolving sitemap indexes recursively. Returns an
	// empty slice when the site publishes no sitemap.
	DiscoverURLs(ctx context.Context, baseURL string, limit int) ([]string, error)
}

// ExtractResult holds main content pulled out of an HTML page.
type ExtractResult struct {
	Title       string
	Description string

	// ContentHTML is the main content with boilerplate removed.
	ContentHTML string
}

// Extractor extracts main content from HTML, removing boilerplate
// (navigation, footers, sidebars, ads).
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// HTMLExtractor pulls links and images out of raw HTML.
type HTMLExtractor interface {
	// ExtractLinks returns absolute http(s) URLs found in href attributes,
	// deduplicated in first-seen order, capped at MaxScrapedLinks.
	ExtractLinks(html string, baseURL string) ([]string, error)

	// ExtractImages returns images found in img src attributes, resolved
	// against baseURL, deduplicated by URL, capped at MaxScrapedImages.
	ExtractImages(html string, baseURL string) ([]PageImage, error)
}
