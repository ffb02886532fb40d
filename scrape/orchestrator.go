// Package scrape provides the multi-strategy scrape orchestration. It
// coordinates a cascade of three strategies against the scraping provider —
// sitemap-driven multi-page, single-page, and a direct-fetch fallback —
// degrading forward on failure and never failing the overall request.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/siteforge"
	"golang.org/x/time/rate"
)

// Strategy limits and pacing defaults.
const (
	// MapLimit caps how many URLs the mapping call may return.
	MapLimit = 100

	// DefaultPageDelay paces sequential page scrapes. One page every six
	// seconds keeps sustained throughput at or under ten requests per
	// minute, the provider's rate limit.
	DefaultPageDelay = 6 * time.Second

	// DefaultRateLimitDelay is how long to back off after the provider
	// signals rate limiting, before moving on to the next page.
	DefaultRateLimitDelay = 60 * time.Second

	// Content display bounds per strategy.
	sitemapContentLimit    = 50000
	singlePageContentLimit = 8000
)

// Page request shapes per strategy.
var (
	contentTags = []string{"p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "blockquote", "article", "main", "section"}
	richTags    = append([]string{"a", "img", "span", "div", "table", "td", "th"}, contentTags...)
	excludeTags = []string{"script", "style", "nav", "footer", "aside"}
)

// Ensure Orchestrator implements siteforge.Scraper at compile time.
var _ siteforge.Scraper = (*Orchestrator)(nil)

// Orchestrator runs the scrape cascade. All fields except Fetcher and HTML
// are optional; a nil Mapper or Pages skips straight to the fallback path.
type Orchestrator struct {
	Mapper    siteforge.SiteMapper
	Pages     siteforge.PageScraper
	Sitemaps  siteforge.SitemapService
	Fetcher   siteforge.Fetcher
	Extractor siteforge.Extractor
	Backup    siteforge.Extractor
	Converter siteforge.Converter
	HTML      siteforge.HTMLExtractor
	Logger    *slog.Logger

	// PageDelay and RateLimitDelay override the pacing defaults.
	// Tests inject short delays here.
	PageDelay      time.Duration
	RateLimitDelay time.Duration
}

// scrapedPage pairs a priority URL with its provider result.
type scrapedPage struct {
	url    string
	result *siteforge.PageResult
}

// Scrape runs the cascade for one site. The only error it returns is an
// invalid input URL; every provider failure degrades to a lower-fidelity
// strategy, terminating at worst in an error-fallback result.
func (o *Orchestrator) Scrape(ctx context.Context, rawURL string) (*siteforge.ScrapedSite, error) {
	target, err := url.Parse(rawURL)
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		return nil, siteforge.Errorf(siteforge.EINVALID, "invalid URL %q", rawURL)
	}

	if o.Mapper != nil && o.Pages != nil {
		discovered, mapErr := o.Mapper.MapSite(ctx, rawURL, MapLimit)
		if mapErr != nil && o.Sitemaps != nil {
			// The provider map endpoint is down; the site's own
			// sitemap is a second chance at multi-page coverage.
			o.log("map failed, probing local sitemap", "url", rawURL, "err", mapErr)
			discovered, _ = o.Sitemaps.DiscoverURLs(ctx, rawURL, MapLimit)
		}

		if len(discovered) > 0 {
			pages := o.scrapePages(ctx, buildPriorityURLs(rawURL, discovered))
			if len(pages) > 0 {
				return o.aggregate(rawURL, discovered, pages), nil
			}
			// Every per-page scrape failed; the provider is in bad
			// shape, so skip the single-page strategy entirely.
			return o.enhancedFallback(ctx, rawURL), nil
		}
	}

	if o.Pages != nil {
		if site := o.singlePage(ctx, rawURL); site != nil {
			return site, nil
		}
	}

	return o.enhancedFallback(ctx, rawURL), nil
}

// scrapePages fetches the priority URLs strictly sequentially, pacing
// requests and backing off on rate-limit signals. Individual page failures
// are logged and skipped.
func (o *Orchestrator) scrapePages(ctx context.Context, urls []string) []scrapedPage {
	limiter := rate.NewLimiter(rate.Every(o.pageDelay()), 1)

	var pages []scrapedPage
	for _, u := range urls {
		if err := limiter.Wait(ctx); err != nil {
			break
		}

		result, err := o.Pages.ScrapePage(ctx, u, siteforge.PageRequest{
			Formats:     []string{"markdown", "html"},
			IncludeTags: contentTags,
			ExcludeTags: excludeTags,
			WaitFor:     2 * time.Second,
			Timeout:     30 * time.Second,
		})
		if err != nil {
			if siteforge.ErrorCode(err) == siteforge.ERATELIMIT {
				o.log("provider rate limited, backing off", "url", u)
				select {
				case <-ctx.Done():
					return pages
				case <-time.After(o.rateLimitDelay()):
				}
				continue
			}
			o.log("page scrape failed", "url", u, "err", err)
			continue
		}

		pages = append(pages, scrapedPage{url: u, result: result})
	}

	return pages
}

// singlePage runs the single-page strategy. Returns nil when the strategy
// should degrade to the enhanced fallback.
func (o *Orchestrator) singlePage(ctx context.Context, rawURL string) *siteforge.ScrapedSite {
	result, err := o.Pages.ScrapePage(ctx, rawURL, siteforge.PageRequest{
		Formats:     []string{"markdown", "html"},
		IncludeTags: richTags,
		ExcludeTags: excludeTags,
		WaitFor:     3 * time.Second,
		Timeout:     30 * time.Second,
	})
	if err != nil {
		o.log("single-page scrape failed", "url", rawURL, "err", err)
		return nil
	}

	text := o.pageText(result)
	if text == "" {
		return nil
	}

	site := &siteforge.ScrapedSite{
		Title:        firstNonEmpty(result.Title, siteforge.ExtractTitle(text)),
		Description:  firstNonEmpty(result.Description, siteforge.ExtractDescription(text)),
		Content:      siteforge.Truncate(text, singlePageContentLimit),
		FullContent:  text,
		BusinessInfo: siteforge.ExtractBusinessInfo(text),
		Metadata: siteforge.ScrapeMetadata{
			URL:    rawURL,
			Method: siteforge.MethodSinglePage,
		},
	}
	o.attachHTML(site, result.HTML, rawURL)
	o.finalize(site)
	return site
}

// enhancedFallback fetches the URL directly and derives plain text locally.
// It always produces a result; a failed fetch yields a terminal
// error-fallback result carrying the cause.
func (o *Orchestrator) enhancedFallback(ctx context.Context, rawURL string) *siteforge.ScrapedSite {
	html, err := o.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		o.log("direct fetch failed", "url", rawURL, "err", err)
		site := &siteforge.ScrapedSite{
			Title:       siteforge.UntitledPlaceholder,
			Description: "Content could not be retrieved.",
			Metadata: siteforge.ScrapeMetadata{
				URL:    rawURL,
				Method: siteforge.MethodErrorFallback,
				Error:  err.Error(),
			},
		}
		o.finalize(site)
		return site
	}

	title, description, text := o.extractContent(html)
	if title == "" {
		title = siteforge.ExtractTitle(text)
	}
	if description == "" {
		description = siteforge.ExtractDescription(text)
	}

	site := &siteforge.ScrapedSite{
		Title:        title,
		Description:  description,
		Content:      siteforge.Truncate(text, singlePageContentLimit),
		FullContent:  text,
		BusinessInfo: siteforge.ExtractBusinessInfo(text),
		Metadata: siteforge.ScrapeMetadata{
			URL:    rawURL,
			Method: siteforge.MethodEnhancedFallback,
		},
	}
	o.attachHTML(site, html, rawURL)
	o.finalize(site)
	return site
}

// extractContent derives title, description and plain text from raw HTML,
// trying the primary extractor, then the backup, then a bare tag strip.
func (o *Orchestrator) extractContent(html string) (title, description, text string) {
	for _, extractor := range []siteforge.Extractor{o.Extractor, o.Backup} {
		if extractor == nil {
			continue
		}
		result, err := extractor.Extract(html)
		if err != nil || result.ContentHTML == "" {
			continue
		}
		text = o.toText(result.ContentHTML)
		if text != "" {
			return result.Title, result.Description, text
		}
	}
	return "", "", siteforge.StripHTML(html)
}

// toText converts content HTML to markdown text, stripping tags when the
// converter is unavailable or fails.
func (o *Orchestrator) toText(contentHTML string) string {
	if o.Converter != nil {
		if md, err := o.Converter.Convert(contentHTML); err == nil {
			return md
		}
	}
	return siteforge.StripHTML(contentHTML)
}

// pageText returns the best text representation of a provider result.
func (o *Orchestrator) pageText(result *siteforge.PageResult) string {
	if result.Markdown != "" {
		return result.Markdown
	}
	if result.HTML != "" {
		return o.toText(result.HTML)
	}
	return ""
}

// attachHTML extracts links and images from page HTML into the site.
func (o *Orchestrator) attachHTML(site *siteforge.ScrapedSite, html, baseURL string) {
	if o.HTML == nil || html == "" {
		return
	}
	if links, err := o.HTML.ExtractLinks(html, baseURL); err == nil {
		site.Links = mergeLinks(site.Links, links)
	}
	if images, err := o.HTML.ExtractImages(html, baseURL); err == nil {
		site.Images = mergeImages(site.Images, images)
	}
}

// finalize stamps derived metadata. Every strategy funnels through here so
// the hasContactInfo invariant holds on all paths.
func (o *Orchestrator) finalize(site *siteforge.ScrapedSite) {
	site.Metadata.ScrapedAt = time.Now().UTC()
	site.Metadata.WordCount = siteforge.CountWords(site.FullContent)
	site.Metadata.ImageCount = len(site.Images)
	site.Metadata.HasContactInfo = site.BusinessInfo.Email != "" || site.BusinessInfo.Phone != ""
	if site.FullContent != "" {
		site.Metadata.ContentHash = fmt.Sprintf("%x", xxhash.Sum64String(site.FullContent))
	}
}

func (o *Orchestrator) pageDelay() time.Duration {
	if o.PageDelay > 0 {
		return o.PageDelay
	}
	return DefaultPageDelay
}

func (o *Orchestrator) rateLimitDelay() time.Duration {
	if o.RateLimitDelay > 0 {
		return o.RateLimitDelay
	}
	return DefaultRateLimitDelay
}

func (o *Orchestrator) log(msg string, args ...any) {
	if o.Logger != nil {
		o.Logger.Warn(msg, args...)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
