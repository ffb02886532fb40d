// Package mock provides function-field mock implementations of the
// siteforge service interfaces for use in tests.
package mock

import (
	"context"

	"github.com/fwojciec/siteforge"
)

var _ siteforge.SiteMapper = (*SiteMapper)(nil)

// SiteMapper is a mock implementation of siteforge.SiteMapper.
type SiteMapper struct {
	MapSiteFn func(ctx context.Context, url string, limit int) ([]string, error)
}

func (m *SiteMapper) MapSite(ctx context.Context, url string, limit int) ([]string, error) {
	return m.MapSiteFn(ctx, url, limit)
}

var _ siteforge.PageScraper = (*PageScraper)(nil)

// PageScraper is a mock implementation of siteforge.PageScraper.
type PageScraper struct {
	ScrapePageFn func(ctx context.Context, url string, req siteforge.PageRequest) (*siteforge.PageResult, error)
}

func (m *PageScraper) ScrapePage(ctx context.Context, url string, req siteforge.PageRequest) (*siteforge.PageResult, error) {
	return m.ScrapePageFn(ctx, url, req)
}

var _ siteforge.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of siteforge.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ siteforge.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of siteforge.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, limit int) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, limit int) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, limit)
}

var _ siteforge.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of siteforge.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*siteforge.ScrapedSite, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*siteforge.ScrapedSite, error) {
	return s.ScrapeFn(ctx, url)
}
