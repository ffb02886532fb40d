package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siteforge"
)

// Ensure LoggingScraper implements siteforge.Scraper.
var _ siteforge.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with per-scrape logging of the strategy
// the cascade landed on.
type LoggingScraper struct {
	next   siteforge.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next siteforge.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the outcome.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (site *siteforge.ScrapedSite, err error) {
	defer func(begin time.Time) {
		args := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if site != nil {
			args = append(args,
				"method", site.Metadata.Method,
				"words", site.Metadata.WordCount,
				"pages", site.Metadata.PagesScraped,
			)
		}
		s.logger.Info("scrape", args...)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
