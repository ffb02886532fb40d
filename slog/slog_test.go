package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/siteforge"
	"github.com/fwojciec/siteforge/mock"
	sfslog "github.com/fwojciec/siteforge/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html>content</html>", nil
		},
	}

	fetcher := sfslog.NewLoggingFetcher(inner, logger)
	html, err := fetcher.Fetch(context.Background(), "https://acme.example")

	require.NoError(t, err)
	assert.Equal(t, "<html>content</html>", html)
	output := buf.String()
	assert.Contains(t, output, "fetch")
	assert.Contains(t, output, "url=https://acme.example")
	assert.Contains(t, output, "bytes=20")
	assert.Contains(t, output, "duration=")
}

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.TextGenerator{
		GenerateFn: func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
			return "completion", nil
		},
	}

	gen := sfslog.NewLoggingGenerator(inner, logger)
	text, err := gen.Generate(context.Background(), "secret prompt", siteforge.GenerateOptions{MaxTokens: 100})

	require.NoError(t, err)
	assert.Equal(t, "completion", text)
	output := buf.String()
	assert.Contains(t, output, "generate")
	assert.Contains(t, output, "max_tokens=100")
	assert.NotContains(t, output, "secret prompt", "prompt content must not be logged")
}

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Scraper{
		ScrapeFn: func(ctx context.Context, url string) (*siteforge.ScrapedSite, error) {
			return &siteforge.ScrapedSite{
				Metadata: siteforge.ScrapeMetadata{Method: siteforge.MethodSinglePage, WordCount: 42},
			}, nil
		},
	}

	s := sfslog.NewLoggingScraper(inner, logger)
	site, err := s.Scrape(context.Background(), "https://acme.example")

	require.NoError(t, err)
	require.NotNil(t, site)
	output := buf.String()
	assert.Contains(t, output, "scrape")
	assert.Contains(t, output, "method=single-page")
	assert.Contains(t, output, "words=42")
}
