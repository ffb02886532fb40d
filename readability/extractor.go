// Package readability adapts go-readability as the backup content extractor
// for the direct-fetch scrape fallback, used when trafilatura comes up
// empty.
package readability

import (
	"strings"

	"github.com/fwojciec/siteforge"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements siteforge.Extractor at compile time.
var _ siteforge.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to pull the main content out of a fetched
// business website.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title, description and
// main content HTML.
func (e *Extractor) Extract(rawHTML string) (*siteforge.ExtractResult, error) {
	if rawHTML == "" {
		return nil, siteforge.Errorf(siteforge.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &siteforge.ExtractResult{
		Title:       article.Title,
		Description: article.Excerpt,
		ContentHTML: article.Content,
	}, nil
}
