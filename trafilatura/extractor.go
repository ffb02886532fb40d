// Package trafilatura adapts go-trafilatura as the primary content
// extractor for the direct-fetch scrape fallback.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/siteforge"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements siteforge.Extractor at compile time.
var _ siteforge.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the main content out of a fetched
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &siteforge.ExtractResult{
		Title:       result.Metadata.Title,
		Description: result.Metadata.Description,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
