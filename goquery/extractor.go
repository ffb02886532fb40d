// Package goquery provides DOM-based link and image extraction from raw HTML.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteforge"
)

// Ensure Extractor implements siteforge.HTMLExtractor at compile time.
var _ siteforge.HTMLExtractor = (*Extractor)(nil)

// Extractor scans HTML for links and images, resolving relative URLs
// against a base URL.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks scans href attributes and returns absolute http(s) URLs.
// Root-relative paths resolve against the origin of baseURL. Links whose
// resolved form is not http(s) are dropped. Results are deduplicated in
// first-seen order and capped at siteforge.MaxScrapedLinks.
func (e *Extractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, siteforge.Errorf(siteforge.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, siteforge.Errorf(siteforge.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	links := []string{}

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return true
		}

		resolved := resolveLink(base, href)
		if resolved == "" || seen[resolved] {
			return true
		}
		seen[resolved] = true
		links = append(links, resolved)

		return len(links) < siteforge.MaxScrapedLinks
	})

	return links, nil
}

// ExtractImages scans img tags for src attributes. Root-relative paths
// resolve against the origin of baseURL; other relative paths resolve
// against the directory of baseURL. Tags with unparseable src are dropped
// silently. Results are deduplicated by resolved URL and capped at
// siteforge.MaxScrapedImages. Alt defaults to the empty string.
func (e *Extractor) ExtractImages(html string, baseURL string) ([]siteforge.PageImage, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, siteforge.Errorf(siteforge.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, siteforge.Errorf(siteforge.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	images := []siteforge.PageImage{}

	doc.Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, ok := sel.Attr("src")
		if !ok || src == "" {
			return true
		}

		resolved := resolveImage(base, src)
		if resolved == "" || seen[resolved] {
			return true
		}
		seen[resolved] = true

		alt := sel.AttrOr("alt", "")
		images = append(images, siteforge.PageImage{URL: resolved, Alt: alt})

		return len(images) < siteforge.MaxScrapedImages
	})

	return images, nil
}

// resolveLink resolves an href against the base origin and returns the
// absolute URL, or "" when the result is not http(s).
func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}

	var resolved *url.URL
	if ref.IsAbs() {
		resolved = ref
	} else if strings.HasPrefix(ref.Path, "/") {
		// Root-relative: resolve against the origin only.
		origin := &url.URL{Scheme: base.Scheme, Host: base.Host}
		resolved = origin.ResolveReference(ref)
	} else {
		return ""
	}

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// resolveImage resolves an img src; unlike links, non-root relative paths
// resolve against the directory of the base URL.
func resolveImage(base *url.URL, src string) string {
	ref, err := url.Parse(strings.TrimSpace(src))
	if err != nil {
		return ""
	}

	var resolved *url.URL
	switch {
	case ref.IsAbs():
		resolved = ref
	case strings.HasPrefix(ref.Path, "/"):
		origin := &url.URL{Scheme: base.Scheme, Host: base.Host}
		resolved = origin.ResolveReference(ref)
	default:
		resolved = base.ResolveReference(ref)
	}

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}
