package scrape

import (
	"fmt"
	"strings"

	"github.com/fwojciec/siteforge"
)

// aggregate merges successfully scraped pages into one ScrapedSite for the
// sitemap-comprehensive strategy. Each page's text is concatenated under a
// page-delimited header; the homepage seeds the top-level title and
// description, falling back to content heuristics.
func (o *Orchestrator) aggregate(homepage string, discovered []string, pages []scrapedPage) *siteforge.ScrapedSite {
	var combined strings.Builder
	site := &siteforge.ScrapedSite{
		Sitemap: discovered,
		Metadata: siteforge.ScrapeMetadata{
			URL:             homepage,
			Method:          siteforge.MethodSitemap,
			PagesDiscovered: len(discovered),
			PagesScraped:    len(pages),
		},
	}

	for _, page := range pages {
		text := o.pageText(page.result)

		fmt.Fprintf(&combined, "=== PAGE: %s ===\n", page.url)
		if page.result.Title != "" {
			fmt.Fprintf(&combined, "Title: %s\n", page.result.Title)
		}
		if page.result.Description != "" {
			fmt.Fprintf(&combined, "Description: %s\n", page.result.Description)
		}
		combined.WriteString("\n")
		combined.WriteString(text)
		combined.WriteString("\n\n")

		// Field-by-field overwrite in page order: the last page that
		// carries a field wins.
		info := siteforge.ExtractBusinessInfo(text)
		if info.Email != "" {
			site.BusinessInfo.Email = info.Email
		}
		if info.Phone != "" {
			site.BusinessInfo.Phone = info.Phone
		}
		if info.Address != "" {
			site.BusinessInfo.Address = info.Address
		}

		o.attachHTML(site, page.result.HTML, page.url)

		if page.url == homepage || strings.TrimSuffix(page.url, "/") == strings.TrimSuffix(homepage, "/") {
			site.Title = page.result.Title
			site.Description = page.result.Description
		}
	}

	full := combined.String()
	site.FullContent = full
	site.Content = siteforge.Truncate(full, sitemapContentLimit)

	if site.Title == "" {
		site.Title = siteforge.ExtractTitle(full)
	}
	if site.Description == "" {
		site.Description = siteforge.ExtractDescription(full)
	}

	o.finalize(site)
	return site
}

// mergeLinks unions two link lists, deduplicating in first-seen order and
// capping at the scraped-links limit.
func mergeLinks(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, l := range existing {
		seen[l] = true
	}
	for _, l := range incoming {
		if len(existing) >= siteforge.MaxScrapedLinks {
			break
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		existing = append(existing, l)
	}
	return existing
}

// mergeImages unions two image lists, deduplicating by URL and capping at
// the scraped-images limit.
func mergeImages(existing, incoming []siteforge.PageImage) []siteforge.PageImage {
	seen := make(map[string]bool, len(existing))
	for _, img := range existing {
		seen[img.URL] = true
	}
	for _, img := range incoming {
		if len(existing) >= siteforge.MaxScrapedImages {
			break
		}
		if seen[img.URL] {
			continue
		}
		seen[img.URL] = true
		existing = append(existing, img)
	}
	return existing
}
