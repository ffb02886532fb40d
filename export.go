package siteforge

// Exporter packages a generated site with its business facts and original
// scrape into a downloadable archive.
type Exporter interface {
	// Export returns the archive bytes. The scrape may be nil.
	Export(site *GeneratedSite, facts BusinessFacts, scraped *ScrapedSite) ([]byte, error)
}
