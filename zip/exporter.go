// Package zip builds downloadable archives of generated websites together
// with the business facts and scraped source material they were built from.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/fwojciec/siteforge"
)

// Ensure Exporter implements siteforge.Exporter at compile time.
var _ siteforge.Exporter = (*Exporter)(nil)

// Exporter builds ZIP archives in memory. It is stateless and safe for
// concurrent use.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export returns a ZIP archive containing the website, a business summary,
// the scraped source text when present, and a README.
func (e *Exporter) Export(site *siteforge.GeneratedSite, facts siteforge.BusinessFacts, scraped *siteforge.ScrapedSite) ([]byte, error) {
	if site == nil || strings.TrimSpace(site.HTML) == "" {
		return nil, siteforge.Errorf(siteforge.EINVALID, "generated site required")
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	files := []struct {
		name    string
		content string
	}{
		{"website/index.html", site.HTML},
		{"business-info.txt", businessInfoText(facts)},
	}
	if scraped != nil && scraped.FullContent != "" {
		files = append(files, struct {
			name    string
			content string
		}{"original-site.txt", originalSiteText(scraped)})
	}
	files = append(files, struct {
		name    string
		content string
	}{"README.txt", readmeText(facts)})

	for _, f := range files {
		fw, err := w.Create(f.name)
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write([]byte(f.content)); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func businessInfoText(facts siteforge.BusinessFacts) string {
	var sb strings.Builder
	sb.WriteString("BUSINESS INFORMATION\n====================\n\n")
	add := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&sb, "%s: %s\n", label, value)
		}
	}
	add("Name", facts.Name)
	add("Industry", facts.Industry)
	add("Owner", facts.Owner)
	add("Email", facts.Email)
	add("Phone", facts.Phone)
	add("Services", facts.Services)
	add("Location", facts.Location)
	add("Description", facts.Description)
	return sb.String()
}

func originalSiteText(scraped *siteforge.ScrapedSite) string {
	var sb strings.Builder
	sb.WriteString("ORIGINAL WEBSITE CONTENT\n========================\n\n")
	fmt.Fprintf(&sb, "Source: %s\n", scraped.Metadata.URL)
	fmt.Fprintf(&sb, "Scraped: %s\n", scraped.Metadata.ScrapedAt.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Method: %s\n\n", scraped.Metadata.Method)
	sb.WriteString(scraped.FullContent)
	return sb.String()
}

func readmeText(facts siteforge.BusinessFacts) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Website package for %s\n\n", facts.Name)
	sb.WriteString("Contents:\n")
	sb.WriteString("  website/index.html  - the complete website, ready to host\n")
	sb.WriteString("  business-info.txt   - business details used to build the site\n")
	sb.WriteString("  original-site.txt   - content scraped from the previous website (if available)\n\n")
	sb.WriteString("To host: upload the contents of website/ to any static hosting provider.\n")
	return sb.String()
}
