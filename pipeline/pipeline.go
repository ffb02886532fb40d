// Package pipeline implements the LLM generation workflow: business
// analysis, site synthesis, iterative modification and outreach collateral.
//
// Every operation with a meaningful degraded output (analysis, synthesis,
// outreach) produces that output instead of propagating provider failures;
// modification has no safe degraded output and raises.
package pipeline

import (
	"log/slog"
	"strings"

	"github.com/fwojciec/siteforge"
)

// Prompt construction bounds.
const (
	analysisContextLimit = 100000
	siteContextLimit     = 500000
	maxPromptImages      = 50
	maxModifyImages      = 30
	minModifyRequest     = 3
	maxVersions          = 5
)

// Ensure Pipeline implements siteforge.SiteGenerator at compile time.
var _ siteforge.SiteGenerator = (*Pipeline)(nil)

// Pipeline orchestrates prompt construction, generation calls and local
// fallbacks. Generator is typically the provider gateway; Config supplies
// per-operation token budgets at call time.
type Pipeline struct {
	Generator siteforge.TextGenerator
	Config    *siteforge.ConfigService
	Logger    *slog.Logger
}

// New creates a Pipeline.
func New(gen siteforge.TextGenerator, config *siteforge.ConfigService, logger *slog.Logger) *Pipeline {
	return &Pipeline{Generator: gen, Config: config, Logger: logger}
}

func (p *Pipeline) logWarn(msg string, args ...any) {
	if p.Logger != nil {
		p.Logger.Warn(msg, args...)
	}
}

// stripFences removes surrounding markdown code-fence markers that models
// wrap structured output in despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// scrapedContext returns the scrape text bounded to limit characters.
func scrapedContext(scraped *siteforge.ScrapedSite, limit int) string {
	if scraped == nil {
		return ""
	}
	text := scraped.FullContent
	if text == "" {
		text = scraped.Content
	}
	return siteforge.Truncate(text, limit)
}

// imageLines renders up to max scraped images as "URL (alt)" prompt lines.
func imageLines(scraped *siteforge.ScrapedSite, max int) string {
	if scraped == nil || len(scraped.Images) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, img := range scraped.Images {
		if i >= max {
			break
		}
		sb.WriteString(img.URL)
		if img.Alt != "" {
			sb.WriteString(" (")
			sb.WriteString(img.Alt)
			sb.WriteString(")")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// factLines renders the known business facts as labeled prompt lines,
// omitting empty fields.
func factLines(facts siteforge.BusinessFacts) string {
	var sb strings.Builder
	add := func(label, value string) {
		if value != "" {
			sb.WriteString(label)
			sb.WriteString(": ")
			sb.WriteString(value)
			sb.WriteString("\n")
		}
	}
	add("Business name", facts.Name)
	add("Industry", facts.Industry)
	add("Owner", facts.Owner)
	add("Email", facts.Email)
	add("Phone", facts.Phone)
	add("Services", facts.Services)
	add("Known issues with current site", facts.Issues)
	add("Location", facts.Location)
	add("Description", facts.Description)
	return sb.String()
}
