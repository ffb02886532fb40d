package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/siteforge"
)

// GenerateWebsite synthesizes one complete HTML document from scraped
// content and business facts. On any provider failure it returns a
// deterministic template site carrying the failure text; it never fails.
func (p *Pipeline) GenerateWebsite(ctx context.Context, scraped *siteforge.ScrapedSite, facts siteforge.BusinessFacts, instructions string) (*siteforge.GeneratedSite, error) {
	html, err := p.synthesizeHTML(ctx, scraped, facts, instructions)
	if err != nil {
		p.logWarn("site synthesis failed, using template fallback", "business", facts.Name, "err", err)
		site := fallbackSite(facts)
		site.FallbackError = err.Error()
		return site, nil
	}

	return &siteforge.GeneratedSite{
		HTML:        html,
		Title:       facts.Name,
		Description: siteDescription(facts),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// synthesizeHTML is the primary generation path. Callers decide what a
// failure means: GenerateWebsite falls back, GenerateVersions counts it
// against the batch.
func (p *Pipeline) synthesizeHTML(ctx context.Context, scraped *siteforge.ScrapedSite, facts siteforge.BusinessFacts, instructions string) (string, error) {
	cfg := p.Config.Get()

	raw, err := p.Generator.Generate(ctx, sitePrompt(scraped, facts, instructions), siteforge.GenerateOptions{
		MaxTokens: cfg.SiteTokens,
	})
	if err != nil {
		return "", err
	}

	html := stripFences(raw)
	if !strings.Contains(html, "<html") {
		return "", siteforge.Errorf(siteforge.EINTERNAL, "synthesis output is not an HTML document")
	}
	return html, nil
}

func sitePrompt(scraped *siteforge.ScrapedSite, facts siteforge.BusinessFacts, instructions string) string {
	var sb strings.Builder

	sb.WriteString(`Create a complete, modern, single-file website for the business described below.

Requirements:
- Output ONE complete HTML5 document and nothing else. No explanations, no code fences.
- Style with Tailwind CSS loaded from the CDN: <script src="https://cdn.tailwindcss.com"></script>
- Include these sections: hero, services, about, contact.
- Mobile responsive, professional, conversion oriented.
- Use the business's real contact details in the contact section.
`)

	if images := imageLines(scraped, maxPromptImages); images != "" {
		sb.WriteString("- Prefer the image URLs listed below; only if none fits, use placeholder images from https://images.unsplash.com.\n")
		sb.WriteString("\nAvailable images:\n")
		sb.WriteString(images)
	} else {
		sb.WriteString("- Use tasteful placeholder images from https://images.unsplash.com.\n")
	}

	sb.WriteString("\nBusiness facts:\n")
	sb.WriteString(factLines(facts))

	if strings.TrimSpace(instructions) != "" {
		sb.WriteString("\nAdditional instructions:\n")
		sb.WriteString(strings.TrimSpace(instructions))
		sb.WriteString("\n")
	}

	if content := scrapedContext(scraped, siteContextLimit); content != "" {
		sb.WriteString("\nContent scraped from the business's current website, for reference:\n")
		sb.WriteString(content)
	}

	return sb.String()
}

func siteDescription(facts siteforge.BusinessFacts) string {
	if facts.Description != "" {
		return facts.Description
	}
	if facts.Industry != "" {
		return fmt.Sprintf("%s - %s", facts.Name, facts.Industry)
	}
	return facts.Name
}
