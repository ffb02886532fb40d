package pipeline

import (
	"context"
	"strings"

	"github.com/fwojciec/siteforge"
)

// ModifyWebsite applies a free-text change request to an existing document
// and returns the complete modified document. There is no local fallback;
// provider failures propagate to the caller.
func (p *Pipeline) ModifyWebsite(ctx context.Context, html string, request string, scraped *siteforge.ScrapedSite) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", siteforge.Errorf(siteforge.EINVALID, "website HTML required")
	}
	if len(strings.TrimSpace(request)) < minModifyRequest {
		return "", siteforge.Errorf(siteforge.EINVALID, "modification request must be at least %d characters", minModifyRequest)
	}

	cfg := p.Config.Get()

	raw, err := p.Generator.Generate(ctx, modifyPrompt(html, request, scraped), siteforge.GenerateOptions{
		MaxTokens: cfg.ModifyTokens,
	})
	if err != nil {
		return "", err
	}

	modified := stripFences(raw)
	if !strings.Contains(modified, "<html") {
		return "", siteforge.Errorf(siteforge.EINTERNAL, "modification output is not an HTML document")
	}
	return modified, nil
}

func modifyPrompt(html, request string, scraped *siteforge.ScrapedSite) string {
	var sb strings.Builder

	sb.WriteString(`Modify the website below according to the change request.

Requirements:
- Return the COMPLETE modified HTML document and nothing else. No explanations, no code fences.
- Apply only the requested change; preserve the existing structure, styling and all unrelated content.
`)

	if images := imageLines(scraped, maxModifyImages); images != "" {
		sb.WriteString("\nAvailable images:\n")
		sb.WriteString(images)
	}

	sb.WriteString("\nChange request:\n")
	sb.WriteString(strings.TrimSpace(request))
	sb.WriteString("\n\nCurrent website:\n")
	sb.WriteString(html)

	return sb.String()
}
