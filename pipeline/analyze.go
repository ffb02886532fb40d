package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/siteforge"
)

var ownerLabelRe = regexp.MustCompile(`(?im)^\s*(?:owner|founder|ceo|president)\s*[:\-]\s*(.{2,60})$`)

// AnalyzeBusiness extracts structured facts from scraped content and merges
// them over the user-supplied facts. Provider or parse failures degrade to
// regex-based partial extraction; the operation never fails for that reason.
func (p *Pipeline) AnalyzeBusiness(ctx context.Context, scraped *siteforge.ScrapedSite, facts siteforge.BusinessFacts) (siteforge.BusinessFacts, error) {
	cfg := p.Config.Get()

	raw, err := p.Generator.Generate(ctx, analysisPrompt(scraped), siteforge.GenerateOptions{
		MaxTokens: cfg.AnalysisTokens,
	})
	if err == nil {
		if extracted, parseErr := parseFacts(raw); parseErr == nil {
			return facts.Merge(extracted), nil
		} else {
			p.logWarn("analysis parse failed, using regex extraction", "err", parseErr)
		}
	} else {
		p.logWarn("analysis generation failed, using regex extraction", "err", err)
	}

	return facts.Merge(regexFacts(scraped)), nil
}

func analysisPrompt(scraped *siteforge.ScrapedSite) string {
	return fmt.Sprintf(`Analyze the following website content and extract facts about the business.

Return ONLY a JSON object with exactly these string fields (use "unknown" when a fact is not present in the content):
{"name": "", "industry": "", "owner": "", "email": "", "phone": "", "services": "", "issues": "", "location": "", "description": ""}

"issues" should describe shortcomings of the current website relevant to a redesign pitch.
Do not include any text outside the JSON object.

Website content:
%s`, scrapedContext(scraped, analysisContextLimit))
}

// parseFacts parses model output into BusinessFacts, tolerating code fences
// and surrounding prose.
func parseFacts(raw string) (siteforge.BusinessFacts, error) {
	s := stripFences(raw)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return siteforge.BusinessFacts{}, siteforge.Errorf(siteforge.EINTERNAL, "no JSON object in analysis output")
	}

	var facts siteforge.BusinessFacts
	if err := json.Unmarshal([]byte(s[start:end+1]), &facts); err != nil {
		return siteforge.BusinessFacts{}, err
	}
	return facts, nil
}

// regexFacts is the degraded extraction path: contact patterns plus a
// labeled owner-line scan over the scraped text.
func regexFacts(scraped *siteforge.ScrapedSite) siteforge.BusinessFacts {
	if scraped == nil {
		return siteforge.BusinessFacts{}
	}
	text := scraped.FullContent
	if text == "" {
		text = scraped.Content
	}

	info := siteforge.ExtractBusinessInfo(text)
	facts := siteforge.BusinessFacts{
		Email: info.Email,
		Phone: info.Phone,
	}
	if m := ownerLabelRe.FindStringSubmatch(text); m != nil {
		facts.Owner = strings.TrimSpace(m[1])
	}
	return facts
}
