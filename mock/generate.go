package mock

import (
	"context"

	"github.com/fwojciec/siteforge"
)

var _ siteforge.TextGenerator = (*TextGenerator)(nil)

// TextGenerator is a mock implementation of siteforge.TextGenerator.
type TextGenerator struct {
	GenerateFn func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error)
}

func (g *TextGenerator) Generate(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
	return g.GenerateFn(ctx, prompt, opts)
}

var _ siteforge.SiteGenerator = (*SiteGenerator)(nil)

// SiteGenerator is a mock implementation of siteforge.SiteGenerator.
type SiteGenerator struct {
	AnalyzeBusinessFn  func(ctx context.Context, scraped *siteforge.ScrapedSite, facts siteforge.BusinessFacts) (siteforge.BusinessFacts, error)
	GenerateWebsiteFn  func(ctx context.Context, scraped *siteforge.ScrapedSite, facts siteforge.BusinessFacts, instructions string) (*siteforge.GeneratedSite, error)
	GenerateVersionsFn func(ctx context.Context, scraped *siteforge.ScrapedSite, facts siteforge.BusinessFacts, instructions string, count int) ([]*siteforge.GeneratedSite, error)
	ModifyWebsiteFn    func(ctx context.Context, html string, request string, scraped *siteforge.ScrapedSite) (string, error)
	GenerateOutreachFn func(ctx context.Context, req siteforge.OutreachRequest) (*siteforge.Outreach, error)
}

func (g *SiteGenerator) AnalyzeBusiness(ctx context.Context, scraped *siteforge.ScrapedSite, facts siteforge.BusinessFacts) (siteforge.BusinessFacts, error) {
	return g.AnalyzeBusinessFn(ctx, scraped, facts)
}

func (g *SiteGenerator) GenerateWebsite(ctx context.Context, scraped *siteforge.ScrapedSite, facts siteforge.BusinessFacts, instructions string) (*siteforge.GeneratedSite, error) {
	return g.GenerateWebsiteFn(ctx, scraped, facts, instructions)
}

func (g *SiteGenerator) GenerateVersions(ctx context.Context, scraped *siteforge.ScrapedSite, facts siteforge.BusinessFacts, instructions string, count int) ([]*siteforge.GeneratedSite, error) {
	return g.GenerateVersionsFn(ctx, scraped, facts, instructions, count)
}

func (g *SiteGenerator) ModifyWebsite(ctx context.Context, html string, request string, scraped *siteforge.ScrapedSite) (string, error) {
	return g.ModifyWebsiteFn(ctx, html, request, scraped)
}

func (g *SiteGenerator) GenerateOutreach(ctx context.Context, req siteforge.OutreachRequest) (*siteforge.Outreach, error) {
	return g.GenerateOutreachFn(ctx, req)
}
