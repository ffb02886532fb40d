package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/siteforge"
	"github.com/google/uuid"
)

// GenerateVersions produces count candidate sites sequentially, count
// clamped to 1-5. Each version gets an opaque version id. The batch
// succeeds when at least one version succeeds; only a full wipeout fails.
func (p *Pipeline) GenerateVersions(ctx context.Context, scraped *siteforge.ScrapedSite, facts siteforge.BusinessFacts, instructions string, count int) ([]*siteforge.GeneratedSite, error) {
	if count < 1 {
		count = 1
	}
	if count > maxVersions {
		count = maxVersions
	}

	var (
		sites   []*siteforge.GeneratedSite
		lastErr error
	)
	for n := 1; n <= count; n++ {
		versionInstructions := instructions
		if count > 1 {
			versionInstructions = fmt.Sprintf(
				"%s\nCreate a unique variation (version %d of %d) with a distinct layout, color palette and typography.",
				instructions, n, count,
			)
		}

		html, err := p.synthesizeHTML(ctx, scraped, facts, versionInstructions)
		if err != nil {
			p.logWarn("version synthesis failed", "version", n, "err", err)
			lastErr = err
			continue
		}

		sites = append(sites, &siteforge.GeneratedSite{
			HTML:          html,
			Title:         facts.Name,
			Description:   siteDescription(facts),
			GeneratedAt:   time.Now().UTC(),
			VersionNumber: n,
			VersionID:     uuid.NewString(),
		})
	}

	if len(sites) == 0 {
		return nil, siteforge.Errorf(siteforge.EINTERNAL, "all %d version attempts failed: %s", count, siteforge.ErrorMessage(lastErr))
	}
	return sites, nil
}
