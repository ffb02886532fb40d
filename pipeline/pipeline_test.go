package pipeline_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/siteforge"
	"github.com/fwojciec/siteforge/mock"
	"github.com/fwojciec/siteforge/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipeline(gen *mock.TextGenerator) *pipeline.Pipeline {
	cfg := siteforge.DefaultConfig()
	cfg.GeminiAPIKey = "test-key"
	return pipeline.New(gen, siteforge.NewConfigService(cfg), nil)
}

func failingGenerator() *mock.TextGenerator {
	return &mock.TextGenerator{
		GenerateFn: func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
			return "", siteforge.Errorf(siteforge.EUNAVAILABLE, "provider down")
		},
	}
}

func TestPipeline_AnalyzeBusiness(t *testing.T) {
	t.Parallel()

	scraped := &siteforge.ScrapedSite{
		FullContent: "Acme Plumbing\nOwner: Jane Smith\nEmail us at jane@acme.example or call (555) 123-4567.",
	}

	t.Run("parses fenced JSON and merges over user facts", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(&mock.TextGenerator{
			GenerateFn: func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
				assert.Contains(t, prompt, "Acme Plumbing")
				return "```json\n{\"name\": \"Acme Plumbing\", \"industry\": \"plumbing\", \"owner\": \"unknown\", \"email\": \"jane@acme.example\"}\n```", nil
			},
		})

		facts, err := p.AnalyzeBusiness(context.Background(), scraped, siteforge.BusinessFacts{
			Name:  "Acme",
			Owner: "Jane Smith",
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Plumbing", facts.Name)
		assert.Equal(t, "plumbing", facts.Industry)
		assert.Equal(t, "Jane Smith", facts.Owner, "unknown must not overwrite user input")
		assert.Equal(t, "jane@acme.example", facts.Email)
	})

	t.Run("degrades to regex extraction on provider failure", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(failingGenerator())

		facts, err := p.AnalyzeBusiness(context.Background(), scraped, siteforge.BusinessFacts{Name: "Acme"})

		require.NoError(t, err)
		assert.Equal(t, "Acme", facts.Name)
		assert.Equal(t, "jane@acme.example", facts.Email)
		assert.Equal(t, "(555) 123-4567", facts.Phone)
		assert.Equal(t, "Jane Smith", facts.Owner)
	})

	t.Run("degrades to regex extraction on unparseable output", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(&mock.TextGenerator{
			GenerateFn: func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
				return "I could not find any business information, sorry!", nil
			},
		})

		facts, err := p.AnalyzeBusiness(context.Background(), scraped, siteforge.BusinessFacts{Name: "Acme"})

		require.NoError(t, err)
		assert.Equal(t, "jane@acme.example", facts.Email)
	})
}

func TestPipeline_GenerateWebsite(t *testing.T) {
	t.Parallel()

	facts := siteforge.BusinessFacts{
		Name:     "Acme Plumbing",
		Email:    "jane@acme.example",
		Services: "Repairs, Installations",
	}

	t.Run("returns stripped LLM document", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(&mock.TextGenerator{
			GenerateFn: func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
				assert.Contains(t, prompt, "cdn.tailwindcss.com")
				return "```html\n<!DOCTYPE html><html><body>Custom</body></html>\n```", nil
			},
		})

		site, err := p.GenerateWebsite(context.Background(), nil, facts, "make it blue")

		require.NoError(t, err)
		assert.Equal(t, "<!DOCTYPE html><html><body>Custom</body></html>", site.HTML)
		assert.Equal(t, "Acme Plumbing", site.Title)
		assert.Empty(t, site.FallbackError)
		assert.False(t, site.GeneratedAt.IsZero())
	})

	t.Run("never fails when the provider does", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(failingGenerator())

		site, err := p.GenerateWebsite(context.Background(), nil, facts, "")

		require.NoError(t, err)
		require.NotNil(t, site)
		assert.NotEmpty(t, site.FallbackError)
		assert.Contains(t, site.HTML, "Acme Plumbing")
		assert.Contains(t, site.HTML, "jane@acme.example")
		assert.Contains(t, site.HTML, "Repairs")
		assert.Contains(t, site.HTML, "<html")
	})

	t.Run("falls back on non-HTML output", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(&mock.TextGenerator{
			GenerateFn: func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
				return "Sure! Here is a plan for your website...", nil
			},
		})

		site, err := p.GenerateWebsite(context.Background(), nil, facts, "")

		require.NoError(t, err)
		assert.NotEmpty(t, site.FallbackError)
		assert.Contains(t, site.HTML, "Acme Plumbing")
	})
}

func TestPipeline_GenerateVersions(t *testing.T) {
	t.Parallel()

	facts := siteforge.BusinessFacts{Name: "Acme Plumbing"}

	t.Run("clamps count and tags versions", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		p := newPipeline(&mock.TextGenerator{
			GenerateFn: func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
				calls.Add(1)
				assert.Contains(t, prompt, "unique variation")
				return "<html><body>v</body></html>", nil
			},
		})

		sites, err := p.GenerateVersions(context.Background(), nil, facts, "", 10)

		require.NoError(t, err)
		assert.Equal(t, int64(5), calls.Load())
		require.Len(t, sites, 5)
		seen := map[string]bool{}
		for i, site := range sites {
			assert.Equal(t, i+1, site.VersionNumber)
			assert.NotEmpty(t, site.VersionID)
			assert.False(t, seen[site.VersionID], "version ids must be unique")
			seen[site.VersionID] = true
		}
	})

	t.Run("single version omits the variation fragment", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(&mock.TextGenerator{
			GenerateFn: func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
				assert.NotContains(t, prompt, "unique variation")
				return "<html><body>v</body></html>", nil
			},
		})

		sites, err := p.GenerateVersions(context.Background(), nil, facts, "", 1)

		require.NoError(t, err)
		assert.Len(t, sites, 1)
	})

	t.Run("succeeds when at least one version succeeds", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		p := newPipeline(&mock.TextGenerator{
			GenerateFn: func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
				if calls.Add(1) == 2 {
					return "<html><body>only survivor</body></html>", nil
				}
				return "", siteforge.Errorf(siteforge.EUNAVAILABLE, "provider down")
			},
		})

		sites, err := p.GenerateVersions(context.Background(), nil, facts, "", 3)

		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, 2, sites[0].VersionNumber)
	})

	t.Run("fails only when every version fails", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(failingGenerator())

		_, err := p.GenerateVersions(context.Background(), nil, facts, "", 3)

		require.Error(t, err)
		assert.Equal(t, siteforge.EINTERNAL, siteforge.ErrorCode(err))
	})
}

func TestPipeline_ModifyWebsite(t *testing.T) {
	t.Parallel()

	const current = "<html><body><h1>Acme</h1></body></html>"

	t.Run("returns modified document", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(&mock.TextGenerator{
			GenerateFn: func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
				assert.Contains(t, prompt, current)
				assert.Contains(t, prompt, "make the header red")
				return "```html\n<html><body><h1 style=\"color:red\">Acme</h1></body></html>\n```", nil
			},
		})

		modified, err := p.ModifyWebsite(context.Background(), current, "make the header red", nil)

		require.NoError(t, err)
		assert.Contains(t, modified, "color:red")
		assert.False(t, strings.Contains(modified, "```"))
	})

	t.Run("rejects short requests", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(failingGenerator())

		_, err := p.ModifyWebsite(context.Background(), current, "ab", nil)

		require.Error(t, err)
		assert.Equal(t, siteforge.EINVALID, siteforge.ErrorCode(err))
	})

	t.Run("propagates provider failures", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(failingGenerator())

		_, err := p.ModifyWebsite(context.Background(), current, "make the header red", nil)

		require.Error(t, err)
		assert.Equal(t, siteforge.EUNAVAILABLE, siteforge.ErrorCode(err))
	})
}

func TestPipeline_GenerateOutreach(t *testing.T) {
	t.Parallel()

	req := siteforge.OutreachRequest{
		Facts:       siteforge.BusinessFacts{Name: "Acme Plumbing", Owner: "Jane Smith"},
		SenderName:  "Sam Seller",
		SenderEmail: "sam@agency.example",
		Price:       "$500",
	}

	t.Run("issues both prompts and keeps results", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(&mock.TextGenerator{
			GenerateFn: func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
				if strings.Contains(prompt, "cold outreach email") {
					return "Subject: Hello\n\nGenerated email body", nil
				}
				return "Generated proposal body", nil
			},
		})

		out, err := p.GenerateOutreach(context.Background(), req)

		require.NoError(t, err)
		assert.Contains(t, out.Email, "Generated email body")
		assert.Contains(t, out.Proposal, "Generated proposal body")
	})

	t.Run("never fails when the provider does", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(failingGenerator())

		out, err := p.GenerateOutreach(context.Background(), req)

		require.NoError(t, err)
		assert.Contains(t, out.Email, "Acme Plumbing")
		assert.Contains(t, out.Email, "sam@agency.example")
		assert.Contains(t, out.Proposal, "Acme Plumbing")
		assert.Contains(t, out.Proposal, "sam@agency.example")
	})

	t.Run("splits the token budget one third to two thirds", func(t *testing.T) {
		t.Parallel()

		var budgets []int
		ch := make(chan int, 2)
		p := newPipeline(&mock.TextGenerator{
			GenerateFn: func(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
				ch <- opts.MaxTokens
				return "text", nil
			},
		})

		_, err := p.GenerateOutreach(context.Background(), req)
		require.NoError(t, err)

		budgets = append(budgets, <-ch, <-ch)
		total := siteforge.DefaultOutreachTokens
		assert.ElementsMatch(t, []int{total / 3, total - total/3}, budgets)
	})

	t.Run("rejects invalid sender", func(t *testing.T) {
		t.Parallel()

		bad := req
		bad.SenderEmail = "not-an-email"

		p := newPipeline(failingGenerator())
		_, err := p.GenerateOutreach(context.Background(), bad)

		require.Error(t, err)
		assert.Equal(t, siteforge.EINVALID, siteforge.ErrorCode(err))
	})
}
