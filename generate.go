package siteforge

import (
	"context"
	"strings"
	"time"
)

// BusinessFacts describes the target business. Name is required; all other
// fields are best-effort.
type BusinessFacts struct {
	Name        string `json:"name"`
	Industry    string `json:"industry,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Services    string `json:"services,omitempty"`
	Issues      string `json:"issues,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// Validate returns an error if the facts contain invalid fields.
func (f *BusinessFacts) Validate() error {
	name := strings.TrimSpace(f.Name)
	if len(name) < 2 || len(name) > 100 {
		return Errorf(EINVALID, "business name must be 2-100 characters")
	}
	return nil
}

// Merge overlays AI-extracted facts onto user-supplied facts. An AI field
// only overwrites when it is non-empty and not a sentinel "unknown" value;
// explicit user input always survives an unknown extraction.
func (f BusinessFacts) Merge(ai BusinessFacts) BusinessFacts {
	merge := func(user, extracted string) string {
		extracted = strings.TrimSpace(extracted)
		if extracted == "" || strings.EqualFold(extracted, "unknown") {
			return user
		}
		return extracted
	}
	return BusinessFacts{
		Name:        merge(f.Name, ai.Name),
		Industry:    merge(f.Industry, ai.Industry),
		Owner:       merge(f.Owner, ai.Owner),
		Email:       merge(f.Email, ai.Email),
		Phone:       merge(f.Phone, ai.Phone),
		Services:    merge(f.Services, ai.Services),
		Issues:      merge(f.Issues, ai.Issues),
		Location:    merge(f.Location, ai.Location),
		Description: merge(f.Description, ai.Description),
	}
}

// GeneratedSite is one candidate website produced by the pipeline.
type GeneratedSite struct {
	HTML        string    `json:"html"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	GeneratedAt time.Time `json:"generatedAt"`

	// VersionNumber and VersionID are set when the site was produced as
	// part of a multi-version batch.
	VersionNumber int    `json:"versionNumber,omitempty"`
	VersionID     string `json:"versionId,omitempty"`

	// FallbackError carries the upstream failure when a deterministic
	// template was used instead of an LLM result.
	FallbackError string `json:"error,omitempty"`
}

// Outreach holds generated sales collateral.
type Outreach struct {
	Email    string `json:"email"`
	Proposal string `json:"proposal"`
}

// OutreachRequest carries the sender details for outreach generation.
type OutreachRequest struct {
	Facts       BusinessFacts
	Site        *GeneratedSite
	SenderName  string
	SenderEmail string
	Price       string
}

// Validate returns an error if the request is missing sender details.
func (r *OutreachRequest) Validate() error {
	if err := r.Facts.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.SenderName) == "" {
		return Errorf(EINVALID, "sender name required")
	}
	if !ValidEmail(strings.TrimSpace(r.SenderEmail)) {
		return Errorf(EINVALID, "sender email is not a valid email address")
	}
	return nil
}

// SiteGenerator is the generation pipeline contract used by the HTTP layer.
type SiteGenerator interface {
	// AnalyzeBusiness extracts structured facts from scraped content.
	// It degrades to regex-based partial extraction on parse failure and
	// never fails for that reason.
	AnalyzeBusiness(ctx context.Context, scraped *ScrapedSite, facts BusinessFacts) (BusinessFacts, error)

	// GenerateWebsite synthesizes one complete HTML document. On any LLM
	// failure it returns a deterministic template site; it never fails.
	GenerateWebsite(ctx context.Context, scraped *ScrapedSite, facts BusinessFacts, instructions string) (*GeneratedSite, error)

	// GenerateVersions produces count site versions (clamped to 1-5).
	// Succeeds if at least one version succeeds.
	GenerateVersions(ctx context.Context, scraped *ScrapedSite, facts BusinessFacts, instructions string, count int) ([]*GeneratedSite, error)

	// ModifyWebsite applies a free-text modification to an existing
	// document. It has no fallback; failures propagate.
	ModifyWebsite(ctx context.Context, html string, request string, scraped *ScrapedSite) (string, error)

	// GenerateOutreach produces the cold email and proposal concurrently,
	// falling back to deterministic templates on failure.
	GenerateOutreach(ctx context.Context, req OutreachRequest) (*Outreach, error)
}
