package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/siteforge"
	"golang.org/x/sync/errgroup"
)

// GenerateOutreach produces the cold email and the proposal concurrently,
// splitting the outreach token budget one third to the email and two thirds
// to the proposal. Either side degrades independently to a deterministic
// template; the operation never fails once the request validates.
func (p *Pipeline) GenerateOutreach(ctx context.Context, req siteforge.OutreachRequest) (*siteforge.Outreach, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cfg := p.Config.Get()
	emailBudget := cfg.OutreachTokens / 3
	proposalBudget := cfg.OutreachTokens - emailBudget

	out := &siteforge.Outreach{}

	var g errgroup.Group
	g.Go(func() error {
		text, err := p.Generator.Generate(ctx, emailPrompt(req), siteforge.GenerateOptions{MaxTokens: emailBudget})
		if err != nil || strings.TrimSpace(text) == "" {
			p.logWarn("outreach email generation failed, using template", "err", err)
			out.Email = fallbackEmail(req)
			return nil
		}
		out.Email = text
		return nil
	})
	g.Go(func() error {
		text, err := p.Generator.Generate(ctx, proposalPrompt(req), siteforge.GenerateOptions{MaxTokens: proposalBudget})
		if err != nil || strings.TrimSpace(text) == "" {
			p.logWarn("outreach proposal generation failed, using template", "err", err)
			out.Proposal = fallbackProposal(req)
			return nil
		}
		out.Proposal = text
		return nil
	})
	_ = g.Wait()

	return out, nil
}

func emailPrompt(req siteforge.OutreachRequest) string {
	var sb strings.Builder

	sb.WriteString(`Write a cold outreach email pitching a website redesign to the business below.

Requirements:
- Under 200 words, with a subject line on the first line ("Subject: ...").
- Friendly, specific to this business, no generic filler.
- Mention that a redesigned preview of their website is ready to view.
- Sign off with the sender's name and email.
`)
	if req.Price != "" {
		fmt.Fprintf(&sb, "- Mention the price: %s.\n", req.Price)
	}

	sb.WriteString("\nBusiness facts:\n")
	sb.WriteString(factLines(req.Facts))
	fmt.Fprintf(&sb, "\nSender: %s <%s>\n", req.SenderName, req.SenderEmail)

	return sb.String()
}

func proposalPrompt(req siteforge.OutreachRequest) string {
	var sb strings.Builder

	sb.WriteString(`Write a website redesign proposal for the business below.

Requirements:
- Sections: overview, problems with the current website, proposed solution, deliverables, timeline, investment.
- Professional and concrete; tie every recommendation to this business.
- Plain text with section headings, no markdown fences.
`)
	if req.Price != "" {
		fmt.Fprintf(&sb, "- Quote the investment as: %s.\n", req.Price)
	}

	sb.WriteString("\nBusiness facts:\n")
	sb.WriteString(factLines(req.Facts))
	fmt.Fprintf(&sb, "\nPrepared by: %s <%s>\n", req.SenderName, req.SenderEmail)

	return sb.String()
}
