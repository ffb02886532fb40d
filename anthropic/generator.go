// Package anthropic implements text generation using the Anthropic API.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/fwojciec/siteforge"
)

// DefaultModel is used when no model override is configured.
const DefaultModel = "claude-sonnet-4-20250514"

// DefaultMaxTokens bounds output when the caller does not set a budget; the
// API requires an explicit limit on every request.
const DefaultMaxTokens = 4096

// Ensure Generator implements siteforge.TextGenerator at compile time.
var _ siteforge.TextGenerator = (*Generator)(nil)

// Generator implements siteforge.TextGenerator using the Anthropic API.
type Generator struct {
	client anthropic.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client anthropic.Client) *Generator {
	return &Generator{client: client}
}

// Generate sends the prompt as a single user message and returns the
// concatenated text blocks of the reply.
func (g *Generator) Generate(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", siteforge.Errorf(siteforge.EINVALID, "prompt required")
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", siteforge.Errorf(siteforge.EINTERNAL, "anthropic returned empty completion")
	}
	return sb.String(), nil
}
