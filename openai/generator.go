// Package openai implements text generation using the OpenAI API.
package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/siteforge"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model override is configured.
const DefaultModel = openai.GPT4o

// Ensure Generator implements siteforge.TextGenerator at compile time.
var _ siteforge.TextGenerator = (*Generator)(nil)

// Generator implements siteforge.TextGenerator using the OpenAI API.
type Generator struct {
	client *openai.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client *openai.Client) *Generator {
	return &Generator{client: client}
}

// Generate sends the prompt as a single user message and returns the first
// choice's content.
func (g *Generator) Generate(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", siteforge.Errorf(siteforge.EINVALID, "prompt required")
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if opts.MaxTokens > 0 {
		req.MaxTokens = opts.MaxTokens
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", siteforge.Errorf(siteforge.EINTERNAL, "openai returned empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
