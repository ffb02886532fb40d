// Package gemini implements text generation using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/siteforge"
	"google.golang.org/genai"
)

// DefaultModel is used when no model override is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements siteforge.TextGenerator at compile time.
var _ siteforge.TextGenerator = (*Generator)(nil)

// Generator implements siteforge.TextGenerator using Google Gemini.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// Generate sends the prompt to Gemini and returns the completion text.
func (g *Generator) Generate(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", siteforge.Errorf(siteforge.EINVALID, "prompt required")
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	temp := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if opts.MaxTokens > 0 {
		config.MaxOutputTokens = int32(opts.MaxTokens)
	}

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", siteforge.Errorf(siteforge.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", siteforge.Errorf(siteforge.EINTERNAL, "gemini returned empty completion")
	}
	return text, nil
}
