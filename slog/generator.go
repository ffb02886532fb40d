package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siteforge"
)

// Ensure LoggingGenerator implements siteforge.TextGenerator.
var _ siteforge.TextGenerator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a TextGenerator with per-call logging. Prompts are
// not logged, only their sizes.
type LoggingGenerator struct {
	next   siteforge.TextGenerator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next siteforge.TextGenerator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate logs call shape and outcome and delegates to the wrapped
// generator.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string, opts siteforge.GenerateOptions) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"prompt_bytes", len(prompt),
			"max_tokens", opts.MaxTokens,
			"model", opts.Model,
			"output_bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt, opts)
}
