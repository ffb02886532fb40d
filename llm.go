package siteforge

import "context"

// Provider identifies an LLM provider.
type Provider string

// Supported LLM providers.
const (
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// GenerateOptions configures a single text generation call.
type GenerateOptions struct {
	// MaxTokens is an advisory output budget passed to the provider.
	// It is not enforced locally.
	MaxTokens int

	// Model overrides the provider's default model when non-empty.
	Model string
}

// TextGenerator produces a text completion for a prompt. Implementations
// block until the provider responds or its own network/timeout error
// surfaces; they do not retry.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// Gateway routes generation calls to whichever provider is currently
// selected in configuration. It implements TextGenerator.
//
// A missing credential for the selected provider fails with EINVALID before
// any network call is made.
type Gateway struct {
	config     *ConfigService
	generators map[Provider]TextGenerator
}

var _ TextGenerator = (*Gateway)(nil)

// NewGateway creates a Gateway reading provider selection from config.
func NewGateway(config *ConfigService) *Gateway {
	return &Gateway{
		config:     config,
		generators: make(map[Provider]TextGenerator),
	}
}

// Register binds a generator to a provider name.
func (g *Gateway) Register(p Provider, gen TextGenerator) {
	g.generators[p] = gen
}

// Generate resolves the configured provider and forwards the call.
func (g *Gateway) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	cfg := g.config.Get()

	if cfg.Credential(cfg.Provider) == "" {
		return "", Errorf(EINVALID, "no API key configured for provider %q", cfg.Provider)
	}

	gen, ok := g.generators[cfg.Provider]
	if !ok {
		return "", Errorf(EINVALID, "unknown provider %q", cfg.Provider)
	}

	if opts.Model == "" {
		opts.Model = cfg.Model
	}

	return gen.Generate(ctx, prompt, opts)
}

// Probe issues a minimal round-trip against the selected provider and
// returns the raw reply. Used by the config test endpoint.
func (g *Gateway) Probe(ctx context.Context) (string, error) {
	return g.Generate(ctx, `Say "hello" and nothing else.`, GenerateOptions{MaxTokens: 16})
}
