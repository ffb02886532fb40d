package siteforge

import (
	"os"
	"sync"
)

// Default token budgets. Budgets are advisory hints forwarded to providers.
const (
	DefaultAnalysisTokens = 2000
	DefaultSiteTokens     = 16000
	DefaultModifyTokens   = 16000
	DefaultOutreachTokens = 3000
)

// Config holds the process-wide LLM provider selection, credentials and
// token budgets. It is passed by value; the mutable copy lives inside
// ConfigService.
type Config struct {
	Provider Provider `json:"provider"`

	// Model overrides each provider's default model when non-empty.
	Model string `json:"model,omitempty"`

	GeminiAPIKey    string `json:"-"`
	AnthropicAPIKey string `json:"-"`
	OpenAIAPIKey    string `json:"-"`

	AnalysisTokens int `json:"analysisTokens"`
	SiteTokens     int `json:"siteTokens"`
	ModifyTokens   int `json:"modifyTokens"`
	OutreachTokens int `json:"outreachTokens"`
}

// DefaultConfig returns a Config with the built-in provider and budgets.
func DefaultConfig() Config {
	return Config{
		Provider:       ProviderGemini,
		AnalysisTokens: DefaultAnalysisTokens,
		SiteTokens:     DefaultSiteTokens,
		ModifyTokens:   DefaultModifyTokens,
		OutreachTokens: DefaultOutreachTokens,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by environment variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("SITEFORGE_PROVIDER"); v != "" {
		cfg.Provider = Provider(v)
	}
	if v := os.Getenv("SITEFORGE_MODEL"); v != "" {
		cfg.Model = v
	}
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	return cfg
}

// Credential returns the API key for a provider.
func (c Config) Credential(p Provider) string {
	switch p {
	case ProviderGemini:
		return c.GeminiAPIKey
	case ProviderAnthropic:
		return c.AnthropicAPIKey
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	}
	return ""
}

// Validate returns an error if the config selects an unknown provider.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderAnthropic, ProviderOpenAI:
		return nil
	}
	return Errorf(EINVALID, "unknown provider %q", c.Provider)
}

// ConfigUpdate represents fields that can be changed at runtime.
type ConfigUpdate struct {
	Provider        *Provider `json:"provider"`
	Model           *string   `json:"model"`
	GeminiAPIKey    *string   `json:"geminiApiKey"`
	AnthropicAPIKey *string   `json:"anthropicApiKey"`
	OpenAIAPIKey    *string   `json:"openaiApiKey"`
	AnalysisTokens  *int      `json:"analysisTokens"`
	SiteTokens      *int      `json:"siteTokens"`
	ModifyTokens    *int      `json:"modifyTokens"`
	OutreachTokens  *int      `json:"outreachTokens"`
}

// ConfigService guards the process-wide Config for concurrent access.
// Components read their configuration through Get at call time, so runtime
// updates take effect on the next operation.
type ConfigService struct {
	mu     sync.RWMutex
	config Config
}

// NewConfigService creates a ConfigService seeded with cfg.
func NewConfigService(cfg Config) *ConfigService {
	return &ConfigService{config: cfg}
}

// Get returns a copy of the current config.
func (s *ConfigService) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Update applies the non-nil fields of upd and returns the resulting config.
// The update is rejected wholesale if it selects an unknown provider or a
// provider without a credential.
func (s *ConfigService) Update(upd ConfigUpdate) (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.config
	if upd.Provider != nil {
		next.Provider = *upd.Provider
	}
	if upd.Model != nil {
		next.Model = *upd.Model
	}
	if upd.GeminiAPIKey != nil {
		next.GeminiAPIKey = *upd.GeminiAPIKey
	}
	if upd.AnthropicAPIKey != nil {
		next.AnthropicAPIKey = *upd.AnthropicAPIKey
	}
	if upd.OpenAIAPIKey != nil {
		next.OpenAIAPIKey = *upd.OpenAIAPIKey
	}
	if upd.AnalysisTokens != nil && *upd.AnalysisTokens > 0 {
		next.AnalysisTokens = *upd.AnalysisTokens
	}
	if upd.SiteTokens != nil && *upd.SiteTokens > 0 {
		next.SiteTokens = *upd.SiteTokens
	}
	if upd.ModifyTokens != nil && *upd.ModifyTokens > 0 {
		next.ModifyTokens = *upd.ModifyTokens
	}
	if upd.OutreachTokens != nil && *upd.OutreachTokens > 0 {
		next.OutreachTokens = *upd.OutreachTokens
	}

	if err := next.Validate(); err != nil {
		return Config{}, err
	}
	if next.Credential(next.Provider) == "" {
		return Config{}, Errorf(EINVALID, "provider %q requires an API key", next.Provider)
	}

	s.config = next
	return next, nil
}
