package http

import (
	"net/http"

	"github.com/fwojciec/siteforge"
)

type configView struct {
	siteforge.Config
	HasGeminiKey    bool `json:"hasGeminiKey"`
	HasAnthropicKey bool `json:"hasAnthropicKey"`
	HasOpenAIKey    bool `json:"hasOpenaiKey"`
}

func newConfigView(cfg siteforge.Config) configView {
	return configView{
		Config:          cfg,
		HasGeminiKey:    cfg.GeminiAPIKey != "",
		HasAnthropicKey: cfg.AnthropicAPIKey != "",
		HasOpenAIKey:    cfg.OpenAIAPIKey != "",
	}
}

// handleGetConfig returns the current config. Key material is never
// serialized; only presence flags are exposed.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newConfigView(s.Config.Get()))
}

func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var upd siteforge.ConfigUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, err)
		return
	}

	cfg, err := s.Config.Update(upd)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newConfigView(cfg))
}

type testConfigResponse struct {
	OK    bool   `json:"ok"`
	Reply string `json:"reply,omitempty"`
}

// handleTestConfig issues a minimal round-trip against the selected
// provider.
func (s *Server) handleTestConfig(w http.ResponseWriter, r *http.Request) {
	reply, err := s.Gateway.Probe(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, testConfigResponse{OK: true, Reply: reply})
}
