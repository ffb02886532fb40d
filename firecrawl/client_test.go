package firecrawl_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/siteforge"
	"github.com/fwojciec/siteforge/firecrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_MapSite(t *testing.T) {
	t.Parallel()

	t.Run("returns links capped at limit", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/map", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "https://example.com", req["url"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"links":   []string{"https://example.com/", "https://example.com/a", "https://example.com/b"},
			})
		}))
		defer srv.Close()

		client := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))
		links, err := client.MapSite(context.Background(), "https://example.com", 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/", "https://example.com/a"}, links)
	})

	t.Run("maps 429 to rate limit code", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))
		_, err := client.MapSite(context.Background(), "https://example.com", 100)

		require.Error(t, err)
		assert.Equal(t, siteforge.ERATELIMIT, siteforge.ErrorCode(err))
		assert.True(t, firecrawl.IsRateLimit(err))
	})
}

func TestClient_ScrapePage(t *testing.T) {
	t.Parallel()

	t.Run("returns structured result", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/scrape", r.URL.Path)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []any{"markdown", "html"}, req["formats"])
			assert.Equal(t, float64(2000), req["waitFor"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"markdown": "# Acme\nWe fix pipes.",
					"html":     "<h1>Acme</h1>",
					"metadata": map[string]any{
						"title":       "Acme Plumbing",
						"description": "Pipes fixed fast",
					},
				},
			})
		}))
		defer srv.Close()

		client := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))
		result, err := client.ScrapePage(context.Background(), "https://example.com", siteforge.PageRequest{
			Formats: []string{"markdown", "html"},
			WaitFor: 2 * time.Second,
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Plumbing", result.Title)
		assert.Equal(t, "Pipes fixed fast", result.Description)
		assert.Contains(t, result.Markdown, "We fix pipes.")
	})

	t.Run("missing content is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"metadata": map[string]any{}},
			})
		}))
		defer srv.Close()

		client := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))
		_, err := client.ScrapePage(context.Background(), "https://example.com", siteforge.PageRequest{})

		require.Error(t, err)
		assert.Equal(t, siteforge.ENOTFOUND, siteforge.ErrorCode(err))
	})

	t.Run("unreachable provider is EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		client := firecrawl.NewClient("test-key", firecrawl.WithBaseURL("http://127.0.0.1:1"))
		_, err := client.ScrapePage(context.Background(), "https://example.com", siteforge.PageRequest{})

		require.Error(t, err)
		assert.Equal(t, siteforge.EUNAVAILABLE, siteforge.ErrorCode(err))
	})
}
